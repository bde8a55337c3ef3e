package pets

import "time"

// Pet es una mascota publicada para adopción por su dueño (OwnerEmail).
// Adopted solo cambia por SetAdopted / MarkAdopted o por el workflow de adopciones.
type Pet struct {
	ID         string
	OwnerEmail string
	OwnerName  string

	Name     string
	Species  string // dog, cat, ... (texto libre)
	Age      string // "2 años", "6 meses"
	Location string
	Image    string

	ShortDescription string
	LongDescription  string

	Adopted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Patch es la edición genérica. No incluye id, createdAt, adopted ni ownerEmail:
// esos campos solo cambian por operaciones dedicadas.
// nil = no tocar.
type Patch struct {
	Name             *string `json:"name"`
	Species          *string `json:"species"`
	Age              *string `json:"age"`
	Location         *string `json:"location"`
	Image            *string `json:"image"`
	ShortDescription *string `json:"shortDescription"`
	LongDescription  *string `json:"longDescription"`
	OwnerName        *string `json:"ownerName"`
}

// ListFilter: vacío = todas.
type ListFilter struct {
	OwnerEmail    string
	AvailableOnly bool
}
