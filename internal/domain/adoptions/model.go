package adoptions

import "time"

// Status del ciclo de vida de una solicitud.
// @Enum pending, approved, rejected
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// AdoptionRequest es la solicitud de un usuario para adoptar una mascota.
// A lo sumo una por (PetID, RequesterEmail).
type AdoptionRequest struct {
	ID string

	PetID    string
	PetName  string
	PetImage string

	RequesterName  string
	RequesterEmail string
	Phone          string
	Address        string

	// Copiado de la mascota al crear la solicitud.
	PetOwnerEmail string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListFilter: vacío = todas.
type ListFilter struct {
	RequesterEmail string
	PetOwnerEmail  string
	OldestFirst    bool
}
