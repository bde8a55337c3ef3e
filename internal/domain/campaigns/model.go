package campaigns

import (
	"time"

	"petify-api/internal/platform/money"
)

// Status de una campaña. Solo active acepta donaciones.
// @Enum active, paused, completed, cancelled
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Campaign es una campaña de donación con tope (MaxAmount) y fecha límite.
// Invariante: 0 <= TotalDonations <= MaxAmount.
type Campaign struct {
	ID         string
	OwnerEmail string
	OwnerName  string

	PetName string
	Image   string

	MaxAmount money.Cents
	LastDate  time.Time

	ShortDescription string
	LongDescription  string

	Status         Status
	TotalDonations money.Cents

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Progress es el porcentaje recaudado, acotado a 100.
func (c Campaign) Progress() float64 {
	return money.Percent(c.TotalDonations, c.MaxAmount)
}

// Patch de edición genérica: id, createdAt, ownerEmail, ownerName y totalDonations no son editables.
// nil = no tocar.
type Patch struct {
	PetName          *string
	Image            *string
	MaxAmount        *money.Cents
	LastDate         *time.Time
	ShortDescription *string
	LongDescription  *string
	Status           *Status
}

// ListFilter: vacío = todas.
type ListFilter struct {
	OwnerEmail string
	ActiveOnly bool
}

// DonationResult es la respuesta de una donación aceptada.
type DonationResult struct {
	NewTotal money.Cents
	Progress float64
	Campaign Campaign
}
