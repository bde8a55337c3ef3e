package storage

import (
	"petify-api/internal/domain/adoptions"
	"petify-api/internal/domain/campaigns"
	"petify-api/internal/domain/payments"
	"petify-api/internal/domain/pets"
	"petify-api/internal/domain/users"
	"petify-api/internal/ports/tx"
)

// Stores agrupa los repositorios de un mismo backend (memory, mongo, postgres)
// y su Transactor, para que el router los cablee sin conocer el adapter.
type Stores struct {
	Users     users.Repository
	Pets      pets.Repository
	Adoptions adoptions.Repository
	Campaigns campaigns.Repository
	Payments  payments.Repository
	Tx        tx.Transactor

	// Close libera recursos del backend (puede ser nil).
	Close func() error
}
