package postgres

import (
	"database/sql"

	"petify-api/internal/ports/storage"
)

// NewStores cablea los repos sobre un pool ya abierto (ver Open).
func NewStores(db *sql.DB) *storage.Stores {
	return &storage.Stores{
		Users:     NewUsersRepo(db),
		Pets:      NewPetsRepo(db),
		Adoptions: NewAdoptionsRepo(db),
		Campaigns: NewCampaignsRepo(db),
		Payments:  NewPaymentsRepo(db),
		Tx:        NewTransactor(db),
		Close:     db.Close,
	}
}
