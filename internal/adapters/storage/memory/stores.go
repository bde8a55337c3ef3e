package memory

import "petify-api/internal/ports/storage"

// NewStores arma el backend en memoria (dev y tests). Los datos se pierden al reiniciar.
func NewStores() *storage.Stores {
	return &storage.Stores{
		Users:     NewUserRepo(),
		Pets:      NewPetRepo(),
		Adoptions: NewAdoptionRepo(),
		Campaigns: NewCampaignRepo(),
		Payments:  NewPaymentRepo(),
		Tx:        NewTransactor(),
	}
}
