package adoptions

import (
	"context"
	"time"
)

type Repository interface {
	// Create devuelve ErrDuplicate si ya existe una solicitud para (petId, requesterEmail).
	Create(ctx context.Context, a AdoptionRequest) error
	GetByID(ctx context.Context, id string) (AdoptionRequest, error)
	FindByPetAndRequester(ctx context.Context, petID, requesterEmail string) (AdoptionRequest, error)
	// List ordena por createdAt desc salvo f.OldestFirst.
	List(ctx context.Context, f ListFilter) ([]AdoptionRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status, at time.Time) error
}
