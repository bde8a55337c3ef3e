package pets

import (
	"context"
	"time"

	"petify-api/internal/platform/pagination"
)

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	// List ordena por createdAt desc y devuelve el total sin paginar.
	List(ctx context.Context, f ListFilter, page pagination.Request) ([]Pet, int, error)
	// Update reemplaza los atributos editables; no toca adopted, owner ni createdAt.
	Update(ctx context.Context, p Pet) error
	SetAdopted(ctx context.Context, id string, adopted bool, at time.Time) error
	// MarkAdoptedIfAvailable pasa adopted de false a true en una sola escritura condicional.
	// Si ya estaba adoptada devuelve ErrAlreadyAdopted.
	MarkAdoptedIfAvailable(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
