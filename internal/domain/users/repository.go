package users

import (
	"context"

	"petify-api/internal/platform/pagination"
)

type Repository interface {
	// Create devuelve ErrDuplicate si el email ya existe.
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// List ordena por createdAt desc y devuelve el total sin paginar.
	List(ctx context.Context, page pagination.Request) ([]User, int, error)
	// SearchByEmail busca por substring, sin distinguir mayúsculas.
	SearchByEmail(ctx context.Context, q string) ([]User, error)
	// Update reemplaza name, photoUrl, role e isBanned.
	Update(ctx context.Context, u User) error
}
