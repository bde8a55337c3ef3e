package payments

import "context"

type Repository interface {
	// Create devuelve ErrDuplicate si el transactionId ya existe.
	Create(ctx context.Context, p Payment) error
	GetByID(ctx context.Context, id string) (Payment, error)
	// List ordena por paidAt desc.
	List(ctx context.Context, f ListFilter) ([]Payment, error)
	Delete(ctx context.Context, id string) error
}
