package campaigns

import (
	"context"
	"errors"
	"time"

	"petify-api/internal/platform/money"
	"petify-api/internal/platform/pagination"
)

// ErrNotApplied lo devuelven los repos cuando una actualización condicional no matchea
// (campaña inactiva, tope excedido o maxAmount por debajo del total). El servicio decide el error final.
var ErrNotApplied = errors.New("campaigns: conditional update not applied")

type Repository interface {
	Create(ctx context.Context, c Campaign) error
	GetByID(ctx context.Context, id string) (Campaign, error)
	// List ordena por createdAt desc y devuelve el total sin paginar.
	List(ctx context.Context, f ListFilter, page pagination.Request) ([]Campaign, int, error)

	// Update escribe los campos editables y status, solo si totalDonations <= c.MaxAmount.
	Update(ctx context.Context, c Campaign) error
	SetStatus(ctx context.Context, id string, status Status, at time.Time) error
	Delete(ctx context.Context, id string) error

	// Increment suma amount (centavos) de forma atómica si total+amount <= maxAmount
	// (y status = active cuando requireActive). Si no aplica devuelve ErrNotApplied.
	Increment(ctx context.Context, id string, amount money.Cents, requireActive bool, at time.Time) (Campaign, error)
	// Decrement resta amount con piso en 0.
	Decrement(ctx context.Context, id string, amount money.Cents, at time.Time) (Campaign, error)
}
