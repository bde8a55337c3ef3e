package tx

import "context"

// Transactor ejecuta fn como unidad atómica. Los repos leen la transacción desde ctx.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Noop ejecuta fn sin transacción (stores sin soporte o tests).
type Noop struct{}

func (Noop) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
