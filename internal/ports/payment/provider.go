package payment

import (
	"context"
	"errors"
)

// ErrNotConfigured indica que no hay proveedor de pagos configurado.
var ErrNotConfigured = errors.New("payment provider not configured")

// IntentProvider crea payment intents en el proveedor externo (Stripe).
// amountInCents es el monto en la unidad mínima de la moneda.
type IntentProvider interface {
	CreateIntent(ctx context.Context, amountInCents int64, currency string) (clientSecret string, err error)
}
