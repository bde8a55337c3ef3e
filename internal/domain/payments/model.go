package payments

import (
	"time"

	"petify-api/internal/platform/money"
)

// Payment es un registro del ledger: una donación confirmada por el proveedor.
// TransactionID es único (reintentos del cliente no duplican el pago).
type Payment struct {
	ID            string
	CampaignID    string
	PayerEmail    string
	DonorName     string
	Amount        money.Cents
	PaymentMethod string
	TransactionID string
	PaidAt        time.Time
}

// PaymentView es el modelo de lectura: pago + datos de la campaña al momento de leer.
type PaymentView struct {
	Payment

	CampaignImage            string
	CampaignShortDescription string
}

// ListFilter: vacío = todos.
type ListFilter struct {
	CampaignID string
	PayerEmail string
}
