package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petify-api/internal/domain/campaigns"
	"petify-api/internal/platform/apperr"
	"petify-api/internal/platform/money"
	"petify-api/internal/platform/validate"
	"petify-api/internal/ports/auth"
	"petify-api/internal/ports/payment"
	"petify-api/internal/ports/tx"

	"github.com/google/uuid"
)

const DefaultCurrency = "usd"

var (
	ErrInvalidInput   = apperr.New(apperr.Invalid, "missing required payment fields")
	ErrInvalidAmount  = apperr.New(apperr.Invalid, "amount must be greater than 0")
	ErrNotFound       = apperr.New(apperr.NotFound, "payment not found")
	ErrDuplicate      = apperr.New(apperr.Conflict, "payment already recorded for this transaction")
	ErrNotConfigured  = apperr.New(apperr.Unavailable, "payment provider not configured")
	ErrProviderFailed = apperr.New(apperr.Internal, "failed to create payment intent")
)

// CampaignLedger es la parte del ledger de campañas que mueve el registro de pagos.
type CampaignLedger interface {
	Get(ctx context.Context, id string) (campaigns.Campaign, error)
	CheckCapacity(ctx context.Context, id string, amount money.Cents) (campaigns.Campaign, error)
	ApplyPayment(ctx context.Context, id string, amount money.Cents) (campaigns.Campaign, error)
	RevertPayment(ctx context.Context, id string, amount money.Cents) (campaigns.Campaign, error)
}

type Service struct {
	repo     Repository
	ledger   CampaignLedger
	tx       tx.Transactor
	provider payment.IntentProvider
	currency string
	now      func() time.Time
}

// NewService: provider puede ser nil (CreateIntent responde 503).
func NewService(repo Repository, ledger CampaignLedger, txm tx.Transactor, provider payment.IntentProvider, currency string) *Service {
	if txm == nil {
		txm = tx.Noop{}
	}
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Service{
		repo:     repo,
		ledger:   ledger,
		tx:       txm,
		provider: provider,
		currency: currency,
		now:      time.Now,
	}
}

// RecordInput es el cuerpo de POST /payments; amount llega en unidad mayor y se pasa a centavos en Record.
type RecordInput struct {
	CampaignID    string  `json:"campaignId" validate:"required"`
	PayerEmail    string  `json:"email" validate:"required,email"`
	DonorName     string  `json:"donorName"`
	Amount        float64 `json:"amount" validate:"required"`
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
	TransactionID string  `json:"transactionId" validate:"required"`
}

// Record registra el pago y suma el monto a la campaña en una sola transacción.
// Orden: campos -> monto -> campaña existe -> tope -> (insert + incremento).
func (s *Service) Record(ctx context.Context, in RecordInput) (Payment, error) {
	trimInput(&in)
	in.PayerEmail = auth.NormalizeEmail(in.PayerEmail)
	if err := validate.Struct(in); err != nil {
		return Payment{}, ErrInvalidInput
	}
	amount, err := money.FromFloat(in.Amount)
	if err != nil || amount <= 0 {
		return Payment{}, ErrInvalidAmount
	}

	c, err := s.ledger.Get(ctx, in.CampaignID)
	if err != nil {
		return Payment{}, err
	}
	if amount > c.MaxAmount-c.TotalDonations {
		return Payment{}, campaigns.ErrCapExceeded
	}

	p := Payment{
		ID:            uuid.NewString(),
		CampaignID:    in.CampaignID,
		PayerEmail:    in.PayerEmail,
		DonorName:     in.DonorName,
		Amount:        amount,
		PaymentMethod: in.PaymentMethod,
		TransactionID: in.TransactionID,
		PaidAt:        s.now(),
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, p); err != nil {
			return err
		}
		if _, err := s.ledger.ApplyPayment(ctx, p.CampaignID, p.Amount); err != nil {
			// Sin transacciones reales (mongo standalone) el insert queda: se compensa.
			// Si la compensación falla el pago quedó sin contar: Internal con ambas causas.
			if derr := s.repo.Delete(ctx, p.ID); derr != nil {
				return &apperr.Error{
					Kind: apperr.Internal,
					Msg:  "failed to record payment",
					Err:  errors.Join(err, fmt.Errorf("compensate payment %s: %w", p.ID, derr)),
				}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return Payment{}, apperr.Wrap(apperr.Internal, "failed to record payment", err)
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (Payment, error) {
	if strings.TrimSpace(id) == "" {
		return Payment{}, ErrNotFound
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Payment{}, apperr.Wrap(apperr.Internal, "failed to fetch payment", err)
	}
	return p, nil
}

// List compone cada pago con imagen y descripción corta de su campaña.
// Una campaña borrada deja esos campos vacíos.
func (s *Service) List(ctx context.Context, f ListFilter) ([]PaymentView, error) {
	f.CampaignID = strings.TrimSpace(f.CampaignID)
	f.PayerEmail = auth.NormalizeEmail(f.PayerEmail)

	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch payments", err)
	}

	byCampaign := map[string]campaigns.Campaign{}
	out := make([]PaymentView, 0, len(items))
	for _, p := range items {
		c, seen := byCampaign[p.CampaignID]
		if !seen {
			c, err = s.ledger.Get(ctx, p.CampaignID)
			switch {
			case err == nil:
			case errors.Is(err, campaigns.ErrNotFound):
				c = campaigns.Campaign{}
			default:
				return nil, apperr.Wrap(apperr.Internal, "failed to fetch payments", err)
			}
			byCampaign[p.CampaignID] = c
		}
		out = append(out, PaymentView{
			Payment:                  p,
			CampaignImage:            c.Image,
			CampaignShortDescription: c.ShortDescription,
		})
	}
	return out, nil
}

// Refund borra el pago y descuenta el monto (piso 0) si la campaña sigue existiendo.
func (s *Service) Refund(ctx context.Context, id string) (Payment, error) {
	var out Payment
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, p.ID); err != nil {
			return err
		}
		if _, err := s.ledger.RevertPayment(ctx, p.CampaignID, p.Amount); err != nil && !errors.Is(err, campaigns.ErrNotFound) {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return Payment{}, apperr.Wrap(apperr.Internal, "failed to refund payment", err)
	}
	return out, nil
}

// CreateIntent pide un payment intent al proveedor y devuelve el client secret.
// Con campaignID verifica antes que la campaña esté activa y tenga lugar para el monto.
func (s *Service) CreateIntent(ctx context.Context, amountInCents int64, campaignID string) (string, error) {
	if amountInCents <= 0 {
		return "", ErrInvalidAmount
	}
	if campaignID = strings.TrimSpace(campaignID); campaignID != "" {
		if _, err := s.ledger.CheckCapacity(ctx, campaignID, money.Cents(amountInCents)); err != nil {
			return "", err
		}
	}
	if s.provider == nil {
		return "", ErrNotConfigured
	}

	secret, err := s.provider.CreateIntent(ctx, amountInCents, s.currency)
	if err != nil {
		if errors.Is(err, payment.ErrNotConfigured) {
			return "", ErrNotConfigured
		}
		return "", apperr.Wrap(apperr.Internal, ErrProviderFailed.Msg, err)
	}
	return secret, nil
}

func trimInput(in *RecordInput) {
	in.CampaignID = strings.TrimSpace(in.CampaignID)
	in.DonorName = strings.TrimSpace(in.DonorName)
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	in.TransactionID = strings.TrimSpace(in.TransactionID)
}
