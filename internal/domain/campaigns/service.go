package campaigns

import (
	"context"
	"errors"
	"strings"
	"time"

	"petify-api/internal/platform/apperr"
	"petify-api/internal/platform/money"
	"petify-api/internal/platform/pagination"
	"petify-api/internal/platform/validate"
	"petify-api/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = apperr.New(apperr.Invalid, "invalid input")
	ErrInvalidAmount = apperr.New(apperr.Invalid, "valid donation amount is required")
	ErrInvalidStatus = apperr.New(apperr.Invalid, "invalid status. Must be active, paused, completed, or cancelled")
	ErrLastDatePast  = apperr.New(apperr.Invalid, "last date must be in the future")
	ErrMaxAmount     = apperr.New(apperr.Invalid, "maximum amount must be greater than 0")
	ErrMaxBelowTotal = apperr.New(apperr.Invalid, "maximum amount cannot be lower than total donations")
	ErrNotFound      = apperr.New(apperr.NotFound, "donation campaign not found")
	ErrNotActive     = apperr.New(apperr.Conflict, "campaign is not active for donations")
	ErrCapExceeded   = apperr.New(apperr.Conflict, "donation would exceed campaign goal")
	ErrConcurrent    = apperr.New(apperr.Conflict, "campaign was modified concurrently, retry")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	OwnerName        string      `json:"ownerName"`
	PetName          string      `json:"petName"`
	Image            string      `json:"image" validate:"required"`
	MaxAmount        money.Cents `json:"maxAmount"`
	LastDate         time.Time   `json:"lastDate"`
	ShortDescription string      `json:"shortDescription" validate:"required"`
	LongDescription  string      `json:"longDescription" validate:"required"`
	Status           Status      `json:"status"`
}

// Create valida campos, lastDate estrictamente futura y maxAmount > 0.
// status por defecto active; totalDonations siempre arranca en 0.
func (s *Service) Create(ctx context.Context, ownerEmail string, in CreateInput) (Campaign, error) {
	ownerEmail = auth.NormalizeEmail(ownerEmail)
	if ownerEmail == "" {
		return Campaign{}, ErrInvalidInput
	}
	trimInput(&in)
	if err := validate.Struct(in); err != nil {
		return Campaign{}, err
	}
	if in.LastDate.IsZero() {
		return Campaign{}, apperr.New(apperr.Invalid, "lastDate is required")
	}

	now := s.now()
	if !in.LastDate.After(now) {
		return Campaign{}, ErrLastDatePast
	}
	if !validAmount(in.MaxAmount) {
		return Campaign{}, ErrMaxAmount
	}

	status := in.Status
	if status == "" {
		status = StatusActive
	}
	if !status.Valid() {
		return Campaign{}, ErrInvalidStatus
	}

	c := Campaign{
		ID:               uuid.NewString(),
		OwnerEmail:       ownerEmail,
		OwnerName:        in.OwnerName,
		PetName:          in.PetName,
		Image:            in.Image,
		MaxAmount:        in.MaxAmount,
		LastDate:         in.LastDate,
		ShortDescription: in.ShortDescription,
		LongDescription:  in.LongDescription,
		Status:           status,
		TotalDonations:   0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Campaign{}, apperr.Wrap(apperr.Internal, "failed to create donation campaign", err)
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (Campaign, error) {
	if strings.TrimSpace(id) == "" {
		return Campaign{}, ErrNotFound
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Campaign{}, apperr.Wrap(apperr.Internal, "failed to fetch donation campaign", err)
	}
	return c, nil
}

func (s *Service) ListActive(ctx context.Context, page pagination.Request) ([]Campaign, int, error) {
	return s.list(ctx, ListFilter{ActiveOnly: true}, page)
}

func (s *Service) ListAll(ctx context.Context, page pagination.Request) ([]Campaign, int, error) {
	return s.list(ctx, ListFilter{}, page)
}

func (s *Service) ListByOwner(ctx context.Context, ownerEmail string, page pagination.Request) ([]Campaign, int, error) {
	ownerEmail = auth.NormalizeEmail(ownerEmail)
	if ownerEmail == "" {
		return nil, 0, apperr.New(apperr.Invalid, "email is required")
	}
	return s.list(ctx, ListFilter{OwnerEmail: ownerEmail}, page)
}

func (s *Service) list(ctx context.Context, f ListFilter, page pagination.Request) ([]Campaign, int, error) {
	items, total, err := s.repo.List(ctx, f, page.Normalize())
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.Internal, "failed to fetch donation campaigns", err)
	}
	return items, total, nil
}

// Update aplica el patch. maxAmount, si viene, debe ser > 0 y >= totalDonations.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Campaign, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return Campaign{}, err
	}

	if patch.Status != nil && !patch.Status.Valid() {
		return Campaign{}, ErrInvalidStatus
	}
	if patch.MaxAmount != nil {
		if !validAmount(*patch.MaxAmount) {
			return Campaign{}, ErrMaxAmount
		}
		if *patch.MaxAmount < c.TotalDonations {
			return Campaign{}, ErrMaxBelowTotal
		}
		c.MaxAmount = *patch.MaxAmount
	}
	if patch.LastDate != nil {
		if patch.LastDate.IsZero() {
			return Campaign{}, apperr.New(apperr.Invalid, "lastDate is required")
		}
		c.LastDate = *patch.LastDate
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	apply(&c.PetName, patch.PetName)
	apply(&c.Image, patch.Image)
	apply(&c.ShortDescription, patch.ShortDescription)
	apply(&c.LongDescription, patch.LongDescription)

	c.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, ErrNotApplied) {
			// una donación concurrente dejó el total por encima del nuevo tope
			return Campaign{}, ErrMaxBelowTotal
		}
		return Campaign{}, apperr.Wrap(apperr.Internal, "failed to update donation campaign", err)
	}

	// El total puede haber cambiado entre la lectura y el update.
	return s.Get(ctx, id)
}

func (s *Service) SetStatus(ctx context.Context, id string, status Status) (Campaign, error) {
	if !status.Valid() {
		return Campaign{}, ErrInvalidStatus
	}
	if strings.TrimSpace(id) == "" {
		return Campaign{}, ErrNotFound
	}

	if err := s.repo.SetStatus(ctx, id, status, s.now()); err != nil {
		return Campaign{}, apperr.Wrap(apperr.Internal, "failed to update donation campaign status", err)
	}
	return s.Get(ctx, id)
}

// RecordDonation suma amount a una campaña activa sin superar el tope.
// Orden: monto -> existe -> activa -> tope -> incremento condicional atómico.
func (s *Service) RecordDonation(ctx context.Context, id string, amount money.Cents) (DonationResult, error) {
	if !validAmount(amount) {
		return DonationResult{}, ErrInvalidAmount
	}

	c, err := s.Get(ctx, id)
	if err != nil {
		return DonationResult{}, err
	}
	if err := checkDonation(c, amount, true); err != nil {
		return DonationResult{}, err
	}

	updated, err := s.increment(ctx, id, amount, true)
	if err != nil {
		return DonationResult{}, err
	}
	return DonationResult{
		NewTotal: updated.TotalDonations,
		Progress: updated.Progress(),
		Campaign: updated,
	}, nil
}

// ApplyPayment es la vía del registro de pagos: respeta el tope pero no exige status active
// (un pago confirmado justo después de pausar la campaña igual se registra).
func (s *Service) ApplyPayment(ctx context.Context, id string, amount money.Cents) (Campaign, error) {
	if !validAmount(amount) {
		return Campaign{}, ErrInvalidAmount
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return Campaign{}, err
	}
	if err := checkDonation(c, amount, false); err != nil {
		return Campaign{}, err
	}
	return s.increment(ctx, id, amount, false)
}

// CheckCapacity valida, sin escribir, que la campaña acepte amount ahora mismo.
func (s *Service) CheckCapacity(ctx context.Context, id string, amount money.Cents) (Campaign, error) {
	if !validAmount(amount) {
		return Campaign{}, ErrInvalidAmount
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return Campaign{}, err
	}
	if err := checkDonation(c, amount, true); err != nil {
		return Campaign{}, err
	}
	return c, nil
}

// RevertPayment descuenta amount del total con piso en 0 (reembolsos).
func (s *Service) RevertPayment(ctx context.Context, id string, amount money.Cents) (Campaign, error) {
	if !validAmount(amount) {
		return Campaign{}, ErrInvalidAmount
	}
	c, err := s.repo.Decrement(ctx, id, amount, s.now())
	if err != nil {
		return Campaign{}, apperr.Wrap(apperr.Internal, "failed to update donation campaign", err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete donation campaign", err)
	}
	return nil
}

func (s *Service) increment(ctx context.Context, id string, amount money.Cents, requireActive bool) (Campaign, error) {
	updated, err := s.repo.Increment(ctx, id, amount, requireActive, s.now())
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, ErrNotApplied) {
		return Campaign{}, apperr.Wrap(apperr.Internal, "failed to add donation", err)
	}

	// Otra escritura ganó la carrera: releer para reportar el motivo real.
	c, gerr := s.Get(ctx, id)
	if gerr != nil {
		return Campaign{}, gerr
	}
	if cerr := checkDonation(c, amount, requireActive); cerr != nil {
		return Campaign{}, cerr
	}
	return Campaign{}, ErrConcurrent
}

func checkDonation(c Campaign, amount money.Cents, requireActive bool) error {
	if requireActive && c.Status != StatusActive {
		return ErrNotActive
	}
	if amount > c.MaxAmount-c.TotalDonations {
		return ErrCapExceeded
	}
	return nil
}

func validAmount(v money.Cents) bool {
	return v > 0
}

func apply(dst *string, v *string) {
	if v == nil {
		return
	}
	*dst = strings.TrimSpace(*v)
}

func trimInput(in *CreateInput) {
	in.OwnerName = strings.TrimSpace(in.OwnerName)
	in.PetName = strings.TrimSpace(in.PetName)
	in.Image = strings.TrimSpace(in.Image)
	in.ShortDescription = strings.TrimSpace(in.ShortDescription)
	in.LongDescription = strings.TrimSpace(in.LongDescription)
}
