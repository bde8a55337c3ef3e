package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"petify-api/internal/platform/apperr"
	"petify-api/internal/platform/pagination"
	"petify-api/internal/platform/validate"
	"petify-api/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = apperr.New(apperr.Invalid, "invalid input")
	ErrNotFound     = apperr.New(apperr.NotFound, "pet not found")

	ErrAlreadyAdopted = apperr.New(apperr.Conflict, "pet is already adopted")
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
	Name             string `json:"name" validate:"required"`
	Species          string `json:"species" validate:"required"`
	Age              string `json:"age"`
	Location         string `json:"location"`
	Image            string `json:"image"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	OwnerName        string `json:"ownerName"`

	// Si viene, se respeta tal cual; si no, se estampa now.
	CreatedAt *time.Time `json:"createdAt"`
}

func (s *Service) Create(ctx context.Context, ownerEmail string, in CreateInput) (Pet, error) {
	ownerEmail = auth.NormalizeEmail(ownerEmail)
	if ownerEmail == "" {
		return Pet{}, ErrInvalidInput
	}
	trimInput(&in)
	if err := validate.Struct(in); err != nil {
		return Pet{}, err
	}

	now := s.now()
	createdAt := now
	if in.CreatedAt != nil && !in.CreatedAt.IsZero() {
		createdAt = *in.CreatedAt
	}

	p := Pet{
		ID:               uuid.NewString(),
		OwnerEmail:       ownerEmail,
		OwnerName:        in.OwnerName,
		Name:             in.Name,
		Species:          in.Species,
		Age:              in.Age,
		Location:         in.Location,
		Image:            in.Image,
		ShortDescription: in.ShortDescription,
		LongDescription:  in.LongDescription,
		Adopted:          false,
		CreatedAt:        createdAt,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, apperr.Wrap(apperr.Internal, "failed to create pet", err)
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrNotFound
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, apperr.Wrap(apperr.Internal, "failed to fetch pet", err)
	}
	return p, nil
}

// ListAvailable: solo no adoptadas, más nuevas primero.
func (s *Service) ListAvailable(ctx context.Context, page pagination.Request) ([]Pet, int, error) {
	return s.list(ctx, ListFilter{AvailableOnly: true}, page)
}

func (s *Service) ListAll(ctx context.Context, page pagination.Request) ([]Pet, int, error) {
	return s.list(ctx, ListFilter{}, page)
}

func (s *Service) ListByOwner(ctx context.Context, ownerEmail string, page pagination.Request) ([]Pet, int, error) {
	ownerEmail = auth.NormalizeEmail(ownerEmail)
	if ownerEmail == "" {
		return nil, 0, apperr.New(apperr.Invalid, "email is required")
	}
	return s.list(ctx, ListFilter{OwnerEmail: ownerEmail}, page)
}

func (s *Service) list(ctx context.Context, f ListFilter, page pagination.Request) ([]Pet, int, error) {
	items, total, err := s.repo.List(ctx, f, page.Normalize())
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.Internal, "failed to fetch pets", err)
	}
	return items, total, nil
}

// Update aplica el patch campo por campo. name y species no pueden quedar vacíos.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Pet, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	apply(&p.Name, patch.Name)
	apply(&p.Species, patch.Species)
	apply(&p.Age, patch.Age)
	apply(&p.Location, patch.Location)
	apply(&p.Image, patch.Image)
	apply(&p.ShortDescription, patch.ShortDescription)
	apply(&p.LongDescription, patch.LongDescription)
	apply(&p.OwnerName, patch.OwnerName)

	if p.Name == "" {
		return Pet{}, apperr.New(apperr.Invalid, "name is required")
	}
	if p.Species == "" {
		return Pet{}, apperr.New(apperr.Invalid, "species is required")
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, apperr.Wrap(apperr.Internal, "failed to update pet", err)
	}
	return p, nil
}

// SetAdopted es la única vía para fijar el flag en cualquier sentido (admin).
func (s *Service) SetAdopted(ctx context.Context, id string, adopted bool) (Pet, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if p.Adopted == adopted {
		return p, nil
	}

	now := s.now()
	if err := s.repo.SetAdopted(ctx, id, adopted, now); err != nil {
		return Pet{}, apperr.Wrap(apperr.Internal, "failed to update pet", err)
	}
	p.Adopted = adopted
	p.UpdatedAt = now
	return p, nil
}

// MarkAdopted es la vía del dueño: solo false -> true, idempotente.
func (s *Service) MarkAdopted(ctx context.Context, id string) (Pet, error) {
	p, err := s.Adopt(ctx, id)
	if errors.Is(err, ErrAlreadyAdopted) {
		return s.Get(ctx, id)
	}
	return p, err
}

// Adopt es la vía del workflow de adopciones: flip condicional false -> true.
// Entre dos llamadas concurrentes solo una gana; la otra recibe ErrAlreadyAdopted.
func (s *Service) Adopt(ctx context.Context, id string) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrNotFound
	}
	if err := s.repo.MarkAdoptedIfAvailable(ctx, id, s.now()); err != nil {
		return Pet{}, apperr.Wrap(apperr.Internal, "failed to update pet", err)
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete pet", err)
	}
	return nil
}

func apply(dst *string, v *string) {
	if v == nil {
		return
	}
	*dst = strings.TrimSpace(*v)
}

func trimInput(in *CreateInput) {
	in.Name = strings.TrimSpace(in.Name)
	in.Species = strings.TrimSpace(in.Species)
	in.Age = strings.TrimSpace(in.Age)
	in.Location = strings.TrimSpace(in.Location)
	in.Image = strings.TrimSpace(in.Image)
	in.ShortDescription = strings.TrimSpace(in.ShortDescription)
	in.LongDescription = strings.TrimSpace(in.LongDescription)
	in.OwnerName = strings.TrimSpace(in.OwnerName)
}
