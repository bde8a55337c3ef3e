package adoptions

import (
	"context"
	"errors"
	"strings"
	"time"

	"petify-api/internal/domain/pets"
	"petify-api/internal/platform/apperr"
	"petify-api/internal/platform/validate"
	"petify-api/internal/ports/auth"
	"petify-api/internal/ports/tx"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = apperr.New(apperr.Invalid, "invalid status. Must be pending, approved, or rejected")
	ErrOwnPet        = apperr.New(apperr.Invalid, "you cannot request to adopt your own pet")
	ErrNotFound      = apperr.New(apperr.NotFound, "adoption request not found")
	ErrDuplicate     = apperr.New(apperr.Conflict, "you have already submitted an adoption request for this pet")
	ErrPetAdopted    = apperr.New(apperr.Conflict, "pet is already adopted")
)

// PetRegistry es la parte del registro de mascotas que usa el workflow.
// Se define aquí para no acoplar adoptions al handler/servicio completo de pets.
type PetRegistry interface {
	Get(ctx context.Context, id string) (pets.Pet, error)
	// Adopt hace el flip condicional; devuelve pets.ErrAlreadyAdopted si otra escritura ganó.
	Adopt(ctx context.Context, id string) (pets.Pet, error)
}

type Service struct {
	repo Repository
	pets PetRegistry
	tx   tx.Transactor
	now  func() time.Time
}

func NewService(repo Repository, petRegistry PetRegistry, txm tx.Transactor) *Service {
	if txm == nil {
		txm = tx.Noop{}
	}
	return &Service{
		repo: repo,
		pets: petRegistry,
		tx:   txm,
		now:  time.Now,
	}
}

type SubmitInput struct {
	PetID          string `json:"petId" validate:"required"`
	PetName        string `json:"petName" validate:"required"`
	PetImage       string `json:"petImage" validate:"required"`
	RequesterName  string `json:"requesterName" validate:"required"`
	RequesterEmail string `json:"requesterEmail" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Address        string `json:"address" validate:"required"`
}

// Submit crea la solicitud en estado pending.
// Orden de chequeos: campos -> mascota existe -> no adoptada -> no es propia -> no duplicada.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (AdoptionRequest, error) {
	trimInput(&in)
	in.RequesterEmail = auth.NormalizeEmail(in.RequesterEmail)
	if err := validate.Struct(in); err != nil {
		return AdoptionRequest{}, err
	}

	p, err := s.pets.Get(ctx, in.PetID)
	if err != nil {
		return AdoptionRequest{}, err
	}
	if p.Adopted {
		return AdoptionRequest{}, ErrPetAdopted
	}
	if p.OwnerEmail == in.RequesterEmail {
		return AdoptionRequest{}, ErrOwnPet
	}

	_, err = s.repo.FindByPetAndRequester(ctx, in.PetID, in.RequesterEmail)
	switch {
	case err == nil:
		return AdoptionRequest{}, ErrDuplicate
	case !errors.Is(err, ErrNotFound):
		return AdoptionRequest{}, apperr.Wrap(apperr.Internal, "failed to submit adoption request", err)
	}

	now := s.now()
	a := AdoptionRequest{
		ID:             uuid.NewString(),
		PetID:          in.PetID,
		PetName:        in.PetName,
		PetImage:       in.PetImage,
		RequesterName:  in.RequesterName,
		RequesterEmail: in.RequesterEmail,
		Phone:          in.Phone,
		Address:        in.Address,
		PetOwnerEmail:  p.OwnerEmail,
		Status:         StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// El índice único (petId, requesterEmail) cubre la carrera entre el chequeo y el insert.
	if err := s.repo.Create(ctx, a); err != nil {
		return AdoptionRequest{}, apperr.Wrap(apperr.Internal, "failed to submit adoption request", err)
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id string) (AdoptionRequest, error) {
	if strings.TrimSpace(id) == "" {
		return AdoptionRequest{}, ErrNotFound
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return AdoptionRequest{}, apperr.Wrap(apperr.Internal, "failed to fetch adoption request", err)
	}
	return a, nil
}

func (s *Service) ListAll(ctx context.Context, newestFirst bool) ([]AdoptionRequest, error) {
	return s.list(ctx, ListFilter{OldestFirst: !newestFirst})
}

func (s *Service) ListByRequester(ctx context.Context, email string) ([]AdoptionRequest, error) {
	email = auth.NormalizeEmail(email)
	if email == "" {
		return nil, apperr.New(apperr.Invalid, "email is required")
	}
	return s.list(ctx, ListFilter{RequesterEmail: email})
}

// ListByOwner devuelve las solicitudes recibidas por el dueño de las mascotas.
func (s *Service) ListByOwner(ctx context.Context, ownerEmail string) ([]AdoptionRequest, error) {
	ownerEmail = auth.NormalizeEmail(ownerEmail)
	if ownerEmail == "" {
		return nil, apperr.New(apperr.Invalid, "email is required")
	}
	return s.list(ctx, ListFilter{PetOwnerEmail: ownerEmail})
}

func (s *Service) list(ctx context.Context, f ListFilter) ([]AdoptionRequest, error) {
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch adoptions", err)
	}
	return items, nil
}

// SetStatus cambia el estado. approved marca la mascota como adoptada en la misma transacción
// con una escritura condicional; si otra solicitud la adoptó antes (aunque sea en paralelo)
// responde Conflict. Re-aprobar una solicitud aprobada es un no-op sobre la mascota.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) (AdoptionRequest, error) {
	if !status.Valid() {
		return AdoptionRequest{}, ErrInvalidStatus
	}

	var out AdoptionRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		a, err := s.Get(ctx, id)
		if err != nil {
			return err
		}

		if status == StatusApproved {
			_, err := s.pets.Adopt(ctx, a.PetID)
			switch {
			case err == nil:
			case errors.Is(err, pets.ErrAlreadyAdopted):
				// ya adoptada: solo vale si fue esta misma solicitud
				if a.Status != StatusApproved {
					return ErrPetAdopted
				}
			default:
				return err
			}
		}

		now := s.now()
		if err := s.repo.UpdateStatus(ctx, a.ID, status, now); err != nil {
			return apperr.Wrap(apperr.Internal, "failed to update adoption status", err)
		}
		a.Status = status
		a.UpdatedAt = now
		out = a
		return nil
	})
	if err != nil {
		return AdoptionRequest{}, apperr.Wrap(apperr.Internal, "failed to update adoption status", err)
	}
	return out, nil
}

func trimInput(in *SubmitInput) {
	in.PetID = strings.TrimSpace(in.PetID)
	in.PetName = strings.TrimSpace(in.PetName)
	in.PetImage = strings.TrimSpace(in.PetImage)
	in.RequesterName = strings.TrimSpace(in.RequesterName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
}
