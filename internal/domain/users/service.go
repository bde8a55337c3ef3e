package users

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
	ErrInvalidRole  = apperr.New(apperr.Invalid, "invalid role. Must be user or admin")
	ErrNotFound     = apperr.New(apperr.NotFound, "user not found")
	ErrDuplicate    = apperr.New(apperr.Conflict, "user already exists")
	ErrForbidden    = apperr.New(apperr.Forbidden, "forbidden access")
	ErrBanned       = apperr.New(apperr.Forbidden, "user is banned")
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

var _ auth.Authorizer = (*Service)(nil)

type SignupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
}

// Signup registra al usuario con rol user. Un email ya registrado es Conflict.
func (s *Service) Signup(ctx context.Context, in SignupInput) (User, error) {
	in.Email = auth.NormalizeEmail(in.Email)
	if err := validate.Struct(in); err != nil {
		return User{}, err
	}

	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return User{}, ErrDuplicate
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, apperr.Wrap(apperr.Internal, "failed to create user", err)
	}

	u := User{
		ID:        uuid.NewString(),
		Email:     in.Email,
		Name:      strings.TrimSpace(in.Name),
		PhotoURL:  strings.TrimSpace(in.PhotoURL),
		Role:      auth.RoleUser,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		// carrera entre el chequeo y el insert: el índice único decide
		return User{}, apperr.Wrap(apperr.Internal, "failed to create user", err)
	}
	return u, nil
}

func (s *Service) GetRole(ctx context.Context, email string) (auth.Role, error) {
	email = auth.NormalizeEmail(email)
	if email == "" {
		return "", apperr.New(apperr.Invalid, "email is required")
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to get role", err)
	}
	return u.Role, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	u, err := s.repo.GetByEmail(ctx, auth.NormalizeEmail(email))
	if err != nil {
		return User{}, apperr.Wrap(apperr.Internal, "failed to get user", err)
	}
	return u, nil
}

func (s *Service) List(ctx context.Context, page pagination.Request) ([]User, int, error) {
	items, total, err := s.repo.List(ctx, page.Normalize())
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.Internal, "failed to list users", err)
	}
	return items, total, nil
}

func (s *Service) SearchByEmail(ctx context.Context, q string) ([]User, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, apperr.New(apperr.Invalid, "email is required")
	}
	items, err := s.repo.SearchByEmail(ctx, q)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to search users", err)
	}
	return items, nil
}

func (s *Service) SetRole(ctx context.Context, id string, role auth.Role) (User, error) {
	if !role.Valid() {
		return User{}, ErrInvalidRole
	}
	return s.mutate(ctx, id, func(u *User) { u.Role = role })
}

func (s *Service) SetBanned(ctx context.Context, id string, banned bool) (User, error) {
	return s.mutate(ctx, id, func(u *User) { u.IsBanned = banned })
}

// PromoteByEmail da rol admin a un usuario existente (bootstrap desde CLI).
func (s *Service) PromoteByEmail(ctx context.Context, email string) (User, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	return s.mutate(ctx, u.ID, func(u *User) { u.Role = auth.RoleAdmin })
}

func (s *Service) mutate(ctx context.Context, id string, fn func(u *User)) (User, error) {
	if strings.TrimSpace(id) == "" {
		return User{}, ErrInvalidInput
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, apperr.Wrap(apperr.Internal, "failed to get user", err)
	}
	fn(&u)
	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, apperr.Wrap(apperr.Internal, "failed to update user", err)
	}
	return u, nil
}

// Authorize implementa auth.Authorizer.
//   - admin: usuario inexistente, baneado o sin rol admin => Forbidden.
//   - user: baneado => Forbidden; sin registro alcanza con la identidad.
func (s *Service) Authorize(ctx context.Context, email string, required auth.Role) error {
	u, err := s.repo.GetByEmail(ctx, auth.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			if required == auth.RoleAdmin {
				return ErrForbidden
			}
			return nil
		}
		return apperr.Wrap(apperr.Internal, "failed to authorize", err)
	}

	if u.IsBanned {
		return ErrBanned
	}
	if required == auth.RoleAdmin && u.Role != auth.RoleAdmin {
		return ErrForbidden
	}
	return nil
}
