package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"petify-api/internal/domain/users"
	"petify-api/internal/platform/pagination"
)

type userRepo struct {
	mu      sync.RWMutex
	byID    map[string]users.User
	byEmail map[string]string
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID:    make(map[string]users.User),
		byEmail: make(map[string]string),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return users.ErrDuplicate
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID

	onRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.byID, u.ID)
		delete(r.byEmail, u.Email)
	})
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *userRepo) List(ctx context.Context, page pagination.Request) ([]users.User, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	sortUsers(out)
	return pagination.Slice(out, page), len(out), nil
}

func (r *userRepo) SearchByEmail(ctx context.Context, q string) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q = strings.ToLower(q)
	out := make([]users.User, 0)
	for _, u := range r.byID {
		if strings.Contains(strings.ToLower(u.Email), q) {
			out = append(out, u)
		}
	}
	sortUsers(out)
	return out, nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[u.ID]
	if !ok {
		return users.ErrNotFound
	}
	next := old
	next.Name = u.Name
	next.PhotoURL = u.PhotoURL
	next.Role = u.Role
	next.IsBanned = u.IsBanned
	r.byID[u.ID] = next

	onRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.byID[old.ID] = old
	})
	return nil
}

// createdAt desc, id como desempate para orden estable.
func sortUsers(out []users.User) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
}
