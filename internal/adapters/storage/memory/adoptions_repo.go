package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"petify-api/internal/domain/adoptions"
)

type adoptionRepo struct {
	mu   sync.RWMutex
	byID map[string]adoptions.AdoptionRequest
	// (petID, requesterEmail) -> id; emula el índice único
	byPair map[[2]string]string
}

func NewAdoptionRepo() adoptions.Repository {
	return &adoptionRepo{
		byID:   make(map[string]adoptions.AdoptionRequest),
		byPair: make(map[[2]string]string),
	}
}

func (r *adoptionRepo) Create(ctx context.Context, a adoptions.AdoptionRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]string{a.PetID, a.RequesterEmail}
	if _, exists := r.byPair[key]; exists {
		return adoptions.ErrDuplicate
	}
	r.byID[a.ID] = a
	r.byPair[key] = a.ID

	onRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.byID, a.ID)
		delete(r.byPair, key)
	})
	return nil
}

func (r *adoptionRepo) GetByID(ctx context.Context, id string) (adoptions.AdoptionRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return adoptions.AdoptionRequest{}, adoptions.ErrNotFound
	}
	return a, nil
}

func (r *adoptionRepo) FindByPetAndRequester(ctx context.Context, petID, requesterEmail string) (adoptions.AdoptionRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byPair[[2]string{petID, requesterEmail}]
	if !ok {
		return adoptions.AdoptionRequest{}, adoptions.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *adoptionRepo) List(ctx context.Context, f adoptions.ListFilter) ([]adoptions.AdoptionRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.AdoptionRequest, 0)
	for _, a := range r.byID {
		if f.RequesterEmail != "" && a.RequesterEmail != f.RequesterEmail {
			continue
		}
		if f.PetOwnerEmail != "" && a.PetOwnerEmail != f.PetOwnerEmail {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		if f.OldestFirst {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *adoptionRepo) UpdateStatus(ctx context.Context, id string, status adoptions.Status, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[id]
	if !ok {
		return adoptions.ErrNotFound
	}
	next := old
	next.Status = status
	next.UpdatedAt = at
	r.byID[id] = next

	onRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.byID[old.ID] = old
	})
	return nil
}
