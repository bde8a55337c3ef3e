package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"petify-api/internal/domain/pets"
	"petify-api/internal/platform/pagination"
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[p.ID] = p
	onRollback(ctx, func() { r.remove(p.ID) })
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) List(ctx context.Context, f pets.ListFilter, page pagination.Request) ([]pets.Pet, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if f.OwnerEmail != "" && p.OwnerEmail != f.OwnerEmail {
			continue
		}
		if f.AvailableOnly && p.Adopted {
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return pagination.Slice(out, page), len(out), nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[p.ID]
	if !ok {
		return pets.ErrNotFound
	}
	next := old
	next.OwnerName = p.OwnerName
	next.Name = p.Name
	next.Species = p.Species
	next.Age = p.Age
	next.Location = p.Location
	next.Image = p.Image
	next.ShortDescription = p.ShortDescription
	next.LongDescription = p.LongDescription
	next.UpdatedAt = p.UpdatedAt
	r.byID[p.ID] = next

	onRollback(ctx, func() { r.put(old) })
	return nil
}

func (r *petRepo) SetAdopted(ctx context.Context, id string, adopted bool, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[id]
	if !ok {
		return pets.ErrNotFound
	}
	next := old
	next.Adopted = adopted
	next.UpdatedAt = at
	r.byID[id] = next

	onRollback(ctx, func() { r.put(old) })
	return nil
}

func (r *petRepo) MarkAdoptedIfAvailable(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[id]
	if !ok {
		return pets.ErrNotFound
	}
	if old.Adopted {
		return pets.ErrAlreadyAdopted
	}
	next := old
	next.Adopted = true
	next.UpdatedAt = at
	r.byID[id] = next

	onRollback(ctx, func() { r.put(old) })
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[id]
	if !ok {
		return pets.ErrNotFound
	}
	delete(r.byID, id)

	onRollback(ctx, func() { r.put(old) })
	return nil
}

func (r *petRepo) put(p pets.Pet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = p
}

func (r *petRepo) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}
