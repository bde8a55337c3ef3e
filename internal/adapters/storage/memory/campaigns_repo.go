package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"petify-api/internal/domain/campaigns"
	"petify-api/internal/platform/money"
	"petify-api/internal/platform/pagination"
)

// campaignRepo aplica los updates condicionales bajo el mutex: equivalen al
// UpdateOne con filtro de mongo o al UPDATE ... WHERE de postgres.
// El rollback revierte solo lo que tocó cada escritura (el total por delta inverso),
// así una donación fuera de la transacción que cae en medio no se pierde.
type campaignRepo struct {
	mu   sync.RWMutex
	byID map[string]campaigns.Campaign
}

func NewCampaignRepo() campaigns.Repository {
	return &campaignRepo{
		byID: make(map[string]campaigns.Campaign),
	}
}

func (r *campaignRepo) Create(ctx context.Context, c campaigns.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[c.ID] = c
	onRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.byID, c.ID)
	})
	return nil
}

func (r *campaignRepo) GetByID(ctx context.Context, id string) (campaigns.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return campaigns.Campaign{}, campaigns.ErrNotFound
	}
	return c, nil
}

func (r *campaignRepo) List(ctx context.Context, f campaigns.ListFilter, page pagination.Request) ([]campaigns.Campaign, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]campaigns.Campaign, 0)
	for _, c := range r.byID {
		if f.OwnerEmail != "" && c.OwnerEmail != f.OwnerEmail {
			continue
		}
		if f.ActiveOnly && c.Status != campaigns.StatusActive {
			continue
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return pagination.Slice(out, page), len(out), nil
}

func (r *campaignRepo) Update(ctx context.Context, c campaigns.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[c.ID]
	if !ok {
		return campaigns.ErrNotFound
	}
	if old.TotalDonations > c.MaxAmount {
		return campaigns.ErrNotApplied
	}
	next := old
	next.PetName = c.PetName
	next.Image = c.Image
	next.MaxAmount = c.MaxAmount
	next.LastDate = c.LastDate
	next.ShortDescription = c.ShortDescription
	next.LongDescription = c.LongDescription
	next.Status = c.Status
	next.UpdatedAt = c.UpdatedAt
	r.byID[c.ID] = next

	r.undo(ctx, c.ID, func(cur *campaigns.Campaign) {
		cur.PetName = old.PetName
		cur.Image = old.Image
		cur.MaxAmount = old.MaxAmount
		cur.LastDate = old.LastDate
		cur.ShortDescription = old.ShortDescription
		cur.LongDescription = old.LongDescription
		cur.Status = old.Status
		cur.UpdatedAt = old.UpdatedAt
	})
	return nil
}

func (r *campaignRepo) SetStatus(ctx context.Context, id string, status campaigns.Status, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[id]
	if !ok {
		return campaigns.ErrNotFound
	}
	next := old
	next.Status = status
	next.UpdatedAt = at
	r.byID[id] = next

	r.undo(ctx, id, func(cur *campaigns.Campaign) {
		cur.Status = old.Status
		cur.UpdatedAt = old.UpdatedAt
	})
	return nil
}

func (r *campaignRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[id]
	if !ok {
		return campaigns.ErrNotFound
	}
	delete(r.byID, id)

	onRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if _, ok := r.byID[old.ID]; !ok {
			r.byID[old.ID] = old
		}
	})
	return nil
}

func (r *campaignRepo) Increment(ctx context.Context, id string, amount money.Cents, requireActive bool, at time.Time) (campaigns.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[id]
	if !ok {
		return campaigns.Campaign{}, campaigns.ErrNotFound
	}
	if requireActive && old.Status != campaigns.StatusActive {
		return campaigns.Campaign{}, campaigns.ErrNotApplied
	}
	if amount > old.MaxAmount-old.TotalDonations {
		return campaigns.Campaign{}, campaigns.ErrNotApplied
	}
	next := old
	next.TotalDonations += amount
	next.UpdatedAt = at
	r.byID[id] = next

	r.undo(ctx, id, func(cur *campaigns.Campaign) {
		cur.TotalDonations = max(0, cur.TotalDonations-amount)
	})
	return next, nil
}

func (r *campaignRepo) Decrement(ctx context.Context, id string, amount money.Cents, at time.Time) (campaigns.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[id]
	if !ok {
		return campaigns.Campaign{}, campaigns.ErrNotFound
	}
	next := old
	next.TotalDonations = max(0, old.TotalDonations-amount)
	next.UpdatedAt = at
	r.byID[id] = next

	// se devuelve lo que efectivamente se restó, no amount (piso en 0)
	removed := old.TotalDonations - next.TotalDonations
	r.undo(ctx, id, func(cur *campaigns.Campaign) {
		cur.TotalDonations += removed
	})
	return next, nil
}

// undo registra revert para aplicarlo sobre el registro vigente al momento del rollback.
func (r *campaignRepo) undo(ctx context.Context, id string, revert func(cur *campaigns.Campaign)) {
	onRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		cur, ok := r.byID[id]
		if !ok {
			return
		}
		revert(&cur)
		r.byID[id] = cur
	})
}
