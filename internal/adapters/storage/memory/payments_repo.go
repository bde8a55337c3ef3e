package memory

import (
	"context"
	"sort"
	"sync"

	"petify-api/internal/domain/payments"
)

type paymentRepo struct {
	mu     sync.RWMutex
	byID   map[string]payments.Payment
	byTxID map[string]string
}

func NewPaymentRepo() payments.Repository {
	return &paymentRepo{
		byID:   make(map[string]payments.Payment),
		byTxID: make(map[string]string),
	}
}

func (r *paymentRepo) Create(ctx context.Context, p payments.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byTxID[p.TransactionID]; exists {
		return payments.ErrDuplicate
	}
	r.byID[p.ID] = p
	r.byTxID[p.TransactionID] = p.ID

	onRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.byID, p.ID)
		delete(r.byTxID, p.TransactionID)
	})
	return nil
}

func (r *paymentRepo) GetByID(ctx context.Context, id string) (payments.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return payments.Payment{}, payments.ErrNotFound
	}
	return p, nil
}

func (r *paymentRepo) List(ctx context.Context, f payments.ListFilter) ([]payments.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]payments.Payment, 0)
	for _, p := range r.byID {
		if f.CampaignID != "" && p.CampaignID != f.CampaignID {
			continue
		}
		if f.PayerEmail != "" && p.PayerEmail != f.PayerEmail {
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].PaidAt.Equal(out[j].PaidAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].PaidAt.After(out[j].PaidAt)
	})
	return out, nil
}

func (r *paymentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[id]
	if !ok {
		return payments.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byTxID, old.TransactionID)

	onRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.byID[old.ID] = old
		r.byTxID[old.TransactionID] = old.ID
	})
	return nil
}
