package payments

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"petify-api/internal/domain/campaigns"
	"petify-api/internal/platform/apperr"
	"petify-api/internal/platform/money"
	"petify-api/internal/ports/payment"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	byID map[string]Payment
}

func newTestRepo() *testRepo { return &testRepo{byID: map[string]Payment{}} }

func (r *testRepo) Create(ctx context.Context, p Payment) error {
	for _, cur := range r.byID {
		if cur.TransactionID == p.TransactionID {
			return ErrDuplicate
		}
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Payment, error) {
	p, ok := r.byID[id]
	if !ok {
		return Payment{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]Payment, error) {
	out := []Payment{}
	for _, p := range r.byID {
		if f.CampaignID != "" && p.CampaignID != f.CampaignID {
			continue
		}
		if f.PayerEmail != "" && p.PayerEmail != f.PayerEmail {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaidAt.After(out[j].PaidAt) })
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// testLedger reproduce las reglas del ledger de campañas que usa el recorder.
type testLedger struct {
	byID     map[string]campaigns.Campaign
	getCalls int
}

func (l *testLedger) Get(ctx context.Context, id string) (campaigns.Campaign, error) {
	l.getCalls++
	c, ok := l.byID[id]
	if !ok {
		return campaigns.Campaign{}, campaigns.ErrNotFound
	}
	return c, nil
}

func (l *testLedger) CheckCapacity(ctx context.Context, id string, amount money.Cents) (campaigns.Campaign, error) {
	c, err := l.Get(ctx, id)
	if err != nil {
		return c, err
	}
	if c.Status != campaigns.StatusActive {
		return c, campaigns.ErrNotActive
	}
	if amount > c.MaxAmount-c.TotalDonations {
		return c, campaigns.ErrCapExceeded
	}
	return c, nil
}

func (l *testLedger) ApplyPayment(ctx context.Context, id string, amount money.Cents) (campaigns.Campaign, error) {
	c, err := l.Get(ctx, id)
	if err != nil {
		return c, err
	}
	if amount > c.MaxAmount-c.TotalDonations {
		return c, campaigns.ErrCapExceeded
	}
	c.TotalDonations += amount
	l.byID[id] = c
	return c, nil
}

func (l *testLedger) RevertPayment(ctx context.Context, id string, amount money.Cents) (campaigns.Campaign, error) {
	c, err := l.Get(ctx, id)
	if err != nil {
		return c, err
	}
	c.TotalDonations = max(0, c.TotalDonations-amount)
	l.byID[id] = c
	return c, nil
}

type testProvider struct {
	err      error
	amount   int64
	currency string
}

func (p *testProvider) CreateIntent(ctx context.Context, amountInCents int64, currency string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.amount = amountInCents
	p.currency = currency
	return "pi_123_secret_abc", nil
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func payer() string { return "payer" + "@petify.test" }

func newTestService(provider payment.IntentProvider) (*Service, *testRepo, *testLedger) {
	repo := newTestRepo()
	ledger := &testLedger{byID: map[string]campaigns.Campaign{
		"c1": {
			ID:               "c1",
			OwnerEmail:       "owner" + "@petify.test",
			Image:            "https://img/c1.jpg",
			ShortDescription: "Cirugía de Milo",
			MaxAmount:        10000,
			Status:           campaigns.StatusActive,
		},
	}}
	svc := NewService(repo, ledger, nil, provider, "")
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, ledger
}

func recordInput(amount float64, txID string) RecordInput {
	return RecordInput{
		CampaignID:    "c1",
		PayerEmail:    payer(),
		DonorName:     "Ana",
		Amount:        amount,
		PaymentMethod: "card",
		TransactionID: txID,
	}
}

// -------------------------
// Tests
// -------------------------

func TestRecord_IncrementsCampaign(t *testing.T) {
	svc, repo, ledger := newTestService(nil)

	p, err := svc.Record(context.Background(), recordInput(40, "tx-1"))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !p.PaidAt.Equal(fixedNow) || p.PayerEmail != payer() {
		t.Fatalf("unexpected payment: %+v", p)
	}
	if ledger.byID["c1"].TotalDonations != 4000 || p.Amount != 4000 {
		t.Fatalf("expected total 40.00, got %v", ledger.byID["c1"].TotalDonations)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected 1 payment stored")
	}
}

func TestRecord_Validation(t *testing.T) {
	svc, repo, _ := newTestService(nil)
	ctx := context.Background()

	missing := recordInput(10, "")
	if _, err := svc.Record(ctx, missing); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Record(ctx, recordInput(0, "tx")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero amount: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Record(ctx, recordInput(-5, "tx")); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("negative amount: expected ErrInvalidAmount, got %v", err)
	}
	if _, err := svc.Record(ctx, recordInput(0.001, "tx")); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("sub-cent amount: expected ErrInvalidAmount, got %v", err)
	}

	unknown := recordInput(10, "tx")
	unknown.CampaignID = "missing"
	if _, err := svc.Record(ctx, unknown); !errors.Is(err, campaigns.ErrNotFound) {
		t.Fatalf("expected campaign not found, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("no payment must be stored")
	}
}

func TestRecord_CapExceededLeavesNoTrace(t *testing.T) {
	svc, repo, ledger := newTestService(nil)
	ctx := context.Background()

	if _, err := svc.Record(ctx, recordInput(80, "tx-1")); err != nil {
		t.Fatalf("record: %v", err)
	}
	_, err := svc.Record(ctx, recordInput(30, "tx-2"))
	if !errors.Is(err, campaigns.ErrCapExceeded) || !apperr.IsKind(err, apperr.Conflict) {
		t.Fatalf("expected ErrCapExceeded, got %v", err)
	}
	if ledger.byID["c1"].TotalDonations != 8000 || len(repo.byID) != 1 {
		t.Fatalf("state changed: total=%v payments=%d", ledger.byID["c1"].TotalDonations, len(repo.byID))
	}
}

func TestRecord_DuplicateTransaction(t *testing.T) {
	svc, repo, ledger := newTestService(nil)
	ctx := context.Background()

	if _, err := svc.Record(ctx, recordInput(10, "tx-1")); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := svc.Record(ctx, recordInput(10, "tx-1")); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if ledger.byID["c1"].TotalDonations != 1000 || len(repo.byID) != 1 {
		t.Fatalf("duplicate must not change state")
	}
}

func TestRecord_CompensatesWhenLedgerRejects(t *testing.T) {
	svc, repo, ledger := newTestService(nil)
	ctx := context.Background()

	// El ledger cambia entre el pre-chequeo y el incremento.
	svc.ledger = &racingLedger{testLedger: ledger}
	if _, err := svc.Record(ctx, recordInput(50, "tx-1")); !errors.Is(err, campaigns.ErrCapExceeded) {
		t.Fatalf("expected ErrCapExceeded, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("payment must be removed when the campaign rejects it")
	}
}

func TestRecord_CompensationFailureIsReported(t *testing.T) {
	svc, repo, ledger := newTestService(nil)
	ctx := context.Background()

	deleteErr := errors.New("connection reset")
	svc.ledger = &racingLedger{testLedger: ledger}
	svc.repo = &failingDeleteRepo{testRepo: repo, err: deleteErr}

	_, err := svc.Record(ctx, recordInput(50, "tx-1"))
	if !errors.Is(err, campaigns.ErrCapExceeded) || !errors.Is(err, deleteErr) {
		t.Fatalf("expected both the ledger and the compensation error, got %v", err)
	}
	if !apperr.IsKind(err, apperr.Internal) {
		t.Fatalf("an uncompensated payment must surface as internal, got %v", err)
	}
}

type failingDeleteRepo struct {
	*testRepo
	err error
}

func (r *failingDeleteRepo) Delete(ctx context.Context, id string) error { return r.err }

type racingLedger struct {
	*testLedger
}

func (l *racingLedger) ApplyPayment(ctx context.Context, id string, amount money.Cents) (campaigns.Campaign, error) {
	return campaigns.Campaign{}, campaigns.ErrCapExceeded
}

func TestRecord_ExactFitWithCents(t *testing.T) {
	svc, _, ledger := newTestService(nil)
	ctx := context.Background()
	c := ledger.byID["c1"]
	c.MaxAmount = 30 // 0.30
	ledger.byID["c1"] = c

	first, err := svc.Record(ctx, recordInput(0.1, "tx-1"))
	if err != nil {
		t.Fatalf("record 0.1: %v", err)
	}
	second, err := svc.Record(ctx, recordInput(0.2, "tx-2"))
	if err != nil {
		t.Fatalf("record 0.2 must fit exactly: %v", err)
	}
	if got := ledger.byID["c1"]; got.TotalDonations != got.MaxAmount || got.Progress() != 100 {
		t.Fatalf("expected a full campaign, got total=%v progress=%v", got.TotalDonations, got.Progress())
	}

	_, _ = svc.Refund(ctx, first.ID)
	_, _ = svc.Refund(ctx, second.ID)
	if got := ledger.byID["c1"].TotalDonations; got != 0 {
		t.Fatalf("refunds must bring the total back to exactly 0, got %v", got)
	}
}

func TestList_ComposesCampaignFields(t *testing.T) {
	svc, repo, ledger := newTestService(nil)
	ctx := context.Background()

	_, _ = svc.Record(ctx, recordInput(10, "tx-1"))
	svc.now = func() time.Time { return fixedNow.Add(time.Minute) }
	_, _ = svc.Record(ctx, recordInput(20, "tx-2"))

	// pago huérfano: su campaña ya no existe
	repo.byID["orphan"] = Payment{ID: "orphan", CampaignID: "gone", PayerEmail: payer(), Amount: 500, PaidAt: fixedNow.Add(-time.Hour)}

	ledger.getCalls = 0
	items, err := svc.List(ctx, ListFilter{PayerEmail: payer()})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3, got %d", len(items))
	}
	if items[0].Amount != 2000 || items[0].CampaignImage != "https://img/c1.jpg" || items[0].CampaignShortDescription != "Cirugía de Milo" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[2].ID != "orphan" || items[2].CampaignImage != "" {
		t.Fatalf("orphan must have empty campaign fields: %+v", items[2])
	}
	if ledger.getCalls != 2 {
		t.Fatalf("expected one lookup per campaign, got %d", ledger.getCalls)
	}
}

func TestRefund_FloorsAtZero(t *testing.T) {
	svc, repo, ledger := newTestService(nil)
	ctx := context.Background()

	p, _ := svc.Record(ctx, recordInput(30, "tx-1"))

	c := ledger.byID["c1"]
	c.TotalDonations = 1000 // ajuste manual posterior
	ledger.byID["c1"] = c

	if _, err := svc.Refund(ctx, p.ID); err != nil {
		t.Fatalf("refund: %v", err)
	}
	if ledger.byID["c1"].TotalDonations != 0 {
		t.Fatalf("expected floor at 0, got %v", ledger.byID["c1"].TotalDonations)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("payment must be deleted")
	}
	if _, err := svc.Refund(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRefund_CampaignGone(t *testing.T) {
	svc, repo, ledger := newTestService(nil)
	ctx := context.Background()

	p, _ := svc.Record(ctx, recordInput(30, "tx-1"))
	delete(ledger.byID, "c1")

	if _, err := svc.Refund(ctx, p.ID); err != nil {
		t.Fatalf("refund: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("payment must be deleted")
	}
}

func TestCreateIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates with default currency", func(t *testing.T) {
		prov := &testProvider{}
		svc, _, _ := newTestService(prov)
		secret, err := svc.CreateIntent(ctx, 2500, "c1")
		if err != nil || secret == "" {
			t.Fatalf("secret=%q err=%v", secret, err)
		}
		if prov.amount != 2500 || prov.currency != "usd" {
			t.Fatalf("unexpected provider call: %+v", prov)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		svc, _, _ := newTestService(&testProvider{})
		if _, err := svc.CreateIntent(ctx, 0, ""); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("campaign pre-check", func(t *testing.T) {
		svc, _, ledger := newTestService(&testProvider{})
		if _, err := svc.CreateIntent(ctx, 10001, "c1"); !errors.Is(err, campaigns.ErrCapExceeded) {
			t.Fatalf("expected ErrCapExceeded, got %v", err)
		}
		if _, err := svc.CreateIntent(ctx, 100, "missing"); !errors.Is(err, campaigns.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		c := ledger.byID["c1"]
		c.Status = campaigns.StatusPaused
		ledger.byID["c1"] = c
		if _, err := svc.CreateIntent(ctx, 100, "c1"); !errors.Is(err, campaigns.ErrNotActive) {
			t.Fatalf("expected ErrNotActive, got %v", err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		svc, _, _ := newTestService(nil)
		_, err := svc.CreateIntent(ctx, 100, "")
		if apperr.KindOf(err).HTTPStatus() != 503 {
			t.Fatalf("expected 503, got %v", err)
		}

		svc, _, _ = newTestService(&testProvider{err: payment.ErrNotConfigured})
		if _, err := svc.CreateIntent(ctx, 100, ""); !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("provider failure is internal", func(t *testing.T) {
		svc, _, _ := newTestService(&testProvider{err: errors.New("boom")})
		_, err := svc.CreateIntent(ctx, 100, "")
		if !apperr.IsKind(err, apperr.Internal) || apperr.Message(err) != "failed to create payment intent" {
			t.Fatalf("expected internal error, got %v", err)
		}
	})
}
