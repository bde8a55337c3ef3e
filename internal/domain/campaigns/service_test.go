package campaigns

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"petify-api/internal/platform/apperr"
	"petify-api/internal/platform/money"
	"petify-api/internal/platform/pagination"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Campaign

	// rejectNextIncrement simula que otra escritura ganó la carrera.
	rejectNextIncrement bool
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Campaign{}}
}

func (r *testRepo) Create(ctx context.Context, c Campaign) error {
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Campaign, error) {
	c, ok := r.byID[id]
	if !ok {
		return Campaign{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) List(ctx context.Context, f ListFilter, page pagination.Request) ([]Campaign, int, error) {
	out := make([]Campaign, 0)
	for _, c := range r.byID {
		if f.ActiveOnly && c.Status != StatusActive {
			continue
		}
		if f.OwnerEmail != "" && c.OwnerEmail != f.OwnerEmail {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return pagination.Slice(out, page), len(out), nil
}

func (r *testRepo) Update(ctx context.Context, c Campaign) error {
	cur, ok := r.byID[c.ID]
	if !ok {
		return ErrNotFound
	}
	if cur.TotalDonations > c.MaxAmount {
		return ErrNotApplied
	}
	c.TotalDonations = cur.TotalDonations
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) SetStatus(ctx context.Context, id string, status Status, at time.Time) error {
	c, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	c.Status = status
	c.UpdatedAt = at
	r.byID[id] = c
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) Increment(ctx context.Context, id string, amount money.Cents, requireActive bool, at time.Time) (Campaign, error) {
	c, ok := r.byID[id]
	if !ok {
		return Campaign{}, ErrNotFound
	}
	if r.rejectNextIncrement {
		r.rejectNextIncrement = false
		return Campaign{}, ErrNotApplied
	}
	if requireActive && c.Status != StatusActive {
		return Campaign{}, ErrNotApplied
	}
	if amount > c.MaxAmount-c.TotalDonations {
		return Campaign{}, ErrNotApplied
	}
	c.TotalDonations += amount
	c.UpdatedAt = at
	r.byID[id] = c
	return c, nil
}

func (r *testRepo) Decrement(ctx context.Context, id string, amount money.Cents, at time.Time) (Campaign, error) {
	c, ok := r.byID[id]
	if !ok {
		return Campaign{}, ErrNotFound
	}
	c.TotalDonations = max(0, c.TotalDonations-amount)
	c.UpdatedAt = at
	r.byID[id] = c
	return c, nil
}

var fixedNow = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

const owner = "owner" + "@petify.test"

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func validInput() CreateInput {
	return CreateInput{
		PetName:          "Milo",
		Image:            "https://img/milo.jpg",
		MaxAmount:        100,
		LastDate:         fixedNow.Add(30 * 24 * time.Hour),
		ShortDescription: "Cirugía",
		LongDescription:  "Milo necesita una cirugía de cadera.",
	}
}

// -------------------------
// Tests
// -------------------------

func TestCreate_Defaults(t *testing.T) {
	svc, _ := newTestService()

	c, err := svc.Create(context.Background(), owner, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.Status != StatusActive || c.TotalDonations != 0 || c.OwnerEmail != owner {
		t.Fatalf("unexpected campaign: %+v", c)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	past := validInput()
	past.LastDate = fixedNow.Add(-time.Hour)
	if _, err := svc.Create(ctx, owner, past); !errors.Is(err, ErrLastDatePast) {
		t.Fatalf("expected ErrLastDatePast, got %v", err)
	}

	now := validInput()
	now.LastDate = fixedNow
	if _, err := svc.Create(ctx, owner, now); !errors.Is(err, ErrLastDatePast) {
		t.Fatalf("lastDate == now must be rejected, got %v", err)
	}

	zero := validInput()
	zero.MaxAmount = 0
	if _, err := svc.Create(ctx, owner, zero); !errors.Is(err, ErrMaxAmount) {
		t.Fatalf("expected ErrMaxAmount, got %v", err)
	}

	missing := validInput()
	missing.ShortDescription = " "
	if _, err := svc.Create(ctx, owner, missing); apperr.Message(err) != "shortDescription is required" {
		t.Fatalf("expected shortDescription is required, got %v", err)
	}

	noDate := validInput()
	noDate.LastDate = time.Time{}
	if _, err := svc.Create(ctx, owner, noDate); !apperr.IsKind(err, apperr.Invalid) {
		t.Fatalf("expected Invalid, got %v", err)
	}

	badStatus := validInput()
	badStatus.Status = "archived"
	if _, err := svc.Create(ctx, owner, badStatus); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestScenario_DonationsRespectCap(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()
	c, _ := svc.Create(ctx, owner, validInput())

	res, err := svc.RecordDonation(ctx, c.ID, 60)
	if err != nil {
		t.Fatalf("donate 60: %v", err)
	}
	if res.NewTotal != 60 || res.Progress != 60 {
		t.Fatalf("expected 60/60, got %+v", res)
	}

	_, err = svc.RecordDonation(ctx, c.ID, 50)
	if !errors.Is(err, ErrCapExceeded) || !apperr.IsKind(err, apperr.Conflict) {
		t.Fatalf("expected ErrCapExceeded, got %v", err)
	}
	if repo.byID[c.ID].TotalDonations != 60 {
		t.Fatalf("total must stay 60, got %v", repo.byID[c.ID].TotalDonations)
	}

	res, err = svc.RecordDonation(ctx, c.ID, 40)
	if err != nil {
		t.Fatalf("donate 40: %v", err)
	}
	if res.NewTotal != 100 || res.Progress != 100 {
		t.Fatalf("expected 100/100, got %+v", res)
	}
}

func TestRecordDonation_Errors(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()
	c, _ := svc.Create(ctx, owner, validInput())

	for _, amount := range []money.Cents{0, -5} {
		if _, err := svc.RecordDonation(ctx, c.ID, amount); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("amount %v: expected ErrInvalidAmount, got %v", amount, err)
		}
	}

	if _, err := svc.RecordDonation(ctx, "missing", 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	for _, st := range []Status{StatusPaused, StatusCompleted, StatusCancelled} {
		if _, err := svc.SetStatus(ctx, c.ID, st); err != nil {
			t.Fatalf("set status: %v", err)
		}
		if _, err := svc.RecordDonation(ctx, c.ID, 10); !errors.Is(err, ErrNotActive) {
			t.Fatalf("%s: expected ErrNotActive, got %v", st, err)
		}
		if repo.byID[c.ID].TotalDonations != 0 {
			t.Fatalf("%s: total must stay 0", st)
		}
	}
}

func cents(t *testing.T, v float64) money.Cents {
	t.Helper()
	c, err := money.FromFloat(v)
	if err != nil {
		t.Fatalf("amount %v: %v", v, err)
	}
	return c
}

func TestRecordDonation_ExactFitWithCents(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()
	in := validInput()
	in.MaxAmount = cents(t, 0.3)
	c, _ := svc.Create(ctx, owner, in)

	if _, err := svc.RecordDonation(ctx, c.ID, cents(t, 0.1)); err != nil {
		t.Fatalf("donate 0.1: %v", err)
	}
	res, err := svc.RecordDonation(ctx, c.ID, cents(t, 0.2))
	if err != nil {
		t.Fatalf("donate 0.2 must fit exactly: %v", err)
	}
	if res.NewTotal != in.MaxAmount || res.NewTotal.Float64() != 0.3 || res.Progress != 100 {
		t.Fatalf("expected 0.3 / 100%%, got %v / %v", res.NewTotal, res.Progress)
	}
	if _, err := svc.RecordDonation(ctx, c.ID, cents(t, 0.01)); !errors.Is(err, ErrCapExceeded) {
		t.Fatalf("expected ErrCapExceeded once full, got %v", err)
	}

	_, _ = svc.RevertPayment(ctx, c.ID, cents(t, 0.1))
	_, _ = svc.RevertPayment(ctx, c.ID, cents(t, 0.2))
	if got := repo.byID[c.ID].TotalDonations; got != 0 {
		t.Fatalf("refunds must bring the total back to exactly 0, got %v", got)
	}
}

func TestRecordDonation_LostRaceIsReportedFromFreshState(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()
	c, _ := svc.Create(ctx, owner, validInput())

	repo.rejectNextIncrement = true
	_, err := svc.RecordDonation(ctx, c.ID, 10)
	if !errors.Is(err, ErrConcurrent) {
		t.Fatalf("expected ErrConcurrent, got %v", err)
	}
}

func TestInvariant_TotalWithinBounds(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()
	c, _ := svc.Create(ctx, owner, validInput())

	for _, amount := range []money.Cents{30, 30, 30, 30, 5, 5, 1, 50} {
		_, _ = svc.RecordDonation(ctx, c.ID, amount)
		total := repo.byID[c.ID].TotalDonations
		if total < 0 || total > 100 {
			t.Fatalf("total out of bounds: %v", total)
		}
	}
	if repo.byID[c.ID].TotalDonations != 100 {
		t.Fatalf("expected 100, got %v", repo.byID[c.ID].TotalDonations)
	}
}

func TestApplyPayment_IgnoresStatusButKeepsCap(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	c, _ := svc.Create(ctx, owner, validInput())
	_, _ = svc.SetStatus(ctx, c.ID, StatusPaused)

	updated, err := svc.ApplyPayment(ctx, c.ID, 70)
	if err != nil || updated.TotalDonations != 70 {
		t.Fatalf("unexpected %+v err=%v", updated, err)
	}
	if _, err := svc.ApplyPayment(ctx, c.ID, 31); !errors.Is(err, ErrCapExceeded) {
		t.Fatalf("expected ErrCapExceeded, got %v", err)
	}
}

func TestRevertPayment_FloorsAtZero(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	c, _ := svc.Create(ctx, owner, validInput())
	_, _ = svc.RecordDonation(ctx, c.ID, 20)

	updated, err := svc.RevertPayment(ctx, c.ID, 5)
	if err != nil || updated.TotalDonations != 15 {
		t.Fatalf("expected 15, got %+v err=%v", updated, err)
	}
	updated, err = svc.RevertPayment(ctx, c.ID, 50)
	if err != nil || updated.TotalDonations != 0 {
		t.Fatalf("expected floor at 0, got %+v err=%v", updated, err)
	}
	if _, err := svc.RevertPayment(ctx, "missing", 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_ProtectsLedgerFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	c, _ := svc.Create(ctx, owner, validInput())
	_, _ = svc.RecordDonation(ctx, c.ID, 60)

	low := money.Cents(50)
	if _, err := svc.Update(ctx, c.ID, Patch{MaxAmount: &low}); !errors.Is(err, ErrMaxBelowTotal) {
		t.Fatalf("expected ErrMaxBelowTotal, got %v", err)
	}
	zero := money.Cents(0)
	if _, err := svc.Update(ctx, c.ID, Patch{MaxAmount: &zero}); !errors.Is(err, ErrMaxAmount) {
		t.Fatalf("expected ErrMaxAmount, got %v", err)
	}
	bad := Status("cancelled-ish")
	if _, err := svc.Update(ctx, c.ID, Patch{Status: &bad}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	name := "Milo & friends"
	high := money.Cents(200)
	updated, err := svc.Update(ctx, c.ID, Patch{PetName: &name, MaxAmount: &high})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PetName != name || updated.MaxAmount != 200 || updated.TotalDonations != 60 || updated.OwnerEmail != owner {
		t.Fatalf("unexpected update: %+v", updated)
	}
	if updated.Progress() != 30 {
		t.Fatalf("expected progress 30, got %v", updated.Progress())
	}
}

func TestSetStatus_Invalid(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	c, _ := svc.Create(ctx, owner, validInput())

	if _, err := svc.SetStatus(ctx, c.ID, "deleted"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.SetStatus(ctx, "missing", StatusPaused); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListActive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	a, _ := svc.Create(ctx, owner, validInput())
	_, _ = svc.Create(ctx, owner, validInput())
	_, _ = svc.SetStatus(ctx, a.ID, StatusCompleted)

	items, total, err := svc.ListActive(ctx, pagination.Request{Page: 1, Limit: 10})
	if err != nil || total != 1 || len(items) != 1 {
		t.Fatalf("expected 1 active, got total=%d err=%v", total, err)
	}

	all, total, _ := svc.ListAll(ctx, pagination.Request{})
	if total != 2 || len(all) != 2 {
		t.Fatalf("expected 2, got %d", total)
	}
}
