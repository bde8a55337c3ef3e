package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"petify-api/internal/domain/campaigns"
	"petify-api/internal/domain/payments"
	"petify-api/internal/domain/pets"
	"petify-api/internal/platform/logger"
	"petify-api/internal/platform/pagination"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestWhereBuilder(t *testing.T) {
	var w where
	if w.String() != "" {
		t.Fatalf("empty where must render nothing")
	}
	w.add("owner_email = $%d", "a")
	w.addRaw("adopted = FALSE")
	w.add("status = $%d", "active")

	if got := w.String(); got != " WHERE owner_email = $1 AND adopted = FALSE AND status = $2" {
		t.Fatalf("unexpected where: %q", got)
	}
	if got := placeholders(" LIMIT $%d OFFSET $%d", len(w.args)); got != " LIMIT $3 OFFSET $4" {
		t.Fatalf("unexpected placeholders: %q", got)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("23505 must be a unique violation")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) || isUniqueViolation(errors.New("x")) || isUniqueViolation(nil) {
		t.Fatalf("only 23505 is a unique violation")
	}
}

// Integración: requiere PETIFY_TEST_DSN apuntando a una base descartable.
func openTestDB(t *testing.T) *Transactor {
	t.Helper()
	dsn := os.Getenv("PETIFY_TEST_DSN")
	if dsn == "" {
		t.Skip("PETIFY_TEST_DSN not set")
	}
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Migrate(db, Up, logger.Nop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewTransactor(db)
}

func TestCampaignsRepo_Integration(t *testing.T) {
	txm := openTestDB(t)
	ctx := context.Background()
	repo := NewCampaignsRepo(txm.db)
	pays := NewPaymentsRepo(txm.db)

	now := time.Now().UTC().Truncate(time.Millisecond)
	c := campaigns.Campaign{
		ID:               uuid.NewString(),
		OwnerEmail:       "owner" + "@petify.test",
		Image:            "img",
		MaxAmount:        100,
		LastDate:         now.Add(24 * time.Hour),
		ShortDescription: "s",
		LongDescription:  "l",
		Status:           campaigns.StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Increment(ctx, c.ID, 60, true, now)
	if err != nil || got.TotalDonations != 60 {
		t.Fatalf("increment: %+v err=%v", got, err)
	}
	if _, err := repo.Increment(ctx, c.ID, 50, true, now); !errors.Is(err, campaigns.ErrNotApplied) {
		t.Fatalf("expected ErrNotApplied, got %v", err)
	}
	if _, err := repo.Increment(ctx, uuid.NewString(), 1, true, now); !errors.Is(err, campaigns.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// rollback: el pago y el incremento desaparecen juntos
	p := payments.Payment{ID: uuid.NewString(), CampaignID: c.ID, PayerEmail: "p" + "@petify.test", Amount: 10, PaymentMethod: "card", TransactionID: uuid.NewString(), PaidAt: now}
	boom := errors.New("boom")
	err = txm.WithinTx(ctx, func(ctx context.Context) error {
		if err := pays.Create(ctx, p); err != nil {
			return err
		}
		if _, err := repo.Increment(ctx, c.ID, 10, false, now); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, err := pays.GetByID(ctx, p.ID); !errors.Is(err, payments.ErrNotFound) {
		t.Fatalf("payment must be rolled back: %v", err)
	}

	got, err = repo.Decrement(ctx, c.ID, 500, now)
	if err != nil || got.TotalDonations != 0 {
		t.Fatalf("decrement floor: %+v err=%v", got, err)
	}

	items, total, err := repo.List(ctx, campaigns.ListFilter{OwnerEmail: c.OwnerEmail, ActiveOnly: true}, pagination.Request{Page: 1, Limit: 5})
	if err != nil || total < 1 || len(items) < 1 {
		t.Fatalf("list: total=%d err=%v", total, err)
	}
}

func TestCampaignsRepo_ExactFitInCents(t *testing.T) {
	txm := openTestDB(t)
	ctx := context.Background()
	repo := NewCampaignsRepo(txm.db)

	now := time.Now().UTC().Truncate(time.Millisecond)
	c := campaigns.Campaign{
		ID:               uuid.NewString(),
		OwnerEmail:       "owner" + "@petify.test",
		Image:            "img",
		MaxAmount:        30,
		LastDate:         now.Add(24 * time.Hour),
		ShortDescription: "s",
		LongDescription:  "l",
		Status:           campaigns.StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Increment(ctx, c.ID, 10, true, now); err != nil {
		t.Fatalf("increment 10: %v", err)
	}
	got, err := repo.Increment(ctx, c.ID, 20, true, now)
	if err != nil || got.TotalDonations != got.MaxAmount {
		t.Fatalf("exact fit: %+v err=%v", got, err)
	}
	_, _ = repo.Decrement(ctx, c.ID, 10, now)
	got, err = repo.Decrement(ctx, c.ID, 20, now)
	if err != nil || got.TotalDonations != 0 {
		t.Fatalf("refunds must reach exactly 0: %+v err=%v", got, err)
	}
}

func TestPetsRepo_MarkAdoptedIfAvailable(t *testing.T) {
	txm := openTestDB(t)
	ctx := context.Background()
	repo := NewPetsRepo(txm.db)

	now := time.Now().UTC().Truncate(time.Millisecond)
	p := pets.Pet{ID: uuid.NewString(), OwnerEmail: "owner" + "@petify.test", Name: "Milo", Species: "dog", CreatedAt: now, UpdatedAt: now}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.MarkAdoptedIfAvailable(ctx, p.ID, now); err != nil {
		t.Fatalf("first adopt: %v", err)
	}
	if err := repo.MarkAdoptedIfAvailable(ctx, p.ID, now); !errors.Is(err, pets.ErrAlreadyAdopted) {
		t.Fatalf("expected ErrAlreadyAdopted, got %v", err)
	}
	if err := repo.MarkAdoptedIfAvailable(ctx, uuid.NewString(), now); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
