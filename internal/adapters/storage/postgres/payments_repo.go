package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"petify-api/internal/domain/payments"
)

type PaymentsRepo struct {
	db *sql.DB
}

func NewPaymentsRepo(db *sql.DB) *PaymentsRepo {
	return &PaymentsRepo{db: db}
}

const selectPayment = `
	SELECT
		id, campaign_id, payer_email, donor_name, amount,
		payment_method, transaction_id, paid_at
	FROM payments`

func (r *PaymentsRepo) Create(ctx context.Context, p payments.Payment) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO payments (
			id, campaign_id, payer_email, donor_name, amount,
			payment_method, transaction_id, paid_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		p.ID,
		p.CampaignID,
		p.PayerEmail,
		p.DonorName,
		int64(p.Amount),
		p.PaymentMethod,
		p.TransactionID,
		p.PaidAt,
	)
	if isUniqueViolation(err) {
		return payments.ErrDuplicate
	}
	return err
}

func (r *PaymentsRepo) GetByID(ctx context.Context, id string) (payments.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return payments.Payment{}, payments.ErrNotFound
	}
	p, err := scanPayment(conn(ctx, r.db).QueryRowContext(ctx, selectPayment+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return payments.Payment{}, payments.ErrNotFound
	}
	return p, err
}

func (r *PaymentsRepo) List(ctx context.Context, f payments.ListFilter) ([]payments.Payment, error) {
	var w where
	if f.CampaignID != "" {
		w.add("campaign_id = $%d", f.CampaignID)
	}
	if f.PayerEmail != "" {
		w.add("payer_email = $%d", f.PayerEmail)
	}

	rows, err := conn(ctx, r.db).QueryContext(ctx, selectPayment+w.String()+` ORDER BY paid_at DESC, id`, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]payments.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PaymentsRepo) Delete(ctx context.Context, id string) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	return affectedOne(res, err, payments.ErrNotFound)
}

func scanPayment(s scanner) (payments.Payment, error) {
	var p payments.Payment
	err := s.Scan(
		&p.ID,
		&p.CampaignID,
		&p.PayerEmail,
		&p.DonorName,
		&p.Amount,
		&p.PaymentMethod,
		&p.TransactionID,
		&p.PaidAt,
	)
	return p, err
}
