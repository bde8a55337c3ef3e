package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"petify-api/internal/domain/campaigns"
	"petify-api/internal/platform/money"
	"petify-api/internal/platform/pagination"
)

type CampaignsRepo struct {
	db *sql.DB
}

func NewCampaignsRepo(db *sql.DB) *CampaignsRepo {
	return &CampaignsRepo{db: db}
}

const campaignColumns = `
		id, owner_email, owner_name, pet_name, image,
		max_amount, last_date, short_description, long_description,
		status, total_donations, created_at, updated_at`

const selectCampaign = `SELECT` + campaignColumns + ` FROM donation_campaigns`

func (r *CampaignsRepo) Create(ctx context.Context, c campaigns.Campaign) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO donation_campaigns (`+campaignColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		c.ID,
		c.OwnerEmail,
		c.OwnerName,
		c.PetName,
		c.Image,
		int64(c.MaxAmount),
		c.LastDate,
		c.ShortDescription,
		c.LongDescription,
		string(c.Status),
		int64(c.TotalDonations),
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *CampaignsRepo) GetByID(ctx context.Context, id string) (campaigns.Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return campaigns.Campaign{}, campaigns.ErrNotFound
	}
	c, err := scanCampaign(conn(ctx, r.db).QueryRowContext(ctx, selectCampaign+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return campaigns.Campaign{}, campaigns.ErrNotFound
	}
	return c, err
}

func (r *CampaignsRepo) List(ctx context.Context, f campaigns.ListFilter, page pagination.Request) ([]campaigns.Campaign, int, error) {
	page = page.Normalize()
	ex := conn(ctx, r.db)

	var w where
	if f.OwnerEmail != "" {
		w.add("owner_email = $%d", f.OwnerEmail)
	}
	if f.ActiveOnly {
		w.add("status = $%d", string(campaigns.StatusActive))
	}

	var total int
	if err := ex.QueryRowContext(ctx, `SELECT count(*) FROM donation_campaigns`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args := append(w.args, page.Limit, page.Offset())
	rows, err := ex.QueryContext(ctx, selectCampaign+w.String()+
		placeholders(` ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`, len(w.args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]campaigns.Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

// Update distingue "no existe" de "total > nuevo tope" con un segundo SELECT solo si no aplicó.
func (r *CampaignsRepo) Update(ctx context.Context, c campaigns.Campaign) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE donation_campaigns
		SET
			pet_name = $2,
			image = $3,
			max_amount = $4,
			last_date = $5,
			short_description = $6,
			long_description = $7,
			status = $8,
			updated_at = $9
		WHERE id = $1 AND total_donations <= $4
	`,
		c.ID,
		c.PetName,
		c.Image,
		int64(c.MaxAmount),
		c.LastDate,
		c.ShortDescription,
		c.LongDescription,
		string(c.Status),
		c.UpdatedAt,
	)
	if err := affectedOne(res, err, campaigns.ErrNotApplied); !errors.Is(err, campaigns.ErrNotApplied) {
		return err
	}
	return r.notAppliedOrMissing(ctx, c.ID)
}

func (r *CampaignsRepo) SetStatus(ctx context.Context, id string, status campaigns.Status, at time.Time) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE donation_campaigns SET status = $2, updated_at = $3 WHERE id = $1
	`, id, string(status), at)
	return affectedOne(res, err, campaigns.ErrNotFound)
}

func (r *CampaignsRepo) Delete(ctx context.Context, id string) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM donation_campaigns WHERE id = $1`, id)
	return affectedOne(res, err, campaigns.ErrNotFound)
}

// Increment es un único UPDATE condicional: dos donaciones concurrentes no pueden pasar el tope.
func (r *CampaignsRepo) Increment(ctx context.Context, id string, amount money.Cents, requireActive bool, at time.Time) (campaigns.Campaign, error) {
	c, err := scanCampaign(conn(ctx, r.db).QueryRowContext(ctx, `
		UPDATE donation_campaigns
		SET total_donations = total_donations + $2, updated_at = $3
		WHERE id = $1
			AND $2 <= max_amount - total_donations
			AND ($4 = FALSE OR status = 'active')
		RETURNING`+campaignColumns,
		id, int64(amount), at, requireActive,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return campaigns.Campaign{}, r.notAppliedOrMissing(ctx, id)
	}
	return c, err
}

func (r *CampaignsRepo) Decrement(ctx context.Context, id string, amount money.Cents, at time.Time) (campaigns.Campaign, error) {
	c, err := scanCampaign(conn(ctx, r.db).QueryRowContext(ctx, `
		UPDATE donation_campaigns
		SET total_donations = GREATEST(total_donations - $2, 0), updated_at = $3
		WHERE id = $1
		RETURNING`+campaignColumns,
		id, int64(amount), at,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return campaigns.Campaign{}, campaigns.ErrNotFound
	}
	return c, err
}

func (r *CampaignsRepo) notAppliedOrMissing(ctx context.Context, id string) error {
	var exists bool
	if err := conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM donation_campaigns WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return campaigns.ErrNotFound
	}
	return campaigns.ErrNotApplied
}

func scanCampaign(s scanner) (campaigns.Campaign, error) {
	var c campaigns.Campaign
	var status string
	if err := s.Scan(
		&c.ID,
		&c.OwnerEmail,
		&c.OwnerName,
		&c.PetName,
		&c.Image,
		&c.MaxAmount,
		&c.LastDate,
		&c.ShortDescription,
		&c.LongDescription,
		&status,
		&c.TotalDonations,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return campaigns.Campaign{}, err
	}
	c.Status = campaigns.Status(status)
	return c, nil
}
