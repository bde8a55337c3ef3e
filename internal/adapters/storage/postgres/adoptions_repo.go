package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"petify-api/internal/domain/adoptions"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

const selectAdoption = `
	SELECT
		id, pet_id, pet_name, pet_image,
		requester_name, requester_email, phone, address,
		pet_owner_email, status, created_at, updated_at
	FROM adoption_requests`

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.AdoptionRequest) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO adoption_requests (
			id, pet_id, pet_name, pet_image,
			requester_name, requester_email, phone, address,
			pet_owner_email, status, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		a.ID,
		a.PetID,
		a.PetName,
		a.PetImage,
		a.RequesterName,
		a.RequesterEmail,
		a.Phone,
		a.Address,
		a.PetOwnerEmail,
		string(a.Status),
		a.CreatedAt,
		a.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return adoptions.ErrDuplicate
	}
	return err
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.AdoptionRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return adoptions.AdoptionRequest{}, adoptions.ErrNotFound
	}

	q := selectAdoption + ` WHERE id = $1`
	if inTx(ctx) {
		q += ` FOR UPDATE`
	}
	a, err := scanAdoption(conn(ctx, r.db).QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return adoptions.AdoptionRequest{}, adoptions.ErrNotFound
	}
	return a, err
}

func (r *AdoptionsRepo) FindByPetAndRequester(ctx context.Context, petID, requesterEmail string) (adoptions.AdoptionRequest, error) {
	a, err := scanAdoption(conn(ctx, r.db).QueryRowContext(ctx,
		selectAdoption+` WHERE pet_id = $1 AND requester_email = $2`, petID, requesterEmail))
	if errors.Is(err, sql.ErrNoRows) {
		return adoptions.AdoptionRequest{}, adoptions.ErrNotFound
	}
	return a, err
}

func (r *AdoptionsRepo) List(ctx context.Context, f adoptions.ListFilter) ([]adoptions.AdoptionRequest, error) {
	var w where
	if f.RequesterEmail != "" {
		w.add("requester_email = $%d", f.RequesterEmail)
	}
	if f.PetOwnerEmail != "" {
		w.add("pet_owner_email = $%d", f.PetOwnerEmail)
	}

	order := ` ORDER BY created_at DESC, id`
	if f.OldestFirst {
		order = ` ORDER BY created_at ASC, id`
	}

	rows, err := conn(ctx, r.db).QueryContext(ctx, selectAdoption+w.String()+order, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.AdoptionRequest, 0)
	for rows.Next() {
		a, err := scanAdoption(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AdoptionsRepo) UpdateStatus(ctx context.Context, id string, status adoptions.Status, at time.Time) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE adoption_requests SET status = $2, updated_at = $3 WHERE id = $1
	`, id, string(status), at)
	return affectedOne(res, err, adoptions.ErrNotFound)
}

func scanAdoption(s scanner) (adoptions.AdoptionRequest, error) {
	var a adoptions.AdoptionRequest
	var status string
	if err := s.Scan(
		&a.ID,
		&a.PetID,
		&a.PetName,
		&a.PetImage,
		&a.RequesterName,
		&a.RequesterEmail,
		&a.Phone,
		&a.Address,
		&a.PetOwnerEmail,
		&status,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return adoptions.AdoptionRequest{}, err
	}
	a.Status = adoptions.Status(status)
	return a, nil
}
