package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"petify-api/internal/domain/pets"
	"petify-api/internal/platform/pagination"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const selectPet = `
	SELECT
		id, owner_email, owner_name,
		name, species, age, location, image,
		short_description, long_description,
		adopted, created_at, updated_at
	FROM pets`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_email, owner_name,
			name, species, age, location, image,
			short_description, long_description,
			adopted, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		p.ID,
		p.OwnerEmail,
		p.OwnerName,
		p.Name,
		p.Species,
		p.Age,
		p.Location,
		p.Image,
		p.ShortDescription,
		p.LongDescription,
		p.Adopted,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

// GetByID bloquea la fila dentro de una transacción (approve + adopt).
func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	q := selectPet + ` WHERE id = $1`
	if inTx(ctx) {
		q += ` FOR UPDATE`
	}
	p, err := scanPet(conn(ctx, r.db).QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) List(ctx context.Context, f pets.ListFilter, page pagination.Request) ([]pets.Pet, int, error) {
	page = page.Normalize()
	ex := conn(ctx, r.db)

	var w where
	if f.OwnerEmail != "" {
		w.add("owner_email = $%d", f.OwnerEmail)
	}
	if f.AvailableOnly {
		w.addRaw("adopted = FALSE")
	}

	var total int
	if err := ex.QueryRowContext(ctx, `SELECT count(*) FROM pets`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args := append(w.args, page.Limit, page.Offset())
	rows, err := ex.QueryContext(ctx, selectPet+w.String()+
		placeholders(` ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`, len(w.args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE pets
		SET
			owner_name = $2,
			name = $3,
			species = $4,
			age = $5,
			location = $6,
			image = $7,
			short_description = $8,
			long_description = $9,
			updated_at = $10
		WHERE id = $1
	`,
		p.ID,
		p.OwnerName,
		p.Name,
		p.Species,
		p.Age,
		p.Location,
		p.Image,
		p.ShortDescription,
		p.LongDescription,
		p.UpdatedAt,
	)
	return affectedOne(res, err, pets.ErrNotFound)
}

func (r *PetsRepo) SetAdopted(ctx context.Context, id string, adopted bool, at time.Time) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE pets SET adopted = $2, updated_at = $3 WHERE id = $1
	`, id, adopted, at)
	return affectedOne(res, err, pets.ErrNotFound)
}

// MarkAdoptedIfAvailable: con READ COMMITTED el segundo UPDATE espera el lock de la fila
// y reevalúa adopted = FALSE, así solo una aprobación concurrente afecta la fila.
func (r *PetsRepo) MarkAdoptedIfAvailable(ctx context.Context, id string, at time.Time) error {
	ex := conn(ctx, r.db)
	res, err := ex.ExecContext(ctx, `
		UPDATE pets SET adopted = TRUE, updated_at = $2 WHERE id = $1 AND adopted = FALSE
	`, id, at)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return nil
	}

	var exists bool
	if err := ex.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM pets WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return pets.ErrNotFound
	}
	return pets.ErrAlreadyAdopted
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	return affectedOne(res, err, pets.ErrNotFound)
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	err := s.Scan(
		&p.ID,
		&p.OwnerEmail,
		&p.OwnerName,
		&p.Name,
		&p.Species,
		&p.Age,
		&p.Location,
		&p.Image,
		&p.ShortDescription,
		&p.LongDescription,
		&p.Adopted,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
