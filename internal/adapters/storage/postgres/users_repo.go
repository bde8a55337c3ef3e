package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"petify-api/internal/domain/users"
	"petify-api/internal/platform/pagination"
	"petify-api/internal/ports/auth"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const selectUser = `
	SELECT id, email, name, photo_url, role, is_banned, created_at
	FROM users`

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO users (id, email, name, photo_url, role, is_banned, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		u.ID,
		u.Email,
		u.Name,
		u.PhotoURL,
		string(u.Role),
		u.IsBanned,
		u.CreatedAt,
	)
	if isUniqueViolation(err) {
		return users.ErrDuplicate
	}
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.getOne(ctx, selectUser+` WHERE id = $1`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getOne(ctx, selectUser+` WHERE email = $1`, email)
}

func (r *UsersRepo) getOne(ctx context.Context, q string, arg string) (users.User, error) {
	if strings.TrimSpace(arg) == "" {
		return users.User{}, users.ErrNotFound
	}
	u, err := scanUser(conn(ctx, r.db).QueryRowContext(ctx, q, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, users.ErrNotFound
	}
	return u, err
}

func (r *UsersRepo) List(ctx context.Context, page pagination.Request) ([]users.User, int, error) {
	page = page.Normalize()
	ex := conn(ctx, r.db)

	var total int
	if err := ex.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := ex.QueryContext(ctx, selectUser+`
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	out, err := collectUsers(rows)
	return out, total, err
}

func (r *UsersRepo) SearchByEmail(ctx context.Context, q string) ([]users.User, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, selectUser+`
		WHERE strpos(lower(email), lower($1)) > 0
		ORDER BY created_at DESC, id
	`, q)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE users
		SET
			name = $2,
			photo_url = $3,
			role = $4,
			is_banned = $5
		WHERE id = $1
	`,
		u.ID,
		u.Name,
		u.PhotoURL,
		string(u.Role),
		u.IsBanned,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func scanUser(s scanner) (users.User, error) {
	var u users.User
	var role string
	if err := s.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PhotoURL,
		&role,
		&u.IsBanned,
		&u.CreatedAt,
	); err != nil {
		return users.User{}, err
	}
	u.Role = auth.Role(role)
	return u, nil
}

func collectUsers(rows *sql.Rows) ([]users.User, error) {
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
