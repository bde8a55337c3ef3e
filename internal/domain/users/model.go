package users

import (
	"time"

	"petify-api/internal/ports/auth"
)

// User es el perfil persistido de una identidad. El email (normalizado) es único.
type User struct {
	ID       string
	Email    string
	Name     string
	PhotoURL string

	Role     auth.Role // user, admin
	IsBanned bool

	CreatedAt time.Time
}
