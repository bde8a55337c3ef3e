package auth

import (
	"context"
	"strings"
	"time"
)

// Claims representa la identidad extraída del token verificado.
type Claims struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// Role es el rol persistido del usuario.
// @Enum user, admin
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Authorizer decide si una identidad ya autenticada cumple el rol requerido.
// Vive en ports para que middleware no dependa del módulo users.
type Authorizer interface {
	Authorize(ctx context.Context, email string, required Role) error
}

// NormalizeEmail es la forma canónica con la que se guardan y comparan emails.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
