package remote

import (
	"context"
	"fmt"
	"strings"

	"petify-api/internal/ports/auth"
)

// Verifier implementa auth.AuthVerifier delegando en el servicio de identidad.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Claims{}, err
	}
	if claims.Email == "" {
		return auth.Claims{}, fmt.Errorf("%w: identity response missing email", auth.ErrInvalidToken)
	}
	if claims.UserID == "" {
		claims.UserID = claims.Email
	}
	return claims, nil
}
