package jwtverify

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"petify-api/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoKey = errors.New("jwtverify: secret or public key is required")

// Config: Secret (HS256) o PublicKeyPEM (RS256). Si vienen ambos, manda la clave pública.
type Config struct {
	Secret       string
	PublicKeyPEM string
	Issuer       string
	Audience     string
	Leeway       time.Duration
}

// Verifier implementa auth.AuthVerifier validando JWT localmente.
// Exige exp y email; sub (o user_id) es el UserID.
type Verifier struct {
	parser *jwt.Parser
	key    any
}

type tokenClaims struct {
	Email  string `json:"email"`
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

func New(cfg Config) (*Verifier, error) {
	var (
		key    any
		method string
	)
	switch {
	case strings.TrimSpace(cfg.PublicKeyPEM) != "":
		pub, err := parsePublicKey(cfg.PublicKeyPEM)
		if err != nil {
			return nil, err
		}
		key, method = pub, jwt.SigningMethodRS256.Alg()
	case cfg.Secret != "":
		key, method = []byte(cfg.Secret), jwt.SigningMethodHS256.Alg()
	default:
		return nil, ErrNoKey
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
	}
	if iss := strings.TrimSpace(cfg.Issuer); iss != "" {
		opts = append(opts, jwt.WithIssuer(iss))
	}
	if aud := strings.TrimSpace(cfg.Audience); aud != "" {
		opts = append(opts, jwt.WithAudience(aud))
	}

	return &Verifier{parser: jwt.NewParser(opts...), key: key}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	var c tokenClaims
	if _, err := v.parser.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return v.key, nil
	}); err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	email := auth.NormalizeEmail(c.Email)
	if email == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing email claim", auth.ErrInvalidToken)
	}
	userID := strings.TrimSpace(c.Subject)
	if userID == "" {
		userID = strings.TrimSpace(c.UserID)
	}

	out := auth.Claims{UserID: userID, Email: email}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out, nil
}

func parsePublicKey(pemText string) (*rsa.PublicKey, error) {
	pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemText))
	if err != nil {
		return nil, fmt.Errorf("jwtverify: invalid public key: %w", err)
	}
	return pub, nil
}
