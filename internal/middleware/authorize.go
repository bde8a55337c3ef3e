package middleware

import (
	"context"
	"net/http"

	"petify-api/internal/platform/apperr"
	"petify-api/internal/platform/httpx"
	"petify-api/internal/platform/logger"
	"petify-api/internal/ports/auth"
)

var ErrNotOwner = apperr.New(apperr.Forbidden, "forbidden access")

// RequireRole se compone siempre después de RequireAuth: sin claims responde 401.
func RequireRole(authz auth.Authorizer, role auth.Role, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := Authenticate(r.Context())
			if err != nil {
				httpx.WriteError(w, r, log, err)
				return
			}
			if err := authz.Authorize(r.Context(), claims.Email, role); err != nil {
				httpx.WriteError(w, r, log, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsAdmin indica si la identidad del request tiene rol admin vigente.
func IsAdmin(ctx context.Context, authz auth.Authorizer) bool {
	claims, ok := GetClaims(ctx)
	if !ok || authz == nil {
		return false
	}
	return authz.Authorize(ctx, claims.Email, auth.RoleAdmin) == nil
}

// OwnerOrAdmin permite el paso si la identidad es ownerEmail o un admin.
func OwnerOrAdmin(ctx context.Context, authz auth.Authorizer, ownerEmail string) error {
	claims, err := Authenticate(ctx)
	if err != nil {
		return err
	}
	if httpx.SameEmail(claims.Email, ownerEmail) {
		return nil
	}
	if IsAdmin(ctx, authz) {
		return nil
	}
	return ErrNotOwner
}
