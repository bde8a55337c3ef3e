package middleware

import (
	"context"
	"net/http"
	"strings"

	"petify-api/internal/platform/apperr"
	"petify-api/internal/platform/httpx"
	"petify-api/internal/platform/logger"
	"petify-api/internal/ports/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// DebugEmailHeader inyecta la identidad en modo dev (sin verifier).
const DebugEmailHeader = "X-Debug-User-Email"

var (
	ErrMissingToken = apperr.New(apperr.Unauthenticated, "unauthorized access")
	ErrRejected     = apperr.New(apperr.Forbidden, "forbidden access")
)

// identity es el resultado del gate para el request: claims o el error de verificación.
type identity struct {
	claims auth.Claims
	err    error
}

// AuthContext:
// - Si verifier != nil y viene Bearer token => Verify() y guarda claims o el rechazo.
// - Si verifier == nil => modo dev: header X-Debug-User-Email => claims.
// - No corta el request; RequireAuth / los handlers deciden 401/403.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := resolve(r, verifier)
			ctx := context.WithValue(r.Context(), identityKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolve(r *http.Request, verifier auth.AuthVerifier) identity {
	// Dev mode: permitir inyectar user sin verifier
	if verifier == nil {
		email := auth.NormalizeEmail(r.Header.Get(DebugEmailHeader))
		if email == "" {
			return identity{err: ErrMissingToken}
		}
		return identity{claims: auth.Claims{UserID: email, Email: email}}
	}

	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return identity{err: ErrMissingToken}
	}

	claims, err := verifier.Verify(r.Context(), token)
	if err != nil {
		return identity{err: apperr.Wrap(apperr.Forbidden, ErrRejected.Msg, err)}
	}
	claims.Email = auth.NormalizeEmail(claims.Email)
	if claims.Email == "" {
		return identity{err: ErrRejected}
	}
	return identity{claims: claims}
}

// Authenticate devuelve la identidad del request:
// Unauthenticated si no hubo token, Forbidden si el verifier lo rechazó.
func Authenticate(ctx context.Context) (auth.Claims, error) {
	id, ok := ctx.Value(identityKey).(identity)
	if !ok {
		return auth.Claims{}, ErrMissingToken
	}
	if id.err != nil {
		return auth.Claims{}, id.err
	}
	return id.claims, nil
}

// GetClaims devuelve claims solo si el request está autenticado.
func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, err := Authenticate(ctx)
	if err != nil {
		return auth.Claims{}, false
	}
	return c, true
}

// RequireAuth corta con 401/403 si el request no trae identidad válida.
func RequireAuth(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := Authenticate(r.Context()); err != nil {
				if log != nil {
					log.Debug("auth rejected", map[string]any{"path": r.URL.Path, "err": err})
				}
				httpx.WriteError(w, r, log, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
