package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"petify-api/internal/platform/logger"
	"petify-api/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
)

var (
	userEmail  = "user" + "@petify.test"
	adminEmail = "admin" + "@petify.test"
)

type testVerifier struct {
	claims auth.Claims
	err    error
}

func (v testVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token != "good" {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	return v.claims, v.err
}

// testAuthz: admin solo adminEmail; banned siempre Forbidden.
type testAuthz struct {
	banned map[string]bool
}

func (a testAuthz) Authorize(_ context.Context, email string, required auth.Role) error {
	if a.banned[email] {
		return ErrRejected
	}
	if required == auth.RoleAdmin && email != adminEmail {
		return ErrNotOwner
	}
	return nil
}

func okHandler(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func serve(h http.Handler, req *http.Request) int {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthContext_DevHeader(t *testing.T) {
	var got auth.Claims
	h := AuthContext(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetClaims(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DebugEmailHeader, "  USER"+"@Petify.test ")
	serve(h, req)

	if got.Email != userEmail {
		t.Fatalf("expected normalized email, got %q", got.Email)
	}
}

func TestRequireAuth(t *testing.T) {
	v := testVerifier{claims: auth.Claims{UserID: "u1", Email: userEmail}}
	h := AuthContext(v)(RequireAuth(logger.Nop())(http.HandlerFunc(okHandler)))

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"rejected token", "Bearer bad", http.StatusForbidden},
		{"valid token", "Bearer good", http.StatusOK},
		{"case insensitive scheme", "bearer good", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if got := serve(h, req); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestRequireAuth_VerifiedWithoutEmailIsRejected(t *testing.T) {
	v := testVerifier{claims: auth.Claims{UserID: "u1"}}
	h := AuthContext(v)(RequireAuth(logger.Nop())(http.HandlerFunc(okHandler)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	if got := serve(h, req); got != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", got)
	}
}

func TestRequireRole(t *testing.T) {
	authz := testAuthz{banned: map[string]bool{"banned" + "@petify.test": true}}
	chain := func(role auth.Role) http.Handler {
		return AuthContext(nil)(RequireAuth(logger.Nop())(RequireRole(authz, role, logger.Nop())(http.HandlerFunc(okHandler))))
	}

	cases := []struct {
		name  string
		email string
		role  auth.Role
		want  int
	}{
		{"user ok", userEmail, auth.RoleUser, http.StatusOK},
		{"user on admin route", userEmail, auth.RoleAdmin, http.StatusForbidden},
		{"admin ok", adminEmail, auth.RoleAdmin, http.StatusOK},
		{"banned", "banned" + "@petify.test", auth.RoleUser, http.StatusForbidden},
		{"anonymous", "", auth.RoleUser, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.email != "" {
				req.Header.Set(DebugEmailHeader, tc.email)
			}
			if got := serve(chain(tc.role), req); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestOwnerOrAdmin(t *testing.T) {
	authz := testAuthz{}
	check := func(email, owner string) error {
		var err error
		h := AuthContext(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err = OwnerOrAdmin(r.Context(), authz, owner)
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if email != "" {
			req.Header.Set(DebugEmailHeader, email)
		}
		serve(h, req)
		return err
	}

	if err := check(userEmail, "USER"+"@petify.test"); err != nil {
		t.Fatalf("owner must pass (case-insensitive), got %v", err)
	}
	if err := check(adminEmail, userEmail); err != nil {
		t.Fatalf("admin must pass, got %v", err)
	}
	if err := check("other"+"@petify.test", userEmail); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if err := check("", userEmail); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestRecover(t *testing.T) {
	h := Recover(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if rec.Body.String() == "" {
		t.Fatalf("expected JSON error body")
	}
}

func TestRequestID_EchoesHeader(t *testing.T) {
	h := chimw.RequestID(RequestID(http.HandlerFunc(okHandler)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("expected %s header", RequestIDHeader)
	}
}
