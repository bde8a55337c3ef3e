package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"petify-api/internal/ports/auth"
)

func newServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/tokens/verify" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "k" {
			t.Errorf("missing api key header")
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["token"] != "tok" {
			t.Errorf("unexpected token %q", in["token"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newVerifier(t *testing.T, url string) *Verifier {
	t.Helper()
	c, err := NewClient(Config{BaseURL: url, APIKey: "k"})
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return NewVerifier(c)
}

func TestVerify_OK(t *testing.T) {
	srv := newServer(t, http.StatusOK, map[string]string{"user_id": "u1", "email": "Ana" + "@Petify.test"})

	claims, err := newVerifier(t, srv.URL).Verify(context.Background(), "tok")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "ana"+"@petify.test" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerify_Rejected(t *testing.T) {
	srv := newServer(t, http.StatusUnauthorized, map[string]string{"message": "nope"})

	_, err := newVerifier(t, srv.URL).Verify(context.Background(), "tok")
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_UpstreamFailure(t *testing.T) {
	srv := newServer(t, http.StatusBadGateway, map[string]string{})

	_, err := newVerifier(t, srv.URL).Verify(context.Background(), "tok")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestVerify_MissingEmail(t *testing.T) {
	srv := newServer(t, http.StatusOK, map[string]string{"user_id": "u1"})

	_, err := newVerifier(t, srv.URL).Verify(context.Background(), "tok")
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNewClient_RequiresConfig(t *testing.T) {
	if _, err := NewClient(Config{BaseURL: "http://x"}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
