package stripe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"petify-api/internal/platform/httpclient"
	"petify-api/internal/ports/payment"
)

func TestCreateIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/payment_intents" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_123" {
			t.Errorf("unexpected auth header %q", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.PostForm.Get("amount") != "2500" || r.PostForm.Get("currency") != "usd" || r.PostForm.Get("payment_method_types[]") != "card" {
			t.Errorf("unexpected form: %v", r.PostForm)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret_x"}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{SecretKey: "sk_test_123", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	secret, err := c.CreateIntent(context.Background(), 2500, "USD")
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}
	if secret != "pi_1_secret_x" {
		t.Fatalf("unexpected secret %q", secret)
	}
}

func TestCreateIntent_NotConfigured(t *testing.T) {
	c, _ := NewClient(Config{})
	if _, err := c.CreateIntent(context.Background(), 100, "usd"); !errors.Is(err, payment.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestCreateIntent_StripeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"message":"card declined"}}`))
	}))
	defer srv.Close()

	c, _ := NewClient(Config{SecretKey: "sk", BaseURL: srv.URL})
	_, err := c.CreateIntent(context.Background(), 100, "usd")

	var he *httpclient.HTTPError
	if !errors.As(err, &he) || he.StatusCode != http.StatusPaymentRequired {
		t.Fatalf("expected HTTPError 402, got %v", err)
	}
}
