package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestDoJSON_DecodesAndSendsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" || r.Header.Get("X-Key") != "k" {
			t.Errorf("unexpected headers: %v", r.Header)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c, err := New(Options{Name: "t", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.DoJSON(context.Background(), http.MethodPost, "x", map[string]string{"X-Key": "k"}, map[string]int{"a": 1}, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !out.OK {
		t.Fatalf("expected ok=true")
	}
}

func TestBreaker_OpensOnServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, _ := New(Options{Name: "t", BaseURL: srv.URL})
	for i := 0; i < 5; i++ {
		var he *HTTPError
		if err := c.DoJSON(context.Background(), http.MethodGet, "/", nil, nil, nil); !errors.As(err, &he) {
			t.Fatalf("call %d: expected HTTPError, got %v", i, err)
		}
	}

	err := c.DoJSON(context.Background(), http.MethodGet, "/", nil, nil, nil)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if hits.Load() != 5 {
		t.Fatalf("open breaker must not reach upstream, hits=%d", hits.Load())
	}
}

func TestBreaker_ClientErrorsDoNotTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, _ := New(Options{Name: "t", BaseURL: srv.URL})
	for i := 0; i < 10; i++ {
		err := c.DoJSON(context.Background(), http.MethodGet, "/", nil, nil, nil)
		if errors.Is(err, ErrCircuitOpen) {
			t.Fatalf("4xx must not open the breaker (call %d)", i)
		}
	}
}

func TestResolveURL(t *testing.T) {
	c, _ := New(Options{})
	if _, err := c.resolveURL("/relative"); err == nil {
		t.Fatalf("relative path without BaseURL must fail")
	}
	if got, _ := c.resolveURL("https://api.example.com/x"); got != "https://api.example.com/x" {
		t.Fatalf("absolute url must pass through, got %q", got)
	}
	if _, err := New(Options{BaseURL: "::bad"}); err == nil {
		t.Fatalf("invalid base url must fail")
	}
}
