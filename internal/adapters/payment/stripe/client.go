// Package stripe crea payment intents con llamadas HTTP directas a la API de Stripe (sin SDK).
package stripe

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"petify-api/internal/platform/httpclient"
	"petify-api/internal/ports/payment"
)

const DefaultBaseURL = "https://api.stripe.com"

type Config struct {
	SecretKey string
	BaseURL   string // tests; por defecto DefaultBaseURL
	Timeout   time.Duration
	Transport http.RoundTripper
}

// Client implementa payment.IntentProvider.
type Client struct {
	secretKey string
	http      *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	hc, err := httpclient.New(httpclient.Options{
		Name:      "stripe",
		BaseURL:   base,
		Timeout:   timeout,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, err
	}
	return &Client{secretKey: strings.TrimSpace(cfg.SecretKey), http: hc}, nil
}

type paymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// CreateIntent crea un PaymentIntent de tarjeta y devuelve su client_secret.
func (c *Client) CreateIntent(ctx context.Context, amountInCents int64, currency string) (string, error) {
	if c == nil || c.secretKey == "" {
		return "", payment.ErrNotConfigured
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountInCents, 10))
	form.Set("currency", strings.ToLower(currency))
	form.Add("payment_method_types[]", "card")

	var out paymentIntent
	err := c.http.DoForm(ctx, http.MethodPost, "/v1/payment_intents",
		map[string]string{"Authorization": "Bearer " + c.secretKey}, form, &out)
	if err != nil {
		return "", fmt.Errorf("stripe: create payment intent: %w", err)
	}
	if out.ClientSecret == "" {
		return "", fmt.Errorf("stripe: payment intent %s without client_secret", out.ID)
	}
	return out.ClientSecret, nil
}
