package payments

import (
	"net/http"
	"strings"
	"time"

	"petify-api/internal/middleware"
	"petify-api/internal/platform/httpx"
	"petify-api/internal/platform/logger"
	"petify-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, authz auth.Authorizer, log logger.Logger) {
	r.Group(func(ar chi.Router) {
		ar.Use(middleware.RequireAuth(log))
		ar.Use(middleware.RequireRole(authz, auth.RoleUser, log))

		ar.Post("/create-payment-intent", createIntentHandler(svc, log))
		ar.Post("/payments", recordHandler(svc, log))
		ar.Get("/payments", listHandler(svc, authz, log))

		ar.With(middleware.RequireRole(authz, auth.RoleAdmin, log)).Delete("/payments/{id}", refundHandler(svc, log))
	})
}

type createIntentRequest struct {
	AmountInCents int64  `json:"amountInCents"`
	CampaignID    string `json:"campaignId"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type paymentResponse struct {
	ID                       string    `json:"id"`
	CampaignID               string    `json:"campaignId"`
	Email                    string    `json:"email"`
	DonorName                string    `json:"donorName"`
	Amount                   float64   `json:"amount"`
	PaymentMethod            string    `json:"paymentMethod"`
	TransactionID            string    `json:"transactionId"`
	PaidAt                   time.Time `json:"paidAt"`
	CampaignImage            string    `json:"campaignImage,omitempty"`
	CampaignShortDescription string    `json:"campaignShortDescription,omitempty"`
}

type recordResponse struct {
	Message    string          `json:"message"`
	InsertedID string          `json:"insertedId"`
	Payment    paymentResponse `json:"payment"`
}

// @Summary Crear payment intent
// @Description Con campaignId verifica antes que la campaña esté activa y tenga lugar para el monto.
// @Tags payments
// @Accept json
// @Produce json
// @Param payload body createIntentRequest true "Monto en centavos"
// @Success 200 {object} createIntentResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse "campaña inexistente"
// @Failure 409 {object} httpx.ErrorResponse "campaña inactiva / excede el objetivo"
// @Failure 503 {object} httpx.ErrorResponse "proveedor no configurado"
// @Router /create-payment-intent [post]
func createIntentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createIntentRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		secret, err := svc.CreateIntent(r.Context(), req.AmountInCents, req.CampaignID)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, createIntentResponse{ClientSecret: secret})
	}
}

// @Summary Registrar pago
// @Description El pagador es la identidad autenticada; suma el monto a la campaña.
// @Tags payments
// @Accept json
// @Produce json
// @Param payload body RecordInput true "Pago confirmado por el proveedor"
// @Success 201 {object} recordResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse "campaña inexistente"
// @Failure 409 {object} httpx.ErrorResponse "excede el objetivo / transacción duplicada"
// @Router /payments [post]
func recordHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var in RecordInput
		if err := httpx.DecodeJSON(r, &in); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		in.PayerEmail = claims.Email

		p, err := svc.Record(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, recordResponse{
			Message:    "Donation payment recorded",
			InsertedID: p.ID,
			Payment:    toPaymentResponse(PaymentView{Payment: p}),
		})
	}
}

// @Summary Listar pagos
// @Description email: propio o admin. campaignId: dueño de la campaña o admin. Sin filtros: solo admin.
// @Tags payments
// @Produce json
// @Param campaignId query string false "ID de campaña"
// @Param email query string false "Email del pagador"
// @Success 200 {array} paymentResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /payments [get]
func listHandler(svc *Service, authz auth.Authorizer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := ListFilter{
			CampaignID: strings.TrimSpace(r.URL.Query().Get("campaignId")),
			PayerEmail: strings.TrimSpace(r.URL.Query().Get("email")),
		}

		if err := authorizeList(r, svc, authz, f); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		out := make([]paymentResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toPaymentResponse(v))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func authorizeList(r *http.Request, svc *Service, authz auth.Authorizer, f ListFilter) error {
	ctx := r.Context()
	switch {
	case f.PayerEmail != "":
		return middleware.OwnerOrAdmin(ctx, authz, f.PayerEmail)
	case f.CampaignID != "":
		c, err := svc.ledger.Get(ctx, f.CampaignID)
		if err != nil {
			return err
		}
		return middleware.OwnerOrAdmin(ctx, authz, c.OwnerEmail)
	default:
		if middleware.IsAdmin(ctx, authz) {
			return nil
		}
		return middleware.ErrNotOwner
	}
}

// @Summary Reembolsar pago (admin)
// @Description Borra el pago y descuenta el monto de la campaña (piso 0).
// @Tags payments
// @Produce json
// @Param id path string true "ID del pago"
// @Success 200 {object} httpx.MessageResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /payments/{id} [delete]
func refundHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Refund(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		log.Info("payment refunded", map[string]any{
			"payment_id":  p.ID,
			"campaign_id": p.CampaignID,
			"amount":      p.Amount.String(),
		})
		httpx.WriteJSON(w, http.StatusOK, httpx.MessageResponse{Message: "Payment refunded successfully"})
	}
}

func toPaymentResponse(v PaymentView) paymentResponse {
	return paymentResponse{
		ID:                       v.ID,
		CampaignID:               v.CampaignID,
		Email:                    v.PayerEmail,
		DonorName:                v.DonorName,
		Amount:                   v.Amount.Float64(),
		PaymentMethod:            v.PaymentMethod,
		TransactionID:            v.TransactionID,
		PaidAt:                   v.PaidAt,
		CampaignImage:            v.CampaignImage,
		CampaignShortDescription: v.CampaignShortDescription,
	}
}
