package campaigns

import (
	"net/http"
	"strings"
	"time"

	"petify-api/internal/middleware"
	"petify-api/internal/platform/apperr"
	"petify-api/internal/platform/httpx"
	"petify-api/internal/platform/logger"
	"petify-api/internal/platform/money"
	"petify-api/internal/platform/pagination"
	"petify-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, authz auth.Authorizer, log logger.Logger) {
	r.Route("/donations", func(dr chi.Router) {
		// Público
		dr.Get("/", listActiveHandler(svc, log))
		dr.Get("/{id}", getCampaignHandler(svc, log))

		dr.Group(func(ar chi.Router) {
			ar.Use(middleware.RequireAuth(log))
			ar.Use(middleware.RequireRole(authz, auth.RoleUser, log))

			ar.Post("/", createCampaignHandler(svc, log))
			ar.Get("/user/{email}", listByOwnerHandler(svc, authz, log))
			ar.Put("/{id}", updateCampaignHandler(svc, authz, log))
			ar.Put("/{id}/status", setStatusHandler(svc, authz, log))
			ar.Put("/{id}/donate", donateHandler(svc, log))
			ar.Delete("/{id}", deleteCampaignHandler(svc, authz, log))
		})

		dr.Group(func(ar chi.Router) {
			ar.Use(middleware.RequireAuth(log))
			ar.Use(middleware.RequireRole(authz, auth.RoleAdmin, log))

			ar.Get("/all", listAllHandler(svc, log))
		})
	})
}

type campaignResponse struct {
	ID               string    `json:"id"`
	OwnerEmail       string    `json:"ownerEmail"`
	OwnerName        string    `json:"ownerName"`
	PetName          string    `json:"petName"`
	Image            string    `json:"image"`
	MaxAmount        float64   `json:"maxAmount"`
	LastDate         time.Time `json:"lastDate"`
	ShortDescription string    `json:"shortDescription"`
	LongDescription  string    `json:"longDescription"`
	Status           Status    `json:"status"`
	TotalDonations   float64   `json:"totalDonations"`
	Progress         float64   `json:"progress"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type campaignsPageResponse struct {
	Campaigns []campaignResponse `json:"campaigns"`
	pagination.Meta
}

// lastDate acepta RFC3339 o YYYY-MM-DD.
type createCampaignRequest struct {
	OwnerName        string  `json:"ownerName"`
	PetName          string  `json:"petName"`
	Image            string  `json:"image"`
	MaxAmount        float64 `json:"maxAmount"`
	LastDate         string  `json:"lastDate"`
	ShortDescription string  `json:"shortDescription"`
	LongDescription  string  `json:"longDescription"`
	Status           Status  `json:"status"`
}

type updateCampaignRequest struct {
	PetName          *string  `json:"petName"`
	Image            *string  `json:"image"`
	MaxAmount        *float64 `json:"maxAmount"`
	LastDate         *string  `json:"lastDate"`
	ShortDescription *string  `json:"shortDescription"`
	LongDescription  *string  `json:"longDescription"`
	Status           *Status  `json:"status"`
}

type setStatusRequest struct {
	Status Status `json:"status"`
}

type donateRequest struct {
	Amount float64 `json:"amount"`
}

type donateResponse struct {
	Message  string  `json:"message"`
	NewTotal float64 `json:"newTotal"`
	Progress float64 `json:"progress"`
}

// @Summary Campañas activas
// @Tags donations
// @Produce json
// @Param page query int false "Página (1-based)"
// @Param limit query int false "Tamaño de página (máx 100)"
// @Success 200 {object} campaignsPageResponse
// @Router /donations [get]
func listActiveHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pagination.FromQuery(r)
		items, total, err := svc.ListActive(r.Context(), page)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toCampaignsPage(items, page, total))
	}
}

// @Summary Todas las campañas (admin)
// @Tags donations
// @Produce json
// @Param page query int false "Página (1-based)"
// @Param limit query int false "Tamaño de página (máx 100)"
// @Success 200 {object} campaignsPageResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /donations/all [get]
func listAllHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pagination.FromQuery(r)
		items, total, err := svc.ListAll(r.Context(), page)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toCampaignsPage(items, page, total))
	}
}

// @Summary Campañas de un usuario
// @Tags donations
// @Produce json
// @Param email path string true "Email del dueño (propio, o cualquiera si admin)"
// @Param page query int false "Página (1-based)"
// @Param limit query int false "Tamaño de página (máx 100)"
// @Success 200 {object} campaignsPageResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /donations/user/{email} [get]
func listByOwnerHandler(svc *Service, authz auth.Authorizer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		if err := middleware.OwnerOrAdmin(r.Context(), authz, email); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		page := pagination.FromQuery(r)
		items, total, err := svc.ListByOwner(r.Context(), email, page)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toCampaignsPage(items, page, total))
	}
}

// @Summary Detalle de campaña
// @Tags donations
// @Produce json
// @Param id path string true "ID de la campaña"
// @Success 200 {object} campaignResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /donations/{id} [get]
func getCampaignHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toCampaignResponse(c))
	}
}

// @Summary Crear campaña
// @Description lastDate debe ser futura y maxAmount > 0, con a lo sumo dos decimales. El dueño es la identidad autenticada.
// @Tags donations
// @Accept json
// @Produce json
// @Param X-Debug-User-Email header string false "Solo en modo dev, email del usuario"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createCampaignRequest true "Datos de la campaña"
// @Success 201 {object} campaignResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /donations [post]
func createCampaignHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req createCampaignRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		maxAmount, err := money.FromFloat(req.MaxAmount)
		if err != nil {
			httpx.WriteError(w, r, log, ErrMaxAmount)
			return
		}

		var lastDate time.Time
		if strings.TrimSpace(req.LastDate) != "" {
			t, err := parseDate(req.LastDate)
			if err != nil {
				httpx.WriteError(w, r, log, err)
				return
			}
			lastDate = t
		}

		c, err := svc.Create(r.Context(), claims.Email, CreateInput{
			OwnerName:        req.OwnerName,
			PetName:          req.PetName,
			Image:            req.Image,
			MaxAmount:        maxAmount,
			LastDate:         lastDate,
			ShortDescription: req.ShortDescription,
			LongDescription:  req.LongDescription,
			Status:           req.Status,
		})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toCampaignResponse(c))
	}
}

// @Summary Editar campaña
// @Description Owner o admin. id, createdAt, ownerEmail, ownerName y totalDonations se ignoran.
// @Tags donations
// @Accept json
// @Produce json
// @Param id path string true "ID de la campaña"
// @Param payload body updateCampaignRequest true "Campos a modificar"
// @Success 200 {object} campaignResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /donations/{id} [put]
func updateCampaignHandler(svc *Service, authz auth.Authorizer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := ownerOrAdmin(r, svc, authz, id); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		var req updateCampaignRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		patch := Patch{
			PetName:          req.PetName,
			Image:            req.Image,
			ShortDescription: req.ShortDescription,
			LongDescription:  req.LongDescription,
			Status:           req.Status,
		}
		if req.MaxAmount != nil {
			v, err := money.FromFloat(*req.MaxAmount)
			if err != nil {
				httpx.WriteError(w, r, log, ErrMaxAmount)
				return
			}
			patch.MaxAmount = &v
		}
		if req.LastDate != nil {
			t, err := parseDate(*req.LastDate)
			if err != nil {
				httpx.WriteError(w, r, log, err)
				return
			}
			patch.LastDate = &t
		}

		c, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toCampaignResponse(c))
	}
}

// @Summary Cambiar estado de campaña
// @Tags donations
// @Accept json
// @Produce json
// @Param id path string true "ID de la campaña"
// @Param payload body setStatusRequest true "active | paused | completed | cancelled"
// @Success 200 {object} campaignResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /donations/{id}/status [put]
func setStatusHandler(svc *Service, authz auth.Authorizer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setStatusRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		if !req.Status.Valid() {
			httpx.WriteError(w, r, log, ErrInvalidStatus)
			return
		}

		id := chi.URLParam(r, "id")
		if err := ownerOrAdmin(r, svc, authz, id); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		c, err := svc.SetStatus(r.Context(), id, req.Status)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toCampaignResponse(c))
	}
}

// @Summary Donar a una campaña
// @Description Rechaza (409) si la campaña no está activa o si el monto supera el tope.
// @Tags donations
// @Accept json
// @Produce json
// @Param id path string true "ID de la campaña"
// @Param payload body donateRequest true "Monto"
// @Success 200 {object} donateResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /donations/{id}/donate [put]
func donateHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req donateRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		amount, err := money.FromFloat(req.Amount)
		if err != nil {
			httpx.WriteError(w, r, log, ErrInvalidAmount)
			return
		}

		res, err := svc.RecordDonation(r.Context(), chi.URLParam(r, "id"), amount)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, donateResponse{
			Message:  "Donation added successfully",
			NewTotal: res.NewTotal.Float64(),
			Progress: res.Progress,
		})
	}
}

// @Summary Eliminar campaña
// @Tags donations
// @Produce json
// @Param id path string true "ID de la campaña"
// @Success 200 {object} httpx.MessageResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /donations/{id} [delete]
func deleteCampaignHandler(svc *Service, authz auth.Authorizer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := ownerOrAdmin(r, svc, authz, id); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, httpx.MessageResponse{Message: "Donation campaign deleted successfully"})
	}
}

func ownerOrAdmin(r *http.Request, svc *Service, authz auth.Authorizer, id string) error {
	c, err := svc.Get(r.Context(), id)
	if err != nil {
		return err
	}
	return middleware.OwnerOrAdmin(r.Context(), authz, c.OwnerEmail)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, apperr.New(apperr.Invalid, "lastDate must be RFC3339 or YYYY-MM-DD")
}

func toCampaignResponse(c Campaign) campaignResponse {
	return campaignResponse{
		ID:               c.ID,
		OwnerEmail:       c.OwnerEmail,
		OwnerName:        c.OwnerName,
		PetName:          c.PetName,
		Image:            c.Image,
		MaxAmount:        c.MaxAmount.Float64(),
		LastDate:         c.LastDate,
		ShortDescription: c.ShortDescription,
		LongDescription:  c.LongDescription,
		Status:           c.Status,
		TotalDonations:   c.TotalDonations.Float64(),
		Progress:         c.Progress(),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func toCampaignsPage(items []Campaign, page pagination.Request, total int) campaignsPageResponse {
	out := make([]campaignResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toCampaignResponse(c))
	}
	return campaignsPageResponse{Campaigns: out, Meta: pagination.NewMeta(page, total)}
}
