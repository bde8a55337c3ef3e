package adoptions

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
	r.Route("/adoptions", func(ar chi.Router) {
		ar.Use(middleware.RequireAuth(log))
		ar.Use(middleware.RequireRole(authz, auth.RoleUser, log))

		ar.Post("/", submitHandler(svc, log))
		ar.Get("/user/{email}", listByRequesterHandler(svc, authz, log))
		ar.Get("/owner/{email}", listByOwnerHandler(svc, authz, log))
		ar.Put("/{id}/status", setStatusHandler(svc, authz, log))

		ar.With(middleware.RequireRole(authz, auth.RoleAdmin, log)).Get("/", listAllHandler(svc, log))
	})
}

type adoptionResponse struct {
	ID             string    `json:"id"`
	PetID          string    `json:"petId"`
	PetName        string    `json:"petName"`
	PetImage       string    `json:"petImage"`
	RequesterName  string    `json:"requesterName"`
	RequesterEmail string    `json:"requesterEmail"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	PetOwnerEmail  string    `json:"petOwnerEmail"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type setStatusRequest struct {
	Status Status `json:"status"`
}

// @Summary Solicitar adopción
// @Description El solicitante es la identidad autenticada (requesterEmail del body se ignora).
// @Tags adoptions
// @Accept json
// @Produce json
// @Param X-Debug-User-Email header string false "Solo en modo dev, email del usuario"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body SubmitInput true "Datos de la solicitud"
// @Success 201 {object} adoptionResponse
// @Failure 400 {object} httpx.ErrorResponse "campo faltante / mascota propia"
// @Failure 404 {object} httpx.ErrorResponse "pet not found"
// @Failure 409 {object} httpx.ErrorResponse "mascota adoptada / solicitud duplicada"
// @Router /adoptions [post]
func submitHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var in SubmitInput
		if err := httpx.DecodeJSON(r, &in); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		in.RequesterEmail = claims.Email

		a, err := svc.Submit(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toAdoptionResponse(a))
	}
}

// @Summary Todas las solicitudes (admin)
// @Tags adoptions
// @Produce json
// @Param sort query string false "desc (default) | asc"
// @Success 200 {array} adoptionResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /adoptions [get]
func listAllHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		newestFirst := !strings.EqualFold(r.URL.Query().Get("sort"), "asc")
		items, err := svc.ListAll(r.Context(), newestFirst)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAdoptionResponses(items))
	}
}

// @Summary Solicitudes hechas por un usuario
// @Tags adoptions
// @Produce json
// @Param email path string true "Email del solicitante (propio, o cualquiera si admin)"
// @Success 200 {array} adoptionResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /adoptions/user/{email} [get]
func listByRequesterHandler(svc *Service, authz auth.Authorizer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		if err := middleware.OwnerOrAdmin(r.Context(), authz, email); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		items, err := svc.ListByRequester(r.Context(), email)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAdoptionResponses(items))
	}
}

// @Summary Solicitudes recibidas por un dueño
// @Tags adoptions
// @Produce json
// @Param email path string true "Email del dueño (propio, o cualquiera si admin)"
// @Success 200 {array} adoptionResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /adoptions/owner/{email} [get]
func listByOwnerHandler(svc *Service, authz auth.Authorizer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		if err := middleware.OwnerOrAdmin(r.Context(), authz, email); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		items, err := svc.ListByOwner(r.Context(), email)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAdoptionResponses(items))
	}
}

// @Summary Cambiar estado de la solicitud
// @Description Dueño de la mascota o admin. approved marca la mascota como adoptada.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param id path string true "ID de la solicitud"
// @Param payload body setStatusRequest true "pending | approved | rejected"
// @Success 200 {object} adoptionResponse
// @Failure 400 {object} httpx.ErrorResponse "estado inválido"
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse "mascota ya adoptada"
// @Router /adoptions/{id}/status [put]
func setStatusHandler(svc *Service, authz auth.Authorizer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setStatusRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		id := chi.URLParam(r, "id")
		current, err := svc.Get(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		if err := middleware.OwnerOrAdmin(r.Context(), authz, current.PetOwnerEmail); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		a, err := svc.SetStatus(r.Context(), id, req.Status)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAdoptionResponse(a))
	}
}

func toAdoptionResponse(a AdoptionRequest) adoptionResponse {
	return adoptionResponse{
		ID:             a.ID,
		PetID:          a.PetID,
		PetName:        a.PetName,
		PetImage:       a.PetImage,
		RequesterName:  a.RequesterName,
		RequesterEmail: a.RequesterEmail,
		Phone:          a.Phone,
		Address:        a.Address,
		PetOwnerEmail:  a.PetOwnerEmail,
		Status:         a.Status,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toAdoptionResponses(items []AdoptionRequest) []adoptionResponse {
	out := make([]adoptionResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAdoptionResponse(a))
	}
	return out
}
