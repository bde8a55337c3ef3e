package pets

import (
	"net/http"
	"strings"
	"time"

	"petify-api/internal/middleware"
	"petify-api/internal/platform/apperr"
	"petify-api/internal/platform/httpx"
	"petify-api/internal/platform/logger"
	"petify-api/internal/platform/pagination"
	"petify-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, authz auth.Authorizer, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		// Público
		pr.Get("/available", listAvailableHandler(svc, log))
		pr.Get("/{id}", getPetHandler(svc, log))

		// Autenticado (usuarios baneados quedan fuera)
		pr.Group(func(ar chi.Router) {
			ar.Use(middleware.RequireAuth(log))
			ar.Use(middleware.RequireRole(authz, auth.RoleUser, log))

			ar.Get("/", listByOwnerHandler(svc, authz, log))
			ar.Post("/", createPetHandler(svc, log))
			ar.Put("/{id}", updatePetHandler(svc, authz, log))
			ar.Put("/{id}/adopt", markAdoptedHandler(svc, authz, log))
			ar.Delete("/{id}", deletePetHandler(svc, authz, log))
		})

		// Admin
		pr.Group(func(ar chi.Router) {
			ar.Use(middleware.RequireAuth(log))
			ar.Use(middleware.RequireRole(authz, auth.RoleAdmin, log))

			ar.Get("/all", listAllHandler(svc, log))
			ar.Put("/{id}/adoption-status", setAdoptedHandler(svc, log))
		})
	})
}

type petResponse struct {
	ID               string    `json:"id"`
	OwnerEmail       string    `json:"ownerEmail"`
	OwnerName        string    `json:"ownerName"`
	Name             string    `json:"name"`
	Species          string    `json:"species"`
	Age              string    `json:"age"`
	Location         string    `json:"location"`
	Image            string    `json:"image"`
	ShortDescription string    `json:"shortDescription"`
	LongDescription  string    `json:"longDescription"`
	Adopted          bool      `json:"adopted"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type petsPageResponse struct {
	Pets []petResponse `json:"pets"`
	pagination.Meta
}

type setAdoptedRequest struct {
	Adopted *bool `json:"adopted"`
}

// @Summary Mascotas disponibles
// @Description Lista mascotas no adoptadas, más nuevas primero.
// @Tags pets
// @Produce json
// @Param page query int false "Página (1-based)"
// @Param limit query int false "Tamaño de página (máx 100)"
// @Success 200 {object} petsPageResponse
// @Router /pets/available [get]
func listAvailableHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pagination.FromQuery(r)
		items, total, err := svc.ListAvailable(r.Context(), page)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetsPage(items, page, total))
	}
}

// @Summary Todas las mascotas (admin)
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer token en producción"
// @Param page query int false "Página (1-based)"
// @Param limit query int false "Tamaño de página (máx 100)"
// @Success 200 {object} petsPageResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /pets/all [get]
func listAllHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pagination.FromQuery(r)
		items, total, err := svc.ListAll(r.Context(), page)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetsPage(items, page, total))
	}
}

// @Summary Mascotas de un dueño
// @Description Sin `email` lista las propias. Otro email requiere rol admin.
// @Tags pets
// @Produce json
// @Param X-Debug-User-Email header string false "Solo en modo dev, email del usuario"
// @Param Authorization header string false "Bearer token en producción"
// @Param email query string false "Email del dueño"
// @Param page query int false "Página (1-based)"
// @Param limit query int false "Tamaño de página (máx 100)"
// @Success 200 {object} petsPageResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /pets [get]
func listByOwnerHandler(svc *Service, authz auth.Authorizer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		email := strings.TrimSpace(r.URL.Query().Get("email"))
		if email == "" {
			email = claims.Email
		}
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
		httpx.WriteJSON(w, http.StatusOK, toPetsPage(items, page, total))
	}
}

// @Summary Detalle de mascota
// @Tags pets
// @Produce json
// @Param id path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} httpx.ErrorResponse "pet not found"
// @Router /pets/{id} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// @Summary Publicar mascota
// @Description El dueño es la identidad autenticada. name y species son obligatorios.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-Email header string false "Solo en modo dev, email del usuario"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body CreateInput true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var in CreateInput
		if err := httpx.DecodeJSON(r, &in); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		p, err := svc.Create(r.Context(), claims.Email, in)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// @Summary Editar mascota
// @Description Owner o admin. id, createdAt, adopted y ownerEmail se ignoran.
// @Tags pets
// @Accept json
// @Produce json
// @Param id path string true "ID de la mascota"
// @Param payload body Patch true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{id} [put]
func updatePetHandler(svc *Service, authz auth.Authorizer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := ownerOrAdmin(r, svc, authz, id); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		var patch Patch
		if err := httpx.DecodeJSON(r, &patch); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		p, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// @Summary Marcar como adoptada
// @Tags pets
// @Produce json
// @Param id path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{id}/adopt [put]
func markAdoptedHandler(svc *Service, authz auth.Authorizer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := ownerOrAdmin(r, svc, authz, id); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		p, err := svc.MarkAdopted(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// @Summary Fijar estado de adopción (admin)
// @Tags pets
// @Accept json
// @Produce json
// @Param id path string true "ID de la mascota"
// @Param payload body setAdoptedRequest true "adopted"
// @Success 200 {object} petResponse
// @Router /pets/{id}/adoption-status [put]
func setAdoptedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setAdoptedRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		if req.Adopted == nil {
			httpx.WriteError(w, r, log, apperr.New(apperr.Invalid, "adopted is required"))
			return
		}

		p, err := svc.SetAdopted(r.Context(), chi.URLParam(r, "id"), *req.Adopted)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// @Summary Eliminar mascota
// @Description Owner o admin. No borra las solicitudes de adopción asociadas.
// @Tags pets
// @Produce json
// @Param id path string true "ID de la mascota"
// @Success 200 {object} httpx.MessageResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{id} [delete]
func deletePetHandler(svc *Service, authz auth.Authorizer, log logger.Logger) http.HandlerFunc {
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
		httpx.WriteJSON(w, http.StatusOK, httpx.MessageResponse{Message: "Pet deleted successfully"})
	}
}

func ownerOrAdmin(r *http.Request, svc *Service, authz auth.Authorizer, petID string) error {
	owner, err := svc.OwnerOf(r.Context(), petID)
	if err != nil {
		return err
	}
	return middleware.OwnerOrAdmin(r.Context(), authz, owner)
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:               p.ID,
		OwnerEmail:       p.OwnerEmail,
		OwnerName:        p.OwnerName,
		Name:             p.Name,
		Species:          p.Species,
		Age:              p.Age,
		Location:         p.Location,
		Image:            p.Image,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		Adopted:          p.Adopted,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toPetsPage(items []Pet, page pagination.Request, total int) petsPageResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return petsPageResponse{Pets: out, Meta: pagination.NewMeta(page, total)}
}
