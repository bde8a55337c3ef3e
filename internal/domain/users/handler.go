package users

import (
	"net/http"
	"time"

	"petify-api/internal/middleware"
	"petify-api/internal/platform/apperr"
	"petify-api/internal/platform/httpx"
	"petify-api/internal/platform/logger"
	"petify-api/internal/platform/pagination"
	"petify-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/users", func(ur chi.Router) {
		ur.Post("/", signupHandler(svc, log))
		ur.Get("/{email}/role", getRoleHandler(svc, log))

		// Administración de usuarios
		ur.Group(func(ar chi.Router) {
			ar.Use(middleware.RequireAuth(log))
			ar.Use(middleware.RequireRole(svc, auth.RoleAdmin, log))

			ar.Get("/", listUsersHandler(svc, log))
			ar.Get("/search", searchUsersHandler(svc, log))
			ar.Patch("/{id}/role", setRoleHandler(svc, log))
			ar.Patch("/{id}/ban", setBannedHandler(svc, log))
		})
	})
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photoUrl"`
	Role      auth.Role `json:"role"`
	IsBanned  bool      `json:"isBanned"`
	CreatedAt time.Time `json:"createdAt"`
}

type roleResponse struct {
	Role auth.Role `json:"role"`
}

type usersPageResponse struct {
	Users []userResponse `json:"users"`
	pagination.Meta
}

type setRoleRequest struct {
	Role auth.Role `json:"role"`
}

type setBannedRequest struct {
	IsBanned *bool `json:"isBanned"`
}

// @Summary Registrar usuario
// @Description Crea el perfil del usuario con rol `user`. Si el email ya existe responde 409.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body SignupInput true "Datos del usuario"
// @Success 201 {object} userResponse
// @Failure 400 {object} httpx.ErrorResponse "email faltante o inválido"
// @Failure 409 {object} httpx.ErrorResponse "user already exists"
// @Router /users [post]
func signupHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in SignupInput
		if err := httpx.DecodeJSON(r, &in); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		u, err := svc.Signup(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
	}
}

// @Summary Rol de un usuario
// @Tags users
// @Produce json
// @Param email path string true "Email del usuario"
// @Success 200 {object} roleResponse
// @Failure 404 {object} httpx.ErrorResponse "user not found"
// @Router /users/{email}/role [get]
func getRoleHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, err := svc.GetRole(r.Context(), chi.URLParam(r, "email"))
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, roleResponse{Role: role})
	}
}

// @Summary Listar usuarios (admin)
// @Tags users
// @Produce json
// @Param Authorization header string false "Bearer token en producción"
// @Param page query int false "Página (1-based)"
// @Param limit query int false "Tamaño de página (máx 100)"
// @Success 200 {object} usersPageResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /users [get]
func listUsersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pagination.FromQuery(r)
		items, total, err := svc.List(r.Context(), page)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, usersPageResponse{
			Users: toUserResponses(items),
			Meta:  pagination.NewMeta(page, total),
		})
	}
}

// @Summary Buscar usuarios por email (admin)
// @Tags users
// @Produce json
// @Param email query string true "Fragmento del email"
// @Success 200 {array} userResponse
// @Router /users/search [get]
func searchUsersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.SearchByEmail(r.Context(), r.URL.Query().Get("email"))
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toUserResponses(items))
	}
}

// @Summary Cambiar rol (admin)
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "ID del usuario"
// @Param payload body setRoleRequest true "user | admin"
// @Success 200 {object} userResponse
// @Failure 400 {object} httpx.ErrorResponse "rol inválido"
// @Failure 404 {object} httpx.ErrorResponse "user not found"
// @Router /users/{id}/role [patch]
func setRoleHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setRoleRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		u, err := svc.SetRole(r.Context(), chi.URLParam(r, "id"), req.Role)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// @Summary Banear / desbanear (admin)
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "ID del usuario"
// @Param payload body setBannedRequest true "isBanned"
// @Success 200 {object} userResponse
// @Router /users/{id}/ban [patch]
func setBannedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setBannedRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		if req.IsBanned == nil {
			httpx.WriteError(w, r, log, apperr.New(apperr.Invalid, "isBanned is required"))
			return
		}

		u, err := svc.SetBanned(r.Context(), chi.URLParam(r, "id"), *req.IsBanned)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      u.Role,
		IsBanned:  u.IsBanned,
		CreatedAt: u.CreatedAt,
	}
}

func toUserResponses(items []User) []userResponse {
	out := make([]userResponse, 0, len(items))
	for _, u := range items {
		out = append(out, toUserResponse(u))
	}
	return out
}
