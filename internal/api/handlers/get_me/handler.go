package get_me

import (
	"net/http"

	"github.com/m04kA/SkyTrips-AdminService/internal/api/handlers"
	"github.com/m04kA/SkyTrips-AdminService/internal/api/middleware"
)

const msgUnauthorized = "требуется авторизация"

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetAdminEmail(r.Context())
	if !ok {
		h.logger.Warn("GET /auth/me - Missing admin email")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	admin, err := h.service.Me(email)
	if err != nil {
		h.logger.Warn("GET /auth/me - Rejected: %v", err)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, admin)
}
