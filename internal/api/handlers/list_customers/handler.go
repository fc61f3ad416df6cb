package list_customers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SkyTrips-AdminService/internal/api/handlers"
	"github.com/m04kA/SkyTrips-AdminService/internal/service/customers"
	"github.com/m04kA/SkyTrips-AdminService/internal/service/customers/models"
)

const msgInvalidParams = "некорректные параметры запроса"

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers
// Query params: page, pageSize, search (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, err := handlers.QueryInt(r, "page")
	if err != nil {
		h.logger.Warn("GET /customers - Invalid page: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	pageSize, err := handlers.QueryInt(r, "pageSize")
	if err != nil {
		h.logger.Warn("GET /customers - Invalid pageSize: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListCustomersRequest{
		Page:     page,
		PageSize: pageSize,
		Search:   r.URL.Query().Get("search"),
	})
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /customers - Failed to list customers: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers - Customers retrieved: page=%d, count=%d", result.Page, len(result.Customers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
