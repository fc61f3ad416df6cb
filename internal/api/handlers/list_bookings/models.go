package list_bookings

import (
	"net/http"
	"strings"

	"github.com/m04kA/SkyTrips-AdminService/internal/api/handlers"
	"github.com/m04kA/SkyTrips-AdminService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров page, pageSize, search, status
func ToServiceRequest(r *http.Request) (*models.ListBookingsRequest, error) {
	page, err := handlers.QueryInt(r, "page")
	if err != nil {
		return nil, err
	}
	pageSize, err := handlers.QueryInt(r, "pageSize")
	if err != nil {
		return nil, err
	}

	req := &models.ListBookingsRequest{
		Page:     page,
		PageSize: pageSize,
		Search:   r.URL.Query().Get("search"),
	}

	if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
		req.Status = &status
	}

	return req, nil
}
