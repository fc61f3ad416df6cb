package preview_booking_form

import (
	"github.com/m04kA/SkyTrips-AdminService/internal/service/bookings/models"
)

type BookingService interface {
	Preview(req *models.PreviewRequest) (*models.FormResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
