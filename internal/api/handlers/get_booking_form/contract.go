package get_booking_form

import (
	"context"

	"github.com/m04kA/SkyTrips-AdminService/internal/service/bookings/models"
)

type BookingService interface {
	GetForm(ctx context.Context, id int64) (*models.FormResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
