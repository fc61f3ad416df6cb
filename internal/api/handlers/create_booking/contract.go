package create_booking

import (
	"context"

	saveBooking "github.com/m04kA/SkyTrips-AdminService/internal/usecase/save_booking"
)

type SaveBookingUseCase interface {
	Execute(ctx context.Context, req *saveBooking.Request) (*saveBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
