package update_booking

import (
	"github.com/m04kA/SkyTrips-AdminService/internal/domain/bookingform"
	bookingsModels "github.com/m04kA/SkyTrips-AdminService/internal/service/bookings/models"
	saveBooking "github.com/m04kA/SkyTrips-AdminService/internal/usecase/save_booking"
)

// SaveBookingRequest тело запроса: состояние формы
type SaveBookingRequest struct {
	Form bookingform.State `json:"form"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *SaveBookingRequest) ToUseCaseRequest(id int64) *saveBooking.Request {
	return &saveBooking.Request{
		ID:   id,
		Form: r.Form,
	}
}

// FromUseCaseResponse сохранённая запись с итогами
func FromUseCaseResponse(resp *saveBooking.Response) *bookingsModels.BookingResponse {
	return &bookingsModels.BookingResponse{
		Booking:        resp.Booking,
		AddonsSubtotal: resp.Totals.AddonsSubtotal,
		GrandTotal:     resp.Totals.GrandTotal,
	}
}
