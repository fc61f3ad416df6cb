package update_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SkyTrips-AdminService/internal/api/handlers"
	saveBooking "github.com/m04kA/SkyTrips-AdminService/internal/usecase/save_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidForm        = "некорректные данные бронирования"
	msgNotFound           = "бронирование не найдено"
)

type Handler struct {
	useCase SaveBookingUseCase
	logger  Logger
}

func NewHandler(useCase SaveBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{id}
// ID берётся из пути, ID в теле формы игнорируется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req SaveBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, saveBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, saveBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid form: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w,
				msgInvalidForm+": "+strings.TrimPrefix(err.Error(), saveBooking.ErrInvalidInput.Error()+": "))

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
