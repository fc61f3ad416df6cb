package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SkyTrips-AdminService/internal/api/handlers"
	saveBooking "github.com/m04kA/SkyTrips-AdminService/internal/usecase/save_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidForm        = "некорректные данные бронирования"
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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SaveBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Форма всегда сохраняется как новое бронирование, ID из тела игнорируется
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(0))
	if err != nil {
		switch {
		case errors.Is(err, saveBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid form: %v", err)
			handlers.RespondBadRequest(w,
				msgInvalidForm+": "+strings.TrimPrefix(err.Error(), saveBooking.ErrInvalidInput.Error()+": "))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: pnr=%q, error=%v", req.Form.PNR, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d", result.Booking.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
