package get_booking_document

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SkyTrips-AdminService/internal/api/handlers"
	"github.com/m04kA/SkyTrips-AdminService/internal/service/documents"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgUnknownDocument  = "неизвестный тип документа"
	msgNotFound         = "бронирование не найдено"
)

type Handler struct {
	service DocumentService
	logger  Logger
}

func NewHandler(service DocumentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{id}/{kind}, kind: ticket или invoice
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/{kind} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}
	kind := documents.Kind(mux.Vars(r)["kind"])

	doc, err := h.service.Generate(r.Context(), bookingID, kind)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrUnknownKind):
			handlers.RespondBadRequest(w, msgUnknownDocument)

		case errors.Is(err, documents.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/%s - Booking not found: booking_id=%d", kind, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id}/%s - Failed to generate document: booking_id=%d, error=%v",
				kind, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/%s - Document generated: booking_id=%d, size=%d", kind, bookingID, len(doc.Content))
	handlers.RespondFile(w, doc.Filename, doc.ContentType, doc.Content)
}
