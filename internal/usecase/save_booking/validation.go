package save_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID < 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	return nil
}

// validateRecord проверяет запись перед сохранением.
// Проверяются обязательные поля и допустимость значений перечислений.
func validateRecord(b *domain.Booking) error {
	if strings.TrimSpace(b.TravellerFirstName) == "" {
		return fmt.Errorf("%w: traveller first name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(b.TravellerLastName) == "" {
		return fmt.Errorf("%w: traveller last name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(b.PNR) == "" {
		return fmt.Errorf("%w: PNR is required", ErrInvalidInput)
	}

	if !b.TripType.IsValid() {
		return fmt.Errorf("%w: unknown trip type %q", ErrInvalidInput, b.TripType)
	}

	if !b.FlightClass.IsValid() {
		return fmt.Errorf("%w: unknown flight class %q", ErrInvalidInput, b.FlightClass)
	}

	if !b.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, b.Status)
	}

	if !b.PaymentStatus.IsValid() {
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, b.PaymentStatus)
	}

	if !b.ContactType.IsValid() || !b.CustomerType.IsValid() {
		return fmt.Errorf("%w: contact and customer type must be existing or new", ErrInvalidInput)
	}

	return nil
}
