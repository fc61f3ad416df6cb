package save_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда обновляемое бронирование не найдено
	ErrBookingNotFound = errors.New("save_booking: booking not found")

	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("save_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_booking: internal error")
)
