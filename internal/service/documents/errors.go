package documents

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("documents: booking not found")

	// ErrUnknownKind возвращается при запросе неизвестного типа документа
	ErrUnknownKind = errors.New("documents: unknown document kind")

	// ErrInternal возвращается при ошибке получения данных или формирования PDF
	ErrInternal = errors.New("documents: internal error")
)
