package save_booking

import (
	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
	"github.com/m04kA/SkyTrips-AdminService/internal/domain/bookingform"
)

// Request модель запроса на сохранение формы бронирования
type Request struct {
	ID   int64             // ID бронирования, 0 для создания нового
	Form bookingform.State // состояние формы
}

// Response модель ответа с сохранённым бронированием
type Response struct {
	Booking *domain.Booking    // запись в схеме хранилища
	Totals  bookingform.Totals // итоги по сохранённой записи
	Created bool               // true, если бронирование создано
}
