package models

import (
	"errors"
	"strings"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
	"github.com/m04kA/SkyTrips-AdminService/internal/domain/bookingform"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPagination возвращается при некорректных параметрах страницы
	ErrInvalidPagination = errors.New("invalid pagination")
)

// Request модели

// ListBookingsRequest запрос на получение страницы бронирований
type ListBookingsRequest struct {
	Page     int     `json:"page"`             // с 1, 0 означает первую страницу
	PageSize int     `json:"pageSize"`         // 0 означает размер по умолчанию
	Search   string  `json:"search,omitempty"` // подстрока (опционально)
	Status   *string `json:"status,omitempty"` // фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр с учётом ограничений размера страницы
func (r *ListBookingsRequest) ToDomainFilter(defaultPageSize, maxPageSize int) (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Page:     r.Page,
		PageSize: r.PageSize,
		Search:   strings.TrimSpace(r.Search),
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = defaultPageSize
	}
	if filter.Page < 1 || filter.PageSize < 1 || filter.PageSize > maxPageSize {
		return filter, ErrInvalidPagination
	}

	if r.Status != nil && *r.Status != "" {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus конвертирует строку в статус бронирования
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FieldChangeInput сырое изменение поля формы
type FieldChangeInput struct {
	Name  string `json:"name"`  // имя поля формы, "addon-<key>" или "price-<key>"
	Value string `json:"value"` // сырое значение
	Type  string `json:"type"`  // text, number или checkbox, пусто означает text
}

// ChoiceInput выбор existing/new для contactType или customerType
type ChoiceInput struct {
	Group string `json:"group"`
	Value string `json:"value"`
}

// PreviewRequest состояние формы и изменения, которые нужно к нему применить
type PreviewRequest struct {
	Form         bookingform.State  `json:"form"`
	Changes      []FieldChangeInput `json:"changes,omitempty"`
	Choices      []ChoiceInput      `json:"choices,omitempty"`
	ShowStopover *bool              `json:"showStopover,omitempty"`
}

// Response модели

// BookingResponse запись бронирования в схеме хранилища и вычисленные итоги
type BookingResponse struct {
	*domain.Booking
	AddonsSubtotal string `json:"addonsSubtotal"`
	GrandTotal     string `json:"grandTotal"`
}

// BookingListItem строка таблицы бронирований
type BookingListItem struct {
	ID            int64  `json:"id"`
	TravellerName string `json:"travellerName"`
	PNR           string `json:"PNR"`
	TicketNumber  string `json:"ticketNumber"`
	Airlines      string `json:"airlines"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	TravelDate    string `json:"travelDate"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	SellingPrice  string `json:"sellingPrice"`
	GrandTotal    string `json:"grandTotal"`
}

// BookingListResponse ответ со страницей бронирований
type BookingListResponse struct {
	Bookings   []BookingListItem `json:"bookings"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalCount int               `json:"totalCount"`
	TotalPages int               `json:"totalPages"`
}

// FormResponse состояние формы и итоги
type FormResponse struct {
	Form   bookingform.State  `json:"form"`
	Totals bookingform.Totals `json:"totals"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	totals := bookingform.RecordTotals(b)
	return &BookingResponse{
		Booking:        b,
		AddonsSubtotal: totals.AddonsSubtotal,
		GrandTotal:     totals.GrandTotal,
	}
}

// FromDomainBookingList конвертирует страницу domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, filter domain.BookingsFilter, total int) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings:   make([]BookingListItem, 0, len(bookings)),
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalCount: total,
		TotalPages: domain.TotalPages(total, filter.PageSize),
	}

	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, BookingListItem{
			ID:            b.ID,
			TravellerName: b.TravellerName(),
			PNR:           strings.ToUpper(b.PNR),
			TicketNumber:  b.TicketNumber,
			Airlines:      b.Airlines,
			Origin:        b.Origin,
			Destination:   b.Destination,
			TravelDate:    b.TravelDate,
			Status:        string(b.Status),
			PaymentStatus: string(b.PaymentStatus),
			SellingPrice:  b.SellingPrice,
			GrandTotal:    bookingform.RecordTotals(b).GrandTotal,
		})
	}

	return resp
}

// FromFormState ответ с формой и её итогами
func FromFormState(s bookingform.State) *FormResponse {
	return &FormResponse{
		Form:   s,
		Totals: bookingform.ComputeTotals(s),
	}
}
