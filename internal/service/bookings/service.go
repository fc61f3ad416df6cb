package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
	"github.com/m04kA/SkyTrips-AdminService/internal/domain/bookingform"
	bookingRepo "github.com/m04kA/SkyTrips-AdminService/internal/infra/storage/booking"
	"github.com/m04kA/SkyTrips-AdminService/internal/service/bookings/models"
)

// Pagination ограничения размера страницы списка
type Pagination struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Service сервис для работы с бронированиями и их формами
type Service struct {
	bookingRepo BookingRepository
	pagination  Pagination
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, pagination Pagination, logger Logger) *Service {
	if pagination.DefaultPageSize <= 0 {
		pagination.DefaultPageSize = domain.DefaultPageSize
	}
	if pagination.MaxPageSize <= 0 {
		pagination.MaxPageSize = domain.MaxPageSize
	}

	return &Service{
		bookingRepo: bookingRepo,
		pagination:  pagination,
		logger:      logger,
	}
}

// List возвращает страницу бронирований по возрастанию id
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: page=%d, pageSize=%d, search=%q, status=%v", req.Page, req.PageSize, req.Search, req.Status)

	filter, err := req.ToDomainFilter(s.pagination.DefaultPageSize, s.pagination.MaxPageSize)
	if err != nil {
		s.logger.Warn("List: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, total, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d bookings", len(bookings), total)
	return models.FromDomainBookingList(bookings, filter, total), nil
}

// GetByID получает бронирование с вычисленными итогами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetForm загружает бронирование в форму поверх значений по умолчанию
func (s *Service) GetForm(ctx context.Context, id int64) (*models.FormResponse, error) {
	booking, err := s.getBooking(ctx, "GetForm", id)
	if err != nil {
		return nil, err
	}

	return models.FromFormState(bookingform.Load(booking)), nil
}

// NewForm пустая форма нового бронирования
func (s *Service) NewForm() *models.FormResponse {
	return models.FromFormState(bookingform.New())
}

// Preview применяет изменения к состоянию формы и пересчитывает итоги.
// Изменения применяются по порядку, затем выборы existing/new, затем видимость пересадки.
func (s *Service) Preview(req *models.PreviewRequest) (*models.FormResponse, error) {
	state := bookingform.Normalize(req.Form)

	for _, c := range req.Changes {
		kind, err := toInputKind(c.Type)
		if err != nil {
			s.logger.Warn("Preview: field=%s: %v", c.Name, err)
			return nil, err
		}
		state = bookingform.ApplyFieldChange(state, bookingform.ParseFieldChange(c.Name, c.Value, kind))
	}

	for _, c := range req.Choices {
		group := bookingform.ChoiceGroup(c.Group)
		choice := domain.PartyType(c.Value)
		if !group.IsValid() || !choice.IsValid() {
			s.logger.Warn("Preview: invalid choice group=%q value=%q", c.Group, c.Value)
			return nil, fmt.Errorf("%w: invalid choice %s=%s", ErrInvalidInput, c.Group, c.Value)
		}
		state = bookingform.SetChoice(state, group, choice)
	}

	if req.ShowStopover != nil {
		state = bookingform.SetShowStopover(state, *req.ShowStopover)
	}

	return models.FromFormState(state), nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return booking, nil
}

func toInputKind(t string) (bookingform.InputKind, error) {
	switch bookingform.InputKind(t) {
	case "", bookingform.KindText:
		return bookingform.KindText, nil
	case bookingform.KindNumber:
		return bookingform.KindNumber, nil
	case bookingform.KindCheckbox:
		return bookingform.KindCheckbox, nil
	}
	return "", fmt.Errorf("%w: unknown input type %q", ErrInvalidInput, t)
}
