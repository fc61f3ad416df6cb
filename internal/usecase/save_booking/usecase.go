package save_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
	"github.com/m04kA/SkyTrips-AdminService/internal/domain/bookingform"
	bookingRepo "github.com/m04kA/SkyTrips-AdminService/internal/infra/storage/booking"
)

// UseCase use case для сохранения формы бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переводит форму в запись хранилища и создаёт или обновляет бронирование.
// Значения по умолчанию (номер билета, дата выписки) подставляются на момент сохранения.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveBooking: id=%d, pnr=%q", req.ID, req.Form.PNR)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Форма в запись хранилища
	form := req.Form
	form.ID = req.ID
	record := bookingform.ToPersistedRecord(form, uc.timeProvider.Now())

	if err := validateRecord(record); err != nil {
		uc.logger.Warn("SaveBooking: record validation failed: %v", err)
		return nil, err
	}

	// 3. Создание или обновление
	created := record.IsNew()
	var (
		saved *domain.Booking
		err   error
	)
	if created {
		saved, err = uc.bookingRepo.Create(ctx, record)
	} else {
		saved, err = uc.bookingRepo.Update(ctx, record)
	}
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("SaveBooking: booking id=%d not found", req.ID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("SaveBooking: failed to save booking id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	uc.logger.Info("SaveBooking: saved booking id=%d, created=%t", saved.ID, created)

	return &Response{
		Booking: saved,
		Totals:  bookingform.RecordTotals(saved),
		Created: created,
	}, nil
}
