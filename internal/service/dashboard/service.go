package dashboard

import (
	"context"
	"fmt"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
	"github.com/m04kA/SkyTrips-AdminService/internal/domain/bookingform"
	"github.com/m04kA/SkyTrips-AdminService/internal/service/dashboard/models"
)

// Service сервис статистики для главной страницы
type Service struct {
	bookingRepo  BookingStatsRepository
	customerRepo CustomerCounter
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(bookingRepo BookingStatsRepository, customerRepo CustomerCounter, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetStats собирает показатели. Выручка считается по правилам итогов формы:
// цена продажи плюс доп. услуги по всем неотменённым бронированиям.
func (s *Service) GetStats(ctx context.Context) (*models.StatsResponse, error) {
	monthStart := now.With(s.timeProvider.Now()).BeginningOfMonth()

	byStatus, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("GetStats: failed to count bookings by status: %v", err)
		return nil, fmt.Errorf("%w: count by status: %v", ErrInternal, err)
	}

	thisMonth, err := s.bookingRepo.CountCreatedSince(ctx, monthStart)
	if err != nil {
		s.logger.Error("GetStats: failed to count bookings since %s: %v", monthStart.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: count this month: %v", ErrInternal, err)
	}

	customers, err := s.customerRepo.Count(ctx)
	if err != nil {
		s.logger.Error("GetStats: failed to count customers: %v", err)
		return nil, fmt.Errorf("%w: count customers: %v", ErrInternal, err)
	}

	financials, err := s.bookingRepo.ListFinancials(ctx)
	if err != nil {
		s.logger.Error("GetStats: failed to load financials: %v", err)
		return nil, fmt.Errorf("%w: list financials: %v", ErrInternal, err)
	}

	revenue := decimal.Zero
	for _, b := range financials {
		revenue = revenue.Add(bookingform.RecordGrandTotal(b))
	}

	total := 0
	for _, count := range byStatus {
		total += count
	}

	stats := &domain.DashboardStats{
		TotalBookings:     total,
		TotalCustomers:    customers,
		BookingsByStatus:  byStatus,
		BookingsThisMonth: thisMonth,
		MonthStart:        monthStart,
		Revenue:           bookingform.FormatAmount(revenue),
	}

	s.logger.Info("GetStats: bookings=%d, customers=%d, revenue=%s", stats.TotalBookings, stats.TotalCustomers, stats.Revenue)
	return models.FromDomainStats(stats), nil
}
