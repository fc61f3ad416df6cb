package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
)

type mockBookings struct {
	mock.Mock
}

func (m *mockBookings) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[domain.BookingStatus]int)
	return counts, args.Error(1)
}

func (m *mockBookings) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func (m *mockBookings) ListFinancials(ctx context.Context) ([]*domain.Booking, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*domain.Booking)
	return items, args.Error(1)
}

type mockCustomers struct {
	mock.Mock
}

func (m *mockCustomers) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func TestGetStats(t *testing.T) {
	current := time.Date(2026, time.October, 19, 15, 30, 0, 0, time.UTC)
	monthStart := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

	bookings := &mockBookings{}
	bookings.On("CountByStatus", mock.Anything).Return(map[domain.BookingStatus]int{
		domain.StatusConfirmed: 5,
		domain.StatusCancelled: 1,
		"":                     2,
	}, nil)
	bookings.On("CountCreatedSince", mock.Anything, monthStart).Return(3, nil)
	bookings.On("ListFinancials", mock.Anything).Return([]*domain.Booking{
		{SellingPrice: "700.00", Prices: map[domain.Addon]string{domain.AddonMeals: "15.00"}},
		{SellingPrice: "abc", Prices: map[domain.Addon]string{domain.AddonLuggage: "20"}},
	}, nil)

	customers := &mockCustomers{}
	customers.On("Count", mock.Anything).Return(12, nil)

	svc := NewService(bookings, customers, nopLogger{})
	svc.timeProvider = fixedTime{t: current}

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8, stats.TotalBookings)
	assert.Equal(t, 12, stats.TotalCustomers)
	assert.Equal(t, 3, stats.BookingsThisMonth)
	assert.Equal(t, "2026-10-01", stats.MonthStart)
	assert.Equal(t, "735.00", stats.Revenue)
	assert.Equal(t, 5, stats.BookingsByStatus["Confirmed"])
	assert.Equal(t, 0, stats.BookingsByStatus["Pending"])
	bookings.AssertExpectations(t)
}

func TestGetStats_RepositoryError(t *testing.T) {
	bookings := &mockBookings{}
	bookings.On("CountByStatus", mock.Anything).Return(nil, errors.New("boom"))

	_, err := NewService(bookings, &mockCustomers{}, nopLogger{}).GetStats(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
