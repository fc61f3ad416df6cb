package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
)

// BookingStatsRepository агрегаты по бронированиям
type BookingStatsRepository interface {
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
	ListFinancials(ctx context.Context) ([]*domain.Booking, error)
}

// CustomerCounter количество клиентов
type CustomerCounter interface {
	Count(ctx context.Context) (int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
