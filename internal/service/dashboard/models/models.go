package models

import (
	"time"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
)

// StatsResponse показатели главной страницы
type StatsResponse struct {
	TotalBookings     int            `json:"totalBookings"`
	TotalCustomers    int            `json:"totalCustomers"`
	BookingsByStatus  map[string]int `json:"bookingsByStatus"`
	BookingsThisMonth int            `json:"bookingsThisMonth"`
	MonthStart        string         `json:"monthStart"` // "2026-10-01"
	Revenue           string         `json:"revenue"`
}

// FromDomainStats конвертирует domain модель в DTO.
// Все известные статусы присутствуют в ответе, в том числе с нулём.
func FromDomainStats(s *domain.DashboardStats) *StatsResponse {
	byStatus := map[string]int{
		string(domain.StatusConfirmed): 0,
		string(domain.StatusPending):   0,
		string(domain.StatusCancelled): 0,
	}
	for status, count := range s.BookingsByStatus {
		byStatus[string(status)] += count
	}

	return &StatsResponse{
		TotalBookings:     s.TotalBookings,
		TotalCustomers:    s.TotalCustomers,
		BookingsByStatus:  byStatus,
		BookingsThisMonth: s.BookingsThisMonth,
		MonthStart:        s.MonthStart.Format(time.DateOnly),
		Revenue:           s.Revenue,
	}
}
