package domain

import "time"

// DashboardStats агрегированные показатели для главной страницы админки
type DashboardStats struct {
	TotalBookings     int
	TotalCustomers    int
	BookingsByStatus  map[BookingStatus]int
	BookingsThisMonth int
	MonthStart        time.Time
	Revenue           string // сумма продаж по неотменённым бронированиям, 2 знака после запятой
}
