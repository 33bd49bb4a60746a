package usecase

import (
	"context"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
)

// UserDashboard summarizes a single user's bookings
type UserDashboard struct {
	Upcoming   []entity.Booking
	Past       []entity.Booking
	TotalCount int
}

// AdminDashboard is a reporting snapshot of the whole system
type AdminDashboard struct {
	TotalSlots     int
	AvailableSlots int
	BookedSlots    int
	TodaysBookings []entity.Booking
	AllBookings    []entity.Booking
}

// DashboardAggregator derives summary views from booking and slot records.
// Pure reads; no mutation.
type DashboardAggregator interface {
	// UserDashboard partitions a user's bookings into upcoming (confirmed)
	// and past (cancelled or completed)
	UserDashboard(ctx context.Context, userID string) (*UserDashboard, error)

	// AdminDashboard counts slots by availability and collects today's
	// bookings by the server's local calendar date
	AdminDashboard(ctx context.Context) (*AdminDashboard, error)
}
