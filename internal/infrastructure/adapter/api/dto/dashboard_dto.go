package dto

import (
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/usecase"
)

// UserDashboardResponse represents GET /dashboard/user/:userId
type UserDashboardResponse struct {
	Upcoming   []BookingResponse `json:"upcoming"`
	Past       []BookingResponse `json:"past"`
	TotalCount int               `json:"total_count"`
}

// AdminDashboardResponse represents GET /dashboard/admin
type AdminDashboardResponse struct {
	TotalSlots     int               `json:"total_slots"`
	AvailableSlots int               `json:"available_slots"`
	BookedSlots    int               `json:"booked_slots"`
	TodaysBookings []BookingResponse `json:"todays_bookings"`
	AllBookings    []BookingResponse `json:"all_bookings"`
}

// NewUserDashboardResponse converts the user dashboard view
func NewUserDashboardResponse(view *usecase.UserDashboard) UserDashboardResponse {
	return UserDashboardResponse{
		Upcoming:   NewBookingListResponse(view.Upcoming),
		Past:       NewBookingListResponse(view.Past),
		TotalCount: view.TotalCount,
	}
}

// NewAdminDashboardResponse converts the admin dashboard view
func NewAdminDashboardResponse(view *usecase.AdminDashboard) AdminDashboardResponse {
	return AdminDashboardResponse{
		TotalSlots:     view.TotalSlots,
		AvailableSlots: view.AvailableSlots,
		BookedSlots:    view.BookedSlots,
		TodaysBookings: NewBookingListResponse(view.TodaysBookings),
		AllBookings:    NewBookingListResponse(view.AllBookings),
	}
}
