package dashboard

import (
	"context"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/usecase"
)

// Service derives the user and admin dashboard views by filtering and
// grouping booking and slot records. Reporting snapshots only; no guarantee
// of consistency with concurrent writes beyond read-your-writes at the store.
type Service struct {
	slots        persistence.SlotRepository
	bookings     persistence.BookingRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a dashboard aggregator
func NewService(
	slots persistence.SlotRepository,
	bookings persistence.BookingRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		slots:        slots,
		bookings:     bookings,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// UserDashboard partitions a user's bookings: upcoming holds the confirmed
// ones, past holds cancelled and completed, the total counts everything.
func (s *Service) UserDashboard(ctx context.Context, userID string) (*usecase.UserDashboard, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &usecase.UserDashboard{
		Upcoming:   make([]entity.Booking, 0),
		Past:       make([]entity.Booking, 0),
		TotalCount: len(bookings),
	}
	for _, b := range bookings {
		if b.Status == entity.StatusConfirmed {
			view.Upcoming = append(view.Upcoming, b)
		} else {
			view.Past = append(view.Past, b)
		}
	}

	return view, nil
}

// AdminDashboard counts slots by availability and collects today's bookings,
// where "today" is the current calendar date in the server's local time zone.
func (s *Service) AdminDashboard(ctx context.Context) (*usecase.AdminDashboard, error) {
	slots, err := s.slots.List(ctx, persistence.SlotFilter{})
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	view := &usecase.AdminDashboard{
		TotalSlots:     len(slots),
		TodaysBookings: make([]entity.Booking, 0),
		AllBookings:    bookings,
	}
	for _, slot := range slots {
		if slot.IsAvailable {
			view.AvailableSlots++
		} else {
			view.BookedSlots++
		}
	}

	now := s.timeProvider.Now()
	year, month, day := now.Date()
	for _, b := range bookings {
		by, bm, bd := b.CreatedAt.In(now.Location()).Date()
		if by == year && bm == month && bd == day {
			view.TodaysBookings = append(view.TodaysBookings, b)
		}
	}

	return view, nil
}

var _ usecase.DashboardAggregator = (*Service)(nil)
