package allocator

import (
	"time"

	cacheport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	eventport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/event"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/usecase"
)

// DefaultMaxActiveBookings is the per-user limit of confirmed bookings
const DefaultMaxActiveBookings = 3

// Service implements the booking allocator. It is the only component that
// drives slot-availability transitions, always through the repository's
// paired-write operations.
type Service struct {
	users    persistence.UserRepository
	slots    persistence.SlotRepository
	bookings persistence.BookingRepository

	cache     cacheport.SlotCache // optional fast-fail slot lock + listing cache
	publisher eventport.Publisher // optional booking lifecycle events

	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	maxActiveBookings int
	slotLockTTL       time.Duration
}

// Option configures optional collaborators of the allocator
type Option func(*Service)

// WithSlotCache attaches the cache used for slot locks and listing invalidation
func WithSlotCache(c cacheport.SlotCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithPublisher attaches the booking event publisher
func WithPublisher(p eventport.Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithMaxActiveBookings overrides the per-user confirmed-booking limit
func WithMaxActiveBookings(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxActiveBookings = limit
		}
	}
}

// WithSlotLockTTL overrides how long a slot lock is held at most
func WithSlotLockTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.slotLockTTL = ttl
		}
	}
}

// NewService creates a booking allocator
func NewService(
	users persistence.UserRepository,
	slots persistence.SlotRepository,
	bookings persistence.BookingRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		users:             users,
		slots:             slots,
		bookings:          bookings,
		timeProvider:      timeProvider,
		logger:            logger,
		maxActiveBookings: DefaultMaxActiveBookings,
		slotLockTTL:       30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ usecase.BookingAllocator = (*Service)(nil)
