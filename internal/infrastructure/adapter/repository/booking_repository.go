package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/model"
)

// BookingRepository implements the booking repository port using GORM.
// The paired-write operations run inside a single database transaction; the
// conditional UPDATE on the slot's availability flag is the commit point that
// decides booking races.
type BookingRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

// NewBookingRepository creates a new BookingRepository instance
func NewBookingRepository(db *gorm.DB, logger coreport.Logger) *BookingRepository {
	return &BookingRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	var bookingModel model.Booking
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&bookingModel)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Error("Database error when getting booking", map[string]any{
				"booking_id": id,
				"error":      result.Error.Error(),
			})
		}
		return nil, r.errorMapper.MapEntityNotFoundError(result.Error, database.EntityTypeBooking)
	}

	return bookingModel.ToEntity(), nil
}

// ListByUser returns all bookings of a user, newest first
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]entity.Booking, error) {
	var bookingModels []model.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookingModels).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, "list bookings by user")
	}

	return toBookingEntities(bookingModels), nil
}

// ListAll returns every booking, newest first
func (r *BookingRepository) ListAll(ctx context.Context) ([]entity.Booking, error) {
	var bookingModels []model.Booking
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookingModels).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, "list all bookings")
	}

	return toBookingEntities(bookingModels), nil
}

// CountActiveByUser returns the number of confirmed bookings held by a user
func (r *BookingRepository) CountActiveByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("user_id = ? AND status = ?", userID, string(entity.StatusConfirmed)).
		Count(&count).Error
	if err != nil {
		return 0, r.errorMapper.MapError(err, "count active bookings")
	}
	return count, nil
}

// HasActiveForSlot reports whether any confirmed booking references the slot
func (r *BookingRepository) HasActiveForSlot(ctx context.Context, slotID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("slot_id = ? AND status = ?", slotID, string(entity.StatusConfirmed)).
		Count(&count).Error
	if err != nil {
		return false, r.errorMapper.MapError(err, "check slot bookings")
	}
	return count > 0, nil
}

// CreateConfirmed inserts the booking and flips the slot's availability in
// one transaction. The UPDATE is conditional on the flag still being true;
// zero affected rows means another booking won the race or the slot vanished.
func (r *BookingRepository) CreateConfirmed(ctx context.Context, booking *entity.Booking, maxActivePerUser int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Slot{}).
			Where("id = ? AND is_available = ?", booking.SlotID, true).
			Updates(map[string]any{
				"is_available": false,
				"updated_at":   booking.CreatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.Slot{}).Where("id = ?", booking.SlotID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return errs.ErrSlotNotFound
			}
			return errs.ErrSlotUnavailable
		}

		// The limit must hold under concurrency, so it is re-checked with
		// the availability UPDATE already serializing this transaction.
		var active int64
		if err := tx.Model(&model.Booking{}).
			Where("user_id = ? AND status = ?", booking.UserID, string(entity.StatusConfirmed)).
			Count(&active).Error; err != nil {
			return err
		}
		if active >= int64(maxActivePerUser) {
			return errs.ErrBookingLimitExceeded
		}

		return tx.Create(model.BookingFromEntity(booking)).Error
	})

	if err != nil {
		if errors.Is(err, errs.ErrSlotUnavailable) ||
			errors.Is(err, errs.ErrSlotNotFound) ||
			errors.Is(err, errs.ErrBookingLimitExceeded) {
			return err
		}
		r.logger.Error("Booking transaction failed", map[string]any{
			"booking_id": booking.ID,
			"slot_id":    booking.SlotID,
			"error":      err.Error(),
		})
		return r.errorMapper.MapError(err, "create booking")
	}
	return nil
}

// CancelConfirmed persists the cancelled state and releases the slot in one
// transaction. The status UPDATE is conditional on the stored status still
// being confirmed, so a concurrent double cancel affects zero rows and fails.
func (r *BookingRepository) CancelConfirmed(ctx context.Context, booking *entity.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Booking{}).
			Where("id = ? AND status = ?", booking.ID, string(entity.StatusConfirmed)).
			Updates(map[string]any{
				"status":       string(booking.Status),
				"cancelled_at": booking.CancelledAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.Booking{}).Where("id = ?", booking.ID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return errs.ErrBookingNotFound
			}
			return errs.ErrInvalidState
		}

		return tx.Model(&model.Slot{}).
			Where("id = ?", booking.SlotID).
			Updates(map[string]any{
				"is_available": true,
				"updated_at":   booking.CancelledAt,
			}).Error
	})

	if err != nil {
		if errors.Is(err, errs.ErrInvalidState) || errors.Is(err, errs.ErrBookingNotFound) {
			return err
		}
		r.logger.Error("Cancel transaction failed", map[string]any{
			"booking_id": booking.ID,
			"error":      err.Error(),
		})
		return r.errorMapper.MapError(err, "cancel booking")
	}
	return nil
}

func toBookingEntities(bookingModels []model.Booking) []entity.Booking {
	bookings := make([]entity.Booking, 0, len(bookingModels))
	for i := range bookingModels {
		bookings = append(bookings, *bookingModels[i].ToEntity())
	}
	return bookings
}

var _ persistence.BookingRepository = (*BookingRepository)(nil)
