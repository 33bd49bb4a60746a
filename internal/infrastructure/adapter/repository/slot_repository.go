package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/model"
)

// SlotRepository implements the slot repository port using GORM
type SlotRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

// NewSlotRepository creates a new SlotRepository instance
func NewSlotRepository(db *gorm.DB, logger coreport.Logger) *SlotRepository {
	return &SlotRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

// GetByID retrieves a slot by ID
func (r *SlotRepository) GetByID(ctx context.Context, id string) (*entity.Slot, error) {
	var slotModel model.Slot
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&slotModel)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Error("Database error when getting slot", map[string]any{
				"slot_id": id,
				"error":   result.Error.Error(),
			})
		}
		return nil, r.errorMapper.MapEntityNotFoundError(result.Error, database.EntityTypeSlot)
	}

	return slotModel.ToEntity(), nil
}

// List returns slots matching the filter, ordered by location then number
func (r *SlotRepository) List(ctx context.Context, filter persistence.SlotFilter) ([]entity.Slot, error) {
	query := r.db.WithContext(ctx).Order("location, slot_number")
	if filter.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}

	var slotModels []model.Slot
	if err := query.Find(&slotModels).Error; err != nil {
		r.logger.Error("Database error when listing slots", map[string]any{
			"error": err.Error(),
		})
		return nil, r.errorMapper.MapError(err, "list slots")
	}

	slots := make([]entity.Slot, 0, len(slotModels))
	for i := range slotModels {
		slots = append(slots, *slotModels[i].ToEntity())
	}
	return slots, nil
}

// Create persists a new slot. The composite unique index on
// (location, slot_number) surfaces duplicates as ErrDuplicateSlot.
func (r *SlotRepository) Create(ctx context.Context, slot *entity.Slot) error {
	slotModel := model.SlotFromEntity(slot)
	result := r.db.WithContext(ctx).Create(slotModel)
	if result.Error != nil {
		return r.errorMapper.MapError(result.Error, "create slot")
	}
	return nil
}

// Delete removes a slot record
func (r *SlotRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Slot{})
	if result.Error != nil {
		return r.errorMapper.MapError(result.Error, "delete slot")
	}
	if result.RowsAffected == 0 {
		return r.errorMapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, database.EntityTypeSlot)
	}
	return nil
}

var _ persistence.SlotRepository = (*SlotRepository)(nil)
