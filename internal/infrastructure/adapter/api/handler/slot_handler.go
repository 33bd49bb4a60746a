package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/api/dto"
)

// SlotHandler handles slot-inventory HTTP requests
type SlotHandler struct {
	slotInventory usecase.SlotInventory
	userUseCase   usecase.UserUseCase
	logger        coreport.Logger
}

// NewSlotHandler creates a new slot handler instance
func NewSlotHandler(
	slotInventory usecase.SlotInventory,
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *SlotHandler {
	return &SlotHandler{
		slotInventory: slotInventory,
		userUseCase:   userUseCase,
		logger:        logger,
	}
}

// List handles the GET /slots endpoint
func (h *SlotHandler) List(c *gin.Context) {
	availableOnly := c.Query("available_only") == "true"

	slots, err := h.slotInventory.ListSlots(c.Request.Context(), availableOnly)
	if err != nil {
		h.logger.Error("Error listing slots", map[string]any{
			"availableOnly": availableOnly,
			"error":         err.Error(),
		})
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSlotListResponse(slots))
}

// Create handles the POST /slots endpoint. Admin only.
func (h *SlotHandler) Create(c *gin.Context) {
	if !requireAdmin(c, h.userUseCase) {
		return
	}

	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c)
		return
	}

	slot, err := h.slotInventory.CreateSlot(c.Request.Context(), req.Location, req.SlotNumber)
	if err != nil {
		h.logger.Warn("Slot creation failed", map[string]any{
			"location":   req.Location,
			"slotNumber": req.SlotNumber,
			"error":      err.Error(),
		})
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSlotResponse(slot))
}

// Delete handles the DELETE /slots/{slotId} endpoint. Admin only.
func (h *SlotHandler) Delete(c *gin.Context) {
	if !requireAdmin(c, h.userUseCase) {
		return
	}

	slotID := c.Param("slotId")
	if err := h.slotInventory.DeleteSlot(c.Request.Context(), slotID); err != nil {
		h.logger.Warn("Slot deletion failed", map[string]any{
			"slotId": slotID,
			"error":  err.Error(),
		})
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
