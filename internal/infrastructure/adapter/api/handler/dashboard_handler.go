package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/api/dto"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	aggregator  usecase.DashboardAggregator
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewDashboardHandler creates a new dashboard handler instance
func NewDashboardHandler(
	aggregator usecase.DashboardAggregator,
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		aggregator:  aggregator,
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// User handles the GET /dashboard/user/{userId} endpoint. The acting user
// may view their own dashboard; admins may view anyone's.
func (h *DashboardHandler) User(c *gin.Context) {
	actingID, ok := actingUserID(c)
	if !ok {
		return
	}

	targetID := c.Param("userId")
	if targetID != actingID {
		actor, err := h.userUseCase.GetByID(c.Request.Context(), actingID)
		if err != nil {
			if domainerr.IsNotFoundError(err) {
				err = domainerr.ErrForbidden
			}
			writeError(c, err)
			return
		}
		if !actor.IsAdmin() {
			writeError(c, domainerr.ErrForbidden)
			return
		}
	}

	view, err := h.aggregator.UserDashboard(c.Request.Context(), targetID)
	if err != nil {
		h.logger.Error("Error building user dashboard", map[string]any{
			"userId": targetID,
			"error":  err.Error(),
		})
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserDashboardResponse(view))
}

// Admin handles the GET /dashboard/admin endpoint. Admin only.
func (h *DashboardHandler) Admin(c *gin.Context) {
	if !requireAdmin(c, h.userUseCase) {
		return
	}

	view, err := h.aggregator.AdminDashboard(c.Request.Context())
	if err != nil {
		h.logger.Error("Error building admin dashboard", map[string]any{
			"error": err.Error(),
		})
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAdminDashboardResponse(view))
}
