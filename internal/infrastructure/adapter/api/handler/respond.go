package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/api/middleware"
)

// writeError maps a domain error to its HTTP status and writes the
// standard error response
func writeError(c *gin.Context, err error) {
	c.JSON(httpStatus(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}

// httpStatus maps domain error kinds to HTTP status codes
func httpStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrUserInvalid):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrSlotUnavailable),
		errors.Is(err, domainerr.ErrBookingLimitExceeded),
		errors.Is(err, domainerr.ErrDuplicateSlot),
		errors.Is(err, domainerr.ErrDuplicateUser),
		errors.Is(err, domainerr.ErrSlotInUse),
		errors.Is(err, domainerr.ErrInvalidState),
		errors.Is(err, domainerr.ErrSlotLocked):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeBindingError reports a malformed request body
func writeBindingError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request body",
	})
}

// requireAdmin verifies the caller is an active admin or writes the
// appropriate error response
func requireAdmin(c *gin.Context, users usecase.UserUseCase) bool {
	userID, ok := actingUserID(c)
	if !ok {
		return false
	}

	user, err := users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if domainerr.IsNotFoundError(err) {
			err = domainerr.ErrForbidden
		}
		writeError(c, err)
		return false
	}
	if !user.IsAdmin() {
		writeError(c, domainerr.ErrForbidden)
		return false
	}
	return true
}

// actingUserID extracts the caller's identity or writes a 401
func actingUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.ActingUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
			Message: "Missing user identity",
		})
		return "", false
	}
	return userID, true
}
