package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeUserInvalid          = 4001
	CodeSlotUnavailable      = 4002
	CodeBookingLimitExceeded = 4003
	CodeInvalidState         = 4004
	CodeDuplicateSlot        = 4005
	CodeSlotInUse            = 4006
	CodeInvalidRequest       = 4007
	CodeInvalidCredentials   = 4011
	CodeForbidden            = 4030
	CodeUserNotFound         = 4040
	CodeSlotNotFound         = 4041
	CodeBookingNotFound      = 4042
	CodeDuplicateUser        = 4091
	CodeSlotLocked           = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeStorage        = 5001
)

// Base error types
var (
	// ErrUserInvalid is returned when the acting user doesn't exist or is inactive
	ErrUserInvalid = errors.New("user not found or inactive")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrSlotNotFound is returned when the requested slot doesn't exist
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotUnavailable is returned when the slot is already booked
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrBookingLimitExceeded is returned when a user already holds the maximum number of confirmed bookings
	ErrBookingLimitExceeded = errors.New("maximum active bookings reached for user")

	// ErrBookingNotFound is returned when the requested booking doesn't exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrForbidden is returned when the acting user may not operate on the booking
	ErrForbidden = errors.New("operation not permitted for this user")

	// ErrInvalidState is returned when a booking is not in a state that allows the operation
	ErrInvalidState = errors.New("booking is not in a cancellable state")

	// ErrDuplicateSlot is returned when a slot with the same location and number already exists
	ErrDuplicateSlot = errors.New("slot number already exists at this location")

	// ErrSlotInUse is returned when deleting a slot that has a confirmed booking
	ErrSlotInUse = errors.New("slot has an active booking")

	// ErrDuplicateUser is returned when registering a username that is already taken
	ErrDuplicateUser = errors.New("username already exists")

	// ErrInvalidCredentials is returned when login fails
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSlotLocked is returned when a slot is held by a concurrent booking attempt
	ErrSlotLocked = errors.New("slot is locked by another booking attempt")

	// ErrStorage is returned for storage collaborator faults (connectivity, constraints)
	ErrStorage = errors.New("storage error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUserInvalid):
		return CodeUserInvalid
	case errors.Is(err, ErrSlotUnavailable):
		return CodeSlotUnavailable
	case errors.Is(err, ErrBookingLimitExceeded):
		return CodeBookingLimitExceeded
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrDuplicateSlot):
		return CodeDuplicateSlot
	case errors.Is(err, ErrSlotInUse):
		return CodeSlotInUse
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrSlotNotFound):
		return CodeSlotNotFound
	case errors.Is(err, ErrBookingNotFound):
		return CodeBookingNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrSlotLocked):
		return CodeSlotLocked
	case errors.Is(err, ErrStorage):
		return CodeStorage
	default:
		return CodeInternalServer
	}
}

// BookingError represents an error related to booking allocation
type BookingError struct {
	BookingID string
	UserID    string
	SlotID    string
	Reason    string
	Err       error
}

// Error implements the error interface for BookingError
func (e *BookingError) Error() string {
	return fmt.Sprintf("booking operation failed (booking: %s, user: %s, slot: %s): %s - %v",
		e.BookingID, e.UserID, e.SlotID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *BookingError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BookingError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "booking_error",
		"booking_id": e.BookingID,
		"user_id":    e.UserID,
		"slot_id":    e.SlotID,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewBookingError creates a detailed booking error
func NewBookingError(bookingID, userID, slotID, reason string, err error) error {
	return &BookingError{
		BookingID: bookingID,
		UserID:    userID,
		SlotID:    slotID,
		Reason:    reason,
		Err:       err,
	}
}

// SlotError represents an error related to slot inventory operations
type SlotError struct {
	SlotID     string
	Location   string
	SlotNumber int
	Err        error
}

// Error implements the error interface for SlotError
func (e *SlotError) Error() string {
	return fmt.Sprintf("slot operation failed (slot: %s, location: %s, number: %d): %v",
		e.SlotID, e.Location, e.SlotNumber, e.Err)
}

// Unwrap returns the underlying error
func (e *SlotError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SlotError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "slot_error",
		"slot_id":     e.SlotID,
		"location":    e.Location,
		"slot_number": e.SlotNumber,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewSlotError creates a detailed slot error
func NewSlotError(slotID, location string, slotNumber int, err error) error {
	return &SlotError{
		SlotID:     slotID,
		Location:   location,
		SlotNumber: slotNumber,
		Err:        err,
	}
}

// IsSlotUnavailableError checks if the error means the slot was already booked
func IsSlotUnavailableError(err error) bool {
	return errors.Is(err, ErrSlotUnavailable)
}

// IsBookingLimitError checks if the error is a per-user booking limit violation
func IsBookingLimitError(err error) bool {
	return errors.Is(err, ErrBookingLimitExceeded)
}

// IsForbiddenError checks if the error is an authorization failure
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrSlotNotFound) ||
		errors.Is(err, ErrBookingNotFound)
}

// IsInvalidStateError checks if the error is a booking state violation
func IsInvalidStateError(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsStorageError checks if the error originated in the storage collaborator
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}
