// Package errors provides custom error types for the Nitron Flow API.
// All service- and engine-layer errors should use AppError to ensure
// consistent, secure error responses that never leak internal details
// to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Ledger errors.
var (
	ErrEntryNotFound   = &AppError{Code: "ENTRY_NOT_FOUND", Message: "Ledger entry not found", StatusCode: http.StatusNotFound}
	ErrInvalidAmount   = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must not be negative", StatusCode: http.StatusBadRequest}
	ErrUnknownLedger   = &AppError{Code: "UNKNOWN_LEDGER", Message: "Unknown ledger kind", StatusCode: http.StatusNotFound}
	ErrEntryNotExpense = &AppError{Code: "ENTRY_NOT_EXPENSE", Message: "Only expense entries carry a paid state", StatusCode: http.StatusBadRequest}
)

// Trading errors.
var (
	ErrInvalidRiskConfig = &AppError{Code: "INVALID_RISK_CONFIG", Message: "Risk configuration failed validation", StatusCode: http.StatusBadRequest}
	ErrTradingLocked     = &AppError{Code: "TRADING_LOCKED", Message: "Trading session is locked for today", StatusCode: http.StatusLocked}
)

// Task errors.
var (
	ErrTaskNotFound    = &AppError{Code: "TASK_NOT_FOUND", Message: "Task not found", StatusCode: http.StatusNotFound}
	ErrInvalidTaskMove = &AppError{Code: "INVALID_TASK_MOVE", Message: "Task cannot move to the requested column", StatusCode: http.StatusConflict}
)

// Lead errors.
var (
	ErrLeadNotFound = &AppError{Code: "LEAD_NOT_FOUND", Message: "Lead not found", StatusCode: http.StatusNotFound}
)

// Ticket errors.
var (
	ErrTicketNotFound = &AppError{Code: "TICKET_NOT_FOUND", Message: "Ticket not found", StatusCode: http.StatusNotFound}
)
