package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes. Callers match on these via Is rather than on message text.
const (
	CodeUnauthorized         = "AUTH_001"
	CodeInvalidConfiguration = "CFG_001"
	CodeReentrancy           = "LED_001"
	CodeNotFound             = "LED_002"
	CodeMerchantExists       = "LED_003"
	CodeAuthorizationFailed  = "CHK_001"
	CodeValidation           = "REQ_001"
	CodeInvalidToken         = "REQ_002"
	CodeRateLimitExceeded    = "RATE_001"
	CodeInternal             = "SYS_001"
	CodeOverflow             = "SYS_002"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Is reports whether any error in err's chain is an *AppError with the given code.
func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// ---- Access control (AUTH) ----

func ErrUnauthorized() *AppError {
	return New(CodeUnauthorized, "Caller is not the merchant administrator", http.StatusForbidden)
}

// ---- Configuration (CFG) ----

func ErrInvalidConfiguration(message string) *AppError {
	return New(CodeInvalidConfiguration, message, http.StatusBadRequest)
}

func ErrFeeRateTooHigh(rate, max uint32) *AppError {
	return ErrInvalidConfiguration(fmt.Sprintf("Fee rate %d bps exceeds cap of %d bps", rate, max))
}

// ---- Ledger (LED) ----

func ErrReentrancy() *AppError {
	return New(CodeReentrancy, "Reentrant call rejected: ledger operation already in flight", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrMerchantExists(id string) *AppError {
	return New(CodeMerchantExists, fmt.Sprintf("Merchant %s already registered", id), http.StatusConflict)
}

// ---- Checkout (CHK) ----

func ErrAuthorizationFailed() *AppError {
	return New(CodeAuthorizationFailed, "Handshake verification failed", http.StatusUnauthorized)
}

func ErrHandshakeReplayed() *AppError {
	return New(CodeAuthorizationFailed, "Handshake proof already used", http.StatusUnauthorized)
}

// ---- Request (REQ) ----

func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(CodeInternal, "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

func ErrCounterOverflow(counter string) *AppError {
	return New(CodeOverflow, fmt.Sprintf("Ledger counter %s would overflow", counter), http.StatusInternalServerError)
}
