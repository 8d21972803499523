package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the recruiting-domain business
errors. Services should return these instead of raw strings so handlers
map them to the right HTTP status uniformly.
*/

// =========================================================================
// Factory functions (wrap repository errors)
// =========================================================================

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrDatabase wraps an unexpected database failure.
func ErrDatabase(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "database", "Database operation failed", http.StatusInternalServerError)
}

// =========================================================================
// Factory functions (fresh errors)
// =========================================================================

// ErrInvalidOperation creates a 400 for operations the current state
// does not allow.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus creates a 400 for unknown or illegal status values.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrExternalService wraps an LLM / email / proxy upstream failure (500).
func ErrExternalService(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusInternalServerError)
}

// =========================================================================
// Predefined variables (frequent, static errors)
// =========================================================================

// ErrInvalidCredentials is returned on a failed login attempt.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidInteractionType is returned when interaction_type is not one
// of VIEW / SWIPE_LEFT / SWIPE_RIGHT.
var ErrInvalidInteractionType = New(
	CodeValidationFailed,
	"interaction",
	"interaction_type must be one of VIEW, SWIPE_LEFT, SWIPE_RIGHT",
	http.StatusBadRequest,
)

// ErrTerminalStage is returned when a pipeline transition is requested
// from hired or rejected.
var ErrTerminalStage = New(
	CodeInvalidStatus,
	"pipeline",
	"Candidate is in a terminal stage and cannot transition further",
	http.StatusBadRequest,
)

// ErrOfferNotEligible is returned when offer details are submitted for a
// candidate who is not at offer_stage.
var ErrOfferNotEligible = New(
	CodeInvalidStatus,
	"pipeline",
	"Candidate must be at offer_stage to receive an offer",
	http.StatusBadRequest,
)
