package errors

import (
	"net/http"

	"scout/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Stored-record errors
	ErrPropertyNotFound = NewBaseError(
		http.StatusNotFound,
		"PROPERTY_NOT_FOUND",
		"Property not found",
		"",
	)

	ErrPOINotFound = NewBaseError(
		http.StatusNotFound,
		"POI_NOT_FOUND",
		"Point of interest not found",
		"",
	)

	ErrInvalidPropertyType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PROPERTY_TYPE",
		"Property type must be one of: sale, rent, new_construction",
		"",
	)

	ErrInvalidPOIType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_POI_TYPE",
		"POI type must be one of: groceries, malls, transport, hospitals",
		"",
	)

	ErrDuplicateRecord = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_RECORD",
		"A record with the same unique identity already exists",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrCoordinateOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"COORDINATE_OUT_OF_RANGE",
		"Latitude must be within [-90,90] and longitude within [-180,180]",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"Unknown place category",
		"",
	)

	ErrInvalidZoomLevel = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ZOOM_LEVEL",
		"Unknown named zoom level",
		"",
	)

	ErrInvalidIsochroneParams = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ISOCHRONE_PARAMS",
		"Isochrone params require a known profile, a known contour unit and a positive contour value",
		"",
	)

	// Provider errors
	ErrIsochroneFetchFailed = NewBaseError(
		http.StatusBadGateway,
		"ISOCHRONE_FETCH_FAILED",
		"The routing provider could not compute the isochrone",
		"",
	)

	// Sheet errors
	ErrSheetParseFailed = NewBaseError(
		http.StatusBadRequest,
		"SHEET_PARSE_FAILED",
		"The uploaded sheet could not be parsed",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error as a generic
// internal error while preserving its message in the details.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	details := ""
	if err != nil {
		details = err.Error()
	}

	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		details,
	)
}
