package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeUnknownParadigm  = "UNKNOWN_PARADIGM"
	CodeSchemaMismatch   = "SCHEMA_MISMATCH"
	CodeMissingRegressor = "MISSING_REGRESSOR"
	CodeCatalogError     = "CATALOG_ERROR"
	CodeImageIO          = "IMAGE_IO_ERROR"
	CodeDegenerateDesign = "DEGENERATE_DESIGN"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Common error constructors

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// UnknownParadigm signals an identifier with no registered definition.
func UnknownParadigm(paradigmID string) *AppError {
	return New(CodeUnknownParadigm, fmt.Sprintf("%s: unknown paradigm", paradigmID))
}

// SchemaMismatch signals that a paradigm definition produced a contrast-name
// set different from its declared vocabulary. Internal-consistency failure:
// aborts that paradigm's computation, never suppressed.
func SchemaMismatch(paradigmID string, missing, extra []string) *AppError {
	return New(CodeSchemaMismatch, fmt.Sprintf(
		"paradigm %s: produced contrast names differ from declaration (missing %v, extra %v)",
		paradigmID, missing, extra))
}

// MissingRegressor signals that an expected design-matrix column (and all of
// its documented fallbacks, if any) was absent.
func MissingRegressor(candidates ...string) *AppError {
	return New(CodeMissingRegressor, fmt.Sprintf("no design-matrix column among %v", candidates))
}

func CatalogError(message string) *AppError {
	return New(CodeCatalogError, message)
}

func ImageIO(message string, cause error) *AppError {
	return &AppError{Code: CodeImageIO, Message: message, Cause: cause}
}

func DatabaseError(message string) *AppError {
	return New(CodeDatabaseError, message)
}
