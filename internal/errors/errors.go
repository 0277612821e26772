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

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
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
	CodeCatalogNotFound  = "CATALOG_NOT_FOUND"
	CodeCatalogMalformed = "CATALOG_MALFORMED"
	CodeColumnMissing    = "COLUMN_MISSING"
	CodeFitDegenerate    = "FIT_DEGENERATE"
	CodeRenderError      = "RENDER_ERROR"
	CodeExportError      = "EXPORT_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func CatalogNotFound(path string) *AppError {
	return New(CodeCatalogNotFound, fmt.Sprintf(
		"NSA FITS catalog not found at: %s\nDownload the NSA catalog and point --catalog (or NSA_CATALOG) at it", path))
}

func CatalogMalformed(message string, cause error) *AppError {
	return &AppError{
		Code:    CodeCatalogMalformed,
		Message: message,
		Cause:   cause,
	}
}

func ColumnMissing(name string) *AppError {
	return New(CodeColumnMissing, fmt.Sprintf("required catalog column %q not found", name))
}

func FitDegenerate(message string) *AppError {
	return New(CodeFitDegenerate, message)
}

func RenderError(target string, cause error) *AppError {
	return &AppError{
		Code:    CodeRenderError,
		Message: fmt.Sprintf("rendering %s failed", target),
		Cause:   cause,
	}
}

func ExportError(target string, cause error) *AppError {
	return &AppError{
		Code:    CodeExportError,
		Message: fmt.Sprintf("exporting %s failed", target),
		Cause:   cause,
	}
}
