package errors

import (
	"errors"
	"fmt"
)

// AppError represents an application-level error with a process exit code
type AppError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Detail   string `json:"detail,omitempty"`
	Err      error  `json:"-"`
	ExitCode int    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Common error codes
const (
	ErrCodePathResolution     = "path_resolution"
	ErrCodePersistence        = "persistence"
	ErrCodeOverwriteRefused   = "overwrite_refused"
	ErrCodeInvalidKeyFormat   = "invalid_key_format"
	ErrCodeNoWalletConfigured = "no_wallet_configured"
	ErrCodeInvalidArgument    = "invalid_argument"
)

// Exit codes
const (
	ExitGeneric            = 1
	ExitInvalidArgument    = 2
	ExitOverwriteRefused   = 3
	ExitNoWalletConfigured = 4
	ExitInvalidKeyFormat   = 5
	ExitPersistence        = 6
)

// NoWalletMessage tells the user how to configure a wallet
const NoWalletMessage = "No wallet configured. Run `polymarket wallet create` or `polymarket wallet import <key>`"

// Predefined errors, used as errors.Is targets
var (
	ErrPathResolution = &AppError{
		Code:     ErrCodePathResolution,
		Message:  "Could not determine home directory",
		ExitCode: ExitPersistence,
	}

	ErrPersistence = &AppError{
		Code:     ErrCodePersistence,
		Message:  "Failed to persist config",
		ExitCode: ExitPersistence,
	}

	ErrOverwriteRefused = &AppError{
		Code:     ErrCodeOverwriteRefused,
		Message:  "Wallet already exists",
		ExitCode: ExitOverwriteRefused,
	}

	ErrInvalidKeyFormat = &AppError{
		Code:     ErrCodeInvalidKeyFormat,
		Message:  "Invalid private key",
		ExitCode: ExitInvalidKeyFormat,
	}

	ErrNoWalletConfigured = &AppError{
		Code:     ErrCodeNoWalletConfigured,
		Message:  NoWalletMessage,
		ExitCode: ExitNoWalletConfigured,
	}

	ErrInvalidArgument = &AppError{
		Code:     ErrCodeInvalidArgument,
		Message:  "Invalid argument",
		ExitCode: ExitInvalidArgument,
	}
)

// PathResolution creates an error for a home directory lookup failure
func PathResolution(err error) *AppError {
	e := &AppError{
		Code:     ErrCodePathResolution,
		Message:  "Could not determine home directory",
		Err:      err,
		ExitCode: ExitPersistence,
	}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

// Persistence creates an error for a failed filesystem operation on path
func Persistence(op, path string, err error) *AppError {
	detail := fmt.Sprintf("path: %s", path)
	if err != nil {
		detail = fmt.Sprintf("path: %s: %v", path, err)
	}
	return &AppError{
		Code:     ErrCodePersistence,
		Message:  "Failed to " + op,
		Detail:   detail,
		Err:      err,
		ExitCode: ExitPersistence,
	}
}

// OverwriteRefused creates an error naming the existing config path
func OverwriteRefused(path string) *AppError {
	return &AppError{
		Code:     ErrCodeOverwriteRefused,
		Message:  fmt.Sprintf("A wallet already exists at %s. Use --force to overwrite.", path),
		ExitCode: ExitOverwriteRefused,
	}
}

// InvalidKeyFormat creates an error carrying the parse failure
func InvalidKeyFormat(err error) *AppError {
	e := &AppError{
		Code:     ErrCodeInvalidKeyFormat,
		Message:  "Invalid private key",
		Err:      err,
		ExitCode: ExitInvalidKeyFormat,
	}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

// NoWalletConfigured creates an error for a failed key resolution
func NoWalletConfigured() *AppError {
	return &AppError{
		Code:     ErrCodeNoWalletConfigured,
		Message:  NoWalletMessage,
		ExitCode: ExitNoWalletConfigured,
	}
}

// InvalidArgument creates an error for bad command input
func InvalidArgument(detail string) *AppError {
	return &AppError{
		Code:     ErrCodeInvalidArgument,
		Message:  "Invalid argument",
		Detail:   detail,
		ExitCode: ExitInvalidArgument,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// ExitCodeFor maps an error to a process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if appErr, ok := IsAppError(err); ok && appErr.ExitCode != 0 {
		return appErr.ExitCode
	}
	return ExitGeneric
}
