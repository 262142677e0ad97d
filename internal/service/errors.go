package service

import (
	"errors" // Sentinel errors

	"gorm.io/gorm" // GORM ORM library
)

// Error kinds returned by the service. Match them with errors.Is.
var (
	ErrValidation = errors.New("validation failed")     // Missing or empty required field
	ErrConflict   = errors.New("conflict")              // Duplicate unique field
	ErrAuth       = errors.New("authentication failed") // Credential mismatch
	ErrNotFound   = errors.New("not found")             // Missing row
	ErrStore      = errors.New("store failure")         // Connectivity or query failure
)

// Error is a typed service failure. Message is safe to show to clients
// except for ErrStore, whose detail lives in Err.
type Error struct {
	Kind    error  // One of the Err* kinds
	Message string // Client-facing message
	Err     error  // Underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// storeError classifies a gorm failure; op names the failed step
func storeError(op string, err error) error {
	var se *Error
	switch {
	case errors.As(err, &se):
		return se // Already classified inside a transaction
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Kind: ErrNotFound, Message: "User not found", Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Kind: ErrConflict, Message: "Email already exists", Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &Error{Kind: ErrNotFound, Message: "User not found", Err: err}
	}
	return &Error{Kind: ErrStore, Message: op, Err: err}
}
