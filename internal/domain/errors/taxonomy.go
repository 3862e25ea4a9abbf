package errors

import (
	"net/http"

	"bookshelf/internal/errors"
)

// PersistenceConflictError signals a storage integrity or concurrency violation
// (unique constraint collision, serialization conflict) encountered while saving.
// The storage error is always kept as the cause.
type PersistenceConflictError struct {
	err     error
	details string
}

// NewPersistenceConflictError wraps a storage-layer conflict.
func NewPersistenceConflictError(err error, details string) *PersistenceConflictError {
	return &PersistenceConflictError{err: err, details: details}
}

func (e *PersistenceConflictError) Error() string {
	if e.err == nil {
		return "persistence conflict: " + e.details
	}

	return "persistence conflict: " + e.details + ": " + e.err.Error()
}

func (e *PersistenceConflictError) Unwrap() error     { return e.err }
func (e *PersistenceConflictError) HTTPCode() int     { return http.StatusConflict }
func (e *PersistenceConflictError) ErrorCode() string { return "PERSISTENCE_CONFLICT" }
func (e *PersistenceConflictError) Message() string   { return "the resource was modified concurrently" }
func (e *PersistenceConflictError) Details() string   { return e.details }

// IsPersistenceConflict reports whether err carries a PersistenceConflictError.
func IsPersistenceConflict(err error) bool {
	var conflict *PersistenceConflictError

	return errors.As(err, &conflict)
}

// ProcessingError signals a failure while transforming or fetching book data,
// e.g. malformed external metadata or a failed call to the external source.
type ProcessingError struct {
	err     error
	details string
}

// NewProcessingError wraps a book processing failure.
func NewProcessingError(err error, details string) *ProcessingError {
	return &ProcessingError{err: err, details: details}
}

func (e *ProcessingError) Error() string {
	if e.err == nil {
		return "book processing failed: " + e.details
	}

	return "book processing failed: " + e.details + ": " + e.err.Error()
}

func (e *ProcessingError) Unwrap() error     { return e.err }
func (e *ProcessingError) HTTPCode() int     { return http.StatusBadGateway }
func (e *ProcessingError) ErrorCode() string { return "BOOK_PROCESSING_FAILED" }
func (e *ProcessingError) Message() string   { return "failed to process book data" }
func (e *ProcessingError) Details() string   { return e.details }

// Conflicting fields reported by UserAlreadyExistsError.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
)

// Fixed reasons, one per conflicting field.
const (
	ReasonUsernameTaken = "username is already taken"
	ReasonEmailTaken    = "email is already registered"
)

// UserAlreadyExistsError is the duplicate-resource condition raised by registration.
// Field tells the caller which unique attribute collided.
type UserAlreadyExistsError struct {
	Field  string
	Reason string
	cause  error
}

// NewUsernameTakenError reports a username collision.
func NewUsernameTakenError() *UserAlreadyExistsError {
	return &UserAlreadyExistsError{Field: FieldUsername, Reason: ReasonUsernameTaken}
}

// NewEmailTakenError reports an email collision.
func NewEmailTakenError() *UserAlreadyExistsError {
	return &UserAlreadyExistsError{Field: FieldEmail, Reason: ReasonEmailTaken}
}

// WithCause attaches the storage error that revealed the collision.
func (e *UserAlreadyExistsError) WithCause(err error) *UserAlreadyExistsError {
	return &UserAlreadyExistsError{Field: e.Field, Reason: e.Reason, cause: err}
}

func (e *UserAlreadyExistsError) Error() string { return e.Reason }

func (e *UserAlreadyExistsError) Unwrap() error { return e.cause }

// Is lets errors.Is(err, ErrUserAlreadyExists) match any field.
func (e *UserAlreadyExistsError) Is(target error) bool {
	return target == ErrUserAlreadyExists
}

func (e *UserAlreadyExistsError) HTTPCode() int     { return http.StatusConflict }
func (e *UserAlreadyExistsError) ErrorCode() string { return "USER_ALREADY_EXISTS" }
func (e *UserAlreadyExistsError) Message() string   { return e.Reason }
func (e *UserAlreadyExistsError) Details() string   { return e.Field }

// WishlistOperationError wraps any failure during a wishlist operation,
// including persistence and book resolution failures underneath.
type WishlistOperationError struct {
	Op  string
	err error
}

// NewWishlistOperationError wraps err for the named wishlist operation.
func NewWishlistOperationError(op string, err error) *WishlistOperationError {
	return &WishlistOperationError{Op: op, err: err}
}

func (e *WishlistOperationError) Error() string {
	return "wishlist " + e.Op + " failed: " + e.err.Error()
}

func (e *WishlistOperationError) Unwrap() error { return e.err }

// HTTPCode defers to the wrapped AppError when there is one.
func (e *WishlistOperationError) HTTPCode() int {
	if inner, ok := AsAppError(e.err); ok {
		return inner.HTTPCode()
	}

	return http.StatusInternalServerError
}

func (e *WishlistOperationError) ErrorCode() string {
	if inner, ok := AsAppError(e.err); ok {
		return inner.ErrorCode()
	}

	return "WISHLIST_OPERATION_FAILED"
}

func (e *WishlistOperationError) Message() string {
	if inner, ok := AsAppError(e.err); ok {
		return inner.Message()
	}

	return "wishlist operation failed"
}

func (e *WishlistOperationError) Details() string { return e.Op }
