package model

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindInvalidInput ErrorKind = "invalid_input"
	KindConflict     ErrorKind = "conflict"
	KindNotFound     ErrorKind = "not_found"
	KindUnauthorized ErrorKind = "unauthorized"
	KindTransient    ErrorKind = "transient"
)

// AppError is the domain error: a stable machine-readable kind plus a
// human-readable message. Store failures wrap as KindTransient and are
// surfaced to the caller unmodified via Unwrap.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewNotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource + " not found"}
}

func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewInvalidInput(message string) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: message}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func NewTransient(err error) *AppError {
	return &AppError{Kind: KindTransient, Message: "store error", Err: err}
}

// KindOf extracts the kind from any error; non-AppErrors count as transient.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindTransient
}
