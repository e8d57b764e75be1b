// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and are mapped to HTTP responses
// by the problem translator in the HTTP adapter.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrValidation indicates the caller supplied bad input: an invalid
	// field, an unknown status name, or mismatched identities.
	ErrValidation = errors.New("validation failed")

	// ErrUpstream indicates the backend order service failed or could
	// not be reached.
	ErrUpstream = errors.New("upstream failure")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates the caller is not authorized.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTimeout indicates the backend did not respond in time.
	ErrTimeout = errors.New("timeout")

	// ErrInternal indicates an unanticipated failure.
	ErrInternal = errors.New("internal error")
)

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UpstreamError provides context for backend failures. It covers both
// a reachable backend that answered with a technical fault and a
// backend that could not be reached at all.
type UpstreamError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q failed: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q failed", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// NewUpstreamError creates an upstream error with context.
func NewUpstreamError(service, reason string) error {
	return &UpstreamError{Service: service, Reason: reason}
}

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// UnauthorizedError provides context for unauthorized errors.
type UnauthorizedError struct {
	Reason string
}

// Error implements the error interface.
func (e *UnauthorizedError) Error() string {
	if e.Reason != "" {
		return "unauthorized: " + e.Reason
	}

	return "unauthorized"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// NewUnauthorizedError creates an unauthorized error with context.
func NewUnauthorizedError(reason string) error {
	return &UnauthorizedError{Reason: reason}
}

// TimeoutError provides context for backend timeouts.
type TimeoutError struct {
	Operation string
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("operation %q timed out", e.Operation)
	}

	return "operation timed out"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *TimeoutError) Unwrap() error {
	return ErrTimeout
}

// NewTimeoutError creates a timeout error with context.
func NewTimeoutError(operation string) error {
	return &TimeoutError{Operation: operation}
}

// InternalError wraps an unanticipated failure. The original cause is
// retained for diagnostic exposure in non-production deployments.
type InternalError struct {
	Cause error
}

// Error implements the error interface.
func (e *InternalError) Error() string {
	if e.Cause != nil {
		return "internal error: " + e.Cause.Error()
	}

	return "internal error"
}

// Unwrap returns both the sentinel and the original cause so that
// errors.Is() matches either.
func (e *InternalError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrInternal, e.Cause}
	}

	return []error{ErrInternal}
}

// NewInternalError wraps a failure as an internal error.
func NewInternalError(cause error) error {
	return &InternalError{Cause: cause}
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUpstream checks if an error is an upstream error.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if an error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsInternal checks if an error is an internal error.
func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}
