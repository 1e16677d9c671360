// errors.go: structured error handling for xanthus map operations
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for xanthus operations.
const (
	// Configuration errors
	ErrCodeInvalidPolicy   errors.ErrorCode = "XANTHUS_INVALID_POLICY"
	ErrCodeInvalidCapacity errors.ErrorCode = "XANTHUS_INVALID_CAPACITY"

	// Operation errors
	ErrCodeAllocationFailed errors.ErrorCode = "XANTHUS_ALLOCATION_FAILED"
	ErrCodeMapClosed        errors.ErrorCode = "XANTHUS_MAP_CLOSED"

	// Internal errors
	ErrCodeInternalError errors.ErrorCode = "XANTHUS_INTERNAL_ERROR"
)

const (
	msgInvalidPolicy    = "policy must supply a non-nil Hash and Equal function"
	msgInvalidCapacity  = "invalid initial capacity: must be non-negative"
	msgAllocationFailed = "failed to allocate table for resize"
	msgMapClosed        = "map is closed"
	msgInternalError    = "internal map error"
)

// NewErrInvalidPolicy creates an error for a Policy missing Hash or Equal.
func NewErrInvalidPolicy(field string) error {
	return errors.NewWithField(ErrCodeInvalidPolicy, msgInvalidPolicy, "field", field)
}

// NewErrInvalidCapacity creates an error for a negative initial capacity.
func NewErrInvalidCapacity(capacity int) error {
	return errors.NewWithContext(ErrCodeInvalidCapacity, msgInvalidCapacity, map[string]interface{}{
		"provided_capacity": capacity,
	})
}

// NewErrAllocationFailed creates a retryable error for a resize that
// could not allocate its new table. The map is left in its pre-call
// state; the caller may retry the Put that triggered the resize.
func NewErrAllocationFailed(requestedCapacity uint64, cause error) error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeAllocationFailed, msgAllocationFailed).
			WithContext("requested_capacity", requestedCapacity).
			AsRetryable()
	}
	return errors.NewWithContext(ErrCodeAllocationFailed, msgAllocationFailed, map[string]interface{}{
		"requested_capacity": requestedCapacity,
	}).AsRetryable()
}

// NewErrMapClosed creates an error for an operation attempted after Close.
func NewErrMapClosed(operation string) error {
	return errors.NewWithField(ErrCodeMapClosed, msgMapClosed, "operation", operation)
}

// NewErrInternal creates a generic internal error, wrapping cause if set.
func NewErrInternal(operation string, cause error) error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeInternalError, msgInternalError).
			WithContext("operation", operation).
			WithSeverity("warning")
	}
	return errors.NewWithField(ErrCodeInternalError, msgInternalError, "operation", operation).
		WithSeverity("warning")
}

// IsAllocationFailed reports whether err is an allocation-failure error.
func IsAllocationFailed(err error) bool {
	return errors.HasCode(err, ErrCodeAllocationFailed)
}

// IsMapClosed reports whether err indicates the map was already closed.
func IsMapClosed(err error) bool {
	return errors.HasCode(err, ErrCodeMapClosed)
}

// IsConfigError reports whether err is a configuration/policy error.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		code := coder.ErrorCode()
		return code == ErrCodeInvalidPolicy || code == ErrCodeInvalidCapacity
	}
	return false
}

// IsRetryable reports whether err can be retried by the caller.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from err, or "" if it has none.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}
