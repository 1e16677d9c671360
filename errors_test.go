// errors_test.go: tests for structured error handling
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import (
	goerrors "errors"
	"testing"

	"github.com/agilira/go-errors"
)

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name         string
		errFunc      func() error
		expectedCode errors.ErrorCode
		shouldRetry  bool
	}{
		{
			name:         "InvalidPolicy",
			errFunc:      func() error { return NewErrInvalidPolicy("Hash") },
			expectedCode: ErrCodeInvalidPolicy,
			shouldRetry:  false,
		},
		{
			name:         "InvalidCapacity",
			errFunc:      func() error { return NewErrInvalidCapacity(-1) },
			expectedCode: ErrCodeInvalidCapacity,
			shouldRetry:  false,
		},
		{
			name:         "AllocationFailed",
			errFunc:      func() error { return NewErrAllocationFailed(1024, nil) },
			expectedCode: ErrCodeAllocationFailed,
			shouldRetry:  true,
		},
		{
			name:         "MapClosed",
			errFunc:      func() error { return NewErrMapClosed("put") },
			expectedCode: ErrCodeMapClosed,
			shouldRetry:  false,
		},
		{
			name:         "Internal",
			errFunc:      func() error { return NewErrInternal("resize", nil) },
			expectedCode: ErrCodeInternalError,
			shouldRetry:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.errFunc()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.HasCode(err, tt.expectedCode) {
				t.Errorf("expected code %s, got %s", tt.expectedCode, GetErrorCode(err))
			}
			if IsRetryable(err) != tt.shouldRetry {
				t.Errorf("expected retryable=%v, got %v", tt.shouldRetry, IsRetryable(err))
			}
			if err.Error() == "" {
				t.Error("error message should not be empty")
			}
		})
	}
}

func TestErrorWrapping_AllocationFailed(t *testing.T) {
	cause := goerrors.New("out of memory")
	err := NewErrAllocationFailed(4096, cause)

	if goerrors.Unwrap(err) == nil {
		t.Fatal("expected a wrapped cause")
	}
	if !IsAllocationFailed(err) {
		t.Error("expected IsAllocationFailed to recognize the wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("expected a wrapped allocation failure to remain retryable")
	}
}

func TestIsConfigError(t *testing.T) {
	if !IsConfigError(NewErrInvalidPolicy("Equal")) {
		t.Error("expected NewErrInvalidPolicy to be a config error")
	}
	if !IsConfigError(NewErrInvalidCapacity(-1)) {
		t.Error("expected NewErrInvalidCapacity to be a config error")
	}
	if IsConfigError(NewErrMapClosed("get")) {
		t.Error("expected NewErrMapClosed not to be a config error")
	}
	if IsConfigError(nil) {
		t.Error("expected nil not to be a config error")
	}
}

func TestGetErrorCode_UnknownError(t *testing.T) {
	if code := GetErrorCode(goerrors.New("plain")); code != "" {
		t.Errorf("expected empty code for a plain error, got %q", code)
	}
	if code := GetErrorCode(nil); code != "" {
		t.Errorf("expected empty code for nil, got %q", code)
	}
}
