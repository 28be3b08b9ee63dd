package testutil

import (
	"errors"
	"testing"

	apperrors "subtrack/internal/errors"
)

// appError unwraps err into an *AppError or fails the test.
func appError(t *testing.T, err error) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatal("expected an AppError, got nil")
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	return appErr
}

// AssertAppError checks that err is an *AppError with the expected code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if appErr := appError(t, err); appErr.Code != expectedCode {
		t.Errorf("error code = %q (%s), want %q", appErr.Code, appErr.Message, expectedCode)
	}
}

// AssertFieldError checks that err carries a message for field.
func AssertFieldError(t *testing.T, err error, field string) {
	t.Helper()

	appErr := appError(t, err)
	if _, ok := appErr.Fields[field]; !ok {
		t.Errorf("expected a %q field error, got fields %v", field, appErr.Fields)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
