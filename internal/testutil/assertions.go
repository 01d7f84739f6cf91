package testutil

import (
	"errors"
	"testing"

	apperrors "saheminvest/internal/errors"
	"saheminvest/internal/money"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertErrorKind checks that err is an *AppError of the expected kind.
func AssertErrorKind(t *testing.T, err error, expected apperrors.Kind) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError of kind %q, got nil", expected)
	}
	if kind := apperrors.KindOf(err); kind != expected {
		t.Errorf("expected error kind %q, got %q (%v)", expected, kind, err)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertMoney fails the test unless got equals the decimal string want.
func AssertMoney(t *testing.T, label string, got money.Money, want string) {
	t.Helper()

	if !got.Equal(money.MustParse(want)) {
		t.Errorf("%s: expected %s, got %s", label, want, got)
	}
}
