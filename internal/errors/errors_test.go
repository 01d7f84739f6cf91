package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapPreservesSentinelIdentity(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := Wrap(ErrStorage, cause)

	if !errors.Is(err, ErrStorage) {
		t.Error("wrapped error should match its sentinel")
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error should expose the internal cause")
	}
	if ErrStorage.Internal != nil {
		t.Error("Wrap must not mutate the sentinel")
	}
}

func TestWithField(t *testing.T) {
	err := WithField(ErrInvalidInput, "total_amount", "must be positive")
	if err.Fields["total_amount"] != "must be positive" {
		t.Errorf("unexpected fields: %v", err.Fields)
	}
	if ErrInvalidInput.Fields != nil {
		t.Error("WithField must not mutate the sentinel")
	}

	again := WithField(err, "reserved_amount", "too large")
	if len(again.Fields) != 2 || len(err.Fields) != 1 {
		t.Errorf("fields should be copied, got %v and %v", again.Fields, err.Fields)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{ErrAmountMismatch, KindValidation},
		{WithMessage(ErrRequestNotPending, "custom"), KindStateConflict},
		{fmt.Errorf("apply: %w", ErrDistributionImbalance), KindConsistency},
		{Wrap(ErrStorage, errors.New("boom")), KindStorage},
		{errors.New("plain"), KindInternal},
	}
	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.want {
			t.Errorf("KindOf(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}
