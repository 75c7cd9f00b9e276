package errors

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestStructuredErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
		check   func(error) bool
	}{
		{
			name:    "invalid mode",
			err:     NewInvalidModeError("xor"),
			wantMsg: `randomforest: mode "xor" for joining predicates is invalid`,
			check: func(err error) bool {
				var target *InvalidModeError
				return As(err, &target) && target.Mode == "xor"
			},
		},
		{
			name:    "empty candidate set",
			err:     NewEmptyCandidateSetError(2),
			wantMsg: "randomforest: no split candidates available at depth 2",
			check: func(err error) bool {
				var target *EmptyCandidateSetError
				return As(err, &target) && target.Depth == 2
			},
		},
		{
			name:    "insufficient data",
			err:     NewInsufficientDataError("Fit", 10, 3),
			wantMsg: "randomforest: Fit: insufficient data, required 10 items, got 3",
			check: func(err error) bool {
				var target *InsufficientDataError
				return As(err, &target) && target.Required == 10 && target.Got == 3
			},
		},
		{
			name:    "unknown entity",
			err:     NewUnknownEntityError(42),
			wantMsg: "randomforest: unknown entity 42",
			check: func(err error) bool {
				var target *UnknownEntityError
				return As(err, &target) && target.ID == 42
			},
		},
		{
			name:    "not fitted",
			err:     NewNotFittedError("Forest", "Predict"),
			wantMsg: "randomforest: Forest: this model is not fitted yet. Call Fit() before using Predict()",
			check: func(err error) bool {
				var target *NotFittedError
				return As(err, &target)
			},
		},
		{
			name:    "validation",
			err:     NewValidationError("k_div", "must be positive", -1.5),
			wantMsg: "randomforest: validation failed for parameter 'k_div': must be positive (got: -1.5)",
			check: func(err error) bool {
				var target *ValidationError
				return As(err, &target) && target.ParamName == "k_div"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", tt.err.Error(), tt.wantMsg)
			}
			if !tt.check(tt.err) {
				t.Errorf("As() did not recover the structured error from %T", tt.err)
			}
			formatted := fmt.Sprintf("%+v", tt.err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}
		})
	}
}

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Error().Object("detail", &UnknownEntityError{ID: 7}).Msg("lookup failed")

	out := buf.String()
	for _, want := range []string{`"entity_id":7`, `"type":"UnknownEntityError"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrap(ErrPredicatesExhausted, "composing candidates")

	if !Is(wrapped, ErrPredicatesExhausted) {
		t.Error("Expected Is(wrapped, ErrPredicatesExhausted) to be true")
	}
	if !strings.Contains(wrapped.Error(), "composing candidates") {
		t.Error("Expected wrapped error to contain wrapping message")
	}

	wrapped = Wrapf(ErrEmptyData, "in %s: expected %d, got %d", "Fit", 10, 0)
	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}
}

func TestCheckFinite(t *testing.T) {
	tests := []struct {
		value   float64
		wantErr bool
	}{
		{0.2, false},
		{0, false},
		{-3, false},
		{math.NaN(), true},
		{math.Inf(1), true},
		{math.Inf(-1), true},
	}

	for _, tt := range tests {
		err := CheckFinite("entropy_th", tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckFinite(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}

	if err := CheckNonNegative("validate", -1); err == nil {
		t.Error("expected error for negative value")
	}
	if err := CheckNonNegative("validate", 0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
