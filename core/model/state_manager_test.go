package model

import (
	"testing"

	"github.com/Motwg/RandomForest/pkg/errors"
)

func TestStateManager(t *testing.T) {
	s := NewStateManager()

	if s.IsFitted() {
		t.Fatal("new state manager should not be fitted")
	}
	err := s.RequireFitted("Forest", "Predict")
	var notFitted *errors.NotFittedError
	if !errors.As(err, &notFitted) {
		t.Fatalf("expected NotFittedError, got %v", err)
	}

	s.SetFitted(12)
	s.SetFitted(7)
	if !s.IsFitted() {
		t.Error("expected fitted state")
	}
	if s.NSamples() != 7 {
		t.Errorf("NSamples() = %d, want 7", s.NSamples())
	}
	if s.FitCalls() != 2 {
		t.Errorf("FitCalls() = %d, want 2", s.FitCalls())
	}
	if err := s.RequireFitted("Forest", "Predict"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	s.Reset()
	if s.IsFitted() || s.NSamples() != 0 || s.FitCalls() != 0 {
		t.Error("Reset should clear all state")
	}
}
