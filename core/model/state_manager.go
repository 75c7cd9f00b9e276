// Package model provides state shared by the estimators of this module.
package model

import (
	"sync"

	"github.com/Motwg/RandomForest/pkg/errors"
)

// StateManager tracks whether an estimator has been fitted, and how many
// samples the last successful fit used. It is safe for concurrent use.
type StateManager struct {
	mu        sync.RWMutex
	fitted    bool
	nSamples  int
	nFitCalls int
}

// NewStateManager creates a StateManager in the not-fitted state.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether the model has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// SetFitted marks the model as fitted on nSamples training samples.
func (s *StateManager) SetFitted(nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = true
	s.nSamples = nSamples
	s.nFitCalls++
}

// Reset returns to the not-fitted state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = false
	s.nSamples = 0
	s.nFitCalls = 0
}

// NSamples returns the number of training samples of the last fit.
func (s *StateManager) NSamples() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nSamples
}

// FitCalls returns the number of successful fits since creation or Reset.
func (s *StateManager) FitCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nFitCalls
}

// RequireFitted returns a NotFittedError naming modelName and method if the
// model has not been fitted.
func (s *StateManager) RequireFitted(modelName, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}
