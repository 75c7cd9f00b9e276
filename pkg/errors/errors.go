// Package errors provides the error taxonomy shared by the tree, ensemble and
// data packages. Every structured error carries a stack trace recorded by
// cockroachdb/errors and can be emitted as a zerolog object.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Structured errors
//
// ===========================================================================

// InvalidModeError is returned when two predicates are joined with a mode
// other than "and" or "or".
type InvalidModeError struct {
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("randomforest: mode %q for joining predicates is invalid", e.Mode)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *InvalidModeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("mode", e.Mode).
		Str("type", "InvalidModeError")
}

// NewInvalidModeError creates an InvalidModeError with a stack trace.
func NewInvalidModeError(mode string) error {
	return errors.WithStack(&InvalidModeError{Mode: mode})
}

// EmptyCandidateSetError is returned when a split has to be selected from
// zero candidates.
type EmptyCandidateSetError struct {
	Depth int
}

func (e *EmptyCandidateSetError) Error() string {
	return fmt.Sprintf("randomforest: no split candidates available at depth %d", e.Depth)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *EmptyCandidateSetError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("depth", e.Depth).
		Str("type", "EmptyCandidateSetError")
}

// NewEmptyCandidateSetError creates an EmptyCandidateSetError with a stack trace.
func NewEmptyCandidateSetError(depth int) error {
	return errors.WithStack(&EmptyCandidateSetError{Depth: depth})
}

// InsufficientDataError is returned when an input stream ends before the
// number of items an operation requires.
type InsufficientDataError struct {
	Op       string
	Required int
	Got      int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("randomforest: %s: insufficient data, required %d items, got %d", e.Op, e.Required, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *InsufficientDataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("required", e.Required).
		Int("got", e.Got).
		Str("type", "InsufficientDataError")
}

// NewInsufficientDataError creates an InsufficientDataError with a stack trace.
func NewInsufficientDataError(op string, required, got int) error {
	return errors.WithStack(&InsufficientDataError{Op: op, Required: required, Got: got})
}

// UnknownEntityError is returned when an entity id has no feature object in
// the feature mapping.
type UnknownEntityError struct {
	ID int
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("randomforest: unknown entity %d", e.ID)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *UnknownEntityError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("entity_id", e.ID).
		Str("type", "UnknownEntityError")
}

// NewUnknownEntityError creates an UnknownEntityError with a stack trace.
func NewUnknownEntityError(id int) error {
	return errors.WithStack(&UnknownEntityError{ID: id})
}

// NotFittedError is returned when a model is used for prediction before a
// successful Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("randomforest: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// ValidationError is returned when a hyperparameter or configuration value
// is out of range.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("randomforest: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates an error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to err.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Sentinels
//
// ===========================================================================

var (
	// ErrPredicatesExhausted is returned when a predicate generator stops
	// before producing the number of atoms a composition needs.
	ErrPredicatesExhausted = New("predicate generator exhausted")

	// ErrEmptyData is returned when an operation receives no data at all.
	ErrEmptyData = New("empty data")
)
