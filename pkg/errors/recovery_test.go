package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRecover_WithPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "TestOperation")
		panic("test panic message")
	}

	err := testFunc()
	if err == nil {
		t.Fatal("Expected error from recovered panic, got nil")
	}

	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T", err)
	}
	if panicErr.Operation != "TestOperation" {
		t.Errorf("Expected operation 'TestOperation', got '%s'", panicErr.Operation)
	}
	if panicErr.StackTrace == "" {
		t.Error("Expected non-empty stack trace")
	}
	if want := "panic in TestOperation: test panic message"; panicErr.Error() != want {
		t.Errorf("Expected error message '%s', got '%s'", want, panicErr.Error())
	}
	if !strings.Contains(panicErr.String(), "Stack trace:") {
		t.Error("String() should include the stack trace")
	}
}

func TestRecover_WithoutPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "TestOperation")
		return nil
	}

	if err := testFunc(); err != nil {
		t.Fatalf("Expected no error when no panic occurs, got: %v", err)
	}
}

func TestRecover_WithExistingError(t *testing.T) {
	originalErr := fmt.Errorf("original error")

	testFunc := func() (err error) {
		defer Recover(&err, "TestOperation")
		err = originalErr
		panic("panic after error")
	}

	err := testFunc()
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !errors.Is(err, originalErr) {
		t.Error("original error should stay in the chain")
	}
	if !strings.Contains(err.Error(), "panic in TestOperation") {
		t.Errorf("Error message should contain panic info: %s", err.Error())
	}
}

func TestSafeExecute(t *testing.T) {
	testCases := []struct {
		name      string
		fn        func() error
		wantPanic bool
		wantErr   bool
	}{
		{name: "success", fn: func() error { return nil }},
		{name: "returned error", fn: func() error { return ErrEmptyData }, wantErr: true},
		{name: "string panic", fn: func() error { panic("predicate failed") }, wantErr: true, wantPanic: true},
		{name: "error panic", fn: func() error { panic(errors.New("nil movie")) }, wantErr: true, wantPanic: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := SafeExecute("grow", tc.fn)
			if (err != nil) != tc.wantErr {
				t.Fatalf("SafeExecute() error = %v, wantErr %v", err, tc.wantErr)
			}
			var panicErr *PanicError
			if got := errors.As(err, &panicErr); got != tc.wantPanic {
				t.Errorf("PanicError = %v, want %v", got, tc.wantPanic)
			}
		})
	}
}
