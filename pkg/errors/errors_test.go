package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidParams, "Levels must be between %d and %d", 2, 10)

	if err.Code != ErrCodeInvalidParams {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidParams)
	}

	if err.Message != "Levels must be between 2 and 10" {
		t.Errorf("Message = %v, want %v", err.Message, "Levels must be between 2 and 10")
	}

	expected := "INVALID_PARAMS: Levels must be between 2 and 10"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeInvalidFormat, cause, "decode tree")

	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidFormat)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "INVALID_FORMAT: decode tree: unexpected EOF"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeTargetNotFound, "test"),
			code:     ErrCodeTargetNotFound,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidKey,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInternal, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInternal,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidAlgorithm, "test"), ErrCodeInvalidAlgorithm},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		err          error
		wantInvalid  bool
		wantNotFound bool
	}{
		{New(ErrCodeInvalidParams, "x"), true, false},
		{New(ErrCodeInvalidKey, "x"), true, false},
		{New(ErrCodeTargetNotFound, "x"), false, true},
		{New(ErrCodeSessionNotFound, "x"), false, true},
		{New(ErrCodeInternal, "x"), false, false},
		{errors.New("plain"), false, false},
	}

	for _, tt := range tests {
		if got := IsValidation(tt.err); got != tt.wantInvalid {
			t.Errorf("IsValidation(%v) = %v, want %v", tt.err, got, tt.wantInvalid)
		}
		if got := IsNotFound(tt.err); got != tt.wantNotFound {
			t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.wantNotFound)
		}
	}
}
