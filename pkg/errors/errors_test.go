package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeTemplateNotFound, "no template for purpose")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeTemplateNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeTemplateNotFound, err.Code)
	}
	if err.Message != "no template for purpose" {
		t.Errorf("expected message 'no template for purpose', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("pods is forbidden")
	err := Wrap(ErrCodeSubmission, "cluster rejected manifest", cause)

	if err.Code != ErrCodeSubmission {
		t.Errorf("expected code %s, got %s", ErrCodeSubmission, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("connection refused")
	ctx := map[string]any{
		"pod":       "network-debug-1a2b3c4d",
		"namespace": "default",
	}

	err := WrapWithContext(ErrCodeDelete, "delete failed", cause, ctx)

	if err.Code != ErrCodeDelete {
		t.Errorf("expected code %s, got %s", ErrCodeDelete, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["pod"] != "network-debug-1a2b3c4d" {
		t.Errorf("unexpected pod context: %v", err.Context["pod"])
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "without cause",
			err:      New(ErrCodeInvalidOverride, "bad quantity"),
			expected: "[INVALID_OVERRIDE] bad quantity",
		},
		{
			name:     "with cause",
			err:      Wrap(ErrCodeTimeout, "pod never became ready", errors.New("deadline exceeded")),
			expected: "[TIMEOUT] pod never became ready: deadline exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil", err: nil, want: ""},
		{name: "structured", err: New(ErrCodeAttach, "exec failed"), want: ErrCodeAttach},
		{
			name: "wrapped structured",
			err:  fmt.Errorf("deploy: %w", New(ErrCodeSubmission, "rejected")),
			want: ErrCodeSubmission,
		},
		{name: "plain", err: errors.New("boom"), want: ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}
