package errors

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinelErrors := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrConfigNotFound", ErrConfigNotFound, "config not found"},
		{"ErrConfigInvalid", ErrConfigInvalid, "invalid configuration"},
		{"ErrInvalidFilePath", ErrInvalidFilePath, "invalid file path"},
		{"ErrInvalidRule", ErrInvalidRule, "invalid exclusion rule"},
		{"ErrSinkClosed", ErrSinkClosed, "sink closed"},
		{"ErrNotFound", ErrNotFound, "entity not found"},
		{"ErrNotImplemented", ErrNotImplemented, "not implemented"},
	}

	for _, tc := range sentinelErrors {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err == nil {
				t.Errorf("%s is nil", tc.name)
				return
			}
			if tc.err.Error() != tc.msg {
				t.Errorf("%s: got %q, want %q", tc.name, tc.err.Error(), tc.msg)
			}
		})
	}
}

func TestConstructorsWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"config", NewConfigError("serve.port", -1), ErrConfigInvalid},
		{"rule", NewRuleError(`Type ==`, errors.New("unexpected token")), ErrInvalidRule},
		{"file", NewFileError("../../etc/passwd", errors.New("escapes base dir")), ErrInvalidFilePath},
		{"notfound", NewNotFoundError("catalog/product", "42"), ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.sentinel) {
				t.Errorf("%v should wrap %v", tc.err, tc.sentinel)
			}
		})
	}
}

func TestNewNotFoundErrorMessage(t *testing.T) {
	err := NewNotFoundError("catalog/product", "42")
	want := "entity not found: catalog/product id=42"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
