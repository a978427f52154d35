package errors

import (
	"errors"
	"testing"
	"time"
)

func TestDictionaryError(t *testing.T) {
	underlying := errors.New("toml: expected '='")
	err := NewDictionaryError("org_types", underlying)

	if err.Type != ErrorTypeDictionary {
		t.Errorf("Expected Type to be ErrorTypeDictionary, got %v", err.Type)
	}

	if err.Dictionary != "org_types" {
		t.Errorf("Expected Dictionary to be 'org_types', got %s", err.Dictionary)
	}

	if !errors.Is(err, underlying) {
		t.Errorf("Expected error to unwrap to underlying error")
	}

	expectedMsg := "dictionary org_types failed to load: toml: expected '='"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}
}

func TestConfigError(t *testing.T) {
	underlying := errors.New("invalid value")
	err := NewConfigError("field_name", "invalid_value", underlying)

	if err.Field != "field_name" {
		t.Errorf("Expected Field to be 'field_name', got %s", err.Field)
	}

	if err.Value != "invalid_value" {
		t.Errorf("Expected Value to be 'invalid_value', got %s", err.Value)
	}

	if !errors.Is(err, underlying) {
		t.Errorf("Expected error to unwrap to underlying error")
	}

	expectedMsg := `config error for field field_name (value invalid_value): invalid value`
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}
}

func TestInvariantError(t *testing.T) {
	err := NewInvariantError("pairing", "part %q claimed twice", "acme")

	if err.Type != ErrorTypeInvariant {
		t.Errorf("Expected Type to be ErrorTypeInvariant, got %v", err.Type)
	}

	expectedMsg := `invariant violated in pairing: part "acme" claimed twice`
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	var target *InvariantError
	if !errors.As(error(err), &target) {
		t.Errorf("Expected errors.As to find *InvariantError")
	}
}

func TestInputError(t *testing.T) {
	underlying := errors.New("unexpected end of JSON input")

	withLine := NewInputError("entities.jsonl", 3, underlying)
	if withLine.Error() != "invalid input at entities.jsonl:3: unexpected end of JSON input" {
		t.Errorf("Unexpected message %q", withLine.Error())
	}

	noLine := NewInputError("--query", 0, underlying)
	if noLine.Error() != "invalid input in --query: unexpected end of JSON input" {
		t.Errorf("Unexpected message %q", noLine.Error())
	}

	if !errors.Is(noLine, underlying) {
		t.Errorf("Expected error to unwrap to underlying error")
	}
}

func TestMultiError(t *testing.T) {
	// Test with multiple errors
	err1 := errors.New("error 1")
	err2 := errors.New("error 2")
	err3 := errors.New("error 3")

	multiErr := NewMultiError([]error{err1, err2, err3})

	if len(multiErr.Errors) != 3 {
		t.Errorf("Expected 3 errors, got %d", len(multiErr.Errors))
	}

	errMsg := multiErr.Error()
	if len(errMsg) < 10 || errMsg[:10] != "3 errors: " {
		t.Errorf("Expected message to start with '3 errors: ', got %q", errMsg)
	}

	// Test with single error
	singleErr := NewMultiError([]error{err1})
	if singleErr.Error() != "error 1" {
		t.Errorf("Expected 'error 1', got %q", singleErr.Error())
	}

	// Test with no errors
	emptyErr := NewMultiError([]error{})
	if emptyErr.Error() != "no errors" {
		t.Errorf("Expected 'no errors', got %q", emptyErr.Error())
	}
	if emptyErr.ErrOrNil() != nil {
		t.Errorf("Expected ErrOrNil to return nil for empty MultiError")
	}

	// Test with nil errors (should be filtered)
	nilFiltered := NewMultiError([]error{err1, nil, err2, nil})
	if len(nilFiltered.Errors) != 2 {
		t.Errorf("Expected 2 errors after filtering nil, got %d", len(nilFiltered.Errors))
	}

	if !errors.Is(multiErr, err2) {
		t.Errorf("Expected errors.Is to find err2 in MultiError")
	}
}

func TestTimestamp(t *testing.T) {
	err := NewDictionaryError("test", errors.New("test"))
	if err.Timestamp.IsZero() {
		t.Errorf("Expected non-zero timestamp")
	}

	now := time.Now()
	if err.Timestamp.After(now) || now.Sub(err.Timestamp) > time.Second {
		t.Errorf("Timestamp seems incorrect: %v", err.Timestamp)
	}
}

func BenchmarkDictionaryError(b *testing.B) {
	underlying := errors.New("underlying error")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		err := NewDictionaryError("org_types", underlying)
		_ = err.Error()
	}
}
