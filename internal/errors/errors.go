package errors

import (
	"fmt"
	"time"
)

// Error types for the name matching engine
type ErrorType string

const (
	// Static data errors
	ErrorTypeDictionary ErrorType = "dictionary"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"

	// Programming errors that would silently corrupt scores
	ErrorTypeInvariant ErrorType = "invariant"

	// Input errors (entity decoding, CLI input)
	ErrorTypeInput ErrorType = "input"
)

// DictionaryError represents a failure to load or decode a symbol dictionary
type DictionaryError struct {
	Type       ErrorType
	Dictionary string
	Underlying error
	Timestamp  time.Time
}

// NewDictionaryError creates a new dictionary error
func NewDictionaryError(dictionary string, err error) *DictionaryError {
	return &DictionaryError{
		Type:       ErrorTypeDictionary,
		Dictionary: dictionary,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *DictionaryError) Error() string {
	return fmt.Sprintf("dictionary %s failed to load: %v", e.Dictionary, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *DictionaryError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// InvariantError reports a violated internal invariant. It is raised with
// panic, never returned: scores computed past it would be meaningless.
type InvariantError struct {
	Type      ErrorType
	Component string
	Detail    string
}

// NewInvariantError creates a new invariant error
func NewInvariantError(component, format string, args ...interface{}) *InvariantError {
	return &InvariantError{
		Type:      ErrorTypeInvariant,
		Component: component,
		Detail:    fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface
func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s: %s", e.Component, e.Detail)
}

// InputError represents malformed caller input such as an undecodable entity
type InputError struct {
	Type       ErrorType
	Source     string
	Line       int
	Underlying error
}

// NewInputError creates a new input error; line is 0 when not applicable
func NewInputError(source string, line int, err error) *InputError {
	return &InputError{
		Type:       ErrorTypeInput,
		Source:     source,
		Line:       line,
		Underlying: err,
	}
}

// Error implements the error interface
func (e *InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid input at %s:%d: %v", e.Source, e.Line, e.Underlying)
	}
	return fmt.Sprintf("invalid input in %s: %v", e.Source, e.Underlying)
}

// Unwrap returns the underlying error
func (e *InputError) Unwrap() error {
	return e.Underlying
}

// MultiError represents multiple errors
type MultiError struct {
	Errors []error
}

// NewMultiError creates a new multi-error
func NewMultiError(errs []error) *MultiError {
	// Filter out nil errors
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

// ErrOrNil returns nil when no errors were collected
func (e *MultiError) ErrOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// Error implements the error interface
func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap returns all errors
func (e *MultiError) Unwrap() []error {
	return e.Errors
}
