// Package errors defines the error taxonomy for the mapping system. Only
// configuration errors are fatal for a run; data errors are recorded and
// recovered from per asset.
package errors

import (
	"fmt"
	"time"
)

// ErrorType classifies errors for callers that branch on category.
type ErrorType string

const (
	ErrorTypeConfig ErrorType = "config"
	ErrorTypeData   ErrorType = "data"
	ErrorTypeScript ErrorType = "script"
)

// ConfigError reports a ScoringConfig or project-config field outside its
// documented domain. Always fatal; raised before any step is processed.
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a config error for a single field.
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// DataError reports a malformed simulation asset. Recoverable: the asset is
// skipped and the run continues.
type DataError struct {
	Type       ErrorType
	Path       string
	Operation  string
	Underlying error
	Timestamp  time.Time
}

// NewDataError creates a data error for an asset operation.
func NewDataError(op, path string, err error) *DataError {
	return &DataError{
		Type:       ErrorTypeData,
		Path:       path,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

func (e *DataError) Error() string {
	return fmt.Sprintf("data %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
}

func (e *DataError) Unwrap() error {
	return e.Underlying
}

// ScriptError reports a walkthrough-script parse failure.
type ScriptError struct {
	Path       string
	Underlying error
	Timestamp  time.Time
}

// NewScriptError creates a script error.
func NewScriptError(path string, err error) *ScriptError {
	return &ScriptError{
		Path:       path,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %v", e.Path, e.Underlying)
}

func (e *ScriptError) Unwrap() error {
	return e.Underlying
}

// MultiError aggregates per-asset errors from a load pass.
type MultiError struct {
	Errors []error
}

// NewMultiError creates a multi-error, dropping nils. Returns nil when
// nothing remains.
func NewMultiError(errs []error) *MultiError {
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	return &MultiError{Errors: filtered}
}

func (e *MultiError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap returns all aggregated errors.
func (e *MultiError) Unwrap() []error {
	return e.Errors
}
