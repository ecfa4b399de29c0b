package models

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	MalformedInput  ErrorKind = "malformed_input"
	MissingField    ErrorKind = "missing_field"
	InvalidAmount   ErrorKind = "invalid_amount"
	InvalidPhone    ErrorKind = "invalid_phone"
	InvalidLineItem ErrorKind = "invalid_line_item"
)

// Sentinels for errors.Is checks against a ValidationError of the same kind.
var (
	ErrMalformedInput  = &ValidationError{Kind: MalformedInput}
	ErrMissingField    = &ValidationError{Kind: MissingField}
	ErrInvalidAmount   = &ValidationError{Kind: InvalidAmount}
	ErrInvalidPhone    = &ValidationError{Kind: InvalidPhone}
	ErrInvalidLineItem = &ValidationError{Kind: InvalidLineItem}
)

// ValidationError describes why a checkout request was rejected.
// Raw holds the offending line item as received, for InvalidLineItem only.
type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Message string
	Raw     string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is matches any ValidationError with the same kind.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of a validation error in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}
