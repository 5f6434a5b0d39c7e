package cpal

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedVersion = errors.New("cpal: only version 0 is supported")
	ErrNoPalettes         = errors.New("cpal: no palettes")
	ErrIndexOutOfRange    = errors.New("cpal: color record index out of range")
)

// FormatError reports malformed table data.
type FormatError struct {
	Field string
	Err   error
}

func (e FormatError) Error() string {
	return fmt.Sprintf("cpal: field=%s: %v", e.Field, e.Err)
}

func (e FormatError) Unwrap() error {
	return e.Err
}

// ValidationError reports a construction request that cannot be encoded.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return "cpal: " + e.Reason
	}
	return fmt.Sprintf("cpal: field=%s: %s", e.Field, e.Reason)
}

func argument(ok bool, field, reason string) error {
	if ok {
		return nil
	}
	return ValidationError{Field: field, Reason: reason}
}
