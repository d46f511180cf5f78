package domain

import (
	"errors"
	"fmt"
)

// UpstreamError wraps any failure talking to the fleet API. Network errors
// and non-2xx responses collapse into this single kind; the dashboard gets
// one generic message either way.
type UpstreamError struct {
	Op  string
	Err error
}

func (e UpstreamError) Error() string {
	if e.Op == "" {
		return "upstream request failed"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: upstream request failed", e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e UpstreamError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsUpstream(err error) bool {
	var target UpstreamError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
