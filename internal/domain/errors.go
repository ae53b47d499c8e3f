package domain

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a record identity is unknown.
type NotFoundError struct {
	Resource string
	Key      string
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Resource != "" && e.Key != "":
		return fmt.Sprintf("%s %s not found", e.Resource, e.Key)
	case e.Resource != "":
		return fmt.Sprintf("%s not found", e.Resource)
	default:
		return "not found"
	}
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError covers malformed or missing non-identity input.
type ValidationError struct {
	Field   string
	Msg     string
	Details map[string]any
	Err     error
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
	return "invalid input"
}

func (e ValidationError) Unwrap() error { return e.Err }

// InvalidIDError is returned for empty, non-integer or non-positive ids.
type InvalidIDError struct {
	Field string
	Value string
	Msg   string
}

func (e InvalidIDError) Error() string {
	field := e.Field
	if field == "" {
		field = "id"
	}
	if e.Msg != "" {
		return fmt.Sprintf("%s %s", field, e.Msg)
	}
	return fmt.Sprintf("invalid %s", field)
}

// ConflictError is returned when an identity already exists.
type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// ImmutableIDError is returned when an update tries to change identity fields.
type ImmutableIDError struct {
	Field string
}

func (e ImmutableIDError) Error() string {
	if e.Field == "" {
		return "id is immutable"
	}
	return fmt.Sprintf("%s cannot change", e.Field)
}

// DeleteBlockedError is returned when dependent flights still reference a record.
type DeleteBlockedError struct {
	Resource string
	Msg      string
}

func (e DeleteBlockedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Resource != "" {
		return fmt.Sprintf("cannot delete %s: today or future flights exist", e.Resource)
	}
	return "delete blocked"
}

// IOError wraps storage failures.
type IOError struct {
	Op  string
	Err error
}

func (e IOError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("storage error: %v", e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e IOError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInvalidID(err error) bool {
	var target InvalidIDError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsImmutableID(err error) bool {
	var target ImmutableIDError
	return errors.As(err, &target)
}

func IsDeleteBlocked(err error) bool {
	var target DeleteBlockedError
	return errors.As(err, &target)
}

func IsIO(err error) bool {
	var target IOError
	return errors.As(err, &target)
}
