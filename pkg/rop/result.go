package rop

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNoValue is the panic cause when the value of a failed Result is read.
var ErrNoValue = errors.New("no value")

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
}

func Ok[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail creates a failed Result carrying message. The value slot stays zero
// and must never be read.
func Fail[T any](message string) Result[T] {
	return FailErr[T](errors.New(message))
}

// FailErr creates a failed Result from an existing error, keeping it
// available to errors.Is and errors.As.
func FailErr[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("")
	}
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Message returns the failure message, or an empty string on success.
// Result does not implement error.
func (r Result[T]) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

func (r Result[T]) Err() error {
	return r.err
}

// MustValue returns the value of a successful Result and panics otherwise.
// Check IsSuccess first or use the combinators.
func (r Result[T]) MustValue() T {
	if r.IsSuccess() {
		return r.result
	}
	panic(fmt.Errorf("%w. only error %s", ErrNoValue, r.err.Error()))
}

// Get returns the value and a nil error on success, or the zero value and
// the failure on failure.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.result, nil
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// OnFail calls handleError with the failure message. The Result is returned
// unchanged either way.
func (r Result[T]) OnFail(handleError func(message string)) Result[T] {
	if r.IsFailure() && handleError != nil {
		handleError(r.err.Error())
	}
	return r
}

// ReplaceError rewrites the failure message. replace is never called on
// success.
func (r Result[T]) ReplaceError(replace func(message string) string) Result[T] {
	if r.IsSuccess() {
		return r
	}
	return Fail[T](replace(r.err.Error()))
}

// RefineError prepends prefix and a space to the failure message. The
// original error stays reachable through errors.Is.
func (r Result[T]) RefineError(prefix string) Result[T] {
	if r.IsSuccess() {
		return r
	}
	return FailErr[T](fmt.Errorf("%s %w", prefix, r.err))
}
