package treats

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// Unit is the empty success payload used by results that carry no value.
type Unit struct{}

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailAll aggregates several errors into a single failure. Nil entries are
// skipped; with no non-nil errors the result is a success.
func FailAll[T any](errs ...error) Result[T] {
	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if merr == nil {
		var zero T
		return Success(zero)
	}
	return Fail[T](merr)
}

func (r Result[T]) Result() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
