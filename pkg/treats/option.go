package treats

import (
	"time"

	"github.com/google/uuid"
)

type Option[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	hasValue  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:     v,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func None[T any]() Option[T] {
	return Option[T]{
		hasValue:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// SomeNotNil wraps v unless it is a nil value, in which case the option is
// absent. Useful for lifting pointer-returning lookups.
func SomeNotNil[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) Value() T {
	return o.value
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.hasValue
}

func (o Option[T]) IsSome() bool {
	return o.hasValue
}

func (o Option[T]) IsNone() bool {
	return !o.hasValue
}

func (o Option[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Option[T]) Id() uuid.UUID {
	return o.id
}

// InspectNone calls f if the option is absent and returns the option
// unchanged. The callback takes no arguments: the absent branch has no
// payload to inspect. Counterpart of InspectSome for the other branch,
// intended for side effects like logging.
func (o Option[T]) InspectNone(f func()) Option[T] {
	if !o.hasValue && f != nil {
		f()
	}
	return o
}

// InspectSome calls f with the contained value if the option is present and
// returns the option unchanged.
func (o Option[T]) InspectSome(f func(T)) Option[T] {
	if o.hasValue && f != nil {
		f(o.value)
	}
	return o
}
