package treats

import "time"

type ValueProvider[T any] interface {
	// Value returns the contained value
	Value() T
	// CreatedAt time of creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can hold a value or an error
type WithError[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time of creation (UTC)
	CreatedAt() time.Time
	// Err returns the error if the operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}
