package permit

import (
	"github.com/treats-go/treats/pkg/treats"
)

// From lifts a plain error into a unit result: nil becomes a success,
// anything else a failure carrying err.
func From(err error) treats.Result[treats.Unit] {
	if err != nil {
		return treats.Fail[treats.Unit](err)
	}
	return treats.Success(treats.Unit{})
}

// Permit drops any failure unconditionally. The error is discarded and never
// surfaced again; a success's payload is dropped as well, since the outcome
// is a unit result either way. The input is ignored entirely.
func Permit[T any](_ treats.Result[T]) treats.Result[treats.Unit] {
	return treats.Success(treats.Unit{})
}

// If permits the failure when pred matches it.
//
// A success passes through unchanged. A failure whose error satisfies pred
// becomes a success; otherwise the input is returned as is, with the original
// error untouched. pred is called at most once, only with a non-nil error,
// and must not mutate it.
func If(input treats.Result[treats.Unit],
	pred func(err error) bool) treats.Result[treats.Unit] {

	if input.IsSuccess() {
		return input
	}

	if err := input.Err(); err != nil && pred(err) {
		return treats.Success(treats.Unit{})
	}
	return input
}

// When permits the failure when cond holds. Use it when the decision does not
// depend on the error value itself.
func When(input treats.Result[treats.Unit], cond bool) treats.Result[treats.Unit] {
	if input.IsSuccess() {
		return input
	}

	if cond {
		return treats.Success(treats.Unit{})
	}
	return input
}

// All permits an aggregated failure only if pred matches every element.
//
// The failure payload is flattened with treats.GetErrors, so aggregates built
// with multierror.Append or errors.Join are examined element by element; a
// plain error behaves as a one-element collection. If any element fails the
// predicate, the input is returned unchanged: no element is removed or
// reordered, including the ones that did match. Evaluation stops at the first
// non-matching element, so pred must be free of order-dependent side effects.
func All(input treats.Result[treats.Unit],
	pred func(err error) bool) treats.Result[treats.Unit] {

	if input.IsSuccess() {
		return input
	}

	for _, err := range treats.GetErrors(input.Err()) {
		if !pred(err) {
			return input
		}
	}
	return treats.Success(treats.Unit{})
}
