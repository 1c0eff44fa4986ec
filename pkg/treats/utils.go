package treats

import (
	"reflect"

	"github.com/hashicorp/go-multierror"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// GetErrors flattens err into its component errors. Aggregates built with
// multierror.Append or errors.Join unwrap to their elements, in insertion
// order; any other non-nil error is a single-element collection.
func GetErrors(err error) []error {
	if err == nil {
		return []error{}
	}

	if merr, ok := err.(*multierror.Error); ok {
		return merr.WrappedErrors()
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}

	return []error{err}
}
