// Package permit converts selected failures into successes.
//
// The verbs operate on unit results (treats.Result[treats.Unit]), where
// suppressing an error loses no payload. Typical use is around operations
// whose failure is acceptable under a known condition, such as creating a
// directory that may already exist:
//
//	res := permit.If(permit.From(os.Mkdir(dir, 0o755)), func(err error) bool {
//		return errors.Is(err, fs.ErrExist)
//	})
//	if res.IsFailure() {
//		return res.Err()
//	}
//
// Common usage:
// - From: lift a plain error into a unit result
// - Permit: drop any failure unconditionally
// - If: permit a failure when a predicate matches it
// - When: permit a failure when a precomputed condition holds
// - All: permit an aggregated failure when every element matches
package permit
