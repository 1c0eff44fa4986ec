// Package pathtext converts path-like values to text.
//
// Filesystem paths are not guaranteed to be valid UTF-8: on Unix a path is an
// arbitrary byte sequence, and Go carries it around in a string or []byte
// without validating it. Code that needs real text out of a path has to pick
// a policy, and this package offers both:
//
// - String: strict, fails with a ConversionError on invalid bytes
// - LossyString: total, substitutes U+FFFD for invalid bytes
//
// Both accept any string- or byte-slice-kinded type via the Path constraint.
package pathtext
