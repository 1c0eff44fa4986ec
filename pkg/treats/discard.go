package treats

// Discard consumes a value of any type and does nothing with it.
//
// It is the explicit form of `_ = v`: the call site records that the value
// was seen and deliberately dropped, which keeps unused-value linters quiet
// without silencing them globally.
//
//	treats.Discard(flagSet.Parse(args))
func Discard[T any](_ T) {}
