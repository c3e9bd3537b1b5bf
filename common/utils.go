package common

// Coalesce returns the first value in values that is not the zero value of T,
// or the zero value when every entry is zero. Useful for falling back through
// optional configuration.
//
// Parameters:
//   - values: candidate values in priority order
//
// Returns:
//   - T: the first non-zero value, or the zero value of T
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
