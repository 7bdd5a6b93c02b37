package vars

// FirstNonZero returns the first value that is not the zero value of T. The
// zero value means unset throughout, so this is also how layered settings are
// resolved.
func FirstNonZero[T comparable](values ...T) (ret T) {
	for _, value := range values {
		if value != ret {
			return value
		}
	}
	return
}
