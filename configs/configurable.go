package configs

import "errors"

// Configurable is a typed config value; ConfigExpr is its path in the config files
type Configurable interface {
	ConfigExpr() string
}

// Lookup decodes the first value at T's own path
func Lookup[T Configurable](loader Loader) (T, bool) {
	var zero T
	var value T
	if err := loader.AssignFirst(zero.ConfigExpr(), &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return zero, false
		}
		panic(err)
	}
	return value, true
}
