package configs

import (
	"errors"
	"fmt"
)

// First decodes the first value at path, or returns the zero value when no
// file sets it. Decode errors are configuration bugs and panic.
func First[T any](loader Loader, path string) (ret T) {
	if err := loader.AssignFirst(path, &ret); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return
		}
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return
}
