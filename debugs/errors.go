package debugs

import (
	"errors"

	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var ErrUnsupportedType = errors.New("unsupported type for starlark")
