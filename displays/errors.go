package displays

import (
	"errors"

	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var (
	ErrUnsupportedImage = errors.New("unsupported image")
	ErrUnknownKind      = errors.New("unknown display kind")
)
