package displays

import (
	"fmt"

	"github.com/reusee/catdraw/states"
)

const (
	Width  = 250
	Height = 122
)

// IdleSprite is shown while frozen or halted
const IdleSprite = "idle"

// Frame is one picture request
type Frame struct {
	// Sprite is an asset name relative to the assets dir, without extension
	Sprite     string
	Text       string
	HalfScreen bool
}

func SpriteName(state states.State, frame int) string {
	return fmt.Sprintf("%s/%d", state, frame)
}

// Display is the panel. Render fully initializes the panel on first use and
// after Freeze, and takes the fast path otherwise. Halt is idempotent and safe
// to call on a display that was never used.
type Display interface {
	Render(frame Frame) error
	Freeze() error
	Halt() error
}
