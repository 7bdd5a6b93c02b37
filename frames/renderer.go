package frames

import (
	"context"
	"slices"
	"time"

	"github.com/reusee/catdraw/clocks"
	"github.com/reusee/catdraw/displays"
	"github.com/reusee/catdraw/drawconfigs"
	"github.com/reusee/catdraw/logs"
	"github.com/reusee/catdraw/loops"
	"github.com/reusee/catdraw/sessions"
	"github.com/reusee/catdraw/states"
)

// Renderer turns session snapshots into display calls
type Renderer struct {
	session       *sessions.Session
	display       displays.Display
	frameInterval time.Duration
	idleDelay     time.Duration
	defaultText   string
	logger        logs.Logger
}

func (Module) Renderer(
	session *sessions.Session,
	display displays.Display,
	frameInterval drawconfigs.FrameInterval,
	idleDelay drawconfigs.IdleDelay,
	defaultText drawconfigs.DefaultText,
	logger logs.Logger,
) *Renderer {
	return &Renderer{
		session:       session,
		display:       display,
		frameInterval: time.Duration(frameInterval),
		idleDelay:     time.Duration(idleDelay),
		defaultText:   string(defaultText),
		logger:        logger.With("component", "frame"),
	}
}

// ShouldIdle reports whether the renderer freezes instead of animating
func (r *Renderer) ShouldIdle(data sessions.Data) bool {
	if data.Halted {
		return true
	}
	canIdle := states.Cycled(data.Step) &&
		slices.Contains(states.SleepStates, data.State)
	shouldIdle := data.Text == "" &&
		clocks.IsOlderThan(r.session.Clock(), data.UpdatedAt, r.idleDelay)
	return canIdle && shouldIdle
}

// Iterate renders once. While animating it re-arms the step deadline; while
// idling it leaves it unset.
func (r *Renderer) Iterate() {
	data := r.session.Snapshot()
	text := data.DisplayText(r.defaultText)

	if r.ShouldIdle(data) {
		r.logger.Info("idling", "halted", data.Halted)
		if err := r.display.Render(displays.Frame{
			Sprite: displays.IdleSprite,
			Text:   text,
		}); err != nil {
			r.logger.Warn("draw", "error", err)
		}
		if err := r.display.Freeze(); err != nil {
			r.logger.Warn("freeze", "error", err)
		}
		return
	}

	r.session.Update(func(tx *sessions.Tx) {
		tx.SetStepAt(clocks.FromNow(tx, r.frameInterval))
	})
	if err := r.display.Render(displays.Frame{
		Sprite:     displays.SpriteName(data.State, states.Frame(data.Step)),
		Text:       text,
		HalfScreen: slices.Contains(states.HalfScreenStates, data.State),
	}); err != nil {
		r.logger.Warn("draw", "error", err)
	}
}

// Run iterates on every frame wake until ctx is done or an iteration panics
func (r *Renderer) Run(ctx context.Context) error {
	return loops.Run(ctx, r.session.FrameWake(), func() (time.Duration, error) {
		r.Iterate()
		return loops.Block, nil
	})
}
