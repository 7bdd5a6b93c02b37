package timers

import (
	"context"
	"slices"
	"time"

	"github.com/reusee/catdraw/clocks"
	"github.com/reusee/catdraw/drawconfigs"
	"github.com/reusee/catdraw/logs"
	"github.com/reusee/catdraw/loops"
	"github.com/reusee/catdraw/sessions"
	"github.com/reusee/catdraw/states"
)

// Coordinator services the clear and step deadlines of a session
type Coordinator struct {
	session  *sessions.Session
	graph    *states.Graph
	chance   states.Chance
	interval time.Duration
	logger   logs.Logger
}

func (Module) Coordinator(
	session *sessions.Session,
	graph *states.Graph,
	chance states.Chance,
	interval drawconfigs.TimerInterval,
	logger logs.Logger,
) *Coordinator {
	return &Coordinator{
		session:  session,
		graph:    graph,
		chance:   chance,
		interval: time.Duration(interval),
		logger:   logger.With("component", "timer"),
	}
}

// Iterate checks both deadlines once and returns how long to wait before
// the next pass, or loops.Block when neither is armed
func (c *Coordinator) Iterate() (wait time.Duration) {
	clock := c.session.Clock()
	wait = loops.Block

	c.session.Update(func(tx *sessions.Tx) {
		data := tx.Data()

		if clocks.IsPast(clock, data.ClearAt) {
			c.logger.Info("clearing by timer")
			tx.SetText("")
			tx.SetClearAt(time.Time{})
		}

		if clocks.IsPast(clock, data.StepAt) {
			target := data.Step + 1
			if c.shouldRewind(data) {
				target = states.RewindTarget(data.Step)
			}

			cycled := states.Cycled(data.Step)
			if cycled && slices.Contains(data.Targets, data.State) {
				c.logger.Info("reached target", "state", data.State)
				tx.SetTargets(nil)
				data.Targets = nil
			}

			if cycled || c.shouldRewind(data) {
				next, ok := c.graph.Advance(data.State, data.Targets, c.chance)
				if !ok {
					c.logger.Warn("unreachable",
						"from", data.State,
						"targets", data.Targets,
					)
				}
				if next != data.State {
					c.logger.Info("switched", "state", next)
					tx.SetState(next)
				}
			}

			tx.SetStep(target)
			tx.SetStepAt(time.Time{})
			c.logger.Debug("stepped", "step", target)
		}

		data = tx.Data()
		for _, at := range []time.Time{data.ClearAt, data.StepAt} {
			if at.IsZero() {
				continue
			}
			d := min(max(at.Sub(tx.Now()), 0), c.interval)
			if wait == loops.Block || d < wait {
				wait = d
			}
		}
	})

	return wait
}

// shouldRewind holds while a target is pending and the current pose may be
// cut short
func (c *Coordinator) shouldRewind(data sessions.Data) bool {
	return len(data.Targets) > 0 &&
		!slices.Contains(data.Targets, data.State) &&
		slices.Contains(states.RewindableStates, data.State)
}

// Run iterates until ctx is done or an iteration fails
func (c *Coordinator) Run(ctx context.Context) error {
	return loops.Run(ctx, c.session.TimerWake(), func() (time.Duration, error) {
		return c.Iterate(), nil
	})
}
