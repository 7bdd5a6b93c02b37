package planners

import (
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/reusee/catdraw/clocks"
	"github.com/reusee/catdraw/drawconfigs"
	"github.com/reusee/catdraw/logs"
	"github.com/reusee/catdraw/protocols"
	"github.com/reusee/catdraw/sessions"
	"github.com/reusee/catdraw/states"
	"github.com/reusee/catdraw/texts"
)

// Planner maps commands to session mutations
type Planner struct {
	session    *sessions.Session
	wishes     []string
	flushDelay time.Duration
	abortDelay time.Duration
	haltHook   HaltHook
	logger     logs.Logger
	// Pick returns a number in [0, n)
	Pick func(n int) int
}

func (Module) Planner(
	session *sessions.Session,
	wishes drawconfigs.Wishes,
	flushDelay drawconfigs.FlushDelay,
	abortDelay drawconfigs.AbortDelay,
	haltHook HaltHook,
	logger logs.Logger,
) *Planner {
	return &Planner{
		session:    session,
		wishes:     wishes,
		flushDelay: time.Duration(flushDelay),
		abortDelay: time.Duration(abortDelay),
		haltHook:   haltHook,
		logger:     logger.With("component", "planner"),
		Pick:       rand.IntN,
	}
}

// Plan decodes one line and applies it. Undecodable lines are flushed as
// they are; blank lines are dropped.
func (p *Planner) Plan(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	cmd, err := protocols.Parse(line)
	if err != nil {
		p.logger.Info("undecodable", "line", line)
	}
	p.Apply(cmd)
}

// Apply applies cmd as one bundle
func (p *Planner) Apply(cmd protocols.Command) {
	halting := false
	p.session.Update(func(tx *sessions.Tx) {
		if tx.Data().Halted {
			p.logger.Info("ignoring", "line", cmd.Raw)
			return
		}
		p.logger.Info("processing", "line", cmd.Raw)

		switch strings.TrimSpace(cmd.Verb) {

		case "Run Left":
			tx.SetTargets([]states.State{states.RunLeft})
		case "Run Right":
			tx.SetTargets([]states.State{states.RunRight})
		case "Look Up":
			tx.SetTargets(states.LookUpStates)
		case "Lie Down":
			tx.SetTargets(states.LieDownStates)
		case "Sleep":
			tx.SetTargets(states.SleepStates)

		case "Say Wish":
			p.sayWish(tx)
		case "Flush":
			p.show(tx, cmd.Value, p.flushDelay)
		case "Draw":
			p.show(tx, cmd.Value, p.abortDelay)

		case "Clear":
			tx.SetText("")
			tx.SetClearAt(time.Time{})
			tx.SetTargets(nil)

		case "Halt":
			tx.SetText(cmd.Value)
			tx.Halt()
			tx.SetClearAt(time.Time{})
			tx.SetStepAt(time.Time{})
			tx.SetTargets(nil)
			halting = true

		case "IP":
			tx.SetNetwork(cmd.Value)
			tx.SetTargets(states.LookUpStates)
		case "BT":
			tx.SetBluetooth(cmd.Value)
			tx.SetTargets(states.LookUpStates)

		default:
			p.show(tx, cmd.Raw, p.flushDelay)
		}
	})

	if halting {
		p.haltHook()
	}
}

// show displays text until delay passes, with a pose fitting its length
func (p *Planner) show(tx *sessions.Tx, text string, delay time.Duration) {
	tx.SetText(text)
	tx.SetClearAt(clocks.FromNow(tx, delay))
	if texts.IsLong(text) {
		tx.SetTargets(states.LieDownStates)
	} else {
		tx.SetTargets(states.LookUpStates)
	}
}

func (p *Planner) sayWish(tx *sessions.Tx) {
	current := tx.Data().Text
	candidates := slices.DeleteFunc(slices.Clone(p.wishes), func(wish string) bool {
		return wish == current
	})
	if len(candidates) == 0 {
		p.logger.Warn("no wish to say")
		return
	}
	p.show(tx, candidates[p.Pick(len(candidates))], p.flushDelay)
}
