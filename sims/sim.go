package sims

import (
	"context"
	"slices"
	"time"

	"github.com/reusee/catdraw/clocks"
	"github.com/reusee/catdraw/debugs"
	"github.com/reusee/catdraw/displays"
	"github.com/reusee/catdraw/drawconfigs"
	"github.com/reusee/catdraw/frames"
	"github.com/reusee/catdraw/logs"
	"github.com/reusee/catdraw/planners"
	"github.com/reusee/catdraw/protocols"
	"github.com/reusee/catdraw/sessions"
	"github.com/reusee/catdraw/states"
	"github.com/reusee/catdraw/timers"
	"github.com/reusee/dscope"
)

// Epoch is the start of every simulation
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const maxSettle = 64

// Sim drives a session on a mock clock. The scheduler loops are stepped by
// hand, so a simulation is deterministic given its chance.
type Sim struct {
	Clock    *clocks.Mock
	Session  *sessions.Session
	Recorder *displays.Recorder

	planner     *planners.Planner
	coordinator *timers.Coordinator
	renderer    *frames.Renderer
	tick        time.Duration
	exec        debugs.Exec
	tap         debugs.Tap
	logger      logs.Logger
	trace       []states.State
}

// New builds a simulation from scope, replacing its clock, display and
// chance. The halt hook is only logged.
func New(scope dscope.Scope, chance states.Chance) *Sim {
	clock := clocks.NewMock(Epoch)
	recorder := new(displays.Recorder)
	var sim *Sim
	scope.Fork(
		func() clocks.Clock {
			return clock
		},
		func() displays.Display {
			return recorder
		},
		func() states.Chance {
			return chance
		},
		func(logger logs.Logger) planners.HaltHook {
			return func() {
				logger.Info("halt hook skipped in simulation")
			}
		},
	).Call(func(
		session *sessions.Session,
		planner *planners.Planner,
		coordinator *timers.Coordinator,
		renderer *frames.Renderer,
		interval drawconfigs.TimerInterval,
		exec debugs.Exec,
		tap debugs.Tap,
		logger logs.Logger,
	) {
		sim = &Sim{
			Clock:       clock,
			Session:     session,
			Recorder:    recorder,
			planner:     planner,
			coordinator: coordinator,
			renderer:    renderer,
			tick:        time.Duration(interval),
			exec:        exec,
			tap:         tap,
			logger:      logger.With("component", "sim"),
		}
	})

	sim.trace = []states.State{sim.Session.Snapshot().State}
	sim.coordinator.Iterate()
	sim.renderer.Iterate()
	sim.settle()
	return sim
}

// settle runs the loops whose wake signal is pending until none is
func (s *Sim) settle() {
	for range maxSettle {
		progressed := false
		select {
		case <-s.Session.TimerWake():
			s.coordinator.Iterate()
			progressed = true
		default:
		}
		select {
		case <-s.Session.FrameWake():
			s.renderer.Iterate()
			progressed = true
		default:
		}
		s.record()
		if !progressed {
			return
		}
	}
	s.logger.Warn("not settled")
}

func (s *Sim) record() {
	state := s.Session.Snapshot().State
	if state != s.trace[len(s.trace)-1] {
		s.trace = append(s.trace, state)
	}
}

// Send plans every line of text
func (s *Sim) Send(text string) {
	for _, line := range protocols.Lines(text) {
		s.planner.Plan(line)
		s.settle()
	}
}

// Advance moves the clock forward by d, one timer tick at a time
func (s *Sim) Advance(d time.Duration) {
	for d > 0 {
		step := min(d, s.tick)
		s.Clock.Advance(step)
		d -= step
		s.coordinator.Iterate()
		s.settle()
	}
}

// Trace lists the states visited, without repeats
func (s *Sim) Trace() []states.State {
	return slices.Clone(s.trace)
}

// Frames lists the rendered frames
func (s *Sim) Frames() (ret []displays.Frame) {
	for _, call := range s.Recorder.Calls() {
		if call.Kind == displays.CallRender {
			ret = append(ret, call.Frame)
		}
	}
	return
}

// Globals are the builtins of scripts and the REPL
func (s *Sim) Globals() map[string]any {
	return map[string]any{
		"send": func(text string) {
			s.Send(text)
		},
		"advance": func(d string) error {
			duration, err := time.ParseDuration(d)
			if err != nil {
				return wrap(err)
			}
			s.Advance(duration)
			return nil
		},
		"state": func() string {
			return string(s.Session.Snapshot().State)
		},
		"step": func() int {
			return s.Session.Snapshot().Step
		},
		"text": func() string {
			frame, ok := s.Recorder.Last()
			if !ok {
				return ""
			}
			return frame.Text
		},
		"sprite": func() string {
			frame, ok := s.Recorder.Last()
			if !ok {
				return ""
			}
			return frame.Sprite
		},
		"targets": func() []string {
			return toStrings(s.Session.Snapshot().Targets)
		},
		"trace": func() []string {
			return toStrings(s.trace)
		},
		"halted": func() bool {
			return s.Session.Snapshot().Halted
		},
	}
}

func toStrings(list []states.State) []string {
	ret := make([]string, 0, len(list))
	for _, state := range list {
		ret = append(ret, string(state))
	}
	return ret
}

// Script runs a Starlark script against the simulation
func (s *Sim) Script(ctx context.Context, filename string, src any) error {
	s.logger.Info("script", "file", filename)
	_, err := s.exec(ctx, filename, src, s.Globals())
	return err
}

// REPL runs an interactive Starlark session on stdin
func (s *Sim) REPL(ctx context.Context) {
	s.tap(ctx, "sim", s.Globals())
}
