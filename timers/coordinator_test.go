package timers

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/reusee/catdraw/clocks"
	"github.com/reusee/catdraw/loops"
	"github.com/reusee/catdraw/modes"
	"github.com/reusee/catdraw/sessions"
	"github.com/reusee/catdraw/states"
	"github.com/reusee/dscope"
)

var epoch = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func testScope(t *testing.T, defs ...any) dscope.Scope {
	clock := clocks.NewMock(epoch)
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		append([]any{
			func() clocks.Clock {
				return clock
			},
			func() *clocks.Mock {
				return clock
			},
			func() states.Chance {
				return states.Fixed{}
			},
		}, defs...)...,
	)
}

func TestClearDeadline(t *testing.T) {
	testScope(t).Call(func(
		coordinator *Coordinator,
		session *sessions.Session,
		clock *clocks.Mock,
	) {
		session.Update(func(tx *sessions.Tx) {
			tx.SetText("Hello")
			tx.SetClearAt(tx.Now().Add(20 * time.Second))
		})

		clock.Advance(19 * time.Second)
		if wait := coordinator.Iterate(); wait != 250*time.Millisecond {
			t.Fatalf("got %v", wait)
		}
		if session.Snapshot().Text != "Hello" {
			t.Fatal("cleared early")
		}

		clock.Advance(time.Second)
		if wait := coordinator.Iterate(); wait != loops.Block {
			t.Fatalf("got %v", wait)
		}
		data := session.Snapshot()
		if data.Text != "" || !data.ClearAt.IsZero() {
			t.Fatalf("got %+v", data)
		}
	})
}

func TestDeadlineCoalescing(t *testing.T) {
	testScope(t).Call(func(
		coordinator *Coordinator,
		session *sessions.Session,
		clock *clocks.Mock,
	) {
		session.Update(func(tx *sessions.Tx) {
			tx.SetText("Hello")
			tx.SetClearAt(tx.Now().Add(time.Second))
			tx.SetStepAt(tx.Now().Add(time.Second))
		})
		clock.Advance(time.Second)

		coordinator.Iterate()
		data := session.Snapshot()
		if data.Text != "" || !data.ClearAt.IsZero() {
			t.Fatal("clear deadline not serviced")
		}
		if data.Step != 1 || !data.StepAt.IsZero() {
			t.Fatal("step deadline not serviced")
		}
	})
}

func TestWait(t *testing.T) {
	testScope(t).Call(func(
		coordinator *Coordinator,
		session *sessions.Session,
	) {
		if wait := coordinator.Iterate(); wait != loops.Block {
			t.Fatalf("got %v", wait)
		}

		session.Update(func(tx *sessions.Tx) {
			tx.SetStepAt(tx.Now().Add(100 * time.Millisecond))
		})
		if wait := coordinator.Iterate(); wait != 100*time.Millisecond {
			t.Fatalf("got %v", wait)
		}

		session.Update(func(tx *sessions.Tx) {
			tx.SetStepAt(tx.Now().Add(time.Minute))
			tx.SetClearAt(tx.Now().Add(50 * time.Millisecond))
		})
		if wait := coordinator.Iterate(); wait != 50*time.Millisecond {
			t.Fatalf("got %v", wait)
		}
	})
}

func armStep(session *sessions.Session) {
	session.Update(func(tx *sessions.Tx) {
		tx.SetStepAt(tx.Now())
	})
}

func TestStepWithinCycle(t *testing.T) {
	testScope(t).Call(func(
		coordinator *Coordinator,
		session *sessions.Session,
	) {
		for step := 1; step <= 3; step++ {
			armStep(session)
			coordinator.Iterate()
			data := session.Snapshot()
			if data.Step != step || data.State != states.Climb {
				t.Fatalf("got %+v", data)
			}
		}

		// cycle completes: climb defaults to sit_left
		armStep(session)
		coordinator.Iterate()
		data := session.Snapshot()
		if data.Step != 4 || data.State != states.SitLeft {
			t.Fatalf("got %+v", data)
		}
	})
}

func TestRewind(t *testing.T) {
	testScope(t).Call(func(
		coordinator *Coordinator,
		session *sessions.Session,
	) {
		session.Update(func(tx *sessions.Tx) {
			tx.SetState(states.SitLeft)
			tx.SetStep(5)
			tx.SetTargets([]states.State{states.RunLeft})
			tx.SetStepAt(tx.Now())
		})
		coordinator.Iterate()
		data := session.Snapshot()
		if data.Step != 8 {
			t.Fatalf("got %d", data.Step)
		}
		if data.State != states.RunLeft {
			t.Fatalf("got %s", data.State)
		}

		// run_left is not rewindable: finishes its cycle
		armStep(session)
		coordinator.Iterate()
		if data := session.Snapshot(); data.Step != 9 || data.State != states.RunLeft {
			t.Fatalf("got %+v", data)
		}
	})
}

func TestReachedTarget(t *testing.T) {
	testScope(t).Call(func(
		coordinator *Coordinator,
		session *sessions.Session,
	) {
		session.Update(func(tx *sessions.Tx) {
			tx.SetState(states.LookUpLeft)
			tx.SetStep(2)
			tx.SetTargets(states.LookUpStates)
		})

		armStep(session)
		coordinator.Iterate()
		if data := session.Snapshot(); len(data.Targets) != 1 {
			t.Fatal("cleared before the cycle ended")
		}

		armStep(session)
		coordinator.Iterate()
		data := session.Snapshot()
		if len(data.Targets) != 0 {
			t.Fatalf("got %v", data.Targets)
		}
		// no luck, no default: stays
		if data.State != states.LookUpLeft || data.Step != 4 {
			t.Fatalf("got %+v", data)
		}
	})
}

func TestUnreachableTarget(t *testing.T) {
	graph := states.MustNewGraph(map[states.State]states.Entry{
		states.Climb:   {Rules: states.Rules{Default: states.SitLeft}},
		states.SitLeft: {},
		states.Jump:    {Rules: states.Rules{Default: states.Climb}},
	})
	testScope(t, func() *states.Graph {
		return graph
	}).Call(func(
		coordinator *Coordinator,
		session *sessions.Session,
	) {
		session.Update(func(tx *sessions.Tx) {
			tx.SetStep(3)
			tx.SetTargets([]states.State{states.Jump})
			tx.SetStepAt(tx.Now())
		})
		coordinator.Iterate()
		data := session.Snapshot()
		// wandering proceeds, the target stays
		if data.State != states.SitLeft {
			t.Fatalf("got %s", data.State)
		}
		if !slices.Equal(data.Targets, []states.State{states.Jump}) {
			t.Fatalf("got %v", data.Targets)
		}
	})
}

func TestRunEscalatesPanics(t *testing.T) {
	session := sessions.New(clocks.NewMock(epoch), states.Climb)
	session.Update(func(tx *sessions.Tx) {
		tx.SetStep(3)
		tx.SetStepAt(tx.Now())
	})
	testScope(t).Call(func(
		coordinator *Coordinator,
	) {
		broken := *coordinator
		broken.session = session
		broken.graph = nil
		err := broken.Run(context.Background())
		var panicErr *loops.PanicError
		if !errors.As(err, &panicErr) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestRunStops(t *testing.T) {
	testScope(t).Call(func(
		coordinator *Coordinator,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error, 1)
		go func() {
			done <- coordinator.Run(ctx)
		}()
		cancel()
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	})
}
