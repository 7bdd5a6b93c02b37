package sessions

import (
	"slices"
	"sync"
	"time"

	"github.com/reusee/catdraw/clocks"
	"github.com/reusee/catdraw/states"
)

// Data is everything the schedulers share. A zero time means unset.
type Data struct {
	State     states.State
	Step      int
	Targets   []states.State
	Text      string
	Bluetooth string
	Network   string
	ClearAt   time.Time
	StepAt    time.Time
	UpdatedAt time.Time
	Halted    bool
}

// Session owns Data. Mutations go through Update, one bundle at a time; the
// wake signals a bundle raises are sent after the lock is released.
type Session struct {
	clock     clocks.Clock
	mu        sync.Mutex
	data      Data
	timerWake chan struct{}
	frameWake chan struct{}
}

func New(clock clocks.Clock, initial states.State) *Session {
	return &Session{
		clock: clock,
		data: Data{
			State:     initial,
			UpdatedAt: clock.Now(),
		},
		timerWake: make(chan struct{}, 1),
		frameWake: make(chan struct{}, 1),
	}
}

func (s *Session) Clock() clocks.Clock {
	return s.clock
}

func (s *Session) Update(fn func(tx *Tx)) {
	tx := &Tx{
		data: &s.data,
		now:  s.clock.Now(),
	}
	s.mu.Lock()
	func() {
		defer s.mu.Unlock()
		fn(tx)
	}()
	if tx.wakeTimer {
		notify(s.timerWake)
	}
	if tx.wakeFrame {
		notify(s.frameWake)
	}
}

func (s *Session) Snapshot() Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.clone()
}

// TimerWake fires after any change the timer coordinator must look at
func (s *Session) TimerWake() <-chan struct{} {
	return s.timerWake
}

// FrameWake fires after any change that alters the picture
func (s *Session) FrameWake() <-chan struct{} {
	return s.frameWake
}

func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func (d Data) clone() Data {
	d.Targets = slices.Clone(d.Targets)
	return d
}
