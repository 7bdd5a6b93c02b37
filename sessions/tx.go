package sessions

import (
	"slices"
	"time"

	"github.com/reusee/catdraw/clocks"
	"github.com/reusee/catdraw/states"
)

// Tx is the view of a session inside Update. Each setter records the wake
// signals it implies.
type Tx struct {
	data      *Data
	now       time.Time
	wakeTimer bool
	wakeFrame bool
}

var _ clocks.Clock = (*Tx)(nil)

// Now is the instant the bundle started. Deadlines armed in a bundle are
// relative to it, as in clocks.FromNow(tx, d).
func (t *Tx) Now() time.Time {
	return t.now
}

func (t *Tx) Data() Data {
	return t.data.clone()
}

func (t *Tx) touch() {
	t.data.UpdatedAt = t.now
}

func (t *Tx) SetText(text string) {
	t.touch()
	t.data.Text = text
	t.wakeFrame = true
}

func (t *Tx) SetBluetooth(status string) {
	t.touch()
	t.data.Bluetooth = status
	t.wakeFrame = true
}

func (t *Tx) SetNetwork(status string) {
	t.touch()
	t.data.Network = status
	t.wakeFrame = true
}

// Halt latches; there is no way back
func (t *Tx) Halt() {
	t.touch()
	t.data.Halted = true
	t.wakeFrame = true
}

func (t *Tx) SetTargets(targets []states.State) {
	t.touch()
	t.data.Targets = slices.Clone(targets)
	t.wakeTimer = true
	t.wakeFrame = true
}

func (t *Tx) SetState(state states.State) {
	t.data.State = state
	t.wakeFrame = true
}

func (t *Tx) SetStep(step int) {
	t.data.Step = step
	t.wakeFrame = true
}

// SetClearAt arms the clear deadline; the zero time disarms it
func (t *Tx) SetClearAt(at time.Time) {
	t.data.ClearAt = at
	t.wakeTimer = true
}

// SetStepAt arms the step deadline; the zero time disarms it
func (t *Tx) SetStepAt(at time.Time) {
	t.data.StepAt = at
	t.wakeTimer = true
}
