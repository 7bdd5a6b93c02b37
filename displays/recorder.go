package displays

import (
	"slices"
	"sync"
)

type CallKind string

const (
	CallRender CallKind = "render"
	CallFreeze CallKind = "freeze"
	CallHalt   CallKind = "halt"
)

type Call struct {
	Kind  CallKind
	Frame Frame
}

// Recorder keeps every call in memory
type Recorder struct {
	mu    sync.Mutex
	calls []Call
	// Err, if set, is returned by every call after recording it
	Err error
}

var _ Display = new(Recorder)

func (r *Recorder) record(call Call) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
	return r.Err
}

func (r *Recorder) Render(frame Frame) error {
	return r.record(Call{
		Kind:  CallRender,
		Frame: frame,
	})
}

func (r *Recorder) Freeze() error {
	return r.record(Call{
		Kind: CallFreeze,
	})
}

func (r *Recorder) Halt() error {
	return r.record(Call{
		Kind: CallHalt,
	})
}

func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

// Last returns the latest rendered frame
func (r *Recorder) Last() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.calls) - 1; i >= 0; i-- {
		if r.calls[i].Kind == CallRender {
			return r.calls[i].Frame, true
		}
	}
	return Frame{}, false
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
