package displays

import "github.com/reusee/catdraw/syncs"

// Serial keeps at most one call in flight on the wrapped display
type Serial struct {
	display Display
	sem     syncs.Semaphore
}

var _ Display = new(Serial)

func NewSerial(display Display) *Serial {
	return &Serial{
		display: display,
		sem:     syncs.NewSemaphore(1),
	}
}

func (s *Serial) Render(frame Frame) error {
	return s.sem.Do(func() error {
		return s.display.Render(frame)
	})
}

func (s *Serial) Freeze() error {
	return s.sem.Do(s.display.Freeze)
}

func (s *Serial) Halt() error {
	return s.sem.Do(s.display.Halt)
}
