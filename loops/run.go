package loops

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"
)

// Block tells Run to wait for a wake with no timeout
const Block time.Duration = -1

// Iterate runs one pass of a scheduler and returns how long to wait before
// the next one
type Iterate func() (time.Duration, error)

// Run calls iterate until ctx is done. Between passes it waits for a wake,
// the returned duration, or, for Block, for a wake only. A panic or error
// ends the loop and is returned.
func Run(ctx context.Context, wake <-chan struct{}, iterate Iterate) error {
	timer := time.NewTimer(0)
	timer.Stop()
	defer timer.Stop()

	for {
		wait, err := protect(iterate)
		if err != nil {
			return err
		}

		var timeout <-chan time.Time
		if wait >= 0 {
			timer.Reset(wait)
			timeout = timer.C
		}

		select {
		case <-ctx.Done():
			return nil
		case <-wake:
		case <-timeout:
		}
		timer.Stop()
	}
}

// PanicError is a recovered panic with the stack that raised it
type PanicError struct {
	Value any
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n%s", p.Value, p.Stack)
}

func protect(iterate Iterate) (wait time.Duration, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &PanicError{
				Value: p,
				Stack: debug.Stack(),
			}
		}
	}()
	return iterate()
}
