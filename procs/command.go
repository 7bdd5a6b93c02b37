package procs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Sleep waits for d, or fails when ctx is done first
func Sleep(d time.Duration) Proc[context.Context] {
	return Func[context.Context](func(ctx context.Context) (Proc[context.Context], error) {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, wrap(ctx.Err())
		case <-timer.C:
			return nil, nil
		}
	})
}

// Command runs a program. It fails on a non-zero exit or on any output to
// stderr.
func Command(args []string) Proc[context.Context] {
	return Func[context.Context](func(ctx context.Context) (Proc[context.Context], error) {
		if len(args) == 0 {
			return nil, nil
		}
		cmd := exec.CommandContext(ctx, args[0], args[1:]...)
		stderr := new(bytes.Buffer)
		cmd.Stderr = stderr
		if err := cmd.Run(); err != nil {
			return nil, wrap(fmt.Errorf("%s: %w: %s", args[0], err, strings.TrimSpace(stderr.String())))
		}
		if stderr.Len() > 0 {
			return nil, wrap(fmt.Errorf("%s: %s", args[0], strings.TrimSpace(stderr.String())))
		}
		return nil, nil
	})
}
