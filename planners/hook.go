package planners

import (
	"context"
	"fmt"
	"time"

	"github.com/google/shlex"
	"github.com/reusee/catdraw/drawconfigs"
	"github.com/reusee/catdraw/logs"
	"github.com/reusee/catdraw/procs"
)

// HaltHook is called once, after the halt command has been applied
type HaltHook func()

func (Module) HaltHook(
	command drawconfigs.HaltCommand,
	delay drawconfigs.HaltDelay,
	logger logs.Logger,
) HaltHook {
	args, err := shlex.Split(string(command))
	if err != nil {
		panic(fmt.Errorf("halt command %q: %w", command, err))
	}
	if len(args) == 0 {
		return func() {}
	}
	return func() {
		go func() {
			logger.Info("halt hook",
				"command", args,
				"delay", time.Duration(delay),
			)
			if err := procs.Drive(context.Background(), procs.Procs[context.Context]{
				procs.Sleep(time.Duration(delay)),
				procs.Command(args),
			}); err != nil {
				logger.Error("halt hook", "error", err)
			}
		}()
	}
}
