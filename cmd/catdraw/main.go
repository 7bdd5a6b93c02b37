package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/reusee/catdraw/cmds"
	"github.com/reusee/catdraw/displays"
	"github.com/reusee/catdraw/drawconfigs"
	"github.com/reusee/catdraw/frames"
	"github.com/reusee/catdraw/logs"
	"github.com/reusee/catdraw/modes"
	"github.com/reusee/catdraw/nets"
	"github.com/reusee/catdraw/planners"
	"github.com/reusee/catdraw/protocols"
	"github.com/reusee/catdraw/timers"
	"github.com/reusee/dscope"
)

var noStdin = cmds.Switch("-no-stdin")

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		logger logs.Logger,
	) {
		err = run(ctx, scope)
		if err != nil {
			logger.Error("exit", "error", err)
		} else {
			logger.Info("exit")
		}
	})
	if err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, scope dscope.Scope) (err error) {
	scope.Call(func(
		logger logs.Logger,
		display displays.Display,
		input displays.Input,
		kind drawconfigs.DisplayKind,
		coordinator *timers.Coordinator,
		renderer *frames.Renderer,
		planner *planners.Planner,
		serve nets.Serve,
		socketDir drawconfigs.SocketDir,
		maxConns drawconfigs.MaxConns,
	) {
		// halting the display comes last, whatever happens
		defer func() {
			if err := display.Halt(); err != nil {
				logger.Error("halt display", "error", err)
			}
		}()

		path := protocols.SocketPath(string(socketDir), protocols.Cat)
		ln, e := nets.Listen(path, int(maxConns))
		if e != nil {
			err = e
			return
		}
		logger.Info("listening", "path", path)

		ctx, cancel := context.WithCancelCause(ctx)
		defer cancel(nil)
		fatal := func(what string, err error) {
			if err != nil {
				cancel(fmt.Errorf("%s: %w", what, err))
			}
		}

		var wg sync.WaitGroup
		wg.Go(func() {
			fatal("timer", coordinator.Run(ctx))
		})
		wg.Go(func() {
			fatal("frame", renderer.Run(ctx))
		})
		wg.Go(func() {
			fatal("listener", serve(ctx, ln, func(ctx context.Context, conn net.Conn) error {
				return protocols.ReadLines(conn, planner.Plan)
			}))
		})

		switch {
		case kind == "terminal":
			wg.Go(func() {
				forwardInput(ctx, input, planner)
			})
		case !*noStdin:
			// blocking reads are not interruptible, the goroutine is left behind on exit
			go func() {
				if err := readStdin(ctx, planner, logger); err != nil {
					logger.Warn("stdin", "error", err)
				}
			}()
		}

		<-ctx.Done()
		wg.Wait()
		if cause := context.Cause(ctx); !errors.Is(cause, context.Canceled) {
			err = cause
		}
	})
	return
}

func forwardInput(ctx context.Context, input displays.Input, planner *planners.Planner) {
	for {
		select {
		case <-ctx.Done():
			return
		case line := <-input:
			planner.Plan(line)
		}
	}
}
