package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/catdraw/cmds"
	"github.com/reusee/catdraw/logs"
	"github.com/reusee/catdraw/modes"
	"github.com/reusee/catdraw/sims"
	"github.com/reusee/catdraw/states"
	"github.com/reusee/dscope"
)

var (
	scriptFlag = cmds.Var[string]("script")
	replFlag   = cmds.Switch("repl")
	luckyFlag  = cmds.Switch("-lucky")
)

func main() {
	cmds.Execute(os.Args[1:])
	if *scriptFlag == "" && !*replFlag {
		fmt.Fprintln(os.Stderr, "nothing to do: script <file> or repl")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scope := dscope.New(
		new(sims.Module),
		modes.ForProduction(),
	)

	failed := false
	scope.Call(func(
		chance states.Chance,
		logger logs.Logger,
	) {
		if *luckyFlag {
			// every low and fair edge is taken
			chance = states.Fixed{
				LowOK:  true,
				FairOK: true,
			}
		}
		sim := sims.New(scope, chance)

		if *scriptFlag != "" {
			if err := sim.Script(ctx, *scriptFlag, nil); err != nil {
				logger.Error("script", "file", *scriptFlag, "error", err)
				failed = true
				return
			}
		}
		if *replFlag {
			sim.REPL(ctx)
		}
	})

	if failed {
		stop()
		os.Exit(1)
	}
}
