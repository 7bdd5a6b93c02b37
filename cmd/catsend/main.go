package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/catdraw/cmds"
	"github.com/reusee/catdraw/logs"
	"github.com/reusee/catdraw/modes"
	"github.com/reusee/catdraw/protocols"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var (
	toFlag   = cmds.Var[string]("to")
	lineFlag = cmds.Var[string]("line")
)

func init() {
	cmds.Define("roles", cmds.Func(func() {
		for _, role := range protocols.Roles {
			fmt.Println(role)
		}
		os.Exit(0)
	}).Desc("list peer roles"))
}

func main() {
	cmds.Execute(os.Args[1:])

	role := protocols.Cat
	if *toFlag != "" {
		var err error
		role, err = protocols.ParseRole(*toFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	ctx := context.Background()
	failed := false
	dscope.New(
		new(protocols.Module),
		modes.ForProduction(),
	).Call(func(
		send protocols.Send,
		logger logs.Logger,
	) {
		sendLine := func(line string) {
			if err := send(ctx, role, line); err != nil {
				logger.Error("send", "role", role, "line", line, "error", err)
				failed = true
			}
		}

		switch {
		case *lineFlag != "":
			sendLine(*lineFlag)
		case term.IsTerminal(int(os.Stdin.Fd())):
			prompt(role, sendLine)
		default:
			if err := protocols.ReadLines(os.Stdin, sendLine); err != nil {
				logger.Error("stdin", "error", err)
				failed = true
			}
		}
	})

	if failed {
		os.Exit(1)
	}
}

func prompt(role protocols.Role, sendLine func(string)) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".catsend_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      string(role) + "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		for _, l := range protocols.Lines(line) {
			sendLine(l)
		}
	}
}
