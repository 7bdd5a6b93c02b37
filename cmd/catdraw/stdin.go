package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"
	"github.com/reusee/catdraw/logs"
	"github.com/reusee/catdraw/planners"
	"github.com/reusee/catdraw/protocols"
	"golang.org/x/term"
)

// readStdin plans lines from stdin: a prompt with history on a terminal,
// plain lines otherwise
func readStdin(ctx context.Context, planner *planners.Planner, logger logs.Logger) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return protocols.ReadLines(os.Stdin, planner.Plan)
	}

	line := liner.NewLiner()
	defer line.Close()
	// restore the terminal even if Prompt is still blocked
	stop := context.AfterFunc(ctx, func() {
		line.Close()
	})
	defer stop()
	line.SetCtrlCAborts(true)

	historyPath := ""
	if dir, err := os.UserConfigDir(); err == nil {
		historyPath = filepath.Join(dir, "catdraw", "history")
		if f, err := os.Open(historyPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	for ctx.Err() == nil {
		input, err := line.Prompt("cat> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			p, err := os.FindProcess(os.Getpid())
			if err != nil {
				return err
			}
			return p.Signal(os.Interrupt)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line.AppendHistory(input)
		if historyPath != "" {
			if err := writeHistory(line, historyPath); err != nil {
				logger.Warn("write history", "error", err)
			}
		}

		for _, l := range protocols.Lines(input) {
			planner.Plan(l)
		}
	}
	return nil
}

func writeHistory(line *liner.State, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = line.WriteHistory(f)
	return err
}
