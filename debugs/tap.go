package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/catdraw/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

func globalsDict(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

func newThread(ctx context.Context, name string, logger logs.Logger) (*starlark.Thread, func() bool) {
	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			logger.InfoContext(ctx, msg, "thread", name)
		},
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	return thread, stop
}

// Tap opens a REPL on stdin with globals bound
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread, stop := newThread(ctx, "repl", logger)
		defer stop()
		thread.Print = nil // the REPL prints to stdout
		repl.REPLOptions(fileOptions, thread, globalsDict(globals))
	}
}

// Exec runs a script with globals bound and returns its top-level definitions
type Exec func(ctx context.Context, filename string, src any, globals map[string]any) (starlark.StringDict, error)

func (Module) Exec(
	logger logs.Logger,
) Exec {
	return func(ctx context.Context, filename string, src any, globals map[string]any) (starlark.StringDict, error) {
		thread, stop := newThread(ctx, filename, logger)
		defer stop()
		ret, err := starlark.ExecFileOptions(fileOptions, thread, filename, src, globalsDict(globals))
		if err != nil {
			return nil, wrap(err)
		}
		return ret, nil
	}
}
