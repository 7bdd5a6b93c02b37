package main

import (
	"github.com/reusee/catdraw/frames"
	"github.com/reusee/catdraw/planners"
	"github.com/reusee/catdraw/protocols"
	"github.com/reusee/catdraw/timers"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Planners  planners.Module
	Timers    timers.Module
	Frames    frames.Module
	Protocols protocols.Module
}
