package sessions

import (
	"github.com/reusee/catdraw/clocks"
	"github.com/reusee/catdraw/states"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Clocks clocks.Module
	States states.Module
}

func (Module) Session(
	clock clocks.Clock,
	initial states.Initial,
) *Session {
	return New(clock, states.State(initial))
}
