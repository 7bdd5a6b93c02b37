package clocks

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

func (Module) Clock() Clock {
	return Real{}
}
