package protocols

import (
	"github.com/reusee/catdraw/drawconfigs"
	"github.com/reusee/catdraw/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Nets    nets.Module
	Configs drawconfigs.Module
}
