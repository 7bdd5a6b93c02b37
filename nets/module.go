package nets

import (
	"github.com/reusee/catdraw/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
