package planners

import (
	"github.com/reusee/catdraw/sessions"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Sessions sessions.Module
}
