package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
)

// IsHermetic reports whether the process must not touch host state such as
// config files in /etc or hardware buses
func (m Mode) IsHermetic() bool {
	return m != ModeProduction
}

// ModuleForProduction is used by the commands. Config discovery and the
// journal are enabled and no test is attached.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

func (ModuleForProduction) T() *testing.T {
	return nil
}
