package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest is hermetic: no config discovery, no journal, no hardware.
// T resolves to the running test.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	t.Helper()
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
