package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModuleForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		got *testing.T,
		mode Mode,
	) {
		if got != nil {
			t.Fatal()
		}
		if mode != ModeProduction || mode.IsHermetic() {
			t.Fatal()
		}
	})
}
