package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/catdraw/modes"
	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.With("component", "timer").Info("switched", "state", "cat_sit_left")
		out := buf.String()
		if !strings.Contains(out, "component=timer") ||
			!strings.Contains(out, "state=cat_sit_left") {
			t.Fatalf("got %s", out)
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("span.parent-id"); got != "SPAN_PARENT_ID" {
		t.Fatalf("got %s", got)
	}
}
