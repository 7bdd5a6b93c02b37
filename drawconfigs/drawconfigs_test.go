package drawconfigs

import (
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/reusee/catdraw/configs"
	"github.com/reusee/catdraw/modes"
	"github.com/reusee/dscope"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		loader configs.Loader,
		frameInterval FrameInterval,
		timerInterval TimerInterval,
		idleDelay IdleDelay,
		flushDelay FlushDelay,
		abortDelay AbortDelay,
		lowChance LowChance,
		fairChance FairChance,
		socketDir SocketDir,
		defaultText DefaultText,
		wishes Wishes,
		displayKind DisplayKind,
		initialState InitialState,
		graph Graph,
	) {
		paths, err := loader.Paths()
		if err != nil {
			t.Fatal(err)
		}
		if len(paths) != 0 {
			t.Fatalf("hermetic loader read %v", paths)
		}
		if time.Duration(frameInterval) != 500*time.Millisecond {
			t.Fatalf("got %v", frameInterval)
		}
		if time.Duration(timerInterval) != 250*time.Millisecond {
			t.Fatalf("got %v", timerInterval)
		}
		if time.Duration(idleDelay) != 180*time.Second {
			t.Fatalf("got %v", idleDelay)
		}
		if time.Duration(flushDelay) != 20*time.Second {
			t.Fatalf("got %v", flushDelay)
		}
		if time.Duration(abortDelay) != 120*time.Second {
			t.Fatalf("got %v", abortDelay)
		}
		if lowChance != 7 || fairChance != 1 {
			t.Fatalf("got %v %v", lowChance, fairChance)
		}
		if socketDir != "/tmp" {
			t.Fatalf("got %v", socketDir)
		}
		if defaultText != "You are beautiful" {
			t.Fatalf("got %v", defaultText)
		}
		if len(wishes) != 25 || !slices.Contains(wishes, "One step at a time") {
			t.Fatalf("got %v", wishes)
		}
		if displayKind != "epaper" {
			t.Fatalf("got %v", displayKind)
		}
		if initialState != "cat_climb" {
			t.Fatalf("got %v", initialState)
		}
		if len(graph) != 0 {
			t.Fatalf("got %v", graph)
		}
	})
}

func TestConfigFile(t *testing.T) {
	src := `
flush_delay: "30s"
low_chance: 3
socket_dir: "/run/cat"
display: "terminal"
wishes: ["Nap time"]
graph: {
	cat_sit_left: {
		low: ["cat_run_left"]
	}
	cat_run_left: {
		default: "cat_sit_left"
	}
	cat_sleep_left: {
		alias: "cat_sit_left"
	}
}
`
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewSourceLoader("catdraw.cue", src, Schema())),
	).Call(func(
		flushDelay FlushDelay,
		lowChance LowChance,
		socketDir SocketDir,
		displayKind DisplayKind,
		wishes Wishes,
		graph Graph,
	) {
		if time.Duration(flushDelay) != 30*time.Second {
			t.Fatalf("got %v", flushDelay)
		}
		if lowChance != 3 {
			t.Fatalf("got %v", lowChance)
		}
		if socketDir != "/run/cat" {
			t.Fatalf("got %v", socketDir)
		}
		if displayKind != "terminal" {
			t.Fatalf("got %v", displayKind)
		}
		if len(wishes) != 1 || wishes[0] != "Nap time" {
			t.Fatalf("got %v", wishes)
		}
		if len(graph) != 3 {
			t.Fatalf("got %v", graph)
		}
		if rules := graph["cat_sit_left"]; len(rules.Low) != 1 || rules.Low[0] != "cat_run_left" {
			t.Fatalf("got %+v", rules)
		}
		if rules := graph["cat_sleep_left"]; rules.Alias != "cat_sit_left" {
			t.Fatalf("got %+v", rules)
		}
	})
}

func TestFlagPrecedence(t *testing.T) {
	dir := "/var/run/cat"
	*socketDirFlag = &dir
	defer func() {
		*socketDirFlag = nil
	}()
	loader := configs.NewSourceLoader("catdraw.cue", `socket_dir: "/run/cat"`, Schema())
	if got := (Module{}).SocketDir(loader); got != "/var/run/cat" {
		t.Fatalf("got %v", got)
	}

	// a zero flag still wins over the file
	zero := 0
	*lowChanceFlag = &zero
	defer func() {
		*lowChanceFlag = nil
	}()
	loader = configs.NewSourceLoader("catdraw.cue", `low_chance: 3`, Schema())
	if got := (Module{}).LowChance(loader); got != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestZeroSettings(t *testing.T) {
	src := `
low_chance: 0
fair_chance: 0
halt_delay: "0s"
idle_delay: "0s"
default_text: ""
`
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewSourceLoader("catdraw.cue", src, Schema())),
	).Call(func(
		lowChance LowChance,
		fairChance FairChance,
		haltDelay HaltDelay,
		idleDelay IdleDelay,
		defaultText DefaultText,
		flushDelay FlushDelay,
	) {
		if lowChance != 0 || fairChance != 0 {
			t.Fatalf("got %v %v", lowChance, fairChance)
		}
		if haltDelay != 0 || idleDelay != 0 {
			t.Fatalf("got %v %v", time.Duration(haltDelay), time.Duration(idleDelay))
		}
		if defaultText != "" {
			t.Fatalf("got %q", defaultText)
		}
		// unset keeps the default
		if time.Duration(flushDelay) != 20*time.Second {
			t.Fatalf("got %v", time.Duration(flushDelay))
		}
	})
}

func TestInvalidSettings(t *testing.T) {
	shouldPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			p := recover()
			if p == nil {
				t.Fatalf("%s: should panic", name)
			}
			if !strings.Contains(fmt.Sprint(p), name) {
				t.Fatalf("got %v", p)
			}
		}()
		fn()
	}
	empty := configs.NewSourceLoader("catdraw.cue", ``, Schema())

	negative := -1
	*lowChanceFlag = &negative
	shouldPanic("low_chance", func() {
		(Module{}).LowChance(empty)
	})
	*lowChanceFlag = nil

	zero := time.Duration(0)
	*timerIntervalFlag = &zero
	shouldPanic("timer_interval", func() {
		(Module{}).TimerInterval(empty)
	})
	*timerIntervalFlag = nil

	backwards := -time.Second
	*frameIntervalFlag = &backwards
	shouldPanic("frame_interval", func() {
		(Module{}).FrameInterval(empty)
	})
	*frameIntervalFlag = nil

	loader := configs.NewSourceLoader("catdraw.cue", `timer_interval: "0s"`, Schema())
	shouldPanic("timer_interval", func() {
		(Module{}).TimerInterval(loader)
	})
}

func TestSchemaRejects(t *testing.T) {
	for _, src := range []string{
		`flush_delay: "soon"`,
		`display: "crt"`,
		`low_chance: -1`,
		`colour: "black"`,
	} {
		loader := configs.NewSourceLoader("catdraw.cue", src, Schema())
		if _, err := loader.Paths(); err == nil {
			t.Fatalf("should reject %s", src)
		}
	}
}
