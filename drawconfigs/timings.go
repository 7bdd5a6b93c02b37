package drawconfigs

import (
	"time"

	"github.com/reusee/catdraw/cmds"
	"github.com/reusee/catdraw/configs"
)

// FrameInterval is the cadence of frame requests while animating
type FrameInterval time.Duration

func (FrameInterval) ConfigExpr() string {
	return "frame_interval"
}

var frameIntervalFlag = cmds.Var[*time.Duration]("-frame-interval")

func (Module) FrameInterval(
	loader configs.Loader,
) FrameInterval {
	return positive(resolveDuration[FrameInterval](loader, *frameIntervalFlag, 500*time.Millisecond))
}

// TimerInterval is the polling tick of the timer coordinator while a deadline is pending
type TimerInterval time.Duration

func (TimerInterval) ConfigExpr() string {
	return "timer_interval"
}

var timerIntervalFlag = cmds.Var[*time.Duration]("-timer-interval")

func (Module) TimerInterval(
	loader configs.Loader,
) TimerInterval {
	return positive(resolveDuration[TimerInterval](loader, *timerIntervalFlag, 250*time.Millisecond))
}

// IdleDelay is the inactivity after which a sleeping cat freezes the display
type IdleDelay time.Duration

func (IdleDelay) ConfigExpr() string {
	return "idle_delay"
}

var idleDelayFlag = cmds.Var[*time.Duration]("-idle-delay")

func (Module) IdleDelay(
	loader configs.Loader,
) IdleDelay {
	return resolveDuration[IdleDelay](loader, *idleDelayFlag, 180*time.Second)
}

// FlushDelay is how long flushed text stays
type FlushDelay time.Duration

func (FlushDelay) ConfigExpr() string {
	return "flush_delay"
}

func (Module) FlushDelay(
	loader configs.Loader,
) FlushDelay {
	return resolveDuration[FlushDelay](loader, nil, 20*time.Second)
}

// AbortDelay is how long drawn text stays
type AbortDelay time.Duration

func (AbortDelay) ConfigExpr() string {
	return "abort_delay"
}

func (Module) AbortDelay(
	loader configs.Loader,
) AbortDelay {
	return resolveDuration[AbortDelay](loader, nil, 120*time.Second)
}

// HaltDelay is the wait between halting and running the halt command
type HaltDelay time.Duration

func (HaltDelay) ConfigExpr() string {
	return "halt_delay"
}

func (Module) HaltDelay(
	loader configs.Loader,
) HaltDelay {
	return resolveDuration[HaltDelay](loader, nil, 3*time.Second)
}
