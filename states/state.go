package states

// State is an animation pose; the value is also its sprite directory
type State string

const (
	Climb       State = "cat_climb"
	SitLeft     State = "cat_sit_left"
	LieDownLeft State = "cat_lie_down_left"
	SleepLeft   State = "cat_sleep_left"
	LookUpLeft  State = "cat_look_up_left"
	RunLeft     State = "cat_run_left"
	SitRight    State = "cat_sit_right"
	RunRight    State = "cat_run_right"
	Jump        State = "cat_jump"
)

// StepCount is the number of frames in every sprite cycle
const StepCount = 4

var (
	RunStates        = []State{RunLeft, RunRight}
	SleepStates      = []State{SleepLeft}
	LookUpStates     = []State{LookUpLeft}
	LieDownStates    = []State{LieDownLeft}
	RewindableStates = []State{SitLeft, LieDownLeft, SleepLeft, LookUpLeft, SitRight}
	HalfScreenStates = []State{SleepLeft, LieDownLeft}
)

// Frame returns the 1-based sprite frame for step
func Frame(step int) int {
	return step%StepCount + 1
}

// Cycled reports whether step shows the last frame of a cycle
func Cycled(step int) bool {
	return Frame(step) == StepCount
}

// RewindTarget is the first step of the next cycle
func RewindTarget(step int) int {
	return step + (StepCount - step%StepCount)
}
