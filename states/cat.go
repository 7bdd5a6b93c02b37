package states

// Cat is the built-in graph
var Cat = map[State]Entry{
	Climb: {Rules: Rules{
		Default: SitLeft,
	}},
	SitLeft: {Rules: Rules{
		Low: []State{LieDownLeft, RunLeft},
		Can: []State{LookUpLeft},
	}},
	LieDownLeft: {Rules: Rules{
		Low: []State{SleepLeft, SitLeft},
	}},
	SleepLeft: {Rules: Rules{
		Low: []State{LieDownLeft},
	}},
	LookUpLeft: {Rules: Rules{
		Low: []State{SitLeft},
	}},
	RunLeft: {Rules: Rules{
		Default: SitRight,
	}},
	SitRight: {Rules: Rules{
		Low: []State{RunRight, Jump},
	}},
	RunRight: {Rules: Rules{
		Default: SitLeft,
	}},
	Jump: {Rules: Rules{
		Default: Climb,
	}},
}
