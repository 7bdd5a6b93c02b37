package states

import (
	"fmt"

	"github.com/reusee/catdraw/drawconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs drawconfigs.Module
}

// Graph is the configured graph, or Cat
func (Module) Graph(
	override drawconfigs.Graph,
) *Graph {
	if len(override) == 0 {
		return MustNewGraph(Cat)
	}
	entries := make(map[State]Entry, len(override))
	for name, rules := range override {
		entries[State(name)] = Entry{
			Alias: State(rules.Alias),
			Rules: Rules{
				Default: State(rules.Default),
				Low:     toStates(rules.Low),
				Fair:    toStates(rules.Fair),
				Can:     toStates(rules.Can),
			},
		}
	}
	graph, err := NewGraph(entries)
	if err != nil {
		panic(fmt.Errorf("config graph: %w", err))
	}
	return graph
}

func toStates(names []string) []State {
	ret := make([]State, 0, len(names))
	for _, name := range names {
		ret = append(ret, State(name))
	}
	return ret
}

func (Module) Chance(
	low drawconfigs.LowChance,
	fair drawconfigs.FairChance,
) Chance {
	return Odds{
		LowN:  int(low),
		FairN: int(fair),
	}
}

// Initial is the state a session starts in
type Initial State

func (Module) Initial(
	graph *Graph,
	state drawconfigs.InitialState,
) Initial {
	if !graph.Has(State(state)) {
		panic(fmt.Errorf("%w: initial state %s", ErrUnknownState, state))
	}
	return Initial(state)
}
