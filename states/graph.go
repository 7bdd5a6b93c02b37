package states

import (
	"fmt"
	"slices"
	"sort"
)

// Graph is an alias-free state graph
type Graph struct {
	rules map[State]Rules
}

// NewGraph resolves aliases and checks that every edge leads to a known state
func NewGraph(entries map[State]Entry) (*Graph, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyGraph
	}

	resolved := make(map[State]Rules, len(entries))
	for state := range entries {
		seen := []State{state}
		entry := entries[state]
		for entry.Alias != "" {
			if slices.Contains(seen, entry.Alias) {
				return nil, fmt.Errorf("%w: %v", ErrAliasCycle, append(seen, entry.Alias))
			}
			next, ok := entries[entry.Alias]
			if !ok {
				return nil, fmt.Errorf("%w: %s aliases %s", ErrUnknownState, seen[len(seen)-1], entry.Alias)
			}
			seen = append(seen, entry.Alias)
			entry = next
		}
		resolved[state] = entry.Rules
	}

	for state, rules := range resolved {
		for _, target := range rules.Neighbors() {
			if _, ok := resolved[target]; !ok {
				return nil, fmt.Errorf("%w: %s leads to %s", ErrUnknownState, state, target)
			}
		}
	}

	return &Graph{
		rules: resolved,
	}, nil
}

func MustNewGraph(entries map[State]Entry) *Graph {
	graph, err := NewGraph(entries)
	if err != nil {
		panic(err)
	}
	return graph
}

func (g *Graph) Has(state State) bool {
	_, ok := g.rules[state]
	return ok
}

func (g *Graph) Rules(state State) Rules {
	return g.rules[state]
}

// States lists the states in name order
func (g *Graph) States() []State {
	ret := make([]State, 0, len(g.rules))
	for state := range g.rules {
		ret = append(ret, state)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i] < ret[j]
	})
	return ret
}

// Path returns the shortest path of at least one hop from `from` to any of
// targets, including both ends, or nil
func (g *Graph) Path(from State, targets []State) []State {
	type item struct {
		state State
		path  []State
	}
	queue := []item{{from, []State{from}}}
	visited := make(map[State]bool)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if len(cur.path) > 1 && slices.Contains(targets, cur.state) {
			return cur.path
		}

		if visited[cur.state] {
			continue
		}
		visited[cur.state] = true
		for _, next := range g.rules[cur.state].Neighbors() {
			if visited[next] {
				continue
			}
			path := make([]State, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			queue = append(queue, item{next, append(path, next)})
		}
	}
	return nil
}

// Advance picks the state after current. With targets it takes one hop along
// the shortest path; ok is false when no target is reachable, and the wander
// rules apply instead.
func (g *Graph) Advance(current State, targets []State, chance Chance) (next State, ok bool) {
	ok = true
	if len(targets) > 0 {
		if path := g.Path(current, targets); len(path) >= 2 {
			return path[1], true
		}
		ok = false
	}

	rules := g.rules[current]
	for _, state := range rules.Low {
		if chance.Low() {
			return state, ok
		}
	}
	for _, state := range rules.Fair {
		if chance.Fair() {
			return state, ok
		}
	}
	if rules.Default != "" {
		return rules.Default, ok
	}
	return current, ok
}
