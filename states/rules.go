package states

// Rules are the outgoing edges of one state
type Rules struct {
	Default State
	Low     []State
	Fair    []State
	Can     []State
}

// Neighbors lists every edge in search order
func (r Rules) Neighbors() []State {
	ret := make([]State, 0, 1+len(r.Low)+len(r.Fair)+len(r.Can))
	if r.Default != "" {
		ret = append(ret, r.Default)
	}
	ret = append(ret, r.Low...)
	ret = append(ret, r.Fair...)
	ret = append(ret, r.Can...)
	return ret
}

// Entry is a graph entry before alias resolution: either Alias or the rules
type Entry struct {
	Alias State
	Rules
}

func Alias(state State) Entry {
	return Entry{
		Alias: state,
	}
}
