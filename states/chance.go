package states

import "math/rand/v2"

// Chance runs the independent trials of wander mode
type Chance interface {
	Low() bool
	Fair() bool
}

// Odds takes a trial with probability 1/(n+1)
type Odds struct {
	LowN  int
	FairN int
}

var _ Chance = Odds{}

func (o Odds) Low() bool {
	return rand.IntN(o.LowN+1) == 0
}

func (o Odds) Fair() bool {
	return rand.IntN(o.FairN+1) == 0
}

// Fixed always returns the same outcomes
type Fixed struct {
	LowOK  bool
	FairOK bool
}

var _ Chance = Fixed{}

func (f Fixed) Low() bool {
	return f.LowOK
}

func (f Fixed) Fair() bool {
	return f.FairOK
}

// Sequence replays outcomes in order, then reports false
type Sequence struct {
	Outcomes []bool
}

var _ Chance = new(Sequence)

func (s *Sequence) next() bool {
	if len(s.Outcomes) == 0 {
		return false
	}
	ret := s.Outcomes[0]
	s.Outcomes = s.Outcomes[1:]
	return ret
}

func (s *Sequence) Low() bool {
	return s.next()
}

func (s *Sequence) Fair() bool {
	return s.next()
}
