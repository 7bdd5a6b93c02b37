package states

import "errors"

var (
	ErrUnknownState = errors.New("unknown state")
	ErrAliasCycle   = errors.New("alias cycle")
	ErrEmptyGraph   = errors.New("empty graph")
)
