package protocols

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrUndecodable = errors.New("undecodable line")

// Command is one decoded protocol line
type Command struct {
	Verb  string
	Value string
	// Bang is true for the `Verb!` form
	Bang bool
	Raw  string
}

var linePattern = regexp.MustCompile(`^([\p{L}\p{N}_\s]+)([:!])\s*(.*)$`)

// Parse decodes `Verb: value` and `Verb!` lines
func Parse(line string) (Command, error) {
	match := linePattern.FindStringSubmatch(line)
	if match == nil {
		return Command{
			Raw: line,
		}, fmt.Errorf("%w: %q", ErrUndecodable, line)
	}
	return Command{
		Verb:  match[1],
		Value: match[3],
		Bang:  match[2] == "!",
		Raw:   line,
	}, nil
}

// Format encodes a command; an empty value gives the `Verb!` form
func Format(verb string, value string) string {
	if value == "" {
		return verb + "!"
	}
	return verb + ": " + value
}

// Lines splits concatenated input into non-empty lines, in order
func Lines(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}
