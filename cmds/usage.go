package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command pointer, print each command once
	names := make(map[*Command][]string)
	for name, command := range commands {
		names[command] = append(names[command], name)
	}
	var entries [][]string
	for _, list := range names {
		slices.Sort(list)
		entries = append(entries, list)
	}
	slices.SortFunc(entries, func(a, b []string) int {
		return strings.Compare(a[0], b[0])
	})

	indent := strings.Repeat("  ", depth)
	for _, list := range entries {
		command := commands[list[0]]
		line := indent + strings.Join(list, ", ")
		if command != nil && command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
		if command != nil && len(command.Subs) > 0 {
			writeCommands(w, command.Subs, depth+1)
		}
	}
}
