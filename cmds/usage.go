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
	// aliases share the command pointer, print each command once
	names := make(map[*Command][]string)
	var order []*Command
	for name, command := range p.commands {
		if _, ok := names[command]; !ok {
			order = append(order, command)
		}
		names[command] = append(names[command], name)
	}
	for _, list := range names {
		slices.Sort(list)
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})
	for _, command := range order {
		writeCommand(w, strings.Join(names[command], ", "), command, 0)
	}
}

func writeCommand(w io.Writer, name string, command *Command, depth int) {
	indent := strings.Repeat("  ", depth)
	if command == nil {
		fmt.Fprintf(w, "%s%s\n", indent, name)
		return
	}
	if command.Description != "" {
		fmt.Fprintf(w, "%s%s\t%s\n", indent, name, command.Description)
	} else {
		fmt.Fprintf(w, "%s%s\n", indent, name)
	}
	subNames := make([]string, 0, len(command.Subs))
	for subName := range command.Subs {
		subNames = append(subNames, subName)
	}
	slices.Sort(subNames)
	for _, subName := range subNames {
		writeCommand(w, subName, command.Subs[subName], depth+1)
	}
}
