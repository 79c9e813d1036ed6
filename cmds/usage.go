package cmds

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printed := make(map[*Command]bool)
	printCommands(p.commands, "", printed)
}

func printCommands(commands map[string]*Command, indent string, printed map[*Command]bool) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		command := commands[name]
		if command == nil || printed[command] {
			continue
		}
		printed[command] = true

		line := indent + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\n" + indent + "\t" + command.Description
		}
		fmt.Fprintln(os.Stdout, line)

		if len(command.Subs) > 0 {
			printCommands(command.Subs, indent+"\t", printed)
		}
	}
}
