package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/leta/letalang"
)

func runREPL(interp *letalang.Interp, prompt string, historyFile string) {
	if prompt == "" {
		prompt = "> "
	}
	if historyFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".leta_history")
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if line == "" {
			continue
		}
		res, err := interp.Eval("repl", line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		} else if res != nil {
			fmt.Println(letalang.Repr(res))
		}
	}
}
