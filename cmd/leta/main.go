package main

import (
	"context"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/leta/cmds"
	"github.com/reusee/leta/configs"
	"github.com/reusee/leta/debugs"
	"github.com/reusee/leta/letalang"
	"github.com/reusee/leta/logs"
	"github.com/reusee/leta/modes"
	"github.com/reusee/leta/vars"
)

var (
	filePath = cmds.Var[string]("run")
	replFlag = cmds.Switch("repl")
	tapFlag  = cmds.Switch("-tap")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		loader configs.Loader,
		newInterpreter letalang.NewInterpreter,
		newSpan logs.NewSpan,
		tap debugs.Tap,
	) {

		ctx, _ = newSpan(ctx, "")

		interp := newInterpreter(os.Stdout)

		if *replFlag {
			runREPL(
				interp,
				configs.First[string](loader, "repl_prompt"),
				configs.First[string](loader, "history_file"),
			)
			return
		}

		var src *letalang.Source
		if *filePath != "" {
			content, err := os.ReadFile(*filePath)
			ce(err)
			src = letalang.NewSource(*filePath, string(content))
		} else {
			content, err := io.ReadAll(os.Stdin)
			ce(err)
			src = letalang.NewSource("stdin", string(content))
		}

		logger.Debug("run",
			"source", src.Name,
			"bytes", len(src.Content),
		)

		_, err := interp.Run(src)
		if err != nil {
			err = logs.WrapSpan(ctx, err)
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(1)
		}

		if *tapFlag {
			tap(ctx, vars.FirstNonZero(src.Name, "program"), interp.Globals.Bindings())
		}

	})

}
