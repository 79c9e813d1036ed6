package letalang

import (
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/leta/configs"
	"github.com/reusee/leta/logs"
	"github.com/reusee/leta/nets"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
	Nets    nets.Module
}

type MaxCallDepth int

func (Module) MaxCallDepth(
	loader configs.Loader,
) MaxCallDepth {
	if n := configs.First[int](loader, "max_call_depth"); n > 0 {
		return MaxCallDepth(n)
	}
	return DefaultMaxCallDepth
}

type NewInterpreter func(output io.Writer) *Interp

func (Module) NewInterpreter(
	logger logs.Logger,
	maxCallDepth MaxCallDepth,
	fetch FetchFunc,
) NewInterpreter {
	return func(output io.Writer) *Interp {
		return NewInterp(&Options{
			Output:       output,
			Logger:       logger,
			MaxCallDepth: int(maxCallDepth),
			Globals: map[string]Value{
				"fetch": (*NativeFunc)(fetch),
			},
		})
	}
}
