package letalang

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

// DefineStdlib installs the native functions every program sees.
func DefineStdlib(env *Env) {

	env.Define("clock", &NativeFunc{
		FuncName: "clock",
		Func: func(in *Interp, args []Value) (Value, error) {
			return float64(time.Now().UnixMilli()) / 1000, nil
		},
	})

	env.Define("random", &NativeFunc{
		FuncName: "random",
		Func: func(in *Interp, args []Value) (Value, error) {
			return rand.Float64(), nil
		},
	})

	env.Define("len", &NativeFunc{
		FuncName:  "len",
		NumParams: 1,
		Func: func(in *Interp, args []Value) (Value, error) {
			str, ok := args[0].(string)
			if !ok {
				return nil, fmt.Errorf("len expects a string, got %s", TypeName(args[0]))
			}
			return float64(len(str)), nil
		},
	})

	env.Define("str", &NativeFunc{
		FuncName:  "str",
		NumParams: 1,
		Func: func(in *Interp, args []Value) (Value, error) {
			return Repr(args[0]), nil
		},
	})

	env.Define("num", &NativeFunc{
		FuncName:  "num",
		NumParams: 1,
		Func: func(in *Interp, args []Value) (Value, error) {
			switch v := args[0].(type) {
			case float64:
				return v, nil
			case string:
				n, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return nil, fmt.Errorf("cannot convert %q to number", v)
				}
				return n, nil
			}
			return nil, fmt.Errorf("cannot convert %s to number", TypeName(args[0]))
		},
	})

	env.Define("type", &NativeFunc{
		FuncName:  "type",
		NumParams: 1,
		Func: func(in *Interp, args []Value) (Value, error) {
			return TypeName(args[0]), nil
		},
	})

}
