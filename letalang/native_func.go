package letalang

type NativeFunc struct {
	FuncName  string
	NumParams int
	Func      func(in *Interp, args []Value) (Value, error)
}

var _ Callable = new(NativeFunc)

func (n *NativeFunc) Name() string {
	return n.FuncName
}

func (n *NativeFunc) Arity() int {
	return n.NumParams
}

func (n *NativeFunc) Repr() string {
	return "<native fn " + n.FuncName + ">"
}

func (n *NativeFunc) Call(in *Interp, args []Value) (Value, error) {
	return n.Func(in, args)
}
