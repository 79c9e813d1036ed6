package letalang

type Callable interface {
	Name() string
	Arity() int
	Repr() string
	Call(in *Interp, args []Value) (Value, error)
}

// UserFunc is a closure: function code plus the scope instance that was
// live at its definition point. DefinitionEnv is captured by reference,
// never snapshotted, so all closures made in one invocation of an outer
// function alias the same slots.
type UserFunc struct {
	FuncName      string // empty until the function is named
	Params        []string
	Body          *BlockStmt
	DefinitionEnv *Env
}

var _ Callable = new(UserFunc)

func (u *UserFunc) Name() string {
	return u.FuncName
}

func (u *UserFunc) Arity() int {
	return len(u.Params)
}

func (u *UserFunc) Repr() string {
	if u.FuncName == "" {
		return "<fn>"
	}
	return "<fn " + u.FuncName + ">"
}

func (u *UserFunc) Call(in *Interp, args []Value) (Value, error) {
	// a fresh child of the captured scope, per call
	callEnv := u.DefinitionEnv.NewChild()
	for i, param := range u.Params {
		callEnv.Define(param, args[i])
	}

	val, returned, err := in.execBlock(u.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if !returned {
		return nil, nil
	}
	return val, nil
}
