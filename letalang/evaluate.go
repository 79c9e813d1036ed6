package letalang

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

const DefaultMaxCallDepth = 10000

type Options struct {
	Output       io.Writer        // if nil, defaults to os.Stdout
	Logger       *slog.Logger     // if nil, logging is disabled
	MaxCallDepth int              // if 0, defaults to DefaultMaxCallDepth
	Globals      map[string]Value // extra global bindings
}

type Interp struct {
	Output  io.Writer
	Globals *Env

	logger       *slog.Logger
	maxCallDepth int
	depth        int
}

func NewInterp(options *Options) *Interp {
	if options == nil {
		options = &Options{}
	}

	in := &Interp{
		Output:       options.Output,
		Globals:      &Env{},
		logger:       options.Logger,
		maxCallDepth: options.MaxCallDepth,
	}
	if in.Output == nil {
		in.Output = os.Stdout
	}
	if in.maxCallDepth == 0 {
		in.maxCallDepth = DefaultMaxCallDepth
	}

	DefineStdlib(in.Globals)
	for name, val := range options.Globals {
		in.Globals.Define(name, val)
	}

	return in
}

// execStmt executes one statement. returned reports that a return
// statement fired; val carries the return value, or the value of an
// expression statement.
func (in *Interp) execStmt(stmt Stmt, env *Env) (val Value, returned bool, err error) {
	switch stmt := stmt.(type) {

	case *LetStmt:
		var val Value
		if stmt.Value != nil {
			val, err = in.evalExpr(stmt.Value, env)
			if err != nil {
				return nil, false, err
			}
		}
		nameFunc(val, stmt.Name)
		env.Define(stmt.Name, val)
		return nil, false, nil

	case *FunctionStmt:
		fn := &UserFunc{
			FuncName:      stmt.Fn.Name,
			Params:        stmt.Fn.Params,
			Body:          stmt.Fn.Body,
			DefinitionEnv: env,
		}
		env.Define(stmt.Fn.Name, fn)
		return nil, false, nil

	case *ReturnStmt:
		var val Value
		if stmt.Value != nil {
			val, err = in.evalExpr(stmt.Value, env)
			if err != nil {
				return nil, false, err
			}
		}
		return val, true, nil

	case *PrintStmt:
		val, err := in.evalExpr(stmt.Value, env)
		if err != nil {
			return nil, false, err
		}
		if _, err := fmt.Fprintln(in.Output, Repr(val)); err != nil {
			return nil, false, WithPos(err, stmt.Pos)
		}
		return nil, false, nil

	case *IfStmt:
		cond, err := in.evalExpr(stmt.Cond, env)
		if err != nil {
			return nil, false, err
		}
		if Truthy(cond) {
			return in.execStmt(stmt.Then, env)
		}
		if stmt.Else != nil {
			return in.execStmt(stmt.Else, env)
		}
		return nil, false, nil

	case *WhileStmt:
		for {
			cond, err := in.evalExpr(stmt.Cond, env)
			if err != nil {
				return nil, false, err
			}
			if !Truthy(cond) {
				return nil, false, nil
			}
			val, returned, err := in.execStmt(stmt.Body, env)
			if err != nil {
				return nil, false, err
			}
			if returned {
				return val, true, nil
			}
		}

	case *ForStmt:
		// the init clause lives in its own scope
		forEnv := env.NewChild()
		if stmt.Init != nil {
			if _, _, err := in.execStmt(stmt.Init, forEnv); err != nil {
				return nil, false, err
			}
		}
		for {
			if stmt.Cond != nil {
				cond, err := in.evalExpr(stmt.Cond, forEnv)
				if err != nil {
					return nil, false, err
				}
				if !Truthy(cond) {
					return nil, false, nil
				}
			}
			val, returned, err := in.execStmt(stmt.Body, forEnv)
			if err != nil {
				return nil, false, err
			}
			if returned {
				return val, true, nil
			}
			if stmt.Post != nil {
				if _, err := in.evalExpr(stmt.Post, forEnv); err != nil {
					return nil, false, err
				}
			}
		}

	case *BlockStmt:
		return in.execBlock(stmt, env.NewChild())

	case *ExprStmt:
		val, err := in.evalExpr(stmt.Value, env)
		if err != nil {
			return nil, false, err
		}
		return val, false, nil

	}

	return nil, false, WithPos(fmt.Errorf("unknown statement %T", stmt), stmt.Position())
}

// execBlock executes statements in the given env without opening a new
// scope; callers decide the scope.
func (in *Interp) execBlock(block *BlockStmt, env *Env) (val Value, returned bool, err error) {
	for _, stmt := range block.Stmts {
		val, returned, err = in.execStmt(stmt, env)
		if err != nil {
			return nil, false, err
		}
		if returned {
			return val, true, nil
		}
	}
	return nil, false, nil
}

func (in *Interp) evalExpr(expr Expr, env *Env) (Value, error) {
	switch expr := expr.(type) {

	case *NumberLit:
		return expr.Value, nil

	case *StringLit:
		return expr.Value, nil

	case *BoolLit:
		return expr.Value, nil

	case *NullLit:
		return nil, nil

	case *Ident:
		val, ok := env.Get(expr.Name)
		if !ok {
			return nil, WithPos(fmt.Errorf("undefined variable: %s", expr.Name), expr.Pos)
		}
		return val, nil

	case *AssignExpr:
		val, err := in.evalExpr(expr.Value, env)
		if err != nil {
			return nil, err
		}
		nameFunc(val, expr.Name)
		if !env.Assign(expr.Name, val) {
			return nil, WithPos(fmt.Errorf("undefined variable: %s", expr.Name), expr.Pos)
		}
		return val, nil

	case *PrefixExpr:
		right, err := in.evalExpr(expr.Right, env)
		if err != nil {
			return nil, err
		}
		switch expr.Op {
		case "-":
			num, ok := right.(float64)
			if !ok {
				return nil, WithPos(fmt.Errorf("cannot negate %s", TypeName(right)), expr.Pos)
			}
			return -num, nil
		case "!":
			return !Truthy(right), nil
		}
		return nil, WithPos(fmt.Errorf("unknown operator %q", expr.Op), expr.Pos)

	case *InfixExpr:
		return in.evalInfix(expr, env)

	case *CallExpr:
		return in.evalCall(expr, env)

	case *FunctionLit:
		return &UserFunc{
			FuncName:      expr.Name,
			Params:        expr.Params,
			Body:          expr.Body,
			DefinitionEnv: env,
		}, nil

	}

	return nil, WithPos(fmt.Errorf("unknown expression %T", expr), expr.Position())
}

func (in *Interp) evalInfix(expr *InfixExpr, env *Env) (Value, error) {
	left, err := in.evalExpr(expr.Left, env)
	if err != nil {
		return nil, err
	}

	// short-circuit
	switch expr.Op {
	case "&&":
		if !Truthy(left) {
			return false, nil
		}
		right, err := in.evalExpr(expr.Right, env)
		if err != nil {
			return nil, err
		}
		return Truthy(right), nil
	case "||":
		if Truthy(left) {
			return true, nil
		}
		right, err := in.evalExpr(expr.Right, env)
		if err != nil {
			return nil, err
		}
		return Truthy(right), nil
	}

	right, err := in.evalExpr(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case "==":
		return Equal(left, right), nil
	case "!=":
		return !Equal(left, right), nil
	}

	if expr.Op == "+" {
		if l, ok := left.(string); ok {
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
	}

	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return nil, WithPos(fmt.Errorf(
			"unsupported operands for %s: %s and %s",
			expr.Op, TypeName(left), TypeName(right),
		), expr.Pos)
	}

	switch expr.Op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		return l / r, nil
	case "<":
		return l < r, nil
	case "<=":
		return l <= r, nil
	case ">":
		return l > r, nil
	case ">=":
		return l >= r, nil
	}

	return nil, WithPos(fmt.Errorf("unknown operator %q", expr.Op), expr.Pos)
}

func (in *Interp) evalCall(expr *CallExpr, env *Env) (Value, error) {
	calleeVal, err := in.evalExpr(expr.Callee, env)
	if err != nil {
		return nil, err
	}

	callee, ok := calleeVal.(Callable)
	if !ok {
		return nil, WithPos(fmt.Errorf("can only call functions, got %s", TypeName(calleeVal)), expr.Pos)
	}

	args := make([]Value, 0, len(expr.Args))
	for _, argExpr := range expr.Args {
		arg, err := in.evalExpr(argExpr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	if len(args) != callee.Arity() {
		return nil, WithPos(fmt.Errorf(
			"expected %d arguments but got %d",
			callee.Arity(), len(args),
		), expr.Pos)
	}

	if in.depth >= in.maxCallDepth {
		return nil, WithPos(fmt.Errorf("max call depth exceeded"), expr.Pos)
	}
	in.depth++
	defer func() {
		in.depth--
	}()

	if in.logger != nil {
		in.logger.Debug("call",
			"fn", callee.Repr(),
			"depth", in.depth,
		)
	}

	val, err := callee.Call(in, args)
	if err != nil {
		return nil, WithPos(err, expr.Pos)
	}
	return val, nil
}

// nameFunc names an anonymous function after the variable it is first
// bound to, so reprs stay useful.
func nameFunc(val Value, name string) {
	if fn, ok := val.(*UserFunc); ok && fn.FuncName == "" {
		fn.FuncName = name
	}
}
