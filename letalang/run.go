package letalang

import "time"

// Run parses and executes a whole source file in the interpreter's
// global scope. The returned value is the value of the last top-level
// expression statement, or the value of a top-level return.
func (in *Interp) Run(src *Source) (Value, error) {
	t0 := time.Now()
	if in.logger != nil {
		defer func() {
			in.logger.Debug("run",
				"source", src.Name,
				"duration", time.Since(t0),
			)
		}()
	}

	prog, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return in.RunProgram(prog)
}

func (in *Interp) RunProgram(prog *Program) (Value, error) {
	var last Value
	for _, stmt := range prog.Stmts {
		val, returned, err := in.execStmt(stmt, in.Globals)
		if err != nil {
			return nil, err
		}
		if returned {
			return val, nil
		}
		if _, ok := stmt.(*ExprStmt); ok {
			last = val
		}
	}
	return last, nil
}

// Eval runs one chunk against the persistent global scope. Used by the
// REPL so definitions survive across lines.
func (in *Interp) Eval(name string, code string) (Value, error) {
	return in.Run(NewSource(name, code))
}
