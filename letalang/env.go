package letalang

// Env is one lexical scope: a set of variable slots plus a link to the
// enclosing scope. Envs are heap records shared by reference; a closure
// holding an Env observes later writes to its slots.
type Env struct {
	Parent *Env
	Vars   map[string]Value
}

func (e *Env) Get(name string) (Value, bool) {
	if v, ok := e.Vars[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Define allocates or rebinds a slot in this scope only.
func (e *Env) Define(name string, val Value) {
	if e.Vars == nil {
		e.Vars = make(map[string]Value)
	}
	e.Vars[name] = val
}

// Assign writes the nearest slot named name, walking outward.
// Reports false when no enclosing scope defines it.
func (e *Env) Assign(name string, val Value) bool {
	if _, ok := e.Vars[name]; ok {
		e.Vars[name] = val
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, val)
	}
	return false
}

func (e *Env) NewChild() *Env {
	return &Env{
		Parent: e,
	}
}

// Bindings flattens the scope chain, innermost definitions winning.
func (e *Env) Bindings() map[string]Value {
	var envs []*Env
	for env := e; env != nil; env = env.Parent {
		envs = append(envs, env)
	}
	ret := make(map[string]Value)
	for i := len(envs) - 1; i >= 0; i-- {
		for name, val := range envs[i].Vars {
			ret[name] = val
		}
	}
	return ret
}
