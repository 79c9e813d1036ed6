package letalang

import (
	"strconv"
	"strings"
)

type Stmt interface {
	Position() Pos
	String() string
}

type Expr interface {
	Position() Pos
	String() string
}

type Program struct {
	Stmts []Stmt
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Stmts {
		sb.WriteString(s.String())
	}
	return sb.String()
}

type LetStmt struct {
	Pos   Pos
	Name  string
	Value Expr // nil means null
}

func (s *LetStmt) Position() Pos { return s.Pos }

func (s *LetStmt) String() string {
	if s.Value == nil {
		return "let " + s.Name + ";"
	}
	return "let " + s.Name + " = " + s.Value.String() + ";"
}

type FunctionStmt struct {
	Pos Pos
	Fn  *FunctionLit
}

func (s *FunctionStmt) Position() Pos { return s.Pos }

func (s *FunctionStmt) String() string { return s.Fn.String() }

type ReturnStmt struct {
	Pos   Pos
	Value Expr // nil means null
}

func (s *ReturnStmt) Position() Pos { return s.Pos }

func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}

type PrintStmt struct {
	Pos   Pos
	Value Expr
}

func (s *PrintStmt) Position() Pos { return s.Pos }

func (s *PrintStmt) String() string { return "print " + s.Value.String() + ";" }

type IfStmt struct {
	Pos  Pos
	Cond Expr
	Then Stmt
	Else Stmt // nil when absent
}

func (s *IfStmt) Position() Pos { return s.Pos }

func (s *IfStmt) String() string {
	str := "if (" + s.Cond.String() + ") " + s.Then.String()
	if s.Else != nil {
		str += " else " + s.Else.String()
	}
	return str
}

type WhileStmt struct {
	Pos  Pos
	Cond Expr
	Body Stmt
}

func (s *WhileStmt) Position() Pos { return s.Pos }

func (s *WhileStmt) String() string {
	return "while (" + s.Cond.String() + ") " + s.Body.String()
}

type ForStmt struct {
	Pos  Pos
	Init Stmt // nil when absent
	Cond Expr // nil when absent
	Post Expr // nil when absent
	Body Stmt
}

func (s *ForStmt) Position() Pos { return s.Pos }

func (s *ForStmt) String() string {
	var sb strings.Builder
	sb.WriteString("for (")
	if s.Init != nil {
		sb.WriteString(s.Init.String())
	} else {
		sb.WriteString(";")
	}
	sb.WriteString(" ")
	if s.Cond != nil {
		sb.WriteString(s.Cond.String())
	}
	sb.WriteString("; ")
	if s.Post != nil {
		sb.WriteString(s.Post.String())
	}
	sb.WriteString(") ")
	sb.WriteString(s.Body.String())
	return sb.String()
}

type BlockStmt struct {
	Pos   Pos
	Stmts []Stmt
}

func (s *BlockStmt) Position() Pos { return s.Pos }

func (s *BlockStmt) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, st := range s.Stmts {
		sb.WriteString(st.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}

type ExprStmt struct {
	Pos   Pos
	Value Expr
}

func (s *ExprStmt) Position() Pos { return s.Pos }

func (s *ExprStmt) String() string { return s.Value.String() + ";" }

type NumberLit struct {
	Pos   Pos
	Value float64
}

func (e *NumberLit) Position() Pos { return e.Pos }

func (e *NumberLit) String() string {
	return strconv.FormatFloat(e.Value, 'f', -1, 64)
}

type StringLit struct {
	Pos   Pos
	Value string
}

func (e *StringLit) Position() Pos { return e.Pos }

func (e *StringLit) String() string { return strconv.Quote(e.Value) }

type BoolLit struct {
	Pos   Pos
	Value bool
}

func (e *BoolLit) Position() Pos { return e.Pos }

func (e *BoolLit) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

type NullLit struct {
	Pos Pos
}

func (e *NullLit) Position() Pos { return e.Pos }

func (e *NullLit) String() string { return "null" }

type Ident struct {
	Pos  Pos
	Name string
}

func (e *Ident) Position() Pos { return e.Pos }

func (e *Ident) String() string { return e.Name }

type AssignExpr struct {
	Pos   Pos
	Name  string
	Value Expr
}

func (e *AssignExpr) Position() Pos { return e.Pos }

func (e *AssignExpr) String() string {
	return "(" + e.Name + " = " + e.Value.String() + ")"
}

type PrefixExpr struct {
	Pos   Pos
	Op    string
	Right Expr
}

func (e *PrefixExpr) Position() Pos { return e.Pos }

func (e *PrefixExpr) String() string {
	return "(" + e.Op + e.Right.String() + ")"
}

type InfixExpr struct {
	Pos   Pos
	Op    string
	Left  Expr
	Right Expr
}

func (e *InfixExpr) Position() Pos { return e.Pos }

func (e *InfixExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op + " " + e.Right.String() + ")"
}

type CallExpr struct {
	Pos    Pos
	Callee Expr
	Args   []Expr
}

func (e *CallExpr) Position() Pos { return e.Pos }

func (e *CallExpr) String() string {
	args := make([]string, 0, len(e.Args))
	for _, a := range e.Args {
		args = append(args, a.String())
	}
	return e.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

type FunctionLit struct {
	Pos    Pos
	Name   string // empty for anonymous functions
	Params []string
	Body   *BlockStmt
}

func (e *FunctionLit) Position() Pos { return e.Pos }

func (e *FunctionLit) String() string {
	str := "function"
	if e.Name != "" {
		str += " " + e.Name
	}
	return str + "(" + strings.Join(e.Params, ", ") + ") " + e.Body.String()
}
