package letalang

import (
	"fmt"
	"strconv"
)

// operator binding powers, lowest first
const (
	precLowest = iota
	precAssign
	precOr
	precAnd
	precEquals
	precCompare
	precSum
	precProduct
	precPrefix
	precCall
)

var operatorPrecs = map[string]int{
	"=":  precAssign,
	"||": precOr,
	"&&": precAnd,
	"==": precEquals,
	"!=": precEquals,
	"<":  precCompare,
	"<=": precCompare,
	">":  precCompare,
	">=": precCompare,
	"+":  precSum,
	"-":  precSum,
	"*":  precProduct,
	"/":  precProduct,
}

type Parser struct {
	tz   *Tokenizer
	cur  *Token
	peek *Token
}

func NewParser(source *Source) *Parser {
	p := &Parser{
		tz: NewTokenizer(source),
	}
	p.cur = p.tz.Next()
	p.peek = p.tz.Next()
	return p
}

func Parse(source *Source) (*Program, error) {
	return NewParser(source).ParseProgram()
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.tz.Next()
}

func (p *Parser) errorf(pos Pos, format string, args ...any) error {
	return WithPos(fmt.Errorf(format, args...), pos)
}

func (p *Parser) expectPunct(text string) error {
	if !p.cur.Is(TokenPunct, text) {
		return p.errorf(p.cur.Pos, "expected %q, got %q", text, p.cur.Text)
	}
	p.next()
	return nil
}

func (p *Parser) ParseProgram() (*Program, error) {
	prog := &Program{}
	for p.cur.Kind != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, nil
}

func (p *Parser) parseStatement() (Stmt, error) {
	switch {

	case p.cur.Is(TokenKeyword, "let"):
		return p.parseLet()

	case p.cur.Is(TokenKeyword, "function") && p.peek.Kind == TokenIdentifier:
		return p.parseFunctionStmt()

	case p.cur.Is(TokenKeyword, "return"):
		return p.parseReturn()

	case p.cur.Is(TokenKeyword, "print"):
		return p.parsePrint()

	case p.cur.Is(TokenKeyword, "if"):
		return p.parseIf()

	case p.cur.Is(TokenKeyword, "while"):
		return p.parseWhile()

	case p.cur.Is(TokenKeyword, "for"):
		return p.parseFor()

	case p.cur.Is(TokenPunct, "{"):
		return p.parseBlock()

	}

	pos := p.cur.Pos
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	p.endStatement()
	return &ExprStmt{Pos: pos, Value: expr}, nil
}

// endStatement consumes an optional terminating semicolon
func (p *Parser) endStatement() {
	if p.cur.Is(TokenPunct, ";") {
		p.next()
	}
}

func (p *Parser) parseLet() (Stmt, error) {
	pos := p.cur.Pos
	p.next()

	if p.cur.Kind != TokenIdentifier {
		return nil, p.errorf(p.cur.Pos, "expected variable name, got %q", p.cur.Text)
	}
	name := p.cur.Text
	p.next()

	var value Expr
	if p.cur.Is(TokenOperator, "=") {
		p.next()
		var err error
		value, err = p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
	}
	p.endStatement()

	return &LetStmt{Pos: pos, Name: name, Value: value}, nil
}

func (p *Parser) parseFunctionStmt() (Stmt, error) {
	pos := p.cur.Pos
	fn, err := p.parseFunctionLit()
	if err != nil {
		return nil, err
	}
	return &FunctionStmt{Pos: pos, Fn: fn.(*FunctionLit)}, nil
}

func (p *Parser) parseReturn() (Stmt, error) {
	pos := p.cur.Pos
	p.next()

	var value Expr
	if !p.cur.Is(TokenPunct, ";") && !p.cur.Is(TokenPunct, "}") && p.cur.Kind != TokenEOF {
		var err error
		value, err = p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
	}
	p.endStatement()

	return &ReturnStmt{Pos: pos, Value: value}, nil
}

func (p *Parser) parsePrint() (Stmt, error) {
	pos := p.cur.Pos
	p.next()

	value, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	p.endStatement()

	return &PrintStmt{Pos: pos, Value: value}, nil
}

func (p *Parser) parseIf() (Stmt, error) {
	pos := p.cur.Pos
	p.next()

	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	var alt Stmt
	if p.cur.Is(TokenKeyword, "else") {
		p.next()
		alt, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}

	return &IfStmt{Pos: pos, Cond: cond, Then: then, Else: alt}, nil
}

func (p *Parser) parseWhile() (Stmt, error) {
	pos := p.cur.Pos
	p.next()

	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &WhileStmt{Pos: pos, Cond: cond, Body: body}, nil
}

func (p *Parser) parseFor() (Stmt, error) {
	pos := p.cur.Pos
	p.next()

	if err := p.expectPunct("("); err != nil {
		return nil, err
	}

	var init Stmt
	var err error
	if p.cur.Is(TokenPunct, ";") {
		p.next()
	} else if p.cur.Is(TokenKeyword, "let") {
		// parseLet consumes the semicolon
		init, err = p.parseLet()
		if err != nil {
			return nil, err
		}
	} else {
		initPos := p.cur.Pos
		expr, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		init = &ExprStmt{Pos: initPos, Value: expr}
		if err := p.expectPunct(";"); err != nil {
			return nil, err
		}
	}

	var cond Expr
	if !p.cur.Is(TokenPunct, ";") {
		cond, err = p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}

	var post Expr
	if !p.cur.Is(TokenPunct, ")") {
		post, err = p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &ForStmt{Pos: pos, Init: init, Cond: cond, Post: post, Body: body}, nil
}

func (p *Parser) parseBlock() (*BlockStmt, error) {
	pos := p.cur.Pos
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}

	block := &BlockStmt{Pos: pos}
	for !p.cur.Is(TokenPunct, "}") {
		if p.cur.Kind == TokenEOF {
			return nil, p.errorf(p.cur.Pos, "unexpected end of input, expected %q", "}")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	p.next()

	return block, nil
}

func (p *Parser) curPrecedence() int {
	if p.cur.Kind == TokenOperator {
		return operatorPrecs[p.cur.Text]
	}
	if p.cur.Is(TokenPunct, "(") {
		return precCall
	}
	return precLowest
}

func (p *Parser) parseExpression(prec int) (Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for prec < p.curPrecedence() {
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parsePrefix() (Expr, error) {
	tok := p.cur

	switch tok.Kind {

	case TokenNumber:
		val, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, p.errorf(tok.Pos, "bad number %q", tok.Text)
		}
		p.next()
		return &NumberLit{Pos: tok.Pos, Value: val}, nil

	case TokenString:
		p.next()
		return &StringLit{Pos: tok.Pos, Value: tok.Text}, nil

	case TokenIdentifier:
		p.next()
		return &Ident{Pos: tok.Pos, Name: tok.Text}, nil

	case TokenKeyword:
		switch tok.Text {
		case "true", "false":
			p.next()
			return &BoolLit{Pos: tok.Pos, Value: tok.Text == "true"}, nil
		case "null":
			p.next()
			return &NullLit{Pos: tok.Pos}, nil
		case "function":
			return p.parseFunctionLit()
		}

	case TokenOperator:
		if tok.Text == "!" || tok.Text == "-" {
			p.next()
			right, err := p.parseExpression(precPrefix)
			if err != nil {
				return nil, err
			}
			return &PrefixExpr{Pos: tok.Pos, Op: tok.Text, Right: right}, nil
		}

	case TokenPunct:
		if tok.Text == "(" {
			p.next()
			expr, err := p.parseExpression(precLowest)
			if err != nil {
				return nil, err
			}
			if err := p.expectPunct(")"); err != nil {
				return nil, err
			}
			return expr, nil
		}

	case TokenInvalid:
		return nil, p.errorf(tok.Pos, "invalid token %q", tok.Text)

	case TokenEOF:
		return nil, p.errorf(tok.Pos, "unexpected end of input")
	}

	return nil, p.errorf(tok.Pos, "unexpected token %q", tok.Text)
}

func (p *Parser) parseInfix(left Expr) (Expr, error) {
	tok := p.cur

	if tok.Is(TokenPunct, "(") {
		return p.parseCall(left)
	}

	if tok.Is(TokenOperator, "=") {
		ident, ok := left.(*Ident)
		if !ok {
			return nil, p.errorf(tok.Pos, "invalid assignment target")
		}
		p.next()
		// right-associative
		value, err := p.parseExpression(precAssign - 1)
		if err != nil {
			return nil, err
		}
		return &AssignExpr{Pos: tok.Pos, Name: ident.Name, Value: value}, nil
	}

	prec := operatorPrecs[tok.Text]
	p.next()
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	return &InfixExpr{Pos: tok.Pos, Op: tok.Text, Left: left, Right: right}, nil
}

func (p *Parser) parseCall(callee Expr) (Expr, error) {
	pos := p.cur.Pos
	p.next()

	var args []Expr
	for !p.cur.Is(TokenPunct, ")") {
		if len(args) > 0 {
			if err := p.expectPunct(","); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.next()

	return &CallExpr{Pos: pos, Callee: callee, Args: args}, nil
}

func (p *Parser) parseFunctionLit() (Expr, error) {
	pos := p.cur.Pos
	p.next()

	var name string
	if p.cur.Kind == TokenIdentifier {
		name = p.cur.Text
		p.next()
	}

	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	var params []string
	for !p.cur.Is(TokenPunct, ")") {
		if len(params) > 0 {
			if err := p.expectPunct(","); err != nil {
				return nil, err
			}
		}
		if p.cur.Kind != TokenIdentifier {
			return nil, p.errorf(p.cur.Pos, "expected parameter name, got %q", p.cur.Text)
		}
		params = append(params, p.cur.Text)
		p.next()
	}
	p.next()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &FunctionLit{
		Pos:    pos,
		Name:   name,
		Params: params,
		Body:   body,
	}, nil
}
