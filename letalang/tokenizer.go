package letalang

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

type Tokenizer struct {
	source  *Source
	offset  int
	currPos Pos
	prevPos Pos
}

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		source: source,
		currPos: Pos{
			Source: source,
			Line:   1,
			Column: 1,
		},
	}
}

func (t *Tokenizer) readRune() (rune, bool) {
	if t.offset >= len(t.source.Content) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(t.source.Content[t.offset:])
	t.offset += size

	t.prevPos = t.currPos
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, true
}

func (t *Tokenizer) unreadRune(r rune) {
	t.offset -= utf8.RuneLen(r)
	t.currPos = t.prevPos
}

func (t *Tokenizer) peekRune() rune {
	if t.offset >= len(t.source.Content) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.source.Content[t.offset:])
	return r
}

func (t *Tokenizer) Next() *Token {
	t.skipWhitespaceAndComments()
	startPos := t.currPos

	r, ok := t.readRune()
	if !ok {
		return &Token{Kind: TokenEOF, Pos: startPos}
	}

	switch r {
	case ';', ',', '(', ')', '{', '}':
		return &Token{Kind: TokenPunct, Text: string(r), Pos: startPos}

	case '=':
		if t.peekRune() == '=' {
			t.readRune()
			return &Token{Kind: TokenOperator, Text: "==", Pos: startPos}
		}
		return &Token{Kind: TokenOperator, Text: "=", Pos: startPos}

	case '!':
		if t.peekRune() == '=' {
			t.readRune()
			return &Token{Kind: TokenOperator, Text: "!=", Pos: startPos}
		}
		return &Token{Kind: TokenOperator, Text: "!", Pos: startPos}

	case '<':
		if t.peekRune() == '=' {
			t.readRune()
			return &Token{Kind: TokenOperator, Text: "<=", Pos: startPos}
		}
		return &Token{Kind: TokenOperator, Text: "<", Pos: startPos}

	case '>':
		if t.peekRune() == '=' {
			t.readRune()
			return &Token{Kind: TokenOperator, Text: ">=", Pos: startPos}
		}
		return &Token{Kind: TokenOperator, Text: ">", Pos: startPos}

	case '&':
		if t.peekRune() == '&' {
			t.readRune()
			return &Token{Kind: TokenOperator, Text: "&&", Pos: startPos}
		}
		return &Token{Kind: TokenInvalid, Text: "&", Pos: startPos}

	case '|':
		if t.peekRune() == '|' {
			t.readRune()
			return &Token{Kind: TokenOperator, Text: "||", Pos: startPos}
		}
		return &Token{Kind: TokenInvalid, Text: "|", Pos: startPos}

	case '+', '-', '*', '/':
		return &Token{Kind: TokenOperator, Text: string(r), Pos: startPos}

	case '"':
		return t.parseString(startPos)
	}

	if unicode.IsDigit(r) {
		t.unreadRune(r)
		return t.parseNumber(startPos)
	}

	if isIdentStart(r) {
		t.unreadRune(r)
		return t.parseIdentifier(startPos)
	}

	return &Token{Kind: TokenInvalid, Text: string(r), Pos: startPos}
}

func (t *Tokenizer) skipWhitespaceAndComments() {
	for {
		r, ok := t.readRune()
		if !ok {
			return
		}
		if unicode.IsSpace(r) {
			continue
		}
		if r == '/' && t.peekRune() == '/' {
			for {
				r, ok := t.readRune()
				if !ok || r == '\n' {
					break
				}
			}
			continue
		}
		t.unreadRune(r)
		return
	}
}

func (t *Tokenizer) parseIdentifier(startPos Pos) *Token {
	var buf bytes.Buffer
	for {
		r, ok := t.readRune()
		if !ok {
			break
		}
		if !isIdentStart(r) && !unicode.IsDigit(r) {
			t.unreadRune(r)
			break
		}
		buf.WriteRune(r)
	}
	text := buf.String()
	kind := TokenIdentifier
	if keywords[text] {
		kind = TokenKeyword
	}
	return &Token{
		Kind: kind,
		Text: text,
		Pos:  startPos,
	}
}

func (t *Tokenizer) parseNumber(startPos Pos) *Token {
	var buf bytes.Buffer
	hasDot := false
	for {
		r, ok := t.readRune()
		if !ok {
			break
		}
		if unicode.IsDigit(r) {
			buf.WriteRune(r)
		} else if r == '.' && !hasDot && unicode.IsDigit(t.peekRune()) {
			hasDot = true
			buf.WriteRune(r)
		} else {
			t.unreadRune(r)
			break
		}
	}
	return &Token{
		Kind: TokenNumber,
		Text: buf.String(),
		Pos:  startPos,
	}
}

func (t *Tokenizer) parseString(startPos Pos) *Token {
	var buf bytes.Buffer
	for {
		r, ok := t.readRune()
		if !ok {
			// unmatched quote
			return &Token{Kind: TokenInvalid, Text: buf.String(), Pos: startPos}
		}
		if r == '"' {
			break
		}

		if r == '\\' {
			next, ok := t.readRune()
			if !ok {
				buf.WriteRune(r)
				break
			}
			switch next {
			case 'n':
				buf.WriteRune('\n')
			case 'r':
				buf.WriteRune('\r')
			case 't':
				buf.WriteRune('\t')
			case '\\':
				buf.WriteRune('\\')
			case '"':
				buf.WriteRune('"')
			default:
				buf.WriteRune('\\')
				buf.WriteRune(next)
			}
		} else {
			buf.WriteRune(r)
		}
	}
	return &Token{
		Kind: TokenString,
		Text: buf.String(),
		Pos:  startPos,
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
