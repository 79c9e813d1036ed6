package letalang

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF
	TokenIdentifier
	TokenKeyword
	TokenNumber
	TokenString
	TokenOperator
	TokenPunct
)

var keywords = map[string]bool{
	"let":      true,
	"function": true,
	"if":       true,
	"else":     true,
	"while":    true,
	"for":      true,
	"return":   true,
	"print":    true,
	"true":     true,
	"false":    true,
	"null":     true,
}

func (t *Token) Is(kind TokenKind, text string) bool {
	return t.Kind == kind && t.Text == text
}
