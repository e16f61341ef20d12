package calc

import "fmt"

// Token represents group a characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal interface{}
	Pos     int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, literal interface{}, pos int) *Token {
	return &Token{typ, lexeme, literal, pos}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Typ, t.Lexeme, t.Literal)
}

func (t *Token) isOp() bool {
	return t.Typ == OP
}

func (t *Token) isOpOf(ops ...string) bool {
	if t.Typ != OP {
		return false
	}
	for _, op := range ops {
		if t.Lexeme == op {
			return true
		}
	}
	return false
}

func (t *Token) isNumber() bool {
	return t.Typ == INT || t.Typ == FLOAT
}

// noneToken is the sentinel installed by the cursor once its queue is
// drained, and left behind in the current slot by takeIf.
var noneToken = &Token{Typ: NONE}

var KeywordTokens = map[string]TokenType{
	"fn": KEYWORD,
}

// TokenType is the classification the scanner gives to a lexeme.
type TokenType uint

const (
	// Sentinel marking the end of the stream
	NONE TokenType = iota

	// Literals
	IDENT
	INT
	FLOAT

	// One of + - * / % =
	OP

	LEFT_PAREN
	RIGHT_PAREN

	KEYWORD

	// "=>" separates a function's parameters from its body
	FN_OP
	// ":=" is the statement-level assignment marker
	ASSIGN
)

func (tt TokenType) String() string {
	switch tt {
	case NONE:
		return "NONE"
	case IDENT:
		return "IDENT"
	case INT:
		return "INT"
	case FLOAT:
		return "FLOAT"
	case OP:
		return "OP"
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case KEYWORD:
		return "KEYWORD"
	case FN_OP:
		return "=>"
	case ASSIGN:
		return ":="
	}
	return ""
}
