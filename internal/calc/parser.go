package calc

import (
	"go.uber.org/zap"
)

// Evaluator consumes each statement as soon as the parser has built it. The
// parser only looks at the returned value to extract a numeric summary.
type Evaluator interface {
	Evaluate(node Node) (interface{}, error)
}

// Parser composes the syntax tree from a sequence of tokens that follow the
// following grammar rule, and hands every statement to an Evaluator before
// parsing the next one.
//
// Grammar
//
//	program     --> statement* ;
//	statement   --> functionDef | expression ;
//	functionDef --> "fn" IDENT IDENT* "=>" expression ;
//	expression  --> term ( ":=" expression
//	              | ( "+" | "-" ) term )*
//	              ( callArgs )? ;
//	term        --> factor ( ( "*" | "/" | "%" ) factor )* ;
//	factor      --> INT | FLOAT
//	              | IDENT ( "=" expression )?
//	              | "(" expression ")" ;
//	callArgs    --> ( IDENT | INT | FLOAT )+ ;
//
// callArgs is only accepted right after an expression that is a bare
// identifier; the identifier becomes the head of the argument chain.
type Parser struct {
	cursor *cursor
	logger *zap.Logger
}

// NewParser creates a new parser. A nil logger disables logging.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// Parse parses and evaluates the statement held in tokens. Exactly one
// statement is accepted. The result is nil when the evaluated value has no
// numeric form, e.g. for a function definition.
func (parser *Parser) Parse(tokens []*Token, ev Evaluator) (*float64, error) {
	parser.cursor = newCursor(tokens)

	var (
		statements []Node
		last       interface{}
		extra      *Token
	)
	for !parser.cursor.isEmpty() {
		if len(statements) == 1 {
			extra = parser.cursor.current
		}
		stmt, err := parser.statement()
		if err != nil {
			return nil, err
		}
		val, err := ev.Evaluate(stmt)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
		last = val
		parser.logger.Debug("statement evaluated",
			zap.Int("index", len(statements)-1),
			zap.Any("value", val),
		)
	}

	// the loop is ready for programs of many statements, but only one is
	// supported for now
	if len(statements) > 1 {
		return nil, newParseError(extra, ErrMultipleStatements)
	}
	if len(statements) == 0 {
		return nil, newParseError(parser.cursor.current, ErrNoStatement)
	}
	return numeric(last), nil
}

// statement --> functionDef | expression ;
func (parser *Parser) statement() (Node, error) {
	if parser.cursor.is(KEYWORD) {
		if parser.cursor.current.Lexeme != "fn" {
			return nil, newParseError(parser.cursor.current, ErrUnexpectedKeyword)
		}
		parser.cursor.advance()
		return parser.functionDef()
	}
	return parser.expression()
}

// functionDef --> "fn" IDENT IDENT* "=>" expression ;
//
// The "fn" keyword has already been consumed.
func (parser *Parser) functionDef() (Node, error) {
	if !parser.cursor.is(IDENT) {
		return nil, newParseError(parser.cursor.current, ErrMissingFunctionName)
	}
	name := parser.cursor.advance().Lexeme

	params, err := parser.functionParams()
	if err != nil {
		return nil, err
	}

	if !parser.cursor.is(FN_OP) {
		return nil, newParseError(parser.cursor.current, ErrMissingFunctionMarker)
	}
	parser.cursor.advance()

	body, err := parser.expression()
	if err != nil {
		return nil, err
	}
	return NewFunctionDefNode(name, params, body), nil
}

func (parser *Parser) functionParams() ([]*IdentifierNode, error) {
	params := make([]*IdentifierNode, 0)
	seen := make(map[string]struct{})
	for parser.cursor.is(IDENT) {
		tok := parser.cursor.current
		if _, dup := seen[tok.Lexeme]; dup {
			return nil, newParseErrorf(tok, ErrDuplicateParameter, "%s", tok.Lexeme)
		}
		seen[tok.Lexeme] = struct{}{}
		params = append(params, NewIdentifierNode(tok.Lexeme, nil))
		parser.cursor.advance()
	}
	return params, nil
}

// Creates a left-associative nested tree of "+" and "-" nodes over terms,
// with ":=" folded in at the same level and call arguments attached last.
func (parser *Parser) expression() (Node, error) {
	expr, err := parser.term()
	if err != nil {
		return nil, err
	}

	for {
		if tok := parser.cursor.takeIf(isAssignMarker); tok != nil {
			parser.cursor.advance()
			right, err := parser.expression()
			if err != nil {
				return nil, err
			}
			expr = NewAssignNode(expr, right)
			continue
		}

		if tok := parser.cursor.takeIf((*Token).isOp); tok != nil {
			if !tok.isOpOf("+", "-") {
				parser.cursor.putBack(tok)
				break
			}
			parser.cursor.advance()
			right, err := parser.term()
			if err != nil {
				return nil, err
			}
			expr = NewBinOpNode(expr, tok.Lexeme, right)
			continue
		}

		if parser.cursor.is(IDENT) || parser.cursor.current.isNumber() {
			// a parenthesized call hands back its callee with the chain
			// already attached
			callee, ok := expr.(*IdentifierNode)
			if !ok || callee.Next != nil {
				return nil, newParseError(parser.cursor.current, ErrCallOnNonIdentifier)
			}
			callee.SetNext(parser.callArguments())
		}
		break
	}
	return expr, nil
}

// term --> factor ( ( "*" | "/" | "%" ) factor )* ;
func (parser *Parser) term() (Node, error) {
	expr, err := parser.factor()
	if err != nil {
		return nil, err
	}

	for {
		tok := parser.cursor.takeIf((*Token).isOp)
		if tok == nil {
			break
		}
		if !tok.isOpOf("*", "/", "%") {
			parser.cursor.putBack(tok)
			break
		}
		parser.cursor.advance()
		right, err := parser.factor()
		if err != nil {
			return nil, err
		}
		expr = NewBinOpNode(expr, tok.Lexeme, right)
	}
	return expr, nil
}

// factor --> INT | FLOAT | IDENT ( "=" expression )? | "(" expression ")" ;
func (parser *Parser) factor() (Node, error) {
	tok := parser.cursor.current
	switch tok.Typ {
	case INT, FLOAT:
		parser.cursor.advance()
		return NewNumNode(tok.Literal, nil), nil

	case IDENT:
		parser.cursor.advance()
		ident := NewIdentifierNode(tok.Lexeme, nil)
		op := parser.cursor.takeIf((*Token).isOp)
		if op == nil {
			return ident, nil
		}
		if !op.isOpOf("=") {
			parser.cursor.putBack(op)
			return ident, nil
		}
		parser.cursor.advance()
		right, err := parser.expression()
		if err != nil {
			return nil, err
		}
		return NewBinOpNode(ident, op.Lexeme, right), nil

	case LEFT_PAREN:
		parser.cursor.advance()
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if !parser.cursor.is(RIGHT_PAREN) {
			return nil, newParseError(parser.cursor.current, ErrExpectedRightParen)
		}
		parser.cursor.advance()
		return expr, nil
	}
	return nil, newParseError(tok, ErrUnknownRule)
}

// callArguments consumes the longest run of identifiers and numbers and links
// them into a chain whose head is the first argument. An empty run gives a
// NoneNode.
func (parser *Parser) callArguments() Node {
	var run []*Token
	for parser.cursor.is(IDENT) || parser.cursor.current.isNumber() {
		run = append(run, parser.cursor.advance())
	}

	var chain Node
	for i := len(run) - 1; i >= 0; i-- {
		tok := run[i]
		if tok.Typ == IDENT {
			chain = NewIdentifierNode(tok.Lexeme, chain)
		} else {
			chain = NewNumNode(tok.Literal, chain)
		}
	}
	if chain == nil {
		return NewNoneNode()
	}
	return chain
}

func isAssignMarker(t *Token) bool {
	return t.Typ == ASSIGN
}

// numeric summarizes an evaluated value, nil if it is not a number.
func numeric(val interface{}) *float64 {
	var f float64
	switch v := val.(type) {
	case int64:
		f = float64(v)
	case float64:
		f = v
	default:
		return nil
	}
	return &f
}
