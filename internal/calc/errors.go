package calc

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors produced by the parser. They are never returned bare, each one is
// carried by a ParseError that records the offending token.
var (
	ErrUnexpectedKeyword     = errors.New("syntax error! unexpected keyword")
	ErrMissingFunctionName   = errors.New("Syntax Error! function must have fn-name")
	ErrDuplicateParameter    = errors.New("parameter name is duplicated!")
	ErrMissingFunctionMarker = errors.New("Syntax Error! function Expression")
	ErrExpectedRightParen    = errors.New(`Expected ")"`)
	ErrUnknownRule           = errors.New("Unknown Rules!")
	ErrCallOnNonIdentifier   = errors.New("Syntax Error")
	ErrMultipleStatements    = errors.New("Syntax Error! more than one statement")
	ErrNoStatement           = errors.New("None")
)

// ScanError is reported when the scanner meets a rune it cannot classify.
type ScanError struct {
	pos     int
	message string
}

func newScanError(pos int, message string) error {
	return &ScanError{pos, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("[col %d] Error: %s", err.pos, err.message)
}

// ParseError wraps one of the parser's sentinel errors with the token at
// which parsing stopped.
type ParseError struct {
	token  *Token
	err    error
	detail string
}

func newParseError(token *Token, err error) error {
	return &ParseError{token: token, err: err}
}

func newParseErrorf(token *Token, err error, format string, args ...interface{}) error {
	return &ParseError{token: token, err: err, detail: fmt.Sprintf(format, args...)}
}

func (err *ParseError) message() string {
	if err.detail == "" {
		return err.err.Error()
	}
	return err.err.Error() + " " + err.detail
}

func (err *ParseError) Error() string {
	if err.token == nil || err.token.Typ == NONE {
		return fmt.Sprintf("Error at end: %s", err.message())
	}
	return fmt.Sprintf(
		"[col %d] Error at '%s': %s",
		err.token.Pos,
		err.token.Lexeme,
		err.message(),
	)
}

func (err *ParseError) Unwrap() error {
	return err.err
}

// RuntimeError is returned by the interpreter, it records the node whose
// evaluation failed.
type RuntimeError struct {
	node    Node
	message string
}

func newRuntimeError(node Node, message string) error {
	return &RuntimeError{node, message}
}

func newRuntimeErrorf(node Node, format string, args ...interface{}) error {
	return &RuntimeError{node, fmt.Sprintf(format, args...)}
}

func (err *RuntimeError) Error() string {
	if err.node == nil {
		return fmt.Sprintf("Runtime error: %s", err.message)
	}
	printer := AstPrinter{}
	return fmt.Sprintf("Runtime error in %s: %s", printer.Print(err.node), err.message)
}
