package calc

import (
	"strconv"
	"unicode"
)

// Scanner parses the input source and collects all the tokens that can be found
type Scanner struct {
	start    int
	current  int
	source   []rune
	tokens   []*Token
	reporter Reporter
}

// NewScanner creates a new token scanner for one line of input
func NewScanner(source []rune, reporter Reporter) *Scanner {
	scanner := new(Scanner)
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	scanner.reporter = reporter
	return scanner
}

// Scan reads the source and collect all the tokens that were found from the
// source. The returned slice always ends with a NONE token.
func (scanner *Scanner) Scan() []*Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t', '\n':
		case '(':
			scanner.addToken(LEFT_PAREN, nil)
		case ')':
			scanner.addToken(RIGHT_PAREN, nil)
		case '+', '-', '*', '/', '%':
			scanner.addToken(OP, nil)
		case '=':
			if scanner.match('>') {
				scanner.addToken(FN_OP, nil)
			} else {
				scanner.addToken(OP, nil)
			}
		case ':':
			if scanner.match('=') {
				scanner.addToken(ASSIGN, nil)
			} else {
				scanner.reporter.Report(
					newScanError(scanner.start, "Unexpected character."),
				)
			}
		case '#':
			// comment runs to the end of the input
			for scanner.hasNext() {
				scanner.advance()
			}
		default:
			if unicode.IsDigit(r) {
				scanner.scanNumber()
			} else if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.reporter.Report(
					newScanError(scanner.start, "Unexpected character."),
				)
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(NONE, "", nil, scanner.current),
	)
	return scanner.tokens
}

func (scanner *Scanner) scanNumber() {
	for unicode.IsDigit(scanner.peek()) {
		scanner.advance()
	}
	isFloat := false
	// a '.' only belongs to the number when digits follow it
	if scanner.peek() == '.' && unicode.IsDigit(scanner.peekNext()) {
		isFloat = true
		scanner.advance()
		for unicode.IsDigit(scanner.peek()) {
			scanner.advance()
		}
	}

	lexeme := string(scanner.source[scanner.start:scanner.current])
	if isFloat {
		literal, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			scanner.reporter.Report(newScanError(scanner.start, "Invalid number literal."))
			return
		}
		scanner.addToken(FLOAT, literal)
		return
	}
	// digits only, so the only possible failure is overflow
	literal, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		scanner.reporter.Report(newScanError(scanner.start, "Invalid number literal."))
		return
	}
	scanner.addToken(INT, literal)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if tokenType, isKeyword := KeywordTokens[lexeme]; isKeyword {
		scanner.addToken(tokenType, nil)
	} else {
		scanner.addToken(IDENT, nil)
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type and carries the given literal
func (scanner *Scanner) addToken(typ TokenType, literal interface{}) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, literal, scanner.start)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current possible
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current possition is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
