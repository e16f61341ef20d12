package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanSingleToken(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		{"(", []*Token{{LEFT_PAREN, "(", nil, 0}, {NONE, "", nil, 1}}},
		{")", []*Token{{RIGHT_PAREN, ")", nil, 0}, {NONE, "", nil, 1}}},
		{"+", []*Token{{OP, "+", nil, 0}, {NONE, "", nil, 1}}},
		{"-", []*Token{{OP, "-", nil, 0}, {NONE, "", nil, 1}}},
		{"*", []*Token{{OP, "*", nil, 0}, {NONE, "", nil, 1}}},
		{"/", []*Token{{OP, "/", nil, 0}, {NONE, "", nil, 1}}},
		{"%", []*Token{{OP, "%", nil, 0}, {NONE, "", nil, 1}}},
		{"=", []*Token{{OP, "=", nil, 0}, {NONE, "", nil, 1}}},
		{"=>", []*Token{{FN_OP, "=>", nil, 0}, {NONE, "", nil, 2}}},
		{":=", []*Token{{ASSIGN, ":=", nil, 0}, {NONE, "", nil, 2}}},
		// literals
		{"a", []*Token{{IDENT, "a", nil, 0}, {NONE, "", nil, 1}}},
		{"abc123", []*Token{{IDENT, "abc123", nil, 0}, {NONE, "", nil, 6}}},
		{"_a_1", []*Token{{IDENT, "_a_1", nil, 0}, {NONE, "", nil, 4}}},
		{"10", []*Token{{INT, "10", int64(10), 0}, {NONE, "", nil, 2}}},
		{"007", []*Token{{INT, "007", int64(7), 0}, {NONE, "", nil, 3}}},
		{"0.5", []*Token{{FLOAT, "0.5", 0.5, 0}, {NONE, "", nil, 3}}},
		{"123.456", []*Token{{FLOAT, "123.456", 123.456, 0}, {NONE, "", nil, 7}}},
		// keywords
		{"fn", []*Token{{KEYWORD, "fn", nil, 0}, {NONE, "", nil, 2}}},
		{"fnord", []*Token{{IDENT, "fnord", nil, 0}, {NONE, "", nil, 5}}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := newMockReporter()
		scanner := NewScanner([]rune(tc.src), report)
		assert.Equal(tc.toks, scanner.Scan(), tc.src)
		assert.False(report.HadError(), tc.src)
	}
}

func TestScanStatements(t *testing.T) {
	testCases := []struct {
		src   string
		types []TokenType
	}{
		{"fn avg a b => (a + b) / 2", []TokenType{
			KEYWORD, IDENT, IDENT, IDENT, FN_OP,
			LEFT_PAREN, IDENT, OP, IDENT, RIGHT_PAREN, OP, INT, NONE,
		}},
		{"x = 7", []TokenType{IDENT, OP, INT, NONE}},
		{"x := y % 2.5", []TokenType{IDENT, ASSIGN, IDENT, OP, FLOAT, NONE}},
		{"avg 4 y", []TokenType{IDENT, INT, IDENT, NONE}},
		{"  \t1\n", []TokenType{INT, NONE}},
		{"1 # a comment", []TokenType{INT, NONE}},
		// a dot without digits after it is not part of the number
		{"1.", []TokenType{INT, NONE}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := newMockReporter()
		var types []TokenType
		for _, tok := range NewScanner([]rune(tc.src), report).Scan() {
			types = append(types, tok.Typ)
		}
		assert.Equal(tc.types, types, tc.src)
	}
}

func TestScanPositions(t *testing.T) {
	toks := scan(t, "ab := 12")

	assert := assert.New(t)
	assert.Equal(0, toks[0].Pos)
	assert.Equal(3, toks[1].Pos)
	assert.Equal(6, toks[2].Pos)
	assert.Equal(8, toks[3].Pos)
}

func TestScanErrors(t *testing.T) {
	testCases := []struct {
		src string
		msg string
	}{
		{"1 & 2", "[col 2] Error: Unexpected character."},
		{":", "[col 0] Error: Unexpected character."},
		{"x : 1", "[col 2] Error: Unexpected character."},
		{"99999999999999999999", "[col 0] Error: Invalid number literal."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := newMockReporter()
		NewScanner([]rune(tc.src), report).Scan()
		assert.True(report.HadError(), tc.src)
		if assert.Len(report.errors, 1, tc.src) {
			assert.Equal(tc.msg, report.errors[0].Error())
		}
	}
}

func TestScanIsIdempotent(t *testing.T) {
	scanner := NewScanner([]rune("1 + 2"), newMockReporter())
	first := scanner.Scan()
	assert.Equal(t, first, scanner.Scan())
}
