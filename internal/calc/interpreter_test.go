package calc

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// run feeds every line to the same interpreter and returns the result of the
// last one. Earlier lines must succeed.
func run(t *testing.T, in *Interpreter, lines ...string) (*float64, error) {
	t.Helper()
	parser := NewParser(nil)
	for i, line := range lines {
		res, err := parser.Parse(scan(t, line), in)
		if i == len(lines)-1 {
			return res, err
		}
		require.NoError(t, err, line)
	}
	return nil, nil
}

func TestInterpretArithmetic(t *testing.T) {
	testCases := []struct {
		src  string
		want float64
	}{
		{"1", 1},
		{"2.5", 2.5},
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"10 - 4 - 3", 3},
		{"7 / 2", 3.5},
		{"8 / 2 / 2", 2},
		{"7 % 4", 3},
		{"7.5 % 2", 1.5},
		{"1.5 + 1", 2.5},
		{"4 * 2.5", 10},
		{"1 - 2", -1},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		res, err := run(t, NewInterpreter(nil), tc.src)
		if assert.NoError(err, tc.src) && assert.NotNil(res, tc.src) {
			assert.Equal(tc.want, *res, tc.src)
		}
	}
}

func TestInterpretIntegerResults(t *testing.T) {
	testCases := []struct {
		src  string
		want interface{}
	}{
		{"6 / 3", int64(2)},
		{"7 / 2", 3.5},
		{"-7 % 3", nil},
		{"2 * 3", int64(6)},
		{"2.0 * 3", 6.0},
		{"9223372036854775807 + 1", 9223372036854775808.0},
		{"9223372036854775807 * 2", 18446744073709551614.0},
		{"0 - 9223372036854775807 - 2", -9223372036854775809.0},
		{"9223372036854775807 - 1", int64(9223372036854775806)},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks := scan(t, tc.src)
		var node Node
		_, err := NewParser(nil).Parse(toks, &mockEvaluator{})
		if tc.want == nil {
			// no unary minus in the grammar
			assert.ErrorIs(err, ErrUnknownRule, tc.src)
			continue
		}
		node = parseOne(t, toks)
		val, err := NewInterpreter(nil).Evaluate(node)
		assert.NoError(err, tc.src)
		assert.Equal(tc.want, val, tc.src)
	}
}

func TestInterpretAssignment(t *testing.T) {
	testCases := []struct {
		lines []string
		want  float64
	}{
		{[]string{"x = 7"}, 7},
		{[]string{"x := 7"}, 7},
		{[]string{"x = 7", "x + 1"}, 8},
		{[]string{"x := 7", "x * x"}, 49},
		{[]string{"x = y = 3", "x + y"}, 6},
		{[]string{"x := y := 3", "x + y"}, 6},
		{[]string{"x = 1", "x = x + 1", "x"}, 2},
		{[]string{"x = 2", "y := x * 3", "y"}, 6},
		{[]string{"z = (w = 4) + 1", "w + z"}, 9},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		res, err := run(t, NewInterpreter(nil), tc.lines...)
		if assert.NoError(err, "%v", tc.lines) && assert.NotNil(res) {
			assert.Equal(tc.want, *res, "%v", tc.lines)
		}
	}
}

func TestInterpretFunctions(t *testing.T) {
	testCases := []struct {
		lines []string
		want  float64
	}{
		{[]string{"fn avg a b => (a + b) / 2", "avg 4 2"}, 3},
		{[]string{"fn avg a b => (a + b) / 2", "avg 1 2"}, 1.5},
		{[]string{"fn one => 1", "one"}, 1},
		{[]string{"fn one => 1", "one + one"}, 2},
		{[]string{"fn inc x => x + 1", "y = 41", "inc y"}, 42},
		{[]string{"fn one => 1", "fn inc x => x + 1", "inc one"}, 2},
		{[]string{"fn add a b => a + b", "fn twice x => add x x", "twice 5"}, 10},
		{[]string{"fn sq x => x * x", "(sq 3) + (sq 4)"}, 25},
		{[]string{"fn f x => x", "fn f x => x * 10", "f 2"}, 20},
		{[]string{"fn f x => (y = x + 1) * y", "f 2"}, 9},
		{[]string{"fn sq x => x * x", "r := sq 1.5"}, 2.25},
		// parameters shadow nothing outside the call
		{[]string{"x = 100", "fn id x => x", "id 1"}, 1},
		{[]string{"x = 100", "fn id x => x", "id 1", "x"}, 100},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		res, err := run(t, NewInterpreter(nil), tc.lines...)
		if assert.NoError(err, "%v", tc.lines) && assert.NotNil(res, "%v", tc.lines) {
			assert.Equal(tc.want, *res, "%v", tc.lines)
		}
	}
}

func TestInterpretFunctionDefHasNoResult(t *testing.T) {
	res, err := run(t, NewInterpreter(nil), "fn avg a b => (a + b) / 2")
	assert.NoError(t, err)
	assert.Nil(t, res)
}

func TestInterpretSharedFunctionBody(t *testing.T) {
	in := NewInterpreter(nil)
	node := parseOne(t, scan(t, "fn sq x => x * x"))
	_, err := in.Evaluate(node)
	require.NoError(t, err)

	def := node.(*FunctionDefNode)
	assert.Same(t, def, in.functions["sq"].decl)

	for i, want := range []float64{4, 9, 16} {
		res, err := run(t, in, "sq "+Stringify(int64(i+2)))
		require.NoError(t, err)
		assert.Equal(t, want, *res)
	}
	// evaluating the body never rewrites it
	assert.Equal(t, NewBinOpNode(ident("x"), "*", ident("x")), def.Body)
}

func TestInterpretRuntimeErrors(t *testing.T) {
	testCases := []struct {
		lines []string
		msg   string
	}{
		{[]string{"y"}, "Runtime error in y: Unknown identifier 'y'."},
		{[]string{"1 / 0"}, "Runtime error in (/ 1 0): Division by zero."},
		{[]string{"1.5 % 0"}, "Runtime error in (% 1.5 0): Division by zero."},
		{[]string{"5 % 0"}, "Runtime error in (% 5 0): Division by zero."},
		{[]string{"x 1"}, "Runtime error in (call x 1): 'x' is not a function."},
		{[]string{"fn f a => a", "f"}, "Runtime error in f: Expected 1 arguments but got 0."},
		{[]string{"fn f a => a", "f 1 2"}, "Runtime error in (call f 1 2): Expected 1 arguments but got 2."},
		{[]string{"fn f a => a", "f = 1"}, "Runtime error in (= f 1): 'f' is already a function."},
		{[]string{"fn f a => a", "f := 1"}, "Runtime error in (:= f 1): 'f' is already a function."},
		{[]string{"x = 1", "fn x => 2"}, "Runtime error in (fn x () 2): 'x' is already a variable."},
		{[]string{"fn f a => a", "f q"}, "Runtime error in q: Unknown identifier 'q'."},
		{[]string{"1 + x := 2"}, "Runtime error in (:= (+ 1 x) 2): Invalid assignment target."},
		{[]string{"fn f a => b"}, "Runtime error in b: Invalid identifier 'b' in function body."},
		{[]string{"fn f a => g a"}, "Runtime error in (call g a): Invalid identifier 'g' in function body."},
		{[]string{"fn g x => x", "fn f a => g c"}, "Runtime error in (call g c): Invalid identifier 'c' in function body."},
		{[]string{"fn f a => 1 + x := 2"}, "Runtime error in (:= (+ 1 x) 2): Invalid assignment target."},
		{[]string{"x = 3", "fn f a => a + x"}, "Runtime error in x: Invalid identifier 'x' in function body."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err := run(t, NewInterpreter(nil), tc.lines...)
		var runtimeErr *RuntimeError
		if assert.True(errors.As(err, &runtimeErr), "%v: %v", tc.lines, err) {
			assert.Equal(tc.msg, err.Error(), "%v", tc.lines)
		}
	}
}

func TestInterpretIntegerOverflowPromotes(t *testing.T) {
	testCases := []struct {
		l, r int64
		op   string
		want interface{}
	}{
		{math.MaxInt64, 1, "+", float64(math.MaxInt64) + 1},
		{math.MinInt64, -1, "+", float64(math.MinInt64) - 1},
		{math.MinInt64, 1, "-", float64(math.MinInt64) - 1},
		{math.MaxInt64, -1, "-", float64(math.MaxInt64) + 1},
		{math.MaxInt64, 2, "*", float64(math.MaxInt64) * 2},
		{-1, math.MinInt64, "*", -float64(math.MinInt64)},
		{math.MinInt64, -1, "/", -float64(math.MinInt64)},
		{math.MinInt64, -1, "%", int64(0)},
		{math.MaxInt64, 0, "+", int64(math.MaxInt64)},
		{math.MinInt64, 1, "*", int64(math.MinInt64)},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		node := NewBinOpNode(num(tc.l), tc.op, num(tc.r))
		val, err := NewInterpreter(nil).Evaluate(node)
		assert.NoError(err, "%d %s %d", tc.l, tc.op, tc.r)
		assert.Equal(tc.want, val, "%d %s %d", tc.l, tc.op, tc.r)
	}
}

func TestInterpretParenthesizedCallTakesNoMoreArguments(t *testing.T) {
	in := NewInterpreter(nil)
	_, err := run(t, in, "fn f a => a", "(f 1) 2")
	assert.ErrorIs(t, err, ErrCallOnNonIdentifier)

	res, err := run(t, in, "(f) 2")
	require.NoError(t, err)
	assert.Equal(t, 2.0, *res)
}

func TestInterpretCallDepthLimit(t *testing.T) {
	in := NewInterpreter(nil)
	_, err := run(t, in,
		"fn f x => x",
		"fn g x => f x",
		"fn f x => g x",
		"f 1",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Maximum call depth exceeded.")

	// the interpreter is usable afterwards
	res, err := run(t, in, "fn h x => x", "h 3")
	assert.NoError(t, err)
	assert.Equal(t, 3.0, *res)
}

func TestInterpretBindingsSurviveErrors(t *testing.T) {
	in := NewInterpreter(nil)
	_, err := run(t, in, "x = 5", "x / 0")
	assert.Error(t, err)

	res, err := run(t, in, "x")
	assert.NoError(t, err)
	assert.Equal(t, 5.0, *res)
}

func TestInterpretMultipleStatementsStillEvaluated(t *testing.T) {
	in := NewInterpreter(nil)
	_, err := run(t, in, "(x = 1) (y = 2)")
	assert.ErrorIs(t, err, ErrMultipleStatements)

	res, err := run(t, in, "x + y")
	assert.NoError(t, err)
	assert.Equal(t, 3.0, *res)
}

func TestInterpretNodesBuiltByHand(t *testing.T) {
	in := NewInterpreter(nil)

	val, err := in.Evaluate(NewNoneNode())
	assert.NoError(t, err)
	assert.Nil(t, val)

	_, err = in.Evaluate(num(1))
	assert.Error(t, err)

	_, err = in.Evaluate(NewBinOpNode(num(int64(1)), "^", num(int64(2))))
	assert.EqualError(t, err, "Runtime error in (^ 1 2): Unknown operator '^'.")
}

func TestInterpretLogsDefinitions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	in := NewInterpreter(zap.New(core))

	_, err := run(t, in, "fn sq x => x * x", "y = sq 3")
	require.NoError(t, err)

	assert := assert.New(t)
	defined := logs.FilterMessage("function defined").All()
	if assert.Len(defined, 1) {
		assert.Equal("sq", defined[0].ContextMap()["name"])
		assert.Equal(int64(1), defined[0].ContextMap()["arity"])
	}
	assigned := logs.FilterMessage("variable assigned").All()
	if assert.Len(assigned, 1) {
		assert.Equal("9", assigned[0].ContextMap()["value"])
	}
	assert.Equal(1, logs.FilterMessage("calling function").Len())
}
