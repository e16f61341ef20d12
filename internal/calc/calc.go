package calc

import (
	"fmt"
	"math"
	"strconv"
)

// maxCallDepth bounds nested calls. Redefining functions can make two of them
// call each other forever.
const maxCallDepth = 255

// function is a user-defined function. decl.Body is shared with the
// definition the parser produced and is evaluated afresh on every call.
type function struct {
	decl *FunctionDefNode
}

func newFunction(decl *FunctionDefNode) *function {
	fn := new(function)
	fn.decl = decl
	return fn
}

func (fn *function) arity() int {
	return len(fn.decl.Params)
}

func (fn *function) call(in *Interpreter, args []interface{}) (interface{}, error) {
	// Each call gets its own environment holding only the parameters. The
	// resolver has already made sure the body reads nothing else.
	env := NewEnvironment(nil)
	for i, param := range fn.decl.Params {
		env.Define(param.Value, args[i])
	}
	return in.evalIn(fn.decl.Body, env)
}

func (fn *function) String() string {
	return fmt.Sprintf("<fn %s/%d>", fn.decl.Name, fn.arity())
}

func stringify(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Stringify formats an evaluated value the way the REPL prints it.
func Stringify(v interface{}) string {
	return stringify(v)
}

func toFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// arithmetic applies op to two numbers. Two integers stay integral except for
// a division that does not come out even.
func arithmetic(node *BinOpNode, lhs, rhs interface{}) (interface{}, error) {
	li, lInt := lhs.(int64)
	ri, rInt := rhs.(int64)
	if lInt && rInt {
		return intArithmetic(node, li, ri)
	}

	lf, okLeft := toFloat(lhs)
	rf, okRight := toFloat(rhs)
	if !okLeft || !okRight {
		return nil, newRuntimeError(node, "Operands must be numbers.")
	}
	return floatArithmetic(node, lf, rf)
}

// intArithmetic keeps results as int64 while they fit. A result that would
// wrap is computed in float64 instead.
func intArithmetic(node *BinOpNode, l, r int64) (interface{}, error) {
	switch node.Op {
	case "+":
		sum := l + r
		if (r > 0 && sum < l) || (r < 0 && sum > l) {
			return float64(l) + float64(r), nil
		}
		return sum, nil
	case "-":
		diff := l - r
		if (r > 0 && diff > l) || (r < 0 && diff < l) {
			return float64(l) - float64(r), nil
		}
		return diff, nil
	case "*":
		prod := l * r
		if l != 0 && (prod/l != r || (l == -1 && r == math.MinInt64)) {
			return float64(l) * float64(r), nil
		}
		return prod, nil
	case "/":
		if r == 0 {
			return nil, newRuntimeError(node, "Division by zero.")
		}
		if l%r == 0 && !(l == math.MinInt64 && r == -1) {
			return l / r, nil
		}
		return float64(l) / float64(r), nil
	case "%":
		if r == 0 {
			return nil, newRuntimeError(node, "Division by zero.")
		}
		return l % r, nil
	}
	return nil, newRuntimeErrorf(node, "Unknown operator '%s'.", node.Op)
}

func floatArithmetic(node *BinOpNode, l, r float64) (interface{}, error) {
	switch node.Op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return nil, newRuntimeError(node, "Division by zero.")
		}
		return l / r, nil
	case "%":
		if r == 0 {
			return nil, newRuntimeError(node, "Division by zero.")
		}
		return math.Mod(l, r), nil
	}
	return nil, newRuntimeErrorf(node, "Unknown operator '%s'.", node.Op)
}
