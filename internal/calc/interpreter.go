package calc

import (
	"go.uber.org/zap"
)

// Interpreter evaluates the statements handed over by the Parser. Bindings
// made by one statement are visible to every later one. This struct
// implements NodeVisitor and Evaluator.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	functions   map[string]*function
	resolver    *Resolver
	depth       int
	logger      *zap.Logger
}

// NewInterpreter creates an interpreter with no bindings. A nil logger
// disables logging.
func NewInterpreter(logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	in := new(Interpreter)
	in.globals = NewEnvironment(nil)
	in.environment = in.globals
	in.functions = make(map[string]*function)
	in.resolver = NewResolver(in)
	in.logger = logger
	return in
}

func (in *Interpreter) Evaluate(node Node) (interface{}, error) {
	in.environment = in.globals
	in.depth = 0
	return in.eval(node)
}

func (in *Interpreter) VisitNoneNode(node *NoneNode) (interface{}, error) {
	return nil, nil
}

func (in *Interpreter) VisitFunctionDefNode(node *FunctionDefNode) (interface{}, error) {
	if in.globals.Has(node.Name) {
		return nil, newRuntimeErrorf(node, "'%s' is already a variable.", node.Name)
	}
	if err := in.resolver.Resolve(node); err != nil {
		return nil, err
	}
	_, redefined := in.functions[node.Name]
	in.functions[node.Name] = newFunction(node)
	in.logger.Debug("function defined",
		zap.String("name", node.Name),
		zap.Int("arity", len(node.Params)),
		zap.Bool("redefined", redefined),
	)
	return nil, nil
}

func (in *Interpreter) VisitAssignNode(node *AssignNode) (interface{}, error) {
	return in.assign(node, node.Left, node.Right)
}

func (in *Interpreter) VisitBinOpNode(node *BinOpNode) (interface{}, error) {
	if node.Op == "=" {
		return in.assign(node, node.Left, node.Right)
	}

	lhs, err := in.eval(node.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(node.Right)
	if err != nil {
		return nil, err
	}
	return arithmetic(node, lhs, rhs)
}

func (in *Interpreter) VisitNumNode(node *NumNode) (interface{}, error) {
	switch node.Value.(type) {
	case int64, float64:
		return node.Value, nil
	}
	return nil, newRuntimeErrorf(node, "Invalid number literal %v.", node.Value)
}

func (in *Interpreter) VisitIdentifierNode(node *IdentifierNode) (interface{}, error) {
	if node.Next == nil {
		return in.lookup(node)
	}

	fn, ok := in.functions[node.Value]
	if !ok {
		return nil, newRuntimeErrorf(node, "'%s' is not a function.", node.Value)
	}
	var args []interface{}
	for _, arg := range chainArgs(node) {
		var (
			val interface{}
			err error
		)
		switch arg := arg.(type) {
		case *IdentifierNode:
			val, err = in.lookup(arg)
		default:
			val, err = in.eval(arg)
		}
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	return in.call(node, fn, args)
}

// lookup reads a bare name: a variable first, then a function that takes
// no arguments. Any chain hanging off node is ignored.
func (in *Interpreter) lookup(node *IdentifierNode) (interface{}, error) {
	if val, ok := in.environment.Get(node.Value); ok {
		return val, nil
	}
	if fn, ok := in.functions[node.Value]; ok {
		return in.call(node, fn, nil)
	}
	return nil, newRuntimeErrorf(node, "Unknown identifier '%s'.", node.Value)
}

func (in *Interpreter) call(node Node, fn *function, args []interface{}) (interface{}, error) {
	if len(args) != fn.arity() {
		return nil, newRuntimeErrorf(node,
			"Expected %d arguments but got %d.", fn.arity(), len(args))
	}
	if in.depth >= maxCallDepth {
		return nil, newRuntimeError(node, "Maximum call depth exceeded.")
	}
	in.depth++
	defer func() { in.depth-- }()

	in.logger.Debug("calling function",
		zap.Stringer("fn", fn),
		zap.Int("depth", in.depth),
	)
	return fn.call(in, args)
}

func (in *Interpreter) assign(node, left, right Node) (interface{}, error) {
	target, ok := left.(*IdentifierNode)
	if !ok || target.Next != nil {
		return nil, newRuntimeError(node, "Invalid assignment target.")
	}
	if in.isFunction(target.Value) {
		return nil, newRuntimeErrorf(node, "'%s' is already a function.", target.Value)
	}

	val, err := in.eval(right)
	if err != nil {
		return nil, err
	}
	in.environment.Define(target.Value, val)
	in.logger.Debug("variable assigned",
		zap.String("name", target.Value),
		zap.String("value", stringify(val)),
	)
	return val, nil
}

func (in *Interpreter) isFunction(name string) bool {
	_, ok := in.functions[name]
	return ok
}

// evalIn evaluates node with env as the current environment, restoring the
// previous one afterwards.
func (in *Interpreter) evalIn(node Node, env *Environment) (interface{}, error) {
	previous := in.environment
	in.environment = env
	defer func() {
		in.environment = previous
	}()
	return in.eval(node)
}

func (in *Interpreter) eval(node Node) (interface{}, error) {
	return node.Accept(in)
}
