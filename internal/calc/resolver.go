package calc

// scopeMap holds the names a function body may read: its parameters and
// whatever the body itself has assigned so far.
type scopeMap = map[string]bool

// Resolver performs semantics analysis on a function definition before the
// interpreter registers it. A body may only read its parameters, locals it
// assigned earlier (left to right), and functions that already exist.
type Resolver struct {
	interpreter *Interpreter
	scope       scopeMap
}

func NewResolver(interpreter *Interpreter) *Resolver {
	r := new(Resolver)
	r.interpreter = interpreter
	return r
}

func (r *Resolver) Resolve(fn *FunctionDefNode) error {
	r.scope = make(scopeMap)
	defer func() { r.scope = nil }()
	for _, p := range fn.Params {
		r.scope[p.Value] = true
	}
	return r.resolve(fn.Body)
}

func (r *Resolver) VisitNoneNode(node *NoneNode) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitFunctionDefNode(node *FunctionDefNode) (interface{}, error) {
	return nil, newRuntimeError(node, "Function definitions cannot be nested.")
}

func (r *Resolver) VisitAssignNode(node *AssignNode) (interface{}, error) {
	return nil, r.resolveAssign(node, node.Left, node.Right)
}

func (r *Resolver) VisitBinOpNode(node *BinOpNode) (interface{}, error) {
	if node.Op == "=" {
		return nil, r.resolveAssign(node, node.Left, node.Right)
	}
	if err := r.resolve(node.Left); err != nil {
		return nil, err
	}
	return nil, r.resolve(node.Right)
}

func (r *Resolver) VisitNumNode(node *NumNode) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitIdentifierNode(node *IdentifierNode) (interface{}, error) {
	if node.Next != nil {
		if !r.interpreter.isFunction(node.Value) {
			return nil, newRuntimeErrorf(node, "Invalid identifier '%s' in function body.", node.Value)
		}
		for _, arg := range chainArgs(node) {
			if ident, ok := arg.(*IdentifierNode); ok && !r.readable(ident.Value) {
				return nil, newRuntimeErrorf(node, "Invalid identifier '%s' in function body.", ident.Value)
			}
		}
		return nil, nil
	}
	if !r.readable(node.Value) {
		return nil, newRuntimeErrorf(node, "Invalid identifier '%s' in function body.", node.Value)
	}
	return nil, nil
}

func (r *Resolver) resolveAssign(node, left, right Node) error {
	target, ok := left.(*IdentifierNode)
	if !ok || target.Next != nil {
		return newRuntimeError(node, "Invalid assignment target.")
	}
	if err := r.resolve(right); err != nil {
		return err
	}
	r.scope[target.Value] = true
	return nil
}

func (r *Resolver) readable(name string) bool {
	return r.scope[name] || r.interpreter.isFunction(name)
}

// Similar to Interpreter.eval
func (r *Resolver) resolve(node Node) error {
	_, err := node.Accept(r)
	return err
}
