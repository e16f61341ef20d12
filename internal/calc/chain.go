package calc

// SetNext attaches a call-argument chain to an identifier that has already
// been built. The parser only calls it on identifiers without a chain.
func (node *IdentifierNode) SetNext(next Node) {
	node.Next = next
}

// nextArg returns the argument that follows node in a call-argument chain,
// or nil at the end of the chain.
func nextArg(node Node) Node {
	switch n := node.(type) {
	case *NumNode:
		return n.Next
	case *IdentifierNode:
		return n.Next
	}
	return nil
}

// chainArgs flattens the chain hanging off a callee into a slice, in the order
// the arguments were written.
func chainArgs(callee *IdentifierNode) []Node {
	var args []Node
	for arg := callee.Next; arg != nil; arg = nextArg(arg) {
		if _, ok := arg.(*NoneNode); ok {
			break
		}
		args = append(args, arg)
	}
	return args
}
