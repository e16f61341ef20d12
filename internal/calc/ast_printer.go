package calc

import (
	"fmt"
	"strings"
)

// AstPrinter renders a syntax tree as an S-expression. A callee with an
// argument chain is printed as "(call f a b)".
type AstPrinter struct{}

func (printer *AstPrinter) Print(node Node) string {
	if node == nil {
		return "nil"
	}
	s, _ := node.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitNoneNode(node *NoneNode) (interface{}, error) {
	return "none", nil
}

func (printer *AstPrinter) VisitFunctionDefNode(node *FunctionDefNode) (interface{}, error) {
	params := make([]string, 0, len(node.Params))
	for _, p := range node.Params {
		params = append(params, p.Value)
	}
	return fmt.Sprintf(
		"(fn %s (%s) %s)",
		node.Name,
		strings.Join(params, " "),
		printer.Print(node.Body),
	), nil
}

func (printer *AstPrinter) VisitAssignNode(node *AssignNode) (interface{}, error) {
	return fmt.Sprintf("(:= %s %s)", printer.Print(node.Left), printer.Print(node.Right)), nil
}

func (printer *AstPrinter) VisitBinOpNode(node *BinOpNode) (interface{}, error) {
	return fmt.Sprintf("(%s %s %s)", node.Op, printer.Print(node.Left), printer.Print(node.Right)), nil
}

func (printer *AstPrinter) VisitNumNode(node *NumNode) (interface{}, error) {
	return stringify(node.Value), nil
}

func (printer *AstPrinter) VisitIdentifierNode(node *IdentifierNode) (interface{}, error) {
	if node.Next == nil {
		return node.Value, nil
	}
	parts := []string{"call", node.Value}
	for _, arg := range chainArgs(node) {
		parts = append(parts, printer.leaf(arg))
	}
	return "(" + strings.Join(parts, " ") + ")", nil
}

// leaf prints a chain member without following its own Next.
func (printer *AstPrinter) leaf(node Node) string {
	switch n := node.(type) {
	case *NumNode:
		return stringify(n.Value)
	case *IdentifierNode:
		return n.Value
	}
	return printer.Print(node)
}
