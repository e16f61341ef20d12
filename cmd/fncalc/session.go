package main

import (
	"fmt"
	"io"

	"github.com/letung3105/fncalc/internal/calc"
)

// session keeps the bindings made by earlier inputs alive for later ones.
type session struct {
	parser      *calc.Parser
	interpreter *calc.Interpreter
	reporter    calc.Reporter
	out         io.Writer
	dumpAST     bool
}

// run evaluates one input and prints its result. It reports false if the
// input failed to scan, parse or evaluate.
func (s *session) run(line string) bool {
	scanner := calc.NewScanner([]rune(line), s.reporter)
	tokens := scanner.Scan()
	if s.reporter.HadError() {
		return false
	}

	var ev calc.Evaluator = s.interpreter
	if s.dumpAST {
		ev = &astDumper{ev, s.out}
	}
	res, err := s.parser.Parse(tokens, ev)
	if err != nil {
		s.reporter.Report(err)
		return false
	}
	if res != nil {
		fmt.Fprintln(s.out, calc.Stringify(*res))
	}
	return true
}

// preload evaluates lines without printing their results.
func (s *session) preload(lines []string) bool {
	out, dump := s.out, s.dumpAST
	s.out, s.dumpAST = io.Discard, false
	defer func() {
		s.out, s.dumpAST = out, dump
	}()
	for _, line := range lines {
		if !s.run(line) {
			return false
		}
	}
	return true
}

// exitStatus maps the errors seen so far to the process exit status.
func (s *session) exitStatus() int {
	switch {
	case s.reporter.HadError():
		return 65
	case s.reporter.HadRuntimeError():
		return 70
	}
	return 0
}

// astDumper prints every statement before handing it on.
type astDumper struct {
	next calc.Evaluator
	out  io.Writer
}

func (d *astDumper) Evaluate(node calc.Node) (interface{}, error) {
	printer := calc.AstPrinter{}
	fmt.Fprintln(d.out, printer.Print(node))
	return d.next.Evaluate(node)
}
