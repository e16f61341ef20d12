package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// we do it the scripting way, instead of having types support from Go stdlib
var nodeTypes = []string{
	"None:",
	// Params are kept as nodes so the printer and the resolver can walk
	// them like any other identifier.
	"FunctionDef: Name string, Params []*IdentifierNode, Body Node",
	"Assign: Left Node, Right Node",
	"BinOp: Left Node, Op string, Right Node",
	// Next links the callee and its arguments in a call-argument chain.
	"Num: Value interface{}, Next Node",
	"Identifier: Value string, Next Node",
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir := os.Args[1]
	if err := defineAst(outputDir, "Node", nodeTypes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defineAst(outputDir string, baseName string, types []string) error {
	fpath := filepath.Join(
		outputDir,
		fmt.Sprintf("%s.go", strings.ToLower(baseName)),
	)

	var buf bytes.Buffer
	packageName := filepath.Base(outputDir)
	fmt.Fprintf(&buf, "// Code generated by ast_codegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)

	fmt.Fprintf(&buf, "type %s interface {\n", baseName)
	fmt.Fprintf(&buf, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	fmt.Fprintf(&buf, "}\n\n")

	defineVisitor(&buf, baseName, types)

	// Generate struct for each AST type
	for _, t := range types {
		parts := strings.SplitN(t, ":", 2)
		typeName := strings.TrimSpace(parts[0])
		fields := strings.TrimSpace(parts[1])
		defineType(&buf, baseName, typeName, fields)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, src, 0644)
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
) {
	var fields []string
	var fieldNames []string
	if fieldList != "" {
		for _, f := range strings.Split(fieldList, ",") {
			field := strings.TrimSpace(f)
			fields = append(fields, field)
			fieldNames = append(fieldNames, strings.Fields(field)[0])
		}
	}

	// Struct definition
	if len(fields) == 0 {
		fmt.Fprintf(writer, "type %s%s struct{}\n\n", typeName, baseName)
	} else {
		fmt.Fprintf(writer, "type %s%s struct {\n", typeName, baseName)
		for _, f := range fields {
			fmt.Fprintf(writer, "\t%s\n", f)
		}
		fmt.Fprintf(writer, "}\n\n")
	}

	// Constructor
	fmt.Fprintf(
		writer,
		"func New%s%s(%s) *%s%s {\n",
		typeName, baseName,
		strings.Join(fields, ", "),
		typeName, baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn &%s%s{%s}\n",
		typeName, baseName,
		strings.Join(fieldNames, ", "),
	)
	fmt.Fprintf(writer, "}\n\n")

	// Accept method
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) Accept(visitor %sVisitor) (interface{}, error) {\n",
		strings.ToLower(baseName),
		typeName, baseName,
		baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn visitor.Visit%s%s(%s)\n",
		typeName, baseName,
		strings.ToLower(baseName),
	)
	fmt.Fprintf(writer, "}\n\n")
}
