/*
Package calc implements a calculator language with variables and
single-expression functions.

Grammars

	program     --> statement* ;
	statement   --> functionDef | expression ;
	functionDef --> "fn" IDENT IDENT* "=>" expression ;
	expression  --> term ( ":=" expression | ( "+" | "-" ) term )* callArgs? ;
	term        --> factor ( ( "*" | "/" | "%" ) factor )* ;
	factor      --> INT | FLOAT
	              | IDENT ( "=" expression )?
	              | "(" expression ")" ;
	callArgs    --> ( IDENT | INT | FLOAT )+ ;

Assignment has two spellings that produce different nodes: "x = 1" is parsed
inside factor into a BinOpNode with Op "=", while "x := 1" is parsed inside
expression into an AssignNode. The interpreter gives both the same meaning.

A function is called by writing its name followed by bare arguments, as in
"avg 4 2". The arguments are not collected into a call node: they are linked
one after the other through the Next field of NumNode and IdentifierNode,
starting from the callee.

Only one statement is accepted per call to Parser.Parse.
*/
package calc

//go:generate go run ../cmd/ast_codegen ../calc
