/*
File: tjscript/interp/dispatcher.go

dispatch pattern-matches a sealed token line on its first one or two
tokens and routes it to a statement handler, mirroring the distilled
grammar table exactly. Handlers own their own argument-shape validation;
the dispatcher only needs enough of the shape to pick a handler.
*/
package interp

import (
	"github.com/nsethi-dev/tjscript/lexer"
	"github.com/nsethi-dev/tjscript/tjerr"
)

func (it *Interpreter) dispatch(line []lexer.Token) error {
	t0 := line[0]

	if t0.Kind == lexer.Keyword {
		switch t0.Lexeme {
		case "new":
			return it.execDeclaration(line)
		case "output":
			return it.execOutput(line)
		case "input":
			return it.execInput(line)
		case "read":
			return it.execReadFile(line)
		case "write":
			return it.execWriteFile(line)
		}
	}

	if t0.Kind == lexer.Identifier && len(line) > 1 &&
		line[1].Kind == lexer.Operator && line[1].Lexeme == "=" {
		return it.execAssignment(line)
	}

	return tjerr.New(t0.Line, "Parsing error")
}

// execAssignment disambiguates the three `IDENT := ...` shapes: a
// builtin call, an arithmetic expression, or a plain value copy.
func (it *Interpreter) execAssignment(line []lexer.Token) error {
	dest := line[0]
	if len(line) < 4 {
		return tjerr.New(dest.Line, "Parsing error")
	}
	rhs0 := line[2]

	switch {
	case rhs0.Kind == lexer.Keyword && len(line) > 3 && line[3].Kind == lexer.ParenOpen:
		return it.execBuiltinCallAssign(line)
	case len(line) == 6 && line[3].Kind == lexer.Operator &&
		(line[3].Lexeme == "+" || line[3].Lexeme == "-") && line[5].Kind == lexer.NoType:
		return it.execArithmeticAssign(line)
	case len(line) == 4 && line[3].Kind == lexer.NoType:
		return it.execPlainAssign(line)
	default:
		return tjerr.New(dest.Line, "Parsing error")
	}
}
