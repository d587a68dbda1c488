/*
File: tjscript/interp/resolve.go

Shared helpers for turning a Token operand - a literal or an identifier -
into the typed value a statement handler or builtin needs, with the type
checks the grammar table demands at every argument position.
*/
package interp

import (
	"strconv"

	"github.com/nsethi-dev/tjscript/env"
	"github.com/nsethi-dev/tjscript/lexer"
	"github.com/nsethi-dev/tjscript/tjerr"
)

// resolveTextArg resolves an operand that must yield a TEXT value: a
// string literal, or an identifier bound to a TEXT variable.
func (it *Interpreter) resolveTextArg(tok lexer.Token) (string, error) {
	switch tok.Kind {
	case lexer.StrConst:
		return tok.Lexeme, nil
	case lexer.Identifier:
		v, err := it.Env.Lookup(tok.Line, tok.Lexeme)
		if err != nil {
			return "", err
		}
		if v.Type != env.Text {
			return "", tjerr.New(tok.Line, "expected a text argument, got %q of type %s", tok.Lexeme, v.Type)
		}
		return v.Value, nil
	default:
		return "", tjerr.New(tok.Line, "expected a text argument")
	}
}

// resolveIntArg resolves an operand that must yield an INT value: an
// integer literal, or an identifier bound to an INT variable.
func (it *Interpreter) resolveIntArg(tok lexer.Token) (uint32, error) {
	switch tok.Kind {
	case lexer.IntConst:
		return parseUint32(tok)
	case lexer.Identifier:
		v, err := it.Env.Lookup(tok.Line, tok.Lexeme)
		if err != nil {
			return 0, err
		}
		if v.Type != env.Int {
			return 0, tjerr.New(tok.Line, "expected an integer argument, got %q of type %s", tok.Lexeme, v.Type)
		}
		n, err := strconv.ParseUint(v.Value, 10, 32)
		if err != nil {
			return 0, tjerr.New(tok.Line, "variable %q does not hold a valid integer", tok.Lexeme)
		}
		return uint32(n), nil
	default:
		return 0, tjerr.New(tok.Line, "expected an integer argument")
	}
}

// resolvePositionArg resolves a builtin's position/count argument
// (subs's i/j, locate's start, insert's and override's pos), which the
// grammar restricts to a literal IntConst - not an identifier, unlike
// the other INT-typed argument positions.
func resolvePositionArg(tok lexer.Token) (int, error) {
	if tok.Kind != lexer.IntConst {
		return 0, tjerr.New(tok.Line, "expected an integer literal, got %s", tok.Kind)
	}
	n, err := parseUint32(tok)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func parseUint32(tok lexer.Token) (uint32, error) {
	n, err := strconv.ParseUint(tok.Lexeme, 10, 32)
	if err != nil {
		return 0, tjerr.New(tok.Line, "invalid integer literal %q", tok.Lexeme)
	}
	return uint32(n), nil
}
