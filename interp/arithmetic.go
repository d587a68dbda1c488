/*
File: tjscript/interp/arithmetic.go

execArithmeticAssign implements `X := A op B`. Integer destinations get
modular addition and underflow-checked subtraction; text destinations get
concatenation and first-occurrence removal.
*/
package interp

import (
	"strconv"
	"strings"

	"github.com/nsethi-dev/tjscript/env"
	"github.com/nsethi-dev/tjscript/lexer"
	"github.com/nsethi-dev/tjscript/tjerr"
)

const uint32Modulus = 1 << 32

func (it *Interpreter) execArithmeticAssign(line []lexer.Token) error {
	dest, xTok, opTok, yTok := line[0], line[2], line[3], line[4]

	destVar, err := it.Env.Lookup(dest.Line, dest.Lexeme)
	if err != nil {
		return err
	}

	switch destVar.Type {
	case env.Int:
		return it.execIntArithmetic(destVar, xTok, opTok, yTok)
	case env.Text:
		return it.execTextArithmetic(destVar, xTok, opTok, yTok)
	default:
		return tjerr.New(dest.Line, "unknown variable type for %q", dest.Lexeme)
	}
}

func (it *Interpreter) execIntArithmetic(dest *env.Variable, xTok, opTok, yTok lexer.Token) error {
	x, err := it.resolveIntArg(xTok)
	if err != nil {
		return err
	}
	y, err := it.resolveIntArg(yTok)
	if err != nil {
		return err
	}

	switch opTok.Lexeme {
	case "+":
		sum := (uint64(x) + uint64(y)) % uint32Modulus
		dest.Value = strconv.FormatUint(sum, 10)
	case "-":
		if x < y {
			return tjerr.New(opTok.Line, "The answer cannot be negative!")
		}
		dest.Value = strconv.FormatUint(uint64(x-y), 10)
	default:
		return tjerr.New(opTok.Line, "unknown arithmetic operator %q", opTok.Lexeme)
	}
	return nil
}

func (it *Interpreter) execTextArithmetic(dest *env.Variable, xTok, opTok, yTok lexer.Token) error {
	x, err := it.resolveTextArg(xTok)
	if err != nil {
		return err
	}
	y, err := it.resolveTextArg(yTok)
	if err != nil {
		return err
	}

	switch opTok.Lexeme {
	case "+":
		dest.Value = x + y
	case "-":
		if len(y) > len(x) {
			return tjerr.New(opTok.Line, "cannot subtract a longer string")
		}
		if idx := strings.Index(x, y); idx >= 0 {
			dest.Value = x[:idx] + x[idx+len(y):]
		} else {
			dest.Value = x
		}
	default:
		return tjerr.New(opTok.Line, "unknown arithmetic operator %q", opTok.Lexeme)
	}
	return nil
}
