/*
File: tjscript/interp/interpreter.go

Interpreter bundles the pipeline's mutable state - environment, lexer, and
I/O - into one value, replacing the source's process-global file pointer,
line counter, and variable table with a struct a driver or test can
instantiate freely and throw away.
*/
package interp

import (
	"io"

	"github.com/nsethi-dev/tjscript/env"
	"github.com/nsethi-dev/tjscript/lexer"
	"github.com/nsethi-dev/tjscript/tjerr"
)

// Interpreter drives one program from source bytes to completion.
type Interpreter struct {
	Env   *env.Environment
	Lexer *lexer.Lexer
	Out   io.Writer
	In    LineReader
}

// New creates an Interpreter over src, writing output to out and reading
// prompted input through in.
func New(src *lexer.CharSource, out io.Writer, in LineReader) *Interpreter {
	return &Interpreter{
		Env:   env.New(),
		Lexer: lexer.NewLexer(src),
		Out:   out,
		In:    in,
	}
}

// Run drives the lex -> assemble -> dispatch loop to completion. It
// returns the first fatal error encountered, or nil on a clean EndOfFile.
func (it *Interpreter) Run() error {
	buf := NewLineBuffer()
	for {
		tok, err := it.Lexer.NextToken()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case lexer.EndOfFile:
			// A partial line (tokens buffered but no terminating ';')
			// is discarded here, matching the assembler contract.
			return nil
		case lexer.EndOfLine:
			line := buf.Sealed()
			buf.Reset()
			if err := it.dispatch(line); err != nil {
				return err
			}
		default:
			buf.Append(tok)
		}
	}
}

func (it *Interpreter) readInputLine(prompt string) (string, error) {
	if it.In == nil {
		return "", tjerr.New(0, "no input source configured")
	}
	return it.In.ReadLine(prompt)
}
