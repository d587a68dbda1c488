/*
File: tjscript/interp/statements.go

One handler per statement shape in the grammar table: declaration,
output, input, read-from-file, write-to-file, and plain assignment.
Builtin-call and arithmetic assignment live in builtins.go and
arithmetic.go since each carries enough of its own logic to earn a file.
*/
package interp

import (
	"fmt"
	"os"

	"github.com/nsethi-dev/tjscript/env"
	"github.com/nsethi-dev/tjscript/lexer"
	"github.com/nsethi-dev/tjscript/tjerr"
)

// execDeclaration handles `new int|text IDENT`.
func (it *Interpreter) execDeclaration(line []lexer.Token) error {
	if len(line) != 4 || line[1].Kind != lexer.Keyword ||
		line[2].Kind != lexer.Identifier || line[3].Kind != lexer.NoType {
		return tjerr.New(line[0].Line, "Parsing error")
	}

	var typ env.Type
	switch line[1].Lexeme {
	case "int":
		typ = env.Int
	case "text":
		typ = env.Text
	default:
		return tjerr.New(line[0].Line, "unknown type %q", line[1].Lexeme)
	}

	_, err := it.Env.Declare(line[0].Line, line[2].Lexeme, typ)
	return err
}

// execOutput handles `output IDENT`.
func (it *Interpreter) execOutput(line []lexer.Token) error {
	if len(line) != 3 || line[1].Kind != lexer.Identifier || line[2].Kind != lexer.NoType {
		return tjerr.New(line[0].Line, "Parsing error")
	}
	v, err := it.Env.Lookup(line[1].Line, line[1].Lexeme)
	if err != nil {
		return err
	}
	fmt.Fprintln(it.Out, v.Value)
	return nil
}

// execInput handles `input IDENT prompt IDENT`. "prompt" is recognized
// positionally here, not by the lexer - it is a plain Identifier token.
func (it *Interpreter) execInput(line []lexer.Token) error {
	if len(line) != 5 ||
		line[1].Kind != lexer.Identifier ||
		line[2].Kind != lexer.Identifier || line[2].Lexeme != "prompt" ||
		line[3].Kind != lexer.Identifier || line[4].Kind != lexer.NoType {
		return tjerr.New(line[0].Line, "Parsing error")
	}

	destVar, err := it.Env.Lookup(line[1].Line, line[1].Lexeme)
	if err != nil {
		return err
	}
	promptVar, err := it.Env.Lookup(line[3].Line, line[3].Lexeme)
	if err != nil {
		return err
	}

	text, err := it.readInputLine(promptVar.Value + ": ")
	if err != nil {
		return tjerr.New(line[0].Line, "could not read input: %v", err)
	}
	if len(text) > 99 {
		text = text[:99]
	}
	// X's declared type is never checked here - a known source quirk
	// carried forward deliberately, not an oversight.
	destVar.Value = text
	return nil
}

// fileName builds the on-disk path for a file variable without mutating
// the variable's own value, unlike the source this replaces.
func fileName(v *env.Variable) string {
	return v.Value + ".txt"
}

// execReadFile handles `read IDENT from IDENT`.
func (it *Interpreter) execReadFile(line []lexer.Token) error {
	if len(line) != 5 || line[1].Kind != lexer.Identifier ||
		line[2].Kind != lexer.Keyword || line[2].Lexeme != "from" ||
		line[3].Kind != lexer.Identifier || line[4].Kind != lexer.NoType {
		return tjerr.New(line[0].Line, "Parsing error")
	}

	destVar, err := it.Env.Lookup(line[1].Line, line[1].Lexeme)
	if err != nil {
		return err
	}
	fileVar, err := it.Env.Lookup(line[3].Line, line[3].Lexeme)
	if err != nil {
		return err
	}

	path := fileName(fileVar)
	data, err := os.ReadFile(path)
	if err != nil {
		return tjerr.New(line[0].Line, "could not read file %q: %v", path, err)
	}
	destVar.Value = string(data)
	return nil
}

// execWriteFile handles `write IDENT to IDENT`.
func (it *Interpreter) execWriteFile(line []lexer.Token) error {
	if len(line) != 5 || line[1].Kind != lexer.Identifier ||
		line[2].Kind != lexer.Keyword || line[2].Lexeme != "to" ||
		line[3].Kind != lexer.Identifier || line[4].Kind != lexer.NoType {
		return tjerr.New(line[0].Line, "Parsing error")
	}

	srcVar, err := it.Env.Lookup(line[1].Line, line[1].Lexeme)
	if err != nil {
		return err
	}
	fileVar, err := it.Env.Lookup(line[3].Line, line[3].Lexeme)
	if err != nil {
		return err
	}

	path := fileName(fileVar)
	if err := os.WriteFile(path, []byte(srcVar.Value), 0644); err != nil {
		return tjerr.New(line[0].Line, "could not write file %q: %v", path, err)
	}
	return nil
}

// execPlainAssign handles `IDENT := IntConst|StrConst|Identifier`.
func (it *Interpreter) execPlainAssign(line []lexer.Token) error {
	dest := line[0]
	rhs := line[2]

	destVar, err := it.Env.Lookup(dest.Line, dest.Lexeme)
	if err != nil {
		return err
	}

	switch rhs.Kind {
	case lexer.IntConst:
		if destVar.Type != env.Int {
			return tjerr.New(dest.Line, "cannot assign an integer literal to text variable %q", dest.Lexeme)
		}
		destVar.Value = rhs.Lexeme
	case lexer.StrConst:
		if destVar.Type != env.Text {
			return tjerr.New(dest.Line, "cannot assign a string literal to int variable %q", dest.Lexeme)
		}
		destVar.Value = rhs.Lexeme
	case lexer.Identifier:
		srcVar, err := it.Env.Lookup(rhs.Line, rhs.Lexeme)
		if err != nil {
			return err
		}
		if srcVar.Type != destVar.Type {
			return tjerr.New(dest.Line, "cannot assign %s variable %q to %s variable %q",
				srcVar.Type, srcVar.Name, destVar.Type, destVar.Name)
		}
		destVar.Value = srcVar.Value
	default:
		return tjerr.New(dest.Line, "Parsing error")
	}
	return nil
}
