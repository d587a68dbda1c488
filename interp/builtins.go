/*
File: tjscript/interp/builtins.go

execBuiltinCallAssign implements `X := name(args)` for the seven builtins:
size, subs, locate, insert, override, asText, asString. Each validates its
own argument count, argument types, and destination type - the same
positional-check style the grammar table calls for, rather than a shared
signature table.
*/
package interp

import (
	"strconv"
	"strings"

	"github.com/nsethi-dev/tjscript/env"
	"github.com/nsethi-dev/tjscript/lexer"
	"github.com/nsethi-dev/tjscript/tjerr"
)

// execBuiltinCallAssign handles `IDENT := KEYWORD ( args ) NoType`.
func (it *Interpreter) execBuiltinCallAssign(line []lexer.Token) error {
	dest, name := line[0], line[2]

	closeIdx := -1
	for i := 4; i < len(line); i++ {
		if line[i].Kind == lexer.ParenClose {
			closeIdx = i
			break
		}
		if line[i].Kind == lexer.NoType {
			break
		}
	}
	if closeIdx == -1 || line[closeIdx+1].Kind != lexer.NoType {
		return tjerr.New(dest.Line, "Parsing error")
	}

	args, err := splitArgs(dest.Line, line[4:closeIdx])
	if err != nil {
		return err
	}

	destVar, err := it.Env.Lookup(dest.Line, dest.Lexeme)
	if err != nil {
		return err
	}

	switch name.Lexeme {
	case "size":
		return it.callSize(dest.Line, destVar, args)
	case "subs":
		return it.callSubs(dest.Line, destVar, args)
	case "locate":
		return it.callLocate(dest.Line, destVar, args)
	case "insert":
		return it.callInsert(dest.Line, destVar, args)
	case "override":
		return it.callOverride(dest.Line, destVar, args)
	case "asText", "asString":
		return it.callAsText(dest.Line, destVar, args)
	default:
		return tjerr.New(dest.Line, "unknown builtin %q", name.Lexeme)
	}
}

// splitArgs validates a comma-separated argument list: every other token
// alternating argument, comma, argument, ... with no leading, trailing,
// or doubled comma.
func splitArgs(line int, toks []lexer.Token) ([]lexer.Token, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	var args []lexer.Token
	expectArg := true
	for _, t := range toks {
		if expectArg {
			if t.Kind == lexer.Comma {
				return nil, tjerr.New(line, "Parsing error")
			}
			args = append(args, t)
		} else if t.Kind != lexer.Comma {
			return nil, tjerr.New(line, "Parsing error")
		}
		expectArg = !expectArg
	}
	if expectArg {
		return nil, tjerr.New(line, "Parsing error")
	}
	return args, nil
}

func requireArgCount(line int, name string, args []lexer.Token, n int) error {
	if len(args) != n {
		return tjerr.New(line, "%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func (it *Interpreter) callSize(line int, dest *env.Variable, args []lexer.Token) error {
	if err := requireArgCount(line, "size", args, 1); err != nil {
		return err
	}
	s, err := it.resolveTextArg(args[0])
	if err != nil {
		return err
	}
	if dest.Type != env.Int {
		return tjerr.New(line, "size(...) result is int; %q is declared text", dest.Name)
	}
	dest.Value = strconv.Itoa(len(s))
	return nil
}

func (it *Interpreter) callSubs(line int, dest *env.Variable, args []lexer.Token) error {
	if err := requireArgCount(line, "subs", args, 3); err != nil {
		return err
	}
	s, err := it.resolveTextArg(args[0])
	if err != nil {
		return err
	}
	i, err := resolvePositionArg(args[1])
	if err != nil {
		return err
	}
	j, err := resolvePositionArg(args[2])
	if err != nil {
		return err
	}
	if dest.Type != env.Text {
		return tjerr.New(line, "subs(...) result is text; %q is declared int", dest.Name)
	}
	dest.Value = subsBytes(s, i, j)
	return nil
}

// subsBytes clamps i into [0,len(s)] and j into [i,len(s)] - the source
// specifies no bounds guard, and clamping is the reimplementation the
// distilled spec calls for.
func subsBytes(s string, i, j int) string {
	n := len(s)
	if i < 0 {
		i = 0
	}
	if i > n {
		i = n
	}
	if j < i {
		j = i
	}
	if j > n {
		j = n
	}
	return s[i:j]
}

func (it *Interpreter) callLocate(line int, dest *env.Variable, args []lexer.Token) error {
	if err := requireArgCount(line, "locate", args, 3); err != nil {
		return err
	}
	big, err := it.resolveTextArg(args[0])
	if err != nil {
		return err
	}
	small, err := it.resolveTextArg(args[1])
	if err != nil {
		return err
	}
	start, err := resolvePositionArg(args[2])
	if err != nil {
		return err
	}
	if dest.Type != env.Int {
		return tjerr.New(line, "locate(...) result is int; %q is declared text", dest.Name)
	}
	dest.Value = strconv.Itoa(locateBytes(big, small, start))
	return nil
}

// locateBytes returns the first index >= start where small occurs in
// big, or 0 if start is out of range or there is no match - 0 is
// deliberately ambiguous with a legitimate match at index 0, a carried
// source quirk.
func locateBytes(big, small string, start int) int {
	if start < 0 || start > len(big) {
		return 0
	}
	idx := strings.Index(big[start:], small)
	if idx < 0 {
		return 0
	}
	return start + idx
}

func (it *Interpreter) callInsert(line int, dest *env.Variable, args []lexer.Token) error {
	if err := requireArgCount(line, "insert", args, 3); err != nil {
		return err
	}
	s, err := it.resolveTextArg(args[0])
	if err != nil {
		return err
	}
	pos, err := resolvePositionArg(args[1])
	if err != nil {
		return err
	}
	ins, err := it.resolveTextArg(args[2])
	if err != nil {
		return err
	}
	if dest.Type != env.Text {
		return tjerr.New(line, "insert(...) result is text; %q is declared int", dest.Name)
	}
	dest.Value = insertBytes(s, pos, ins)
	return nil
}

// insertBytes returns s unchanged if pos is out of range.
func insertBytes(s string, pos int, ins string) string {
	if pos < 0 || pos > len(s) {
		return s
	}
	return s[:pos] + ins + s[pos:]
}

func (it *Interpreter) callOverride(line int, dest *env.Variable, args []lexer.Token) error {
	if err := requireArgCount(line, "override", args, 3); err != nil {
		return err
	}
	s, err := it.resolveTextArg(args[0])
	if err != nil {
		return err
	}
	pos, err := resolvePositionArg(args[1])
	if err != nil {
		return err
	}
	ovr, err := it.resolveTextArg(args[2])
	if err != nil {
		return err
	}
	if dest.Type != env.Text {
		return tjerr.New(line, "override(...) result is text; %q is declared int", dest.Name)
	}
	dest.Value = overrideBytes(s, pos, ovr)
	return nil
}

// overrideBytes clamps pos into [0,len(s)], then returns the first pos
// bytes of s followed by the first (resultLen-pos) bytes of ovr, where
// resultLen = min(pos+len(ovr), len(s)).
func overrideBytes(s string, pos int, ovr string) string {
	n := len(s)
	if pos < 0 {
		pos = 0
	}
	if pos > n {
		pos = n
	}
	resultLen := pos + len(ovr)
	if resultLen > n {
		resultLen = n
	}
	return s[:pos] + ovr[:resultLen-pos]
}

func (it *Interpreter) callAsText(line int, dest *env.Variable, args []lexer.Token) error {
	if err := requireArgCount(line, "asText", args, 1); err != nil {
		return err
	}
	n, err := it.resolveIntArg(args[0])
	if err != nil {
		return err
	}
	if dest.Type != env.Text {
		return tjerr.New(line, "asText(...) result is text; %q is declared int", dest.Name)
	}
	dest.Value = strconv.FormatUint(uint64(n), 10)
	return nil
}
