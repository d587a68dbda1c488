/*
File: tjscript/lexer/token.go

Token and TokenKind define the surface vocabulary of the tj language: the
16-member closed keyword set, the single assignment operator, and the
sentinel NoType kind used by the dispatcher as an end-of-line boundary
marker.
*/
package lexer

import "fmt"

// TokenKind classifies a Token. It is a string (rather than an int) for the
// same reason the teacher codebase uses string-typed token kinds: cheap,
// readable %v output during debugging, at negligible runtime cost for a
// single-pass interpreter.
type TokenKind string

const (
	Identifier TokenKind = "Identifier"
	IntConst   TokenKind = "IntConst"
	Operator   TokenKind = "Operator"
	StrConst   TokenKind = "StrConst"
	Keyword    TokenKind = "Keyword"
	EndOfLine  TokenKind = "EndOfLine"
	ParenOpen  TokenKind = "ParenOpen"
	ParenClose TokenKind = "ParenClose"
	Comma      TokenKind = "Comma"
	EndOfFile  TokenKind = "EndOfFile"

	// NoType is the sentinel written past the last real token of a line.
	// Statement handlers check for it, alongside the line's length, as a
	// cheap "did I run off the end of this line" boundary marker.
	NoType TokenKind = "NoType"
)

// Keywords is the closed, case-sensitive keyword set of the language. An
// identifier-shaped lexeme that matches one of these is retagged Keyword
// by the lexer. "prompt" is deliberately absent: it is a pseudo-keyword,
// recognized positionally by the input-statement handler rather than by
// the lexer.
var Keywords = map[string]bool{
	"new": true, "int": true, "text": true,
	"size": true, "subs": true, "locate": true, "insert": true, "override": true,
	"read": true, "write": true, "from": true, "to": true,
	"input": true, "output": true,
	"asText": true, "asString": true,
}

// Token is a single lexical token: its kind, its exact source lexeme, and
// the line it started on.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
}

// String renders a Token for debug output and test failure messages, e.g.
// `Keyword("new")@3`.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Lexeme, t.Line)
}

// classifyWord returns Keyword if word is one of the 16 reserved words,
// otherwise Identifier.
func classifyWord(word string) TokenKind {
	if Keywords[word] {
		return Keyword
	}
	return Identifier
}
