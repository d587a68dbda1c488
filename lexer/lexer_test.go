/*
File: tjscript/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanAll drains a Lexer into a slice of tokens, stopping after the first
// EndOfFile token or the first error.
func scanAll(t *testing.T, src string) []Token {
	t.Helper()
	l := NewLexer(NewCharSource([]byte(src)))
	var toks []Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == EndOfFile {
			return toks
		}
	}
}

func TestNextToken_Declaration(t *testing.T) {
	got := scanAll(t, "new int x;")
	want := []Token{
		{Kind: Keyword, Lexeme: "new", Line: 1},
		{Kind: Keyword, Lexeme: "int", Line: 1},
		{Kind: Identifier, Lexeme: "x", Line: 1},
		{Kind: EndOfLine, Lexeme: "", Line: 1},
		{Kind: EndOfFile, Lexeme: "", Line: 1},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Token{}, "Line")); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, want, got)
}

func TestNextToken_AssignmentOperatorIsTwoChars(t *testing.T) {
	toks := scanAll(t, "x := 5;")
	assert.Equal(t, Token{Kind: Identifier, Lexeme: "x", Line: 1}, toks[0])
	assert.Equal(t, Token{Kind: Operator, Lexeme: "=", Line: 1}, toks[1])
	assert.Equal(t, Token{Kind: IntConst, Lexeme: "5", Line: 1}, toks[2])
}

func TestNextToken_BuiltinCallShape(t *testing.T) {
	toks := scanAll(t, `n := size(s);`)
	kinds := make([]TokenKind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []TokenKind{
		Identifier, Operator, Keyword, ParenOpen, Identifier, ParenClose, EndOfLine, EndOfFile,
	}, kinds)
}

func TestNextToken_StringLiteralExcludesQuotes(t *testing.T) {
	toks := scanAll(t, `a := "hello world";`)
	require.Len(t, toks, 5)
	assert.Equal(t, Token{Kind: StrConst, Lexeme: "hello world", Line: 1}, toks[2])
}

func TestNextToken_StringLiteralIgnoresCommentDelimiters(t *testing.T) {
	toks := scanAll(t, `a := "/* not a comment */";`)
	require.Len(t, toks, 5)
	assert.Equal(t, "/* not a comment */", toks[2].Lexeme)
}

func TestNextToken_EmptyBlockComment(t *testing.T) {
	toks := scanAll(t, `/**/ new int x;`)
	assert.Equal(t, Keyword, toks[0].Kind)
	assert.Equal(t, "new", toks[0].Lexeme)
}

func TestNextToken_BlockCommentSpansLines(t *testing.T) {
	toks := scanAll(t, "/* line one\nline two */ new int x;")
	require.NotEmpty(t, toks)
	assert.Equal(t, 2, toks[0].Line)
}

func TestNextToken_IntegerOverflow(t *testing.T) {
	l := NewLexer(NewCharSource([]byte("4294967296;")))
	_, err := l.NextToken()
	require.Error(t, err)
}

func TestNextToken_IntegerMaxAccepted(t *testing.T) {
	l := NewLexer(NewCharSource([]byte("4294967295;")))
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, "4294967295", tok.Lexeme)
}

func TestNextToken_LeadingZerosCanonicalized(t *testing.T) {
	l := NewLexer(NewCharSource([]byte("007;")))
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, "7", tok.Lexeme)
}

func TestNextToken_DigitFollowedByLetterIsError(t *testing.T) {
	l := NewLexer(NewCharSource([]byte("123abc;")))
	_, err := l.NextToken()
	require.Error(t, err)
}

func TestNextToken_IdentifierMaxLength(t *testing.T) {
	name30 := ""
	for i := 0; i < 30; i++ {
		name30 += "a"
	}
	l := NewLexer(NewCharSource([]byte(name30 + ";")))
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, 30, len(tok.Lexeme))
}

func TestNextToken_IdentifierTooLong(t *testing.T) {
	name31 := ""
	for i := 0; i < 31; i++ {
		name31 += "a"
	}
	l := NewLexer(NewCharSource([]byte(name31 + ";")))
	_, err := l.NextToken()
	require.Error(t, err)
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := NewLexer(NewCharSource([]byte(`"abc`)))
	_, err := l.NextToken()
	require.Error(t, err)
}

func TestNextToken_UnterminatedComment(t *testing.T) {
	l := NewLexer(NewCharSource([]byte(`/* never closes`)))
	_, err := l.NextToken()
	require.Error(t, err)
}

func TestNextToken_SlashNotFollowedByStar(t *testing.T) {
	l := NewLexer(NewCharSource([]byte(`/ x`)))
	_, err := l.NextToken()
	require.Error(t, err)
}

func TestNextToken_ColonNotFollowedByEquals(t *testing.T) {
	l := NewLexer(NewCharSource([]byte(`: x`)))
	_, err := l.NextToken()
	require.Error(t, err)
}

func TestNextToken_UnrecognizedCharacter(t *testing.T) {
	l := NewLexer(NewCharSource([]byte(`@`)))
	_, err := l.NextToken()
	require.Error(t, err)
}

func TestNextToken_LineTrackingAcrossNewlines(t *testing.T) {
	toks := scanAll(t, "new int x;\nnew int y;\n")
	// First statement's tokens are on line 1, second on line 2.
	assert.Equal(t, 1, toks[0].Line)
	found := false
	for _, tok := range toks {
		if tok.Lexeme == "y" {
			assert.Equal(t, 2, tok.Line)
			found = true
		}
	}
	assert.True(t, found, "expected to find identifier y on line 2")
}

func TestNextToken_PromptIsNotAKeyword(t *testing.T) {
	// "prompt" is a pseudo-keyword recognized positionally by the input
	// handler, not by the lexer - it lexes as a plain Identifier.
	l := NewLexer(NewCharSource([]byte("prompt")))
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, Identifier, tok.Kind)
}
