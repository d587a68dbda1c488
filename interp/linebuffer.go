/*
File: tjscript/interp/linebuffer.go

LineBuffer accumulates tokens for one statement, from the byte after the
previous EndOfLine up to, but not including, the next EndOfLine or
EndOfFile (the terminators themselves are never appended). It
owns the NoType-sentinel bookkeeping described in the data model: every
sealed line carries one past the last real token.
*/
package interp

import "github.com/nsethi-dev/tjscript/lexer"

// LineBuffer is a growable token accumulator, reset after each statement.
// Capacity 11 covers every statement shape in the grammar without a
// reallocation, the same bound the distilled data model calls out.
type LineBuffer struct {
	tokens []lexer.Token
}

// NewLineBuffer returns an empty LineBuffer.
func NewLineBuffer() *LineBuffer {
	return &LineBuffer{tokens: make([]lexer.Token, 0, 11)}
}

// Append adds t to the buffer.
func (b *LineBuffer) Append(t lexer.Token) {
	b.tokens = append(b.tokens, t)
}

// Len reports the number of real tokens currently buffered.
func (b *LineBuffer) Len() int {
	return len(b.tokens)
}

// Reset clears the buffer for the next statement, keeping the backing
// array.
func (b *LineBuffer) Reset() {
	b.tokens = b.tokens[:0]
}

// Sealed returns the buffered tokens with a trailing NoType sentinel
// appended at index Len(), on the line of the last real token (or line 0
// for an empty line). The returned slice is a fresh copy; callers may
// hold onto it past the next Append/Reset.
func (b *LineBuffer) Sealed() []lexer.Token {
	line := 0
	if n := len(b.tokens); n > 0 {
		line = b.tokens[n-1].Line
	}
	out := make([]lexer.Token, len(b.tokens)+1)
	copy(out, b.tokens)
	out[len(b.tokens)] = lexer.Token{Kind: lexer.NoType, Line: line}
	return out
}
