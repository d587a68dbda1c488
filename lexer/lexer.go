/*
File: tjscript/lexer/lexer.go

Lexer turns a CharSource into a Token stream. It follows the recognition
order of the source language exactly: whitespace/comment skipping first,
then identifier/keyword, integer, operator, punctuation, string, and
statement-terminator recognition, in that order, at the start of every
NextToken call.
*/
package lexer

import (
	"strconv"
	"strings"

	"github.com/nsethi-dev/tjscript/tjerr"
)

// Lexer scans a CharSource into Tokens one at a time.
type Lexer struct {
	src *CharSource

	cur     byte
	eof     bool
	curLine int
}

// NewLexer creates a Lexer positioned at the first byte of src.
func NewLexer(src *CharSource) *Lexer {
	l := &Lexer{src: src}
	l.advance()
	return l
}

// advance consumes one byte from the underlying CharSource into cur,
// recording the line it was read on.
func (l *Lexer) advance() {
	line := l.src.Line()
	b, ok := l.src.Next()
	if !ok {
		l.eof = true
		l.cur = 0
		l.curLine = line
		return
	}
	l.cur = b
	l.curLine = line
}

// NextToken reads forward until one complete token is recognized, or the
// input ends, returning the token or the lexical error that stopped it.
func (l *Lexer) NextToken() (Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return Token{}, err
	}

	line := l.curLine
	if l.eof {
		return Token{Kind: EndOfFile, Line: line}, nil
	}

	switch {
	case isLetter(l.cur):
		return l.readIdentifier()
	case isDigit(l.cur):
		return l.readNumber()
	case l.cur == '+':
		l.advance()
		return Token{Kind: Operator, Lexeme: "+", Line: line}, nil
	case l.cur == '-':
		l.advance()
		return Token{Kind: Operator, Lexeme: "-", Line: line}, nil
	case l.cur == ':':
		l.advance()
		if l.eof || l.cur != '=' {
			return Token{}, tjerr.New(line, "':' must be followed by '=' to form the assignment operator")
		}
		l.advance()
		return Token{Kind: Operator, Lexeme: "=", Line: line}, nil
	case l.cur == '(':
		l.advance()
		return Token{Kind: ParenOpen, Lexeme: "(", Line: line}, nil
	case l.cur == ')':
		l.advance()
		return Token{Kind: ParenClose, Lexeme: ")", Line: line}, nil
	case l.cur == ',':
		l.advance()
		return Token{Kind: Comma, Lexeme: ",", Line: line}, nil
	case l.cur == ';':
		l.advance()
		return Token{Kind: EndOfLine, Lexeme: "", Line: line}, nil
	case l.cur == '"':
		return l.readString()
	default:
		c := l.cur
		l.advance()
		return Token{}, tjerr.New(line, "Unrecognized character '%c'", c)
	}
}

// skipWhitespaceAndComments advances past whitespace runs and /* ... */
// block comments. There are no line comments in this language.
func (l *Lexer) skipWhitespaceAndComments() error {
	for !l.eof {
		switch {
		case isSpace(l.cur):
			l.advance()
		case l.cur == '/':
			line := l.curLine
			l.advance()
			if l.eof || l.cur != '*' {
				return tjerr.New(line, "Unrecognized character '/'")
			}
			l.advance() // consume the '*'
			if err := l.skipBlockCommentBody(line); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

// skipBlockCommentBody consumes bytes until the closing "*/", reporting a
// lex error at the comment's opening line if EOF is reached first.
// Comments do not nest.
func (l *Lexer) skipBlockCommentBody(startLine int) error {
	for {
		if l.eof {
			return tjerr.New(startLine, "Comment cannot be terminated")
		}
		if l.cur == '*' {
			l.advance()
			if l.eof {
				return tjerr.New(startLine, "Comment cannot be terminated")
			}
			if l.cur == '/' {
				l.advance()
				return nil
			}
			continue
		}
		l.advance()
	}
}

// readIdentifier reads a letter-led run of identifier characters and
// retags it Keyword if it matches the closed keyword set.
func (l *Lexer) readIdentifier() (Token, error) {
	line := l.curLine
	var b strings.Builder
	for !l.eof && isIdentChar(l.cur) {
		b.WriteByte(l.cur)
		l.advance()
	}
	word := b.String()
	if len(word) > 30 {
		return Token{}, tjerr.New(line, "identifier %q exceeds the maximum length of 30 characters", word)
	}
	return Token{Kind: classifyWord(word), Lexeme: word, Line: line}, nil
}

// readNumber reads a run of decimal digits into a 64-bit accumulator,
// rejecting values above 4294967295 and digit runs immediately followed
// by a letter or underscore.
func (l *Lexer) readNumber() (Token, error) {
	line := l.curLine
	var acc uint64
	for !l.eof && isDigit(l.cur) {
		acc = acc*10 + uint64(l.cur-'0')
		if acc > 4294967295 {
			return Token{}, tjerr.New(line, "integer literal exceeds the maximum value of 4294967295")
		}
		l.advance()
	}
	if !l.eof && (isLetter(l.cur) || l.cur == '_') {
		return Token{}, tjerr.New(line, "Identifiers cannot start with a number")
	}
	return Token{Kind: IntConst, Lexeme: strconv.FormatUint(acc, 10), Line: line}, nil
}

// readString reads the bytes between a pair of double quotes verbatim -
// there are no escape sequences in this language.
func (l *Lexer) readString() (Token, error) {
	line := l.curLine
	l.advance() // consume opening quote
	var b strings.Builder
	for {
		if l.eof {
			return Token{}, tjerr.New(line, "string literal not terminated before end of file")
		}
		if l.cur == '"' {
			l.advance()
			return Token{Kind: StrConst, Lexeme: b.String(), Line: line}, nil
		}
		b.WriteByte(l.cur)
		l.advance()
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentChar(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '_'
}
