/*
File: tjscript/interp/linereader.go

LineReader supplies the single line of console input each `input`
statement needs. Two implementations back it: one using
github.com/chzyer/readline for an interactive terminal (the same library
the teacher's repl package drives its read loop with, here repurposed from
a multi-line code REPL to a single prompted read per `input` statement),
and a bufio.Reader fallback for piped stdin, where readline cannot put the
terminal into raw mode.
*/
package interp

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader prints a prompt and returns one line of console input with
// its trailing newline stripped.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// readlineSource backs LineReader with a *readline.Instance.
type readlineSource struct {
	inst *readline.Instance
}

func newReadlineSource() (*readlineSource, error) {
	inst, err := readline.New("")
	if err != nil {
		return nil, err
	}
	return &readlineSource{inst: inst}, nil
}

func (r *readlineSource) ReadLine(prompt string) (string, error) {
	r.inst.SetPrompt(prompt)
	return r.inst.Readline()
}

func (r *readlineSource) Close() error {
	return r.inst.Close()
}

// scannerSource backs LineReader with a plain buffered reader, for
// non-terminal stdin.
type scannerSource struct {
	in  *bufio.Reader
	out io.Writer
}

func newScannerSource(in io.Reader, out io.Writer) *scannerSource {
	return &scannerSource{in: bufio.NewReader(in), out: out}
}

func (s *scannerSource) ReadLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *scannerSource) Close() error { return nil }

// NewLineReader opens a readline-backed reader for an interactive
// terminal session and falls back to a buffered-reader implementation
// when readline cannot take over the terminal (piped stdin, test
// harnesses).
func NewLineReader(in io.Reader, out io.Writer) LineReader {
	if r, err := newReadlineSource(); err == nil {
		return r
	}
	return newScannerSource(in, out)
}
