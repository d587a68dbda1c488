package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsethi-dev/tjscript/env"
	"github.com/nsethi-dev/tjscript/lexer"
)

// run executes src against a fresh Interpreter and returns its stdout and
// the first fatal error, if any.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	it := New(lexer.NewCharSource([]byte(src)), &out, nil)
	err := it.Run()
	return out.String(), err
}

func TestDeclarationThenOutput(t *testing.T) {
	out, err := run(t, `new int x; x := 5; output x;`)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestRedeclaredVariableIsFatal(t *testing.T) {
	_, err := run(t, `new int x; new int x;`)
	require.Error(t, err)
}

func TestPlainAssignTypeMismatchIsFatal(t *testing.T) {
	_, err := run(t, `new int x; x := "hi";`)
	require.Error(t, err)
}

func TestPlainAssignFromIdentifierCopiesValue(t *testing.T) {
	out, err := run(t, `new text a; a := "hi"; new text b; b := a; output b;`)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out)
}

func TestPlainAssignFromIdentifierTypeMismatchIsFatal(t *testing.T) {
	_, err := run(t, `new int a; a := 1; new text b; b := a;`)
	require.Error(t, err)
}

func TestOutputOfUndeclaredVariableIsFatal(t *testing.T) {
	_, err := run(t, `output x;`)
	require.Error(t, err)
}

func TestIntArithmeticAddition(t *testing.T) {
	out, err := run(t, `new int x; x := 5; new int y; y := 7; new int z; z := x + y; output z;`)
	require.NoError(t, err)
	assert.Equal(t, "12\n", out)
}

func TestIntArithmeticAdditionWraps(t *testing.T) {
	out, err := run(t, `new int x; x := 4294967295; new int y; y := 1; new int z; z := x + y; output z;`)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestIntSubtractionUnderflowIsFatal(t *testing.T) {
	_, err := run(t, `new int n; n := 3; new int m; m := 5; new int d; d := n - m;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "The answer cannot be negative!")
}

func TestIntSubtractionEqualYieldsZero(t *testing.T) {
	out, err := run(t, `new int a; a := 5; new int b; b := 5; new int d; d := a - b; output d;`)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestTextConcatenation(t *testing.T) {
	out, err := run(t, `new text a; a := "hello"; new text b; b := "world"; new text c; c := a + b; output c;`)
	require.NoError(t, err)
	assert.Equal(t, "helloworld\n", out)
}

func TestTextSubtractionRemovesFirstOccurrence(t *testing.T) {
	out, err := run(t, `new text a; a := "hello world"; new text b; b := "world"; new text c; c := a - b; output c;`)
	require.NoError(t, err)
	assert.Equal(t, "hello \n", out)
}

func TestTextSubtractionMissingSubstringLeavesUnchanged(t *testing.T) {
	out, err := run(t, `new text a; a := "hello"; new text b; b := "xyz"; new text c; c := a - b; output c;`)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestTextSubtractionLongerOperandIsFatal(t *testing.T) {
	_, err := run(t, `new text a; a := "hi"; new text b; b := "hello"; new text c; c := a - b;`)
	require.Error(t, err)
}

func TestBuiltinSize(t *testing.T) {
	out, err := run(t, `new text s; s := "abcdef"; new int n; n := size(s); output n;`)
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)
}

func TestBuiltinSubs(t *testing.T) {
	out, err := run(t, `new text s; s := "hello world"; new text t; t := subs(s, 6, 11); output t;`)
	require.NoError(t, err)
	assert.Equal(t, "world\n", out)
}

func TestBuiltinLocate(t *testing.T) {
	out, err := run(t, `new text s; s := "abcdef"; new text p; p := "cd"; new int i; i := locate(s, p, 0); output i;`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestBuiltinAsTextAndAsStringAgree(t *testing.T) {
	out, err := run(t, `new int n; n := 42; new text a; a := asText(n); new text b; b := asString(n); output a; output b;`)
	require.NoError(t, err)
	assert.Equal(t, "42\n42\n", out)
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := run(t, `new text name; name := "roundtrip"; new text body; body := "persisted"; write body to name; new text back; read back from name; output back;`)
	require.NoError(t, err)
	assert.Equal(t, "persisted\n", out)
}

func TestReadMissingFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := run(t, `new text name; name := "does-not-exist"; new text into; read into from name;`)
	require.Error(t, err)
}

func TestUnterminatedLineAtEOFIsDiscardedSilently(t *testing.T) {
	out, err := run(t, `new int x; x := 5; output x; new int y`)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestUnrecognizedStatementShapeIsParseError(t *testing.T) {
	_, err := run(t, `output output;`)
	require.Error(t, err)
}

// stubLineReader feeds a fixed queue of lines to an Interpreter's input
// statement, recording the prompts it was given.
type stubLineReader struct {
	lines   []string
	prompts []string
}

func (s *stubLineReader) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *stubLineReader) Close() error { return nil }

func TestInputReadsLineAndPrintsPromptWithColon(t *testing.T) {
	var out bytes.Buffer
	stub := &stubLineReader{lines: []string{"Ada"}}
	it := New(lexer.NewCharSource([]byte(`new text name; new text greeting; greeting := "Name"; input name prompt greeting; output name;`)), &out, stub)

	require.NoError(t, it.Run())
	assert.Equal(t, "Ada\n", out.String())
	require.Len(t, stub.prompts, 1)
	assert.Equal(t, "Name: ", stub.prompts[0])
}

func TestInputDoesNotTypeCheckDestination(t *testing.T) {
	var out bytes.Buffer
	stub := &stubLineReader{lines: []string{"not-a-number"}}
	it := New(lexer.NewCharSource([]byte(`new int n; new text p; p := "Enter"; input n prompt p;`)), &out, stub)

	require.NoError(t, it.Run())
	v, err := it.Env.Lookup(0, "n")
	require.NoError(t, err)
	assert.Equal(t, "not-a-number", v.Value)
	assert.Equal(t, env.Int, v.Type)
}
