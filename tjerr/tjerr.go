/*
Package tjerr defines the single error type shared by every stage of the
tj interpreter pipeline (lexer, dispatcher, statement handlers).

The source program this interpreter replaces reported every failure by
printing a message and calling exit(1) directly from deep inside the lexer
and evaluator. That makes the pipeline untestable: you cannot unit test a
function that terminates the process. Here, every stage instead returns an
ordinary Go error built with New, and only cmd/tj converts the final error
into the printed diagnostic and the process exit code.
*/
package tjerr

import "fmt"

// Error is a fatal interpreter error tagged with the source line it
// occurred on. Every lexical, parse, and runtime error in this interpreter
// is represented by one of these - there is no recovery, matching the
// source language's all-errors-are-fatal policy.
type Error struct {
	Line    int
	Message string
}

// New builds an *Error for the given line, formatting Message the way
// fmt.Sprintf does.
func New(line int, format string, args ...any) *Error {
	return &Error{Line: line, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface. The driver prepends "ERR! " to
// this when printing it; the format here is shared by every call site so
// a bare %v also reads sensibly in test failure output.
func (e *Error) Error() string {
	return fmt.Sprintf("Line %d:  %s", e.Line, e.Message)
}
