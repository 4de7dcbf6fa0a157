// Package errors implements the diagnostics sink shared by the
// scanner, parser, resolver, and interpreter: it accumulates
// compile-time errors and reports runtime errors, in the exact wire
// format a terminal driver is expected to print.
package errors

import (
	"fmt"

	"github.com/loxi-lang/loxi/internal/lexer"
)

// RuntimeError is raised by the interpreter when a well-formed
// program cannot be executed (e.g. "Undefined variable 'x'."). It
// carries the token nearest the failure so the sink can report a line
// number, and is deliberately a distinct type from the control-flow
// signals used for return/break/continue (see returnSignal,
// breakSignal, and continueSignal in package interp) so the two can
// never be confused.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[Line %d] %s", e.Token.Line, e.Message)
}

// NewRuntimeError constructs a RuntimeError positioned at tok.
func NewRuntimeError(tok lexer.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// Diagnostics collects compile-time errors and reports runtime
// errors. It is owned by a single driver.Driver instance rather than
// living as package-level mutable state, so concurrent or repeated
// REPL evaluations never cross-contaminate each other's error state.
type Diagnostics struct {
	hadError        bool
	hadRuntimeError bool
	sink            func(string)
}

// New creates a Diagnostics that writes formatted messages to sink.
// sink is typically a closure over os.Stderr, but tests may supply
// one that appends to a slice instead.
func New(sink func(string)) *Diagnostics {
	return &Diagnostics{sink: sink}
}

// ScanError reports a lexical error discovered at the given line.
// lexer.Reporter is satisfied through its alias Error below.
func (d *Diagnostics) ScanError(line int, message string) {
	d.report(line, "", message)
}

// Error reports a lexical error discovered at the given line. It is
// an alias for ScanError satisfying lexer.Reporter's method name.
func (d *Diagnostics) Error(line int, message string) {
	d.ScanError(line, message)
}

// TokenError reports a compile-time (parse or resolve) error located
// at tok. The "where" clause is " at end" at EOF, or " at '<lexeme>'"
// otherwise; scan errors carry no clause at all.
func (d *Diagnostics) TokenError(tok lexer.Token, message string) {
	if tok.Type == lexer.EOF {
		d.report(tok.Line, " at end", message)
	} else {
		d.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
	}
}

func (d *Diagnostics) report(line int, where, message string) {
	d.hadError = true
	if d.sink != nil {
		d.sink(fmt.Sprintf("[line %d] Error%s: %s", line, where, message))
	}
}

// RuntimeError reports a runtime error produced by the interpreter.
func (d *Diagnostics) RuntimeError(err *RuntimeError) {
	d.hadRuntimeError = true
	if d.sink != nil {
		d.sink(err.Error())
	}
}

// HadError reports whether any compile-time error has been recorded.
func (d *Diagnostics) HadError() bool { return d.hadError }

// HadRuntimeError reports whether a runtime error has been recorded.
func (d *Diagnostics) HadRuntimeError() bool { return d.hadRuntimeError }

// Reset clears both error flags, used by the REPL driver between
// input lines so one bad line doesn't poison the rest of the session.
func (d *Diagnostics) Reset() {
	d.hadError = false
	d.hadRuntimeError = false
}
