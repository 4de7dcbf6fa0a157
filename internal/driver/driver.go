// Package driver wires the scanner, parser, resolver, and interpreter
// into the single entry point the CLI uses for both file execution
// and REPL evaluation. It owns the diagnostics sink and the
// long-lived Interpreter explicitly, rather than leaning on
// package-level globals, so a REPL session can run many sources
// against one persistent environment without one line's error state
// bleeding into the next.
package driver

import (
	"bufio"
	"io"

	"github.com/loxi-lang/loxi/internal/errors"
	"github.com/loxi-lang/loxi/internal/interp"
	"github.com/loxi-lang/loxi/internal/lexer"
	"github.com/loxi-lang/loxi/internal/parser"
	"github.com/loxi-lang/loxi/internal/resolver"
)

// Driver runs loxi source against a persistent interpreter, reporting
// errors through a Diagnostics sink.
type Driver struct {
	diags  *errors.Diagnostics
	interp *interp.Interpreter
}

// New creates a Driver that writes `print` output to out, reads
// `readLine` input from in, and formats diagnostics to errOut. When
// in is already a *bufio.Reader it is used as-is, so a REPL can feed
// one shared buffer to both its own line reading and readLine().
func New(out, errOut io.Writer, in io.Reader) *Driver {
	d := &Driver{}
	d.diags = errors.New(func(line string) {
		io.WriteString(errOut, line+"\n")
	})
	buffered, ok := in.(*bufio.Reader)
	if !ok {
		buffered = bufio.NewReader(in)
	}
	d.interp = interp.New(out, buffered)
	return d
}

// Run scans, parses, resolves, and interprets src. Scan/parse/resolve
// errors abort before interpretation ever starts — a syntactically or
// statically invalid program is never partially executed.
func (d *Driver) Run(src string) {
	d.diags.Reset()

	scanner := lexer.New(src, d.diags)
	tokens := scanner.ScanTokens()

	program := parser.New(tokens, d.diags).ParseProgram()
	if d.diags.HadError() {
		return
	}

	locals := resolver.New(d.diags).Resolve(program)
	if d.diags.HadError() {
		return
	}

	d.interp.AddLocals(locals)
	if err := d.interp.Interpret(program); err != nil {
		d.diags.RuntimeError(interp.AsRuntimeError(err))
	}
}

// HadError reports whether the most recent Run hit a scan, parse, or
// resolve error.
func (d *Driver) HadError() bool { return d.diags.HadError() }

// HadRuntimeError reports whether the most recent Run hit a runtime
// error.
func (d *Driver) HadRuntimeError() bool { return d.diags.HadRuntimeError() }
