package interp

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// defineGlobals installs the small set of native functions every
// program has available without an import: clock for benchmarking
// scripts, print (also reachable as a statement-less call in the
// REPL), and readLine for simple interactive programs.
func defineGlobals(globals *Environment, out io.Writer, in *bufio.Reader) {
	globals.Define("clock", &NativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(_ *Interpreter, _ []Value) (Value, error) {
			return float64(time.Now().UnixMilli()), nil
		},
	})

	globals.Define("print", &NativeFunction{
		name:  "print",
		arity: 1,
		fn: func(_ *Interpreter, args []Value) (Value, error) {
			fmt.Fprintln(out, stringify(args[0]))
			return nil, nil
		},
	})

	globals.Define("readLine", &NativeFunction{
		name:  "readLine",
		arity: 0,
		fn: func(_ *Interpreter, _ []Value) (Value, error) {
			line, err := in.ReadString('\n')
			if err != nil && line == "" {
				return nil, nil
			}
			for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
				line = line[:len(line)-1]
			}
			return line, nil
		},
	})
}
