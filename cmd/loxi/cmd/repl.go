package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/loxi-lang/loxi/internal/driver"
)

// runREPL implements the read-eval-print loop: each line is run as
// its own source unit against one persistent Driver, so top-level
// `let`/`fun`/`class` declarations from earlier lines remain visible.
// A line ending in neither `;` nor `}` gets a `;` appended, since the
// grammar requires it but typing it at a prompt is friction users
// shouldn't pay for.
func runREPL(in io.Reader, out, errOut io.Writer) {
	// A single shared *bufio.Reader feeds both the REPL's own line
	// reading and the Driver's readLine() native function — two
	// independent buffered readers wrapping the same raw stdin would
	// each consume ahead and silently drop the other's input.
	buffered := bufio.NewReader(in)
	d := driver.New(out, errOut, buffered)

	for {
		fmt.Fprint(out, "> ")
		raw, err := buffered.ReadString('\n')
		if err != nil && raw == "" {
			return
		}
		line := strings.TrimRight(raw, " \t\r\n")
		if line == "" {
			continue
		}
		if !strings.HasSuffix(line, ";") && !strings.HasSuffix(line, "}") {
			line += ";"
		}
		d.Run(line)
	}
}
