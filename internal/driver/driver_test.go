package driver

import (
	"strings"
	"testing"
)

func newTestDriver(input string) (*Driver, *strings.Builder, *strings.Builder) {
	var out, errOut strings.Builder
	d := New(&out, &errOut, strings.NewReader(input))
	return d, &out, &errOut
}

// A REPL runs every line as its own source unit against one Driver; a
// function declared on an earlier line must keep its resolved lexical
// distances when invoked from a later one.
func TestRunAccumulatesResolutionAcrossSourceUnits(t *testing.T) {
	d, out, errOut := newTestDriver("")

	d.Run(`fun greet() { let name = "hi"; return name; }`)
	if d.HadError() || d.HadRuntimeError() {
		t.Fatalf("unexpected error declaring greet: %s", errOut.String())
	}

	d.Run(`print(greet());`)
	if d.HadError() || d.HadRuntimeError() {
		t.Fatalf("unexpected error calling greet: %s", errOut.String())
	}
	if out.String() != "hi\n" {
		t.Errorf("got %q, want %q", out.String(), "hi\n")
	}
}

func TestRunPersistsTopLevelBindings(t *testing.T) {
	d, out, errOut := newTestDriver("")

	d.Run(`let x = 1;`)
	d.Run(`x = x + 1;`)
	d.Run(`print(x);`)
	if d.HadError() || d.HadRuntimeError() {
		t.Fatalf("unexpected error: %s", errOut.String())
	}
	if out.String() != "2\n" {
		t.Errorf("got %q, want %q", out.String(), "2\n")
	}
}

func TestRunResetsErrorFlagsBetweenCalls(t *testing.T) {
	d, _, _ := newTestDriver("")

	d.Run(`let x = ;`)
	if !d.HadError() {
		t.Fatalf("expected a parse error")
	}

	d.Run(`let y = 1;`)
	if d.HadError() {
		t.Errorf("error flag from an earlier run leaked into a clean one")
	}
}

func TestRunCompileErrorSkipsExecution(t *testing.T) {
	d, out, _ := newTestDriver("")

	d.Run(`print("before"); let x = ;`)
	if !d.HadError() {
		t.Fatalf("expected a parse error")
	}
	if out.String() != "" {
		t.Errorf("statically invalid source must not be partially executed, printed %q", out.String())
	}
}

func TestRunReadLineSeesDriverInput(t *testing.T) {
	d, out, errOut := newTestDriver("bob\n")

	d.Run(`print("hello " + readLine());`)
	if d.HadError() || d.HadRuntimeError() {
		t.Fatalf("unexpected error: %s", errOut.String())
	}
	if out.String() != "hello bob\n" {
		t.Errorf("got %q, want %q", out.String(), "hello bob\n")
	}
}
