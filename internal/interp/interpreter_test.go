package interp

import (
	"bufio"
	"strings"
	"testing"

	"github.com/loxi-lang/loxi/internal/errors"
	"github.com/loxi-lang/loxi/internal/lexer"
	"github.com/loxi-lang/loxi/internal/parser"
	"github.com/loxi-lang/loxi/internal/resolver"
)

// run compiles and executes src against a fresh Interpreter, returning
// everything written to stdout and the runtime error, if any.
// Scan/parse/resolve errors fail the test immediately.
func run(t *testing.T, src string) (string, error) {
	t.Helper()

	var diagMsgs []string
	diags := errors.New(func(s string) { diagMsgs = append(diagMsgs, s) })

	tokens := lexer.New(src, diags).ScanTokens()
	program := parser.New(tokens, diags).ParseProgram()
	if diags.HadError() {
		t.Fatalf("unexpected compile error(s): %v", diagMsgs)
	}

	locals := resolver.New(diags).Resolve(program)
	if diags.HadError() {
		t.Fatalf("unexpected resolve error(s): %v", diagMsgs)
	}

	var out strings.Builder
	in := New(&out, bufio.NewReader(strings.NewReader("")))
	in.AddLocals(locals)
	err := in.Interpret(program)
	return out.String(), err
}

func TestClosuresCaptureByReference(t *testing.T) {
	out, err := run(t, `
		fun make() { let x = 0; fun inc() { x = x + 1; return x; } return inc; }
		let f = make();
		print(f());
		print(f());
		print(f());
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "1\n2\n3\n" {
		t.Errorf("got %q, want %q", out, "1\n2\n3\n")
	}
}

func TestArithmeticPrintingStripsDotZero(t *testing.T) {
	out, err := run(t, `
		print(1 + 2);
		print(1.5 + 1.5);
		print(1 / 2);
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "3\n3\n0.5\n" {
		t.Errorf("got %q, want %q", out, "3\n3\n0.5\n")
	}
}

func TestForDesugaringWithBreakAndContinue(t *testing.T) {
	out, err := run(t, `
		for (let i = 0; i < 5; i = i + 1) {
			if (i == 2) continue;
			if (i == 4) break;
			print(i);
		}
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "0\n1\n3\n" {
		t.Errorf("got %q, want %q", out, "0\n1\n3\n")
	}
}

func TestClassesAndThis(t *testing.T) {
	out, err := run(t, `
		class Counter {
			init(start) { this.n = start; }
			bump() { this.n = this.n + 1; return this.n; }
		}
		let c = Counter(10);
		print(c.bump());
		print(c.bump());
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "11\n12\n" {
		t.Errorf("got %q, want %q", out, "11\n12\n")
	}
}

func TestStaticMethods(t *testing.T) {
	out, err := run(t, `
		class M { static id(x) { return x; } }
		print(M.id(42));
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "42\n" {
		t.Errorf("got %q, want %q", out, "42\n")
	}
}

func TestStaticMethodClosesOverEnclosingScope(t *testing.T) {
	out, err := run(t, `
		{
			let base = 40;
			class M { static addBase(x) { return base + x; } }
			print(M.addBase(2));
		}
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "42\n" {
		t.Errorf("got %q, want %q", out, "42\n")
	}
}

func TestPlusConcatenatesWhenEitherOperandIsString(t *testing.T) {
	out, err := run(t, `print("count: " + 3);`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "count: 3\n" {
		t.Errorf("got %q, want %q", out, "count: 3\n")
	}
}

func TestPlusRejectsNumberAndBool(t *testing.T) {
	_, err := run(t, `print(1 + true);`)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Operands must be two numbers or two strings") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print(undefinedThing);`)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Undefined variable") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestDivisionByZeroFollowsIEEE754(t *testing.T) {
	out, err := run(t, `
		print(1 / 0);
		print(-1 / 0);
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "+Inf\n-Inf\n" {
		t.Errorf("got %q, want %q", out, "+Inf\n-Inf\n")
	}
}

func TestLogicalOperatorsReturnOriginalOperandValue(t *testing.T) {
	out, err := run(t, `
		print(nil or "fallback");
		print(1 and 2);
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "fallback\n2\n" {
		t.Errorf("got %q, want %q", out, "fallback\n2\n")
	}
}

func TestFieldShadowsMethodOfSameName(t *testing.T) {
	out, err := run(t, `
		class C { greet() { return "method"; } }
		let c = C();
		c.greet = "field";
		print(c.greet);
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "field\n" {
		t.Errorf("got %q, want %q", out, "field\n")
	}
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `let x = 1; x();`)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Can only call functions and classes") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestWrongArityIsRuntimeError(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Expected 2 arguments but got 1") {
		t.Errorf("unexpected message: %v", err)
	}
}
