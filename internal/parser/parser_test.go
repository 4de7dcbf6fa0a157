package parser

import (
	"strings"
	"testing"

	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/errors"
	"github.com/loxi-lang/loxi/internal/lexer"
)

func parseSource(t *testing.T, src string) (*ast.Program, []string) {
	t.Helper()
	var messages []string
	diags := errors.New(func(s string) { messages = append(messages, s) })
	scanner := lexer.New(src, diags)
	program := New(scanner.ScanTokens(), diags).ParseProgram()
	return program, messages
}

func TestParseExpressionStatement(t *testing.T) {
	program, errs := parseSource(t, "1 + 2 * 3;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	stmt, ok := program.Statements[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("expected ExpressionStmt, got %T", program.Statements[0])
	}
	binary, ok := stmt.Expression.(*ast.Binary)
	if !ok || binary.Operator.Type != lexer.PLUS {
		t.Fatalf("expected top-level '+' binary, got %#v", stmt.Expression)
	}
	// Precedence: * binds tighter than +, so the right side is itself a Binary.
	if _, ok := binary.Right.(*ast.Binary); !ok {
		t.Fatalf("expected right side to be a nested binary (multiplication), got %#v", binary.Right)
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	program, errs := parseSource(t, "for (let i = 0; i < 5; i = i + 1) print(i);")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	outer, ok := program.Statements[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("expected outer block wrapping initializer, got %T", program.Statements[0])
	}
	if len(outer.Statements) != 2 {
		t.Fatalf("expected [init, while], got %d statements", len(outer.Statements))
	}
	if _, ok := outer.Statements[0].(*ast.LetStmt); !ok {
		t.Fatalf("expected first statement to be the let initializer, got %T", outer.Statements[0])
	}
	whileStmt, ok := outer.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected WhileStmt, got %T", outer.Statements[1])
	}
	if _, ok := whileStmt.Body.(*ast.ExpressionStmt); !ok {
		t.Fatalf("expected while body = print(i), got %#v", whileStmt.Body)
	}
	if whileStmt.Increment == nil {
		t.Fatalf("expected the increment to be attached to the WhileStmt, not folded into Body")
	}
}

func TestParseForWithMissingClausesDefaultsConditionTrue(t *testing.T) {
	program, errs := parseSource(t, "for (;;) break;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	whileStmt, ok := program.Statements[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected WhileStmt (no initializer to wrap in a block), got %T", program.Statements[0])
	}
	lit, ok := whileStmt.Condition.(*ast.Literal)
	if !ok || lit.Value != true {
		t.Fatalf("expected literal true condition, got %#v", whileStmt.Condition)
	}
}

func TestParseBreakOutsideLoopIsError(t *testing.T) {
	_, errs := parseSource(t, "break;")
	if len(errs) == 0 {
		t.Fatalf("expected an error for break outside a loop")
	}
}

func TestParseContinueOutsideLoopIsError(t *testing.T) {
	_, errs := parseSource(t, "continue;")
	if len(errs) == 0 {
		t.Fatalf("expected an error for continue outside a loop")
	}
}

func TestParseBreakInsideFunctionInsideLoopIsError(t *testing.T) {
	_, errs := parseSource(t, "for (;;) { fun f() { break; } }")
	if len(errs) == 0 {
		t.Fatalf("expected an error: a function body is not part of the enclosing loop")
	}
}

func TestParseReturnOutsideFunctionIsError(t *testing.T) {
	_, errs := parseSource(t, "return 1;")
	if len(errs) == 0 {
		t.Fatalf("expected an error for top-level return")
	}
}

func TestParseClassWithStaticMethod(t *testing.T) {
	program, errs := parseSource(t, `class M { static id(x) { return x; } bump() { return 1; } }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	class, ok := program.Statements[0].(*ast.ClassStmt)
	if !ok {
		t.Fatalf("expected ClassStmt, got %T", program.Statements[0])
	}
	if len(class.Methods) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(class.Methods))
	}
	if !class.Methods[0].IsStatic {
		t.Errorf("expected first method to be static")
	}
	if class.Methods[1].IsStatic {
		t.Errorf("expected second method to be non-static")
	}
}

func TestParseAssignmentTargetMustBeVariableOrGet(t *testing.T) {
	_, errs := parseSource(t, "1 = 2;")
	if len(errs) == 0 {
		t.Fatalf("expected an error for invalid assignment target")
	}
	if !strings.Contains(errs[0], "Illegal assignment target") {
		t.Errorf("got %q", errs[0])
	}
}

func TestParseSetExpression(t *testing.T) {
	program, errs := parseSource(t, "a.b = 1;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	stmt := program.Statements[0].(*ast.ExpressionStmt)
	set, ok := stmt.Expression.(*ast.Set)
	if !ok {
		t.Fatalf("expected Set expr, got %#v", stmt.Expression)
	}
	if set.Name.Lexeme != "b" {
		t.Errorf("got field %q", set.Name.Lexeme)
	}
}

func TestParseErrorRecoverySkipsOnlyBadStatement(t *testing.T) {
	program, errs := parseSource(t, "let x = ; let y = 2;")
	if len(errs) == 0 {
		t.Fatalf("expected a parse error")
	}
	if len(program.Statements) != 1 {
		t.Fatalf("expected the parser to recover and keep the valid statement, got %d statements", len(program.Statements))
	}
	letStmt, ok := program.Statements[0].(*ast.LetStmt)
	if !ok || letStmt.Name.Lexeme != "y" {
		t.Fatalf("expected recovered statement to be `let y = 2;`, got %#v", program.Statements[0])
	}
}

func TestParseArgumentLimitReportsButDoesNotAbort(t *testing.T) {
	var args []string
	for i := 0; i < 256; i++ {
		args = append(args, "1")
	}
	src := "f(" + strings.Join(args, ",") + ");"
	_, errs := parseSource(t, src)
	if len(errs) == 0 {
		t.Fatalf("expected an argument-limit error")
	}
}
