package interp

import (
	"testing"

	"github.com/loxi-lang/loxi/internal/lexer"
)

func testToken(lexeme string) lexer.Token {
	return lexer.Token{Type: lexer.IDENTIFIER, Lexeme: lexeme, Line: 1}
}

func TestEnvironmentAssignRequiresExistingBinding(t *testing.T) {
	env := NewEnvironment()
	tok := testToken("x")
	if err := env.Assign(tok, 1.0); err == nil {
		t.Fatalf("expected an error assigning to an undeclared name")
	}
}

func TestEnvironmentAssignWalksEnclosing(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", 1.0)
	inner := NewEnclosedEnvironment(outer)

	if err := inner.Assign(testToken("x"), 2.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := outer.Get(testToken("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 2.0 {
		t.Errorf("got %v, want 2.0", v)
	}
}

func TestEnvironmentGetAtAssignAt(t *testing.T) {
	grandparent := NewEnvironment()
	grandparent.Define("x", 1.0)
	parent := NewEnclosedEnvironment(grandparent)
	child := NewEnclosedEnvironment(parent)

	if got := child.GetAt(2, "x"); got != 1.0 {
		t.Errorf("GetAt(2, x) = %v, want 1.0", got)
	}
	child.AssignAt(2, "x", 9.0)
	if got := grandparent.values["x"]; got != 9.0 {
		t.Errorf("AssignAt did not reach grandparent: got %v", got)
	}
}
