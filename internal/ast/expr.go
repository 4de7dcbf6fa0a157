package ast

import "github.com/loxi-lang/loxi/internal/lexer"

// Literal is a constant value baked into the source: a number, string,
// boolean, or nil.
type Literal struct {
	Value any
}

func (e *Literal) Accept(v ExprVisitor) (any, error) { return v.VisitLiteralExpr(e) }

// Variable is a reference to a named binding.
type Variable struct {
	Name lexer.Token
}

func (e *Variable) Accept(v ExprVisitor) (any, error) { return v.VisitVariableExpr(e) }

// Assign stores Value into the binding named Name, producing Value.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

func (e *Assign) Accept(v ExprVisitor) (any, error) { return v.VisitAssignExpr(e) }

// Unary applies a prefix operator (`-` or `!`) to Right.
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

func (e *Unary) Accept(v ExprVisitor) (any, error) { return v.VisitUnaryExpr(e) }

// Binary applies an infix operator to Left and Right. Unlike Logical,
// both operands are always evaluated.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Binary) Accept(v ExprVisitor) (any, error) { return v.VisitBinaryExpr(e) }

// Logical is `and`/`or`. It short-circuits: Right is only evaluated
// when Left does not already decide the result.
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Logical) Accept(v ExprVisitor) (any, error) { return v.VisitLogicalExpr(e) }

// Grouping is a parenthesized expression, kept as its own node so a
// pretty-printer can round-trip the source parens.
type Grouping struct {
	Expression Expr
}

func (e *Grouping) Accept(v ExprVisitor) (any, error) { return v.VisitGroupingExpr(e) }

// Call invokes Callee with Arguments. Paren is the closing `)` token,
// recorded so runtime errors (wrong arity, not callable) can be
// reported at a sensible source position.
type Call struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func (e *Call) Accept(v ExprVisitor) (any, error) { return v.VisitCallExpr(e) }

// Get reads the field or method named Name off Object.
type Get struct {
	Object Expr
	Name   lexer.Token
}

func (e *Get) Accept(v ExprVisitor) (any, error) { return v.VisitGetExpr(e) }

// Set stores Value into the field named Name on Object.
type Set struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func (e *Set) Accept(v ExprVisitor) (any, error) { return v.VisitSetExpr(e) }

// This resolves the implicit receiver inside a method body.
type This struct {
	Keyword lexer.Token
}

func (e *This) Accept(v ExprVisitor) (any, error) { return v.VisitThisExpr(e) }
