package ast

import "github.com/loxi-lang/loxi/internal/lexer"

// ExpressionStmt evaluates Expression for its side effects and
// discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) (any, error) { return v.VisitExpressionStmt(s) }

// LetStmt declares a new binding named Name, optionally initialized
// by Initializer. An absent Initializer binds nil.
type LetStmt struct {
	Name        lexer.Token
	Initializer Expr // nil if omitted
}

func (s *LetStmt) Accept(v StmtVisitor) (any, error) { return v.VisitLetStmt(s) }

// BlockStmt introduces a new lexical scope around Statements.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) (any, error) { return v.VisitBlockStmt(s) }

// IfStmt runs Then when Condition is truthy, else Else (which may be
// nil).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if no else branch
}

func (s *IfStmt) Accept(v StmtVisitor) (any, error) { return v.VisitIfStmt(s) }

// WhileStmt repeats Body while Condition evaluates truthy. `for`
// loops desugar into a WhileStmt during parsing (see
// parser.Parser.forStatement), carrying their increment in Increment
// so it still runs after a `continue` skips the rest of Body — only
// `break` bypasses it.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
	Increment Expr // nil for a source-level `while`
}

func (s *WhileStmt) Accept(v StmtVisitor) (any, error) { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function or, when parsed as a class
// member, a method. IsStatic only has meaning for methods: it marks
// the method as attached to the class value itself rather than to
// instances.
type FunctionStmt struct {
	Name     lexer.Token
	Params   []lexer.Token
	Body     []Stmt
	IsStatic bool
}

func (s *FunctionStmt) Accept(v StmtVisitor) (any, error) { return v.VisitFunctionStmt(s) }

// ClassStmt declares a class with the given Methods. The language has
// no superclasses.
type ClassStmt struct {
	Name    lexer.Token
	Methods []*FunctionStmt
}

func (s *ClassStmt) Accept(v StmtVisitor) (any, error) { return v.VisitClassStmt(s) }

// ReturnStmt exits the enclosing function, optionally carrying Value.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr // nil if no value given
}

func (s *ReturnStmt) Accept(v StmtVisitor) (any, error) { return v.VisitReturnStmt(s) }

// BreakStmt exits the enclosing loop immediately.
type BreakStmt struct {
	Keyword lexer.Token
}

func (s *BreakStmt) Accept(v StmtVisitor) (any, error) { return v.VisitBreakStmt(s) }

// ContinueStmt skips to the next condition check of the enclosing
// loop.
type ContinueStmt struct {
	Keyword lexer.Token
}

func (s *ContinueStmt) Accept(v StmtVisitor) (any, error) { return v.VisitContinueStmt(s) }
