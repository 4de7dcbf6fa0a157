// Package resolver performs the single static pass between parsing
// and interpretation: for every Variable, Assign, and This expression
// it computes how many enclosing lexical scopes must be walked to
// find the binding ("resolver distance"), and performs the static
// checks that only make sense with full knowledge of scope nesting
// (self-referencing initializers, return outside a function or with a
// value inside an initializer, `this` outside a class, duplicate
// declarations in one scope). break/continue outside a loop are
// checked by the parser, not here.
//
// The resolver never touches runtime values; its only output is a
// side table keyed by expression identity, consumed later by
// interp.Interpreter.
package resolver

import (
	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/errors"
	"github.com/loxi-lang/loxi/internal/lexer"
)

// functionType tracks what kind of function body (if any) the
// resolver is currently inside, which governs whether `return` is
// legal and what an implicit return should mean.
type functionType int

const (
	noFunction functionType = iota
	regularFunction
	initializerFunction
	methodFunction
)

// classType tracks whether the resolver is currently inside a class
// body, which governs whether `this` is legal.
type classType int

const (
	noClass classType = iota
	inClass
)

// scope maps a name to whether its declaration has finished resolving
// its initializer yet. A name present with value false is "declared
// but not yet defined" — referencing it in that window is the
// self-reference error the resolver exists to catch.
type scope map[string]bool

// Resolver walks an AST once, annotating every variable reference
// with a lexical distance via a side table rather than mutating the
// AST nodes themselves.
type Resolver struct {
	scopes   []scope
	locals   map[ast.Expr]int
	diags    *errors.Diagnostics
	funcCtx  functionType
	classCtx classType
}

// New creates a Resolver reporting errors to diags.
func New(diags *errors.Diagnostics) *Resolver {
	return &Resolver{
		locals: make(map[ast.Expr]int),
		diags:  diags,
	}
}

// Resolve walks program and returns the distance table to be merged
// into the interpreter via interp.Interpreter.AddLocals.
func (r *Resolver) Resolve(program *ast.Program) map[ast.Expr]int {
	r.resolveStatements(program.Statements)
	return r.locals
}

func (r *Resolver) resolveStatements(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	if s == nil {
		return
	}
	_, _ = s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	if e == nil {
		return
	}
	_, _ = e.Accept(r)
}

// --- Scope stack ---

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare registers name in the current scope as not-yet-defined. It
// is a no-op at global scope: globals are never tracked in the scope
// stack, so unresolved references simply fall through to runtime
// lookup. Re-declaring a name already present in the same scope is an
// error.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	current := r.scopes[len(r.scopes)-1]
	if _, ok := current[name.Lexeme]; ok {
		r.diags.TokenError(name, "Already a variable with this name in this scope.")
	}
	current[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal searches the scope stack top-down for name, recording
// the distance of the first scope that declares it. An expression
// whose name is not found in any scope is left unresolved, meaning
// "look up in globals" at interpretation time.
func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

// --- StmtVisitor ---

func (r *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) (any, error) {
	r.resolveExpr(s.Expression)
	return nil, nil
}

func (r *Resolver) VisitLetStmt(s *ast.LetStmt) (any, error) {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil, nil
}

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) (any, error) {
	r.beginScope()
	r.resolveStatements(s.Statements)
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) (any, error) {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil, nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) (any, error) {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	if s.Increment != nil {
		r.resolveExpr(s.Increment)
	}
	return nil, nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) (any, error) {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, regularFunction)
	return nil, nil
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionType) {
	enclosingFunc := r.funcCtx
	r.funcCtx = kind
	defer func() { r.funcCtx = enclosingFunc }()

	r.beginScope()
	defer r.endScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.Body)
}

func (r *Resolver) VisitClassStmt(s *ast.ClassStmt) (any, error) {
	enclosingClass := r.classCtx
	r.classCtx = inClass
	defer func() { r.classCtx = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	r.beginScope()
	defer r.endScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := methodFunction
		if method.Name.Lexeme == "init" {
			kind = initializerFunction
		}
		r.resolveFunction(method, kind)
	}
	return nil, nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) (any, error) {
	if r.funcCtx == noFunction {
		r.diags.TokenError(s.Keyword, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.funcCtx == initializerFunction {
			r.diags.TokenError(s.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
	return nil, nil
}

func (r *Resolver) VisitBreakStmt(s *ast.BreakStmt) (any, error)       { return nil, nil }
func (r *Resolver) VisitContinueStmt(s *ast.ContinueStmt) (any, error) { return nil, nil }

// --- ExprVisitor ---

func (r *Resolver) VisitLiteralExpr(e *ast.Literal) (any, error) { return nil, nil }

func (r *Resolver) VisitVariableExpr(e *ast.Variable) (any, error) {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
			r.diags.TokenError(e.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(e *ast.Assign) (any, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.Unary) (any, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.Binary) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.Logical) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.Grouping) (any, error) {
	r.resolveExpr(e.Expression)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.Call) (any, error) {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Arguments {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(e *ast.Get) (any, error) {
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitSetExpr(e *ast.Set) (any, error) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitThisExpr(e *ast.This) (any, error) {
	if r.classCtx == noClass {
		r.diags.TokenError(e.Keyword, "Can't use 'this' outside of a class.")
		return nil, nil
	}
	r.resolveLocal(e, e.Keyword)
	return nil, nil
}
