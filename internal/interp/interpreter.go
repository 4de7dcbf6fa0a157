// Package interp implements the tree-walking evaluator: given a
// resolved AST it executes statements and evaluates expressions
// directly, using Environment for lexical scope and Callable for
// functions, methods, and classes.
package interp

import (
	"bufio"
	"io"

	"github.com/loxi-lang/loxi/internal/ast"
	diag "github.com/loxi-lang/loxi/internal/errors"
	"github.com/loxi-lang/loxi/internal/lexer"
)

// Interpreter walks a resolved *ast.Program, implementing both
// ast.ExprVisitor and ast.StmtVisitor. One Interpreter holds the
// entire global environment for a run; a REPL driver reuses the same
// Interpreter across lines so top-level bindings persist.
type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  map[ast.Expr]int
}

// New creates an Interpreter that writes `print` output to out and
// reads `readLine` input from in. The reader is taken pre-buffered so
// a caller that also reads from the same underlying stream (the REPL
// loop) can share one buffer with readLine instead of the two
// racing read-ahead buffers separate wrapping would create.
func New(out io.Writer, in *bufio.Reader) *Interpreter {
	globals := NewEnvironment()
	defineGlobals(globals, out, in)
	return &Interpreter{
		globals: globals,
		env:     globals,
		locals:  make(map[ast.Expr]int),
	}
}

// AddLocals merges the distance table produced by resolver.Resolver
// into the interpreter's own, ahead of interpretation. Entries
// accumulate across calls: a REPL runs each line as its own source
// unit through its own resolver, and a function body resolved on an
// earlier line must keep its distances when invoked from a later one.
func (in *Interpreter) AddLocals(locals map[ast.Expr]int) {
	for expr, dist := range locals {
		in.locals[expr] = dist
	}
}

// Interpret executes every statement in program, stopping at the
// first runtime error. The error is returned as-is so the driver can
// report it. A stray top-level return/break/continue is rejected
// before interpretation (by the parser, and for return also by the
// resolver), so no control-flow signal escapes to this level.
func (in *Interpreter) Interpret(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	_, err := stmt.Accept(in)
	return err
}

func (in *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	return expr.Accept(in)
}

// executeBlock runs statements in env, always restoring the
// interpreter's previous environment on the way out — including when
// a non-local control signal or runtime error is propagating.
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- StmtVisitor ---

func (in *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) (any, error) {
	_, err := in.evaluate(s.Expression)
	return nil, err
}

func (in *Interpreter) VisitLetStmt(s *ast.LetStmt) (any, error) {
	var value Value
	if s.Initializer != nil {
		var err error
		value, err = in.evaluate(s.Initializer)
		if err != nil {
			return nil, err
		}
	}
	in.env.Define(s.Name.Lexeme, value)
	return nil, nil
}

func (in *Interpreter) VisitBlockStmt(s *ast.BlockStmt) (any, error) {
	return nil, in.executeBlock(s.Statements, NewEnclosedEnvironment(in.env))
}

func (in *Interpreter) VisitIfStmt(s *ast.IfStmt) (any, error) {
	cond, err := in.evaluate(s.Condition)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return nil, in.execute(s.Then)
	}
	if s.Else != nil {
		return nil, in.execute(s.Else)
	}
	return nil, nil
}

// VisitWhileStmt is the only place break/continue signals are caught:
// continue skips the rest of Body and falls through to Increment (if
// this loop desugared from a `for`) before re-checking the condition;
// break exits the loop entirely, bypassing Increment. Blocks and ifs
// never intercept these signals, so a break inside a nested if still
// reaches its loop.
func (in *Interpreter) VisitWhileStmt(s *ast.WhileStmt) (any, error) {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return nil, nil
		}

		err = in.execute(s.Body)
		if err != nil {
			switch err.(type) {
			case breakSignal:
				return nil, nil
			case continueSignal:
				// fall through to Increment below
			default:
				return nil, err
			}
		}

		if s.Increment != nil {
			if _, err := in.evaluate(s.Increment); err != nil {
				return nil, err
			}
		}
	}
}

func (in *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) (any, error) {
	fn := NewFunction(s, in.env, false)
	in.env.Define(s.Name.Lexeme, fn)
	return nil, nil
}

func (in *Interpreter) VisitClassStmt(s *ast.ClassStmt) (any, error) {
	in.env.Define(s.Name.Lexeme, nil)

	methods := make(map[string]*Function)
	for _, m := range s.Methods {
		if m.IsStatic {
			continue
		}
		methods[m.Name.Lexeme] = NewFunction(m, in.env, m.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, methods)
	// Static methods close over an interposed environment layer
	// mirroring the scope the resolver opens around every method body,
	// so lexical distances into enclosing scopes line up the same way
	// they do for instance methods bound via Function.bind. `this` is
	// nil there: a static method has no receiver.
	staticEnv := NewEnclosedEnvironment(in.env)
	staticEnv.Define("this", nil)
	for _, m := range s.Methods {
		if !m.IsStatic {
			continue
		}
		class.Statics.Fields[m.Name.Lexeme] = NewFunction(m, staticEnv, false)
	}

	return nil, in.env.Assign(s.Name, class)
}

func (in *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) (any, error) {
	var value Value
	if s.Value != nil {
		var err error
		value, err = in.evaluate(s.Value)
		if err != nil {
			return nil, err
		}
	}
	return nil, returnSignal{value: value}
}

func (in *Interpreter) VisitBreakStmt(s *ast.BreakStmt) (any, error) {
	return nil, breakSignal{}
}

func (in *Interpreter) VisitContinueStmt(s *ast.ContinueStmt) (any, error) {
	return nil, continueSignal{}
}

// --- ExprVisitor ---

func (in *Interpreter) VisitLiteralExpr(e *ast.Literal) (any, error) {
	return e.Value, nil
}

func (in *Interpreter) VisitVariableExpr(e *ast.Variable) (any, error) {
	return in.lookUpVariable(e.Name, e)
}

func (in *Interpreter) lookUpVariable(name lexer.Token, expr ast.Expr) (Value, error) {
	if dist, ok := in.locals[expr]; ok {
		return in.env.GetAt(dist, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

func (in *Interpreter) VisitAssignExpr(e *ast.Assign) (any, error) {
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if dist, ok := in.locals[e]; ok {
		in.env.AssignAt(dist, e.Name.Lexeme, value)
	} else if err := in.globals.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (in *Interpreter) VisitUnaryExpr(e *ast.Unary) (any, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		n, err := checkNumberOperand(e.Operator, right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	case lexer.BANG:
		return !isTruthy(right), nil
	}
	return nil, newRuntimeError(e.Operator, "Unknown unary operator.")
}

// VisitBinaryExpr evaluates the left operand before the right, so side
// effects observe lexical reading order.
func (in *Interpreter) VisitBinaryExpr(e *ast.Binary) (any, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case lexer.STAR:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case lexer.SLASH:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case lexer.GREATER:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case lexer.GREATER_EQUAL:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case lexer.LESS:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case lexer.LESS_EQUAL:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case lexer.PLUS:
		return in.add(e.Operator, left, right)
	case lexer.EQUAL_EQUAL:
		return valuesEqual(left, right), nil
	case lexer.BANG_EQUAL:
		return !valuesEqual(left, right), nil
	}
	return nil, newRuntimeError(e.Operator, "Unknown binary operator.")
}

// add implements `+`: numeric addition when both operands are
// Numbers, otherwise string concatenation of the display form as soon
// as either operand is a String, otherwise a runtime error.
func (in *Interpreter) add(op lexer.Token, left, right Value) (Value, error) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	}
	_, leftIsString := left.(string)
	_, rightIsString := right.(string)
	if leftIsString || rightIsString {
		return stringify(left) + stringify(right), nil
	}
	return nil, newRuntimeError(op, "Operands must be two numbers or two strings.")
}

func (in *Interpreter) VisitLogicalExpr(e *ast.Logical) (any, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == lexer.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) VisitGroupingExpr(e *ast.Grouping) (any, error) {
	return in.evaluate(e.Expression)
}

func (in *Interpreter) VisitCallExpr(e *ast.Call) (any, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, newRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) VisitGetExpr(e *ast.Get) (any, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	switch obj := object.(type) {
	case *Instance:
		return obj.Get(e.Name)
	case *Class:
		return obj.Get(e.Name)
	default:
		return nil, newRuntimeError(e.Name, "Only instances have properties.")
	}
}

func (in *Interpreter) VisitSetExpr(e *ast.Set) (any, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have fields.")
	}

	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, value)
	return value, nil
}

func (in *Interpreter) VisitThisExpr(e *ast.This) (any, error) {
	return in.lookUpVariable(e.Keyword, e)
}

// --- Operand checks ---

func checkNumberOperand(op lexer.Token, operand Value) (float64, error) {
	if n, ok := operand.(float64); ok {
		return n, nil
	}
	return 0, newRuntimeError(op, "Operand must be a number.")
}

func checkNumberOperands(op lexer.Token, left, right Value) (float64, float64, error) {
	l, ok1 := left.(float64)
	r, ok2 := right.(float64)
	if !ok1 || !ok2 {
		return 0, 0, newRuntimeError(op, "Operands must be numbers.")
	}
	return l, r, nil
}

// AsRuntimeError adapts an interpreter error into the diagnostics
// sink's *diag.RuntimeError, for callers (the driver) that need the
// concrete type rather than the plain error interface. Any other
// error is wrapped in a RuntimeError at line 0. Control-flow signals
// never reach here: the parser's and resolver's context checks
// guarantee return/break/continue only ever appear nested inside
// their legalizing context.
func AsRuntimeError(err error) *diag.RuntimeError {
	if re, ok := err.(*diag.RuntimeError); ok {
		return re
	}
	return diag.NewRuntimeError(lexer.Token{Line: 0}, "%s", err.Error())
}
