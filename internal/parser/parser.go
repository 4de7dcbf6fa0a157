// Package parser implements a recursive-descent parser that turns a
// token stream into an AST, recording syntax errors with the shared
// diagnostics sink instead of panicking out of the call stack.
package parser

import (
	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/errors"
	"github.com/loxi-lang/loxi/internal/lexer"
)

const maxArguments = 255

// functionKind distinguishes a plain function declaration from a
// class method for error messages and grammar reuse.
type functionKind string

const (
	kindFunction functionKind = "function"
	kindMethod   functionKind = "method"
)

// parseError signals that a production could not complete; the
// diagnostic has already been sent to the sink by the time one of
// these is returned, so callers only need to unwind and
// resynchronize, never format a message themselves.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// Parser builds an AST from a flat token slice using a standard
// precedence-climbing expression parser and recursive-descent
// statement grammar.
type Parser struct {
	tokens  []lexer.Token
	current int
	diags   *errors.Diagnostics

	loopDepth  int  // >0 inside a while/for body; gates break/continue
	inFunction bool // true inside any function or method body; gates return
}

// New creates a Parser over tokens, reporting syntax errors to diags.
func New(tokens []lexer.Token, diags *errors.Diagnostics) *Parser {
	return &Parser{tokens: tokens, diags: diags}
}

// ParseProgram parses a complete source unit and returns the accepted
// prefix of statements. Declarations that fail to parse are skipped
// after synchronizing at the next statement boundary; diags will have
// HadError() set if anything went wrong.
func (p *Parser) ParseProgram() *ast.Program {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	return &ast.Program{Statements: statements}
}

// --- Declarations ---

func (p *Parser) declaration() (ast.Stmt, error) {
	switch {
	case p.match(lexer.CLASS):
		return p.classDeclaration()
	case p.match(lexer.FUN):
		return p.function(kindFunction)
	case p.match(lexer.LET):
		return p.letDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() (ast.Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect class name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.LEFT_BRACE, "Expect '{' before class body."); err != nil {
		return nil, err
	}

	var methods []*ast.FunctionStmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		method, err := p.method()
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}

	if _, err := p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body."); err != nil {
		return nil, err
	}
	return &ast.ClassStmt{Name: name, Methods: methods}, nil
}

func (p *Parser) method() (*ast.FunctionStmt, error) {
	isStatic := p.match(lexer.STATIC)
	fn, err := p.function(kindMethod)
	if err != nil {
		return nil, err
	}
	fnStmt := fn.(*ast.FunctionStmt)
	fnStmt.IsStatic = isStatic
	return fnStmt, nil
}

func (p *Parser) function(kind functionKind) (ast.Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect "+string(kind)+" name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after "+string(kind)+" name."); err != nil {
		return nil, err
	}

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArguments {
				p.report(p.peek(), "Can't have more than 255 parameters.")
			}
			param, err := p.consume(lexer.IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_BRACE, "Expect '{' before "+string(kind)+" body."); err != nil {
		return nil, err
	}
	// A function body starts outside any loop, even when the
	// declaration itself sits inside one: a break/continue in the body
	// cannot target the surrounding loop.
	wasInFunction, wasLoopDepth := p.inFunction, p.loopDepth
	p.inFunction = true
	p.loopDepth = 0
	body, err := p.block()
	p.inFunction, p.loopDepth = wasInFunction, wasLoopDepth
	if err != nil {
		return nil, err
	}

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) letDeclaration() (ast.Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.LetStmt{Name: name, Initializer: initializer}, nil
}

// --- Statements ---

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.BREAK):
		return p.breakStatement()
	case p.match(lexer.CONTINUE):
		return p.continueStatement()
	case p.match(lexer.LEFT_BRACE):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Statements: stmts}, nil
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after while condition."); err != nil {
		return nil, err
	}

	p.loopDepth++
	body, err := p.statement()
	p.loopDepth--
	if err != nil {
		return nil, err
	}

	return &ast.WhileStmt{Condition: condition, Body: body}, nil
}

// forStatement desugars `for (init; cond; incr) body` into
//
//	{ init; while (cond) body }
//
// with the initializer (and its wrapping block) omitted if absent, the
// condition defaulting to `true` if absent, and the increment, if
// present, stored in the WhileStmt's Increment field rather than in
// the loop body.
func (p *Parser) forStatement() (ast.Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	var err error
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.check(lexer.LET):
		p.advance()
		initializer, err = p.letDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	p.loopDepth++
	body, err := p.statement()
	p.loopDepth--
	if err != nil {
		return nil, err
	}

	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	// Increment is attached to the WhileStmt rather than folded into
	// Body: folding it in as a trailing sibling statement would make
	// it unreachable whenever `continue` unwinds out of Body, since
	// the block aborts on the first propagating signal.
	loop := ast.Stmt(&ast.WhileStmt{Condition: condition, Body: body, Increment: increment})

	if initializer != nil {
		loop = &ast.BlockStmt{Statements: []ast.Stmt{initializer, loop}}
	}
	return loop, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.previous()
	if !p.inFunction {
		p.report(keyword, "Can't return from top-level code.")
	}

	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, nil
}

func (p *Parser) breakStatement() (ast.Stmt, error) {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.report(keyword, "Can't use 'break' outside of a loop.")
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after 'break'."); err != nil {
		return nil, err
	}
	return &ast.BreakStmt{Keyword: keyword}, nil
}

func (p *Parser) continueStatement() (ast.Stmt, error) {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.report(keyword, "Can't use 'continue' outside of a loop.")
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after 'continue'."); err != nil {
		return nil, err
	}
	return &ast.ContinueStmt{Keyword: keyword}, nil
}

func (p *Parser) block() ([]ast.Stmt, error) {
	var statements []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(lexer.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expression: expr}, nil
}

// --- Expressions: assignment, or, and, equality, comparison, term,
// factor, unary, call, primary (low to high precedence) ---

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}, nil
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}, nil
		default:
			// Not a valid assignment target: report but keep the
			// parsed expression so the surrounding statement still
			// parses.
			p.report(equals, "Illegal assignment target.")
		}
	}

	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.OR) {
		operator := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.AND) {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: operator, Right: right}, nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(lexer.DOT):
			name, err := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArguments {
				p.report(p.peek(), "Can't have more than 255 arguments.")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(lexer.FALSE):
		return &ast.Literal{Value: false}, nil
	case p.match(lexer.TRUE):
		return &ast.Literal{Value: true}, nil
	case p.match(lexer.NIL):
		return &ast.Literal{Value: nil}, nil
	case p.match(lexer.NUMBER, lexer.STRING):
		return &ast.Literal{Value: p.previous().Literal}, nil
	case p.match(lexer.THIS):
		return &ast.This{Keyword: p.previous()}, nil
	case p.match(lexer.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(lexer.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expression: expr}, nil
	}

	p.report(p.peek(), "Expect expression.")
	return nil, parseError{}
}

// --- Token-stream helpers ---

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF }

func (p *Parser) peek() lexer.Token { return p.tokens[p.current] }

func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }

func (p *Parser) consume(t lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	p.report(p.peek(), message)
	return lexer.Token{}, parseError{}
}

func (p *Parser) report(tok lexer.Token, message string) {
	p.diags.TokenError(tok, message)
}

// synchronize discards tokens until it reaches a likely statement
// boundary: right after a ';', or just before a keyword that starts a
// new declaration or statement.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.LET, lexer.FOR, lexer.IF,
			lexer.WHILE, lexer.RETURN, lexer.PRINT:
			return
		}

		p.advance()
	}
}
