package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/errors"
	"github.com/loxi-lang/loxi/internal/lexer"
	"github.com/loxi-lang/loxi/internal/parser"
	"github.com/spf13/cobra"
)

var parseEval string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file or expression and display the resulting AST",
	Long: `Parse source code and display the Abstract Syntax Tree.

Provide a file path, or use -e to parse inline code from the command
line; one of the two is required.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := scriptInput(parseEval, args)
	if err != nil {
		return err
	}

	var messages []string
	diags := errors.New(func(s string) { messages = append(messages, s) })
	tokens := lexer.New(input, diags).ScanTokens()
	program := parser.New(tokens, diags).ParseProgram()

	if len(messages) > 0 {
		for _, msg := range messages {
			fmt.Fprintln(os.Stderr, msg)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(messages))
	}

	for _, stmt := range program.Statements {
		dumpStmt(stmt, 0)
	}
	return nil
}

func indent(depth int) string { return strings.Repeat("  ", depth) }

func dumpStmt(stmt ast.Stmt, depth int) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		fmt.Printf("%sExpressionStmt\n", indent(depth))
		dumpExpr(s.Expression, depth+1)
	case *ast.LetStmt:
		fmt.Printf("%sLetStmt %s\n", indent(depth), s.Name.Lexeme)
		if s.Initializer != nil {
			dumpExpr(s.Initializer, depth+1)
		}
	case *ast.BlockStmt:
		fmt.Printf("%sBlockStmt\n", indent(depth))
		for _, inner := range s.Statements {
			dumpStmt(inner, depth+1)
		}
	case *ast.IfStmt:
		fmt.Printf("%sIfStmt\n", indent(depth))
		dumpExpr(s.Condition, depth+1)
		dumpStmt(s.Then, depth+1)
		if s.Else != nil {
			dumpStmt(s.Else, depth+1)
		}
	case *ast.WhileStmt:
		fmt.Printf("%sWhileStmt\n", indent(depth))
		dumpExpr(s.Condition, depth+1)
		dumpStmt(s.Body, depth+1)
	case *ast.FunctionStmt:
		fmt.Printf("%sFunctionStmt %s\n", indent(depth), s.Name.Lexeme)
		for _, inner := range s.Body {
			dumpStmt(inner, depth+1)
		}
	case *ast.ClassStmt:
		fmt.Printf("%sClassStmt %s\n", indent(depth), s.Name.Lexeme)
		for _, m := range s.Methods {
			dumpStmt(m, depth+1)
		}
	case *ast.ReturnStmt:
		fmt.Printf("%sReturnStmt\n", indent(depth))
		if s.Value != nil {
			dumpExpr(s.Value, depth+1)
		}
	case *ast.BreakStmt:
		fmt.Printf("%sBreakStmt\n", indent(depth))
	case *ast.ContinueStmt:
		fmt.Printf("%sContinueStmt\n", indent(depth))
	default:
		fmt.Printf("%s%T\n", indent(depth), s)
	}
}

func dumpExpr(expr ast.Expr, depth int) {
	switch e := expr.(type) {
	case *ast.Literal:
		fmt.Printf("%sLiteral %#v\n", indent(depth), e.Value)
	case *ast.Variable:
		fmt.Printf("%sVariable %s\n", indent(depth), e.Name.Lexeme)
	case *ast.Assign:
		fmt.Printf("%sAssign %s\n", indent(depth), e.Name.Lexeme)
		dumpExpr(e.Value, depth+1)
	case *ast.Unary:
		fmt.Printf("%sUnary %s\n", indent(depth), e.Operator.Lexeme)
		dumpExpr(e.Right, depth+1)
	case *ast.Binary:
		fmt.Printf("%sBinary %s\n", indent(depth), e.Operator.Lexeme)
		dumpExpr(e.Left, depth+1)
		dumpExpr(e.Right, depth+1)
	case *ast.Logical:
		fmt.Printf("%sLogical %s\n", indent(depth), e.Operator.Lexeme)
		dumpExpr(e.Left, depth+1)
		dumpExpr(e.Right, depth+1)
	case *ast.Grouping:
		fmt.Printf("%sGrouping\n", indent(depth))
		dumpExpr(e.Expression, depth+1)
	case *ast.Call:
		fmt.Printf("%sCall\n", indent(depth))
		dumpExpr(e.Callee, depth+1)
		for _, arg := range e.Arguments {
			dumpExpr(arg, depth+1)
		}
	case *ast.Get:
		fmt.Printf("%sGet %s\n", indent(depth), e.Name.Lexeme)
		dumpExpr(e.Object, depth+1)
	case *ast.Set:
		fmt.Printf("%sSet %s\n", indent(depth), e.Name.Lexeme)
		dumpExpr(e.Object, depth+1)
		dumpExpr(e.Value, depth+1)
	case *ast.This:
		fmt.Printf("%sThis\n", indent(depth))
	default:
		fmt.Printf("%s%T\n", indent(depth), e)
	}
}
