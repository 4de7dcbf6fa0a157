package cmd

import (
	"fmt"
	"os"

	"github.com/loxi-lang/loxi/internal/errors"
	"github.com/loxi-lang/loxi/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	lexEval    string
	lexShowPos bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file or expression and print the resulting tokens",
	Long: `Tokenize (lex) a program and print the resulting tokens.

Useful for debugging the scanner and understanding how source text is
tokenized.`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show the line number for each token")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, err := scriptInput(lexEval, args)
	if err != nil {
		return err
	}

	var messages []string
	diags := errors.New(func(s string) { messages = append(messages, s) })
	for _, tok := range lexer.New(input, diags).ScanTokens() {
		if lexShowPos {
			fmt.Printf("%-14s %-20q line %d\n", tok.Type, tok.Lexeme, tok.Line)
		} else {
			fmt.Printf("%-14s %q\n", tok.Type, tok.Lexeme)
		}
	}

	for _, msg := range messages {
		fmt.Fprintln(os.Stderr, msg)
	}
	if len(messages) > 0 {
		return fmt.Errorf("found %d scan error(s)", len(messages))
	}
	return nil
}

func scriptInput(eval string, args []string) (string, error) {
	if eval != "" {
		return eval, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("either provide a file path or use -e for inline code")
}
