package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/loxi-lang/loxi/internal/driver"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "loxi [script]",
	Short: "loxi is a tree-walking interpreter for a small, dynamically-typed scripting language",
	Long: `loxi runs programs written in a small dynamically-typed, lexically-scoped,
object-based scripting language.

Run with no arguments to start a REPL, or pass a single script path to
run it directly.`,
	Version:      Version,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

func runRoot(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		runREPL(os.Stdin, os.Stdout, os.Stderr)
		return nil
	case 1:
		return runFile(args[0])
	default:
		fmt.Println("Usage: loxi [script]")
		os.Exit(64)
		return nil
	}
}

func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	d := driver.New(os.Stdout, os.Stderr, os.Stdin)
	start := time.Now()
	d.Run(string(source))

	if d.HadError() {
		os.Exit(65)
	}
	if d.HadRuntimeError() {
		os.Exit(70)
	}

	fmt.Printf("Ran in %dms\n", time.Since(start).Milliseconds())
	return nil
}
