package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/slitherlang/slither/internal/config"
	"github.com/slitherlang/slither/internal/interp"
	"github.com/slitherlang/slither/internal/lexer"
	"github.com/slitherlang/slither/internal/modules"
	"github.com/slitherlang/slither/internal/parser"
	"github.com/slitherlang/slither/internal/pipeline"
)

var (
	evalExpr string
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Slither file or expression",
	Long: `Execute a Slither program from a file or inline expression.

Examples:
  # Run a script file
  slither run script.sl

  # Evaluate inline code
  slither run -e "print(1 + 2)"

  # Run with per-statement tracing
  slither run --trace script.sl
  TRACE=1 slither run script.sl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace execution (for debugging)")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	ctx := pipeline.NewPipelineContext(input)
	ctx.FilePath = filename
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if ctx.HasErrors() {
		for _, e := range ctx.Errors {
			fmt.Fprintf(os.Stderr, "%s: %s\n", filename, e.Error())
		}
		os.Exit(1)
	}

	in := interp.New()
	in.Loader = modules.NewLoader()
	in.Dir = filepath.Dir(filename)
	in.Trace = trace || os.Getenv(config.TraceEnvVar) != ""

	if status := in.Interpret(filename, ctx.AstRoot); status != 0 {
		os.Exit(status)
	}
	return nil
}

func readInput(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}
