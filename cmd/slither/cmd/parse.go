package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slitherlang/slither/internal/lexer"
	"github.com/slitherlang/slither/internal/parser"
	"github.com/slitherlang/slither/internal/pipeline"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Slither file and dump the AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  parseFile,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseFile(_ *cobra.Command, args []string) error {
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
	fmt.Print(ctx.AstRoot.String())
	return nil
}
