package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slitherlang/slither/internal/lexer"
	"github.com/slitherlang/slither/internal/token"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Slither file and dump the token stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  lexFile,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func lexFile(_ *cobra.Command, args []string) error {
	input, _, err := readInput(args)
	if err != nil {
		return err
	}
	l := lexer.New(input)
	for {
		tok := l.NextToken()
		fmt.Println(tok.String())
		if tok.Type == token.EOF {
			break
		}
	}
	for _, e := range l.Errors() {
		fmt.Println(e.Error())
	}
	return nil
}
