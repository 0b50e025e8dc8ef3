package cmd

import (
	"strings"
	"time"

	"cmoon/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file | -]",
	Short: "Print the token stream of a program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	addLiteralFlag(lexCmd)
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	start := time.Now()

	name, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		failure(cmd.ErrOrStderr(), start)
		return report(cmd.ErrOrStderr(), name, source, err)
	}
	logger.Debugf("%s: %d tokens", name, len(tokens))

	var text strings.Builder
	for _, tok := range tokens {
		text.WriteString(tok.String())
		text.WriteString("\n")
	}

	if err := render(cmd.OutOrStdout(), text.String(), tokens); err != nil {
		return err
	}
	success(cmd.ErrOrStderr(), name, start)
	return nil
}
