package cmd

import (
	"fmt"

	"cmoon/grammar"
	"github.com/spf13/cobra"
)

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Print the declarative grammar as EBNF",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), grammar.EBNF())
		return err
	},
}

func init() {
	rootCmd.AddCommand(grammarCmd)
}
