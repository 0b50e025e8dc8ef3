package cmd

import (
	"cmoon/repl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read programs line by line and print their trees",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repl.Start(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
