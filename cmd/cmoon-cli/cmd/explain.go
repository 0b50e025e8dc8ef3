package cmd

import (
	"fmt"
	"strings"

	cerrors "cmoon/internal/errors"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <code>",
	Short: "Describe an error code such as E0100",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	code := strings.ToUpper(args[0])

	description, ok := cerrors.Describe(code)
	if !ok {
		return fmt.Errorf("unknown error code %q", args[0])
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", code, description)
	return err
}
