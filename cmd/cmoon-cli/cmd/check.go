package cmd

import (
	"fmt"
	"time"

	"cmoon/internal/ast"
	cerrors "cmoon/internal/errors"
	"cmoon/internal/parser"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file | -]",
	Short: "Parse with both engines and compare the trees",
	Long: `check runs the hand-written recursive descent parser and the
participle grammar over the same input. Both must accept or reject it, and
accepted inputs must produce the same tree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	addLiteralFlag(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

// checkResult is the json/yaml form of a successful check.
type checkResult struct {
	Agree bool      `json:"agree" yaml:"agree"`
	Tree  *ast.Node `json:"tree" yaml:"tree"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	start := time.Now()
	stderr := cmd.ErrOrStderr()

	name, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	_, handRoot, handErr := parser.ParseSource(source)
	program, grammarErr := parseGrammar(args, name, source)

	var details []string
	switch {
	case handErr != nil && grammarErr != nil:
		failure(stderr, start)
		return report(stderr, name, source, handErr)
	case handErr != nil:
		details = []string{"hand-written parser rejected the input: " + handErr.Error(), "grammar engine accepted it"}
	case grammarErr != nil:
		details = []string{"grammar engine rejected the input: " + grammarErr.Error(), "hand-written parser accepted it"}
	default:
		grammarRoot := program.Node()
		if ast.Equal(handRoot, grammarRoot) {
			if err := render(cmd.OutOrStdout(), "engines agree\n"+handRoot.Dump(), checkResult{Agree: true, Tree: handRoot}); err != nil {
				return err
			}
			success(stderr, name, start)
			return nil
		}
		details = compareChains(handRoot, grammarRoot)
	}

	logger.Warningf("%s: engines disagree", name)
	failure(stderr, start)
	return reportDiagnostic(stderr, name, source, cerrors.EngineMismatch(details))
}

// compareChains lists the links at which two chains differ.
func compareChains(hand, gram *ast.Node) []string {
	var details []string

	a, b := hand.Chain(), gram.Chain()
	for i := 0; i < min(len(a), len(b)); i++ {
		x, y := a[i], b[i]
		if x.Type != y.Type || x.Value != y.Value || x.LiteralType != y.LiteralType {
			details = append(details, fmt.Sprintf("node %d: %s %q (%s) vs %s %q (%s)",
				i, x.Type, x.Value, x.LiteralType, y.Type, y.Value, y.LiteralType))
		}
	}
	if len(a) != len(b) {
		details = append(details, fmt.Sprintf("hand-written chain has %d nodes, grammar chain has %d", len(a), len(b)))
	}

	return details
}
