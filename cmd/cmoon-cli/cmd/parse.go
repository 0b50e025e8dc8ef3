package cmd

import (
	"fmt"
	"time"

	"cmoon/grammar"
	"cmoon/internal/ast"
	"cmoon/internal/parser"
	"github.com/spf13/cobra"
)

// Parsing engines selectable with --engine.
const (
	engineHand    = "hand"
	engineGrammar = "grammar"
)

var (
	engine      string
	printSource bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file | -]",
	Short: "Print the syntax tree of a program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	addLiteralFlag(parseCmd)
	parseCmd.Flags().StringVar(&engine, "engine", engineHand, "parsing engine: hand or grammar")
	parseCmd.Flags().BoolVar(&printSource, "source", false, "print the tree back as source text")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	start := time.Now()

	name, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var root *ast.Node
	switch engine {
	case engineHand:
		if _, root, err = parser.ParseSource(source); err != nil {
			failure(cmd.ErrOrStderr(), start)
			return report(cmd.ErrOrStderr(), name, source, err)
		}
	case engineGrammar:
		program, err := parseGrammar(args, name, source)
		if err != nil {
			failure(cmd.ErrOrStderr(), start)
			return reportDiagnostic(cmd.ErrOrStderr(), name, source, grammar.Diagnostic(err))
		}
		root = program.Node()
	default:
		return fmt.Errorf("unknown engine %q: want %s or %s", engine, engineHand, engineGrammar)
	}
	logger.Debugf("%s: parsed with %s engine, %d nodes", name, engine, len(root.Chain()))

	text := root.Dump()
	if printSource {
		text = root.Source()
	}

	if err := render(cmd.OutOrStdout(), text, root); err != nil {
		return err
	}
	success(cmd.ErrOrStderr(), name, start)
	return nil
}

// parseGrammar runs the participle engine. Named files are handed to
// grammar.ParseFile so positions carry the file name.
func parseGrammar(args []string, name, source string) (*grammar.Program, error) {
	if literal == "" && len(args) > 0 && args[0] != "-" {
		return grammar.ParseFile(args[0])
	}
	return grammar.ParseString(name, source)
}
