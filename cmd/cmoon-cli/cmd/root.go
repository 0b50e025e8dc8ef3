package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"cmoon/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var logger = commonlog.GetLogger("cmoon.cli")

// errReported marks a failure whose diagnostic was already printed.
var errReported = errors.New("compilation failed")

var (
	cfgFile   string
	format    string
	noColor   bool
	verbosity int
	literal   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cmoon-cli",
	Short: "C-Moon compiler front end",
	Long: `cmoon-cli runs the C-Moon lexer and parser over a source file.

A program is exactly one function:

  int <name>(void) { return <constant>; }

Commands:
  lex      - print the token stream
  parse    - print the syntax tree
  check    - parse with both engines and compare the trees
  grammar  - print the declarative grammar as EBNF
  explain  - describe an error code
  repl     - read-lex-parse-print loop`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CMOON_CONFIG, ./.cmoon.toml)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log verbosity (repeat for more)")
}

// setup loads the config and lets flags override it.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Resolve(cfgFile)
	if err != nil {
		return err
	}

	if format != "" {
		loaded.Output.Format = format
	}
	if noColor {
		loaded.Output.NoColor = true
	}
	if verbosity > 0 {
		loaded.Log.Verbosity = verbosity
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	if loaded.Output.NoColor {
		color.NoColor = true
	}

	var logFile *string
	if loaded.Log.File != "" {
		logFile = &loaded.Log.File
	}
	commonlog.Configure(loaded.Log.Verbosity, logFile)

	cfg = loaded
	logger.Debugf("output format %s", cfg.Output.Format)
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s: %v\n", color.New(color.FgRed).Sprint("error"), err)
}

// addLiteralFlag registers -e on commands that read a program.
func addLiteralFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&literal, "expr", "e", "", "program source given on the command line")
}

// readInput returns a display name and the program text. It reads -e, then
// stdin when the argument is "-", then the named file.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if literal != "" {
		return "<expr>", literal, nil
	}
	if len(args) == 0 {
		return "", "", errors.New("no input: pass a file, '-' for stdin, or -e <source>")
	}

	if args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	return args[0], string(data), nil
}
