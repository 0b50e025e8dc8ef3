package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"cmoon/internal/config"
	cerrors "cmoon/internal/errors"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// render writes value in the configured format. text is used for the
// default text format.
func render(w io.Writer, text string, value any) error {
	switch cfg.Output.Format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := fmt.Fprint(w, text)
		return err
	}
}

// report prints err as a source snippet when it carries a diagnostic and
// returns errReported so the status is not printed twice.
func report(w io.Writer, name, source string, err error) error {
	diag, ok := cerrors.AsDiagnostic(err)
	if !ok {
		return err
	}
	return reportDiagnostic(w, name, source, diag)
}

func reportDiagnostic(w io.Writer, name, source string, diag cerrors.CompilerError) error {
	fmt.Fprint(w, cerrors.NewErrorReporter(name, source).FormatError(diag))
	return errReported
}

func success(w io.Writer, name string, start time.Time) {
	color.New(color.FgGreen).Fprintf(w, "Successfully processed %s in %s\n", name, formatDuration(time.Since(start)))
}

func failure(w io.Writer, start time.Time) {
	color.New(color.FgRed).Fprintf(w, "Compilation failed after %s\n", formatDuration(time.Since(start)))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
