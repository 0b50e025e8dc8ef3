// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	cerrors "cmoon/internal/errors"
	"cmoon/internal/parser"
)

const PROMPT = ">> "

// Start reads one program per line from in and writes its tree, or the
// rendered error, to out. It returns when in is exhausted.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		_, program, err := parser.ParseSource(line)
		if err != nil {
			if diag, ok := cerrors.AsDiagnostic(err); ok {
				fmt.Fprint(out, cerrors.NewErrorReporter("<repl>", line).FormatError(diag))
			} else {
				fmt.Fprintf(out, "error: %v\n", err)
			}
			continue
		}

		fmt.Fprintf(out, "AST:\n%s", program.Dump())
	}
}
