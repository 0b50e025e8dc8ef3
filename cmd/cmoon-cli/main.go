// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"cmoon/cmd/cmoon-cli/cmd"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
