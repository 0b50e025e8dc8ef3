// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"cmoon/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the C-Moon REPL, %s!\n", currentUser.Username)
	fmt.Println("Type a program such as: int main(void) { return 42; }")
	repl.Start(os.Stdin, os.Stdout)
}
