// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for SecWatch.
//
// Usage:
//
//	go run . [flags]
//	./secwatch [flags]
//
// Without a subcommand this opens the interactive console. See --help.
package main

import (
	"fmt"
	"os"

	"github.com/secwatch/console/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "secwatch: %v\n", err)
		os.Exit(1)
	}
}
