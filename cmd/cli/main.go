// Package main is the entry point for the ineq CLI binary.
package main

import (
	"os"

	cli "inequality-analytics/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
