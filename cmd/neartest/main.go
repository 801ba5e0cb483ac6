// Package main is the entry point for the neartest CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/neartest/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
