// Package main provides the entry point for toaster, a terminal host for
// stacked toast notifications.
//
// Usage:
//
//	toaster [--position left|right] [--direction from-bottom|from-top]
//	toaster render --count 3
//	toaster config
package main

import (
	"os"

	"github.com/riordanpawley/toaster/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
