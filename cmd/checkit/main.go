// Package main is the entry point for the checkit application.
package main

import "github.com/checkit/checkit/internal/cli"

func main() {
	cli.Execute()
}
