package main

import (
	"os"

	"quizconv/internal/cli"
)

func main() {
	os.Exit(cli.RunCommand("content_validator", os.Args[1:], os.Stdout, os.Stderr))
}
