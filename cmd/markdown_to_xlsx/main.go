package main

import (
	"os"

	"quizconv/internal/cli"
)

func main() {
	os.Exit(cli.RunCommand("markdown_to_xlsx", os.Args[1:], os.Stdout, os.Stderr))
}
