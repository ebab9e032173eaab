package main

import (
	"os"

	"quizconv/internal/cli"
)

func main() {
	os.Exit(cli.RunCommand("csv_formatter", os.Args[1:], os.Stdout, os.Stderr))
}
