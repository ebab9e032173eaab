package main

import (
	"os"

	"quizconv/internal/cli"
)

func main() {
	os.Exit(cli.RunCommand("hash_csv", os.Args[1:], os.Stdout, os.Stderr))
}
