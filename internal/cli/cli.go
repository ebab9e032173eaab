package cli

import (
	"fmt"
	"io"
)

// Usage errors share the failure exit code.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 1
)

const programName = "quizconv"

type Command struct {
	Name    string
	Binary  string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches the umbrella quizconv command line.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

// RunCommand runs a single command directly, as the standalone binaries do.
func RunCommand(name string, args []string, stdout, stderr io.Writer) int {
	cmd := findCommand(name)
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n", name)
		return ExitUsage
	}
	return cmd.Run(args, stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name || cmd.Binary == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s <command> [options]\n", programName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintf(w, "\nUse \"%s <command> --help\" for more information.\n", programName)
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, binary, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Binary:  binary,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("format", "csv_formatter", "Rewrite a quiz export CSV into the import CSV layout", []string{
		"csv_formatter [--type quiz|final] [--config <path>] <input_csv> <output_csv>",
		"quizconv format [--type quiz|final] [--config <path>] <input_csv> <output_csv>",
	}, runFormat),
	command("hash", "hash_csv", "Fingerprint the questions of a CSV or XLSX file", []string{
		"hash_csv [--config <path>] <input_csv|input_xlsx> <hash_output_file>",
		"quizconv hash [--config <path>] <input_csv|input_xlsx> <hash_output_file>",
	}, runHash),
	command("validate", "content_validator", "Check that a converted workbook preserves the original questions", []string{
		"content_validator [--strict] [--config <path>] <original_csv> <converted_xlsx> [report_path]",
		"quizconv validate [--strict] [--config <path>] <original_csv> <converted_xlsx> [report_path]",
	}, runValidate),
	command("markdown", "markdown_to_xlsx", "Convert standardized markdown questions into an import workbook", []string{
		"markdown_to_xlsx [--verify] [--config <path>] <input.md> [output.xlsx]",
		"quizconv markdown [--verify] [--config <path>] <input.md> [output.xlsx]",
	}, runMarkdown),
}
