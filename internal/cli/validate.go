package cli

import (
	"flag"
	"fmt"
	"io"

	"quizconv/internal/report"
	"quizconv/internal/workbook"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		strict := flags.Bool("strict", false, "Exit with status 1 when validation fails")
		configPath := flags.String("config", "", "Path to config file (default: search for .quizconv/config.yml)")
		if ok, code := parseArgs(cmd, flags, args, 2, 3, stdout, stderr); !ok {
			return code
		}
		original, converted, reportPath := flags.Arg(0), flags.Arg(1), flags.Arg(2)

		env, err := loadEnvironment(*configPath, stdout, stderr)
		if err != nil {
			return fail(stderr, err)
		}
		if err := requireFile(original, "Original CSV file"); err != nil {
			return fail(stderr, err)
		}
		if err := requireFile(converted, "Converted XLSX file"); err != nil {
			return fail(stderr, err)
		}

		fmt.Fprintf(stdout, "Extracting content from original CSV: %s\n", original)
		originalRecords, err := extractRecords(env, original)
		if err != nil {
			return fail(stderr, err)
		}
		fmt.Fprintf(stdout, "Extracting content from converted XLSX: %s\n", converted)
		convertedRecords, err := workbook.ExtractFile(converted)
		if err != nil {
			return fail(stderr, fmt.Errorf("extract %s: %w", converted, err))
		}

		result, err := report.Validate(original, converted, originalRecords, convertedRecords)
		if err != nil {
			return fail(stderr, err)
		}
		if reportPath != "" {
			if err := report.WriteJSON(reportPath, result); err != nil {
				return fail(stderr, err)
			}
			fmt.Fprintf(stdout, "Detailed report saved to: %s\n", reportPath)
		}
		env.log.Info().
			Bool("passed", result.Passed).
			Str("run_id", result.RunID).
			Int("differences", len(result.Differences)).
			Msg("validation finished")

		if err := report.RenderValidation(stdout, result, env.noColor); err != nil {
			return fail(stderr, err)
		}
		if *strict && !result.Passed {
			return ExitError
		}
		return ExitOK
	}
}
