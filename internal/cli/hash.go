package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"quizconv/internal/csvquiz"
	"quizconv/internal/question"
	"quizconv/internal/report"
	"quizconv/internal/workbook"
)

// runHash builds the handler for the hash command.
func runHash(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .quizconv/config.yml)")
		if ok, code := parseArgs(cmd, flags, args, 2, 2, stdout, stderr); !ok {
			return code
		}
		input, output := flags.Arg(0), flags.Arg(1)

		env, err := loadEnvironment(*configPath, stdout, stderr)
		if err != nil {
			return fail(stderr, err)
		}
		if err := requireFile(input, "Input file"); err != nil {
			return fail(stderr, err)
		}

		fmt.Fprintf(stdout, "Generating hash for: %s\n", input)
		records, err := extractRecords(env, input)
		if err != nil {
			return fail(stderr, err)
		}
		record, err := report.NewHashRecord(input, records)
		if err != nil {
			return fail(stderr, err)
		}
		if err := report.WriteJSON(output, record); err != nil {
			return fail(stderr, err)
		}
		env.log.Info().Str("file", output).Str("run_id", record.RunID).Msg("hash record written")

		if err := report.RenderHash(stdout, record, output, env.noColor); err != nil {
			return fail(stderr, err)
		}
		return ExitOK
	}
}

// extractRecords reads question records from a quiz export CSV or an import workbook,
// chosen by file extension.
func extractRecords(env environment, path string) ([]question.Record, error) {
	if isWorkbook(path) {
		records, err := workbook.ExtractFile(path)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", path, err)
		}
		return records, nil
	}
	result, err := csvquiz.ExtractFile(path, env.cfg.CSVOptions())
	if err != nil {
		return nil, err
	}
	logSkipped(env, path, result.Skipped)
	return result.Records, nil
}

func isWorkbook(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}
