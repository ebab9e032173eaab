package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"quizconv/internal/markdown"
	"quizconv/internal/question"
	"quizconv/internal/report"
	"quizconv/internal/workbook"
)

const workbookSuffix = "_ready_for_import.xlsx"

// runMarkdown builds the handler for the markdown command.
func runMarkdown(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		verify := flags.Bool("verify", false, "Re-read the written workbook and compare its content hash")
		configPath := flags.String("config", "", "Path to config file (default: search for .quizconv/config.yml)")
		if ok, code := parseArgs(cmd, flags, args, 1, 2, stdout, stderr); !ok {
			return code
		}
		input := flags.Arg(0)

		env, err := loadEnvironment(*configPath, stdout, stderr)
		if err != nil {
			return fail(stderr, err)
		}
		output := flags.Arg(1)
		if output == "" {
			output = defaultWorkbookPath(env.cfg.Markdown.OutputDir, input)
		}
		if err := requireFile(input, "Input file"); err != nil {
			return fail(stderr, err)
		}

		result, err := markdown.ParseFile(input, env.cfg.MarkdownOptions())
		if err != nil {
			return fail(stderr, err)
		}
		for _, problem := range result.Stats.ParseErrors {
			env.log.Warn().Str("file", input).Msg(problem)
		}
		for _, hit := range result.Stats.MultiAnswer {
			env.log.Warn().
				Str("file", input).
				Int("question", hit.Question).
				Str("choice", hit.Choice).
				Str("pattern", hit.Pattern).
				Msg("choice depends on answer order")
		}
		fmt.Fprintf(stdout, "Parsed %d questions from markdown\n", len(result.Entries))
		if len(result.Entries) == 0 {
			return fail(stderr, markdown.ErrNoQuestions)
		}

		if err := workbook.WriteFile(output, result.Entries, result.Stats); err != nil {
			return fail(stderr, err)
		}
		env.log.Info().Str("file", output).Int("questions", len(result.Entries)).Msg("workbook written")

		fmt.Fprintln(stdout, report.Success("Successfully created "+output, env.noColor))
		fmt.Fprintf(stdout, "   - Questions: %d\n", len(result.Entries))
		fmt.Fprintf(stdout, "   - Section: %s\n", result.Stats.SectionName())
		if result.Stats.RandomizationSafe {
			fmt.Fprintf(stdout, "   - Answer randomization: %s\n", report.Success("SAFE", env.noColor))
		} else {
			fmt.Fprintf(stdout, "   - Answer randomization: %s\n", report.Failure("NOT SAFE", env.noColor))
		}

		if !*verify {
			return ExitOK
		}
		extracted, err := workbook.ExtractFile(output)
		if err != nil {
			return fail(stderr, fmt.Errorf("verify %s: %w", output, err))
		}
		check, err := report.Validate(input, output, question.Records(result.Entries), extracted)
		if err != nil {
			return fail(stderr, err)
		}
		if !check.Passed {
			fmt.Fprintln(stdout, report.Failure("Verification: FAILED", env.noColor))
			for _, diff := range check.Differences {
				fmt.Fprintf(stdout, "  - %s\n", diff)
			}
			return ExitError
		}
		fmt.Fprintln(stdout, report.Success("Verification: PASSED", env.noColor))
		fmt.Fprintf(stdout, "   - Content hash: %s\n", check.ConvertedHash)
		return ExitOK
	}
}

// defaultWorkbookPath names the workbook after the markdown file inside outputDir.
func defaultWorkbookPath(outputDir, input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+workbookSuffix)
}
