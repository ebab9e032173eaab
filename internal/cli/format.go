package cli

import (
	"flag"
	"fmt"
	"io"

	"quizconv/internal/csvquiz"
	"quizconv/internal/report"
)

// runFormat builds the handler for the format command.
func runFormat(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		kind := flags.String("type", "", "Source label: quiz or final (default: inferred from the input path)")
		configPath := flags.String("config", "", "Path to config file (default: search for .quizconv/config.yml)")
		if ok, code := parseArgs(cmd, flags, args, 2, 2, stdout, stderr); !ok {
			return code
		}
		input, output := flags.Arg(0), flags.Arg(1)

		label := ""
		if *kind != "" {
			label = csvquiz.NormalizeLabel(*kind)
			if label == "" {
				fmt.Fprintf(stderr, "invalid --type %q (expected quiz|final)\n", *kind)
				printCommandUsage(cmd, stderr)
				return ExitUsage
			}
		}

		env, err := loadEnvironment(*configPath, stdout, stderr)
		if err != nil {
			return fail(stderr, err)
		}
		if err := requireFile(input, "Input file"); err != nil {
			return fail(stderr, err)
		}

		fmt.Fprintf(stdout, "Formatting CSV: %s -> %s\n", input, output)
		result, err := csvquiz.FormatFile(input, output, csvquiz.FormatOptions{
			Options: env.cfg.CSVOptions(),
			Label:   label,
		})
		if err != nil {
			return fail(stderr, fmt.Errorf("formatting %s: %w", input, err))
		}
		logSkipped(env, input, result.Skipped)
		env.log.Info().
			Str("file", output).
			Int("questions", result.Written).
			Str("label", result.Label).
			Msg("formatted csv written")

		fmt.Fprintln(stdout, report.Success(fmt.Sprintf("Successfully formatted %d questions", result.Written), env.noColor))
		fmt.Fprintf(stdout, "Output saved to: %s\n", output)
		return ExitOK
	}
}

func logSkipped(env environment, file string, skipped []csvquiz.SkippedRow) {
	for _, row := range skipped {
		env.log.Debug().Str("file", file).Int("line", row.Line).Str("reason", row.Reason).Msg("row skipped")
	}
}
