package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"quizconv/internal/config"
	"quizconv/internal/logger"
)

// environment is the per-invocation configuration shared by every command.
type environment struct {
	cfg     config.Config
	log     zerolog.Logger
	noColor bool
}

func loadEnvironment(configPath string, stdout, stderr io.Writer) (environment, error) {
	config.LoadDotEnv()
	cfg, path, err := config.Resolve(configPath, "")
	if err != nil {
		return environment{}, fmt.Errorf("load config: %w", err)
	}
	noColor, err := resolveNoColor(cfg.Color, stdout)
	if err != nil {
		return environment{}, err
	}
	log := logger.Setup(cfg.Logging.Level, cfg.Logging.Format, stderr)
	if path != "" {
		log.Debug().Str("path", path).Msg("config loaded")
	}
	return environment{cfg: cfg, log: log, noColor: noColor}, nil
}

// parseArgs parses flags and checks the positional argument count. It returns ok=false
// with the exit code to use when the command should stop.
func parseArgs(cmd *Command, flags *flag.FlagSet, args []string, minArgs, maxArgs int, stdout, stderr io.Writer) (bool, int) {
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return false, ExitOK
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return false, ExitUsage
	}
	if n := flags.NArg(); n < minArgs || n > maxArgs {
		if n > maxArgs {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[maxArgs:], " "))
		} else {
			fmt.Fprintln(stderr, "missing required arguments")
		}
		printCommandUsage(cmd, stderr)
		return false, ExitUsage
	}
	return true, ExitOK
}

// requireFile reports a missing input in the tools' established wording.
func requireFile(path, label string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s %s not found", label, path)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s %s is a directory", label, path)
	}
	return nil
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitError
}
