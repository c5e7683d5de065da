package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordsub/internal/cli"
	"github.com/at-ishikawa/wordsub/internal/messages"
)

const (
	exitOK        = 0
	exitUnmatched = 1
	exitFatal     = 2
)

var (
	configFile string
	envFiles   []string
	// locale is updated once the configuration is loaded, so diagnostics
	// printed afterwards use the configured language.
	locale = "en"
)

// SIGINT keeps its default action so an interrupt ends a blocked read of stdin.
func main() {
	os.Exit(run(context.Background(), newRootCommand(afero.NewOsFs()), os.Stderr))
}

func run(ctx context.Context, rootCommand *cobra.Command, stderr io.Writer) int {
	err := rootCommand.ExecuteContext(ctx)
	code := exitCode(err)
	if code == exitFatal {
		reportError(stderr, err)
	}
	return code
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, cli.ErrUnmatchedWords):
		return exitUnmatched
	default:
		return exitFatal
	}
}

func reportError(stderr io.Writer, err error) {
	slog.Debug("command failed", "error", err)

	message := err.Error()
	if translator, translatorErr := messages.NewTranslator(locale); translatorErr == nil {
		message = translator.Describe(err)
	}
	if _, fprintfErr := color.New(color.FgRed).Fprintf(stderr, "%s\n", message); fprintfErr != nil {
		panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
	}
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	var debugMode bool
	source := SourceFile

	rootCommand := &cobra.Command{
		Use:           "wordsub <dictionary>",
		Short:         "Replace dictionary words read from stdin with their translations",
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			wordsub, closeSource, err := newWordsubCLI(cmd.Context(), fs, source)
			if err != nil {
				return err
			}
			defer closeSource()

			return wordsub.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()).RunTranslate(cmd.Context(), args[0])
		},
	}
	rootCommand.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.NewUsageError(err)
	})

	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.StringSliceVar(&envFiles, "env-file", nil, "dotenv files loaded before reading the configuration")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug mode")
	flags.Var(&source, "source", fmt.Sprintf("Where the dictionary is read from. Possible values are %v", allSources))

	rootCommand.AddCommand(
		newCheckCommand(fs, &source),
		newLookupCommand(fs, &source),
		newStatsCommand(fs, &source),
		newDBCommand(fs),
	)
	return rootCommand
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return cli.NewUsageError(err)
		}
		return nil
	}
}

func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return cli.NewUsageError(err)
		}
		return nil
	}
}

// setupLogger configures the default logger based on debug mode.
// Logs go to stderr because stdout carries the substituted text.
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
