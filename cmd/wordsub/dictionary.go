package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newCheckCommand(fs afero.Fs, source *Source) *cobra.Command {
	return &cobra.Command{
		Use:   "check <dictionary>",
		Short: "Load a dictionary and report whether it is valid",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wordsub, closeSource, err := newWordsubCLI(cmd.Context(), fs, *source)
			if err != nil {
				return err
			}
			defer closeSource()

			return wordsub.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()).RunCheck(cmd.Context(), args[0])
		},
	}
}

func newLookupCommand(fs afero.Fs, source *Source) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <dictionary> <word>...",
		Short: "Look up words in a dictionary",
		Args:  minimumArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wordsub, closeSource, err := newWordsubCLI(cmd.Context(), fs, *source)
			if err != nil {
				return err
			}
			defer closeSource()

			return wordsub.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()).RunLookup(cmd.Context(), args[0], args[1:])
		},
	}
}

func newStatsCommand(fs afero.Fs, source *Source) *cobra.Command {
	format := FormatText
	command := &cobra.Command{
		Use:   "stats <dictionary>",
		Short: "Show hash table statistics of a dictionary",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wordsub, closeSource, err := newWordsubCLI(cmd.Context(), fs, *source)
			if err != nil {
				return err
			}
			defer closeSource()

			return wordsub.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()).RunStats(cmd.Context(), args[0], format == FormatYAML)
		},
	}
	command.Flags().Var(&format, "format", fmt.Sprintf("Output format. Possible values are %v", allFormats))
	return command
}
