package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/wordsub/internal/dictionary"
	"github.com/at-ishikawa/wordsub/internal/substitute"
)

// WordsubCLI runs the commands that work on a single built dictionary.
type WordsubCLI struct {
	source  EntrySource
	options substitute.Options
	stdin   io.Reader
	stdout  io.Writer
	bold    *color.Color
	green   *color.Color
	red     *color.Color
}

func NewWordsubCLI(source EntrySource, options substitute.Options) *WordsubCLI {
	return &WordsubCLI{
		source:  source,
		options: options,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		bold:    color.New(color.Bold),
		green:   color.New(color.FgGreen),
		red:     color.New(color.FgRed),
	}
}

// WithIO replaces standard input and output.
func (cli *WordsubCLI) WithIO(stdin io.Reader, stdout io.Writer) *WordsubCLI {
	cli.stdin = stdin
	cli.stdout = stdout
	return cli
}

// LoadDictionary reads the entries of name and builds the lookup table.
func (cli *WordsubCLI) LoadDictionary(ctx context.Context, name string) (*dictionary.Dictionary, error) {
	entries, err := cli.source.Entries(ctx, name)
	if err != nil {
		return nil, err
	}
	dict, err := dictionary.Build(entries)
	if err != nil {
		return nil, fmt.Errorf("dictionary.Build > %w", err)
	}
	slog.Debug("dictionary loaded",
		"dictionary", name,
		"entries", dict.Len(),
		"capacity", dict.Capacity(),
	)
	return dict, nil
}

// RunTranslate substitutes stdin to stdout. It returns ErrUnmatchedWords
// when the stream was processed but some words were not found.
func (cli *WordsubCLI) RunTranslate(ctx context.Context, name string) error {
	dict, err := cli.LoadDictionary(ctx, name)
	if err != nil {
		return err
	}

	result, err := substitute.NewEngine(dict, cli.options).Process(cli.stdin, cli.stdout)
	slog.Debug("substitution finished",
		"matched", result.Matched,
		"unmatched", result.Unmatched,
		"bytes_in", result.BytesIn,
		"bytes_out", result.BytesOut,
	)
	if err != nil {
		return fmt.Errorf("substitute.Engine.Process > %w", err)
	}
	if result.HadUnmatched() {
		return ErrUnmatchedWords
	}
	return nil
}

// RunCheck builds the dictionary and prints a short summary.
func (cli *WordsubCLI) RunCheck(ctx context.Context, name string) error {
	dict, err := cli.LoadDictionary(ctx, name)
	if err != nil {
		return err
	}

	_, _ = cli.bold.Fprintf(cli.stdout, "%s\n", name)
	fmt.Fprintf(cli.stdout, "  entries:     %d\n", dict.Len())
	fmt.Fprintf(cli.stdout, "  capacity:    %d\n", dict.Capacity())
	fmt.Fprintf(cli.stdout, "  load factor: %.4f\n", float64(dict.Len())/float64(dict.Capacity()))
	_, _ = cli.green.Fprintln(cli.stdout, "OK")
	return nil
}

// RunLookup prints the translation of each word, folded to lowercase first.
// It returns ErrUnmatchedWords if any word is missing.
func (cli *WordsubCLI) RunLookup(ctx context.Context, name string, words []string) error {
	dict, err := cli.LoadDictionary(ctx, name)
	if err != nil {
		return err
	}

	missing := 0
	for _, word := range words {
		translation, found, err := dict.Lookup(strings.ToLower(word))
		if err != nil {
			return fmt.Errorf("dictionary.Lookup > %w", err)
		}
		if !found {
			missing++
			_, _ = cli.red.Fprintf(cli.stdout, "%s: not found\n", word)
			continue
		}
		fmt.Fprintf(cli.stdout, "%s → %s\n", word, cli.green.Sprint(translation))
	}
	if missing > 0 {
		return ErrUnmatchedWords
	}
	return nil
}

// RunStats prints the probe statistics of the built table as text or YAML.
func (cli *WordsubCLI) RunStats(ctx context.Context, name string, asYAML bool) error {
	dict, err := cli.LoadDictionary(ctx, name)
	if err != nil {
		return err
	}
	stats, err := dict.Stats()
	if err != nil {
		return fmt.Errorf("dictionary.Stats > %w", err)
	}

	if asYAML {
		encoder := yaml.NewEncoder(cli.stdout)
		encoder.SetIndent(2)
		if err := encoder.Encode(stats); err != nil {
			return fmt.Errorf("yaml.Encode > %w", err)
		}
		return encoder.Close()
	}

	_, _ = cli.bold.Fprintf(cli.stdout, "%s\n", name)
	fmt.Fprintf(cli.stdout, "  capacity:    %d\n", stats.Capacity)
	fmt.Fprintf(cli.stdout, "  entries:     %d\n", stats.Entries)
	fmt.Fprintf(cli.stdout, "  load factor: %.4f\n", stats.LoadFactor)
	fmt.Fprintf(cli.stdout, "  max probes:  %d\n", stats.MaxProbes)
	fmt.Fprintf(cli.stdout, "  mean probes: %.4f\n", stats.MeanProbes)
	fmt.Fprintln(cli.stdout, "  probe histogram:")
	for _, probes := range slices.Sorted(maps.Keys(stats.ProbeHistogram)) {
		fmt.Fprintf(cli.stdout, "    %d: %d\n", probes, stats.ProbeHistogram[probes])
	}
	return nil
}
