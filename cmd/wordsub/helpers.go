package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/at-ishikawa/wordsub/internal/cli"
	"github.com/at-ishikawa/wordsub/internal/config"
	"github.com/at-ishikawa/wordsub/internal/database"
	"github.com/at-ishikawa/wordsub/internal/dictionary"
	"github.com/at-ishikawa/wordsub/internal/substitute"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile, envFiles...)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	locale = cfg.Messages.Locale
	return cfg, nil
}

func substituteOptions(cfg config.SubstitutionConfig) substitute.Options {
	return substitute.Options{
		InitialBufferBytes: cfg.InitialBufferBytes,
		MaxTokenBytes:      cfg.MaxTokenBytes,
		OutputBufferBytes:  cfg.OutputBufferBytes,
	}
}

// newEntrySource returns the entry source for source and a function releasing it.
func newEntrySource(ctx context.Context, fs afero.Fs, cfg *config.Config, source Source) (cli.EntrySource, func(), error) {
	switch source {
	case SourceDatabase:
		db, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Connect > %w", err)
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				slog.Warn("failed to close the database", "error", err)
			}
		}
		return cli.NewDatabaseSource(dictionary.NewDBEntryRepository(db)), closeDB, nil
	case SourceFile:
		fallthrough
	default:
		fileSource, err := cli.NewFileSource(fs)
		if err != nil {
			return nil, nil, err
		}
		return fileSource, func() {}, nil
	}
}

func newWordsubCLI(ctx context.Context, fs afero.Fs, source Source) (*cli.WordsubCLI, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	entrySource, closeSource, err := newEntrySource(ctx, fs, cfg, source)
	if err != nil {
		return nil, nil, err
	}
	return cli.NewWordsubCLI(entrySource, substituteOptions(cfg.Substitution)), closeSource, nil
}
