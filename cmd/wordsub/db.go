package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordsub/internal/cli"
	"github.com/at-ishikawa/wordsub/internal/database"
	"github.com/at-ishikawa/wordsub/internal/dictionary"
)

func newDBCommand(fs afero.Fs) *cobra.Command {
	dbCommand := &cobra.Command{
		Use:   "db",
		Short: "Database commands",
	}
	dbCommand.AddCommand(
		newDBMigrateCommand(),
		newDBImportCommand(fs),
	)
	return dbCommand
}

func newDBMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Connect(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Connect > %w", err)
			}
			defer db.Close()

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("database.Migrate > %w", err)
			}
			return nil
		},
	}
}

func newDBImportCommand(fs afero.Fs) *cobra.Command {
	var name string
	command := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a dictionary file into the database",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			source, err := cli.NewFileSource(fs)
			if err != nil {
				return err
			}
			db, err := database.Connect(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Connect > %w", err)
			}
			defer db.Close()

			return cli.ImportDictionary(
				cmd.Context(),
				source,
				dictionary.NewDBEntryRepository(db),
				args[0],
				name,
				cmd.OutOrStdout(),
			)
		},
	}
	command.Flags().StringVar(&name, "name", "", "dictionary name to store the entries under")
	_ = command.MarkFlagRequired("name")
	return command
}
