// Package main provides the CLI entry point for sheetdiff.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetdiff/pkg/sheetdiff"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "sheetdiff file1 file2",
		Short: "Examine two Excel files and report differences",
		Long: `sheetdiff compares every sheet of an original and an updated Excel file.

Both files must contain the same sheets in the same order. Rows are matched
by the value in their first column and cells by the header in the first row.
Changed values are printed to stdout; added or removed rows and added
columns are logged as warnings on stderr.`,
		Example:       "  sheetdiff original.xlsx updated.xlsx",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], stdout, newLogger(stderr))
		},
	}
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
}

func run(file1, file2 string, stdout io.Writer, logger zerolog.Logger) error {
	logger.Info().Msg("Starting")

	old, err := sheetdiff.Load(file1)
	if err != nil {
		return fmt.Errorf("failed to load original workbook: %w", err)
	}
	updated, err := sheetdiff.Load(file2)
	if err != nil {
		return fmt.Errorf("failed to load updated workbook: %w", err)
	}

	reporter := sheetdiff.NewLogReporter(sheetdiff.Options{
		Output: stdout,
		Logger: &logger,
	})
	if err := sheetdiff.CompareWorkbooks(old, updated, reporter); err != nil {
		return err
	}

	logger.Info().Msg("Done")
	return nil
}
