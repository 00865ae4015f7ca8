package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/tripscout/internal/database"
	"github.com/nao1215/tripscout/internal/report"
)

// NewTripsCmd creates the trips command.
func NewTripsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "List stored trips and their suggestions",
		Long: `List every stored trip in insertion order, each followed by its suggestions.

Examples:
  # Plain listing
  tripscout trips

  # JSON for other tools
  tripscout trips --json

  # Markdown for sharing
  tripscout trips --markdown`,
		Args: cobra.NoArgs,
		RunE: runTripsCmd,
	}

	cmd.Flags().BoolP("json", "j", false, "Output trips in JSON format")
	cmd.Flags().BoolP("markdown", "m", false, "Output trips in Markdown format")
	cmd.MarkFlagsMutuallyExclusive("json", "markdown")

	return cmd
}

// runTripsCmd executes the trips command.
func runTripsCmd(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.DBPath == "" {
		return errors.New("configuration error: empty database path")
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	asMarkdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	store, err := database.Open(cfg.DBPath, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open trip store: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close trip store: %w", cerr)
		}
	}()

	trips, err := store.FetchTrips(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read trips: %w", err)
	}

	var w report.Writer
	switch {
	case asJSON:
		w = report.NewJSONWriter(cmd.OutOrStdout(), report.WithPrettyPrint())
	case asMarkdown:
		w = report.NewMarkdownWriter(cmd.OutOrStdout())
	default:
		w = report.NewSimpleWriter(cmd.OutOrStdout())
	}

	_, err = w.Write(trips)
	return err
}
