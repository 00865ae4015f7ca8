package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nao1215/tripscout/internal/config"
	"github.com/nao1215/tripscout/internal/database"
	"github.com/nao1215/tripscout/internal/extract"
	"github.com/nao1215/tripscout/internal/model"
	"github.com/nao1215/tripscout/internal/pipeline"
	"github.com/nao1215/tripscout/internal/report"
	"github.com/nao1215/tripscout/internal/search"
)

// NewRootCmd creates the root command for tripscout.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tripscout",
		Short: "Collect travel suggestions for a trip and keep them in a local store",
		Long: `tripscout searches the web for travel suggestions, stores the trip together
with the suggestions found, and prints every stored trip.

Without a subcommand it runs the configured trip (by default Madrid,
2025-09-26 to 2025-09-28). If the search cannot be completed, the trip is
stored with a single placeholder suggestion describing the failure.`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to configuration file (default: .tripscout in current or home directory)")
	cmd.PersistentFlags().String("db", "",
		"Path to the trip database (default: "+config.DefaultDBPath()+")")

	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for the search request")
	cmd.Flags().IntP("max-results", "n", config.DefaultMaxResults,
		"Maximum number of suggestions stored for the trip")

	// Add subcommands
	cmd.AddCommand(NewTripsCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRootCmd runs the configured trip: search, store, read back, print.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runTrip(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
}

// runTrip executes the search and save pipeline for cfg.Trip and then
// prints every stored trip to out.
func runTrip(ctx context.Context, cfg *config.Config, out, errOut io.Writer, logger *slog.Logger) (err error) {
	client, err := newSearchClient(cfg, logger)
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

	fallback := search.NoFallback
	if cfg.Fallback {
		fallback = search.SentinelFallback
	}

	plan := model.NewTripPlan(cfg.Trip.SearchQuery(), cfg.Trip.Destination, cfg.Trip.StartDate, cfg.Trip.EndDate)
	p := pipeline.DefaultPipeline(client, store, fallback, logger)
	if err := p.Execute(ctx, plan); err != nil {
		return err
	}

	if plan.Degraded() {
		warn := color.New(color.FgYellow)
		_, _ = warn.Fprintf(errOut, "warning: search failed, stored a placeholder suggestion: %v\n", plan.SearchError)
	}

	logger.Debug("trip stored",
		"trip_id", plan.TripID,
		"destination", plan.Destination,
		"suggestions", len(plan.Suggestions),
	)

	trips, err := store.FetchTrips(ctx)
	if err != nil {
		return fmt.Errorf("failed to read trips: %w", err)
	}

	_, err = report.NewSimpleWriter(out).Write(trips)
	return err
}

// newSearchClient builds the search client described by cfg.
func newSearchClient(cfg *config.Config, logger *slog.Logger) (*search.Client, error) {
	var extractor extract.Extractor
	if extract.Kind(cfg.Extractor) == extract.KindJSON {
		extractor = extract.NewJSONExtractor(cfg.JSONPaths)
	} else {
		e, err := extract.New(extract.Kind(cfg.Extractor))
		if err != nil {
			return nil, err
		}
		extractor = e
	}

	opts := []search.Option{
		search.WithEndpoint(cfg.Endpoint),
		search.WithLanguage(cfg.Language),
		search.WithUserAgent(cfg.UserAgent),
		search.WithTimeout(cfg.Timeout),
		search.WithMaxResults(cfg.MaxResults),
		search.WithMaxBodySize(cfg.MaxBodySize),
		search.WithExtractor(extractor),
		search.WithLogger(logger),
	}
	if cfg.ProxyAddress != "" {
		opts = append(opts, search.WithProxy(cfg.ProxyAddress))
	}

	return search.NewClient(opts...)
}
