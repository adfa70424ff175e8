package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/trmnl-community/servarr-collector/collector"
	"github.com/trmnl-community/servarr-collector/config"
)

var (
	version   = "dev"
	buildTime = "unknown"

	// Command flags
	cfgFile      string
	instanceURL  string
	apiKey       string
	webhookURL   string
	appType      string
	calendarDays int
	daysBefore   int
	calendarOnly bool
	timezoneName string
	interval     int
	verbose      bool
	dryRun       bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "servarr-collector",
	Short: "Collect Servarr data and send it to a TRMNL webhook",
	Long: `servarr-collector polls Sonarr, Radarr, Lidarr, Readarr, and Prowlarr
instances for queue, calendar, health, and library statistics, normalizes
the data into one payload shape, and POSTs it to a TRMNL webhook.

Run with a YAML config file for multiple instances, or point it at a
single instance with --url and --api-key.`,
	RunE:          runCollect,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion records the build-time version information.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, bt)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "C", "", "path to YAML config file")
	rootCmd.Flags().StringVarP(&instanceURL, "url", "u", "", "Servarr instance URL")
	rootCmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "Servarr API key")
	rootCmd.Flags().StringVarP(&webhookURL, "webhook", "w", "", "TRMNL webhook URL")
	rootCmd.Flags().StringVarP(&appType, "type", "t", "", "app type (sonarr, radarr, lidarr, readarr, prowlarr)")
	rootCmd.Flags().IntVarP(&calendarDays, "days", "d", 7, "calendar days forward")
	rootCmd.Flags().IntVarP(&daysBefore, "days-before", "b", 0, "calendar days back")
	rootCmd.Flags().BoolVarP(&calendarOnly, "calendar-only", "c", false, "only send calendar data")
	rootCmd.Flags().StringVarP(&timezoneName, "timezone", "z", "", "IANA timezone for date display")
	rootCmd.Flags().IntVarP(&interval, "interval", "i", 0, "collection interval in seconds (0 = run once)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "print JSON instead of sending to webhook")
}

func runCollect(cmd *cobra.Command, args []string) error {
	logger := setupLogger(verbose)

	instances, runInterval, err := buildInstances()
	if err != nil {
		return err
	}

	collectors := make([]*collector.Collector, 0, len(instances))
	for _, inst := range instances {
		col, err := collector.New(inst, logger)
		if err != nil {
			return err
		}
		collectors = append(collectors, col)
	}

	logger.Info().
		Str("version", version).
		Int("instances", len(collectors)).
		Msg("TRMNL Servarr collector starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if runInterval <= 0 {
		if !collector.Run(ctx, collectors, logger) {
			return fmt.Errorf("collection failed for one or more instances")
		}
		return nil
	}

	logger.Info().Int("interval_seconds", runInterval).Msg("Running continuously (Ctrl+C to stop)")
	for {
		collector.Run(ctx, collectors, logger)

		logger.Info().Int("seconds", runInterval).Msg("Sleeping until next cycle")
		select {
		case <-ctx.Done():
			logger.Info().Msg("Shutting down")
			return nil
		case <-time.After(time.Duration(runInterval) * time.Second):
		}
	}
}

// buildInstances resolves the configured instances either from the
// YAML config file or from single-instance flags.
func buildInstances() ([]collector.Instance, int, error) {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to load config: %w", err)
		}

		tz := cfg.Timezone
		if tz == "" {
			tz = resolveTimezone()
		}

		runInterval := cfg.Interval
		if runInterval == 0 {
			runInterval = interval
		}

		instances := make([]collector.Instance, 0, len(cfg.Instances))
		for _, ic := range cfg.Instances {
			instances = append(instances, collector.Instance{
				Name:               ic.Name,
				URL:                ic.URL,
				APIKey:             ic.APIKey,
				Webhook:            ic.Webhook,
				AppType:            ic.Type,
				CalendarDays:       *ic.CalendarDays,
				CalendarDaysBefore: *ic.CalendarDaysBefore,
				CalendarOnly:       ic.CalendarOnly,
				Timezone:           tz,
				Verbose:            verbose,
				DryRun:             dryRun,
			})
		}

		return instances, runInterval, nil
	}

	if instanceURL == "" || apiKey == "" {
		return nil, 0, fmt.Errorf("either --config or both --url and --api-key are required")
	}

	name := appType
	if name == "" {
		name = "servarr"
	}

	return []collector.Instance{{
		Name:               name,
		URL:                instanceURL,
		APIKey:             apiKey,
		Webhook:            webhookURL,
		AppType:            appType,
		CalendarDays:       calendarDays,
		CalendarDaysBefore: daysBefore,
		CalendarOnly:       calendarOnly,
		Timezone:           resolveTimezone(),
		Verbose:            verbose,
		DryRun:             dryRun,
	}}, interval, nil
}

// resolveTimezone falls back to the TZ environment variable when no
// timezone flag was given.
func resolveTimezone() string {
	if timezoneName != "" {
		return timezoneName
	}
	return os.Getenv("TZ")
}

// setupLogger configures the zerolog logger
func setupLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
