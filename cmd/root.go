// Package cmd implements the motolog CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/motolog/internal/cli"
	"github.com/theirongolddev/motolog/internal/config"
	"github.com/theirongolddev/motolog/internal/ledger"
	"github.com/theirongolddev/motolog/internal/model"
	"github.com/theirongolddev/motolog/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagBackend string
	flagQuiet   bool

	// cfg is loaded once per invocation by the root pre-run hook.
	cfg = config.DefaultConfig()

	// clock is swapped in tests.
	clock model.Clock = model.SystemClock{}
)

// errRejected marks input that was refused after the reason was logged.
var errRejected = errors.New("input rejected")

var rootCmd = &cobra.Command{
	Use:           "motolog",
	Short:         "Courier delivery and daily-rate ledger",
	Long:          "Log per-delivery fees and daily-rate jobs, see daily, weekly and monthly totals, and share a day report.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		if cmd.Flags().Changed("data-dir") {
			cfg.General.DataDir = flagDataDir
		}
		if cmd.Flags().Changed("backend") {
			cfg.General.Backend = strings.ToLower(flagBackend)
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		cli.Currency = cfg.Report.Currency
		cli.ConfigureOutput(os.Stdout)
		return nil
	},
	RunE: runToday,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			logError(err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the ledger (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagBackend, "backend", "b", "", "Storage backend: json or sqlite (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	addDateFlag(rootCmd)
}

// openLedger opens the configured backend and loads the record store.
// Storage problems after the backend is open are logged, never fatal.
func openLedger() (*ledger.Store, error) {
	dir := cfg.ResolvedDataDir()
	backend, err := store.Open(cfg.General.Backend, dir)
	if err != nil {
		return nil, fmt.Errorf("opening %s storage in %s: %w", cfg.General.Backend, dir, err)
	}
	logVerbose("Using %s storage in '%s'", cfg.General.Backend, dir)

	return ledger.Open(backend, ledger.Options{
		Clock:          clock,
		KeepDateOnEdit: cfg.Ledger.KeepDateOnEdit,
		Warn:           logStorageWarning,
	}), nil
}

// addDateFlag registers --date on cmd.
func addDateFlag(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "Reference date YYYY-MM-DD, or today, yesterday, -N (default today)")
}

// resolveDate reads --date from cmd, defaulting to today.
func resolveDate(cmd *cobra.Command) (model.Date, error) {
	raw, _ := cmd.Flags().GetString("date")
	return parseDateArg(raw, model.Today(clock))
}

// parseDateArg accepts YYYY-MM-DD, "today", "yesterday" or a relative
// day offset such as "-3".
func parseDateArg(raw string, today model.Date) (model.Date, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch raw {
	case "", "today", "hoje":
		return today, nil
	case "yesterday", "ontem":
		return today.AddDays(-1), nil
	}
	if strings.HasPrefix(raw, "-") || strings.HasPrefix(raw, "+") {
		if n, err := strconv.Atoi(raw); err == nil {
			return today.AddDays(n), nil
		}
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		return model.Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", raw)
	}
	return d, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// kindArg normalizes the record-kind argument of edit and delete.
func kindArg(raw string) (string, error) {
	switch strings.ToLower(raw) {
	case "delivery", "deliveries", "d", "entrega":
		return "delivery", nil
	case "rate", "rates", "daily-rate", "r", "diaria", "diária":
		return "rate", nil
	default:
		return "", fmt.Errorf("unknown record kind %q (want delivery or rate)", raw)
	}
}
