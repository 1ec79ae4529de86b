package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/motolog/internal/config"
	"github.com/theirongolddev/motolog/internal/ledger"
	"github.com/theirongolddev/motolog/internal/store"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Backend:   %s\n", cfg.General.Backend)
	fmt.Printf("    Data dir:  %s\n", cfg.ResolvedDataDir())
	if cfg.General.Backend == store.KindSQLite {
		fmt.Printf("    Database:  %s\n", store.DBFileName)
		printLastSaved(filepath.Join(cfg.ResolvedDataDir(), store.DBFileName))
	}
	fmt.Println()

	fmt.Println("  [Ledger]")
	fmt.Printf("    Keep date on edit: %v\n", cfg.Ledger.KeepDateOnEdit)
	fmt.Println()

	fmt.Println("  [Report]")
	fmt.Printf("    Currency:      %s\n", cfg.Report.Currency)
	if cfg.Report.ShareCommand != "" {
		fmt.Printf("    Share command: %s\n", cfg.Report.ShareCommand)
	} else {
		fmt.Println("    Share command: not set (clipboard)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Printf("  %s and %s override the file.\n", config.EnvDataDir, config.EnvBackend)
	fmt.Println("  Run `motolog setup` to reconfigure.")
	return nil
}

// printLastSaved shows when each collection was last written to an existing
// SQLite database.
func printLastSaved(dbPath string) {
	if _, err := os.Stat(dbPath); err != nil {
		return
	}
	db, err := store.OpenSQLite(dbPath)
	if err != nil {
		logWarn("Could not read %s: %v", dbPath, err)
		return
	}
	defer func() { _ = db.Close() }()

	for _, key := range []string{ledger.DeliveriesKey, ledger.DailyRatesKey} {
		at, err := db.UpdatedAt(key)
		switch {
		case err != nil:
			logWarn("Could not read %s timestamp: %v", key, err)
		case at.IsZero():
			fmt.Printf("    %-17s never saved\n", key+":")
		default:
			fmt.Printf("    %-17s saved %s\n", key+":", humanize.Time(at))
		}
	}
}
