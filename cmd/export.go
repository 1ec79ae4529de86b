package cmd

import (
	"github.com/theirongolddev/motolog/internal/export"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	flagExportOut   string
	flagImportMerge bool
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"backup"},
	Short:   "Write a backup bundle of all records",
	Args:    cobra.NoArgs,
	RunE:    runExport,
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Load a backup bundle, replacing all records (or merging with --merge)",
	Long: "Load a backup bundle written by `motolog export` or by the original\n" +
		"web app. By default every record is replaced; --merge keeps existing\n" +
		"records and adds the ones whose id is new.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", ".", "Directory to write the bundle into")
	importCmd.Flags().BoolVarP(&flagImportMerge, "merge", "m", false, "Add new records instead of replacing")
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	s, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	snap := s.Snapshot()
	path, size, err := export.WriteFile(flagExportOut, s.Today(), export.New(snap, clock.Now()))
	if err != nil {
		return err
	}
	logInfo("Exported %d deliveries and %d daily rates to '%s' (%s)",
		len(snap.Deliveries), len(snap.DailyRates), path, humanize.Bytes(uint64(size)))
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	b, err := export.ReadFile(args[0])
	if err != nil {
		return err
	}

	s, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if !b.ExportedAt.IsZero() {
		logVerbose("Bundle exported %s", humanize.Time(b.ExportedAt))
	}

	if flagImportMerge {
		added := s.Merge(b.Snapshot())
		logInfo("Merged %d new records from '%s'", added, args[0])
		return nil
	}

	before := s.Snapshot().Len()
	s.Replace(b.Snapshot())
	logInfo("Replaced %d records with %d from '%s'", before, b.Snapshot().Len(), args[0])
	return nil
}
