package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/theirongolddev/motolog/internal/report"
	"github.com/theirongolddev/motolog/internal/share"

	"github.com/spf13/cobra"
)

var (
	flagReportCopy  bool
	flagReportPrint bool
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"relatorio", "share"},
	Short:   "Format the day report and share it",
	Long: "Format the day report. It goes to the configured share command,\n" +
		"falling back to the clipboard; with --print it is written to stdout.",
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	addDateFlag(reportCmd)
	reportCmd.Flags().BoolVarP(&flagReportCopy, "copy", "c", false, "Copy to the clipboard, skipping the share command")
	reportCmd.Flags().BoolVarP(&flagReportPrint, "print", "p", false, "Print to stdout only")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	day, err := resolveDate(cmd)
	if err != nil {
		return err
	}
	s, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	text := report.Format(s.Snapshot(), day, report.Options{Currency: cfg.Report.Currency})

	var chain share.Fallback
	switch {
	case flagReportPrint:
		chain = share.Fallback{share.WriterSink{W: os.Stdout}}
	case flagReportCopy:
		chain = share.Fallback{share.ClipboardSink{}}
	default:
		chain = share.FromConfig(cfg.Report.ShareCommand)
	}

	used, err := chain.Deliver(context.Background(), report.Title, text)
	if err != nil {
		// Sharing is best-effort; the text is still shown.
		logWarn("Could not share the report: %s", err.Error())
		fmt.Println(text)
		return nil
	}
	if _, isWriter := used.(share.WriterSink); !isWriter {
		logInfo("Report for %s sent to %s", day.String(), used.Name())
	}
	return nil
}
