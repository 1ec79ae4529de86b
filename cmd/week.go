package cmd

import (
	"fmt"

	"github.com/theirongolddev/motolog/internal/cli"
	"github.com/theirongolddev/motolog/internal/pipeline"

	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:     "week",
	Aliases: []string{"semana"},
	Short:   "Sunday-to-Saturday breakdown of the week",
	Args:    cobra.NoArgs,
	RunE:    runWeek,
}

func init() {
	addDateFlag(weekCmd)
	rootCmd.AddCommand(weekCmd)
}

func runWeek(cmd *cobra.Command, _ []string) error {
	ref, err := resolveDate(cmd)
	if err != nil {
		return err
	}
	s, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	days := pipeline.WeeklyBreakdown(s.Snapshot(), ref)
	totals := pipeline.SumWeek(days)
	today := s.Today()

	peak := 0.0
	for _, d := range days {
		v, _ := d.GrandTotal.Float64()
		peak = max(peak, v)
	}

	rows := make([][]string, 0, len(days)+2)
	series := make([]float64, 0, len(days))
	for _, d := range days {
		v, _ := d.GrandTotal.Float64()
		series = append(series, v)
		marker := ""
		if d.Date == today {
			marker = " ◂"
		}
		rows = append(rows, []string{
			d.Weekday + " " + d.Date.String() + marker,
			cli.FormatNumber(int64(d.Deliveries)),
			cli.FormatNumber(int64(d.DailyRates)),
			cli.FormatMoney(d.TotalDeliveries),
			cli.FormatMoney(d.TotalDailyRates),
			cli.FormatMoney(d.GrandTotal),
			cli.RenderHorizontalBar(v, peak, 12),
		})
	}
	rows = append(rows, cli.SeparatorRow, []string{
		"Week",
		cli.FormatNumber(int64(totals.Deliveries)),
		cli.FormatNumber(int64(totals.DailyRates)),
		cli.FormatMoney(totals.TotalDeliveries),
		cli.FormatMoney(totals.TotalDailyRates),
		cli.FormatMoney(totals.GrandTotal),
		"",
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("WEEK  %s to %s", totals.Start, totals.End)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Day", "Deliv.", "Rates", "Deliveries", "Daily rates", "Total", ""},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Printf("  %s  %s\n", cli.Muted("Trend"), cli.RenderSparkline(series))
	fmt.Printf("  %s  %d of 7\n", cli.Muted("Worked days"), totals.WorkedDays)
	fmt.Printf("  %s\n", cli.Muted("Correct a day with `motolog reconcile DATE TOTAL`."))
	return nil
}
