package cmd

import (
	"fmt"

	"github.com/theirongolddev/motolog/internal/cli"
	"github.com/theirongolddev/motolog/internal/pipeline"

	"github.com/spf13/cobra"
)

var monthCmd = &cobra.Command{
	Use:     "month",
	Aliases: []string{"mes"},
	Short:   "Month-to-date statistics",
	Args:    cobra.NoArgs,
	RunE:    runMonth,
}

func init() {
	addDateFlag(monthCmd)
	rootCmd.AddCommand(monthCmd)
}

func runMonth(cmd *cobra.Command, _ []string) error {
	ref, err := resolveDate(cmd)
	if err != nil {
		return err
	}
	s, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	snap := s.Snapshot()
	stats := pipeline.MonthlyStatistics(snap, ref)
	// The previous month is complete, so its average spans all of its days.
	prev := pipeline.MonthlyStatistics(snap, ref.FirstOfMonth().AddDays(-1))

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTH  " + stats.Month.MonthName()))
	fmt.Println()

	rows := [][]string{
		{"Activities", cli.FormatNumber(int64(stats.Activities)), cli.FormatNumber(int64(prev.Activities))},
		{"  Deliveries", cli.FormatNumber(int64(stats.Deliveries)), cli.FormatNumber(int64(prev.Deliveries))},
		{"  Daily rates", cli.FormatNumber(int64(stats.DailyRates)), cli.FormatNumber(int64(prev.DailyRates))},
		cli.SeparatorRow,
		{"Delivery value", cli.FormatMoney(stats.DeliveryValue), cli.FormatMoney(prev.DeliveryValue)},
		{"Daily-rate value", cli.FormatMoney(stats.DailyRateValue), cli.FormatMoney(prev.DailyRateValue)},
		{"Total", cli.FormatMoney(stats.TotalValue), cli.FormatMoney(prev.TotalValue)},
		{"Average per day", cli.FormatMoney(stats.AveragePerDay), cli.FormatMoney(prev.AveragePerDay)},
		{"Worked days", cli.FormatNumber(int64(stats.WorkedDays)), cli.FormatNumber(int64(prev.WorkedDays))},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"", stats.Month.MonthName(), prev.Month.MonthName()},
		Rows:    rows,
	}))
	fmt.Println()

	fmt.Printf("  %s  %s\n", cli.Muted("vs last month"), cli.FormatDelta(stats.TotalValue, prev.TotalValue))
	fmt.Printf("  %s  %s\n", cli.Muted("Worked days  "), cli.RenderProgressBar(stats.WorkedDays, ref.Day, 20))
	fmt.Printf("  %s\n", cli.Muted(fmt.Sprintf("Average = total / %d elapsed days", ref.Day)))
	return nil
}
