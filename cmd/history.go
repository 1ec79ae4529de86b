package cmd

import (
	"fmt"

	"github.com/theirongolddev/motolog/internal/cli"
	"github.com/theirongolddev/motolog/internal/model"
	"github.com/theirongolddev/motolog/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagHistoryDays int

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"historico"},
	Short:   "Worked days with their totals, or one day in detail with --date",
	Args:    cobra.NoArgs,
	RunE:    runHistory,
}

func init() {
	addDateFlag(historyCmd)
	historyCmd.Flags().IntVarP(&flagHistoryDays, "days", "n", 0, "Only the last N days (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	s, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	snap := s.Snapshot()

	if cmd.Flags().Changed("date") {
		day, err := resolveDate(cmd)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(cli.RenderTitle(day.LongForm()))
		fmt.Println()
		fmt.Print(renderDay(snap, day))
		return nil
	}

	var since model.Date
	if flagHistoryDays > 0 {
		since = s.Today().AddDays(-(flagHistoryDays - 1))
	}
	days := pipeline.AggregateDays(snap, since, model.Date{})
	if len(days) == 0 {
		fmt.Println("\n  No records yet.")
		return nil
	}

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{
			d.Date.String(),
			d.Weekday,
			cli.FormatNumber(int64(d.Deliveries)),
			cli.FormatNumber(int64(d.DailyRates)),
			cli.FormatMoney(d.GrandTotal),
		})
	}

	title := "HISTORY  all days"
	if flagHistoryDays > 0 {
		title = fmt.Sprintf("HISTORY  last %dd", flagHistoryDays)
	}
	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Deliveries", "Rates", "Total"},
		Rows:    rows,
	}))
	fmt.Printf("\n  %s\n", cli.Muted("Show one day with `motolog history --date YYYY-MM-DD`."))
	return nil
}
