package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/motolog/internal/cli"
	"github.com/theirongolddev/motolog/internal/model"
	"github.com/theirongolddev/motolog/internal/pipeline"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"day", "hoje"},
	Short:   "Records and totals for one day",
	Args:    cobra.NoArgs,
	RunE:    runToday,
}

func init() {
	addDateFlag(todayCmd)
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, _ []string) error {
	day, err := resolveDate(cmd)
	if err != nil {
		return err
	}
	s, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	fmt.Println()
	fmt.Println(cli.RenderTitle(day.LongForm()))
	fmt.Println()
	fmt.Print(renderDay(s.Snapshot(), day))
	return nil
}

// renderDay prints the daily rates, the deliveries with their running total
// and the day totals.
func renderDay(snap model.Snapshot, day model.Date) string {
	rates := snap.DailyRatesOn(day)
	deliveries := snap.DeliveriesOn(day)
	if len(rates) == 0 && len(deliveries) == 0 {
		return "  No records for this day.\n  Add one with `motolog add delivery` or `motolog add rate`.\n"
	}

	var out string
	if len(rates) > 0 {
		rows := make([][]string, 0, len(rates)+2)
		for _, r := range rates {
			rows = append(rows, []string{
				r.Workplace,
				r.Schedule,
				cli.FormatFloatMoney(r.Rate),
				strconv.FormatInt(r.ID, 10),
			})
		}
		rows = append(rows, cli.SeparatorRow, []string{"Total", "", cli.FormatMoney(pipeline.TotalDailyRates(snap, day)), ""})
		out += cli.RenderTable(cli.Table{
			Title:   "Daily rates",
			Headers: []string{"Workplace", "Schedule", "Rate", "ID"},
			Rows:    rows,
		})
		out += "\n"
	}

	if len(deliveries) > 0 {
		rows := make([][]string, 0, len(deliveries)+2)
		running := decimal.Zero
		for i, r := range deliveries {
			running = running.Add(r.FeeAmount())
			label := cli.Truncate(r.ClientAddress, 40)
			if r.IsAdjustment {
				label += " *"
			}
			rows = append(rows, []string{
				strconv.Itoa(i+1) + ". " + label,
				cli.FormatFloatMoney(r.Fee),
				cli.FormatMoney(running),
				strconv.FormatInt(r.ID, 10),
			})
		}
		rows = append(rows, cli.SeparatorRow, []string{"Total", cli.FormatMoney(running), "", ""})
		out += cli.RenderTable(cli.Table{
			Title:   "Deliveries",
			Headers: []string{"Address", "Fee", "Running", "ID"},
			Rows:    rows,
		})
		out += "\n"
	}

	entry := pipeline.Day(snap, day)
	out += fmt.Sprintf("  %s  %s\n",
		cli.Muted(fmt.Sprintf("%s, %s:", cli.Plural(entry.Deliveries, "delivery", "deliveries"), cli.Plural(entry.DailyRates, "daily rate", "daily rates"))),
		cli.Money(cli.FormatMoney(entry.GrandTotal)),
	)
	if hasAdjustment(deliveries) {
		out += "  " + cli.Muted("* manual adjustment") + "\n"
	}
	return out
}

func hasAdjustment(records []model.DeliveryRecord) bool {
	for _, r := range records {
		if r.IsAdjustment {
			return true
		}
	}
	return false
}
