package cmd

import (
	"strconv"

	"github.com/theirongolddev/motolog/internal/cli"
	"github.com/theirongolddev/motolog/internal/pipeline"
	"github.com/theirongolddev/motolog/internal/tui"

	"github.com/spf13/cobra"
)

var flagSchedule string

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a delivery or a daily rate for today",
}

var addDeliveryCmd = &cobra.Command{
	Use:     "delivery [ADDRESS FEE]",
	Aliases: []string{"d", "entrega"},
	Short:   "Add a delivery (opens a form when arguments are missing)",
	Args:    cobra.RangeArgs(0, 2),
	RunE:    runAddDelivery,
}

var addRateCmd = &cobra.Command{
	Use:     "rate [WORKPLACE RATE]",
	Aliases: []string{"r", "diaria"},
	Short:   "Add a daily-rate job (opens a form when arguments are missing)",
	Args:    cobra.RangeArgs(0, 2),
	RunE:    runAddRate,
}

func init() {
	addRateCmd.Flags().StringVarP(&flagSchedule, "schedule", "s", "", "Working hours, e.g. 18h-23h")
	addCmd.AddCommand(addDeliveryCmd, addRateCmd)
	rootCmd.AddCommand(addCmd)
}

func runAddDelivery(_ *cobra.Command, args []string) error {
	var v tui.DeliveryValues
	if len(args) == 2 {
		v.Address, v.Fee = args[0], args[1]
	} else {
		if len(args) == 1 {
			v.Address = args[0]
		}
		ok, err := runForm(tui.DeliveryForm(&v))
		if err != nil || !ok {
			return err
		}
	}

	s, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	r, err := s.AddDelivery(v.Address, v.Fee)
	if err != nil {
		return rejected(err)
	}
	logInfo("Added delivery %s: '%s' %s", strconv.FormatInt(r.ID, 10), r.ClientAddress, cli.FormatFloatMoney(r.Fee))
	logInfo("Day total now %s", cli.FormatMoney(pipeline.GrandTotal(s.Snapshot(), r.Date)))
	return nil
}

func runAddRate(_ *cobra.Command, args []string) error {
	v := tui.DailyRateValues{Schedule: flagSchedule}
	if len(args) == 2 {
		v.Workplace, v.Rate = args[0], args[1]
	} else {
		if len(args) == 1 {
			v.Workplace = args[0]
		}
		ok, err := runForm(tui.DailyRateForm(&v))
		if err != nil || !ok {
			return err
		}
	}

	s, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	r, err := s.AddDailyRate(v.Workplace, v.Rate, v.Schedule)
	if err != nil {
		return rejected(err)
	}
	logInfo("Added daily rate %s: '%s' %s", strconv.FormatInt(r.ID, 10), r.Workplace, cli.FormatFloatMoney(r.Rate))
	logInfo("Day total now %s", cli.FormatMoney(pipeline.GrandTotal(s.Snapshot(), r.Date)))
	return nil
}
