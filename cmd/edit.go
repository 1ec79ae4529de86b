package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/motolog/internal/cli"
	"github.com/theirongolddev/motolog/internal/ledger"
	"github.com/theirongolddev/motolog/internal/tui"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit delivery|rate ID [LABEL AMOUNT]",
	Short: "Replace the fields of a record (opens a prefilled form when fields are missing)",
	Long: "Replace the fields of a record, keeping its id and creation time.\n" +
		"The record moves to today unless ledger.keep_date_on_edit is set.",
	Args: cobra.RangeArgs(2, 4),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&flagSchedule, "schedule", "s", "", "Working hours (rates only)")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	kind, err := kindArg(args[0])
	if err != nil {
		return err
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}

	s, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	switch kind {
	case "delivery":
		cur, ok := s.Delivery(id)
		if !ok {
			return rejected(fmt.Errorf("delivery %d: %w", id, ledger.ErrNotFound))
		}
		v := tui.DeliveryValues{Address: cur.ClientAddress, Fee: strconv.FormatFloat(cur.Fee, 'f', -1, 64)}
		if len(args) >= 3 {
			v.Address = args[2]
		}
		if len(args) == 4 {
			v.Fee = args[3]
		} else if ok, err := runForm(tui.DeliveryForm(&v)); err != nil || !ok {
			return err
		}
		r, err := s.EditDelivery(id, v.Address, v.Fee)
		if err != nil {
			return rejected(err)
		}
		logInfo("Updated delivery %s: '%s' %s on %s", strconv.FormatInt(r.ID, 10), r.ClientAddress, cli.FormatFloatMoney(r.Fee), r.Date.String())

	case "rate":
		cur, ok := s.DailyRate(id)
		if !ok {
			return rejected(fmt.Errorf("daily rate %d: %w", id, ledger.ErrNotFound))
		}
		v := tui.DailyRateValues{
			Workplace: cur.Workplace,
			Rate:      strconv.FormatFloat(cur.Rate, 'f', -1, 64),
			Schedule:  cur.Schedule,
		}
		if cmd.Flags().Changed("schedule") {
			v.Schedule = flagSchedule
		}
		if len(args) >= 3 {
			v.Workplace = args[2]
		}
		if len(args) == 4 {
			v.Rate = args[3]
		} else if ok, err := runForm(tui.DailyRateForm(&v)); err != nil || !ok {
			return err
		}
		r, err := s.EditDailyRate(id, v.Workplace, v.Rate, v.Schedule)
		if err != nil {
			return rejected(err)
		}
		logInfo("Updated daily rate %s: '%s' %s on %s", strconv.FormatInt(r.ID, 10), r.Workplace, cli.FormatFloatMoney(r.Rate), r.Date.String())
	}
	return nil
}
