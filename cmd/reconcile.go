package cmd

import (
	"github.com/theirongolddev/motolog/internal/cli"
	"github.com/theirongolddev/motolog/internal/ledger"
	"github.com/theirongolddev/motolog/internal/pipeline"

	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:     "reconcile DATE TOTAL",
	Aliases: []string{"adjust", "ajuste"},
	Short:   "Set a day's total by adding a manual adjustment",
	Long: "Set a day's grand total to TOTAL. The difference is recorded as an\n" +
		"adjustment delivery on that day; existing records are not changed.",
	Args: cobra.ExactArgs(2),
	RunE: runReconcile,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(_ *cobra.Command, args []string) error {
	s, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	day, err := parseDateArg(args[0], s.Today())
	if err != nil {
		return err
	}
	target, err := ledger.ParseAmount(args[1])
	if err != nil {
		return rejected(err)
	}

	before := pipeline.GrandTotal(s.Snapshot(), day)
	adj, ok := s.ReconcileDate(day, target)
	if !ok {
		logInfo("%s already totals %s; nothing to adjust", day.String(), cli.FormatMoney(before))
		return nil
	}
	logInfo("Added '%s' on %s", adj.ClientAddress, day.String())
	logInfo("Day total %s -> %s", cli.FormatMoney(before), cli.FormatMoney(pipeline.GrandTotal(s.Snapshot(), day)))
	return nil
}
