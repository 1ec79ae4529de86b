package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete delivery|rate ID",
	Aliases: []string{"rm"},
	Short:   "Permanently remove a record",
	Args:    cobra.ExactArgs(2),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
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

	var removed bool
	if kind == "delivery" {
		removed = s.DeleteDelivery(id)
	} else {
		removed = s.DeleteDailyRate(id)
	}

	if !removed {
		logWarn("No %s with id %s; nothing removed", kind, strconv.FormatInt(id, 10))
		return nil
	}
	logInfo("Removed %s %s", kind, strconv.FormatInt(id, 10))
	return nil
}
