package cmd

import (
	"fmt"

	"github.com/theirongolddev/motolog/internal/config"
	"github.com/theirongolddev/motolog/internal/tui"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configuration wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the file, not from flag overrides of this invocation.
	base, err := config.Load()
	if err != nil {
		logWarn("Ignoring unreadable config: %s", err.Error())
		base = config.DefaultConfig()
	}

	v := tui.SetupValuesFrom(base)
	ok, err := runForm(tui.SetupForm(&v))
	if err != nil || !ok {
		return err
	}

	next := v.Apply(base)
	if err := next.Validate(); err != nil {
		return err
	}
	if err := config.Save(next); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	logInfo("Saved to '%s'", config.ConfigPath())
	logInfo("Records live in '%s' (%s)", next.ResolvedDataDir(), next.General.Backend)
	return nil
}
