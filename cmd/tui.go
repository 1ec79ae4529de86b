package cmd

import (
	"fmt"

	"github.com/theirongolddev/motolog/internal/tui"
	"github.com/theirongolddev/motolog/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"ui"},
	Short:   "Launch the interactive dashboard",
	Args:    cobra.NoArgs,
	RunE:    runTUI,
}

func init() {
	addDateFlag(tuiCmd)
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	day, err := resolveDate(cmd)
	if err != nil {
		return err
	}
	s, err := openLedger()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	theme.SetActive(cfg.Appearance.Theme)
	// Background styling needs color codes even when the profile probe says otherwise.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(s, cfg, day)
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
