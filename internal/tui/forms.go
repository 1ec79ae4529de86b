package tui

import (
	"errors"
	"strings"

	"github.com/theirongolddev/motolog/internal/config"
	"github.com/theirongolddev/motolog/internal/ledger"
	"github.com/theirongolddev/motolog/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// ValidateLabel rejects blank labels.
func ValidateLabel(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

// ValidateAmount rejects text that is not a decimal amount.
func ValidateAmount(s string) error {
	if _, err := ledger.ParseAmount(s); err != nil {
		return errors.New("enter a number such as 12.50 or 12,50")
	}
	return nil
}

// DeliveryValues backs the delivery form.
type DeliveryValues struct {
	Address string
	Fee     string
}

// DailyRateValues backs the daily-rate form.
type DailyRateValues struct {
	Workplace string
	Rate      string
	Schedule  string
}

// DeliveryForm asks for a client address and a fee, starting from v.
func DeliveryForm(v *DeliveryValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Client / address").
				Placeholder("Rua das Flores, 12").
				Value(&v.Address).
				Validate(ValidateLabel),
			huh.NewInput().
				Title("Fee").
				Placeholder("8,50").
				Value(&v.Fee).
				Validate(ValidateAmount),
		),
	)
}

// DailyRateForm asks for a workplace, a rate and an optional schedule.
func DailyRateForm(v *DailyRateValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Workplace").
				Placeholder("Pizzaria Bella").
				Value(&v.Workplace).
				Validate(ValidateLabel),
			huh.NewInput().
				Title("Rate").
				Placeholder("80").
				Value(&v.Rate).
				Validate(ValidateAmount),
			huh.NewInput().
				Title("Schedule").
				Description("Optional, e.g. 18h-23h").
				Value(&v.Schedule),
		),
	)
}

// ReconcileForm asks for the corrected grand total of a day.
func ReconcileForm(day string, total *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Correct total for " + day).
				Description("The difference is added as a manual adjustment").
				Value(total).
				Validate(ValidateAmount),
		),
	)
}

// SetupValues backs the setup wizard.
type SetupValues struct {
	Backend        string
	DataDir        string
	Currency       string
	ShareCommand   string
	KeepDateOnEdit bool
	Theme          string
}

// SetupValuesFrom copies the editable settings out of cfg.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Backend:        cfg.General.Backend,
		DataDir:        cfg.General.DataDir,
		Currency:       cfg.Report.Currency,
		ShareCommand:   cfg.Report.ShareCommand,
		KeepDateOnEdit: cfg.Ledger.KeepDateOnEdit,
		Theme:          cfg.Appearance.Theme,
	}
}

// Apply writes v into a copy of cfg.
func (v SetupValues) Apply(cfg config.Config) config.Config {
	cfg.General.Backend = v.Backend
	cfg.General.DataDir = strings.TrimSpace(v.DataDir)
	cfg.Report.Currency = strings.TrimSpace(v.Currency)
	cfg.Report.ShareCommand = strings.TrimSpace(v.ShareCommand)
	cfg.Ledger.KeepDateOnEdit = v.KeepDateOnEdit
	cfg.Appearance.Theme = v.Theme
	return cfg
}

// SetupForm is the configuration wizard.
func SetupForm(v *SetupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to motolog").
				Description("Log deliveries and daily rates, then share the day report.\nPress Enter to continue."),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Storage backend").
				Description("json keeps two files; sqlite keeps one database").
				Options(huh.NewOptions(config.Backends...)...).
				Value(&v.Backend),
			huh.NewInput().
				Title("Data directory").
				Placeholder(config.DefaultDataDir()).
				Description("Leave blank for the default").
				Value(&v.DataDir),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Currency symbol").
				Value(&v.Currency).
				Validate(ValidateLabel),
			huh.NewInput().
				Title("Share command").
				Description("Receives the report on stdin; blank copies to the clipboard").
				Placeholder("wl-copy").
				Value(&v.ShareCommand),
			huh.NewConfirm().
				Title("Keep a record's date when editing it?").
				Description("No moves edited records to today").
				Value(&v.KeepDateOnEdit),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&v.Theme),
		),
	)
}
