package tui

import (
	"testing"

	"github.com/theirongolddev/motolog/internal/config"
)

func TestValidators(t *testing.T) {
	for _, s := range []string{"8.50", "8,50", " 12 ", "-2.5"} {
		if err := ValidateAmount(s); err != nil {
			t.Errorf("ValidateAmount(%q) = %v", s, err)
		}
	}
	for _, s := range []string{"", "dez", "1.234,50"} {
		if ValidateAmount(s) == nil {
			t.Errorf("ValidateAmount(%q) accepted", s)
		}
	}
	if ValidateLabel("   ") == nil {
		t.Error("blank label accepted")
	}
}

func TestSetupValuesApply(t *testing.T) {
	cfg := config.DefaultConfig()
	v := SetupValuesFrom(cfg)
	if got := v.Apply(cfg); got != cfg {
		t.Errorf("round trip changed the config: %+v", got)
	}

	v.Backend = "sqlite"
	v.DataDir = "  /srv/motolog  "
	v.ShareCommand = " wl-copy "
	got := v.Apply(cfg)
	if got.General.Backend != "sqlite" || got.General.DataDir != "/srv/motolog" || got.Report.ShareCommand != "wl-copy" {
		t.Errorf("Apply = %+v", got)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("applied config invalid: %v", err)
	}
}
