package theme

import (
	"slices"
	"testing"

	"github.com/theirongolddev/motolog/internal/config"
)

func TestThemeNamesMatchConfig(t *testing.T) {
	if !slices.Equal(Names(), config.Themes) {
		t.Errorf("theme names %v differ from accepted config values %v", Names(), config.Themes)
	}
}

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %s", got)
	}
	if got := ByName("solarized").Name; got != FlexokiDark.Name {
		t.Errorf("unknown theme = %s, want %s", got, FlexokiDark.Name)
	}
}

func TestEveryRoleIsSet(t *testing.T) {
	for _, th := range All {
		roles := map[string]string{
			"Background": string(th.Background), "Surface": string(th.Surface),
			"Selection": string(th.Selection), "Border": string(th.Border),
			"TextPrimary": string(th.TextPrimary), "Accent": string(th.Accent),
			"Delivery": string(th.Delivery), "DailyRate": string(th.DailyRate),
			"Adjustment": string(th.Adjustment), "Total": string(th.Total),
			"Negative": string(th.Negative),
		}
		for role, c := range roles {
			if c == "" {
				t.Errorf("%s: %s is empty", th.Name, role)
			}
		}
	}
}
