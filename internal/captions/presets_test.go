package captions

import (
	"errors"
	"testing"

	"captionkit/internal/ass"
)

func TestLookupPreset(t *testing.T) {
	preset, err := LookupPreset("")
	if err != nil || preset.Name != "default" {
		t.Fatalf("empty name should resolve to default, got %+v (%v)", preset, err)
	}
	preset, err = LookupPreset(" BOLD ")
	if err != nil || preset.Name != "bold" {
		t.Fatalf("lookup should be case-insensitive, got %+v (%v)", preset, err)
	}
	if _, err := LookupPreset("neon"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestPresetColorsDecode(t *testing.T) {
	for _, preset := range Presets() {
		for _, value := range []string{preset.ActiveColor, preset.InactiveColor, preset.OutlineColor, preset.BackColor} {
			rgb := ass.ResolveRGB(ass.ParseColor(value), nil)
			if rgb == ass.White && value != "white" {
				t.Fatalf("preset %s color %q does not decode", preset.Name, value)
			}
		}
		if preset.FontSize <= 0 || preset.BounceScale < 100 {
			t.Fatalf("preset %s has unusable sizing: %+v", preset.Name, preset)
		}
	}
	if names := Presets(); names[0].Name != "bold" || names[len(names)-1].Name != "minimal" {
		t.Fatalf("presets should be sorted by name, got %v", names)
	}
}
