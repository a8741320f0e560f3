package captions

import (
	"fmt"
	"sort"
	"strings"
)

// Preset is a named bundle of appearance defaults. Sizes are at the
// reference resolution; colors are any form ass.ParseColor accepts.
type Preset struct {
	Name          string `json:"name"`
	FontName      string `json:"font_name"`
	FontSize      int    `json:"font_size"`
	Bold          bool   `json:"bold"`
	Uppercase     bool   `json:"uppercase"`
	ActiveColor   string `json:"active_color"`
	InactiveColor string `json:"inactive_color"`
	OutlineColor  string `json:"outline_color"`
	BackColor     string `json:"back_color"`
	BackAlpha     uint8  `json:"back_alpha"`
	Outline       int    `json:"outline"`
	Shadow        int    `json:"shadow"`
	MarginL       int    `json:"margin_l"`
	MarginR       int    `json:"margin_r"`
	BounceScale   int    `json:"bounce_scale"`
}

var presets = map[string]Preset{
	"default": {
		Name:          "default",
		FontName:      "Arial",
		FontSize:      80,
		Bold:          true,
		ActiveColor:   "yellow",
		InactiveColor: "white",
		OutlineColor:  "black",
		BackColor:     "black",
		BackAlpha:     0x80,
		Outline:       5,
		Shadow:        2,
		MarginL:       60,
		MarginR:       60,
		BounceScale:   115,
	},
	"bold": {
		Name:          "bold",
		FontName:      "Impact",
		FontSize:      96,
		Bold:          true,
		Uppercase:     true,
		ActiveColor:   "lime",
		InactiveColor: "white",
		OutlineColor:  "black",
		BackColor:     "black",
		BackAlpha:     0x00,
		Outline:       8,
		Shadow:        0,
		MarginL:       50,
		MarginR:       50,
		BounceScale:   125,
	},
	"minimal": {
		Name:          "minimal",
		FontName:      "Helvetica",
		FontSize:      64,
		ActiveColor:   "white",
		InactiveColor: "#B4B4B4",
		OutlineColor:  "black",
		BackColor:     "black",
		BackAlpha:     0xFF,
		Outline:       2,
		Shadow:        0,
		MarginL:       80,
		MarginR:       80,
		BounceScale:   105,
	},
}

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "default"
	}
	preset, ok := presets[key]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return preset, nil
}

// Presets returns every preset sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, preset := range presets {
		out = append(out, preset)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
