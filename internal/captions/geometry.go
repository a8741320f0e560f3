package captions

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Reference canvas the zone table and style sizes are authored against.
const (
	ReferenceWidth  = 1080
	ReferenceHeight = 1920
)

// Zone is a named on-screen caption position at the reference resolution.
type Zone struct {
	Name      string
	Alignment int // numpad layout: 7-9 top row, 4-6 middle, 1-3 bottom
	MarginV   int
}

// zones keep captions inside the short-form safe area, clear of the
// platform UI drawn over the top and bottom of portrait video.
var zones = map[string]Zone{
	"top":          {Name: "top", Alignment: 8, MarginV: 140},
	"upper-middle": {Name: "upper-middle", Alignment: 8, MarginV: 560},
	"middle":       {Name: "middle", Alignment: 5, MarginV: 0},
	"lower-middle": {Name: "lower-middle", Alignment: 2, MarginV: 560},
	"bottom":       {Name: "bottom", Alignment: 2, MarginV: 300},
}

// Zones returns the zone table ordered from the top of the frame down.
func Zones() []Zone {
	out := make([]Zone, 0, len(zones))
	for _, zone := range zones {
		out = append(out, zone)
	}
	sort.Slice(out, func(i, j int) bool {
		return zoneRank(out[i]) < zoneRank(out[j])
	})
	return out
}

func zoneRank(z Zone) int {
	switch {
	case z.Alignment >= 7:
		return z.MarginV
	case z.Alignment >= 4:
		return ReferenceHeight / 2
	default:
		return ReferenceHeight - z.MarginV
	}
}

// Layout holds the size-dependent style values at the reference resolution.
type Layout struct {
	FontSize int
	Outline  int
	MarginL  int
	MarginR  int
}

// Geometry is a zone and layout resolved for a concrete canvas.
type Geometry struct {
	Alignment int
	MarginV   int
	FontSize  int
	Outline   int
	MarginL   int
	MarginR   int
}

// ResolveGeometry scales the named zone and base layout to canvas. Vertical
// margin follows the height ratio; font, outline, and horizontal margins
// follow the width ratio. A zero canvas dimension means the reference size.
func ResolveGeometry(zone string, canvas Canvas, base Layout) (Geometry, error) {
	key := strings.ToLower(strings.TrimSpace(zone))
	z, ok := zones[key]
	if !ok {
		return Geometry{}, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}
	width := canvas.Width
	if width <= 0 {
		width = ReferenceWidth
	}
	height := canvas.Height
	if height <= 0 {
		height = ReferenceHeight
	}
	sx := float64(width) / ReferenceWidth
	sy := float64(height) / ReferenceHeight
	return Geometry{
		Alignment: z.Alignment,
		MarginV:   scale(z.MarginV, sy),
		FontSize:  scale(base.FontSize, sx),
		Outline:   scale(base.Outline, sx),
		MarginL:   scale(base.MarginL, sx),
		MarginR:   scale(base.MarginR, sx),
	}, nil
}

func scale(value int, factor float64) int {
	return int(math.Round(float64(value) * factor))
}
