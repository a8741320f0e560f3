package captions

import (
	"errors"
	"testing"
)

func TestResolveGeometry(t *testing.T) {
	base := Layout{FontSize: 80, Outline: 5, MarginL: 60, MarginR: 60}
	tests := []struct {
		name   string
		zone   string
		canvas Canvas
		want   Geometry
	}{
		{
			name:   "reference bottom",
			zone:   "bottom",
			canvas: Canvas{Width: 1080, Height: 1920},
			want:   Geometry{Alignment: 2, MarginV: 300, FontSize: 80, Outline: 5, MarginL: 60, MarginR: 60},
		},
		{
			name:   "square canvas scales vertical margin only",
			zone:   "bottom",
			canvas: Canvas{Width: 1080, Height: 1080},
			want:   Geometry{Alignment: 2, MarginV: 169, FontSize: 80, Outline: 5, MarginL: 60, MarginR: 60},
		},
		{
			name:   "half width",
			zone:   "Top",
			canvas: Canvas{Width: 540, Height: 960},
			want:   Geometry{Alignment: 8, MarginV: 70, FontSize: 40, Outline: 3, MarginL: 30, MarginR: 30},
		},
		{
			name:   "middle has no margin",
			zone:   "middle",
			canvas: Canvas{Width: 1920, Height: 1080},
			want:   Geometry{Alignment: 5, MarginV: 0, FontSize: 142, Outline: 9, MarginL: 107, MarginR: 107},
		},
		{
			name:   "zero canvas uses reference",
			zone:   "upper-middle",
			canvas: Canvas{},
			want:   Geometry{Alignment: 8, MarginV: 560, FontSize: 80, Outline: 5, MarginL: 60, MarginR: 60},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveGeometry(tt.zone, tt.canvas, base)
			if err != nil {
				t.Fatalf("ResolveGeometry returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ResolveGeometry = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveGeometryUnknownZone(t *testing.T) {
	_, err := ResolveGeometry("sideways", Canvas{Width: 1080, Height: 1920}, Layout{})
	if !errors.Is(err, ErrUnknownZone) {
		t.Fatalf("expected ErrUnknownZone, got %v", err)
	}
}

func TestZonesOrderedTopDown(t *testing.T) {
	zones := Zones()
	want := []string{"top", "upper-middle", "middle", "lower-middle", "bottom"}
	if len(zones) != len(want) {
		t.Fatalf("expected %d zones, got %d", len(want), len(zones))
	}
	for i, zone := range zones {
		if zone.Name != want[i] {
			t.Fatalf("zone %d = %q, want %q", i, zone.Name, want[i])
		}
	}
}
