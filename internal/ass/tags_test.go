package ass

import "testing"

func TestSimpleTags(t *testing.T) {
	if got := ColorTag("&H00FFFF"); got != `{\c&H00FFFF&}` {
		t.Fatalf("ColorTag = %q", got)
	}
	if got := ResetTag(); got != `{\r}` {
		t.Fatalf("ResetTag = %q", got)
	}
	if got := FadeTag(150, 0); got != `{\fad(150,0)}` {
		t.Fatalf("FadeTag = %q", got)
	}
	if got := FadeTag(-10, 200); got != `{\fad(0,200)}` {
		t.Fatalf("FadeTag with negative input = %q", got)
	}
}

func TestBounceTag(t *testing.T) {
	tests := []struct {
		name                    string
		total, scale, animation int
		want                    string
	}{
		{
			name:  "long word",
			total: 600, scale: 120, animation: 100,
			want: `{\t(0,100,\fscx120\fscy120)\t(500,600,\fscx100\fscy100)}`,
		},
		{
			name:  "short word caps the up-stroke at half",
			total: 120, scale: 115, animation: 100,
			want: `{\t(0,60,\fscx115\fscy115)\t(20,120,\fscx100\fscy100)}`,
		},
		{
			name:  "zero duration",
			total: 0, scale: 120, animation: 100,
			want: `{\t(0,0,\fscx120\fscy120)\t(0,0,\fscx100\fscy100)}`,
		},
		{
			name:  "negative duration clamps",
			total: -50, scale: 120, animation: 100,
			want: `{\t(0,0,\fscx120\fscy120)\t(0,0,\fscx100\fscy100)}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BounceTag(tt.total, tt.scale, tt.animation); got != tt.want {
				t.Fatalf("BounceTag = %q, want %q", got, tt.want)
			}
		})
	}
}
