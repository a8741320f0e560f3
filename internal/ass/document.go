package ass

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Style is one row of the [V4+ Styles] table. Colors are already encoded
// with alpha (&HAABBGGRR).
type Style struct {
	Name            string
	FontName        string
	FontSize        int
	PrimaryColour   string
	SecondaryColour string
	OutlineColour   string
	BackColour      string
	Bold            bool
	Italic          bool
	Underline       bool
	StrikeOut       bool
	ScaleX          int
	ScaleY          int
	Spacing         float64
	Angle           float64
	BorderStyle     int
	Outline         int
	Shadow          int
	Alignment       int
	MarginL         int
	MarginR         int
	MarginV         int
	Encoding        int
}

// Event is one Dialogue row. Text carries inline override tags and is
// written verbatim.
type Event struct {
	Layer   int
	Start   float64
	End     float64
	Style   string
	MarginL int
	MarginR int
	MarginV int
	Text    string
}

// Document is a complete subtitle script.
type Document struct {
	Title     string
	Width     int
	Height    int
	WrapStyle int
	Styles    []Style
	Events    []Event
}

const (
	styleFormat = "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding"
	eventFormat = "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text"
)

// WriteTo serializes the document in section order: script info, styles,
// events.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.Grow(512 + len(d.Events)*160)

	buf.WriteString("[Script Info]\n")
	if title := strings.TrimSpace(d.Title); title != "" {
		fmt.Fprintf(&buf, "Title: %s\n", title)
	}
	buf.WriteString("ScriptType: v4.00+\n")
	fmt.Fprintf(&buf, "PlayResX: %d\n", d.Width)
	fmt.Fprintf(&buf, "PlayResY: %d\n", d.Height)
	fmt.Fprintf(&buf, "WrapStyle: %d\n", d.WrapStyle)
	buf.WriteString("ScaledBorderAndShadow: yes\n")
	buf.WriteByte('\n')

	buf.WriteString("[V4+ Styles]\n")
	buf.WriteString(styleFormat)
	buf.WriteByte('\n')
	for _, style := range d.Styles {
		buf.WriteString(style.line())
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')

	buf.WriteString("[Events]\n")
	buf.WriteString(eventFormat)
	buf.WriteByte('\n')
	for _, event := range d.Events {
		buf.WriteString(event.line())
		buf.WriteByte('\n')
	}

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// String returns the serialized document.
func (d *Document) String() string {
	var sb strings.Builder
	_, _ = d.WriteTo(&sb)
	return sb.String()
}

// Duration returns the end time of the latest event.
func (d *Document) Duration() float64 {
	var last float64
	for _, event := range d.Events {
		if event.End > last {
			last = event.End
		}
	}
	return last
}

func (s Style) line() string {
	fields := []string{
		s.Name,
		s.FontName,
		strconv.Itoa(s.FontSize),
		s.PrimaryColour,
		s.SecondaryColour,
		s.OutlineColour,
		s.BackColour,
		assBool(s.Bold),
		assBool(s.Italic),
		assBool(s.Underline),
		assBool(s.StrikeOut),
		strconv.Itoa(s.ScaleX),
		strconv.Itoa(s.ScaleY),
		formatNumber(s.Spacing),
		formatNumber(s.Angle),
		strconv.Itoa(s.BorderStyle),
		strconv.Itoa(s.Outline),
		strconv.Itoa(s.Shadow),
		strconv.Itoa(s.Alignment),
		strconv.Itoa(s.MarginL),
		strconv.Itoa(s.MarginR),
		strconv.Itoa(s.MarginV),
		strconv.Itoa(s.Encoding),
	}
	return "Style: " + strings.Join(fields, ",")
}

func (e Event) line() string {
	fields := []string{
		strconv.Itoa(e.Layer),
		FormatTimestamp(e.Start),
		FormatTimestamp(e.End),
		e.Style,
		"", // Name
		strconv.Itoa(e.MarginL),
		strconv.Itoa(e.MarginR),
		strconv.Itoa(e.MarginV),
		"", // Effect
		e.Text,
	}
	return "Dialogue: " + strings.Join(fields, ",")
}

// assBool spells booleans the way the format does: -1 true, 0 false.
func assBool(value bool) string {
	if value {
		return "-1"
	}
	return "0"
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
