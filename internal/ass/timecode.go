package ass

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	centisPerHour   = 360000
	centisPerMinute = 6000
	centisPerSecond = 100
)

// FormatTimestamp renders seconds as H:MM:SS.cc. Centiseconds are rounded,
// not truncated, so long tracks do not drift. Negative values clamp to zero.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	cs := int64(math.Round(seconds * 100))
	hours := cs / centisPerHour
	minutes := cs % centisPerHour / centisPerMinute
	secs := cs % centisPerMinute / centisPerSecond
	centis := cs % centisPerSecond
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, centis)
}

// ParseTimestamp decodes an H:MM:SS.cc value into seconds.
func ParseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	hms := strings.Split(value, ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	secParts := strings.Split(hms[2], ".")
	if len(secParts) != 2 || len(secParts[1]) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(secParts[0])
	centis, errC := strconv.Atoi(secParts[1])
	if errH != nil || errM != nil || errS != nil || errC != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	total := int64(hours)*centisPerHour + int64(minutes)*centisPerMinute + int64(seconds)*centisPerSecond + int64(centis)
	return float64(total) / 100, nil
}
