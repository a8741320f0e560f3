package ass

import "fmt"

// Override tags are self-contained {...} blocks, so they compose by plain
// concatenation. The renderer applies them left to right.

// ColorTag switches the primary fill color to encoded (an &HBBGGRR value)
// until the next color tag or reset.
func ColorTag(encoded string) string {
	return fmt.Sprintf(`{\c%s&}`, encoded)
}

// ResetTag clears every active override back to the line's style.
func ResetTag() string {
	return `{\r}`
}

// FadeTag fades the event in over fadeInMs and out over fadeOutMs.
// Zero disables that edge; negative values are treated as zero.
func FadeTag(fadeInMs, fadeOutMs int) string {
	return fmt.Sprintf(`{\fad(%d,%d)}`, max(fadeInMs, 0), max(fadeOutMs, 0))
}

// BounceTag scales the text up to scalePercent and back to 100% within an
// event lasting totalMs. The up-stroke covers [0, min(animMs, totalMs/2)] and
// the down-stroke [max(0, totalMs-animMs), totalMs], both relative to the
// event start. Very short events get overlapping windows; the renderer lets
// the later transform win.
func BounceTag(totalMs, scalePercent, animMs int) string {
	totalMs = max(totalMs, 0)
	animMs = max(animMs, 0)
	upEnd := min(animMs, totalMs/2)
	downStart := max(0, totalMs-animMs)
	return fmt.Sprintf(`{\t(0,%d,\fscx%d\fscy%d)\t(%d,%d,\fscx100\fscy100)}`,
		upEnd, scalePercent, scalePercent, downStart, totalMs)
}
