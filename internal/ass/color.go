package ass

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"captionkit/internal/logging"
)

// colorSigil prefixes every encoded color value.
const colorSigil = "&H"

// RGB is a decoded 8-bit color triple.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// White is the substitute for any color that cannot be decoded.
var White = RGB{R: 0xFF, G: 0xFF, B: 0xFF}

// palette maps the accepted color names to their RGB values.
var palette = map[string]RGB{
	"white":   {0xFF, 0xFF, 0xFF},
	"black":   {0x00, 0x00, 0x00},
	"red":     {0xFF, 0x00, 0x00},
	"green":   {0x00, 0xFF, 0x00},
	"blue":    {0x00, 0x00, 0xFF},
	"yellow":  {0xFF, 0xFF, 0x00},
	"cyan":    {0x00, 0xFF, 0xFF},
	"magenta": {0xFF, 0x00, 0xFF},
	"orange":  {0xFF, 0xA5, 0x00},
	"purple":  {0x80, 0x00, 0x80},
	"pink":    {0xFF, 0xC0, 0xCB},
	"gray":    {0x80, 0x80, 0x80},
	"grey":    {0x80, 0x80, 0x80},
	"lime":    {0x32, 0xCD, 0x32},
	"gold":    {0xFF, 0xD7, 0x00},
}

// PaletteNames returns the known color names in no particular order.
func PaletteNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	return names
}

// Color is a caption color as supplied by a caller. The concrete variants are
// NamedColor, HexColor, RGBColor and EncodedColor.
type Color interface {
	decode() (RGB, error)
}

// NamedColor refers to an entry in the fixed palette.
type NamedColor string

// HexColor is a #RRGGBB or RRGGBB string.
type HexColor string

// RGBColor is an explicit channel triple.
type RGBColor RGB

// EncodedColor is a value already in &H[AA]BBGGRR form.
type EncodedColor string

func (c NamedColor) decode() (RGB, error) {
	rgb, ok := palette[strings.ToLower(strings.TrimSpace(string(c)))]
	if !ok {
		return White, fmt.Errorf("unknown color name %q", string(c))
	}
	return rgb, nil
}

func (c HexColor) decode() (RGB, error) {
	value := strings.TrimPrefix(strings.TrimSpace(string(c)), "#")
	if len(value) != 6 {
		return White, fmt.Errorf("malformed hex color %q", string(c))
	}
	packed, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return White, fmt.Errorf("malformed hex color %q", string(c))
	}
	return RGB{R: uint8(packed >> 16), G: uint8(packed >> 8), B: uint8(packed)}, nil
}

func (c RGBColor) decode() (RGB, error) {
	return RGB(c), nil
}

func (c EncodedColor) decode() (RGB, error) {
	rgb, _, err := DecodeColor(string(c))
	if err != nil {
		return White, err
	}
	return rgb, nil
}

// ParseColor classifies a textual color into its variant: encoded values
// start with the &H sigil, hex values are six hex digits with an optional
// leading '#', anything else is treated as a palette name.
func ParseColor(value string) Color {
	trimmed := strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(strings.ToUpper(trimmed), colorSigil):
		return EncodedColor(trimmed)
	case strings.HasPrefix(trimmed, "#"):
		return HexColor(trimmed)
	case len(trimmed) == 6 && isHex(trimmed):
		return HexColor(trimmed)
	default:
		return NamedColor(trimmed)
	}
}

// ResolveRGB decodes c. Undecodable colors are logged and replaced with
// opaque white; a cosmetic mistake never aborts caption generation.
func ResolveRGB(c Color, logger *slog.Logger) RGB {
	if c == nil {
		return White
	}
	rgb, err := c.decode()
	if err != nil {
		logging.WarnWithContext(logger, "invalid caption color; using white", "caption_color_invalid",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "use a palette name, #RRGGBB, or &HBBGGRR"),
			logging.String(logging.FieldImpact, "affected text renders white"),
		)
		return White
	}
	return rgb
}

// EncodeColor packs rgb as &HBBGGRR, the form used inside override tags.
func EncodeColor(rgb RGB) string {
	return fmt.Sprintf("%s%02X%02X%02X", colorSigil, rgb.B, rgb.G, rgb.R)
}

// EncodeColorAlpha packs rgb as &HAABBGGRR, the form used in style rows.
// Alpha 0 is opaque and 0xFF fully transparent.
func EncodeColorAlpha(rgb RGB, alpha uint8) string {
	return fmt.Sprintf("%s%02X%02X%02X%02X", colorSigil, alpha, rgb.B, rgb.G, rgb.R)
}

// DecodeColor parses &HBBGGRR or &HAABBGGRR (with an optional trailing '&')
// back into its channels.
func DecodeColor(value string) (RGB, uint8, error) {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(strings.ToUpper(trimmed), colorSigil) {
		return RGB{}, 0, fmt.Errorf("encoded color %q: missing %s prefix", value, colorSigil)
	}
	digits := strings.TrimSuffix(trimmed[len(colorSigil):], "&")
	if (len(digits) != 6 && len(digits) != 8) || !isHex(digits) {
		return RGB{}, 0, fmt.Errorf("encoded color %q: expected 6 or 8 hex digits", value)
	}
	packed, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, 0, fmt.Errorf("encoded color %q: %w", value, err)
	}
	var alpha uint8
	if len(digits) == 8 {
		alpha = uint8(packed >> 24)
	}
	return RGB{B: uint8(packed >> 16), G: uint8(packed >> 8), R: uint8(packed)}, alpha, nil
}

func isHex(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
