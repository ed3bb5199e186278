// Package labelcolor derives stable display colors from detection labels so
// the same species or track is drawn in the same color on every page.
package labelcolor

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	Black = "#000000"
	White = "#FFFFFF"

	// contrastLuminanceThreshold is the relative luminance at which black and
	// white text have equal contrast ratio against the background.
	contrastLuminanceThreshold = 0.179
)

// LabelToUniqueHexColor hashes label into an uppercase "#RRGGBB" color.
//
// The hash is the 31-multiplier string hash over UTF-16 code units truncated
// to a signed 32-bit integer, so the browser and this package agree on every
// label. Distinct labels may collide.
func LabelToUniqueHexColor(label string) string {
	var hash int32
	for _, unit := range utf16.Encode([]rune(label)) {
		hash = (hash << 5) - hash + int32(unit)
	}

	magnitude := int64(hash)
	if magnitude < 0 {
		magnitude = -magnitude
	}

	r := (magnitude >> 16) & 0xFF
	g := (magnitude >> 8) & 0xFF
	b := magnitude & 0xFF
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// GetContrastTextColor returns Black or White, whichever reads better on
// hexColor. Unparseable colors get Black.
func GetContrastTextColor(hexColor string) string {
	hexColor = strings.TrimSpace(hexColor)
	if !strings.HasPrefix(hexColor, "#") {
		hexColor = "#" + hexColor
	}

	c, err := colorful.Hex(hexColor)
	if err != nil {
		return Black
	}

	// Y of CIE XYZ is the relative luminance of the sRGB color
	_, luminance, _ := c.Xyz()
	if luminance > contrastLuminanceThreshold {
		return Black
	}
	return White
}
