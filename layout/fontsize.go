package layout

import (
	"math"

	"overlaybot/config"
)

// ResolveFontSize converts a responsive size to pixels. Values up to the cutoff
// are a percentage of the video height; larger values are already pixels.
// Zero and negative values pass through; callers validate positivity.
func ResolveFontSize(value float64, height int) int {
	if value <= config.PercentFontSizeCutoff {
		return int(math.Round(value / 100 * float64(height)))
	}
	return int(math.Round(value))
}

// LineHeight is the vertical space taken by a line whose tallest glyphs use fontSize pixels.
func LineHeight(fontSize int) float64 {
	return float64(fontSize) * config.LineSpacing
}
