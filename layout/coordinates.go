package layout

import (
	"math"
	"strconv"
	"strings"

	"overlaybot/config"
	"overlaybot/types"
)

// Coordinates are drawtext x/y expressions. They may reference the renderer
// symbols w, h, text_w and text_h.
type Coordinates struct {
	X string `json:"x"`
	Y string `json:"y"`
}

const (
	centerX = "(w-text_w)/2"
	centerY = "(h-text_h)/2"
)

var (
	marginExpr = FormatNumber(config.PresetMargin)
	leftX      = marginExpr
	rightX     = "w-text_w-" + marginExpr
	topY       = marginExpr
	bottomY    = "h-text_h-" + marginExpr
)

var presets = map[string]Coordinates{
	"top-left":      {X: leftX, Y: topY},
	"top-center":    {X: centerX, Y: topY},
	"top-right":     {X: rightX, Y: topY},
	"center-left":   {X: leftX, Y: centerY},
	"center":        {X: centerX, Y: centerY},
	"center-right":  {X: rightX, Y: centerY},
	"bottom-left":   {X: leftX, Y: bottomY},
	"bottom-center": {X: centerX, Y: bottomY},
	"bottom-right":  {X: rightX, Y: bottomY},
}

var presetAliases = map[string]string{
	"top":           "top-center",
	"bottom":        "bottom-center",
	"left":          "center-left",
	"right":         "center-right",
	"middle":        "center",
	"center-center": "center",
	"middle-center": "center",
	"left-top":      "top-left",
	"right-top":     "top-right",
	"left-bottom":   "bottom-left",
	"right-bottom":  "bottom-right",
}

// NormalizePreset lower-cases a preset name and resolves aliases. Unknown
// names are returned as-is.
func NormalizePreset(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", "-", " ", "-").Replace(n)
	if alias, ok := presetAliases[n]; ok {
		return alias
	}
	return n
}

// PresetCoordinates looks up a named position. Unknown names fall back to center.
func PresetCoordinates(name string) Coordinates {
	if c, ok := presets[NormalizePreset(name)]; ok {
		return c
	}
	return presets["center"]
}

// ResolveCoordinates turns a position into drawtext x/y expressions.
// Malformed or missing axes resolve to center on that axis; it never fails.
func ResolveCoordinates(pos types.Position, align types.Alignment, anchor types.Anchor, width, height int) Coordinates {
	if pos.IsPreset() {
		c := PresetCoordinates(pos.Preset)
		if anchor == types.AnchorTop && pos.Y.Kind == types.AxisPixel {
			c.Y = FormatNumber(pos.Y.Value)
		}
		return c
	}

	return Coordinates{
		X: resolveX(pos.X, align),
		Y: resolveY(pos.Y, anchor),
	}
}

func resolveX(x types.AxisValue, align types.Alignment) string {
	var base string
	switch x.Kind {
	case types.AxisPercent:
		base = "w*" + FormatNumber(x.Fraction())
	case types.AxisPixel:
		base = FormatNumber(x.Value)
	default:
		return centerX
	}

	switch align.Normalize() {
	case types.AlignLeft:
		return base
	case types.AlignRight:
		return base + "-text_w"
	default:
		return base + "-text_w/2"
	}
}

func resolveY(y types.AxisValue, anchor types.Anchor) string {
	var base string
	switch y.Kind {
	case types.AxisPercent:
		base = "h*" + FormatNumber(y.Fraction())
	case types.AxisPixel:
		base = FormatNumber(y.Value)
	default:
		return centerY
	}

	if anchor == types.AnchorTop {
		return base
	}
	return base + "-text_h/2"
}

// CenterY returns the pixel row a block of blockHeight should be centered on.
func CenterY(pos types.Position, height int, blockHeight float64) float64 {
	h := float64(height)
	if pos.IsPreset() {
		name := NormalizePreset(pos.Preset)
		switch {
		case strings.HasPrefix(name, "top-"):
			return config.PresetMargin + blockHeight/2
		case strings.HasPrefix(name, "bottom-"):
			return h - config.PresetMargin - blockHeight/2
		default:
			return h / 2
		}
	}

	switch pos.Y.Kind {
	case types.AxisPercent:
		return h * pos.Y.Fraction()
	case types.AxisPixel:
		return pos.Y.Value
	default:
		return h / 2
	}
}

// FormatNumber prints v with at most four decimals and no trailing zeros.
func FormatNumber(v float64) string {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
