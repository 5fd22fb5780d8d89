package style

import (
	"fmt"
	"strings"

	"overlaybot/config"
	"overlaybot/layout"
)

type fontApplier struct{}

func (fontApplier) Name() string { return "font" }

func (fontApplier) apply(expr string, s *state) string {
	size := layout.ResolveFontSize(s.in.Overlay.FontSize, s.in.Dims.Height)
	if s.in.FontFile == "" {
		return expr + fmt.Sprintf(":fontsize=%d", size)
	}
	return expr + fmt.Sprintf(":fontfile='%s':fontsize=%d", EscapePath(s.in.FontFile), size)
}

type colorApplier struct{}

func (colorApplier) Name() string { return "color" }

func (colorApplier) apply(expr string, s *state) string {
	return expr + ":fontcolor=" + orDefault(s.in.Overlay.FontColor, config.DefaultFontColor)
}

type outlineApplier struct{}

func (outlineApplier) Name() string { return "outline" }

func (outlineApplier) apply(expr string, s *state) string {
	o := s.in.Overlay.Outline
	if !o.Enabled {
		return expr
	}
	width := o.Width
	if width <= 0 {
		width = config.DefaultOutlineWidth
	}
	return expr + fmt.Sprintf(":borderw=%s:bordercolor=%s",
		layout.FormatNumber(width), orDefault(o.Color, config.DefaultOutlineColor))
}

type shadowApplier struct{}

func (shadowApplier) Name() string { return "shadow" }

func (shadowApplier) apply(expr string, s *state) string {
	sh := s.in.Overlay.Shadow
	if !sh.Enabled {
		return expr
	}
	x, y := sh.X, sh.Y
	if x == 0 && y == 0 {
		x, y = config.DefaultShadowOffset, config.DefaultShadowOffset
	}
	return expr + fmt.Sprintf(":shadowcolor=%s:shadowx=%s:shadowy=%s",
		orDefault(sh.Color, config.DefaultShadowColor), layout.FormatNumber(x), layout.FormatNumber(y))
}

type boxApplier struct{}

func (boxApplier) Name() string { return "box" }

func (boxApplier) apply(expr string, s *state) string {
	b := s.in.Overlay.Background
	if !b.Enabled {
		return expr
	}

	color := orDefault(b.Color, config.DefaultBoxColor)
	if !strings.Contains(color, "@") {
		opacity := b.Opacity
		if opacity <= 0 {
			opacity = config.DefaultBoxOpacity
		}
		if opacity > 1 {
			opacity = 1
		}
		color += "@" + layout.FormatNumber(opacity)
	}

	padding := b.Padding
	if padding <= 0 {
		padding = config.DefaultBoxPadding
	}
	return expr + fmt.Sprintf(":box=1:boxcolor=%s:boxborderw=%s", color, layout.FormatNumber(padding))
}

type positionApplier struct{}

func (positionApplier) Name() string { return "position" }

func (positionApplier) apply(expr string, s *state) string {
	return expr + ":x=" + s.coords.X + ":y=" + s.coords.Y
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
