package types

// Alignment controls horizontal placement of a line relative to its X coordinate.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Normalize maps empty or unknown alignments to center.
func (a Alignment) Normalize() Alignment {
	switch a {
	case AlignLeft, AlignRight:
		return a
	default:
		return AlignCenter
	}
}

// TextOverlay is one timed piece of styled text as authored by the caller.
type TextOverlay struct {
	Text       string        `json:"text" yaml:"text"`
	Elements   []TextElement `json:"textElements,omitempty" yaml:"textElements,omitempty"`
	Start      float64       `json:"start" yaml:"start"`
	End        float64       `json:"end" yaml:"end"`
	FontSize   float64       `json:"fontSize" yaml:"fontSize"`
	Font       string        `json:"font,omitempty" yaml:"font,omitempty"`
	FontColor  string        `json:"fontColor,omitempty" yaml:"fontColor,omitempty"`
	Position   Position      `json:"position" yaml:"position"`
	Align      Alignment     `json:"textAlign,omitempty" yaml:"textAlign,omitempty"`
	Outline    OutlineSpec   `json:"outline" yaml:"outline"`
	Shadow     ShadowSpec    `json:"shadow" yaml:"shadow"`
	Background BoxSpec       `json:"background" yaml:"background"`
	Animation  AnimationSpec `json:"animation" yaml:"animation"`
}

// TextElement is a word or phrase pinned to one line of its parent overlay.
// Nil fields inherit from the parent.
type TextElement struct {
	Text       string             `json:"text" yaml:"text"`
	Line       int                `json:"line" yaml:"line"`
	Start      *float64           `json:"start,omitempty" yaml:"start,omitempty"`
	End        *float64           `json:"end,omitempty" yaml:"end,omitempty"`
	FontSize   *float64           `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Font       *string            `json:"font,omitempty" yaml:"font,omitempty"`
	FontColor  *string            `json:"fontColor,omitempty" yaml:"fontColor,omitempty"`
	Align      *Alignment         `json:"textAlign,omitempty" yaml:"textAlign,omitempty"`
	Outline    *OutlineOverride   `json:"outline,omitempty" yaml:"outline,omitempty"`
	Shadow     *ShadowOverride    `json:"shadow,omitempty" yaml:"shadow,omitempty"`
	Background *BoxOverride       `json:"background,omitempty" yaml:"background,omitempty"`
	Animation  *AnimationOverride `json:"animation,omitempty" yaml:"animation,omitempty"`
}

// OutlineSpec draws a border around each glyph.
type OutlineSpec struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Width   float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Color   string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// ShadowSpec draws an offset copy of the text behind it.
type ShadowSpec struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Color   string  `json:"color,omitempty" yaml:"color,omitempty"`
	X       float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y       float64 `json:"y,omitempty" yaml:"y,omitempty"`
}

// BoxSpec fills a rectangle behind the text.
type BoxSpec struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Color   string  `json:"color,omitempty" yaml:"color,omitempty"`
	Opacity float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Padding float64 `json:"padding,omitempty" yaml:"padding,omitempty"`
}

// AnimationSpec selects one effect variant. Duration <= 0 means the effect default.
type AnimationSpec struct {
	Enabled  bool    `json:"enabled" yaml:"enabled"`
	Type     string  `json:"type,omitempty" yaml:"type,omitempty"`
	Duration float64 `json:"duration,omitempty" yaml:"duration,omitempty"`
	Delay    float64 `json:"delay,omitempty" yaml:"delay,omitempty"`
}

type OutlineOverride struct {
	Enabled *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Width   *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Color   *string  `json:"color,omitempty" yaml:"color,omitempty"`
}

type ShadowOverride struct {
	Enabled *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Color   *string  `json:"color,omitempty" yaml:"color,omitempty"`
	X       *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y       *float64 `json:"y,omitempty" yaml:"y,omitempty"`
}

type BoxOverride struct {
	Enabled *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Color   *string  `json:"color,omitempty" yaml:"color,omitempty"`
	Opacity *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Padding *float64 `json:"padding,omitempty" yaml:"padding,omitempty"`
}

type AnimationOverride struct {
	Enabled  *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Type     *string  `json:"type,omitempty" yaml:"type,omitempty"`
	Duration *float64 `json:"duration,omitempty" yaml:"duration,omitempty"`
	Delay    *float64 `json:"delay,omitempty" yaml:"delay,omitempty"`
}

// Anchor says which edge of the text box the resolved Y refers to.
type Anchor int

const (
	// AnchorMiddle centers the text vertically on Y.
	AnchorMiddle Anchor = iota
	// AnchorTop places the top of the text at Y (stacked lines).
	AnchorTop
)

// Source records where an AtomicOverlay came from. Element is -1 for lines
// produced by splitting raw text.
type Source struct {
	Overlay int `json:"overlay"`
	Line    int `json:"line"`
	Element int `json:"element"`
}

// AtomicOverlay is one single-line, fully resolved overlay ready for the style chain.
type AtomicOverlay struct {
	Text       string        `json:"text"`
	Start      float64       `json:"start"`
	End        float64       `json:"end"`
	FontSize   float64       `json:"fontSize"`
	Font       string        `json:"font"`
	FontColor  string        `json:"fontColor"`
	Position   Position      `json:"position"`
	Anchor     Anchor        `json:"anchor"`
	Align      Alignment     `json:"textAlign"`
	Outline    OutlineSpec   `json:"outline"`
	Shadow     ShadowSpec    `json:"shadow"`
	Background BoxSpec       `json:"background"`
	Animation  AnimationSpec `json:"animation"`
	Source     Source        `json:"source"`
}

// Dimensions is a video frame size in pixels.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}
