package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AxisKind tells how an AxisValue is interpreted.
type AxisKind int

const (
	AxisUnset AxisKind = iota
	AxisPercent
	AxisPixel
)

// AxisValue is one coordinate of a position: "50%" or a pixel count.
// Percent values keep the authored number (50 for "50%").
type AxisValue struct {
	Kind  AxisKind
	Value float64
}

// Percent builds a percentage axis value.
func Percent(v float64) AxisValue { return AxisValue{Kind: AxisPercent, Value: v} }

// Pixels builds a fixed pixel axis value.
func Pixels(v float64) AxisValue { return AxisValue{Kind: AxisPixel, Value: v} }

// Fraction returns a percent value as a 0..1 factor.
func (a AxisValue) Fraction() float64 { return a.Value / 100 }

func (a AxisValue) IsSet() bool { return a.Kind != AxisUnset }

func (a AxisValue) String() string {
	switch a.Kind {
	case AxisPercent:
		return strconv.FormatFloat(a.Value, 'f', -1, 64) + "%"
	case AxisPixel:
		return strconv.FormatFloat(a.Value, 'f', -1, 64)
	default:
		return ""
	}
}

// ParseAxis reads "50%", "120", "120px" or "120.5". Anything else is unset.
func ParseAxis(raw string) AxisValue {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return AxisValue{}
	}
	kind := AxisPixel
	if strings.HasSuffix(s, "%") {
		kind = AxisPercent
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	} else {
		s = strings.TrimSpace(strings.TrimSuffix(s, "px"))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return AxisValue{}
	}
	return AxisValue{Kind: kind, Value: v}
}

// UnmarshalJSON accepts numbers (pixels) and strings. Malformed input leaves
// the axis unset so the coordinate resolver can fall back to center.
func (a *AxisValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = AxisValue{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = AxisValue{}
			return nil
		}
		*a = ParseAxis(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*a = AxisValue{}
		return nil
	}
	*a = Pixels(f)
	return nil
}

func (a AxisValue) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AxisPercent:
		return json.Marshal(a.String())
	case AxisPixel:
		return json.Marshal(a.Value)
	default:
		return []byte("null"), nil
	}
}

func (a *AxisValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*a = AxisValue{}
		return nil
	}
	*a = ParseAxis(node.Value)
	return nil
}

// Position is either a named preset ("bottom-center") or an explicit x/y pair.
type Position struct {
	Preset string
	X      AxisValue
	Y      AxisValue
}

// At builds an explicit position.
func At(x, y AxisValue) Position { return Position{X: x, Y: y} }

// Preset builds a named preset position.
func Preset(name string) Position { return Position{Preset: name} }

func (p Position) IsPreset() bool { return p.Preset != "" }

// positionXY is the object form. Preset is only written for stacked preset
// lines, which carry a pixel row next to the preset name.
type positionXY struct {
	Preset string    `json:"preset,omitempty" yaml:"preset,omitempty"`
	X      AxisValue `json:"x" yaml:"x"`
	Y      AxisValue `json:"y" yaml:"y"`
}

func (p *Position) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*p = Position{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		p.Preset = strings.ToLower(strings.TrimSpace(s))
		return nil
	}
	var xy positionXY
	if err := json.Unmarshal(data, &xy); err != nil {
		return nil
	}
	p.Preset = strings.ToLower(strings.TrimSpace(xy.Preset))
	p.X, p.Y = xy.X, xy.Y
	return nil
}

func (p Position) MarshalJSON() ([]byte, error) {
	if p.IsPreset() && !p.X.IsSet() && !p.Y.IsSet() {
		return json.Marshal(p.Preset)
	}
	return json.Marshal(positionXY{Preset: p.Preset, X: p.X, Y: p.Y})
}

func (p *Position) UnmarshalYAML(node *yaml.Node) error {
	*p = Position{}
	switch node.Kind {
	case yaml.ScalarNode:
		p.Preset = strings.ToLower(strings.TrimSpace(node.Value))
	case yaml.MappingNode:
		var xy positionXY
		if err := node.Decode(&xy); err != nil {
			return nil
		}
		p.Preset = strings.ToLower(strings.TrimSpace(xy.Preset))
		p.X, p.Y = xy.X, xy.Y
	}
	return nil
}
