package types

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseAxis(t *testing.T) {
	cases := []struct {
		in   string
		want AxisValue
	}{
		{"50%", Percent(50)},
		{" 12.5 % ", Percent(12.5)},
		{"120", Pixels(120)},
		{"120px", Pixels(120)},
		{"abc", AxisValue{}},
		{"", AxisValue{}},
	}
	for _, c := range cases {
		if got := ParseAxis(c.in); got != c.want {
			t.Fatalf("ParseAxis(%q) = %+v; want %+v", c.in, got, c.want)
		}
	}
}

func TestPositionUnmarshalJSON(t *testing.T) {
	var o TextOverlay
	data := `{"text":"Hi","start":0,"end":2,"fontSize":10,"position":{"x":"50%","y":300}}`
	if err := json.Unmarshal([]byte(data), &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if o.Position.X != Percent(50) || o.Position.Y != Pixels(300) {
		t.Fatalf("unexpected position: %+v", o.Position)
	}

	if err := json.Unmarshal([]byte(`{"position":"Bottom-Center"}`), &o); err != nil {
		t.Fatalf("unmarshal preset: %v", err)
	}
	if o.Position.Preset != "bottom-center" {
		t.Fatalf("preset = %q; want bottom-center", o.Position.Preset)
	}

	// malformed positions degrade instead of failing
	if err := json.Unmarshal([]byte(`{"position":{"x":{"bad":1},"y":"nope"}}`), &o); err != nil {
		t.Fatalf("malformed position should not fail: %v", err)
	}
	if o.Position.X.IsSet() || o.Position.Y.IsSet() {
		t.Fatalf("malformed axes should be unset: %+v", o.Position)
	}
}

func TestPositionMarshalRoundTrip(t *testing.T) {
	p := At(Percent(25), Pixels(80))
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"x":"25%","y":80}` {
		t.Fatalf("marshal = %s", data)
	}
}

func TestPositionUnmarshalYAML(t *testing.T) {
	src := `
text: "Hello"
start: 1
end: 3
fontSize: 6
position:
  x: 10%
  y: 720
textElements:
  - text: "Hello"
    line: 1
    outline:
      color: red
`
	var o TextOverlay
	if err := yaml.Unmarshal([]byte(src), &o); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if o.Position.X != Percent(10) || o.Position.Y != Pixels(720) {
		t.Fatalf("unexpected position: %+v", o.Position)
	}
	if len(o.Elements) != 1 || o.Elements[0].Line != 1 {
		t.Fatalf("unexpected elements: %+v", o.Elements)
	}
	if o.Elements[0].Outline == nil || o.Elements[0].Outline.Color == nil || *o.Elements[0].Outline.Color != "red" {
		t.Fatalf("outline override not decoded: %+v", o.Elements[0].Outline)
	}
	if o.Elements[0].Outline.Width != nil {
		t.Fatalf("unset override field should stay nil")
	}

	var preset TextOverlay
	if err := yaml.Unmarshal([]byte("position: top-left\n"), &preset); err != nil {
		t.Fatalf("yaml preset: %v", err)
	}
	if preset.Position.Preset != "top-left" {
		t.Fatalf("preset = %q", preset.Position.Preset)
	}
}

func TestStackedPresetKeepsRow(t *testing.T) {
	p := Position{Preset: "bottom-center", Y: Pixels(806)}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"preset":"bottom-center","x":null,"y":806}` {
		t.Fatalf("marshal = %s", data)
	}

	var back Position
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != p {
		t.Fatalf("round trip = %+v; want %+v", back, p)
	}

	if data, _ := json.Marshal(Preset("top-left")); string(data) != `"top-left"` {
		t.Fatalf("plain preset = %s", data)
	}
}
