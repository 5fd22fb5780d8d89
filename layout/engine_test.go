package layout

import (
	"math"
	"reflect"
	"testing"

	"overlaybot/types"
)

func ptr[T any](v T) *T { return &v }

func baseOverlay() types.TextOverlay {
	return types.TextOverlay{
		Text:      "Hi",
		Start:     0,
		End:       2,
		FontSize:  6,
		Font:      "roboto",
		FontColor: "white",
		Position:  types.At(types.Percent(50), types.Percent(50)),
		Outline:   types.OutlineSpec{Enabled: true, Width: 3, Color: "black"},
		Shadow:    types.ShadowSpec{Enabled: true, Color: "gray", X: 4, Y: 4},
		Animation: types.AnimationSpec{Enabled: true, Type: "fade-in", Duration: 0.5},
	}
}

func TestExpandSingleLinePassThrough(t *testing.T) {
	o := baseOverlay()
	got := Expand(o, 3, types.Dimensions{Width: 1920, Height: 1080})
	if len(got) != 1 {
		t.Fatalf("got %d records; want 1", len(got))
	}
	a := got[0]
	if a.Text != o.Text || a.Start != o.Start || a.End != o.End || a.FontSize != o.FontSize {
		t.Fatalf("content changed: %+v", a)
	}
	if a.Position != o.Position || a.Anchor != types.AnchorMiddle {
		t.Fatalf("position changed: %+v anchor=%v", a.Position, a.Anchor)
	}
	if a.Outline != o.Outline || a.Shadow != o.Shadow || a.Animation != o.Animation {
		t.Fatalf("style changed: %+v", a)
	}
	if a.Source != (types.Source{Overlay: 3, Line: 0, Element: -1}) {
		t.Fatalf("source = %+v", a.Source)
	}
}

func TestExpandElementsScenario(t *testing.T) {
	o := baseOverlay()
	o.Text = "Hello world"
	o.Elements = []types.TextElement{
		{Text: "Hello", Line: 0},
		{Text: "world", Line: 1},
	}

	got := Expand(o, 0, types.Dimensions{Width: 1000, Height: 1000})
	if len(got) != 2 {
		t.Fatalf("got %d records; want 2", len(got))
	}
	if got[0].Position.Y != types.Pixels(428) {
		t.Fatalf("line 0 Y = %+v; want 428", got[0].Position.Y)
	}
	if got[1].Position.Y != types.Pixels(500) {
		t.Fatalf("line 1 Y = %+v; want 500", got[1].Position.Y)
	}
	for _, a := range got {
		if a.Anchor != types.AnchorTop {
			t.Fatalf("stacked line should be top anchored")
		}
		if a.Position.X != o.Position.X {
			t.Fatalf("X must be inherited, got %+v", a.Position.X)
		}
	}
}

func TestExpandTwoLineStacking(t *testing.T) {
	o := baseOverlay()
	o.Elements = []types.TextElement{
		{Text: "small", Line: 0, FontSize: ptr(5.0)},
		{Text: "big", Line: 1, FontSize: ptr(10.0)},
		{Text: "bigger", Line: 1, FontSize: ptr(12.0)},
	}
	o.Position = types.At(types.Percent(50), types.Pixels(700))

	got := Expand(o, 0, types.Dimensions{Width: 1920, Height: 1000})
	h1 := LineHeight(50)
	h2 := LineHeight(120)
	first := 700 - (h1+h2)/2
	if math.Abs(got[0].Position.Y.Value-first) > 1e-9 {
		t.Fatalf("first Y = %v; want %v", got[0].Position.Y.Value, first)
	}
	for _, a := range got[1:] {
		if math.Abs(a.Position.Y.Value-(first+h1)) > 1e-9 {
			t.Fatalf("second Y = %v; want %v", a.Position.Y.Value, first+h1)
		}
	}
	if got[1].Text != "big" || got[2].Text != "bigger" {
		t.Fatalf("declaration order inside a line not kept: %q, %q", got[1].Text, got[2].Text)
	}
}

func TestExpandGroupsLinesAscending(t *testing.T) {
	o := baseOverlay()
	o.Elements = []types.TextElement{
		{Text: "c", Line: 4},
		{Text: "a", Line: 0},
		{Text: "d", Line: 4},
		{Text: "b", Line: 2},
	}
	got := Expand(o, 0, types.Dimensions{Width: 1000, Height: 1000})

	var texts []string
	for _, a := range got {
		texts = append(texts, a.Text)
	}
	if !reflect.DeepEqual(texts, []string{"a", "b", "c", "d"}) {
		t.Fatalf("order = %v", texts)
	}
	// empty lines 1 and 3 contribute no height
	if got[1].Position.Y.Value-got[0].Position.Y.Value != 72 {
		t.Fatalf("gap between lines 0 and 2 = %v; want 72", got[1].Position.Y.Value-got[0].Position.Y.Value)
	}
	if got[2].Source.Element != 0 || got[3].Source.Element != 2 {
		t.Fatalf("element provenance lost: %+v %+v", got[2].Source, got[3].Source)
	}
}

func TestExpandTextFallback(t *testing.T) {
	o := baseOverlay()
	o.Text = "first\r\nsecond\nthird"
	got := Expand(o, 1, types.Dimensions{Width: 1000, Height: 1000})
	if len(got) != 3 {
		t.Fatalf("got %d records; want 3", len(got))
	}
	wantY := []float64{500 - 108, 500 - 36, 500 + 36}
	for i, a := range got {
		if math.Abs(a.Position.Y.Value-wantY[i]) > 1e-9 {
			t.Fatalf("line %d Y = %v; want %v", i, a.Position.Y.Value, wantY[i])
		}
		if a.Outline != o.Outline || a.FontColor != o.FontColor {
			t.Fatalf("line %d lost parent style", i)
		}
		if a.Source.Line != i || a.Source.Element != -1 {
			t.Fatalf("line %d source = %+v", i, a.Source)
		}
	}
}

func TestExpandBlankLineKeepsSpacing(t *testing.T) {
	o := baseOverlay()
	o.Text = "top\n\nbottom"
	got := Expand(o, 0, types.Dimensions{Width: 1000, Height: 1000})
	if len(got) != 2 {
		t.Fatalf("got %d records; want 2", len(got))
	}
	if d := got[1].Position.Y.Value - got[0].Position.Y.Value; math.Abs(d-144) > 1e-9 {
		t.Fatalf("gap = %v; want 144", d)
	}
}

func TestExpandPresetStacking(t *testing.T) {
	o := baseOverlay()
	o.Text = "one\ntwo"
	o.Position = types.Preset("bottom-center")
	got := Expand(o, 0, types.Dimensions{Width: 1000, Height: 1000})
	// block 144, bottom margin 50: top row = 1000-50-144
	if got[0].Position.Y != types.Pixels(806) || got[1].Position.Y != types.Pixels(878) {
		t.Fatalf("rows = %+v, %+v", got[0].Position.Y, got[1].Position.Y)
	}
	if got[0].Position.Preset != "bottom-center" {
		t.Fatalf("preset dropped")
	}
}

func TestMergeElementNestedOverride(t *testing.T) {
	o := baseOverlay()
	el := types.TextElement{
		Text:      "word",
		Line:      0,
		FontColor: ptr("yellow"),
		Outline:   &types.OutlineOverride{Color: ptr("red")},
		Animation: &types.AnimationOverride{Delay: ptr(0.25)},
	}
	a := MergeElement(o, el, types.Source{})

	if a.Outline.Color != "red" || a.Outline.Width != 3 || !a.Outline.Enabled {
		t.Fatalf("outline merge = %+v", a.Outline)
	}
	if a.Animation.Type != "fade-in" || a.Animation.Duration != 0.5 || a.Animation.Delay != 0.25 || !a.Animation.Enabled {
		t.Fatalf("animation merge = %+v", a.Animation)
	}
	if a.Shadow != o.Shadow {
		t.Fatalf("shadow should be inherited wholesale: %+v", a.Shadow)
	}
	if a.FontColor != "yellow" || a.Font != "roboto" {
		t.Fatalf("scalar merge: color=%q font=%q", a.FontColor, a.Font)
	}

	again := MergeOutline(MergeOutline(o.Outline, el.Outline), el.Outline)
	if again != a.Outline {
		t.Fatalf("merge not idempotent: %+v vs %+v", again, a.Outline)
	}
}

func TestMergeDisablesOneSpec(t *testing.T) {
	parent := types.BoxSpec{Enabled: true, Color: "blue", Opacity: 0.8, Padding: 12}
	got := MergeBox(parent, &types.BoxOverride{Enabled: ptr(false)})
	if got.Enabled || got.Color != "blue" || got.Padding != 12 {
		t.Fatalf("MergeBox = %+v", got)
	}
	sh := MergeShadow(types.ShadowSpec{Enabled: true, X: 1, Y: 1}, &types.ShadowOverride{Y: ptr(5.0)})
	if sh.X != 1 || sh.Y != 5 || !sh.Enabled {
		t.Fatalf("MergeShadow = %+v", sh)
	}
}
