package animation

import (
	"errors"
	"testing"

	"overlaybot/layout"
	"overlaybot/types"
)

var static = layout.Coordinates{X: "w*0.5-text_w/2", Y: "h*0.5-text_h/2"}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"fade-in":    FadeIn,
		"fadeIn":     FadeIn,
		"FADE_OUT":   FadeOut,
		"slide up":   SlideUp,
		"slideRight": SlideRight,
		" zoom-out ": ZoomOut,
	}
	for in, want := range cases {
		got, ok := ParseKind(in)
		if !ok || got != want {
			t.Fatalf("ParseKind(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := ParseKind("spin"); ok {
		t.Fatalf("spin should not parse")
	}
}

func TestGenerateDisabledIsGateOnly(t *testing.T) {
	for _, k := range Kinds {
		f := Generate(Input{Start: 1, End: 4, Spec: types.AnimationSpec{Enabled: false, Type: string(k), Duration: 1}, Static: static})
		if got := f.Options(); got != ":enable='between(t,1,4)'" {
			t.Fatalf("%s disabled: %q", k, got)
		}
		if f.Warning != nil {
			t.Fatalf("%s disabled produced warning %v", k, f.Warning)
		}
	}
}

func TestGenerateFadeIn(t *testing.T) {
	f := Generate(Input{Start: 1, End: 5, Spec: types.AnimationSpec{Enabled: true, Type: "fade-in", Duration: 0.5, Delay: 0.5}, Static: static})
	want := ":enable='between(t,1,5)':alpha='if(lt(t,1.5),0,if(lt(t,2),(t-1.5)/0.5,1))'"
	if got := f.Options(); got != want {
		t.Fatalf("fade-in =\n%s\nwant\n%s", got, want)
	}
}

func TestGenerateFadeOutAnchorsToEnd(t *testing.T) {
	f := Generate(Input{Start: 0, End: 4, Spec: types.AnimationSpec{Enabled: true, Type: "fade-out", Duration: 1, Delay: 0.5}, Static: static})
	want := "if(lt(t,2.5),1,if(lt(t,3.5),1-(t-2.5)/1,0))"
	if f.Alpha != want {
		t.Fatalf("fade-out alpha = %q; want %q", f.Alpha, want)
	}
}

func TestGenerateZoomUsesOpacityAndDefaults(t *testing.T) {
	in := Generate(Input{Start: 0, End: 4, Spec: types.AnimationSpec{Enabled: true, Type: "zoom-in"}, Static: static})
	if in.Alpha != "if(lt(t,0),0,if(lt(t,0.8),(t-0)/0.8,1))" {
		t.Fatalf("zoom-in alpha = %q", in.Alpha)
	}
	out := Generate(Input{Start: 0, End: 4, Spec: types.AnimationSpec{Enabled: true, Type: "zoom-out"}, Static: static})
	if out.Alpha != "if(lt(t,3.2),1,if(lt(t,4),1-(t-3.2)/0.8,0))" {
		t.Fatalf("zoom-out alpha = %q", out.Alpha)
	}
	if in.X != "" || in.Y != "" {
		t.Fatalf("opacity effects must not move the text")
	}
}

func TestGenerateSlides(t *testing.T) {
	cases := []struct {
		kind  Kind
		wantX string
		wantY string
	}{
		{SlideLeft, "if(lt(t,2),w+text_w,if(lt(t,2.5),w+text_w+((w*0.5-text_w/2)-(w+text_w))*(t-2)/0.5,w*0.5-text_w/2))", ""},
		{SlideRight, "if(lt(t,2),-text_w,if(lt(t,2.5),-text_w+((w*0.5-text_w/2)-(-text_w))*(t-2)/0.5,w*0.5-text_w/2))", ""},
		{SlideUp, "", "if(lt(t,2),h+text_h,if(lt(t,2.5),h+text_h+((h*0.5-text_h/2)-(h+text_h))*(t-2)/0.5,h*0.5-text_h/2))"},
		{SlideDown, "", "if(lt(t,2),-text_h,if(lt(t,2.5),-text_h+((h*0.5-text_h/2)-(-text_h))*(t-2)/0.5,h*0.5-text_h/2))"},
	}
	for _, c := range cases {
		t.Run(string(c.kind), func(t *testing.T) {
			f := Generate(Input{Start: 2, End: 6, Spec: types.AnimationSpec{Enabled: true, Type: string(c.kind)}, Static: static})
			if f.X != c.wantX || f.Y != c.wantY {
				t.Fatalf("got x=%q y=%q", f.X, f.Y)
			}
			if f.Alpha != "" {
				t.Fatalf("slide should not touch alpha")
			}
		})
	}
}

func TestGenerateUnknownEffectDegrades(t *testing.T) {
	f := Generate(Input{Start: 0, End: 2, Spec: types.AnimationSpec{Enabled: true, Type: "spin"}, Static: static})
	if got := f.Options(); got != ":enable='between(t,0,2)'" {
		t.Fatalf("unknown effect options = %q", got)
	}
	if !errors.Is(f.Warning, types.ErrUnknownEffect) {
		t.Fatalf("warning = %v; want ErrUnknownEffect", f.Warning)
	}
}

func TestGenerateClampsDurationToWindow(t *testing.T) {
	f := Generate(Input{Start: 0, End: 0.5, Spec: types.AnimationSpec{Enabled: true, Type: "fade-in", Duration: 3}, Static: static})
	if f.Alpha != "if(lt(t,0),0,if(lt(t,0.5),(t-0)/0.5,1))" {
		t.Fatalf("alpha = %q", f.Alpha)
	}
}
