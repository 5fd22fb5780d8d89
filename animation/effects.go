package animation

import (
	"fmt"
	"strings"

	"overlaybot/config"
	"overlaybot/layout"
)

// Kind identifies one effect variant.
type Kind string

const (
	FadeIn     Kind = "fade-in"
	FadeOut    Kind = "fade-out"
	SlideUp    Kind = "slide-up"
	SlideDown  Kind = "slide-down"
	SlideLeft  Kind = "slide-left"
	SlideRight Kind = "slide-right"
	ZoomIn     Kind = "zoom-in"
	ZoomOut    Kind = "zoom-out"
)

// Kinds lists every supported effect in a stable order.
var Kinds = []Kind{FadeIn, FadeOut, SlideUp, SlideDown, SlideLeft, SlideRight, ZoomIn, ZoomOut}

// ParseKind accepts "fade-in", "fadeIn", "fade_in" or "FADE IN".
func ParseKind(s string) (Kind, bool) {
	compact := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range Kinds {
		if strings.ReplaceAll(string(k), "-", "") == compact {
			return k, true
		}
	}
	return "", false
}

// window is the resolved time span an effect ramps over.
type window struct {
	anchor   float64
	duration float64
}

func (w window) end() float64 { return w.anchor + w.duration }

// progress is the 0..1 ramp position inside the window.
func (w window) progress() string {
	return fmt.Sprintf("(t-%s)/%s", num(w.anchor), num(w.duration))
}

// Effect is one member of the closed variant set.
type Effect interface {
	Kind() Kind
	DefaultDuration() float64
	// Exit reports whether the ramp is anchored to the end of the overlay.
	Exit() bool
	Fragment(w window, static layout.Coordinates) Fragment
}

// Lookup returns the effect for kind. The set is fixed; there is no registration.
func Lookup(kind Kind) (Effect, bool) {
	switch kind {
	case FadeIn:
		return opacity{kind: FadeIn, duration: config.FadeDuration}, true
	case FadeOut:
		return opacity{kind: FadeOut, duration: config.FadeDuration, out: true}, true
	case ZoomIn:
		return opacity{kind: ZoomIn, duration: config.ZoomDuration}, true
	case ZoomOut:
		return opacity{kind: ZoomOut, duration: config.ZoomDuration, out: true}, true
	case SlideUp, SlideDown, SlideLeft, SlideRight:
		return slide{kind: kind}, true
	default:
		return nil, false
	}
}

// opacity ramps alpha 0→1 (entry) or 1→0 (exit). Zoom uses it too because
// drawtext has no scale parameter.
type opacity struct {
	kind     Kind
	duration float64
	out      bool
}

func (o opacity) Kind() Kind               { return o.kind }
func (o opacity) DefaultDuration() float64 { return o.duration }
func (o opacity) Exit() bool               { return o.out }

func (o opacity) Fragment(w window, _ layout.Coordinates) Fragment {
	if o.out {
		return Fragment{Alpha: fmt.Sprintf("if(lt(t,%s),1,if(lt(t,%s),1-%s,0))", num(w.anchor), num(w.end()), w.progress())}
	}
	return Fragment{Alpha: fmt.Sprintf("if(lt(t,%s),0,if(lt(t,%s),%s,1))", num(w.anchor), num(w.end()), w.progress())}
}

// slide moves the text from just outside the frame to its static coordinate.
type slide struct {
	kind Kind
}

func (s slide) Kind() Kind               { return s.kind }
func (s slide) DefaultDuration() float64 { return config.SlideDuration }
func (s slide) Exit() bool               { return false }

func (s slide) Fragment(w window, static layout.Coordinates) Fragment {
	switch s.kind {
	case SlideUp:
		return Fragment{Y: interpolate(w, "h+text_h", static.Y)}
	case SlideDown:
		return Fragment{Y: interpolate(w, "-text_h", static.Y)}
	case SlideLeft:
		return Fragment{X: interpolate(w, "w+text_w", static.X)}
	default:
		return Fragment{X: interpolate(w, "-text_w", static.X)}
	}
}

// interpolate is linear from → to over w, holding to once the ramp ends.
func interpolate(w window, from, to string) string {
	return fmt.Sprintf("if(lt(t,%s),%s,if(lt(t,%s),%s+((%s)-(%s))*%s,%s))",
		num(w.anchor), from, num(w.end()), from, to, from, w.progress(), to)
}

func num(v float64) string { return layout.FormatNumber(v) }
