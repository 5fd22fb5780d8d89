package animation

import (
	"fmt"
	"strings"

	"overlaybot/layout"
	"overlaybot/types"
)

// Input is everything an effect may read for one atomic overlay.
type Input struct {
	Start  float64
	End    float64
	Spec   types.AnimationSpec
	Static layout.Coordinates
}

// Fragment is the time-dependent part of a drawtext expression. Gate is always set.
// Warning is non-nil when the requested effect was ignored.
type Fragment struct {
	Gate    string
	Alpha   string
	X       string
	Y       string
	Warning error
}

// Options renders the fragment as drawtext options, starting with ':'.
func (f Fragment) Options() string {
	var b strings.Builder
	fmt.Fprintf(&b, ":enable='%s'", f.Gate)
	if f.Alpha != "" {
		fmt.Fprintf(&b, ":alpha='%s'", f.Alpha)
	}
	if f.X != "" {
		fmt.Fprintf(&b, ":x='%s'", f.X)
	}
	if f.Y != "" {
		fmt.Fprintf(&b, ":y='%s'", f.Y)
	}
	return b.String()
}

// Gate restricts drawing to [start, end].
func Gate(start, end float64) string {
	return fmt.Sprintf("between(t,%s,%s)", num(start), num(end))
}

// Generate builds the gate plus, when enabled, the effect fragment.
// Unknown effects degrade to the gate alone and report a warning.
func Generate(in Input) Fragment {
	gate := Gate(in.Start, in.End)
	if !in.Spec.Enabled {
		return Fragment{Gate: gate}
	}

	kind, ok := ParseKind(in.Spec.Type)
	if !ok {
		return Fragment{Gate: gate, Warning: fmt.Errorf("%w %q", types.ErrUnknownEffect, in.Spec.Type)}
	}
	effect, ok := Lookup(kind)
	if !ok {
		return Fragment{Gate: gate, Warning: fmt.Errorf("%w %q", types.ErrUnknownEffect, in.Spec.Type)}
	}

	f := effect.Fragment(resolveWindow(effect, in), in.Static)
	f.Gate = gate
	return f
}

func resolveWindow(effect Effect, in Input) window {
	d := in.Spec.Duration
	if d <= 0 {
		d = effect.DefaultDuration()
	}
	if visible := in.End - in.Start; d > visible {
		d = visible
	}

	delay := in.Spec.Delay
	if delay < 0 {
		delay = 0
	}

	if effect.Exit() {
		return window{anchor: in.End - d - delay, duration: d}
	}
	return window{anchor: in.Start + delay, duration: d}
}
