package style

import (
	"overlaybot/animation"
	"overlaybot/layout"
	"overlaybot/types"
)

// Input is one atomic overlay plus what the chain needs from outside it.
type Input struct {
	Overlay  types.AtomicOverlay
	FontFile string
	Dims     types.Dimensions
}

// Output is a complete drawtext expression. Warning is set when the
// animation applier had to ignore an effect.
type Output struct {
	Expression string
	Coords     layout.Coordinates
	Warning    error
}

// state is shared by the appliers of one Build call.
type state struct {
	in      Input
	coords  layout.Coordinates
	warning error
}

// Applier appends the drawtext options it owns. A disabled applier returns
// expr unchanged.
type Applier interface {
	Name() string
	apply(expr string, s *state) string
}

// Chain runs appliers in a fixed order: font, color, outline, shadow, box,
// position, animation.
type Chain struct {
	appliers []Applier
}

// NewChain returns the standard chain.
func NewChain() Chain {
	return Chain{appliers: []Applier{
		fontApplier{},
		colorApplier{},
		outlineApplier{},
		shadowApplier{},
		boxApplier{},
		positionApplier{},
		animationApplier{},
	}}
}

// Names lists the appliers in execution order.
func (c Chain) Names() []string {
	names := make([]string, len(c.appliers))
	for i, a := range c.appliers {
		names[i] = a.Name()
	}
	return names
}

// Build escapes the text and runs every applier over the base expression.
func (c Chain) Build(in Input) Output {
	s := &state{
		in:     in,
		coords: layout.ResolveCoordinates(in.Overlay.Position, in.Overlay.Align, in.Overlay.Anchor, in.Dims.Width, in.Dims.Height),
	}

	expr := "drawtext=text='" + EscapeText(in.Overlay.Text) + "'"
	for _, a := range c.appliers {
		expr = a.apply(expr, s)
	}
	return Output{Expression: expr, Coords: s.coords, Warning: s.warning}
}

// animationApplier always emits the visibility gate.
type animationApplier struct{}

func (animationApplier) Name() string { return "animation" }

func (animationApplier) apply(expr string, s *state) string {
	f := animation.Generate(animation.Input{
		Start:  s.in.Overlay.Start,
		End:    s.in.Overlay.End,
		Spec:   s.in.Overlay.Animation,
		Static: s.coords,
	})
	s.warning = f.Warning
	return expr + f.Options()
}
