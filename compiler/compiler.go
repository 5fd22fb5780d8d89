package compiler

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"overlaybot/config"
	"overlaybot/layout"
	"overlaybot/style"
	"overlaybot/types"
)

// Options configures a Compiler.
type Options struct {
	// DefaultFont is used for overlays that name no font.
	DefaultFont string
	// Output overrides the encoder settings. Zero fields take the config defaults.
	Output OutputOptions
}

// Result is a compiled filter chain and the records it was built from.
type Result struct {
	Filter   string
	Overlays []types.AtomicOverlay
	Warnings []types.Warning
	Dims     types.Dimensions
}

// Compiler turns overlay configurations into a drawtext filter chain and
// optionally hands it to the renderer.
type Compiler struct {
	prober   Prober
	fonts    FontResolver
	renderer Renderer
	chain    style.Chain
	opts     Options
}

// New creates a Compiler. prober and renderer may be nil when only Compile is used.
func New(prober Prober, fonts FontResolver, renderer Renderer, opts Options) *Compiler {
	if opts.DefaultFont == "" {
		opts.DefaultFont = config.DefaultFontID
	}
	opts.Output = withOutputDefaults(opts.Output)
	return &Compiler{
		prober:   prober,
		fonts:    fonts,
		renderer: renderer,
		chain:    style.NewChain(),
		opts:     opts,
	}
}

// Compile validates overlays, expands them into single-line records and joins
// one drawtext filter per record. It does not touch the filesystem beyond font
// resolution and is deterministic for equal input.
func (c *Compiler) Compile(width, height int, overlays []types.TextOverlay) (*Result, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", types.ErrUnresolvableDimensions, width, height)
	}
	if err := c.validate(overlays); err != nil {
		return nil, err
	}

	dims := types.Dimensions{Width: width, Height: height}
	res := &Result{Dims: dims}
	filters := make([]string, 0, len(overlays))

	for i, o := range overlays {
		for _, atom := range layout.Expand(o, i, dims) {
			font, err := c.fonts.Resolve(c.fontID(atom.Font))
			if err != nil {
				return nil, &types.ValidationError{Index: i, Element: atom.Source.Element, Err: err}
			}

			out := c.chain.Build(style.Input{Overlay: atom, FontFile: font.Path, Dims: dims})
			if out.Warning != nil {
				w := warningFor(atom, out.Warning)
				log.Printf("⚠️  %s", w)
				res.Warnings = append(res.Warnings, w)
			}

			filters = append(filters, out.Expression)
			res.Overlays = append(res.Overlays, atom)
		}
	}

	res.Filter = strings.Join(filters, config.FilterSeparator)
	return res, nil
}

// Render probes the input, compiles the overlays for its frame size and runs
// the renderer. Renderer errors are returned unchanged.
func (c *Compiler) Render(req types.RenderRequest) (*Result, error) {
	if c.prober == nil || c.renderer == nil {
		return nil, errors.New("compiler has no prober or renderer configured")
	}
	if req.Output == "" {
		return nil, errors.New("render request has no output path")
	}
	if len(req.Overlays) == 0 {
		return nil, types.ErrNoOverlays
	}

	dims, err := c.prober.Dimensions(req.Input)
	if err != nil {
		return nil, err
	}

	res, err := c.Compile(dims.Width, dims.Height, req.Overlays)
	if err != nil {
		return nil, err
	}

	log.Printf("🎬 Rendering %d overlays onto %s (%dx%d)", len(res.Overlays), req.Input, dims.Width, dims.Height)
	if err := c.renderer.Render(RenderJob{
		InputPath:  req.Input,
		OutputPath: req.Output,
		Filter:     res.Filter,
		Output:     c.opts.Output,
	}); err != nil {
		return res, err
	}

	log.Printf("✅ Rendered %s", req.Output)
	return res, nil
}

func warningFor(atom types.AtomicOverlay, err error) types.Warning {
	kind := "warning"
	if errors.Is(err, types.ErrUnknownEffect) {
		kind = "unknown_effect"
	}
	return types.Warning{
		Overlay: atom.Source.Overlay,
		Line:    atom.Source.Line,
		Element: atom.Source.Element,
		Kind:    kind,
		Message: err.Error(),
	}
}

func withOutputDefaults(o OutputOptions) OutputOptions {
	if o.VideoCodec == "" {
		o.VideoCodec = config.VideoCodec
	}
	if o.Preset == "" {
		o.Preset = config.VideoPreset
	}
	if o.CRF <= 0 {
		o.CRF = config.VideoCRF
	}
	if o.AudioCodec == "" {
		o.AudioCodec = config.AudioCodec
	}
	return o
}
