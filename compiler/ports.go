package compiler

import (
	"overlaybot/fonts"
	"overlaybot/types"
)

// Prober reads the frame size of a video file.
type Prober interface {
	Dimensions(path string) (types.Dimensions, error)
}

// FontResolver maps a font identifier to a file.
type FontResolver interface {
	Resolve(id string) (fonts.Font, error)
}

// Renderer runs the rendering engine to completion.
type Renderer interface {
	Render(job RenderJob) error
}

// OutputOptions are the encoder settings passed to the renderer.
type OutputOptions struct {
	VideoCodec string
	Preset     string
	CRF        int
	AudioCodec string
}

// RenderJob is a single invocation of the rendering engine.
type RenderJob struct {
	InputPath  string
	OutputPath string
	Filter     string
	Output     OutputOptions
}
