package video

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"overlaybot/compiler"
	"overlaybot/types"
)

// diagnosticLines is how much of ffmpeg's stderr is kept on failure.
const diagnosticLines = 20

// Renderer runs ffmpeg through ffmpeg-go.
type Renderer struct {
	run func(*ffmpeg.Stream) error
}

func NewRenderer() *Renderer {
	return &Renderer{run: func(s *ffmpeg.Stream) error { return s.Run() }}
}

// Render burns job.Filter into the input video and blocks until ffmpeg exits.
// A non-zero exit is reported as *types.RenderError.
func (r *Renderer) Render(job compiler.RenderJob) error {
	var stderr bytes.Buffer
	stream := buildStream(job).WithErrorOutput(&stderr)

	if err := r.run(stream); err != nil {
		rerr := renderError(err, stderr.String())
		log.Printf("❌ ffmpeg failed for %s: %v", job.OutputPath, rerr)
		return rerr
	}
	return nil
}

// buildStream produces:
//
//	ffmpeg -i IN -c:v CODEC -preset P -crf N -c:a copy -vf FILTER OUT -y
func buildStream(job compiler.RenderJob) *ffmpeg.Stream {
	return ffmpeg.Input(job.InputPath).
		Output(job.OutputPath, ffmpeg.KwArgs{
			"vf":     job.Filter,
			"c:v":    job.Output.VideoCodec,
			"preset": job.Output.Preset,
			"crf":    strconv.Itoa(job.Output.CRF),
			"c:a":    job.Output.AudioCodec,
		}).
		OverWriteOutput()
}

func renderError(err error, stderr string) *types.RenderError {
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &types.RenderError{
		ExitCode:   code,
		Diagnostic: tail(stderr, diagnosticLines),
		Err:        fmt.Errorf("ffmpeg failed: %w", err),
	}
}

func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
