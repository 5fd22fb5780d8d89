package video

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"overlaybot/types"
)

var dimensionPattern = regexp.MustCompile(`\b(\d{2,5})x(\d{2,5})\b`)

// Prober reads frame dimensions with ffprobe.
type Prober struct {
	probe func(path string) (string, error)
}

func NewProber() *Prober {
	return &Prober{probe: func(path string) (string, error) { return ffmpeg.Probe(path) }}
}

type probeOutput struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
}

// Dimensions returns the size of the first video stream. Output that is not
// a JSON report is scanned for a WxH token instead.
func (p *Prober) Dimensions(path string) (types.Dimensions, error) {
	out, err := p.probe(path)
	if err != nil {
		if d, ok := parseDimensions(withoutPath(err.Error(), path)); ok {
			return d, nil
		}
		return types.Dimensions{}, fmt.Errorf("%w: probing %s: %v", types.ErrUnresolvableDimensions, path, err)
	}

	var report probeOutput
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		if d, ok := parseDimensions(withoutPath(out, path)); ok {
			return d, nil
		}
		return types.Dimensions{}, fmt.Errorf("%w: unreadable probe output for %s", types.ErrUnresolvableDimensions, path)
	}

	for _, s := range report.Streams {
		if s.CodecType == "video" && s.Width > 0 && s.Height > 0 {
			return types.Dimensions{Width: s.Width, Height: s.Height}, nil
		}
	}
	return types.Dimensions{}, fmt.Errorf("%w: no video stream in %s", types.ErrUnresolvableDimensions, path)
}

// withoutPath drops the probed file name from diagnostic text so a name like
// clip_1920x1080.m4a is not read as a frame size.
func withoutPath(text, path string) string {
	if path == "" {
		return text
	}
	return strings.ReplaceAll(text, path, "")
}

// parseDimensions finds the first "1920x1080" style token in text.
func parseDimensions(text string) (types.Dimensions, bool) {
	m := dimensionPattern.FindStringSubmatch(text)
	if m == nil {
		return types.Dimensions{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	if w == 0 || h == 0 {
		return types.Dimensions{}, false
	}
	return types.Dimensions{Width: w, Height: h}, true
}
