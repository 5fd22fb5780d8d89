package config

import "time"

// Render Output Constants
const (
	// VideoCodec is the video encoding codec
	VideoCodec = "libx264"

	// AudioCodec copies the source audio untouched
	AudioCodec = "copy"

	// VideoPreset is the ffmpeg encoding speed preset
	VideoPreset = "fast"

	// VideoCRF is the constant rate factor used for re-encoding
	VideoCRF = 23
)

// Layout Constants
const (
	// LineSpacing multiplies the tallest font size on a line to get its height
	LineSpacing = 1.2

	// PercentFontSizeCutoff is the largest font size read as percent of video height
	PercentFontSizeCutoff = 20.0

	// PresetMargin is the distance from the frame edge used by named positions
	PresetMargin = 50.0

	// FilterSeparator joins drawtext filters into one chain
	FilterSeparator = ","
)

// Style Defaults
const (
	DefaultFontColor    = "white"
	DefaultOutlineWidth = 2.0
	DefaultOutlineColor = "black"
	DefaultShadowColor  = "black"
	DefaultShadowOffset = 2.0
	DefaultBoxColor     = "black"
	DefaultBoxOpacity   = 0.5
	DefaultBoxPadding   = 10.0
	DefaultFontID       = "default"
)

// Animation Defaults (seconds)
const (
	FadeDuration  = 1.0
	SlideDuration = 0.5
	ZoomDuration  = 0.8
)

// Processing Constants
const (
	// MaxConcurrentRenders limits the number of ffmpeg processes in batch mode
	MaxConcurrentRenders = 2

	// RenderBatchDelay is the wait time between batch renders
	RenderBatchDelay = 2 * time.Second

	// UploadTimeout bounds a single S3 upload
	UploadTimeout = 5 * time.Minute

	// PresignExpiry is how long download links stay valid
	PresignExpiry = 24 * time.Hour

	// JobTTL is how long job records are kept in redis
	JobTTL = 72 * time.Hour
)

// Directory Constants
const (
	// FontsDir is the directory scanned for font files
	FontsDir = "fonts"

	// InputDir is the directory containing batch render requests
	InputDir = "input"

	// OutputDir is the directory for rendered videos
	OutputDir = "output"
)
