package types

// RenderRequest is one render invocation: burn Overlays into Input, write Output.
type RenderRequest struct {
	ID       string        `json:"id,omitempty" yaml:"id,omitempty"`
	Input    string        `json:"input" yaml:"input"`
	Output   string        `json:"output,omitempty" yaml:"output,omitempty"`
	Overlays []TextOverlay `json:"overlays" yaml:"overlays"`
}

// CompileRequest asks for the filter expression only, for known dimensions.
type CompileRequest struct {
	Width    int           `json:"width" binding:"required,gt=0"`
	Height   int           `json:"height" binding:"required,gt=0"`
	Overlays []TextOverlay `json:"overlays" binding:"required"`
}

// CompileResponse is the compile preview payload.
type CompileResponse struct {
	Filter   string          `json:"filter"`
	Overlays []AtomicOverlay `json:"overlays"`
	Warnings []Warning       `json:"warnings,omitempty"`
}

// RenderResponse is returned when a render job is accepted.
type RenderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	JobID   string `json:"job_id,omitempty"`
	Error   string `json:"error,omitempty"`
}
