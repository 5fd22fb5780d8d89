package main

import (
	"fmt"
	"strings"
	"testing"

	"overlaybot/compiler"
	"overlaybot/types"
)

func TestRenderReport(t *testing.T) {
	res := &compiler.Result{
		Dims: types.Dimensions{Width: 1920, Height: 1080},
		Overlays: []types.AtomicOverlay{
			{Text: "Hello", Start: 0, End: 2},
			{Text: "world", Start: 0, End: 2, Source: types.Source{Line: 1}},
		},
		Warnings: []types.Warning{{Message: `unknown animation effect "spin"`}},
	}

	out := renderReport(types.RenderRequest{Input: "in.mp4"}, res)
	for _, want := range []string{"2 drawtext filters", "1920x1080", `"Hello"`, `"world"`, "in.mp4", "spin"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderErrorNamesOverlay(t *testing.T) {
	err := fmt.Errorf("compile: %w", &types.ValidationError{Index: 2, Element: -1, Err: types.ErrInvalidTiming})
	if out := renderError(err); !strings.Contains(out, "overlay 2") {
		t.Fatalf("error output = %q", out)
	}

	rerr := &types.RenderError{ExitCode: 1, Diagnostic: "No such filter"}
	if out := renderError(rerr); !strings.Contains(out, "No such filter") {
		t.Fatalf("render error output = %q", out)
	}
}
