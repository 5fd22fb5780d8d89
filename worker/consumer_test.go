package worker

import (
	"context"
	"errors"
	"testing"

	"overlaybot/compiler"
	"overlaybot/jobs"
	"overlaybot/services"
	"overlaybot/types"
)

type fakeCompiler struct {
	calls int
	err   error
}

func (f *fakeCompiler) Render(req types.RenderRequest) (*compiler.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &compiler.Result{Filter: "drawtext=text='x'"}, nil
}

func TestHandlerMarksSuccessfulRenders(t *testing.T) {
	fc := &fakeCompiler{}
	store := jobs.NewMemoryStore()
	h := NewHandler(services.NewRenderService(fc, store, nil, t.TempDir(), t.TempDir()))

	body := `{"id":"r1","input":"in.mp4","overlays":[{"text":"Hi","start":0,"end":1,"fontSize":5}]}`
	mark, err := h.HandleMessage(context.Background(), []byte(body))
	if err != nil || !mark {
		t.Fatalf("mark=%v err=%v", mark, err)
	}
	job, err := store.Get(context.Background(), "r1")
	if err != nil || job.Status != jobs.StatusSucceeded {
		t.Fatalf("job = %+v, %v", job, err)
	}
}

func TestHandlerSkipsInvalidRequests(t *testing.T) {
	fc := &fakeCompiler{}
	h := NewHandler(services.NewRenderService(fc, nil, nil, t.TempDir(), t.TempDir()))

	bodies := []string{
		`{"overlays":[{"text":"Hi"}]}`,
		`{"input":"in.mp4"}`,
		`garbage`,
		`{"input":"/etc/hostname","overlays":[{"text":"Hi","start":0,"end":1,"fontSize":5}]}`,
		`{"input":"in.mp4","output":"../../owned","overlays":[{"text":"Hi","start":0,"end":1,"fontSize":5}]}`,
	}
	for _, body := range bodies {
		mark, err := h.HandleMessage(context.Background(), []byte(body))
		if !mark || err != nil {
			t.Fatalf("%s: mark=%v err=%v; want marked and skipped", body, mark, err)
		}
	}
	if fc.calls != 0 {
		t.Fatalf("invalid requests reached the compiler")
	}
}

func TestHandlerLeavesFailedRendersForRetry(t *testing.T) {
	fc := &fakeCompiler{err: &types.RenderError{ExitCode: 1}}
	h := NewHandler(services.NewRenderService(fc, nil, nil, t.TempDir(), t.TempDir()))

	body := `{"input":"in.mp4","overlays":[{"text":"Hi","start":0,"end":1,"fontSize":5}]}`
	mark, err := h.HandleMessage(context.Background(), []byte(body))
	if mark || !errors.Is(err, types.ErrRenderingEngine) {
		t.Fatalf("mark=%v err=%v", mark, err)
	}
}
