package jobs

import (
	"context"
	"errors"
	"testing"

	"overlaybot/types"
)

func TestNewJobDefaults(t *testing.T) {
	j := New("", "in.mp4", "out.mp4")
	if j.ID == "" {
		t.Fatalf("expected generated id")
	}
	if j.Status != StatusQueued || j.Done() {
		t.Fatalf("new job status = %s", j.Status)
	}
	if New("fixed", "", "").ID != "fixed" {
		t.Fatalf("explicit id should be kept")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	j := New("job-1", "in.mp4", "out.mp4")
	j.Warnings = []types.Warning{{Overlay: 0, Kind: "unknown_effect"}}

	if err := s.Save(ctx, j); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// mutations after Save must not leak into the store
	j.Status = StatusFailed
	j.Warnings[0].Kind = "changed"

	got, err := s.Get(ctx, "job-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusQueued || got.Warnings[0].Kind != "unknown_effect" {
		t.Fatalf("stored job was mutated: %+v", got)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v; want ErrNotFound", err)
	}
	if err := s.Save(context.Background(), &Job{}); err == nil {
		t.Fatalf("expected error for job without id")
	}
}

func TestRedisStoreKey(t *testing.T) {
	r := &RedisStore{prefix: "overlay:job:"}
	if got := r.key("abc"); got != "overlay:job:abc" {
		t.Fatalf("key = %q", got)
	}
}
