package jobs

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"overlaybot/types"
)

// Status is the lifecycle state of a render job.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// ErrNotFound is returned by Get for unknown job IDs.
var ErrNotFound = errors.New("job not found")

// Job tracks one render request.
type Job struct {
	ID        string          `json:"id"`
	Status    Status          `json:"status"`
	Input     string          `json:"input"`
	Output    string          `json:"output"`
	URL       string          `json:"url,omitempty"`
	Filter    string          `json:"filter,omitempty"`
	Error     string          `json:"error,omitempty"`
	Warnings  []types.Warning `json:"warnings,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// New returns a queued job. An empty id gets a generated one.
func New(id, input, output string) *Job {
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC()
	return &Job{ID: id, Status: StatusQueued, Input: input, Output: output, CreatedAt: now, UpdatedAt: now}
}

// Done reports whether the job reached a final state.
func (j *Job) Done() bool {
	return j.Status == StatusSucceeded || j.Status == StatusFailed
}

// Store persists job records.
type Store interface {
	Save(ctx context.Context, job *Job) error
	Get(ctx context.Context, id string) (*Job, error)
}

// MemoryStore keeps jobs in process memory. Used when no redis is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	jobs map[string]Job
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{jobs: make(map[string]Job)}
}

func (m *MemoryStore) Save(_ context.Context, job *Job) error {
	if job == nil || job.ID == "" {
		return errors.New("job has no id")
	}
	cp := *job
	cp.UpdatedAt = time.Now().UTC()
	cp.Warnings = append([]types.Warning(nil), job.Warnings...)

	m.mu.Lock()
	m.jobs[job.ID] = cp
	m.mu.Unlock()
	job.UpdatedAt = cp.UpdatedAt
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Job, error) {
	m.mu.RLock()
	j, ok := m.jobs[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return &j, nil
}
