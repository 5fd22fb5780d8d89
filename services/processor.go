package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"overlaybot/compiler"
	"overlaybot/config"
	"overlaybot/jobs"
	"overlaybot/types"
)

// Compiler is the part of compiler.Compiler the service drives.
type Compiler interface {
	Render(req types.RenderRequest) (*compiler.Result, error)
}

// Uploader publishes rendered files. *common.S3 satisfies it.
type Uploader interface {
	UploadFile(ctx context.Context, localPath string) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
}

// RenderService runs render requests and records their progress as jobs.
type RenderService struct {
	compiler   Compiler
	store      jobs.Store
	uploader   Uploader
	inputDir   string
	outputDir  string
	batchDelay time.Duration
	maxWorkers int
}

// NewRenderService wires the service. uploader may be nil to keep outputs local.
// Request inputs are read from inputDir and outputs written under outputDir.
func NewRenderService(c Compiler, store jobs.Store, uploader Uploader, inputDir, outputDir string) *RenderService {
	if store == nil {
		store = jobs.NewMemoryStore()
	}
	if inputDir == "" {
		inputDir = config.InputDir
	}
	if outputDir == "" {
		outputDir = config.OutputDir
	}
	return &RenderService{
		compiler:   c,
		store:      store,
		uploader:   uploader,
		inputDir:   inputDir,
		outputDir:  outputDir,
		batchDelay: config.RenderBatchDelay,
		maxWorkers: config.MaxConcurrentRenders,
	}
}

// Store exposes the job store for status lookups.
func (s *RenderService) Store() jobs.Store { return s.store }

// Process renders req synchronously and returns the final job record.
func (s *RenderService) Process(ctx context.Context, req types.RenderRequest) (*jobs.Job, error) {
	job, req, err := s.newJob(req)
	if err != nil {
		return nil, err
	}
	err = s.run(ctx, job, req)
	return job, err
}

// Enqueue records a queued job and renders it in the background. The returned
// job is a snapshot taken before rendering starts.
func (s *RenderService) Enqueue(ctx context.Context, req types.RenderRequest) (*jobs.Job, error) {
	job, req, err := s.newJob(req)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to queue job: %w", err)
	}

	snapshot := *job
	go func() {
		_ = s.run(context.Background(), job, req)
	}()
	return &snapshot, nil
}

// CheckPaths reports whether the request's paths stay inside the service's
// input and output directories.
func (s *RenderService) CheckPaths(req types.RenderRequest) error {
	_, err := s.resolvePaths(req, "")
	return err
}

func (s *RenderService) newJob(req types.RenderRequest) (*jobs.Job, types.RenderRequest, error) {
	job := jobs.New(req.ID, "", "")
	req, err := s.resolvePaths(req, job.ID)
	if err != nil {
		return nil, req, err
	}
	req.ID = job.ID
	job.Input, job.Output = req.Input, req.Output
	return job, req, nil
}

// resolvePaths maps request paths onto the input and output directories.
// An empty output gets a name derived from the input and id.
func (s *RenderService) resolvePaths(req types.RenderRequest, id string) (types.RenderRequest, error) {
	input, err := confine(s.inputDir, req.Input)
	if err != nil {
		return req, fmt.Errorf("input: %w", err)
	}

	output := OutputPathFor(s.outputDir, req.Input, id)
	if req.Output != "" {
		if output, err = confine(s.outputDir, req.Output); err != nil {
			return req, fmt.Errorf("output: %w", err)
		}
	}

	req.Input, req.Output = input, output
	return req, nil
}

// confine joins rel onto root. Absolute paths and ".." elements are rejected.
func confine(root, rel string) (string, error) {
	if strings.TrimSpace(rel) == "" {
		return "", fmt.Errorf("%w: empty path", types.ErrUnsafePath)
	}
	if filepath.IsAbs(rel) || filepath.VolumeName(rel) != "" || strings.HasPrefix(rel, "/") || strings.HasPrefix(rel, `\`) {
		return "", fmt.Errorf("%w: %q is absolute", types.ErrUnsafePath, rel)
	}
	for _, part := range strings.FieldsFunc(rel, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return "", fmt.Errorf("%w: %q", types.ErrUnsafePath, rel)
		}
	}

	joined := filepath.Join(root, rel)
	inside, err := filepath.Rel(root, joined)
	if err != nil || inside == "." || inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", types.ErrUnsafePath, rel)
	}
	return joined, nil
}

func (s *RenderService) run(ctx context.Context, job *jobs.Job, req types.RenderRequest) error {
	job.Status = jobs.StatusRunning
	s.save(ctx, job)

	res, err := s.compiler.Render(req)
	if res != nil {
		job.Filter = res.Filter
		job.Warnings = res.Warnings
	}
	if err != nil {
		return s.fail(ctx, job, err)
	}

	if s.uploader != nil {
		log.Printf("📤 Uploading %s", req.Output)
		key, err := s.uploader.UploadFile(ctx, req.Output)
		if err != nil {
			return s.fail(ctx, job, fmt.Errorf("upload failed: %w", err))
		}
		url, err := s.uploader.PresignGet(ctx, key)
		if err != nil {
			log.Printf("⚠️  Uploaded %s but could not presign: %v", key, err)
		}
		job.URL = url
	}

	job.Status = jobs.StatusSucceeded
	s.save(ctx, job)
	log.Printf("✅ Job %s finished: %s", job.ID, req.Output)
	return nil
}

func (s *RenderService) fail(ctx context.Context, job *jobs.Job, err error) error {
	job.Status = jobs.StatusFailed
	job.Error = err.Error()
	s.save(ctx, job)
	log.Printf("❌ Job %s failed: %v", job.ID, err)
	return err
}

// save logs store failures; a broken status store must not fail the render.
func (s *RenderService) save(ctx context.Context, job *jobs.Job) {
	if err := s.store.Save(ctx, job); err != nil {
		log.Printf("⚠️  Failed to save job %s: %v", job.ID, err)
	}
}

// ProcessFromDirectory renders every .json, .yaml and .yml request in inputDir
// with at most config.MaxConcurrentRenders renders in flight.
func (s *RenderService) ProcessFromDirectory(ctx context.Context, inputDir string) error {
	var files []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(inputDir, pattern))
		if err != nil {
			return fmt.Errorf("failed to list %s files: %w", pattern, err)
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		log.Printf("No render requests found in %s", inputDir)
		return nil
	}
	log.Printf("Found %d render requests", len(files))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		errs      []error
		semaphore = make(chan struct{}, s.maxWorkers)
	)

	for i, file := range files {
		wg.Add(1)

		go func(idx int, file string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			log.Printf("[%d/%d] Processing: %s", idx+1, len(files), filepath.Base(file))
			if err := s.processFile(ctx, file); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", filepath.Base(file), err))
				mu.Unlock()
			}

			if idx < len(files)-1 && s.batchDelay > 0 {
				time.Sleep(s.batchDelay)
			}
		}(i, file)
	}

	wg.Wait()
	log.Printf("All render requests processed (%d failed)", len(errs))
	return errors.Join(errs...)
}

func (s *RenderService) processFile(ctx context.Context, file string) error {
	req, err := config.LoadRenderRequest(file)
	if err != nil {
		return err
	}
	if req.Input == "" {
		return fmt.Errorf("request has no input video")
	}
	if req.ID == "" {
		req.ID = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}
	_, err = s.Process(ctx, req)
	return err
}

// OutputPathFor names the output of a request without an explicit output path.
func OutputPathFor(outputDir, input, id string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	if base == "" || base == "." {
		base = "video"
	}
	ext := filepath.Ext(input)
	if ext == "" {
		ext = ".mp4"
	}
	return filepath.Join(outputDir, fmt.Sprintf("%s_%s%s", base, id, ext))
}
