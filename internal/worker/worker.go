// Package worker renders batches of symbol codes on a pool of goroutines.
package worker

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/OCAP2/milsymbol/pkg/core"
)

// Renderer is the part of the symbol renderer the pool needs.
type Renderer interface {
	Parse(code string) (core.Symbol, error)
	Render(sym core.Symbol, style core.Style) core.Output
}

// Dependencies holds all dependencies for the worker manager
type Dependencies struct {
	Renderer Renderer
	Logger   *slog.Logger
	// Workers is the pool size. Zero or less uses one worker per CPU.
	Workers int
}

// Job is one code to render, with its position in the batch.
type Job struct {
	Index int
	Code  string
}

// Result is the outcome of one job. Err is set when the code could not be
// decoded or the batch was cancelled before the job ran.
type Result struct {
	Job
	Symbol core.Symbol
	Output core.Output
	Err    error
}

// Manager manages worker goroutines
type Manager struct {
	renderer Renderer
	logger   *slog.Logger
	workers  int
}

// NewManager creates a new worker manager
func NewManager(deps Dependencies) *Manager {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := deps.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Manager{
		renderer: deps.Renderer,
		logger:   logger,
		workers:  workers,
	}
}

// Workers returns the pool size.
func (m *Manager) Workers() int {
	return m.workers
}

// Run renders every code with style and returns one result per code, in
// input order. Jobs not started when ctx is done fail with ctx.Err().
func (m *Manager) Run(ctx context.Context, codes []string, style core.Style) []Result {
	results := make([]Result, len(codes))
	if len(codes) == 0 {
		return results
	}

	workers := min(m.workers, len(codes))
	jobs := make(chan Job, len(codes))
	for i, code := range codes {
		jobs <- Job{Index: i, Code: code}
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results[job.Index] = m.handle(ctx, job, style)
			}
		}()
	}
	wg.Wait()

	m.logger.Debug("Batch rendered", "codes", len(codes), "workers", workers)
	return results
}

func (m *Manager) handle(ctx context.Context, job Job, style core.Style) Result {
	res := Result{Job: job}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	sym, err := m.renderer.Parse(job.Code)
	if err != nil {
		res.Err = err
		return res
	}
	res.Symbol = sym
	res.Output = m.renderer.Render(sym, style)
	return res
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
