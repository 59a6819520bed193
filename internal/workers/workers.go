// Package workers provides abstractions for managing and running background
// workers in the application. It defines the Worker interface and a Workers
// aggregate that allows running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker's execution; implementations are expected to return
// quickly and spawn goroutines internally, exiting when ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Func adapts a plain function to the Worker interface.
type Func func(ctx context.Context)

func (f Func) Run(ctx context.Context) { f(ctx) }

// Workers runs a set of workers as one unit.
type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
