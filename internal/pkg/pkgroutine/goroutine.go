package pkgroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 10

// ErrPanic is wrapped into the error recorded for a task that panicked.
var ErrPanic = errors.New("task panicked")

// Manager runs named tasks in goroutines with a configurable concurrency limit.
//
// It collects errors returned by tasks and can be waited on using Wait.
type Manager struct {
	mu   sync.Mutex
	errs []error
	wg   sync.WaitGroup
	sema chan struct{}
}

// NewManager creates a new Manager with the provided maximum concurrency.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = DefaultMaxGoroutine
	}

	return &Manager{
		sema: make(chan struct{}, maxGoroutine),
	}
}

// Go schedules f under name, blocking until a slot is free.
//
// If pCtx is canceled before a slot frees up, the task is skipped and the
// cancellation is recorded as its error.
func (g *Manager) Go(pCtx context.Context, name string, f func(ctx context.Context) error) {
	select {
	case g.sema <- struct{}{}:
	case <-pCtx.Done():
		slog.WarnContext(pCtx, "goroutine canceled before start", "task", name, "because", pCtx.Err())
		g.record(name, pCtx.Err())
		return
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			<-g.sema

			if rvr := recover(); rvr != nil {
				slog.ErrorContext(pCtx, "panic occurred in goroutine", "task", name, "because", rvr, "stack", string(debug.Stack()))
				g.record(name, fmt.Errorf("%w: %v", ErrPanic, rvr))
			}
		}()

		g.record(name, f(pCtx))
	}()
}

func (g *Manager) record(name string, err error) {
	if err == nil {
		return
	}

	g.mu.Lock()
	g.errs = append(g.errs, fmt.Errorf("%s: %w", name, err))
	g.mu.Unlock()
}

// Wait blocks until all scheduled goroutines finish and returns any collected errors.
func (g *Manager) Wait() error {
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()

	return errors.Join(g.errs...)
}
