// Package async runs the invocation stage of async commands on a fixed set
// of workers.
package async

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/footprint-tools/cmdkit/internal/domain"
)

// Pool is a fixed set of workers behind a bounded queue. It satisfies
// dispatchers.Executor.
type Pool struct {
	mu     sync.RWMutex
	closed bool

	queue  chan func()
	done   <-chan struct{}
	group  *errgroup.Group
	logger domain.Logger

	spilled  sync.WaitGroup
	pending  atomic.Int64
	overflow atomic.Int64
}

// NewPool starts workers goroutines reading from a queue of the given size.
// Cancelling ctx stops the workers; work submitted afterwards runs on its
// own goroutine.
func NewPool(ctx context.Context, workers, queue int, logger domain.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queue < 0 {
		queue = 0
	}

	group, gctx := errgroup.WithContext(ctx)
	p := &Pool{
		queue:  make(chan func(), queue),
		done:   gctx.Done(),
		group:  group,
		logger: logger,
	}

	for range workers {
		group.Go(p.work)
	}

	logger.Debug("async pool started with %d workers, queue %d", workers, queue)
	return p
}

func (p *Pool) work() error {
	for {
		select {
		case <-p.done:
			return nil
		case fn, ok := <-p.queue:
			if !ok {
				return nil
			}
			p.run(fn)
		}
	}
}

// Go submits fn and returns at once. When every worker is busy and the
// queue is full, fn runs on a goroutine of its own.
func (p *Pool) Go(fn func()) {
	p.pending.Add(1)

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		go p.run(fn)
		return
	}

	select {
	case p.queue <- fn:
	case <-p.done:
		p.spill(fn)
	default:
		p.overflow.Add(1)
		p.logger.Debug("async pool saturated, running task on its own goroutine")
		p.spill(fn)
	}
}

// Overflowed returns how many submissions found the pool saturated.
func (p *Pool) Overflowed() int {
	return int(p.overflow.Load())
}

// spill runs fn outside the workers. Close waits for it. Callers hold mu.
func (p *Pool) spill(fn func()) {
	p.spilled.Add(1)
	go func() {
		defer p.spilled.Done()
		p.run(fn)
	}()
}

// Pending returns the number of submitted functions that have not finished.
func (p *Pool) Pending() int {
	return int(p.pending.Load())
}

func (p *Pool) run(fn func()) {
	defer p.pending.Add(-1)
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("async task panicked: %v\n%s", r, debug.Stack())
		}
	}()
	fn()
}

// Close stops accepting queued work and waits for the workers. Anything
// still queued runs before it returns, and so does overflow work started
// before Close.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	err := p.group.Wait()

	for fn := range p.queue {
		p.run(fn)
	}
	p.spilled.Wait()

	p.logger.Debug("async pool closed")
	return err
}
