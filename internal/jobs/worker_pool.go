package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"tours/internal/core/ports"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

type queuedTask struct {
	id   string
	name string
	run  ports.Task
}

// WorkerPool runs at most workers tasks at a time and holds up to queueSize
// more. It implements ports.TaskQueue.
type WorkerPool struct {
	workers     int
	queueSize   int
	taskTimeout time.Duration
	logger      *slog.Logger

	// slots admits running plus queued tasks; a slot is released when its
	// task returns.
	slots   *semaphore.Weighted
	queue   chan queuedTask
	group   errgroup.Group
	pending atomic.Int64

	mu      sync.RWMutex
	closed  bool
	started bool

	dispatched chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewWorkerPool creates a stopped pool. Each task gets its own context bounded
// by taskTimeout.
func NewWorkerPool(workers, queueSize int, taskTimeout time.Duration, logger *slog.Logger) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	capacity := workers + queueSize
	ctx, cancel := context.WithCancel(context.Background())
	p := &WorkerPool{
		workers:     workers,
		queueSize:   queueSize,
		taskTimeout: taskTimeout,
		logger:      logger.With("component", "worker_pool"),
		slots:       semaphore.NewWeighted(int64(capacity)),
		queue:       make(chan queuedTask, capacity),
		dispatched:  make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}
	p.group.SetLimit(workers)
	return p
}

func (p *WorkerPool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	go p.dispatch()
	p.logger.Info("Worker pool started", "workers", p.workers, "queue_size", p.queueSize)
}

// Submit never blocks. It returns ports.ErrTaskQueueFull when every slot is
// taken or the pool is stopping.
func (p *WorkerPool) Submit(name string, task ports.Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return fmt.Errorf("%w: pool is stopped", ports.ErrTaskQueueFull)
	}
	if !p.slots.TryAcquire(1) {
		return ports.ErrTaskQueueFull
	}

	p.pending.Add(1)
	p.queue <- queuedTask{id: uuid.NewString(), name: name, run: task}
	return nil
}

// Pending reports how many accepted tasks are waiting for a worker.
func (p *WorkerPool) Pending() int {
	return int(p.pending.Load())
}

// Stop rejects new tasks and waits for queued ones to finish. When ctx ends
// first, running tasks are cancelled and ctx.Err() is returned.
func (p *WorkerPool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
		if !p.started {
			p.started = true
			go p.dispatch()
		}
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		<-p.dispatched
		_ = p.group.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		p.logger.Info("Worker pool stopped")
		return nil
	case <-ctx.Done():
		p.cancel()
		p.logger.Warn("Worker pool stop timed out, cancelling running tasks", "error", ctx.Err())
		return ctx.Err()
	}
}

// dispatch hands queued tasks to the group, blocking while all workers are busy.
func (p *WorkerPool) dispatch() {
	defer close(p.dispatched)

	for t := range p.queue {
		p.group.Go(func() error {
			defer p.slots.Release(1)
			p.pending.Add(-1)
			p.run(t)
			return nil
		})
	}
}

func (p *WorkerPool) run(t queuedTask) {
	ctx := p.ctx
	if p.taskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.taskTimeout)
		defer cancel()
	}

	log := p.logger.With("task_id", t.id, "task", t.name)
	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "Task panicked", "panic", r)
		}
	}()

	started := time.Now()
	if err := t.run(ctx); err != nil {
		log.ErrorContext(ctx, "Task failed", "error", err, "duration", time.Since(started))
		return
	}
	log.DebugContext(ctx, "Task finished", "duration", time.Since(started))
}
