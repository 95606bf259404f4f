package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/abhisek/phantomledger/internal/logger"
)

// DefaultWriteTimeout bounds a single store write.
const DefaultWriteTimeout = 10 * time.Second

// queueDepth is how many writes may wait behind the one in flight.
const queueDepth = 256

// Executor runs store writes in submission order. Submit never waits for
// the write to complete.
type Executor interface {
	Submit(op string, fn func(ctx context.Context) error)
	Close(ctx context.Context) error
}

// SyncStats counts store writes issued by an Executor.
type SyncStats struct {
	Issued    int64
	Succeeded int64
	Failed    int64
	Dropped   int64
}

type task struct {
	op string
	fn func(ctx context.Context) error
}

// Queue is a single-writer background Executor. Failed writes are logged
// and counted; they are never retried here.
type Queue struct {
	ops     chan task
	done    chan struct{}
	timeout time.Duration
	log     *logger.Logger

	mu     sync.Mutex
	closed bool

	issued, succeeded, failed, dropped atomic.Int64
}

// NewQueue starts a Queue. A zero timeout uses DefaultWriteTimeout.
func NewQueue(log *logger.Logger, timeout time.Duration) *Queue {
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	q := &Queue{
		ops:     make(chan task, queueDepth),
		done:    make(chan struct{}),
		timeout: timeout,
		log:     log,
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.done)
	for t := range q.ops {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		err := t.fn(ctx)
		cancel()
		if err != nil {
			q.failed.Add(1)
			q.log.Warn("store write failed", "op", t.op, "error", err)
			continue
		}
		q.succeeded.Add(1)
		q.log.Debug("store write applied", "op", t.op)
	}
}

// Submit enqueues a write without blocking. Writes submitted after Close,
// or while the queue is full behind a stalled store, are dropped and
// counted.
func (q *Queue) Submit(op string, fn func(ctx context.Context) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.dropped.Add(1)
		q.log.Warn("store write dropped after close", "op", op)
		return
	}
	select {
	case q.ops <- task{op: op, fn: fn}:
		q.issued.Add(1)
	default:
		q.dropped.Add(1)
		q.log.Warn("store write dropped, queue full", "op", op, "depth", queueDepth)
	}
}

// Close stops accepting writes and waits for queued ones to finish.
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.ops)
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("drain store writes: %w", ctx.Err())
	}
}

func (q *Queue) Stats() SyncStats {
	return SyncStats{
		Issued:    q.issued.Load(),
		Succeeded: q.succeeded.Load(),
		Failed:    q.failed.Load(),
		Dropped:   q.dropped.Load(),
	}
}
