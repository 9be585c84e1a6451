package services

import (
	"context"
	"sync"
)

// serialQueue runs submitted jobs one at a time, in submission order, on a
// single goroutine.
type serialQueue struct {
	mu     sync.Mutex
	jobs   []func()
	closed bool
	wake   chan struct{}
	done   chan struct{}
}

func newSerialQueue() *serialQueue {
	q := &serialQueue{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go q.run()
	return q
}

// Enqueue schedules job. Jobs submitted after Close are dropped and false is returned.
func (q *serialQueue) Enqueue(job func()) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.jobs = append(q.jobs, job)
	select {
	case q.wake <- struct{}{}:
	default:
	}
	q.mu.Unlock()
	return true
}

// Flush waits until every job enqueued before the call has run.
func (q *serialQueue) Flush(ctx context.Context) error {
	reached := make(chan struct{})
	if !q.Enqueue(func() { close(reached) }) {
		// Closed: Close already drained everything.
		<-q.done
		return nil
	}
	select {
	case <-reached:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting jobs, runs the ones already queued and waits for the worker.
func (q *serialQueue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.wake)
	}
	q.mu.Unlock()
	<-q.done
}

func (q *serialQueue) run() {
	defer close(q.done)
	for {
		_, open := <-q.wake
		for {
			q.mu.Lock()
			if len(q.jobs) == 0 {
				q.mu.Unlock()
				break
			}
			job := q.jobs[0]
			q.jobs[0] = nil
			q.jobs = q.jobs[1:]
			q.mu.Unlock()
			job()
		}
		if !open {
			return
		}
	}
}
