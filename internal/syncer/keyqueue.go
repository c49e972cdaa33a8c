package syncer

import (
	"context"
	"sync"
)

// KeyQueue serializes work per key: tasks submitted for the same key run one
// at a time in submission order, tasks for different keys run concurrently up
// to the worker limit. This closes the window where a save and a delete for
// the same document could land out of order.
type KeyQueue struct {
	mu    sync.Mutex
	tails map[string]chan struct{}
	sem   chan struct{}
}

// NewKeyQueue creates a queue allowing up to workers concurrent tasks across
// distinct keys. A non-positive worker count means no limit.
func NewKeyQueue(workers int) *KeyQueue {
	q := &KeyQueue{tails: make(map[string]chan struct{})}
	if workers > 0 {
		q.sem = make(chan struct{}, workers)
	}
	return q
}

// Do runs fn after every previously submitted task for the same key has
// finished, and returns fn's error. If the context is cancelled while
// waiting for a predecessor, fn never runs and the context error is
// returned; successors for the key are not blocked.
func (q *KeyQueue) Do(ctx context.Context, key string, fn func() error) error {
	q.mu.Lock()
	prev := q.tails[key]
	done := make(chan struct{})
	q.tails[key] = done
	q.mu.Unlock()

	finish := func() {
		close(done)
		q.mu.Lock()
		if q.tails[key] == done {
			delete(q.tails, key)
		}
		q.mu.Unlock()
	}

	if prev != nil {
		select {
		case <-prev:
		case <-ctx.Done():
			// The chain link may only close once the predecessor is done,
			// otherwise a successor could run alongside it.
			go func() {
				<-prev
				finish()
			}()
			return ctx.Err()
		}
	}

	if q.sem != nil {
		select {
		case q.sem <- struct{}{}:
			defer func() { <-q.sem }()
		case <-ctx.Done():
			finish()
			return ctx.Err()
		}
	}

	defer finish()
	return fn()
}
