// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package event provides the ordered event pipeline between a task
// execution and its consumers: a bounded single-producer queue, a consumer
// that detects the terminal event, and the collector that folds a full
// event sequence into one task record.
package event

import (
	"context"
	"sync"

	"github.com/go-a2a/agentd/a2a"
)

// DefaultQueueSize is the default buffer capacity of a Queue.
const DefaultQueueSize = 1024

// Queue is a bounded FIFO of protocol events produced by a single task
// execution. A full queue applies backpressure: Enqueue blocks until a
// consumer catches up. Events already buffered remain dequeueable after
// Close.
type Queue struct {
	events    chan a2a.Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewQueue creates a queue with the given buffer capacity.
// A non-positive size falls back to DefaultQueueSize.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		events: make(chan a2a.Event, size),
		done:   make(chan struct{}),
	}
}

// Enqueue adds an event to the queue, blocking while the queue is full.
// Returns ErrQueueClosed if the queue has been closed.
func (q *Queue) Enqueue(ctx context.Context, event a2a.Event) error {
	select {
	case <-q.done:
		return ErrQueueClosed
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-q.done:
		return ErrQueueClosed
	case q.events <- event:
		return nil
	}
}

// Dequeue retrieves the next event, blocking until one is available, the
// context is canceled, or the queue is closed and drained.
func (q *Queue) Dequeue(ctx context.Context) (a2a.Event, error) {
	// Buffered events win over a concurrent close.
	select {
	case event := <-q.events:
		return event, nil
	default:
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case event := <-q.events:
		return event, nil
	case <-q.done:
		select {
		case event := <-q.events:
			return event, nil
		default:
			return nil, ErrQueueClosed
		}
	}
}

// Close marks the queue closed. Safe to call multiple times. Pending
// buffered events remain dequeueable.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.done)
	})
}

// IsClosed reports whether the queue has been closed.
func (q *Queue) IsClosed() bool {
	select {
	case <-q.done:
		return true
	default:
		return false
	}
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.events)
}
