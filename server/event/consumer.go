// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"context"
	"errors"

	"github.com/go-a2a/agentd/a2a"
)

// Consumer drains a Queue in emission order, stopping after the terminal
// event of an execution.
type Consumer struct {
	queue *Queue
}

// NewConsumer creates a consumer for the given queue.
func NewConsumer(queue *Queue) *Consumer {
	return &Consumer{queue: queue}
}

// ConsumeAll returns a channel that yields events in emission order. The
// channel closes after the final status update is delivered, after the
// queue is closed and drained, or when the context is canceled.
func (c *Consumer) ConsumeAll(ctx context.Context) <-chan a2a.Event {
	events := make(chan a2a.Event)

	go func() {
		defer close(events)

		for {
			event, err := c.queue.Dequeue(ctx)
			if errors.Is(err, ErrQueueClosed) {
				// Normal end of a stream whose producer closed the
				// queue; everything buffered has been drained.
				return
			}
			if err != nil {
				return
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}

			if a2a.IsFinalEvent(event) {
				c.queue.Close()
				return
			}
		}
	}()

	return events
}
