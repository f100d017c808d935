// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package execution provides the task execution engine: the single
// authoritative source of task lifecycle transitions, emitting them as an
// ordered event sequence, and the pluggable responder capability that
// produces the agent's reply.
package execution

import (
	"context"

	"github.com/go-a2a/agentd/a2a"
)

// Responder is the pluggable capability that produces the agent's reply to
// an inbound message. Implementations may call models or tools; the engine
// only requires the reply text or an error.
type Responder interface {
	// Invoke produces the reply for the given inbound message.
	Invoke(ctx context.Context, message *a2a.Message) (string, error)
}

// ResponderFunc adapts a function to the Responder interface.
type ResponderFunc func(ctx context.Context, message *a2a.Message) (string, error)

// Invoke implements [Responder].
func (f ResponderFunc) Invoke(ctx context.Context, message *a2a.Message) (string, error) {
	return f(ctx, message)
}

// StaticResponder replies with a fixed text regardless of input. It never
// fails.
type StaticResponder struct {
	Reply string
}

var _ Responder = (*StaticResponder)(nil)

// Invoke implements [Responder].
func (r StaticResponder) Invoke(ctx context.Context, message *a2a.Message) (string, error) {
	return r.Reply, nil
}
