// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package event

import "errors"

var (
	// ErrQueueClosed is returned when operating on a closed queue.
	ErrQueueClosed = errors.New("event queue is closed")

	// ErrNoTaskSnapshot is returned by Collect when the event sequence
	// ended without an initial task snapshot.
	ErrNoTaskSnapshot = errors.New("event sequence contained no task snapshot")
)
