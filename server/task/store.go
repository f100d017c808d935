// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package task provides task persistence for the server: the Store
// contract and its in-memory implementation.
package task

import (
	"context"
	"errors"

	"github.com/go-a2a/agentd/a2a"
)

// ErrTaskNotFound is returned when a task ID is not present in the store.
var ErrTaskNotFound = errors.New("task not found")

// DefaultListLimit is the page size used when a list request does not set
// a limit.
const DefaultListLimit = 10

// Store persists task records keyed by task ID.
type Store interface {
	// Save inserts or replaces the task record.
	Save(ctx context.Context, task *a2a.Task) error

	// Get returns the task with the given ID, or ErrTaskNotFound.
	Get(ctx context.Context, taskID string) (*a2a.Task, error)

	// List returns a page of tasks in insertion order. A non-positive
	// limit falls back to DefaultListLimit; an offset past the end yields
	// an empty page.
	List(ctx context.Context, offset, limit int) ([]*a2a.Task, error)

	// Cancel marks the task canceled and returns the updated record, or
	// ErrTaskNotFound.
	Cancel(ctx context.Context, taskID string) (*a2a.Task, error)
}
