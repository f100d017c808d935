// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-a2a/agentd/a2a"
)

// InMemoryStore is a thread-safe, process-local Store. Records are deep
// copied on the way in and out, so callers can never mutate stored state
// through a shared pointer. Insertion order is preserved for listing.
type InMemoryStore struct {
	mu    sync.RWMutex
	tasks map[string]*a2a.Task
	order []string
}

var _ Store = (*InMemoryStore)(nil)

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		tasks: make(map[string]*a2a.Task),
	}
}

// Save implements [Store].
func (s *InMemoryStore) Save(ctx context.Context, task *a2a.Task) error {
	if task == nil {
		return fmt.Errorf("task is nil")
	}
	if task.ID == "" {
		return fmt.Errorf("task ID is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.ID]; !exists {
		s.order = append(s.order, task.ID)
	}
	s.tasks[task.ID] = task.Clone()

	return nil
}

// Get implements [Store].
func (s *InMemoryStore) Get(ctx context.Context, taskID string) (*a2a.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return nil, ErrTaskNotFound
	}
	return task.Clone(), nil
}

// List implements [Store].
func (s *InMemoryStore) List(ctx context.Context, offset, limit int) ([]*a2a.Task, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset >= len(s.order) {
		return []*a2a.Task{}, nil
	}

	end := offset + limit
	if end > len(s.order) {
		end = len(s.order)
	}

	tasks := make([]*a2a.Task, 0, end-offset)
	for _, id := range s.order[offset:end] {
		tasks = append(tasks, s.tasks[id].Clone())
	}
	return tasks, nil
}

// Cancel implements [Store]. The canceled status replaces the current one
// regardless of the task's state, so canceling an already terminal task is
// a no-fail overwrite.
func (s *InMemoryStore) Cancel(ctx context.Context, taskID string) (*a2a.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return nil, ErrTaskNotFound
	}

	task.Status = a2a.NewTaskStatus(a2a.TaskStateCanceled)
	return task.Clone(), nil
}
