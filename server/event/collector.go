// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"context"

	"github.com/go-a2a/agentd/a2a"
)

// Collect is the synchronous consumption adapter: it drains the queue's
// full event sequence and folds it into a single task record. The initial
// task snapshot seeds the result, every emitted message is appended to its
// history, artifacts are attached as they arrive, and the last status
// update observed becomes the final status. If no status update arrived
// the snapshot's own status stands.
func Collect(ctx context.Context, queue *Queue) (*a2a.Task, error) {
	consumer := NewConsumer(queue)

	var task *a2a.Task
	var lastStatus *a2a.TaskStatus

	for event := range consumer.ConsumeAll(ctx) {
		switch e := event.(type) {
		case *a2a.Task:
			task = e.Clone()
		case *a2a.Message:
			if task != nil {
				task.History = append(task.History, e)
			}
		case *a2a.TaskStatusUpdateEvent:
			status := e.Status
			lastStatus = &status
		case *a2a.TaskArtifactUpdateEvent:
			if task != nil {
				task.Artifacts = append(task.Artifacts, e.Artifact)
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNoTaskSnapshot
	}
	if lastStatus != nil {
		task.Status = *lastStatus
	}
	return task, nil
}
