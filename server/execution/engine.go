// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package execution

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-a2a/agentd/a2a"
	"github.com/go-a2a/agentd/server/event"
)

// Engine runs a single task execution: it owns every lifecycle transition
// and emits them to the queue as an ordered event sequence. For a
// successful run the sequence is exactly: the initial task snapshot, a
// working status update, the agent's reply message, and a final completed
// status update.
type Engine struct {
	responder Responder
	logger    *slog.Logger
}

// NewEngine creates an engine driving the given responder.
func NewEngine(responder Responder, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		responder: responder,
		logger:    logger,
	}
}

// Execute runs the task execution for an inbound message and emits the
// resulting event sequence to the queue. The queue is closed when Execute
// returns, so consumers always observe a finite stream. If the responder
// fails, a final failed status update carrying the reason is emitted and
// the responder's error is returned.
func (e *Engine) Execute(ctx context.Context, taskID, contextID string, message *a2a.Message, queue *event.Queue) error {
	defer queue.Close()

	task, err := a2a.NewTask(message, taskID, contextID)
	if err != nil {
		return fmt.Errorf("build task snapshot: %w", err)
	}

	if err := queue.Enqueue(ctx, task); err != nil {
		return fmt.Errorf("enqueue task snapshot: %w", err)
	}

	working := a2a.NewTaskStatusUpdateEvent(taskID, contextID, a2a.TaskStateWorking, false)
	if err := queue.Enqueue(ctx, working); err != nil {
		return fmt.Errorf("enqueue working status: %w", err)
	}

	reply, err := e.responder.Invoke(ctx, message)
	if err != nil {
		e.logger.ErrorContext(ctx, "responder failed", slog.String("task_id", taskID), slog.Any("error", err))

		failed := a2a.NewTaskStatusUpdateEvent(taskID, contextID, a2a.TaskStateFailed, true)
		failed.Status.Message = err.Error()
		if enqErr := queue.Enqueue(ctx, failed); enqErr != nil {
			return fmt.Errorf("enqueue failed status: %w", enqErr)
		}
		return fmt.Errorf("invoke responder: %w", err)
	}

	agentMessage := a2a.NewAgentTextMessage(reply, contextID, taskID)
	if err := queue.Enqueue(ctx, agentMessage); err != nil {
		return fmt.Errorf("enqueue agent message: %w", err)
	}

	completed := a2a.NewTaskStatusUpdateEvent(taskID, contextID, a2a.TaskStateCompleted, true)
	if err := queue.Enqueue(ctx, completed); err != nil {
		return fmt.Errorf("enqueue completed status: %w", err)
	}

	e.logger.DebugContext(ctx, "task execution completed", slog.String("task_id", taskID), slog.String("context_id", contextID))

	return nil
}
