// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import "fmt"

// Event kinds as they appear in the wire-level "kind" discriminator.
const (
	TaskEventKind           = "task"
	MessageEventKind        = "message"
	StatusUpdateEventKind   = "status-update"
	ArtifactUpdateEventKind = "artifact-update"
)

// Event is one unit of the ordered progress stream produced by executing a
// task. The order of emission is the protocol's source of truth; consumers
// must not reorder events.
type Event interface {
	EventKind() string
}

// EventKind implements [Event].
func (t *Task) EventKind() string { return TaskEventKind }

// EventKind implements [Event].
func (m *Message) EventKind() string { return MessageEventKind }

// TaskStatusUpdateEvent signals a task state transition. Final marks the
// terminal update of an execution: no further events follow it.
type TaskStatusUpdateEvent struct {
	Kind      string     `json:"kind"`
	TaskID    string     `json:"taskId"`
	ContextID string     `json:"contextId,omitempty"`
	Status    TaskStatus `json:"status"`
	Final     bool       `json:"final"`
}

var _ Event = (*TaskStatusUpdateEvent)(nil)

// EventKind implements [Event].
func (e *TaskStatusUpdateEvent) EventKind() string { return StatusUpdateEventKind }

// NewTaskStatusUpdateEvent creates a status update event stamped with the
// current time.
func NewTaskStatusUpdateEvent(taskID, contextID string, state TaskState, final bool) *TaskStatusUpdateEvent {
	return &TaskStatusUpdateEvent{
		Kind:      StatusUpdateEventKind,
		TaskID:    taskID,
		ContextID: contextID,
		Status:    NewTaskStatus(state),
		Final:     final,
	}
}

// TaskArtifactUpdateEvent attaches a produced artifact to a task.
type TaskArtifactUpdateEvent struct {
	Kind      string    `json:"kind"`
	TaskID    string    `json:"taskId"`
	ContextID string    `json:"contextId,omitempty"`
	Artifact  *Artifact `json:"artifact"`
}

var _ Event = (*TaskArtifactUpdateEvent)(nil)

// EventKind implements [Event].
func (e *TaskArtifactUpdateEvent) EventKind() string { return ArtifactUpdateEventKind }

// NewTaskArtifactUpdateEvent creates an artifact update event.
func NewTaskArtifactUpdateEvent(taskID, contextID string, artifact *Artifact) *TaskArtifactUpdateEvent {
	return &TaskArtifactUpdateEvent{
		Kind:      ArtifactUpdateEventKind,
		TaskID:    taskID,
		ContextID: contextID,
		Artifact:  artifact,
	}
}

// IsFinalEvent reports whether event terminates an execution's stream.
// Only a status update carrying the final flag ends a stream.
func IsFinalEvent(event Event) bool {
	e, ok := event.(*TaskStatusUpdateEvent)
	return ok && e.Final
}

// ValidateEvent validates any of the concrete event types.
func ValidateEvent(event Event) error {
	switch e := event.(type) {
	case *Task:
		return e.Validate()
	case *Message:
		return e.Validate()
	case *TaskStatusUpdateEvent:
		if e.TaskID == "" {
			return fmt.Errorf("status update event task ID cannot be empty")
		}
		return nil
	case *TaskArtifactUpdateEvent:
		if e.TaskID == "" {
			return fmt.Errorf("artifact update event task ID cannot be empty")
		}
		if e.Artifact == nil {
			return fmt.Errorf("artifact update event artifact cannot be nil")
		}
		return e.Artifact.Validate()
	default:
		return fmt.Errorf("unknown event type %T", event)
	}
}
