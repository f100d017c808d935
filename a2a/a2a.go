// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package a2a provides the data model for the Agent-to-Agent (A2A) protocol:
// messages, tasks, artifacts, progress events, and the agent card.
package a2a

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaskState represents the lifecycle state of a Task.
type TaskState string

const (
	// TaskStateSubmitted indicates the task has been received and recorded.
	TaskStateSubmitted TaskState = "submitted"

	// TaskStateWorking indicates the task is being worked on.
	TaskStateWorking TaskState = "working"

	// TaskStateInputRequired indicates the task is paused waiting for input.
	TaskStateInputRequired TaskState = "input-required"

	// TaskStateCompleted indicates the task finished successfully.
	TaskStateCompleted TaskState = "completed"

	// TaskStateCanceled indicates the task was canceled.
	TaskStateCanceled TaskState = "canceled"

	// TaskStateFailed indicates the task terminated with an error.
	TaskStateFailed TaskState = "failed"
)

// IsTerminalState reports whether state admits no further transitions.
func IsTerminalState(state TaskState) bool {
	return state == TaskStateCompleted || state == TaskStateCanceled || state == TaskStateFailed
}

// Role represents the author of a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// PartKind discriminates the payload carried by a Part.
type PartKind string

const (
	PartKindText PartKind = "text"
	PartKindData PartKind = "data"
	PartKindFile PartKind = "file"
)

// Part is one unit of message or artifact content. Exactly one payload
// field is populated, matching Kind.
type Part struct {
	Kind PartKind       `json:"kind"`
	Text string         `json:"text,omitempty"`
	Data map[string]any `json:"data,omitempty"`
	File *FileContent   `json:"file,omitempty"`
}

// FileContent carries file data either inline or by reference.
type FileContent struct {
	Name     string `json:"name,omitempty"`
	MIMEType string `json:"mimeType,omitempty"`
	Bytes    string `json:"bytes,omitempty"`
	URI      string `json:"uri,omitempty"`
}

// NewTextPart creates a Part of kind "text".
func NewTextPart(text string) Part {
	return Part{
		Kind: PartKindText,
		Text: text,
	}
}

// NewDataPart creates a Part of kind "data".
func NewDataPart(data map[string]any) Part {
	return Part{
		Kind: PartKindData,
		Data: data,
	}
}

// Validate ensures the Part payload matches its kind.
func (p Part) Validate() error {
	switch p.Kind {
	case PartKindText:
		if p.Text == "" {
			return fmt.Errorf("text part text cannot be empty")
		}
	case PartKindData:
		if p.Data == nil {
			return fmt.Errorf("data part data cannot be nil")
		}
	case PartKindFile:
		if p.File == nil {
			return fmt.Errorf("file part file cannot be nil")
		}
	default:
		return fmt.Errorf("invalid part kind: %s", p.Kind)
	}
	return nil
}

// Message is a single unit of conversation content, authored by either the
// user or the agent. Messages are immutable once created.
type Message struct {
	Kind      string `json:"kind"`
	MessageID string `json:"messageId"`
	Role      Role   `json:"role"`
	Parts     []Part `json:"parts"`
	TaskID    string `json:"taskId,omitempty"`
	ContextID string `json:"contextId,omitempty"`
}

// Validate ensures the Message is well formed.
func (m *Message) Validate() error {
	if m.Role != RoleUser && m.Role != RoleAgent {
		return fmt.Errorf("invalid message role: %s", m.Role)
	}
	if m.MessageID == "" {
		return fmt.Errorf("message ID cannot be empty")
	}
	if len(m.Parts) == 0 {
		return fmt.Errorf("message must contain at least one part")
	}
	for i, part := range m.Parts {
		if err := part.Validate(); err != nil {
			return fmt.Errorf("message part at index %d is invalid: %w", i, err)
		}
	}
	return nil
}

// Text joins the text content of all text parts with newlines.
func (m *Message) Text() string {
	var out string
	for _, part := range m.Parts {
		if part.Kind != PartKindText {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += part.Text
	}
	return out
}

// NewAgentTextMessage creates an agent-authored message carrying a single
// text part, with a generated message ID.
func NewAgentTextMessage(text, contextID, taskID string) *Message {
	return &Message{
		Kind:      MessageEventKind,
		MessageID: uuid.NewString(),
		Role:      RoleAgent,
		Parts:     []Part{NewTextPart(text)},
		TaskID:    taskID,
		ContextID: contextID,
	}
}

// TaskStatus is the state of a task at a point in time.
type TaskStatus struct {
	State TaskState `json:"state"`

	// Timestamp is the RFC3339 time the status was recorded. Non-decreasing
	// across successive statuses of the same task.
	Timestamp string `json:"timestamp,omitempty"`

	// Message is an optional human-readable reason for the transition.
	Message string `json:"message,omitempty"`
}

// NewTaskStatus creates a TaskStatus stamped with the current time.
func NewTaskStatus(state TaskState) TaskStatus {
	return TaskStatus{
		State:     state,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// Task is the unit of work tracked by the server. History is append-only
// and status only advances along the task state machine.
type Task struct {
	Kind      string      `json:"kind"`
	ID        string      `json:"id"`
	ContextID string      `json:"contextId,omitempty"`
	Status    TaskStatus  `json:"status"`
	History   []*Message  `json:"history,omitempty"`
	Artifacts []*Artifact `json:"artifacts,omitempty"`
}

// Validate ensures the Task is well formed.
func (t *Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task ID cannot be empty")
	}
	for i, message := range t.History {
		if message == nil {
			return fmt.Errorf("history message at index %d cannot be nil", i)
		}
		if err := message.Validate(); err != nil {
			return fmt.Errorf("history message at index %d is invalid: %w", i, err)
		}
	}
	for i, artifact := range t.Artifacts {
		if artifact == nil {
			return fmt.Errorf("artifact at index %d cannot be nil", i)
		}
		if err := artifact.Validate(); err != nil {
			return fmt.Errorf("artifact at index %d is invalid: %w", i, err)
		}
	}
	return nil
}

// Clone returns a deep-enough copy of the task. Messages and artifacts are
// immutable once created, so sharing them between copies is safe; the
// history and artifact slices themselves are copied.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	clone := &Task{
		Kind:      t.Kind,
		ID:        t.ID,
		ContextID: t.ContextID,
		Status:    t.Status,
	}
	if t.History != nil {
		clone.History = make([]*Message, len(t.History))
		copy(clone.History, t.History)
	}
	if t.Artifacts != nil {
		clone.Artifacts = make([]*Artifact, len(t.Artifacts))
		copy(clone.Artifacts, t.Artifacts)
	}
	return clone
}

// NewTask creates a Task in the submitted state with the inbound message as
// the first history entry. Missing task and context IDs are generated.
func NewTask(message *Message, taskID, contextID string) (*Task, error) {
	if message == nil {
		return nil, fmt.Errorf("message cannot be nil")
	}
	if err := message.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request message: %w", err)
	}

	if taskID == "" {
		taskID = uuid.NewString()
	}
	if contextID == "" {
		contextID = uuid.NewString()
	}

	return &Task{
		Kind:      TaskEventKind,
		ID:        taskID,
		ContextID: contextID,
		Status:    NewTaskStatus(TaskStateSubmitted),
		History:   []*Message{message},
	}, nil
}

// Artifact is an identified bundle of output content attached to a task,
// immutable once emitted.
type Artifact struct {
	ArtifactID string `json:"artifactId"`
	Name       string `json:"name,omitempty"`
	Parts      []Part `json:"parts"`
}

// Validate ensures the Artifact is well formed.
func (a *Artifact) Validate() error {
	if a.ArtifactID == "" {
		return fmt.Errorf("artifact ID cannot be empty")
	}
	if len(a.Parts) == 0 {
		return fmt.Errorf("artifact must contain at least one part")
	}
	for i, part := range a.Parts {
		if err := part.Validate(); err != nil {
			return fmt.Errorf("artifact part at index %d is invalid: %w", i, err)
		}
	}
	return nil
}
