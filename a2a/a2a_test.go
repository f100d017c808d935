// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newUserTextMessage(text string) *Message {
	return &Message{
		Kind:      MessageEventKind,
		MessageID: "msg-1",
		Role:      RoleUser,
		Parts:     []Part{NewTextPart(text)},
	}
}

func TestNewTask(t *testing.T) {
	message := newUserTextMessage("hi")

	task, err := NewTask(message, "task-1", "ctx-1")
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}

	if task.ID != "task-1" {
		t.Errorf("task.ID = %q, want %q", task.ID, "task-1")
	}
	if task.ContextID != "ctx-1" {
		t.Errorf("task.ContextID = %q, want %q", task.ContextID, "ctx-1")
	}
	if task.Kind != TaskEventKind {
		t.Errorf("task.Kind = %q, want %q", task.Kind, TaskEventKind)
	}
	if task.Status.State != TaskStateSubmitted {
		t.Errorf("task.Status.State = %q, want %q", task.Status.State, TaskStateSubmitted)
	}
	if task.Status.Timestamp == "" {
		t.Error("task.Status.Timestamp is empty")
	}
	if len(task.History) != 1 || task.History[0] != message {
		t.Errorf("task.History = %v, want the inbound message as sole entry", task.History)
	}
}

func TestNewTaskGeneratesIDs(t *testing.T) {
	task, err := NewTask(newUserTextMessage("hi"), "", "")
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	if task.ID == "" {
		t.Error("task.ID not generated")
	}
	if task.ContextID == "" {
		t.Error("task.ContextID not generated")
	}
}

func TestNewTaskInvalidMessage(t *testing.T) {
	if _, err := NewTask(nil, "", ""); err == nil {
		t.Error("NewTask(nil) succeeded, want error")
	}
	if _, err := NewTask(&Message{}, "", ""); err == nil {
		t.Error("NewTask with empty message succeeded, want error")
	}
}

func TestMessageValidate(t *testing.T) {
	tests := []struct {
		name    string
		message *Message
		wantErr bool
	}{
		{
			name:    "valid",
			message: newUserTextMessage("hello"),
		},
		{
			name: "missing message ID",
			message: &Message{
				Role:  RoleUser,
				Parts: []Part{NewTextPart("hello")},
			},
			wantErr: true,
		},
		{
			name: "invalid role",
			message: &Message{
				MessageID: "msg-1",
				Role:      Role("observer"),
				Parts:     []Part{NewTextPart("hello")},
			},
			wantErr: true,
		},
		{
			name: "no parts",
			message: &Message{
				MessageID: "msg-1",
				Role:      RoleUser,
			},
			wantErr: true,
		},
		{
			name: "part payload mismatch",
			message: &Message{
				MessageID: "msg-1",
				Role:      RoleUser,
				Parts:     []Part{{Kind: PartKindText}},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.message.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPartValidate(t *testing.T) {
	tests := []struct {
		name    string
		part    Part
		wantErr bool
	}{
		{name: "text", part: NewTextPart("hi")},
		{name: "data", part: NewDataPart(map[string]any{"k": "v"})},
		{name: "file", part: Part{Kind: PartKindFile, File: &FileContent{Name: "a.txt"}}},
		{name: "empty text", part: Part{Kind: PartKindText}, wantErr: true},
		{name: "nil data", part: Part{Kind: PartKindData}, wantErr: true},
		{name: "nil file", part: Part{Kind: PartKindFile}, wantErr: true},
		{name: "unknown kind", part: Part{Kind: PartKind("audio")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.part.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMessageText(t *testing.T) {
	message := &Message{
		MessageID: "msg-1",
		Role:      RoleUser,
		Parts: []Part{
			NewTextPart("first"),
			NewDataPart(map[string]any{"skip": true}),
			NewTextPart("second"),
		},
	}
	want := "first\nsecond"
	if got := message.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestNewAgentTextMessage(t *testing.T) {
	message := NewAgentTextMessage("hello", "ctx-1", "task-1")

	if err := message.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if message.Role != RoleAgent {
		t.Errorf("message.Role = %q, want %q", message.Role, RoleAgent)
	}
	if message.TaskID != "task-1" || message.ContextID != "ctx-1" {
		t.Errorf("message IDs = (%q, %q), want (task-1, ctx-1)", message.TaskID, message.ContextID)
	}
	if got := message.Text(); got != "hello" {
		t.Errorf("Text() = %q, want %q", got, "hello")
	}
}

func TestTaskClone(t *testing.T) {
	task, err := NewTask(newUserTextMessage("hi"), "task-1", "ctx-1")
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}

	clone := task.Clone()
	if diff := cmp.Diff(task, clone); diff != "" {
		t.Fatalf("clone differs (-want +got):\n%s", diff)
	}

	clone.History = append(clone.History, NewAgentTextMessage("reply", "ctx-1", "task-1"))
	clone.Status.State = TaskStateCompleted

	if len(task.History) != 1 {
		t.Errorf("original history grew to %d entries", len(task.History))
	}
	if task.Status.State != TaskStateSubmitted {
		t.Errorf("original status mutated to %q", task.Status.State)
	}
}

func TestIsTerminalState(t *testing.T) {
	terminal := []TaskState{TaskStateCompleted, TaskStateCanceled, TaskStateFailed}
	for _, state := range terminal {
		if !IsTerminalState(state) {
			t.Errorf("IsTerminalState(%q) = false, want true", state)
		}
	}
	nonTerminal := []TaskState{TaskStateSubmitted, TaskStateWorking, TaskStateInputRequired}
	for _, state := range nonTerminal {
		if IsTerminalState(state) {
			t.Errorf("IsTerminalState(%q) = true, want false", state)
		}
	}
}

func TestTaskStatusTimestampFormat(t *testing.T) {
	status := NewTaskStatus(TaskStateWorking)
	if !strings.HasSuffix(status.Timestamp, "Z") {
		t.Errorf("Timestamp = %q, want UTC RFC3339", status.Timestamp)
	}
}
