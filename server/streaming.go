// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/go-a2a/agentd/a2a"
	"github.com/go-a2a/agentd/server/event"
)

// relayEvents streams the execution's event sequence to the client as
// Server-Sent Events, one JSON-encoded event per data frame, flushed
// immediately. The task record is folded along the way and saved when the
// stream ends, whether it finished, failed, or the client went away.
func (s *Server) relayEvents(w http.ResponseWriter, r *http.Request, taskID string, queue *event.Queue) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		s.logger.ErrorContext(r.Context(), "response writer does not support streaming", slog.String("task_id", taskID))
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	var snapshot *a2a.Task
	var lastStatus *a2a.TaskStatus

	defer func() {
		if snapshot == nil {
			return
		}
		if lastStatus != nil {
			snapshot.Status = *lastStatus
		}
		if err := s.store.Save(r.Context(), snapshot); err != nil {
			s.logger.ErrorContext(r.Context(), "save streamed task", slog.String("task_id", taskID), slog.Any("error", err))
		}
	}()

	consumer := event.NewConsumer(queue)
	for e := range consumer.ConsumeAll(r.Context()) {
		switch ev := e.(type) {
		case *a2a.Task:
			snapshot = ev.Clone()
		case *a2a.Message:
			if snapshot != nil {
				snapshot.History = append(snapshot.History, ev)
			}
		case *a2a.TaskStatusUpdateEvent:
			status := ev.Status
			lastStatus = &status
		case *a2a.TaskArtifactUpdateEvent:
			if snapshot != nil {
				snapshot.Artifacts = append(snapshot.Artifacts, ev.Artifact)
			}
		}

		data, err := sonic.ConfigDefault.Marshal(e)
		if err != nil {
			s.logger.ErrorContext(r.Context(), "marshal stream event", slog.String("task_id", taskID), slog.Any("error", err))
			return
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			s.logger.DebugContext(r.Context(), "client disconnected", slog.String("task_id", taskID), slog.Any("error", err))
			return
		}
		flusher.Flush()
	}
}
