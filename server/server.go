// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package server implements the A2A HTTP surface: the agent card
// discovery endpoint and the JSON-RPC 2.0 front door for message sending,
// streaming, and task queries.
package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"

	"github.com/go-a2a/agentd/a2a"
	"github.com/go-a2a/agentd/server/event"
	"github.com/go-a2a/agentd/server/execution"
	"github.com/go-a2a/agentd/server/task"
)

// Server exposes one agent over HTTP. It serves the agent card at the
// well-known discovery path and dispatches JSON-RPC requests at the root.
type Server struct {
	card   *a2a.AgentCard
	store  task.Store
	engine *execution.Engine
	logger *slog.Logger

	queueSize int
}

var _ http.Handler = (*Server)(nil)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithQueueSize sets the buffer capacity for per-execution event queues.
func WithQueueSize(size int) Option {
	return func(s *Server) {
		s.queueSize = size
	}
}

// NewServer creates a server for the given agent card, task store and
// execution engine.
func NewServer(card *a2a.AgentCard, store task.Store, engine *execution.Engine, opts ...Option) (*Server, error) {
	if err := card.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.New("store is nil")
	}
	if engine == nil {
		return nil, errors.New("engine is nil")
	}

	s := &Server{
		card:      card,
		store:     store,
		engine:    engine,
		logger:    slog.Default(),
		queueSize: event.DefaultQueueSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ServeHTTP implements [http.Handler].
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == a2a.AgentCardWellKnownPath:
		s.handleAgentCard(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/":
		s.handleJSONRPC(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleAgentCard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.MarshalWrite(w, s.card); err != nil {
		s.logger.ErrorContext(r.Context(), "write agent card", slog.Any("error", err))
	}
}

func (s *Server) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(nil, a2a.NewJSONParseError()))
		return
	}

	var req a2a.JSONRPCRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(nil, a2a.NewJSONParseError()))
		return
	}
	if err := req.Validate(); err != nil {
		s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(req.ID, a2a.NewInvalidRequestError()))
		return
	}

	s.logger.DebugContext(r.Context(), "jsonrpc request", slog.String("method", req.Method), slog.Any("id", req.ID))

	switch req.Method {
	case a2a.MethodMessageSend:
		s.handleMessageSend(w, r, &req)
	case a2a.MethodMessageStream:
		s.handleMessageStream(w, r, &req)
	case a2a.MethodTasksGet:
		s.handleTasksGet(w, r, &req)
	case a2a.MethodTasksList:
		s.handleTasksList(w, r, &req)
	case a2a.MethodTasksCancel:
		s.handleTasksCancel(w, r, &req)
	default:
		s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(req.ID, a2a.NewMethodNotFoundError()))
	}
}

// resolveSendParams parses and validates message/send parameters, filling
// in fresh task and context IDs when the message carries none.
func (s *Server) resolveSendParams(req *a2a.JSONRPCRequest) (*a2a.Message, string, string, *a2a.JSONRPCError) {
	var params a2a.MessageSendParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return nil, "", "", a2a.NewInvalidParamsError()
	}
	if params.Message == nil {
		return nil, "", "", a2a.NewInvalidParamsError()
	}
	if err := params.Message.Validate(); err != nil {
		return nil, "", "", a2a.NewInvalidParamsError()
	}

	taskID := params.Message.TaskID
	if taskID == "" {
		taskID = uuid.NewString()
	}
	contextID := params.Message.ContextID
	if contextID == "" {
		contextID = uuid.NewString()
	}
	return params.Message, taskID, contextID, nil
}

func (s *Server) handleMessageSend(w http.ResponseWriter, r *http.Request, req *a2a.JSONRPCRequest) {
	message, taskID, contextID, rpcErr := s.resolveSendParams(req)
	if rpcErr != nil {
		s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(req.ID, rpcErr))
		return
	}

	queue := event.NewQueue(s.queueSize)
	go func() {
		if err := s.engine.Execute(r.Context(), taskID, contextID, message, queue); err != nil {
			s.logger.ErrorContext(r.Context(), "task execution failed", slog.String("task_id", taskID), slog.Any("error", err))
		}
	}()

	result, err := event.Collect(r.Context(), queue)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "collect events", slog.String("task_id", taskID), slog.Any("error", err))
		s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(req.ID, a2a.NewInternalError()))
		return
	}

	if err := s.store.Save(r.Context(), result); err != nil {
		s.logger.ErrorContext(r.Context(), "save task", slog.String("task_id", taskID), slog.Any("error", err))
		s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(req.ID, a2a.NewInternalError()))
		return
	}

	s.writeResponse(w, r, a2a.NewJSONRPCResponse(req.ID, result))
}

func (s *Server) handleMessageStream(w http.ResponseWriter, r *http.Request, req *a2a.JSONRPCRequest) {
	message, taskID, contextID, rpcErr := s.resolveSendParams(req)
	if rpcErr != nil {
		s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(req.ID, rpcErr))
		return
	}

	queue := event.NewQueue(s.queueSize)
	go func() {
		if err := s.engine.Execute(r.Context(), taskID, contextID, message, queue); err != nil {
			s.logger.ErrorContext(r.Context(), "task execution failed", slog.String("task_id", taskID), slog.Any("error", err))
		}
	}()

	s.relayEvents(w, r, taskID, queue)
}

func (s *Server) handleTasksGet(w http.ResponseWriter, r *http.Request, req *a2a.JSONRPCRequest) {
	var params a2a.TaskQueryParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.ID == "" {
		s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(req.ID, a2a.NewInvalidParamsError()))
		return
	}

	t, err := s.store.Get(r.Context(), params.ID)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(req.ID, a2a.NewTaskNotFoundError()))
			return
		}
		s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(req.ID, a2a.NewInternalError()))
		return
	}

	s.writeResponse(w, r, a2a.NewJSONRPCResponse(req.ID, t))
}

func (s *Server) handleTasksList(w http.ResponseWriter, r *http.Request, req *a2a.JSONRPCRequest) {
	var params a2a.TaskListParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(req.ID, a2a.NewInvalidParamsError()))
			return
		}
	}

	tasks, err := s.store.List(r.Context(), params.Offset, params.Limit)
	if err != nil {
		s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(req.ID, a2a.NewInternalError()))
		return
	}

	s.writeResponse(w, r, a2a.NewJSONRPCResponse(req.ID, tasks))
}

func (s *Server) handleTasksCancel(w http.ResponseWriter, r *http.Request, req *a2a.JSONRPCRequest) {
	var params a2a.TaskIDParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.ID == "" {
		s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(req.ID, a2a.NewInvalidParamsError()))
		return
	}

	t, err := s.store.Cancel(r.Context(), params.ID)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(req.ID, a2a.NewTaskNotFoundError()))
			return
		}
		s.writeResponse(w, r, a2a.NewJSONRPCErrorResponse(req.ID, a2a.NewInternalError()))
		return
	}

	s.writeResponse(w, r, a2a.NewJSONRPCResponse(req.ID, t))
}

func (s *Server) writeResponse(w http.ResponseWriter, r *http.Request, resp *a2a.JSONRPCResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.MarshalWrite(w, resp); err != nil {
		s.logger.ErrorContext(r.Context(), "write jsonrpc response", slog.Any("error", err))
	}
}
