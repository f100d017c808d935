// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Command agentd runs a minimal A2A agent server: it serves an agent card
// for discovery and answers every message with a configurable fixed reply.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/go-a2a/agentd/a2a"
	"github.com/go-a2a/agentd/server"
	"github.com/go-a2a/agentd/server/execution"
	"github.com/go-a2a/agentd/server/task"
)

func main() {
	if err := run(); err != nil {
		slog.Error("agentd exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("agent.name", "Hello World Agent")
	v.SetDefault("agent.description", "Replies to every message with a greeting")
	v.SetDefault("agent.version", "0.1.0")
	v.SetDefault("agent.url", "http://localhost:8080/")
	v.SetDefault("responder.reply", "Hello World")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("AGENTD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("agentd")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/agentd")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log.level"))); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	card := &a2a.AgentCard{
		Name:        v.GetString("agent.name"),
		Description: v.GetString("agent.description"),
		URL:         v.GetString("agent.url"),
		Version:     v.GetString("agent.version"),
		Capabilities: a2a.AgentCapabilities{
			Streaming: true,
		},
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills: []a2a.AgentSkill{
			{
				ID:          "hello_world",
				Name:        "Hello World",
				Description: "Returns a fixed greeting",
				Tags:        []string{"greeting"},
			},
		},
	}

	responder := execution.StaticResponder{Reply: v.GetString("responder.reply")}
	engine := execution.NewEngine(responder, logger)
	store := task.NewInMemoryStore()

	srv, err := server.NewServer(card, store, engine, server.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	var handler http.Handler = srv
	handler = server.WithCORS(handler)
	handler = server.WithRequestLogging(logger, handler)
	handler = server.WithRecovery(logger, handler)

	httpServer := &http.Server{
		Addr:              v.GetString("addr"),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("agentd listening", slog.String("addr", httpServer.Addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
