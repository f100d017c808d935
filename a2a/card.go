// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import "fmt"

// AgentCardWellKnownPath is the standard path for retrieving an agent's
// public AgentCard.
//
// Example usage: https://agent.example.com/.well-known/agent.json
const AgentCardWellKnownPath = "/.well-known/agent.json"

// AgentCard is the discovery document describing an agent and its
// capabilities. It is static configuration; the capabilities it advertises
// are a caller-visible promise and must stay consistent with behavior.
type AgentCard struct {
	Name               string            `json:"name"`
	Description        string            `json:"description,omitempty"`
	URL                string            `json:"url"`
	Version            string            `json:"version"`
	Capabilities       AgentCapabilities `json:"capabilities"`
	DefaultInputModes  []string          `json:"defaultInputModes,omitempty"`
	DefaultOutputModes []string          `json:"defaultOutputModes,omitempty"`
	Skills             []AgentSkill      `json:"skills,omitempty"`
}

// AgentCapabilities advertises optional protocol features the agent supports.
type AgentCapabilities struct {
	Streaming              bool `json:"streaming"`
	PushNotifications      bool `json:"pushNotifications"`
	StateTransitionHistory bool `json:"stateTransitionHistory"`
}

// AgentSkill describes a unit of capability the agent can perform.
type AgentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Validate ensures the AgentCard is valid.
func (c *AgentCard) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("agent card name cannot be empty")
	}
	if c.URL == "" {
		return fmt.Errorf("agent card URL cannot be empty")
	}
	if c.Version == "" {
		return fmt.Errorf("agent card version cannot be empty")
	}
	for i, skill := range c.Skills {
		if skill.ID == "" {
			return fmt.Errorf("agent skill at index %d: ID cannot be empty", i)
		}
		if skill.Name == "" {
			return fmt.Errorf("agent skill at index %d: name cannot be empty", i)
		}
	}
	return nil
}
