package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hupe1980/threadmesh"
	"github.com/hupe1980/threadmesh/agent"
	"github.com/hupe1980/threadmesh/core"
	"github.com/hupe1980/threadmesh/provider"
)

// chatRequest is the wire format of POST /api/chat.
type chatRequest struct {
	Message              string            `json:"message"`
	ContextPack          *core.ContextPack `json:"contextPack,omitempty"`
	Agent                string            `json:"agent,omitempty"`
	EnabledAgents        []string          `json:"enabledAgents,omitempty"`
	ConversationMessages []core.Message    `json:"conversationMessages,omitempty"`
	ModelProvider        string            `json:"modelProvider,omitempty"`
}

// chatResponse is the wire format of a successful chat turn.
type chatResponse struct {
	Response     string                  `json:"response"`
	Model        string                  `json:"model"`
	Backend      string                  `json:"backend,omitempty"`
	Agent        string                  `json:"agent,omitempty"`
	TopicSummary string                  `json:"topicSummary,omitempty"`
	AgentResults map[string]agent.Result `json:"agentResults,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// personaInfo is one catalog entry of GET /api/agents.
type personaInfo struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Model       string `json:"model"`
	Description string `json:"description"`
}

type agentsResponse struct {
	Agents  []personaInfo `json:"agents"`
	Default string        `json:"default"`
}

type healthResponse struct {
	Status string `json:"status"`
	Backends
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	// Malformed bodies fall through to the empty-message validation below.
	_ = json.NewDecoder(r.Body).Decode(&req)

	result, err := s.chat.Send(r.Context(), threadmesh.ChatRequest{
		Message:       req.Message,
		Persona:       req.Agent,
		Provider:      req.ModelProvider,
		ContextPack:   req.ContextPack,
		History:       req.ConversationMessages,
		EnabledAgents: req.EnabledAgents,
	})
	if err != nil {
		status := http.StatusInternalServerError
		msg := err.Error()
		switch {
		case errors.Is(err, threadmesh.ErrEmptyMessage):
			status = http.StatusBadRequest
			msg = "No message provided"
		case errors.Is(err, provider.ErrNoProvider):
			msg = "No LLM backend available"
		}
		writeJSON(w, status, errorResponse{Error: msg}, s.logger)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Response:     result.Response,
		Model:        result.Model,
		Backend:      result.Backend,
		Agent:        result.Persona,
		TopicSummary: result.TopicSummary,
		AgentResults: result.AgentResults,
	}, s.logger)
}

func (s *Server) handleAgents(w http.ResponseWriter, _ *http.Request) {
	personas := s.personas.List()
	infos := make([]personaInfo, 0, len(personas))
	for _, p := range personas {
		infos = append(infos, personaInfo{
			Type:        p.ID,
			Name:        p.Name,
			Model:       p.Model,
			Description: p.Description,
		})
	}

	writeJSON(w, http.StatusOK, agentsResponse{
		Agents:  infos,
		Default: s.personas.DefaultID(),
	}, s.logger)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Backends: s.backends,
	}, s.logger)
}
