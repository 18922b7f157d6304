// Package tools implements the assessment tool surface exposed to the
// generation agent: profile lookup, template search, difficulty vocabulary,
// quality validation, idempotent question persistence, and single-answer
// scoring. Tool-level failures are returned as structured {"error": CODE}
// results, never as Go errors, so the ReAct loop can surface them as
// observations.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/skillforge/skillforge/ent"
	"github.com/skillforge/skillforge/pkg/agent"
)

// Tool error codes surfaced to the agent.
const (
	ErrCodeBadInput        = "BAD_INPUT"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeSessionTerminal = "SESSION_TERMINAL"
	ErrCodeStoreFailure    = "STORE_FAILURE"
)

// handler executes one tool call. args is the raw Action Input text.
type handler func(ctx context.Context, args json.RawMessage) (any, *toolError)

// toolError is a structured tool-level failure.
type toolError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

func errBadInput(format string, a ...any) *toolError {
	return &toolError{Code: ErrCodeBadInput, Message: fmt.Sprintf(format, a...)}
}

func errNotFound(format string, a ...any) *toolError {
	return &toolError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, a...)}
}

func errStore(err error) *toolError {
	return &toolError{Code: ErrCodeStoreFailure, Message: err.Error()}
}

// Registry implements agent.ToolExecutor over the six assessment tools.
// A registry is bound to one generation run: it carries the session and user
// identity so tools never trust IDs from LLM-provided arguments.
type Registry struct {
	client    *ent.Client
	sessionID string
	userID    string
	surveyID  string

	handlers    map[string]handler
	definitions []agent.ToolDefinition
}

// NewRegistry creates a tool registry bound to one session.
func NewRegistry(client *ent.Client, sessionID, userID, surveyID string) *Registry {
	r := &Registry{
		client:    client,
		sessionID: sessionID,
		userID:    userID,
		surveyID:  surveyID,
	}
	r.register()
	return r
}

func (r *Registry) register() {
	r.handlers = map[string]handler{
		"get_user_profile":          r.getUserProfile,
		"search_question_templates": r.searchQuestionTemplates,
		"get_difficulty_keywords":   r.getDifficultyKeywords,
		"validate_question_quality": r.validateQuestionQuality,
		"save_generated_question":   r.saveGeneratedQuestion,
		"score_and_explain":         r.scoreAndExplain,
	}
	r.definitions = toolDefinitions()
}

// Execute runs a single tool call.
func (r *Registry) Execute(ctx context.Context, call agent.ToolCall) (*agent.ToolResult, error) {
	h, ok := r.handlers[call.Name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", call.Name)
	}

	args := json.RawMessage(call.Arguments)
	payload, terr := h(ctx, args)
	if terr != nil {
		content, _ := json.Marshal(terr)
		slog.Debug("tool returned error result",
			"tool", call.Name, "code", terr.Code, "session_id", r.sessionID)
		return &agent.ToolResult{
			CallID:  call.ID,
			Name:    call.Name,
			Content: string(content),
			IsError: true,
		}, nil
	}

	content, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s result: %w", call.Name, err)
	}
	return &agent.ToolResult{
		CallID:  call.ID,
		Name:    call.Name,
		Content: string(content),
	}, nil
}

// ListTools returns the tool definitions for prompt injection.
func (r *Registry) ListTools(_ context.Context) ([]agent.ToolDefinition, error) {
	return r.definitions, nil
}

// Close is a no-op; the ent client is owned by the caller.
func (r *Registry) Close() error { return nil }

// decodeArgs unmarshals args into dst, tolerating empty input for tools
// whose parameters are all optional.
func decodeArgs(args json.RawMessage, dst any) *toolError {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, dst); err != nil {
		return errBadInput("arguments are not valid JSON: %s", err)
	}
	return nil
}
