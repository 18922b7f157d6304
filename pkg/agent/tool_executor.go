package agent

import (
	"context"
	"fmt"
)

// ToolExecutor abstracts tool execution for iteration controllers.
// The agent sees only names, argument schemas, and responses; the real
// implementation lives in pkg/tools and is swappable for tests.
type ToolExecutor interface {
	// Execute runs a single tool call and returns the result.
	// Tool-level failures come back as ToolResult{IsError: true}, not as a
	// Go error — the loop surfaces them as observations so the model can
	// self-correct. A Go error means infrastructure failure.
	Execute(ctx context.Context, call ToolCall) (*ToolResult, error)

	// ListTools returns available tool definitions for the current execution.
	ListTools(ctx context.Context) ([]ToolDefinition, error)

	// Close releases resources. No-op for StubToolExecutor.
	Close() error
}

// ToolResult represents the output of a tool execution.
type ToolResult struct {
	CallID  string // Matches the ToolCall.ID
	Name    string
	Content string // Tool output (JSON text)
	IsError bool
}

// StubToolExecutor returns canned responses for testing.
type StubToolExecutor struct {
	tools     []ToolDefinition
	responses map[string]string // tool name -> canned content
}

// NewStubToolExecutor creates a stub executor with the given tool definitions.
func NewStubToolExecutor(tools []ToolDefinition, responses map[string]string) *StubToolExecutor {
	return &StubToolExecutor{tools: tools, responses: responses}
}

func (s *StubToolExecutor) Execute(_ context.Context, call ToolCall) (*ToolResult, error) {
	content, ok := s.responses[call.Name]
	if !ok {
		content = fmt.Sprintf("[stub] Tool %q called with args: %s", call.Name, call.Arguments)
	}
	return &ToolResult{
		CallID:  call.ID,
		Name:    call.Name,
		Content: content,
	}, nil
}

func (s *StubToolExecutor) ListTools(_ context.Context) ([]ToolDefinition, error) {
	return s.tools, nil
}

func (s *StubToolExecutor) Close() error { return nil }
