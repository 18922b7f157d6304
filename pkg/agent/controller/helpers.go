// Package controller implements the bounded ReAct iteration loop that
// drives the LLM against the assessment tool surface.
package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/skillforge/skillforge/pkg/agent"
)

// collectResponse drains a Generate stream into a single LLMResponse.
// An ErrorChunk anywhere in the stream fails the whole call.
func collectResponse(ctx context.Context, client agent.LLMClient, input *agent.GenerateInput) (*agent.LLMResponse, error) {
	stream, err := client.Generate(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("LLM Generate failed: %w", err)
	}

	resp := &agent.LLMResponse{}
	for {
		select {
		case chunk, ok := <-stream:
			if !ok {
				if resp.Text == "" && resp.Thinking == "" {
					return nil, fmt.Errorf("LLM stream closed with no content")
				}
				return resp, nil
			}
			switch c := chunk.(type) {
			case *agent.TextChunk:
				resp.Text += c.Content
			case *agent.ThinkingChunk:
				resp.Thinking += c.Content
			case *agent.UsageChunk:
				resp.Usage.Add(agent.TokenUsage{
					InputTokens:  int(c.InputTokens),
					OutputTokens: int(c.OutputTokens),
					TotalTokens:  int(c.TotalTokens),
				})
			case *agent.ErrorChunk:
				return nil, fmt.Errorf("LLM error (%s): %s", c.Code, c.Message)
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// buildToolNameSet builds a lookup set from tool definitions.
func buildToolNameSet(tools []agent.ToolDefinition) map[string]bool {
	set := make(map[string]bool, len(tools))
	for _, t := range tools {
		set[t.Name] = true
	}
	return set
}

// generateCallID creates a unique ID for a tool call.
func generateCallID() string {
	return "call-" + uuid.New().String()
}

// isTimeoutError reports whether err is a context deadline error.
func isTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
