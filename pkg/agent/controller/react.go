package controller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillforge/skillforge/pkg/agent"
)

// ReActController implements the Reason + Act loop with text-based tool
// calling: every tool call is followed by its observation before the next
// thought, and the run ends with a Final Answer block.
type ReActController struct{}

// NewReActController creates a new ReAct controller.
func NewReActController() *ReActController {
	return &ReActController{}
}

// Run executes the ReAct iteration loop.
// Returns (*RunResult, nil) on completion — check Result.Status and
// Result.Error for agent-level failures. Returns (nil, error) only for
// infrastructure failures where no meaningful result exists.
func (c *ReActController) Run(ctx context.Context, execCtx *agent.ExecutionContext) (*agent.RunResult, error) {
	maxIter := execCtx.Config.MaxIterations
	totalUsage := agent.TokenUsage{}
	state := &agent.IterationState{MaxIterations: maxIter}
	transcript := &agent.Transcript{}

	tools, err := execCtx.ToolExecutor.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	toolNames := buildToolNameSet(tools)

	if execCtx.PromptBuilder == nil {
		return nil, fmt.Errorf("PromptBuilder is nil: cannot build ReAct messages")
	}
	messages := execCtx.PromptBuilder.BuildReActMessages(execCtx, tools)
	transcript.Messages = append(transcript.Messages, messages...)

	appendMessage := func(role, content string) {
		msg := agent.ConversationMessage{Role: role, Content: content}
		messages = append(messages, msg)
		transcript.AppendMessage(msg)
	}

	for iteration := 0; iteration < maxIter; iteration++ {
		state.CurrentIteration = iteration + 1

		// Cancellation is checked at iteration boundaries.
		if err := ctx.Err(); err != nil {
			return &agent.RunResult{
				Status:     agent.RunStatusCancelled,
				Transcript: transcript,
				Error:      err,
				TokensUsed: totalUsage,
			}, nil
		}

		if state.ShouldAbortOnTimeouts() {
			return &agent.RunResult{
				Status:     agent.RunStatusFailed,
				Transcript: transcript,
				Error:      fmt.Errorf("aborted after %d consecutive LLM timeouts: %s", agent.MaxConsecutiveTimeouts, state.LastErrorMessage),
				TokensUsed: totalUsage,
			}, nil
		}

		iterCtx, iterCancel := context.WithTimeout(ctx, execCtx.Config.IterationTimeout)
		resp, err := collectResponse(iterCtx, execCtx.LLMClient, &agent.GenerateInput{
			SessionID: execCtx.SessionID,
			Messages:  messages,
			Config:    execCtx.Config.LLM,
		})
		iterCancel()

		if err != nil {
			if ctx.Err() != nil {
				return &agent.RunResult{
					Status:     agent.RunStatusCancelled,
					Transcript: transcript,
					Error:      ctx.Err(),
					TokensUsed: totalUsage,
				}, nil
			}
			state.RecordFailure(err.Error(), isTimeoutError(err))
			appendMessage(agent.RoleUser, FormatLLMErrorObservation(err))
			continue
		}

		totalUsage.Add(resp.Usage)
		appendMessage(agent.RoleAssistant, resp.Text)

		parsed := ParseResponse(resp.Text)
		state.RecordSuccess()

		switch {
		case parsed.IsFinalAnswer:
			return &agent.RunResult{
				Status:      agent.RunStatusCompleted,
				FinalAnswer: parsed.FinalAnswer,
				Transcript:  transcript,
				TokensUsed:  totalUsage,
			}, nil

		case parsed.HasAction && !parsed.IsUnknownTool:
			if !toolNames[parsed.Action] {
				observation := FormatUnknownToolError(
					fmt.Sprintf("Unknown tool '%s'", parsed.Action), tools)
				appendMessage(agent.RoleUser, observation)
				break
			}
			c.executeTool(ctx, execCtx, parsed, state, transcript, appendMessage)

		case parsed.IsUnknownTool:
			appendMessage(agent.RoleUser, FormatUnknownToolError(parsed.ErrorMessage, tools))

		default:
			appendMessage(agent.RoleUser, FormatErrorFeedback(parsed))
		}
	}

	return c.forceConclusion(ctx, execCtx, messages, transcript, &totalUsage, state)
}

// executeTool runs one tool call and appends the observation.
func (c *ReActController) executeTool(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	parsed *ParsedResponse,
	state *agent.IterationState,
	transcript *agent.Transcript,
	appendMessage func(role, content string),
) {
	toolCtx, toolCancel := context.WithTimeout(ctx, execCtx.Config.IterationTimeout)
	defer toolCancel()

	result, toolErr := execCtx.ToolExecutor.Execute(toolCtx, agent.ToolCall{
		ID:        generateCallID(),
		Name:      parsed.Action,
		Arguments: parsed.ActionInput,
	})

	if toolErr != nil {
		state.RecordFailure(toolErr.Error(), isTimeoutError(toolErr))
		appendMessage(agent.RoleUser, FormatToolErrorObservation(toolErr))
		return
	}

	transcript.AppendInvocation(agent.ToolInvocation{
		Name:      parsed.Action,
		Arguments: parsed.ActionInput,
		Result:    result,
	})
	appendMessage(agent.RoleUser, FormatObservation(result))
}

// forceConclusion makes one final LLM call asking the model to conclude.
func (c *ReActController) forceConclusion(
	ctx context.Context,
	execCtx *agent.ExecutionContext,
	messages []agent.ConversationMessage,
	transcript *agent.Transcript,
	totalUsage *agent.TokenUsage,
	state *agent.IterationState,
) (*agent.RunResult, error) {
	if state.LastInteractionFailed {
		return &agent.RunResult{
			Status: agent.RunStatusFailed,
			Error: fmt.Errorf("max iterations (%d) reached with last interaction failed: %s",
				state.MaxIterations, state.LastErrorMessage),
			Transcript: transcript,
			TokensUsed: *totalUsage,
		}, nil
	}

	conclusionPrompt := execCtx.PromptBuilder.BuildForcedConclusionPrompt(state.CurrentIteration)
	msg := agent.ConversationMessage{Role: agent.RoleUser, Content: conclusionPrompt}
	messages = append(messages, msg)
	transcript.AppendMessage(msg)

	conclusionCtx, cancel := context.WithTimeout(ctx, execCtx.Config.IterationTimeout)
	defer cancel()

	resp, err := collectResponse(conclusionCtx, execCtx.LLMClient, &agent.GenerateInput{
		SessionID: execCtx.SessionID,
		Messages:  messages,
		Config:    execCtx.Config.LLM,
	})
	if err != nil {
		return &agent.RunResult{
			Status:     agent.RunStatusFailed,
			Error:      fmt.Errorf("forced conclusion LLM call failed: %w", err),
			Transcript: transcript,
			TokensUsed: *totalUsage,
		}, nil
	}

	totalUsage.Add(resp.Usage)
	transcript.AppendMessage(agent.ConversationMessage{Role: agent.RoleAssistant, Content: resp.Text})

	parsed := ParseResponse(resp.Text)
	finalAnswer := parsed.FinalAnswer
	if finalAnswer == "" {
		// The model may conclude without the ReAct scaffold; take what we got.
		finalAnswer = resp.Text
		slog.Debug("forced conclusion without ReAct format",
			"session_id", execCtx.SessionID)
	}

	return &agent.RunResult{
		Status:      agent.RunStatusCompleted,
		FinalAnswer: finalAnswer,
		Transcript:  transcript,
		TokensUsed:  *totalUsage,
	}, nil
}
