package controller

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillforge/skillforge/pkg/agent"
)

// scriptedClient replays a fixed sequence of responses, one per Generate call.
type scriptedClient struct {
	entries []scriptEntry
	calls   int
	inputs  []*agent.GenerateInput
}

type scriptEntry struct {
	text string
	err  error
}

func (c *scriptedClient) Generate(_ context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	c.inputs = append(c.inputs, input)
	if c.calls >= len(c.entries) {
		return nil, fmt.Errorf("script exhausted after %d calls", c.calls)
	}
	entry := c.entries[c.calls]
	c.calls++
	if entry.err != nil {
		return nil, entry.err
	}
	ch := make(chan agent.Chunk, 2)
	ch <- &agent.TextChunk{Content: entry.text}
	ch <- &agent.UsageChunk{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}
	close(ch)
	return ch, nil
}

func (c *scriptedClient) Close() error { return nil }

type stubPromptBuilder struct{}

func (stubPromptBuilder) BuildReActMessages(_ *agent.ExecutionContext, _ []agent.ToolDefinition) []agent.ConversationMessage {
	return []agent.ConversationMessage{
		{Role: agent.RoleSystem, Content: "You generate assessment questions."},
		{Role: agent.RoleUser, Content: "Generate the round."},
	}
}

func (stubPromptBuilder) BuildForcedConclusionPrompt(int) string {
	return "You have reached the iteration limit. Provide your Final Answer now."
}

var controllerTestTools = []agent.ToolDefinition{
	{Name: "get_user_profile", Description: "Fetch the candidate profile"},
	{Name: "save_generated_question", Description: "Persist one generated question"},
}

func newExecCtx(client agent.LLMClient, maxIter int) *agent.ExecutionContext {
	return &agent.ExecutionContext{
		SessionID: "sess-react-test",
		UserID:    "user-1",
		Count:     3,
		Config: &agent.RunConfig{
			LLM:              &agent.LLMConfig{Model: "test-model", Temperature: 0.3, MaxTokens: 1024},
			MaxIterations:    maxIter,
			IterationTimeout: 2 * time.Second,
		},
		LLMClient:     client,
		ToolExecutor:  agent.NewStubToolExecutor(controllerTestTools, map[string]string{}),
		PromptBuilder: stubPromptBuilder{},
	}
}

func TestReActController_Run(t *testing.T) {
	t.Run("immediate final answer completes", func(t *testing.T) {
		client := &scriptedClient{entries: []scriptEntry{
			{text: "Thought: nothing to do\nFinal Answer: {\"questions\": []}"},
		}}
		execCtx := newExecCtx(client, 5)

		result, err := NewReActController().Run(context.Background(), execCtx)
		require.NoError(t, err)
		assert.Equal(t, agent.RunStatusCompleted, result.Status)
		assert.Equal(t, `{"questions": []}`, result.FinalAnswer)
		assert.Equal(t, 1, client.calls)
		assert.Equal(t, 15, result.TokensUsed.TotalTokens)
	})

	t.Run("tool call records invocation and observation", func(t *testing.T) {
		client := &scriptedClient{entries: []scriptEntry{
			{text: "Thought: saving one\nAction: save_generated_question\nAction Input: {\"ordinal\": 1}"},
			{text: "Final Answer: {\"questions\": []}"},
		}}
		execCtx := newExecCtx(client, 5)
		execCtx.ToolExecutor = agent.NewStubToolExecutor(controllerTestTools, map[string]string{
			"save_generated_question": `{"status": "saved", "ordinal": 1}`,
		})

		result, err := NewReActController().Run(context.Background(), execCtx)
		require.NoError(t, err)
		assert.Equal(t, agent.RunStatusCompleted, result.Status)

		require.Len(t, result.Transcript.Invocations, 1)
		inv := result.Transcript.Invocations[0]
		assert.Equal(t, "save_generated_question", inv.Name)
		assert.Equal(t, `{"ordinal": 1}`, inv.Arguments)
		require.NotNil(t, inv.Result)
		assert.Equal(t, `{"status": "saved", "ordinal": 1}`, inv.Result.Content)

		// The observation went back to the model as a user turn.
		secondCall := client.inputs[1]
		last := secondCall.Messages[len(secondCall.Messages)-1]
		assert.Equal(t, agent.RoleUser, last.Role)
		assert.Contains(t, last.Content, `Observation: {"status": "saved"`)

		assert.Equal(t, 30, result.TokensUsed.TotalTokens)
	})

	t.Run("unlisted tool name gets a corrective observation", func(t *testing.T) {
		client := &scriptedClient{entries: []scriptEntry{
			{text: "Thought: trying\nAction: frobnicate\nAction Input: {}"},
			{text: "Final Answer: done"},
		}}
		execCtx := newExecCtx(client, 5)

		result, err := NewReActController().Run(context.Background(), execCtx)
		require.NoError(t, err)
		assert.Equal(t, agent.RunStatusCompleted, result.Status)
		assert.Empty(t, result.Transcript.Invocations)

		secondCall := client.inputs[1]
		last := secondCall.Messages[len(secondCall.Messages)-1]
		assert.Contains(t, last.Content, "Unknown tool 'frobnicate'")
		assert.Contains(t, last.Content, "save_generated_question")
	})

	t.Run("malformed response gets format feedback and recovers", func(t *testing.T) {
		client := &scriptedClient{entries: []scriptEntry{
			{text: "Here are some great questions I thought of."},
			{text: "Final Answer: {\"questions\": []}"},
		}}
		execCtx := newExecCtx(client, 5)

		result, err := NewReActController().Run(context.Background(), execCtx)
		require.NoError(t, err)
		assert.Equal(t, agent.RunStatusCompleted, result.Status)

		secondCall := client.inputs[1]
		last := secondCall.Messages[len(secondCall.Messages)-1]
		assert.Equal(t, agent.RoleUser, last.Role)
		assert.Contains(t, last.Content, "FORMAT ERROR")
	})

	t.Run("max iterations triggers a forced conclusion", func(t *testing.T) {
		client := &scriptedClient{entries: []scriptEntry{
			{text: "Thought: busy\nAction: get_user_profile\nAction Input: {}"},
			{text: "Thought: wrapping up\nFinal Answer: {\"questions\": []}"},
		}}
		execCtx := newExecCtx(client, 1)

		result, err := NewReActController().Run(context.Background(), execCtx)
		require.NoError(t, err)
		assert.Equal(t, agent.RunStatusCompleted, result.Status)
		assert.Equal(t, `{"questions": []}`, result.FinalAnswer)
		assert.Equal(t, 2, client.calls)

		// The forced-conclusion prompt was appended before the last call.
		lastInput := client.inputs[1]
		prompt := lastInput.Messages[len(lastInput.Messages)-1]
		assert.Contains(t, prompt.Content, "iteration limit")
	})

	t.Run("forced conclusion without scaffold takes raw text", func(t *testing.T) {
		client := &scriptedClient{entries: []scriptEntry{
			{text: "Thought: busy\nAction: get_user_profile\nAction Input: {}"},
			{text: `{"questions": [{"stem": "raw"}]}`},
		}}
		execCtx := newExecCtx(client, 1)

		result, err := NewReActController().Run(context.Background(), execCtx)
		require.NoError(t, err)
		assert.Equal(t, agent.RunStatusCompleted, result.Status)
		assert.Equal(t, `{"questions": [{"stem": "raw"}]}`, result.FinalAnswer)
	})

	t.Run("consecutive timeouts abort the run", func(t *testing.T) {
		client := &scriptedClient{entries: []scriptEntry{
			{err: context.DeadlineExceeded},
			{err: context.DeadlineExceeded},
		}}
		execCtx := newExecCtx(client, 5)

		result, err := NewReActController().Run(context.Background(), execCtx)
		require.NoError(t, err)
		assert.Equal(t, agent.RunStatusFailed, result.Status)
		require.Error(t, result.Error)
		assert.Contains(t, result.Error.Error(), "consecutive LLM timeouts")
		assert.Equal(t, 2, client.calls)
	})

	t.Run("one timeout between successes does not abort", func(t *testing.T) {
		client := &scriptedClient{entries: []scriptEntry{
			{err: context.DeadlineExceeded},
			{text: "Final Answer: recovered"},
		}}
		execCtx := newExecCtx(client, 5)

		result, err := NewReActController().Run(context.Background(), execCtx)
		require.NoError(t, err)
		assert.Equal(t, agent.RunStatusCompleted, result.Status)
		assert.Equal(t, "recovered", result.FinalAnswer)

		// The failure was surfaced to the model before the retry.
		secondCall := client.inputs[1]
		last := secondCall.Messages[len(secondCall.Messages)-1]
		assert.Contains(t, last.Content, "Error from previous attempt")
	})

	t.Run("cancelled context returns cancelled without calling the LLM", func(t *testing.T) {
		client := &scriptedClient{}
		execCtx := newExecCtx(client, 5)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := NewReActController().Run(ctx, execCtx)
		require.NoError(t, err)
		assert.Equal(t, agent.RunStatusCancelled, result.Status)
		assert.ErrorIs(t, result.Error, context.Canceled)
		assert.Equal(t, 0, client.calls)
	})

	t.Run("failed last interaction at the limit skips the forced call", func(t *testing.T) {
		client := &scriptedClient{entries: []scriptEntry{
			{err: errors.New("provider unavailable")},
		}}
		execCtx := newExecCtx(client, 1)

		result, err := NewReActController().Run(context.Background(), execCtx)
		require.NoError(t, err)
		assert.Equal(t, agent.RunStatusFailed, result.Status)
		require.Error(t, result.Error)
		assert.Contains(t, result.Error.Error(), "last interaction failed")
		assert.Equal(t, 1, client.calls)
	})

	t.Run("nil prompt builder is an infrastructure error", func(t *testing.T) {
		execCtx := newExecCtx(&scriptedClient{}, 5)
		execCtx.PromptBuilder = nil

		result, err := NewReActController().Run(context.Background(), execCtx)
		assert.Nil(t, result)
		assert.Error(t, err)
	})
}

func TestCollectResponse(t *testing.T) {
	t.Run("error chunk fails the whole call", func(t *testing.T) {
		ch := make(chan agent.Chunk, 2)
		ch <- &agent.TextChunk{Content: "partial"}
		ch <- &agent.ErrorChunk{Code: "RATE_LIMITED", Message: "slow down"}
		close(ch)

		client := &chanClient{ch: ch}
		_, err := collectResponse(context.Background(), client, &agent.GenerateInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RATE_LIMITED")
	})

	t.Run("empty stream is an error", func(t *testing.T) {
		ch := make(chan agent.Chunk)
		close(ch)

		client := &chanClient{ch: ch}
		_, err := collectResponse(context.Background(), client, &agent.GenerateInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no content")
	})

	t.Run("text and usage accumulate across chunks", func(t *testing.T) {
		ch := make(chan agent.Chunk, 3)
		ch <- &agent.TextChunk{Content: "Final "}
		ch <- &agent.TextChunk{Content: "Answer: ok"}
		ch <- &agent.UsageChunk{InputTokens: 3, OutputTokens: 4, TotalTokens: 7}
		close(ch)

		client := &chanClient{ch: ch}
		resp, err := collectResponse(context.Background(), client, &agent.GenerateInput{})
		require.NoError(t, err)
		assert.Equal(t, "Final Answer: ok", resp.Text)
		assert.Equal(t, 7, resp.Usage.TotalTokens)
	})
}

// chanClient returns a pre-built channel once.
type chanClient struct {
	ch <-chan agent.Chunk
}

func (c *chanClient) Generate(context.Context, *agent.GenerateInput) (<-chan agent.Chunk, error) {
	return c.ch, nil
}

func (c *chanClient) Close() error { return nil }
