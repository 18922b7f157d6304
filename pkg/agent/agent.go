// Package agent provides the item-generation agent framework.
// Agents drive an LLM through a bounded ReAct loop over a fixed tool surface
// to produce assessment questions for one session.
package agent

// RunStatus represents the outcome of an agent run.
type RunStatus string

const (
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
	RunStatusCancelled RunStatus = "cancelled"
)

// RunResult is returned by the iteration controller.
// The transcript is retained in full so the output converter can recover
// tool outputs when the final answer is malformed.
type RunResult struct {
	Status      RunStatus
	FinalAnswer string
	Transcript  *Transcript
	Error       error
	TokensUsed  TokenUsage
}

// TokenUsage aggregates token consumption across multiple LLM calls.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Add accumulates usage from a single LLM response.
func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}

// Transcript is the value-typed record of one agent run: the conversation
// plus every tool invocation with its observed result, in order.
type Transcript struct {
	Messages    []ConversationMessage
	Invocations []ToolInvocation
}

// ToolInvocation pairs a tool call with its observed result.
type ToolInvocation struct {
	Name      string
	Arguments string
	Result    *ToolResult
}

// AppendMessage appends a conversation message to the transcript.
func (t *Transcript) AppendMessage(msg ConversationMessage) {
	t.Messages = append(t.Messages, msg)
}

// AppendInvocation records a completed tool call.
func (t *Transcript) AppendInvocation(inv ToolInvocation) {
	t.Invocations = append(t.Invocations, inv)
}
