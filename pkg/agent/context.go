package agent

import (
	"time"

	"github.com/skillforge/skillforge/pkg/models"
)

// ExecutionContext carries all dependencies and state needed by the agent
// during one generation run. Created by the generation service per round.
type ExecutionContext struct {
	// Identity
	SessionID  string
	UserID     string
	RoundIndex int

	// How many items to generate this round.
	Count int

	// Profile fields from the latest survey.
	Profile Profile

	// Adaptive hints from the prior round, nil for round 1.
	Adaptive *models.AdaptiveParams

	// Optional domain override from the caller (narrows the category pool).
	Domain string

	// Resolved run configuration.
	Config *RunConfig

	// Dependencies (injected by the generation service).
	LLMClient     LLMClient
	ToolExecutor  ToolExecutor
	PromptBuilder PromptBuilder
}

// Profile is the agent-visible slice of a ProfileSurvey.
type Profile struct {
	SelfLevel models.SelfLevel
	Years     int
	JobRole   string
	Duty      string
	Interests []string
}

// RunConfig bounds a single agent run.
type RunConfig struct {
	LLM              *LLMConfig
	MaxIterations    int           // default 10
	IterationTimeout time.Duration // per-LLM-call budget, default 30s
}

// PromptBuilder builds all prompt text for the iteration controller.
// Implemented by prompt.PromptBuilder; defined as an interface here to
// avoid a circular import between pkg/agent and pkg/agent/prompt.
type PromptBuilder interface {
	BuildReActMessages(execCtx *ExecutionContext, tools []ToolDefinition) []ConversationMessage
	BuildForcedConclusionPrompt(iteration int) string
}
