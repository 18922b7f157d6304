// Package prompt provides the centralized prompt builder for the generation
// agent. It composes system messages, user messages, and the forced
// conclusion prompt.
package prompt

import (
	"fmt"
	"strings"

	"github.com/skillforge/skillforge/pkg/agent"
)

// PromptBuilder builds all prompt text for the iteration controller.
// Stateless — all state comes from parameters. Thread-safe.
type PromptBuilder struct{}

// NewPromptBuilder creates a PromptBuilder.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildReActMessages builds the initial conversation for a generation run.
func (b *PromptBuilder) BuildReActMessages(
	execCtx *agent.ExecutionContext,
	tools []agent.ToolDefinition,
) []agent.ConversationMessage {
	systemContent := generalInstructions + "\n\n" + reactFormatInstructions + "\n\n" + taskFocus

	return []agent.ConversationMessage{
		{Role: agent.RoleSystem, Content: systemContent},
		{Role: agent.RoleUser, Content: b.buildGenerationUserMessage(execCtx, tools)},
	}
}

// BuildForcedConclusionPrompt returns a prompt forcing the LLM to conclude
// at the iteration limit.
func (b *PromptBuilder) BuildForcedConclusionPrompt(iteration int) string {
	return fmt.Sprintf(forcedConclusionTemplate, iteration)
}

// buildGenerationUserMessage builds the user message for a generation run.
func (b *PromptBuilder) buildGenerationUserMessage(
	execCtx *agent.ExecutionContext,
	tools []agent.ToolDefinition,
) string {
	var sb strings.Builder

	if len(tools) > 0 {
		sb.WriteString("Generate the assessment items using the available tools.\n\n")
		sb.WriteString("Available tools:\n\n")
		sb.WriteString(FormatToolDescriptions(tools))
		sb.WriteString("\n\n")
	}

	sb.WriteString(FormatProfileSection(execCtx.Profile))
	sb.WriteString("\n")

	sb.WriteString(FormatRoundSection(execCtx))
	sb.WriteString("\n")

	sb.WriteString(FormatAdaptiveSection(execCtx.Adaptive, execCtx.Profile.SelfLevel.BaselineDifficulty()))
	sb.WriteString("\n")

	sb.WriteString(generationTask)

	return sb.String()
}
