package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillforge/skillforge/pkg/agent"
)

func TestParseResponse_Action(t *testing.T) {
	t.Run("standard tool call", func(t *testing.T) {
		parsed := ParseResponse("Thought: I need the user's profile.\n" +
			"Action: get_user_profile\n" +
			"Action Input: {}")
		assert.True(t, parsed.HasAction)
		assert.False(t, parsed.IsFinalAnswer)
		assert.Equal(t, "get_user_profile", parsed.Action)
		assert.Equal(t, "{}", parsed.ActionInput)
		assert.Equal(t, "I need the user's profile.", parsed.Thought)
	})

	t.Run("multi-line action input", func(t *testing.T) {
		parsed := ParseResponse("Thought: saving\n" +
			"Action: save_generated_question\n" +
			"Action Input: {\n  \"ordinal\": 1,\n  \"stem\": \"What is TCP?\"\n}")
		require.True(t, parsed.HasAction)
		assert.Contains(t, parsed.ActionInput, `"ordinal": 1`)
	})

	t.Run("empty action input is still a call", func(t *testing.T) {
		parsed := ParseResponse("Thought: listing\nAction: get_user_profile\nAction Input:")
		assert.True(t, parsed.HasAction)
		assert.Equal(t, "", parsed.ActionInput)
	})

	t.Run("action wins over a trailing final answer", func(t *testing.T) {
		parsed := ParseResponse("Thought: almost done\n" +
			"Action: save_generated_question\n" +
			"Action Input: {\"ordinal\": 1}\n" +
			"Final Answer: not yet")
		assert.True(t, parsed.HasAction)
		assert.False(t, parsed.IsFinalAnswer)
	})

	t.Run("invalid tool name is flagged", func(t *testing.T) {
		parsed := ParseResponse("Action: Get User Profile!\nAction Input: {}")
		assert.True(t, parsed.IsUnknownTool)
		assert.NotEmpty(t, parsed.ErrorMessage)
	})

	t.Run("hallucinated observation truncates the response", func(t *testing.T) {
		parsed := ParseResponse("Thought: calling\n" +
			"Action: get_user_profile\n" +
			"Action Input: {}\n" +
			"Observation: {\"fake\": true}\n" +
			"Final Answer: made up")
		assert.True(t, parsed.HasAction)
		assert.False(t, parsed.IsFinalAnswer)
	})
}

func TestParseResponse_FinalAnswer(t *testing.T) {
	t.Run("standard conclusion", func(t *testing.T) {
		parsed := ParseResponse("Thought: done\nFinal Answer: {\"questions\": []}")
		assert.True(t, parsed.IsFinalAnswer)
		assert.Equal(t, `{"questions": []}`, parsed.FinalAnswer)
	})

	t.Run("multi-line final answer", func(t *testing.T) {
		parsed := ParseResponse("Final Answer: {\n\"questions\": [\n]}")
		require.True(t, parsed.IsFinalAnswer)
		assert.Contains(t, parsed.FinalAnswer, "questions")
	})

	t.Run("mid-line final answer after a sentence boundary", func(t *testing.T) {
		parsed := ParseResponse("Thought: All five are saved. Final Answer: {\"questions\": []}")
		require.True(t, parsed.IsFinalAnswer)
		assert.Equal(t, `{"questions": []}`, parsed.FinalAnswer)
		assert.Equal(t, "All five are saved.", parsed.Thought)
	})

	t.Run("mid-line final answer on a continuation line", func(t *testing.T) {
		parsed := ParseResponse("Thought: reviewing the set\n" +
			"everything checks out. Final Answer: done")
		require.True(t, parsed.IsFinalAnswer)
		assert.Equal(t, "done", parsed.FinalAnswer)
	})
}

func TestParseResponse_Recovery(t *testing.T) {
	t.Run("recovers action from bare header", func(t *testing.T) {
		parsed := ParseResponse("Thought: calling\n" +
			"Action\n" +
			"get_user_profile\n" +
			"Action Input: {}")
		assert.True(t, parsed.HasAction)
		assert.Equal(t, "get_user_profile", parsed.Action)
	})

	t.Run("second action invalidates earlier input", func(t *testing.T) {
		parsed := ParseResponse("Action: first_tool\n" +
			"Action Input: {\"a\": 1}\n" +
			"Action: second_tool")
		// The new Action cleared the input, so this is not a complete call.
		assert.False(t, parsed.HasAction && parsed.ActionInput != "")
	})
}

func TestParseResponse_Malformed(t *testing.T) {
	t.Run("empty response", func(t *testing.T) {
		parsed := ParseResponse("   ")
		assert.True(t, parsed.IsMalformed)
	})

	t.Run("thought only", func(t *testing.T) {
		parsed := ParseResponse("Thought: still thinking about it")
		assert.True(t, parsed.IsMalformed)
		assert.True(t, parsed.FoundSections["thought"])
		assert.False(t, parsed.FoundSections["action"])
	})

	t.Run("free text without sections", func(t *testing.T) {
		parsed := ParseResponse("Here are some questions I came up with.")
		assert.True(t, parsed.IsMalformed)
	})
}

func TestFormatErrorFeedback(t *testing.T) {
	t.Run("missing action input", func(t *testing.T) {
		feedback := FormatErrorFeedback(&ParsedResponse{
			FoundSections: map[string]bool{"action": true},
		})
		assert.Contains(t, feedback, "missing \"Action Input:\"")
		assert.Contains(t, feedback, "exact ReAct format")
	})

	t.Run("missing action", func(t *testing.T) {
		feedback := FormatErrorFeedback(&ParsedResponse{
			FoundSections: map[string]bool{"action_input": true},
		})
		assert.Contains(t, feedback, "missing \"Action:\"")
	})

	t.Run("thought only", func(t *testing.T) {
		feedback := FormatErrorFeedback(&ParsedResponse{
			FoundSections: map[string]bool{"thought": true},
		})
		assert.Contains(t, feedback, "only contains \"Thought:\"")
	})

	t.Run("nothing detected", func(t *testing.T) {
		feedback := FormatErrorFeedback(&ParsedResponse{FoundSections: map[string]bool{}})
		assert.Contains(t, feedback, "Could not detect any ReAct sections")
	})
}

func TestFormatObservations(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		obs := FormatObservation(&agent.ToolResult{Name: "get_user_profile", Content: `{"years": 4}`})
		assert.Equal(t, `Observation: {"years": 4}`, obs)
	})

	t.Run("tool-level error", func(t *testing.T) {
		obs := FormatObservation(&agent.ToolResult{Name: "save_generated_question", Content: "quality too low", IsError: true})
		assert.Contains(t, obs, "Error executing save_generated_question")
	})

	t.Run("unknown tool lists alternatives", func(t *testing.T) {
		obs := FormatUnknownToolError("Unknown tool 'frobnicate'", []agent.ToolDefinition{
			{Name: "get_user_profile", Description: "Fetch the profile"},
		})
		assert.Contains(t, obs, "frobnicate")
		assert.Contains(t, obs, "get_user_profile: Fetch the profile")
	})
}
