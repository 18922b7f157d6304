package output

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillforge/skillforge/pkg/agent"
	"github.com/skillforge/skillforge/pkg/models"
)

func mcItemJSON(stem string) string {
	return fmt.Sprintf(`{"stem": %q, "item_type": "multiple_choice", "category": "networking", "difficulty": 5, `+
		`"choices": ["404", "200", "500", "302"], `+
		`"answer_schema": {"kind": "exact_match", "payload": {"correct_answer": "404"}, "explanation": "standard status code"}}`, stem)
}

func completedRun(finalAnswer string) *agent.RunResult {
	return &agent.RunResult{
		Status:      agent.RunStatusCompleted,
		FinalAnswer: finalAnswer,
		Transcript:  &agent.Transcript{},
	}
}

func TestConvert_ParseShapes(t *testing.T) {
	t.Run("questions wrapper", func(t *testing.T) {
		items, diag := Convert(completedRun(
			`Final Answer: {"questions": [` + mcItemJSON("Which HTTP status means not found?") + `]}`))
		require.Len(t, items, 1)
		assert.Equal(t, "as_is", diag.ParseStage)
		assert.Equal(t, "Which HTTP status means not found?", items[0].Stem)
		assert.Equal(t, models.ItemTypeMultipleChoice, items[0].ItemType)
		assert.Equal(t, 5, items[0].Difficulty)
		assert.Equal(t, "networking", items[0].Category)
		assert.Equal(t, []string{"404", "200", "500", "302"}, items[0].Choices)
		assert.Equal(t, "404", items[0].AnswerSchema.Payload.CorrectAnswer)
	})

	t.Run("bare array", func(t *testing.T) {
		items, _ := Convert(completedRun(`[` + mcItemJSON("Which HTTP status means not found?") + `]`))
		require.Len(t, items, 1)
	})

	t.Run("single bare item object", func(t *testing.T) {
		items, _ := Convert(completedRun(mcItemJSON("Which HTTP status means not found?")))
		require.Len(t, items, 1)
	})

	t.Run("surrounding prose is ignored", func(t *testing.T) {
		items, _ := Convert(completedRun(
			"Here is the set you asked for:\n\n" +
				`{"questions": [` + mcItemJSON("Which HTTP status means not found?") + `]}` +
				"\n\nLet me know if you need more."))
		require.Len(t, items, 1)
	})

	t.Run("last final answer block wins", func(t *testing.T) {
		items, _ := Convert(completedRun(
			`Final Answer: {"questions": []}` + "\n" +
				`Final Answer: {"questions": [` + mcItemJSON("Which HTTP status means not found?") + `]}`))
		require.Len(t, items, 1)
	})

	t.Run("no JSON at all", func(t *testing.T) {
		items, diag := Convert(completedRun("I was unable to generate any questions."))
		assert.Empty(t, items)
		assert.Equal(t, "", diag.ParseStage)
	})

	t.Run("nil result", func(t *testing.T) {
		items, _ := Convert(nil)
		assert.Empty(t, items)
	})
}

func TestConvert_CleanupCascade(t *testing.T) {
	t.Run("python literals", func(t *testing.T) {
		items, diag := Convert(completedRun(
			`{"questions": [{"stem": "TCP is a connection-oriented protocol: true or false?", ` +
				`"item_type": "true_false", "category": "networking", "difficulty": 4, ` +
				`"answer_schema": {"kind": "true_false", "payload": {"correct_bool": True}}}]}`))
		require.Len(t, items, 1)
		assert.Equal(t, "python_literals", diag.ParseStage)
		require.NotNil(t, items[0].AnswerSchema.Payload.CorrectBool)
		assert.True(t, *items[0].AnswerSchema.Payload.CorrectBool)
	})

	t.Run("trailing commas", func(t *testing.T) {
		doc := `{"questions": [{"stem": "Which HTTP status means not found?", ` +
			`"item_type": "multiple_choice", "category": "networking", "difficulty": 5, ` +
			`"choices": ["404", "200", "500", "302",], ` +
			`"answer_schema": {"kind": "exact_match", "payload": {"correct_answer": "404"},},},]}`
		items, diag := Convert(completedRun(doc))
		require.Len(t, items, 1)
		assert.Equal(t, "trailing_commas", diag.ParseStage)
	})

	t.Run("bad escapes", func(t *testing.T) {
		doc := `{"questions": [{"stem": "What\'s a deadlock and how do you break one?", ` +
			`"item_type": "short_answer", "category": "concurrency", "difficulty": 6, ` +
			`"answer_schema": {"kind": "keyword_match", "payload": {"keywords": ["cycle", "lock ordering"]}}}]}`
		items, diag := Convert(completedRun(doc))
		require.Len(t, items, 1)
		assert.Equal(t, "bad_escapes", diag.ParseStage)
		assert.Contains(t, items[0].Stem, "deadlock")
	})

	t.Run("control characters", func(t *testing.T) {
		doc := `{"questions": [{"stem": "Which HTTP status` + "\x07" + ` means not found?", ` +
			`"item_type": "multiple_choice", "category": "networking", "difficulty": 5, ` +
			`"choices": ["404", "200", "500", "302"], ` +
			`"answer_schema": {"kind": "exact_match", "payload": {"correct_answer": "404"}}}]}`
		items, diag := Convert(completedRun(doc))
		require.Len(t, items, 1)
		assert.Equal(t, "control_chars", diag.ParseStage)
		assert.NotContains(t, items[0].Stem, "\x07")
	})

	t.Run("unrepairable garbage", func(t *testing.T) {
		items, diag := Convert(completedRun(`{"questions": [{{{`))
		assert.Empty(t, items)
		assert.Equal(t, "", diag.ParseStage)
	})
}

func TestConvert_TranscriptFallback(t *testing.T) {
	saveArgs := mcItemJSON("Which HTTP status means not found?")

	t.Run("recovers saved questions when the final answer is unusable", func(t *testing.T) {
		result := &agent.RunResult{
			Status:      agent.RunStatusCompleted,
			FinalAnswer: "I ran out of iterations before assembling the list.",
			Transcript: &agent.Transcript{
				Invocations: []agent.ToolInvocation{
					{Name: "get_user_profile", Arguments: "{}", Result: &agent.ToolResult{Content: "{}"}},
					{Name: "save_generated_question", Arguments: saveArgs, Result: &agent.ToolResult{Content: `{"status": "saved"}`}},
					{Name: "save_generated_question", Arguments: "not json", Result: &agent.ToolResult{Content: `{"status": "saved"}`}},
					{Name: "save_generated_question", Arguments: saveArgs, Result: &agent.ToolResult{Content: "rejected", IsError: true}},
				},
			},
		}
		items, diag := Convert(result)
		require.Len(t, items, 1)
		assert.True(t, diag.UsedTranscriptFallback)
	})

	t.Run("final answer takes precedence over the transcript", func(t *testing.T) {
		result := &agent.RunResult{
			Status:      agent.RunStatusCompleted,
			FinalAnswer: `{"questions": [` + mcItemJSON("From the final answer?") + `]}`,
			Transcript: &agent.Transcript{
				Invocations: []agent.ToolInvocation{
					{Name: "save_generated_question", Arguments: mcItemJSON("From the transcript?"), Result: &agent.ToolResult{Content: "ok"}},
				},
			},
		}
		items, diag := Convert(result)
		require.Len(t, items, 1)
		assert.Equal(t, "From the final answer?", items[0].Stem)
		assert.False(t, diag.UsedTranscriptFallback)
	})
}

func TestConvert_ItemValidation(t *testing.T) {
	wrap := func(itemJSON string) string {
		return `{"questions": [` + itemJSON + `, ` + mcItemJSON("Which HTTP status means not found?") + `]}`
	}

	tests := []struct {
		name   string
		item   string
		reason string
	}{
		{
			"empty stem",
			`{"stem": "  ", "item_type": "multiple_choice", "category": "networking", "difficulty": 5}`,
			"empty stem",
		},
		{
			"oversized stem",
			`{"stem": "` + strings.Repeat("x", models.MaxStemLength+1) + `", "item_type": "multiple_choice", "category": "networking", "difficulty": 5}`,
			"stem exceeds",
		},
		{
			"invalid item type",
			`{"stem": "Explain the CAP theorem in one sentence.", "item_type": "essay", "category": "databases", "difficulty": 5}`,
			"invalid item_type",
		},
		{
			"empty category",
			`{"stem": "Which HTTP status means not found?", "item_type": "multiple_choice", "category": "", "difficulty": 5}`,
			"empty category",
		},
		{
			"difficulty below range",
			`{"stem": "Which HTTP status means not found?", "item_type": "multiple_choice", "category": "networking", "difficulty": 0}`,
			"difficulty out of range",
		},
		{
			"fractional difficulty",
			`{"stem": "Which HTTP status means not found?", "item_type": "multiple_choice", "category": "networking", "difficulty": 5.5}`,
			"difficulty out of range",
		},
		{
			"unrecognized answer schema",
			`{"stem": "Which HTTP status means not found?", "item_type": "multiple_choice", "category": "networking", "difficulty": 5, ` +
				`"choices": ["404", "200", "500", "302"], "answer_schema": {"mystery": true}}`,
			"answer_schema",
		},
		{
			"too few choices",
			`{"stem": "Which HTTP status means not found?", "item_type": "multiple_choice", "category": "networking", "difficulty": 5, ` +
				`"choices": ["404", "200"], "answer_schema": {"kind": "exact_match", "payload": {"correct_answer": "404"}}}`,
			"choices",
		},
		{
			"correct answer not among choices",
			`{"stem": "Which HTTP status means not found?", "item_type": "multiple_choice", "category": "networking", "difficulty": 5, ` +
				`"choices": ["200", "500", "302", "301"], "answer_schema": {"kind": "exact_match", "payload": {"correct_answer": "404"}}}`,
			"not among choices",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, diag := Convert(completedRun(wrap(tt.item)))
			require.Len(t, items, 1, "the valid sibling must survive")
			require.Len(t, diag.Rejected, 1)
			assert.Contains(t, diag.Rejected[0], tt.reason)
		})
	}

	t.Run("choice matching is case-insensitive and trimmed", func(t *testing.T) {
		doc := `{"questions": [{"stem": "Which isolation level allows dirty reads?", ` +
			`"item_type": "multiple_choice", "category": "databases", "difficulty": 6, ` +
			`"choices": [" Read Uncommitted ", "Read Committed", "Repeatable Read", "Serializable"], ` +
			`"answer_schema": {"kind": "exact_match", "payload": {"correct_answer": "read uncommitted"}}}]}`
		items, diag := Convert(completedRun(doc))
		require.Len(t, items, 1)
		assert.Empty(t, diag.Rejected)
	})

	t.Run("missing answer schema is inferred from a top-level hint", func(t *testing.T) {
		doc := `{"questions": [{"stem": "Which HTTP status means not found?", ` +
			`"item_type": "multiple_choice", "category": "networking", "difficulty": 5, ` +
			`"choices": ["404", "200", "500", "302"], "correct_answer": "404"}]}`
		items, _ := Convert(completedRun(doc))
		require.Len(t, items, 1)
		assert.Equal(t, models.AnswerKindExactMatch, items[0].AnswerSchema.Kind)
		assert.Equal(t, "404", items[0].AnswerSchema.Payload.CorrectAnswer)
	})
}
