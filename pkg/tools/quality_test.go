package tools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validDraft is a draft that passes every rule and semantic check.
func validDraft() map[string]any {
	return map[string]any{
		"stem":       "Which HTTP status code means a resource was not found?",
		"item_type":  "multiple_choice",
		"difficulty": float64(5),
		"category":   "networking",
		"choices":    []any{"404", "200", "500", "302"},
		"answer_schema": map[string]any{
			"kind":        "exact_match",
			"payload":     map[string]any{"correct_answer": "404"},
			"explanation": "404 Not Found signals a missing resource.",
		},
	}
}

func TestEvaluateQuality_PassingDraft(t *testing.T) {
	report := EvaluateQuality(validDraft())
	assert.Equal(t, 1.0, report.RuleScore)
	assert.Equal(t, 1.0, report.SemanticScore)
	assert.Equal(t, 1.0, report.FinalScore)
	assert.True(t, report.Passed)
	assert.True(t, report.IsValid)
	assert.Equal(t, RecommendPass, report.Recommendation)
	assert.Empty(t, report.Issues)
}

func TestEvaluateQuality_RuleViolationsBlockRegardlessOfScore(t *testing.T) {
	// A single hard-rule violation must fail the gate even when the blended
	// score stays above the threshold.
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"oversized stem", func(d map[string]any) {
			long := make([]rune, 260)
			for i := range long {
				long[i] = 'x'
			}
			d["stem"] = string(long) + "?"
		}},
		{"too few choices", func(d map[string]any) { d["choices"] = []any{"404", "200", "500"} }},
		{"correct answer not among choices", func(d map[string]any) {
			d["choices"] = []any{"200", "500", "302", "301"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(draft)
			report := EvaluateQuality(draft)
			assert.GreaterOrEqual(t, report.FinalScore, QualityThreshold)
			assert.False(t, report.Passed)
			assert.False(t, report.IsValid)
			assert.Equal(t, RecommendReject, report.Recommendation)
		})
	}
}

func TestEvaluateQuality_RuleIssues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
		issue  string
	}{
		{"empty stem", func(d map[string]any) { d["stem"] = "   " }, "stem is empty"},
		{"oversized stem", func(d map[string]any) {
			long := make([]rune, 251)
			for i := range long {
				long[i] = 'x'
			}
			d["stem"] = string(long) + "?"
		}, "stem exceeds"},
		{"invalid item type", func(d map[string]any) { d["item_type"] = "essay" }, "item_type"},
		{"difficulty out of range", func(d map[string]any) { d["difficulty"] = float64(0) }, "difficulty must be an integer"},
		{"fractional difficulty", func(d map[string]any) { d["difficulty"] = 5.5 }, "difficulty must be an integer"},
		{"empty category", func(d map[string]any) { d["category"] = "" }, "category is empty"},
		{"unparseable answer schema", func(d map[string]any) { d["answer_schema"] = map[string]any{"mystery": true} }, "answer_schema:"},
		{"too few choices", func(d map[string]any) { d["choices"] = []any{"404", "200"} }, "requires 4-5 choices"},
		{"correct answer not among choices", func(d map[string]any) {
			d["choices"] = []any{"200", "500", "302", "301"}
		}, "not among the choices"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(draft)
			report := EvaluateQuality(draft)
			assert.Less(t, report.RuleScore, 1.0)
			assert.False(t, report.Passed)
			assert.Equal(t, RecommendReject, report.Recommendation)
			require.NotEmpty(t, report.Issues)
			assert.Contains(t, strings.Join(report.Issues, "; "), tt.issue)
		})
	}

	t.Run("choices on a non-choice item", func(t *testing.T) {
		report := EvaluateQuality(map[string]any{
			"stem":       "TCP guarantees in-order delivery within a connection: true or false?",
			"item_type":  "true_false",
			"difficulty": float64(4),
			"category":   "networking",
			"choices":    []any{"true", "false"},
			"answer_schema": map[string]any{
				"kind":        "true_false",
				"payload":     map[string]any{"correct_bool": true},
				"explanation": "Ordering is part of the TCP contract.",
			},
		})
		assert.Contains(t, report.Issues, "choices are only allowed on multiple_choice items")
	})
}

func TestEvaluateQuality_SemanticIssues(t *testing.T) {
	t.Run("short stem without a question mark", func(t *testing.T) {
		draft := validDraft()
		draft["item_type"] = "short_answer"
		delete(draft, "choices")
		draft["answer_schema"] = map[string]any{
			"kind":        "keyword_match",
			"payload":     map[string]any{"keywords": []any{"index"}},
			"explanation": "Indexes avoid sequential scans.",
		}
		draft["stem"] = "Explain indexes"
		report := EvaluateQuality(draft)
		assert.Equal(t, 1.0, report.RuleScore)
		assert.InDelta(t, 0.6, report.SemanticScore, 0.001)
	})

	t.Run("true_false stems are exempt from the question-mark check", func(t *testing.T) {
		report := EvaluateQuality(map[string]any{
			"stem":       "A UNIQUE constraint is always backed by an index.",
			"item_type":  "true_false",
			"difficulty": float64(4),
			"category":   "databases",
			"answer_schema": map[string]any{
				"kind":        "true_false",
				"payload":     map[string]any{"correct_bool": true},
				"explanation": "Uniqueness is enforced via an index.",
			},
		})
		assert.Equal(t, 1.0, report.SemanticScore)
	})

	t.Run("duplicate choices", func(t *testing.T) {
		draft := validDraft()
		draft["choices"] = []any{"404", "200", " 404 ", "302"}
		report := EvaluateQuality(draft)
		assert.InDelta(t, 0.8, report.SemanticScore, 0.001)
	})

	t.Run("missing explanation", func(t *testing.T) {
		draft := validDraft()
		draft["answer_schema"] = map[string]any{
			"kind":    "exact_match",
			"payload": map[string]any{"correct_answer": "404"},
		}
		report := EvaluateQuality(draft)
		assert.InDelta(t, 0.8, report.SemanticScore, 0.001)
	})

	t.Run("too many keywords", func(t *testing.T) {
		draft := validDraft()
		draft["item_type"] = "short_answer"
		delete(draft, "choices")
		draft["answer_schema"] = map[string]any{
			"kind": "keyword_match",
			"payload": map[string]any{
				"keywords": []any{"a", "b", "c", "d", "e", "f", "g"},
			},
			"explanation": "All seven are required for full credit.",
		}
		report := EvaluateQuality(draft)
		assert.InDelta(t, 0.8, report.SemanticScore, 0.001)
	})
}

func TestEvaluateQuality_Threshold(t *testing.T) {
	t.Run("single soft issue still passes", func(t *testing.T) {
		draft := validDraft()
		draft["answer_schema"] = map[string]any{
			"kind":    "exact_match",
			"payload": map[string]any{"correct_answer": "404"},
		}
		report := EvaluateQuality(draft)
		assert.True(t, report.Passed)
	})

	t.Run("exactly at the threshold passes", func(t *testing.T) {
		// Three semantic issues and clean rules: 0.5*1.0 + 0.5*0.4 = 0.70.
		report := EvaluateQuality(map[string]any{
			"stem":       "Explain indexes",
			"item_type":  "short_answer",
			"difficulty": float64(5),
			"category":   "databases",
			"answer_schema": map[string]any{
				"kind":    "keyword_match",
				"payload": map[string]any{"keywords": []any{"index"}},
			},
		})
		assert.InDelta(t, QualityThreshold, report.FinalScore, 0.0001)
		assert.True(t, report.Passed)
	})

	t.Run("compounding issues fail", func(t *testing.T) {
		report := EvaluateQuality(map[string]any{
			"stem":       "Explain locks",
			"item_type":  "short_answer",
			"difficulty": float64(0),
			"category":   "databases",
			"choices":    []any{"a", "b"},
			"answer_schema": map[string]any{
				"kind":    "keyword_match",
				"payload": map[string]any{"keywords": []any{"mutex"}},
			},
		})
		assert.False(t, report.Passed)
		assert.Less(t, report.FinalScore, QualityThreshold)
	})

	t.Run("semantic-only failure recommends revise", func(t *testing.T) {
		// Four semantic issues with clean rules: 0.5*1.0 + 0.5*0.2 = 0.60.
		report := EvaluateQuality(map[string]any{
			"stem":       "Explain locks",
			"item_type":  "short_answer",
			"difficulty": float64(5),
			"category":   "databases",
			"answer_schema": map[string]any{
				"kind": "keyword_match",
				"payload": map[string]any{
					"keywords": []any{"a", "b", "c", "d", "e", "f", "g"},
				},
			},
		})
		assert.Equal(t, 1.0, report.RuleScore)
		assert.Less(t, report.FinalScore, QualityThreshold)
		assert.False(t, report.Passed)
		assert.Equal(t, RecommendRevise, report.Recommendation)
	})
}
