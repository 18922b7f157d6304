package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillforge/skillforge/pkg/models"
)

func boolPtr(b bool) *bool { return &b }

func TestScore_MultipleChoice(t *testing.T) {
	schema := models.AnswerSchema{
		Kind:    models.AnswerKindExactMatch,
		Payload: models.AnswerPayload{CorrectAnswer: "404"},
	}

	tests := []struct {
		name      string
		answer    any
		isCorrect bool
		baseScore float64
	}{
		{"exact match", map[string]any{"selected_key": "404"}, true, 100},
		{"whitespace trimmed", map[string]any{"selected_key": " 404 "}, true, 100},
		{"wrong choice", map[string]any{"selected_key": "200"}, false, 0},
		{"empty selection", map[string]any{"selected_key": ""}, false, 0},
		{"missing key", map[string]any{"answer": "404"}, false, 0},
		{"non-object answer", "404", false, 0},
		{"nil answer", nil, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(schema, models.ItemTypeMultipleChoice, tt.answer)
			assert.Equal(t, tt.isCorrect, result.IsCorrect)
			assert.Equal(t, tt.baseScore, result.BaseScore)
		})
	}
}

func TestScore_TrueFalse(t *testing.T) {
	canonical := models.AnswerSchema{
		Kind:    models.AnswerKindTrueFalse,
		Payload: models.AnswerPayload{CorrectBool: boolPtr(true)},
	}

	t.Run("accepts boolean spellings", func(t *testing.T) {
		for _, v := range []any{true, "true", "True", "yes", "1", 1, float64(1)} {
			result := Score(canonical, models.ItemTypeTrueFalse, map[string]any{"answer": v})
			assert.True(t, result.IsCorrect, "spelling %v", v)
		}
	})

	t.Run("wrong and unparseable answers score zero", func(t *testing.T) {
		result := Score(canonical, models.ItemTypeTrueFalse, map[string]any{"answer": "false"})
		assert.False(t, result.IsCorrect)

		result = Score(canonical, models.ItemTypeTrueFalse, map[string]any{"answer": "maybe"})
		assert.False(t, result.IsCorrect)
		assert.Equal(t, float64(0), result.BaseScore)
	})

	t.Run("legacy exact-match schema with string answer", func(t *testing.T) {
		legacy := models.AnswerSchema{
			Kind:    models.AnswerKindExactMatch,
			Payload: models.AnswerPayload{CorrectAnswer: "True"},
		}
		result := Score(legacy, models.ItemTypeTrueFalse, map[string]any{"answer": "yes"})
		assert.True(t, result.IsCorrect)
		assert.Equal(t, float64(100), result.BaseScore)
	})

	t.Run("schema without a boolean reading scores zero", func(t *testing.T) {
		broken := models.AnswerSchema{
			Kind:    models.AnswerKindExactMatch,
			Payload: models.AnswerPayload{CorrectAnswer: "paris"},
		}
		result := Score(broken, models.ItemTypeTrueFalse, map[string]any{"answer": true})
		assert.False(t, result.IsCorrect)
	})
}

func TestScore_ShortAnswer(t *testing.T) {
	schema := models.AnswerSchema{
		Kind:    models.AnswerKindKeywordMatch,
		Payload: models.AnswerPayload{Keywords: []string{"index", "vacuum"}},
	}

	t.Run("all keywords hit", func(t *testing.T) {
		result := Score(schema, models.ItemTypeShortAnswer,
			map[string]any{"text": "Add an INDEX and run VACUUM regularly."})
		assert.True(t, result.IsCorrect)
		assert.Equal(t, float64(100), result.BaseScore)
	})

	t.Run("partial credit per keyword", func(t *testing.T) {
		result := Score(schema, models.ItemTypeShortAnswer,
			map[string]any{"text": "create an index on the column"})
		assert.False(t, result.IsCorrect)
		assert.Equal(t, float64(50), result.BaseScore)
	})

	t.Run("no keywords hit", func(t *testing.T) {
		result := Score(schema, models.ItemTypeShortAnswer,
			map[string]any{"text": "restart the database"})
		assert.False(t, result.IsCorrect)
		assert.Equal(t, float64(0), result.BaseScore)
	})

	t.Run("bare string form accepted", func(t *testing.T) {
		result := Score(schema, models.ItemTypeShortAnswer, "use an index and vacuum")
		assert.True(t, result.IsCorrect)
	})

	t.Run("degenerate schema passes any non-empty answer", func(t *testing.T) {
		open := models.AnswerSchema{Kind: models.AnswerKindKeywordMatch}
		result := Score(open, models.ItemTypeShortAnswer, map[string]any{"text": "anything"})
		assert.True(t, result.IsCorrect)

		result = Score(open, models.ItemTypeShortAnswer, map[string]any{"text": "  "})
		assert.False(t, result.IsCorrect)
	})
}

func TestScore_UnknownItemType(t *testing.T) {
	result := Score(models.AnswerSchema{}, models.ItemType("essay"), map[string]any{"text": "x"})
	assert.False(t, result.IsCorrect)
	assert.Equal(t, float64(0), result.BaseScore)
}

func TestKeywordHits(t *testing.T) {
	assert.Equal(t, 2, KeywordHits("The INDEX speeds up lookups; vacuum reclaims space", []string{"index", "vacuum"}))
	assert.Equal(t, 0, KeywordHits("", []string{"index"}))
	assert.Equal(t, 0, KeywordHits("text", []string{""}), "empty keywords never count")
}

func TestApplyTimePenalty(t *testing.T) {
	t.Run("no penalty at or under the limit", func(t *testing.T) {
		assert.Equal(t, float64(100), ApplyTimePenalty(100, 60000, 60000))
		assert.Equal(t, float64(100), ApplyTimePenalty(100, 1000, 60000))
	})

	t.Run("linear decay past the limit", func(t *testing.T) {
		assert.InDelta(t, 75.0, ApplyTimePenalty(100, 75000, 60000), 0.001)
		assert.InDelta(t, 50.0, ApplyTimePenalty(100, 90000, 60000), 0.001)
	})

	t.Run("zero at twice the limit and beyond", func(t *testing.T) {
		assert.Equal(t, float64(0), ApplyTimePenalty(100, 120000, 60000))
		assert.Equal(t, float64(0), ApplyTimePenalty(100, 500000, 60000))
	})

	t.Run("no limit means no penalty", func(t *testing.T) {
		assert.Equal(t, float64(100), ApplyTimePenalty(100, 999999, 0))
	})

	t.Run("monotonically non-increasing in elapsed", func(t *testing.T) {
		prev := ApplyTimePenalty(80, 60000, 60000)
		for elapsed := int64(60000); elapsed <= 180000; elapsed += 5000 {
			cur := ApplyTimePenalty(80, elapsed, 60000)
			assert.LessOrEqual(t, cur, prev, "elapsed %d", elapsed)
			prev = cur
		}
	})
}
