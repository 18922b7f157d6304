package adaptive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillforge/skillforge/pkg/models"
)

func TestNextDifficulty(t *testing.T) {
	tests := []struct {
		name  string
		prior int
		score float64
		want  int
	}{
		{"below 40 steps down", 5, 39.9, 4},
		{"40 holds", 5, 40, 5},
		{"70 holds", 5, 70, 5},
		{"above 70 steps up", 5, 70.1, 6},
		{"90 steps up one", 5, 90, 6},
		{"above 90 steps up two", 5, 90.1, 7},
		{"perfect round", 5, 100, 7},
		{"clamped at the floor", 1, 0, 1},
		{"clamped at the ceiling", 9, 100, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := Derive(Input{PriorDifficulty: tt.prior, Score: tt.score})
			assert.Equal(t, tt.want, params.TargetDifficulty)
		})
	}

	t.Run("unknown prior falls back to the profile baseline", func(t *testing.T) {
		params := Derive(Input{SelfLevel: models.SelfLevelAdvanced, Score: 50})
		assert.Equal(t, 7, params.TargetDifficulty)

		params = Derive(Input{SelfLevel: models.SelfLevelBeginner, Score: 95})
		assert.Equal(t, 5, params.TargetDifficulty)
	})
}

func TestCategoryWeights(t *testing.T) {
	t.Run("uniform when nothing was wrong", func(t *testing.T) {
		params := Derive(Input{Categories: []string{"db", "net"}})
		assert.InDelta(t, 0.5, params.CategoryWeights["db"], 0.001)
		assert.InDelta(t, 0.5, params.CategoryWeights["net"], 0.001)
	})

	t.Run("wrong categories are boosted and the map stays normalized", func(t *testing.T) {
		params := Derive(Input{
			Categories:      []string{"db", "net", "os"},
			WrongCategories: map[string]int{"db": 2},
		})
		// db weight 3, net and os weight 1 each, total 5.
		assert.InDelta(t, 0.6, params.CategoryWeights["db"], 0.001)
		assert.InDelta(t, 0.2, params.CategoryWeights["net"], 0.001)
		assert.InDelta(t, 0.2, params.CategoryWeights["os"], 0.001)

		sum := 0.0
		for _, w := range params.CategoryWeights {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 0.0001)
	})

	t.Run("wrong categories outside the pool are included", func(t *testing.T) {
		params := Derive(Input{
			Categories:      []string{"db"},
			WrongCategories: map[string]int{"security": 1},
		})
		require.Contains(t, params.CategoryWeights, "security")
		assert.InDelta(t, 1.0/3.0, params.CategoryWeights["db"], 0.001)
		assert.InDelta(t, 2.0/3.0, params.CategoryWeights["security"], 0.001)
	})

	t.Run("duplicates and empties are dropped", func(t *testing.T) {
		params := Derive(Input{Categories: []string{"db", "db", ""}})
		assert.Len(t, params.CategoryWeights, 1)
		assert.InDelta(t, 1.0, params.CategoryWeights["db"], 0.001)
	})

	t.Run("empty pool yields an empty map", func(t *testing.T) {
		params := Derive(Input{})
		assert.Empty(t, params.CategoryWeights)
	})
}

func TestRequireShortAnswer(t *testing.T) {
	t.Run("never on round 1", func(t *testing.T) {
		params := Derive(Input{NextRound: 1, ShortAnswerTotal: 0})
		assert.False(t, params.RequireShortAnswer)
	})

	t.Run("unprobed prior round forces one", func(t *testing.T) {
		params := Derive(Input{NextRound: 2, ShortAnswerTotal: 0})
		assert.True(t, params.RequireShortAnswer)
	})

	t.Run("low recall forces one", func(t *testing.T) {
		params := Derive(Input{NextRound: 2, ShortAnswerTotal: 3, ShortAnswerCorrect: 1})
		assert.True(t, params.RequireShortAnswer)
	})

	t.Run("recall at 50% or above does not", func(t *testing.T) {
		params := Derive(Input{NextRound: 2, ShortAnswerTotal: 2, ShortAnswerCorrect: 1})
		assert.False(t, params.RequireShortAnswer)

		params = Derive(Input{NextRound: 3, ShortAnswerTotal: 2, ShortAnswerCorrect: 2})
		assert.False(t, params.RequireShortAnswer)
	})
}

func TestDeriveCount(t *testing.T) {
	params := Derive(Input{})
	assert.Equal(t, DefaultCount, params.Count)
}
