// Package adaptive derives the next round's generation parameters from the
// previous round's outcome. The deriver is pure: it reads nothing and writes
// nothing, which keeps the difficulty policy trivially testable.
package adaptive

import (
	"sort"

	"github.com/skillforge/skillforge/pkg/models"
)

// DefaultCount is the number of items generated per adaptive round.
const DefaultCount = 5

// Input is everything the deriver needs about the scored prior round.
type Input struct {
	SelfLevel models.SelfLevel

	// Difficulty targeted by the prior round; 0 means unknown, which falls
	// back to the profile baseline.
	PriorDifficulty int

	// Score of the prior round, 0..100.
	Score float64

	// category -> count of questions answered wrong in the prior round.
	WrongCategories map[string]int

	// Category pool for the next round (the profile's interest tags).
	Categories []string

	// Short-answer performance in the prior round.
	ShortAnswerTotal   int
	ShortAnswerCorrect int

	// Index of the round being generated next (prior round + 1).
	NextRound int
}

// Derive computes the adaptive parameters for the next round.
func Derive(in Input) models.AdaptiveParams {
	return models.AdaptiveParams{
		TargetDifficulty:   nextDifficulty(in),
		CategoryWeights:    categoryWeights(in.Categories, in.WrongCategories),
		RequireShortAnswer: requireShortAnswer(in),
		Count:              DefaultCount,
	}
}

// nextDifficulty shifts the prior target by a score-band delta, clamped to
// the difficulty scale.
func nextDifficulty(in Input) int {
	base := in.PriorDifficulty
	if base == 0 {
		base = in.SelfLevel.BaselineDifficulty()
	}

	var delta int
	switch {
	case in.Score < 40:
		delta = -1
	case in.Score <= 70:
		delta = 0
	case in.Score <= 90:
		delta = 1
	default:
		delta = 2
	}

	next := base + delta
	if next < models.MinDifficulty {
		return models.MinDifficulty
	}
	if next > models.MaxDifficulty {
		return models.MaxDifficulty
	}
	return next
}

// categoryWeights boosts categories the user got wrong: each category starts
// at weight 1 and is multiplied by (1 + wrong count), then the whole map is
// normalized to sum to 1.
func categoryWeights(categories []string, wrong map[string]int) map[string]float64 {
	pool := dedupe(categories)
	// Wrong categories outside the interest pool still deserve a slot.
	for cat := range wrong {
		if !contains(pool, cat) {
			pool = append(pool, cat)
		}
	}
	if len(pool) == 0 {
		return map[string]float64{}
	}

	weights := make(map[string]float64, len(pool))
	total := 0.0
	for _, cat := range pool {
		w := 1.0 * float64(1+wrong[cat])
		weights[cat] = w
		total += w
	}
	for cat := range weights {
		weights[cat] /= total
	}
	return weights
}

// requireShortAnswer forces at least one short-answer item from round 2 on
// when short-answer recall was below 50%. A prior round with no short-answer
// items counts as unprobed, which also forces one.
func requireShortAnswer(in Input) bool {
	if in.NextRound < 2 {
		return false
	}
	if in.ShortAnswerTotal == 0 {
		return true
	}
	recall := float64(in.ShortAnswerCorrect) / float64(in.ShortAnswerTotal)
	return recall < 0.5
}

func dedupe(categories []string) []string {
	seen := make(map[string]bool, len(categories))
	var out []string
	for _, c := range categories {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func contains(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
