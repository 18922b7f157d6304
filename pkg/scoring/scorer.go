// Package scoring implements the deterministic answer scorer shared by the
// batch scoring service and the score_and_explain tool. It is pure: no store
// access, no clock reads beyond what the caller passes in.
package scoring

import (
	"strings"

	"github.com/skillforge/skillforge/pkg/models"
)

// Result is the outcome of scoring one answer against its schema.
type Result struct {
	IsCorrect bool
	BaseScore float64 // 0..100, before time penalty
}

// Score evaluates a stored user answer against the question's canonical
// answer schema. Malformed or missing answers score zero rather than erroring:
// the round must always produce a total over all N questions.
func Score(schema models.AnswerSchema, itemType models.ItemType, userAnswer any) Result {
	switch itemType {
	case models.ItemTypeMultipleChoice:
		return scoreMultipleChoice(schema, userAnswer)
	case models.ItemTypeTrueFalse:
		return scoreTrueFalse(schema, userAnswer)
	case models.ItemTypeShortAnswer:
		return scoreShortAnswer(schema, userAnswer)
	}
	return Result{}
}

func scoreMultipleChoice(schema models.AnswerSchema, userAnswer any) Result {
	m, ok := userAnswer.(map[string]any)
	if !ok {
		return Result{}
	}
	selected, _ := m["selected_key"].(string)
	selected = strings.TrimSpace(selected)
	correct := strings.TrimSpace(schema.Payload.CorrectAnswer)
	if selected == "" || correct == "" {
		return Result{}
	}
	if selected == correct {
		return Result{IsCorrect: true, BaseScore: 100}
	}
	return Result{}
}

func scoreTrueFalse(schema models.AnswerSchema, userAnswer any) Result {
	m, ok := userAnswer.(map[string]any)
	if !ok {
		return Result{}
	}
	got, ok := models.ParseBoolish(m["answer"])
	if !ok {
		return Result{}
	}

	var want bool
	switch schema.Kind {
	case models.AnswerKindTrueFalse:
		if schema.Payload.CorrectBool == nil {
			return Result{}
		}
		want = *schema.Payload.CorrectBool
	case models.AnswerKindExactMatch:
		// True/false items normalized from legacy shapes may carry the answer
		// as an exact-match string ("True").
		b, ok := models.ParseBoolish(schema.Payload.CorrectAnswer)
		if !ok {
			return Result{}
		}
		want = b
	default:
		return Result{}
	}

	if got == want {
		return Result{IsCorrect: true, BaseScore: 100}
	}
	return Result{}
}

func scoreShortAnswer(schema models.AnswerSchema, userAnswer any) Result {
	text := shortAnswerText(userAnswer)
	keywords := schema.Payload.Keywords

	if len(keywords) == 0 {
		// Degenerate schema: any non-empty answer passes.
		if strings.TrimSpace(text) != "" {
			return Result{IsCorrect: true, BaseScore: 100}
		}
		return Result{}
	}

	hits := KeywordHits(text, keywords)
	score := 100 * float64(hits) / float64(len(keywords))
	return Result{IsCorrect: hits == len(keywords), BaseScore: score}
}

// shortAnswerText accepts both the canonical {text: "..."} object and the
// historical bare-string form found in older rows.
func shortAnswerText(userAnswer any) string {
	switch v := userAnswer.(type) {
	case string:
		return v
	case map[string]any:
		if s, ok := v["text"].(string); ok {
			return s
		}
	}
	return ""
}

// KeywordHits counts case-insensitive substring hits of keywords in text.
// Keywords are assumed already de-duplicated by the normalizer.
func KeywordHits(text string, keywords []string) int {
	lower := strings.ToLower(text)
	hits := 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			hits++
		}
	}
	return hits
}

// ApplyTimePenalty reduces baseScore linearly with overtime. At or under the
// limit the score is untouched; the penalty fully erases the score once
// elapsed reaches twice the limit.
func ApplyTimePenalty(baseScore float64, elapsedMS, timeLimitMS int64) float64 {
	if timeLimitMS <= 0 || elapsedMS <= timeLimitMS {
		return baseScore
	}
	excessRatio := float64(elapsedMS-timeLimitMS) / float64(timeLimitMS)
	final := baseScore - excessRatio*baseScore
	if final < 0 {
		return 0
	}
	return final
}
