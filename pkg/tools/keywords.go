package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/skillforge/skillforge/pkg/models"
)

type difficultyKeywordsArgs struct {
	Difficulty int    `json:"difficulty"`
	Category   string `json:"category"`
}

// vocabularyBand groups difficulty levels that share keywords, concepts, and
// stem templates. Templates carry a %s slot for the category.
type vocabularyBand struct {
	label     string
	keywords  []string
	concepts  []string
	templates []string
}

// vocabularyBands is the curated vocabulary per difficulty range.
var vocabularyBands = []struct {
	min, max int
	band     vocabularyBand
}{
	{1, 2, vocabularyBand{
		label:    "foundational",
		keywords: []string{"definition", "syntax", "basic usage", "terminology", "identify", "recall"},
		concepts: []string{"core vocabulary", "naming and roles of the building blocks", "single-concept recall"},
		templates: []string{
			"What does the term X mean in %s?",
			"Which of the following is a valid %s construct?",
		},
	}},
	{3, 4, vocabularyBand{
		label:    "applied-basics",
		keywords: []string{"common pitfall", "standard library", "error handling", "simple snippet", "expected output", "comparison"},
		concepts: []string{"applying one concept to a concrete situation", "reading short snippets", "spotting an obvious mistake"},
		templates: []string{
			"What is the output of this short %s snippet?",
			"Which option correctly handles this error in %s?",
		},
	}},
	{5, 6, vocabularyBand{
		label:    "working-knowledge",
		keywords: []string{"trade-off", "edge case", "debugging", "refactoring", "interaction of two features", "performance basics"},
		concepts: []string{"combining two concepts", "reasoning about a realistic 5-15 line snippet", "choosing between alternatives"},
		templates: []string{
			"Given this %s scenario, which approach avoids the described edge case?",
			"Why does this %s code behave differently than expected?",
		},
	}},
	{7, 8, vocabularyBand{
		label:    "advanced",
		keywords: []string{"concurrency hazard", "memory model", "isolation level", "failure mode", "distributed system", "design constraint"},
		concepts: []string{"non-obvious behavior", "subtle bugs", "system-level reasoning under constraints"},
		templates: []string{
			"Under which conditions does this %s design lose its guarantee?",
			"Which failure mode can this %s setup exhibit under load?",
		},
	}},
	{9, 10, vocabularyBand{
		label:    "expert",
		keywords: []string{"internals", "protocol corner case", "consistency guarantee", "optimization under constraint", "formal property", "rare interaction"},
		concepts: []string{"implementation internals", "corner cases that distinguish senior specialists", "properties that hold only under narrow assumptions"},
		templates: []string{
			"In which corner case does the %s protocol violate the usual expectation?",
			"Which formal property of %s breaks under this rare interaction?",
		},
	}},
}

// getDifficultyKeywords returns keywords, concepts, and example questions for
// a target difficulty within a category.
func (r *Registry) getDifficultyKeywords(_ context.Context, args json.RawMessage) (any, *toolError) {
	var req difficultyKeywordsArgs
	if terr := decodeArgs(args, &req); terr != nil {
		return nil, terr
	}
	if req.Difficulty < models.MinDifficulty || req.Difficulty > models.MaxDifficulty {
		return nil, errBadInput("difficulty must be between %d and %d", models.MinDifficulty, models.MaxDifficulty)
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, errBadInput("category is required")
	}

	for _, entry := range vocabularyBands {
		if req.Difficulty >= entry.min && req.Difficulty <= entry.max {
			examples := make([]string, 0, len(entry.band.templates))
			for _, tpl := range entry.band.templates {
				examples = append(examples, fmt.Sprintf(tpl, category))
			}
			return map[string]any{
				"difficulty":        req.Difficulty,
				"category":          category,
				"band":              entry.band.label,
				"keywords":          entry.band.keywords,
				"concepts":          entry.band.concepts,
				"example_questions": examples,
			}, nil
		}
	}
	// Unreachable given the range check.
	return nil, errBadInput("difficulty %d not covered", req.Difficulty)
}
