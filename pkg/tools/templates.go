package tools

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/skillforge/skillforge/ent"
	"github.com/skillforge/skillforge/ent/attemptanswer"
	"github.com/skillforge/skillforge/ent/question"
	"github.com/skillforge/skillforge/pkg/models"
)

const maxTemplateResults = 5

// questionTemplate is one reusable question pattern returned to the agent.
type questionTemplate struct {
	Pattern     string  `json:"pattern"`
	ItemType    string  `json:"item_type"`
	Category    string  `json:"category"`
	Difficulty  int     `json:"difficulty"`
	CorrectRate float64 `json:"correct_rate"`
	UsageCount  int     `json:"usage_count"`
}

type searchTemplatesArgs struct {
	Category string `json:"category"`
	ItemType string `json:"item_type"`
}

// searchQuestionTemplates merges the curated seed table with patterns mined
// from previously scored questions in the same category, ranked by correct
// rate then usage.
func (r *Registry) searchQuestionTemplates(ctx context.Context, args json.RawMessage) (any, *toolError) {
	var req searchTemplatesArgs
	if terr := decodeArgs(args, &req); terr != nil {
		return nil, terr
	}
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))
	if req.Category == "" {
		return nil, errBadInput("category is required")
	}
	if req.ItemType != "" && !models.ItemType(req.ItemType).Valid() {
		return nil, errBadInput("unknown item_type %q", req.ItemType)
	}

	templates := seedTemplates(req.Category, req.ItemType)

	mined, err := r.minedTemplates(ctx, req.Category, req.ItemType)
	if err != nil {
		return nil, errStore(err)
	}
	templates = append(templates, mined...)

	sort.SliceStable(templates, func(i, j int) bool {
		if templates[i].CorrectRate != templates[j].CorrectRate {
			return templates[i].CorrectRate > templates[j].CorrectRate
		}
		return templates[i].UsageCount > templates[j].UsageCount
	})
	if len(templates) > maxTemplateResults {
		templates = templates[:maxTemplateResults]
	}

	return map[string]any{"templates": templates}, nil
}

// minedTemplates derives templates from stored questions that have at least
// one scored answer.
func (r *Registry) minedTemplates(ctx context.Context, category, itemType string) ([]questionTemplate, error) {
	q := r.client.Question.Query().
		Where(question.CategoryEqualFold(category)).
		Order(ent.Desc(question.FieldCreatedAt)).
		Limit(50)
	if itemType != "" {
		q = q.Where(question.ItemTypeEQ(question.ItemType(itemType)))
	}
	questions, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(questions))
	for _, qu := range questions {
		ids = append(ids, qu.ID)
	}
	answers, err := r.client.AttemptAnswer.Query().
		Where(
			attemptanswer.QuestionIDIn(ids...),
			attemptanswer.IsCorrectNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}

	type tally struct{ total, correct int }
	tallies := make(map[string]*tally)
	for _, a := range answers {
		t := tallies[a.QuestionID]
		if t == nil {
			t = &tally{}
			tallies[a.QuestionID] = t
		}
		t.total++
		if a.IsCorrect != nil && *a.IsCorrect {
			t.correct++
		}
	}

	var out []questionTemplate
	for _, qu := range questions {
		t := tallies[qu.ID]
		if t == nil || t.total == 0 {
			continue
		}
		out = append(out, questionTemplate{
			Pattern:     qu.Stem,
			ItemType:    string(qu.ItemType),
			Category:    qu.Category,
			Difficulty:  qu.Difficulty,
			CorrectRate: float64(t.correct) / float64(t.total),
			UsageCount:  t.total,
		})
	}
	return out, nil
}

// seedTable is the curated starter set used before the store has history.
// Patterns use {placeholders} the agent substitutes per item.
var seedTable = []questionTemplate{
	{Pattern: "Which of the following best describes {concept}?", ItemType: "multiple_choice", Category: "general", Difficulty: 3, CorrectRate: 0.72, UsageCount: 40},
	{Pattern: "What is the output of the following {language} snippet?\n{snippet}", ItemType: "multiple_choice", Category: "general", Difficulty: 5, CorrectRate: 0.58, UsageCount: 35},
	{Pattern: "{statement}. True or false?", ItemType: "true_false", Category: "general", Difficulty: 3, CorrectRate: 0.69, UsageCount: 30},
	{Pattern: "Explain in one or two sentences what {mechanism} does and when you would use it.", ItemType: "short_answer", Category: "general", Difficulty: 6, CorrectRate: 0.44, UsageCount: 22},
	{Pattern: "Which option correctly orders the steps of {process}?", ItemType: "multiple_choice", Category: "general", Difficulty: 6, CorrectRate: 0.51, UsageCount: 18},
	{Pattern: "Which HTTP status code is returned when {scenario}?", ItemType: "multiple_choice", Category: "http", Difficulty: 4, CorrectRate: 0.66, UsageCount: 25},
	{Pattern: "A request with {header} behaves how under {condition}?", ItemType: "multiple_choice", Category: "http", Difficulty: 7, CorrectRate: 0.39, UsageCount: 12},
	{Pattern: "Which isolation level prevents {anomaly}?", ItemType: "multiple_choice", Category: "database", Difficulty: 7, CorrectRate: 0.41, UsageCount: 15},
	{Pattern: "An index on {columns} speeds up this query. True or false?\n{query}", ItemType: "true_false", Category: "database", Difficulty: 5, CorrectRate: 0.55, UsageCount: 14},
	{Pattern: "Describe the race condition in the following code and how to fix it.\n{snippet}", ItemType: "short_answer", Category: "concurrency", Difficulty: 8, CorrectRate: 0.31, UsageCount: 10},
	{Pattern: "What does {primitive} guarantee about memory visibility?", ItemType: "multiple_choice", Category: "concurrency", Difficulty: 7, CorrectRate: 0.37, UsageCount: 13},
	{Pattern: "Which data structure gives {complexity} for {operation}?", ItemType: "multiple_choice", Category: "algorithms", Difficulty: 5, CorrectRate: 0.60, UsageCount: 20},
}

// seedTemplates returns matching seed entries; the "general" category backs
// every search so the agent always has at least one pattern per item type.
func seedTemplates(category, itemType string) []questionTemplate {
	var out []questionTemplate
	for _, t := range seedTable {
		if t.Category != category && t.Category != "general" {
			continue
		}
		if itemType != "" && t.ItemType != itemType {
			continue
		}
		out = append(out, t)
	}
	return out
}
