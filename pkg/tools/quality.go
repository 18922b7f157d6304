package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/skillforge/skillforge/pkg/models"
)

// QualityThreshold is the minimum final score for a draft to pass.
const QualityThreshold = 0.7

// Recommendation values for a validated draft.
const (
	RecommendPass   = "pass"
	RecommendRevise = "revise"
	RecommendReject = "reject"
)

// QualityReport is the result of validating one draft question.
type QualityReport struct {
	IsValid        bool     `json:"is_valid"`
	RuleScore      float64  `json:"rule_score"`
	SemanticScore  float64  `json:"semantic_score"`
	FinalScore     float64  `json:"final_score"`
	Passed         bool     `json:"passed"`
	Recommendation string   `json:"recommendation"`
	Issues         []string `json:"issues"`
}

type validateQualityArgs struct {
	Question map[string]any `json:"question"`
}

// validateQuestionQuality checks a draft against the hard rules and a set of
// semantic heuristics, reporting issues the agent can revise against.
func (r *Registry) validateQuestionQuality(_ context.Context, args json.RawMessage) (any, *toolError) {
	var req validateQualityArgs
	if terr := decodeArgs(args, &req); terr != nil {
		return nil, terr
	}
	if req.Question == nil {
		return nil, errBadInput("question object is required")
	}
	return EvaluateQuality(req.Question), nil
}

// EvaluateQuality runs the full quality pipeline on a raw question object.
// Shared with save_generated_question, which refuses to persist failures.
// A draft passes only when the blended score clears the threshold AND no hard
// rule is violated; semantic issues alone can be outweighed, rule violations
// cannot.
func EvaluateQuality(raw map[string]any) QualityReport {
	var issues []string

	ruleScore, ruleIssues := ruleChecks(raw)
	issues = append(issues, ruleIssues...)

	semanticScore, semIssues := semanticChecks(raw)
	issues = append(issues, semIssues...)

	final := 0.5*ruleScore + 0.5*semanticScore
	if issues == nil {
		issues = []string{}
	}
	passed := final >= QualityThreshold && len(ruleIssues) == 0

	recommendation := RecommendPass
	switch {
	case passed:
	case len(ruleIssues) > 0:
		recommendation = RecommendReject
	default:
		recommendation = RecommendRevise
	}

	return QualityReport{
		IsValid:        passed,
		RuleScore:      ruleScore,
		SemanticScore:  semanticScore,
		FinalScore:     final,
		Passed:         passed,
		Recommendation: recommendation,
		Issues:         issues,
	}
}

// ruleChecks enforce the hard constraints; each failure costs an equal share.
func ruleChecks(raw map[string]any) (float64, []string) {
	var issues []string
	const totalRules = 6

	stem, _ := raw["stem"].(string)
	stem = strings.TrimSpace(stem)
	if stem == "" {
		issues = append(issues, "stem is empty")
	} else if len([]rune(stem)) > models.MaxStemLength {
		issues = append(issues, fmt.Sprintf("stem exceeds %d characters", models.MaxStemLength))
	}

	itemTypeStr, _ := raw["item_type"].(string)
	itemType := models.ItemType(itemTypeStr)
	if !itemType.Valid() {
		issues = append(issues, fmt.Sprintf("item_type %q is not one of multiple_choice, true_false, short_answer", itemTypeStr))
	}

	difficulty, ok := numberAsInt(raw["difficulty"])
	if !ok || difficulty < models.MinDifficulty || difficulty > models.MaxDifficulty {
		issues = append(issues, fmt.Sprintf("difficulty must be an integer between %d and %d", models.MinDifficulty, models.MaxDifficulty))
	}

	category, _ := raw["category"].(string)
	if strings.TrimSpace(category) == "" {
		issues = append(issues, "category is empty")
	}

	choices := stringSlice(raw["choices"])
	schema, schemaErr := models.NormalizeAnswerSchema(raw["answer_schema"], itemType, "")
	if schemaErr != nil {
		issues = append(issues, "answer_schema: "+schemaErr.Error())
	}

	if itemType == models.ItemTypeMultipleChoice {
		switch {
		case len(choices) < models.MinChoices || len(choices) > models.MaxChoices:
			issues = append(issues, fmt.Sprintf("multiple_choice requires %d-%d choices, got %d", models.MinChoices, models.MaxChoices, len(choices)))
		case schemaErr == nil && schema.Kind == models.AnswerKindExactMatch && !choiceListContains(choices, schema.Payload.CorrectAnswer):
			issues = append(issues, fmt.Sprintf("correct answer %q is not among the choices", schema.Payload.CorrectAnswer))
		}
	} else if len(choices) > 0 {
		issues = append(issues, "choices are only allowed on multiple_choice items")
	}

	score := 1.0 - float64(len(issues))/float64(totalRules)
	if score < 0 {
		score = 0
	}
	return score, issues
}

// semanticChecks are softer signals of item quality.
func semanticChecks(raw map[string]any) (float64, []string) {
	var issues []string
	const totalChecks = 5

	stem, _ := raw["stem"].(string)
	stem = strings.TrimSpace(stem)

	if len(strings.Fields(stem)) < 5 {
		issues = append(issues, "stem is too short to be a meaningful question")
	}

	itemType := models.ItemType(fmt.Sprint(raw["item_type"]))
	if itemType != models.ItemTypeTrueFalse && stem != "" &&
		!strings.ContainsAny(stem, "?") && !strings.Contains(stem, ":") {
		issues = append(issues, "stem does not read as a question (no '?' and no prompt colon)")
	}

	choices := stringSlice(raw["choices"])
	if dup := firstDuplicate(choices); dup != "" {
		issues = append(issues, fmt.Sprintf("duplicate choice %q", dup))
	}

	if schemaMap, ok := raw["answer_schema"].(map[string]any); ok {
		if expl, _ := schemaMap["explanation"].(string); strings.TrimSpace(expl) == "" {
			issues = append(issues, "answer_schema has no explanation; feedback quality suffers")
		}
		if kws := keywordList(schemaMap); kws != nil && len(kws) > 6 {
			issues = append(issues, "more than 6 keywords makes full credit unrealistic")
		}
	}

	score := 1.0 - float64(len(issues))/float64(totalChecks)
	if score < 0 {
		score = 0
	}
	return score, issues
}

func numberAsInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func stringSlice(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, e := range list {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func choiceListContains(choices []string, answer string) bool {
	answer = strings.TrimSpace(answer)
	for _, c := range choices {
		if strings.EqualFold(strings.TrimSpace(c), answer) {
			return true
		}
	}
	return false
}

func firstDuplicate(choices []string) string {
	seen := make(map[string]bool, len(choices))
	for _, c := range choices {
		key := strings.ToLower(strings.TrimSpace(c))
		if key == "" {
			continue
		}
		if seen[key] {
			return c
		}
		seen[key] = true
	}
	return ""
}

func keywordList(schemaMap map[string]any) []string {
	payload, ok := schemaMap["payload"].(map[string]any)
	if !ok {
		return nil
	}
	return stringSlice(payload["keywords"])
}
