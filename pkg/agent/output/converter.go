// Package output converts a finished agent run into validated assessment
// items. The converter is deliberately lossy-tolerant: LLM output is messy,
// and a partially usable answer beats a failed round.
package output

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/skillforge/skillforge/pkg/agent"
	"github.com/skillforge/skillforge/pkg/models"
)

// Diagnostics records what the converter had to do to extract items.
type Diagnostics struct {
	// Which cleanup stage produced a parsable document ("" = none worked).
	ParseStage string `json:"parse_stage,omitempty"`

	// Items recovered from save_generated_question calls instead of the
	// final answer.
	UsedTranscriptFallback bool `json:"used_transcript_fallback,omitempty"`

	// Per-item rejection reasons, indexed by position in the raw list.
	Rejected []string `json:"rejected,omitempty"`
}

// Convert extracts validated items from a run result. It never returns an
// error: an unusable run yields an empty slice and diagnostics explaining why.
func Convert(result *agent.RunResult) ([]models.GeneratedItem, Diagnostics) {
	diag := Diagnostics{}
	if result == nil {
		return nil, diag
	}

	raw, stage := extractItemList(result.FinalAnswer)
	diag.ParseStage = stage

	if len(raw) == 0 && result.Transcript != nil {
		raw = itemsFromTranscript(result.Transcript)
		if len(raw) > 0 {
			diag.UsedTranscriptFallback = true
		}
	}

	items := make([]models.GeneratedItem, 0, len(raw))
	for i, rawItem := range raw {
		item, err := buildItem(rawItem)
		if err != nil {
			diag.Rejected = append(diag.Rejected, fmt.Sprintf("item %d: %s", i, err))
			continue
		}
		items = append(items, item)
	}

	if len(diag.Rejected) > 0 {
		slog.Debug("converter rejected items", "count", len(diag.Rejected))
	}
	return items, diag
}

// rawItem is the untyped shape of one question object from LLM output.
type rawItem map[string]any

// extractItemList finds and parses the question list inside free text.
func extractItemList(text string) ([]rawItem, string) {
	if strings.TrimSpace(text) == "" {
		return nil, ""
	}

	// The model sometimes emits several Final Answer blocks; the last wins.
	if idx := strings.LastIndex(text, "Final Answer:"); idx != -1 {
		text = text[idx+len("Final Answer:"):]
	}

	candidate := scanBalancedJSON(text)
	if candidate == "" {
		return nil, ""
	}

	for _, stage := range cleanupStages {
		doc, ok := tryParse(stage.apply(candidate))
		if !ok {
			continue
		}
		return doc, stage.name
	}
	return nil, ""
}

// scanBalancedJSON returns the first balanced {...} or [...] block in text,
// respecting string literals and escapes.
func scanBalancedJSON(text string) string {
	start := -1
	for i, r := range text {
		if r == '{' || r == '[' {
			start = i
			break
		}
	}
	if start == -1 {
		return ""
	}

	open := text[start]
	var close byte = '}'
	if open == '[' {
		close = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == open:
			depth++
		case !inString && c == close:
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	// Unterminated block: return the rest; a cleanup stage may still rescue it.
	return text[start:]
}

// cleanupStage is one repair attempt in the parse cascade.
type cleanupStage struct {
	name  string
	apply func(string) string
}

var (
	pythonTruePattern  = regexp.MustCompile(`\bTrue\b`)
	pythonFalsePattern = regexp.MustCompile(`\bFalse\b`)
	pythonNonePattern  = regexp.MustCompile(`\bNone\b`)
	trailingCommaRe    = regexp.MustCompile(`,\s*([}\]])`)
	badEscapeRe        = regexp.MustCompile(`\\([^"\\/bfnrtu])`)
)

// cleanupStages run in order; the first stage whose output parses wins.
var cleanupStages = []cleanupStage{
	{"as_is", func(s string) string { return s }},
	{"python_literals", func(s string) string {
		s = pythonTruePattern.ReplaceAllString(s, "true")
		s = pythonFalsePattern.ReplaceAllString(s, "false")
		return pythonNonePattern.ReplaceAllString(s, "null")
	}},
	{"trailing_commas", func(s string) string {
		return trailingCommaRe.ReplaceAllString(s, "$1")
	}},
	{"bad_escapes", func(s string) string {
		return badEscapeRe.ReplaceAllString(s, `\\$1`)
	}},
	{"control_chars", func(s string) string {
		var sb strings.Builder
		sb.Grow(len(s))
		for _, r := range s {
			if r < 0x20 && r != '\n' && r != '\t' {
				continue
			}
			sb.WriteRune(r)
		}
		return sb.String()
	}},
}

// tryParse parses candidate as either {"questions": [...]} or a bare list.
func tryParse(candidate string) ([]rawItem, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return nil, false
	}

	if strings.HasPrefix(candidate, "{") {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal([]byte(candidate), &wrapper); err != nil {
			return nil, false
		}
		if qs, ok := wrapper["questions"]; ok {
			return parseItemArray(qs)
		}
		// A single bare item object.
		var item rawItem
		if err := json.Unmarshal([]byte(candidate), &item); err != nil {
			return nil, false
		}
		if _, ok := item["stem"]; ok {
			return []rawItem{item}, true
		}
		return nil, false
	}

	return parseItemArray(json.RawMessage(candidate))
}

func parseItemArray(data json.RawMessage) ([]rawItem, bool) {
	var items []rawItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	return items, true
}

// itemsFromTranscript recovers items from successful save_generated_question
// calls when the final answer is unusable.
func itemsFromTranscript(transcript *agent.Transcript) []rawItem {
	var items []rawItem
	for _, inv := range transcript.Invocations {
		if inv.Name != "save_generated_question" {
			continue
		}
		if inv.Result != nil && inv.Result.IsError {
			continue
		}
		var item rawItem
		if err := json.Unmarshal([]byte(inv.Arguments), &item); err != nil {
			continue
		}
		if _, ok := item["stem"]; ok {
			items = append(items, item)
		}
	}
	return items
}

// buildItem validates one raw item and converts it to the domain model.
func buildItem(raw rawItem) (models.GeneratedItem, error) {
	var item models.GeneratedItem

	stem, _ := raw["stem"].(string)
	stem = strings.TrimSpace(stem)
	if stem == "" {
		return item, fmt.Errorf("empty stem")
	}
	if len([]rune(stem)) > models.MaxStemLength {
		return item, fmt.Errorf("stem exceeds %d characters", models.MaxStemLength)
	}

	itemTypeStr, _ := raw["item_type"].(string)
	itemType := models.ItemType(itemTypeStr)
	if !itemType.Valid() {
		return item, fmt.Errorf("invalid item_type %q", itemTypeStr)
	}

	category, _ := raw["category"].(string)
	category = strings.TrimSpace(category)
	if category == "" {
		return item, fmt.Errorf("empty category")
	}

	difficulty, ok := intFromAny(raw["difficulty"])
	if !ok || difficulty < models.MinDifficulty || difficulty > models.MaxDifficulty {
		return item, fmt.Errorf("difficulty out of range [%d..%d]", models.MinDifficulty, models.MaxDifficulty)
	}

	choices := stringsFromAny(raw["choices"])

	correctHint := correctAnswerHint(raw)
	schema, err := models.NormalizeAnswerSchema(raw["answer_schema"], itemType, correctHint)
	if err != nil {
		return item, fmt.Errorf("answer_schema: %w", err)
	}

	if itemType == models.ItemTypeMultipleChoice {
		if len(choices) < models.MinChoices || len(choices) > models.MaxChoices {
			return item, fmt.Errorf("multiple_choice needs %d-%d choices, got %d",
				models.MinChoices, models.MaxChoices, len(choices))
		}
		if schema.Kind == models.AnswerKindExactMatch && !containsFold(choices, schema.Payload.CorrectAnswer) {
			return item, fmt.Errorf("correct answer %q not among choices", schema.Payload.CorrectAnswer)
		}
	}

	item = models.GeneratedItem{
		Stem:         stem,
		ItemType:     itemType,
		Choices:      choices,
		AnswerSchema: schema,
		Difficulty:   difficulty,
		Category:     category,
	}
	return item, nil
}

// correctAnswerHint pulls a top-level correct answer field, used by the
// normalizer when answer_schema is missing.
func correctAnswerHint(raw rawItem) string {
	for _, key := range []string{"correct_answer", "correct_key", "answer"} {
		if s, ok := raw[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func intFromAny(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}

func stringsFromAny(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func containsFold(list []string, target string) bool {
	for _, s := range list {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(target)) {
			return true
		}
	}
	return false
}
