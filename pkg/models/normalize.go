package models

import (
	"fmt"
	"strings"
	"time"
)

// Source format audit tags recorded by the normalizer. Every canonical
// schema carries the tag of the input shape it was normalized from.
const (
	SourceFormatCanonical       = "canonical"
	SourceFormatTyped           = "typed"
	SourceFormatLegacyKey       = "legacy_correct_key"
	SourceFormatCorrectKeywords = "correct_keywords"
	SourceFormatBareKeywords    = "keywords"
	SourceFormatBareString      = "bare_string"
	SourceFormatInferred        = "inferred"
)

// NormalizeAnswerSchema collapses any recognized answer-schema shape into the
// canonical tagged record. raw is the decoded JSON value found under the
// item's answer_schema key (map, string, or nil). itemCorrectAnswer is the
// item-level correct_answer field, used when the schema itself carries no
// answer content.
//
// The normalizer never synthesizes answer content: when no usable answer can
// be found it returns an error and the item is rejected upstream.
func NormalizeAnswerSchema(raw any, itemType ItemType, itemCorrectAnswer string) (AnswerSchema, error) {
	switch v := raw.(type) {
	case nil:
		return inferSchema(itemType, itemCorrectAnswer)

	case string:
		return normalizeBareString(v, itemType, itemCorrectAnswer)

	case map[string]any:
		return normalizeMap(v, itemType, itemCorrectAnswer)

	default:
		return AnswerSchema{}, fmt.Errorf("unrecognized answer schema shape %T", raw)
	}
}

func normalizeMap(m map[string]any, itemType ItemType, itemCorrectAnswer string) (AnswerSchema, error) {
	explanation, _ := m["explanation"].(string)

	// Already-canonical: {kind, payload} round-trips unchanged (fixed point).
	if kind, ok := m["kind"].(string); ok {
		if payload, ok := m["payload"].(map[string]any); ok {
			return normalizeCanonical(kind, payload, m, explanation)
		}
	}

	// Typed: {type: "...", correct_answer | keywords}
	if typ, ok := m["type"].(string); ok {
		switch AnswerSchemaKind(typ) {
		case AnswerKindExactMatch:
			answer := stringField(m, "correct_answer")
			if answer == "" {
				answer = itemCorrectAnswer
			}
			if answer == "" {
				return AnswerSchema{}, fmt.Errorf("exact_match schema has no correct answer")
			}
			return newSchema(AnswerKindExactMatch, AnswerPayload{CorrectAnswer: answer}, explanation, SourceFormatTyped), nil

		case AnswerKindKeywordMatch:
			keywords, err := cleanKeywords(m["keywords"])
			if err != nil {
				return AnswerSchema{}, err
			}
			return newSchema(AnswerKindKeywordMatch, AnswerPayload{Keywords: keywords}, explanation, SourceFormatTyped), nil

		case AnswerKindTrueFalse:
			b, ok := ParseBoolish(m["correct_answer"])
			if !ok {
				b, ok = ParseBoolish(m["correct_bool"])
			}
			if !ok {
				return AnswerSchema{}, fmt.Errorf("true_false schema has no boolean correct answer")
			}
			return newSchema(AnswerKindTrueFalse, AnswerPayload{CorrectBool: &b}, explanation, SourceFormatTyped), nil

		default:
			return AnswerSchema{}, fmt.Errorf("unknown answer schema type %q", typ)
		}
	}

	// Legacy mock format: {correct_key: K, explanation?}
	if key := stringField(m, "correct_key"); key != "" {
		return newSchema(AnswerKindExactMatch, AnswerPayload{CorrectAnswer: key}, explanation, SourceFormatLegacyKey), nil
	}

	// {correct_keywords: [...]}
	if _, ok := m["correct_keywords"]; ok {
		keywords, err := cleanKeywords(m["correct_keywords"])
		if err != nil {
			return AnswerSchema{}, err
		}
		return newSchema(AnswerKindKeywordMatch, AnswerPayload{Keywords: keywords}, explanation, SourceFormatCorrectKeywords), nil
	}

	// {keywords: [...]}
	if _, ok := m["keywords"]; ok {
		keywords, err := cleanKeywords(m["keywords"])
		if err != nil {
			return AnswerSchema{}, err
		}
		return newSchema(AnswerKindKeywordMatch, AnswerPayload{Keywords: keywords}, explanation, SourceFormatBareKeywords), nil
	}

	// A bare {correct_answer: X} map is treated like the typed exact_match shape.
	if answer := stringField(m, "correct_answer"); answer != "" {
		return newSchema(AnswerKindExactMatch, AnswerPayload{CorrectAnswer: answer}, explanation, SourceFormatTyped), nil
	}

	return AnswerSchema{}, fmt.Errorf("answer schema map has no recognized keys")
}

// normalizeCanonical re-validates an already-canonical record. The returned
// schema equals the input up to CreatedAt.
func normalizeCanonical(kind string, payload map[string]any, m map[string]any, explanation string) (AnswerSchema, error) {
	schema := AnswerSchema{
		Kind:        AnswerSchemaKind(kind),
		Explanation: explanation,
		CreatedAt:   time.Now().UTC(),
	}
	if sf, ok := m["source_format"].(string); ok && sf != "" {
		schema.SourceFormat = sf
	} else {
		schema.SourceFormat = SourceFormatCanonical
	}

	switch schema.Kind {
	case AnswerKindExactMatch:
		schema.Payload.CorrectAnswer = stringField(payload, "correct_answer")
	case AnswerKindKeywordMatch:
		keywords, err := cleanKeywords(payload["keywords"])
		if err != nil {
			return AnswerSchema{}, err
		}
		schema.Payload.Keywords = keywords
	case AnswerKindTrueFalse:
		if b, ok := ParseBoolish(payload["correct_bool"]); ok {
			schema.Payload.CorrectBool = &b
		}
	}

	if err := schema.Validate(); err != nil {
		return AnswerSchema{}, err
	}
	return schema, nil
}

// normalizeBareString handles schemas given as just a kind name, e.g.
// answer_schema: "exact_match". The answer content must come from the item.
func normalizeBareString(s string, itemType ItemType, itemCorrectAnswer string) (AnswerSchema, error) {
	switch AnswerSchemaKind(strings.TrimSpace(s)) {
	case AnswerKindExactMatch:
		if itemCorrectAnswer == "" {
			return AnswerSchema{}, fmt.Errorf("bare exact_match schema with no item correct answer")
		}
		return newSchema(AnswerKindExactMatch, AnswerPayload{CorrectAnswer: itemCorrectAnswer}, "", SourceFormatBareString), nil

	case AnswerKindTrueFalse:
		b, ok := ParseBoolish(itemCorrectAnswer)
		if !ok {
			return AnswerSchema{}, fmt.Errorf("bare true_false schema with no boolean item answer")
		}
		return newSchema(AnswerKindTrueFalse, AnswerPayload{CorrectBool: &b}, "", SourceFormatBareString), nil

	case AnswerKindKeywordMatch:
		// No keyword content to draw from — reject rather than invent.
		return AnswerSchema{}, fmt.Errorf("bare keyword_match schema carries no keywords")

	default:
		return AnswerSchema{}, fmt.Errorf("unrecognized bare answer schema %q", s)
	}
}

// inferSchema builds a schema when the generator omitted one entirely.
func inferSchema(itemType ItemType, itemCorrectAnswer string) (AnswerSchema, error) {
	switch itemType {
	case ItemTypeMultipleChoice, ItemTypeTrueFalse:
		if itemCorrectAnswer == "" {
			return AnswerSchema{}, fmt.Errorf("cannot infer answer schema: item has no correct answer")
		}
		return newSchema(AnswerKindExactMatch, AnswerPayload{CorrectAnswer: itemCorrectAnswer}, "", SourceFormatInferred), nil

	case ItemTypeShortAnswer:
		// Short answers need keywords; there is nothing to infer them from.
		return AnswerSchema{}, fmt.Errorf("cannot infer keyword schema for short answer item")

	default:
		return AnswerSchema{}, fmt.Errorf("cannot infer answer schema for item type %q", itemType)
	}
}

func newSchema(kind AnswerSchemaKind, payload AnswerPayload, explanation, sourceFormat string) AnswerSchema {
	return AnswerSchema{
		Kind:         kind,
		Payload:      payload,
		Explanation:  explanation,
		SourceFormat: sourceFormat,
		CreatedAt:    time.Now().UTC(),
	}
}

// cleanKeywords trims, drops empties, and de-duplicates case-insensitively
// while keeping the first occurrence's original casing. Rejects empty lists.
func cleanKeywords(raw any) ([]string, error) {
	var in []string
	switch v := raw.(type) {
	case []string:
		in = v
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("keyword list contains non-string value %T", item)
			}
			in = append(in, s)
		}
	case nil:
		return nil, fmt.Errorf("keyword schema missing keywords")
	default:
		return nil, fmt.Errorf("keywords must be a list, got %T", raw)
	}

	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, kw := range in {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		lower := strings.ToLower(kw)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		out = append(out, kw)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("keyword schema has no usable keywords")
	}
	return out, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}
