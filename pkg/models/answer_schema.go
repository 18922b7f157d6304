package models

import (
	"fmt"
	"strings"
	"time"
)

// AnswerSchemaKind tags the canonical answer schema variants.
type AnswerSchemaKind string

const (
	AnswerKindExactMatch   AnswerSchemaKind = "exact_match"
	AnswerKindKeywordMatch AnswerSchemaKind = "keyword_match"
	AnswerKindTrueFalse    AnswerSchemaKind = "true_false"
)

// AnswerPayload carries exactly one of the three payload shapes.
// Which field is set is determined by the enclosing schema's Kind.
type AnswerPayload struct {
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
	CorrectBool   *bool    `json:"correct_bool,omitempty"`
}

// AnswerSchema is the canonical description of what makes an answer correct.
// It is immutable after creation and compared by value. Persisted as a JSON
// document on the question row; consumers must not rely on extra keys.
type AnswerSchema struct {
	Kind         AnswerSchemaKind `json:"kind"`
	Payload      AnswerPayload    `json:"payload"`
	Explanation  string           `json:"explanation,omitempty"`
	SourceFormat string           `json:"source_format,omitempty"`
	CreatedAt    time.Time        `json:"created_at,omitempty"`
}

// Validate checks the canonical invariant: exactly one payload shape is set
// and it matches the kind.
func (s AnswerSchema) Validate() error {
	hasExact := s.Payload.CorrectAnswer != ""
	hasKeywords := len(s.Payload.Keywords) > 0
	hasBool := s.Payload.CorrectBool != nil

	set := 0
	for _, b := range []bool{hasExact, hasKeywords, hasBool} {
		if b {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("answer schema must have exactly one payload, has %d", set)
	}

	switch s.Kind {
	case AnswerKindExactMatch:
		if !hasExact {
			return fmt.Errorf("exact_match schema missing correct_answer")
		}
	case AnswerKindKeywordMatch:
		if !hasKeywords {
			return fmt.Errorf("keyword_match schema missing keywords")
		}
		for _, kw := range s.Payload.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("keyword_match schema contains empty keyword")
			}
		}
	case AnswerKindTrueFalse:
		if !hasBool {
			return fmt.Errorf("true_false schema missing correct_bool")
		}
	default:
		return fmt.Errorf("unknown answer schema kind %q", s.Kind)
	}
	return nil
}

// Equal compares two schemas by value, ignoring CreatedAt.
func (s AnswerSchema) Equal(other AnswerSchema) bool {
	if s.Kind != other.Kind ||
		s.Explanation != other.Explanation ||
		s.SourceFormat != other.SourceFormat ||
		s.Payload.CorrectAnswer != other.Payload.CorrectAnswer {
		return false
	}
	if (s.Payload.CorrectBool == nil) != (other.Payload.CorrectBool == nil) {
		return false
	}
	if s.Payload.CorrectBool != nil && *s.Payload.CorrectBool != *other.Payload.CorrectBool {
		return false
	}
	if len(s.Payload.Keywords) != len(other.Payload.Keywords) {
		return false
	}
	for i, kw := range s.Payload.Keywords {
		if kw != other.Payload.Keywords[i] {
			return false
		}
	}
	return true
}

// ParseBoolish interprets the boolean spellings accepted from both the
// generator and end users: true/false, yes/no, 1/0, case-insensitive.
// The second return is false when the value has no boolean reading.
func ParseBoolish(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case float64:
		if x == 1 {
			return true, true
		}
		if x == 0 {
			return false, true
		}
	case int:
		if x == 1 {
			return true, true
		}
		if x == 0 {
			return false, true
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "1", "t", "y":
			return true, true
		case "false", "no", "0", "f", "n":
			return false, true
		}
	}
	return false, false
}
