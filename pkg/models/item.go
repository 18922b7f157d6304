// Package models defines the core value types shared across the assessment
// engine: item types, the canonical answer schema, and the normalizer that
// collapses the zoo of generator output shapes into that canonical form.
package models

// ItemType classifies a generated question.
type ItemType string

const (
	ItemTypeMultipleChoice ItemType = "multiple_choice"
	ItemTypeTrueFalse      ItemType = "true_false"
	ItemTypeShortAnswer    ItemType = "short_answer"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeMultipleChoice, ItemTypeTrueFalse, ItemTypeShortAnswer:
		return true
	}
	return false
}

// GeneratedItem is one fully-validated question produced by the generation
// agent. AnswerSchema is always canonical — the output converter runs the
// normalizer before constructing a GeneratedItem.
type GeneratedItem struct {
	Stem         string       `json:"stem"`
	ItemType     ItemType     `json:"item_type"`
	Choices      []string     `json:"choices,omitempty"`
	AnswerSchema AnswerSchema `json:"answer_schema"`
	Difficulty   int          `json:"difficulty"`
	Category     string       `json:"category"`
}

// MinDifficulty and MaxDifficulty bound the difficulty scale.
const (
	MinDifficulty = 1
	MaxDifficulty = 10
)

// MC choice count bounds enforced by quality validation and the converter.
const (
	MinChoices = 4
	MaxChoices = 5
)

// MaxStemLength is the hard stem length limit (quality rule).
const MaxStemLength = 250
