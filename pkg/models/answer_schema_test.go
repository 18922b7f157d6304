package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestAnswerSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		schema  AnswerSchema
		wantErr bool
	}{
		{
			"valid exact_match",
			AnswerSchema{Kind: AnswerKindExactMatch, Payload: AnswerPayload{CorrectAnswer: "A"}},
			false,
		},
		{
			"valid keyword_match",
			AnswerSchema{Kind: AnswerKindKeywordMatch, Payload: AnswerPayload{Keywords: []string{"x"}}},
			false,
		},
		{
			"valid true_false",
			AnswerSchema{Kind: AnswerKindTrueFalse, Payload: AnswerPayload{CorrectBool: boolPtr(false)}},
			false,
		},
		{
			"no payload",
			AnswerSchema{Kind: AnswerKindExactMatch},
			true,
		},
		{
			"two payloads",
			AnswerSchema{Kind: AnswerKindExactMatch, Payload: AnswerPayload{CorrectAnswer: "A", Keywords: []string{"x"}}},
			true,
		},
		{
			"kind and payload mismatch",
			AnswerSchema{Kind: AnswerKindTrueFalse, Payload: AnswerPayload{CorrectAnswer: "A"}},
			true,
		},
		{
			"empty keyword",
			AnswerSchema{Kind: AnswerKindKeywordMatch, Payload: AnswerPayload{Keywords: []string{" "}}},
			true,
		},
		{
			"unknown kind",
			AnswerSchema{Kind: "regex_match", Payload: AnswerPayload{CorrectAnswer: "A"}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnswerSchemaEqual(t *testing.T) {
	a := AnswerSchema{Kind: AnswerKindExactMatch, Payload: AnswerPayload{CorrectAnswer: "A"}, Explanation: "x"}
	b := a
	assert.True(t, a.Equal(b))

	b.Explanation = "y"
	assert.False(t, a.Equal(b))

	kw1 := AnswerSchema{Kind: AnswerKindKeywordMatch, Payload: AnswerPayload{Keywords: []string{"x", "y"}}}
	kw2 := AnswerSchema{Kind: AnswerKindKeywordMatch, Payload: AnswerPayload{Keywords: []string{"x"}}}
	assert.False(t, kw1.Equal(kw2))

	tf1 := AnswerSchema{Kind: AnswerKindTrueFalse, Payload: AnswerPayload{CorrectBool: boolPtr(true)}}
	tf2 := AnswerSchema{Kind: AnswerKindTrueFalse, Payload: AnswerPayload{CorrectBool: boolPtr(false)}}
	tf3 := AnswerSchema{Kind: AnswerKindTrueFalse}
	assert.False(t, tf1.Equal(tf2))
	assert.False(t, tf1.Equal(tf3))
	assert.True(t, tf1.Equal(AnswerSchema{Kind: AnswerKindTrueFalse, Payload: AnswerPayload{CorrectBool: boolPtr(true)}}))
}

func TestParseBoolish(t *testing.T) {
	truthy := []any{true, "true", "TRUE", " yes ", "y", "t", "1", 1, float64(1)}
	for _, v := range truthy {
		got, ok := ParseBoolish(v)
		assert.True(t, ok, "%v should parse", v)
		assert.True(t, got, "%v should be true", v)
	}

	falsy := []any{false, "false", "No", "n", "f", "0", 0, float64(0)}
	for _, v := range falsy {
		got, ok := ParseBoolish(v)
		assert.True(t, ok, "%v should parse", v)
		assert.False(t, got, "%v should be false", v)
	}

	unparseable := []any{"maybe", "", 2, 0.5, nil, []string{"true"}}
	for _, v := range unparseable {
		_, ok := ParseBoolish(v)
		assert.False(t, ok, "%v should not parse", v)
	}
}

func TestSelfLevelBaselineDifficulty(t *testing.T) {
	assert.Equal(t, 3, SelfLevelBeginner.BaselineDifficulty())
	assert.Equal(t, 5, SelfLevelIntermediate.BaselineDifficulty())
	assert.Equal(t, 7, SelfLevelAdvanced.BaselineDifficulty())

	assert.True(t, SelfLevelBeginner.Valid())
	assert.False(t, SelfLevel("expert").Valid())
}

func TestItemTypeValid(t *testing.T) {
	assert.True(t, ItemTypeMultipleChoice.Valid())
	assert.True(t, ItemTypeTrueFalse.Valid())
	assert.True(t, ItemTypeShortAnswer.Valid())
	assert.False(t, ItemType("essay").Valid())
	assert.False(t, ItemType("").Valid())
}
