package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAnswerSchema_Canonical(t *testing.T) {
	t.Run("canonical input is a fixed point", func(t *testing.T) {
		raw := map[string]any{
			"kind":        "exact_match",
			"payload":     map[string]any{"correct_answer": "404"},
			"explanation": "not found",
		}
		schema, err := NormalizeAnswerSchema(raw, ItemTypeMultipleChoice, "")
		require.NoError(t, err)
		assert.Equal(t, AnswerKindExactMatch, schema.Kind)
		assert.Equal(t, "404", schema.Payload.CorrectAnswer)
		assert.Equal(t, "not found", schema.Explanation)
		assert.Equal(t, SourceFormatCanonical, schema.SourceFormat)

		// Running the canonical output through again changes nothing.
		again, err := NormalizeAnswerSchema(map[string]any{
			"kind":          string(schema.Kind),
			"payload":       map[string]any{"correct_answer": schema.Payload.CorrectAnswer},
			"explanation":   schema.Explanation,
			"source_format": schema.SourceFormat,
		}, ItemTypeMultipleChoice, "")
		require.NoError(t, err)
		assert.True(t, schema.Equal(again))
	})

	t.Run("canonical true_false", func(t *testing.T) {
		schema, err := NormalizeAnswerSchema(map[string]any{
			"kind":    "true_false",
			"payload": map[string]any{"correct_bool": true},
		}, ItemTypeTrueFalse, "")
		require.NoError(t, err)
		require.NotNil(t, schema.Payload.CorrectBool)
		assert.True(t, *schema.Payload.CorrectBool)
	})

	t.Run("canonical keyword_match deduplicates case-insensitively", func(t *testing.T) {
		schema, err := NormalizeAnswerSchema(map[string]any{
			"kind":    "keyword_match",
			"payload": map[string]any{"keywords": []any{"Index", "index", " vacuum ", ""}},
		}, ItemTypeShortAnswer, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"Index", "vacuum"}, schema.Payload.Keywords)
	})

	t.Run("canonical with empty payload is rejected", func(t *testing.T) {
		_, err := NormalizeAnswerSchema(map[string]any{
			"kind":    "exact_match",
			"payload": map[string]any{},
		}, ItemTypeMultipleChoice, "")
		assert.Error(t, err)
	})
}

func TestNormalizeAnswerSchema_LegacyShapes(t *testing.T) {
	t.Run("typed exact_match", func(t *testing.T) {
		schema, err := NormalizeAnswerSchema(map[string]any{
			"type":           "exact_match",
			"correct_answer": "TCP",
		}, ItemTypeMultipleChoice, "")
		require.NoError(t, err)
		assert.Equal(t, "TCP", schema.Payload.CorrectAnswer)
		assert.Equal(t, SourceFormatTyped, schema.SourceFormat)
	})

	t.Run("typed exact_match falls back to the item answer", func(t *testing.T) {
		schema, err := NormalizeAnswerSchema(map[string]any{
			"type": "exact_match",
		}, ItemTypeMultipleChoice, "UDP")
		require.NoError(t, err)
		assert.Equal(t, "UDP", schema.Payload.CorrectAnswer)
	})

	t.Run("typed true_false parses boolean spellings", func(t *testing.T) {
		schema, err := NormalizeAnswerSchema(map[string]any{
			"type":           "true_false",
			"correct_answer": "Yes",
		}, ItemTypeTrueFalse, "")
		require.NoError(t, err)
		require.NotNil(t, schema.Payload.CorrectBool)
		assert.True(t, *schema.Payload.CorrectBool)
	})

	t.Run("legacy correct_key", func(t *testing.T) {
		schema, err := NormalizeAnswerSchema(map[string]any{
			"correct_key": "B",
			"explanation": "option B is right",
		}, ItemTypeMultipleChoice, "")
		require.NoError(t, err)
		assert.Equal(t, AnswerKindExactMatch, schema.Kind)
		assert.Equal(t, "B", schema.Payload.CorrectAnswer)
		assert.Equal(t, SourceFormatLegacyKey, schema.SourceFormat)
		assert.Equal(t, "option B is right", schema.Explanation)
	})

	t.Run("correct_keywords and bare keywords", func(t *testing.T) {
		schema, err := NormalizeAnswerSchema(map[string]any{
			"correct_keywords": []any{"mutex", "lock"},
		}, ItemTypeShortAnswer, "")
		require.NoError(t, err)
		assert.Equal(t, SourceFormatCorrectKeywords, schema.SourceFormat)
		assert.Equal(t, []string{"mutex", "lock"}, schema.Payload.Keywords)

		schema, err = NormalizeAnswerSchema(map[string]any{
			"keywords": []any{"goroutine"},
		}, ItemTypeShortAnswer, "")
		require.NoError(t, err)
		assert.Equal(t, SourceFormatBareKeywords, schema.SourceFormat)
	})

	t.Run("bare correct_answer map", func(t *testing.T) {
		schema, err := NormalizeAnswerSchema(map[string]any{
			"correct_answer": "42",
		}, ItemTypeMultipleChoice, "")
		require.NoError(t, err)
		assert.Equal(t, "42", schema.Payload.CorrectAnswer)
	})

	t.Run("unrecognized map", func(t *testing.T) {
		_, err := NormalizeAnswerSchema(map[string]any{"foo": "bar"}, ItemTypeMultipleChoice, "")
		assert.Error(t, err)
	})
}

func TestNormalizeAnswerSchema_BareStringAndNil(t *testing.T) {
	t.Run("bare kind string uses the item answer", func(t *testing.T) {
		schema, err := NormalizeAnswerSchema("exact_match", ItemTypeMultipleChoice, "404")
		require.NoError(t, err)
		assert.Equal(t, "404", schema.Payload.CorrectAnswer)
		assert.Equal(t, SourceFormatBareString, schema.SourceFormat)
	})

	t.Run("bare true_false string", func(t *testing.T) {
		schema, err := NormalizeAnswerSchema("true_false", ItemTypeTrueFalse, "false")
		require.NoError(t, err)
		require.NotNil(t, schema.Payload.CorrectBool)
		assert.False(t, *schema.Payload.CorrectBool)
	})

	t.Run("bare keyword_match has nothing to draw from", func(t *testing.T) {
		_, err := NormalizeAnswerSchema("keyword_match", ItemTypeShortAnswer, "whatever")
		assert.Error(t, err)
	})

	t.Run("nil schema inferred from the item answer", func(t *testing.T) {
		schema, err := NormalizeAnswerSchema(nil, ItemTypeMultipleChoice, "404")
		require.NoError(t, err)
		assert.Equal(t, "404", schema.Payload.CorrectAnswer)
		assert.Equal(t, SourceFormatInferred, schema.SourceFormat)
	})

	t.Run("nothing to infer is an error, never invented content", func(t *testing.T) {
		_, err := NormalizeAnswerSchema(nil, ItemTypeMultipleChoice, "")
		assert.Error(t, err)

		_, err = NormalizeAnswerSchema(nil, ItemTypeShortAnswer, "keywords cannot be inferred")
		assert.Error(t, err)
	})

	t.Run("unsupported shapes", func(t *testing.T) {
		_, err := NormalizeAnswerSchema([]any{"a"}, ItemTypeMultipleChoice, "x")
		assert.Error(t, err)
		_, err = NormalizeAnswerSchema(42.0, ItemTypeMultipleChoice, "x")
		assert.Error(t, err)
	})
}

func TestNormalizedSchemasValidate(t *testing.T) {
	// Every accepted input yields a schema that passes Validate.
	inputs := []struct {
		raw    any
		item   ItemType
		answer string
	}{
		{map[string]any{"kind": "exact_match", "payload": map[string]any{"correct_answer": "A"}}, ItemTypeMultipleChoice, ""},
		{map[string]any{"type": "keyword_match", "keywords": []any{"x", "y"}}, ItemTypeShortAnswer, ""},
		{map[string]any{"correct_key": "C"}, ItemTypeMultipleChoice, ""},
		{"true_false", ItemTypeTrueFalse, "1"},
		{nil, ItemTypeTrueFalse, "false"},
	}
	for _, in := range inputs {
		schema, err := NormalizeAnswerSchema(in.raw, in.item, in.answer)
		require.NoError(t, err)
		assert.NoError(t, schema.Validate())
	}
}
