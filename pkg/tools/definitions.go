package tools

import "github.com/skillforge/skillforge/pkg/agent"

// toolDefinitions returns the static tool surface in prompt order.
func toolDefinitions() []agent.ToolDefinition {
	return []agent.ToolDefinition{
		{
			Name:             "get_user_profile",
			Description:      "Fetch the candidate's profile survey: self-reported level, years of experience, role, duty, and interest tags.",
			ParametersSchema: `{"type": "object", "properties": {}}`,
		},
		{
			Name:        "search_question_templates",
			Description: "Search proven question templates by category. Returns at most 5 templates ranked by historical correct rate and usage.",
			ParametersSchema: `{
				"type": "object",
				"properties": {
					"category": {"type": "string", "description": "Category tag to search, e.g. \"http\" or \"concurrency\""},
					"item_type": {"type": "string", "description": "Optional filter", "enum": ["multiple_choice", "true_false", "short_answer"]}
				},
				"required": ["category"]
			}`,
		},
		{
			Name:        "get_difficulty_keywords",
			Description: "Fetch curated keywords, concepts, and example questions for a target difficulty level (1-10) within a category.",
			ParametersSchema: `{
				"type": "object",
				"properties": {
					"difficulty": {"type": "integer", "description": "Target difficulty from 1 to 10"},
					"category": {"type": "string", "description": "Category the vocabulary should be anchored to, e.g. \"databases\""}
				},
				"required": ["difficulty", "category"]
			}`,
		},
		{
			Name:        "validate_question_quality",
			Description: "Validate a draft question. Returns is_valid, rule_score, semantic_score, final_score, a recommendation (pass, revise, reject), and a list of issues to fix. A draft is valid only when final_score >= 0.7 and no hard rule is violated.",
			ParametersSchema: `{
				"type": "object",
				"properties": {
					"question": {"type": "object", "description": "The draft question object: stem, item_type, choices, answer_schema, difficulty, category"}
				},
				"required": ["question"]
			}`,
		},
		{
			Name:        "save_generated_question",
			Description: "Persist a validated question into the current session at the given ordinal. Saving the same ordinal twice overwrites the earlier save (idempotent).",
			ParametersSchema: `{
				"type": "object",
				"properties": {
					"ordinal": {"type": "integer", "description": "1-based position of the question within the round"},
					"stem": {"type": "string"},
					"item_type": {"type": "string", "enum": ["multiple_choice", "true_false", "short_answer"]},
					"choices": {"type": "array", "description": "Required for multiple_choice, 4-5 entries"},
					"answer_schema": {"type": "object"},
					"difficulty": {"type": "integer"},
					"category": {"type": "string"}
				},
				"required": ["ordinal", "stem", "item_type", "answer_schema", "difficulty", "category"]
			}`,
		},
		{
			Name:        "score_and_explain",
			Description: "Score a user answer against a saved question and return the verdict with the stored explanation.",
			ParametersSchema: `{
				"type": "object",
				"properties": {
					"question_id": {"type": "string"},
					"user_answer": {"type": "object", "description": "The answer payload, e.g. {\"selected_key\": \"301\"} or {\"text\": \"...\"}"},
					"elapsed_ms": {"type": "integer", "description": "Optional response time for the time penalty"}
				},
				"required": ["question_id", "user_answer"]
			}`,
		},
	}
}
