package controller

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/skillforge/skillforge/pkg/agent"
)

// ParsedResponse is the result of parsing an LLM response in ReAct format.
type ParsedResponse struct {
	// Reasoning text (everything before Action or Final Answer).
	Thought string

	// Action fields (populated when the LLM wants to call a tool).
	HasAction   bool
	Action      string // Tool name (e.g., "save_generated_question")
	ActionInput string // Tool arguments (raw text, usually JSON)

	// Final answer (populated when the LLM wants to conclude).
	IsFinalAnswer bool
	FinalAnswer   string

	// Error tracking.
	IsUnknownTool bool
	IsMalformed   bool
	ErrorMessage  string

	// Diagnostics — which sections were detected during parsing.
	FoundSections map[string]bool
}

var (
	// Sentence ending (. ! ?) + optional space/backtick/markup + section header.
	midlineActionPattern      = regexp.MustCompile(`[.!?][\x60\s*]*Action:`)
	midlineFinalAnswerPattern = regexp.MustCompile(`[.!?][\x60\s*]*Final Answer:`)

	// Tool names are lower_snake_case identifiers.
	toolNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

	// Recovery patterns for recoverMissingAction.
	recoverActionColonPattern = regexp.MustCompile(`(?i)\bAction:`)
	recoverActionWordPattern  = regexp.MustCompile(`(?i)\bAction(?:\s|$)`)
	recoverActionInputPattern = regexp.MustCompile(`(?i)Action Input:`)
)

// ParseResponse parses LLM text output into a structured ReAct response.
// The parser is intentionally forgiving: it tries several detection
// strategies before declaring a response malformed.
func ParseResponse(text string) *ParsedResponse {
	if strings.TrimSpace(text) == "" {
		return &ParsedResponse{IsMalformed: true, FoundSections: map[string]bool{}}
	}

	sections := extractSections(text)

	found := map[string]bool{
		"thought":      sections["thought"] != "",
		"action":       sections["action"] != "",
		"action_input": sections.has("action_input"),
		"final_answer": sections.has("final_answer"),
	}

	action := strings.TrimSpace(sections["action"])

	// Prefer Action over Final Answer when both appear: Final Answer is
	// terminal and nothing should come after it, so a trailing action means
	// the model was not actually done.
	if action != "" && sections.has("action_input") {
		if !toolNamePattern.MatchString(action) {
			return &ParsedResponse{
				HasAction:     true,
				IsUnknownTool: true,
				Thought:       sections["thought"],
				Action:        action,
				ActionInput:   sections["action_input"],
				ErrorMessage: fmt.Sprintf(
					"Unknown tool '%s'. Tool names are lower_snake_case identifiers. "+
						"Please check the list of available tools provided in the prompt.", action),
				FoundSections: found,
			}
		}
		return &ParsedResponse{
			HasAction:     true,
			Thought:       sections["thought"],
			Action:        action,
			ActionInput:   sections["action_input"],
			FoundSections: found,
		}
	}

	if fa := strings.TrimSpace(sections["final_answer"]); fa != "" {
		return &ParsedResponse{
			IsFinalAnswer: true,
			Thought:       sections["thought"],
			FinalAnswer:   fa,
			FoundSections: found,
		}
	}

	return &ParsedResponse{
		IsMalformed:   true,
		Thought:       sections["thought"],
		FoundSections: found,
	}
}

// sectionMap holds extracted section text. A key's presence (even with empty
// content) matters for action_input: tools without parameters legitimately
// leave it empty.
type sectionMap map[string]string

func (s sectionMap) has(key string) bool {
	_, ok := s[key]
	return ok
}

// extractSections walks the response line by line, switching sections on
// headers. Mid-line "Final Answer:" and "Action:" after a sentence boundary
// are honored because models often glue headers onto the end of a thought.
func extractSections(text string) sectionMap {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	parsed := sectionMap{}

	var current string
	var content []string

	flush := func() {
		if current == "" {
			return
		}
		joined := strings.TrimSpace(strings.Join(content, "\n"))
		if existing, ok := parsed[current]; !ok || existing == "" {
			parsed[current] = joined
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" && current == "" {
			continue
		}

		// Hallucinated observations mean the model is role-playing the tool
		// loop; everything after is untrustworthy.
		if strings.HasPrefix(line, "Observation:") {
			flush()
			break
		}

		switch {
		case strings.HasPrefix(line, "Final Answer:") && !parsed.has("final_answer"):
			flush()
			current = "final_answer"
			content = []string{strings.TrimSpace(strings.TrimPrefix(line, "Final Answer:"))}

		case strings.HasPrefix(line, "Thought:") || line == "Thought":
			flush()
			current = "thought"
			body := strings.TrimSpace(strings.TrimPrefix(line, "Thought:"))
			if before, after, ok := splitMidline(body, midlineFinalAnswerPattern, "Final Answer:"); ok {
				parsed["thought"] = before
				current = "final_answer"
				content = []string{after}
			} else if before, after, ok := splitMidline(body, midlineActionPattern, "Action:"); ok {
				parsed["thought"] = before
				parsed["action"] = after
				current = ""
				content = nil
			} else {
				content = []string{body}
			}

		case strings.HasPrefix(line, "Action Input:"):
			flush()
			current = "action_input"
			content = []string{strings.TrimSpace(strings.TrimPrefix(line, "Action Input:"))}

		case strings.HasPrefix(line, "Action:"):
			flush()
			current = "action"
			// A new Action invalidates any earlier Action Input.
			delete(parsed, "action_input")
			content = []string{strings.TrimSpace(strings.TrimPrefix(line, "Action:"))}

		case current == "thought" && midlineFinalAnswerPattern.MatchString(line):
			before, after, _ := splitMidline(line, midlineFinalAnswerPattern, "Final Answer:")
			if before != "" {
				content = append(content, before)
			}
			flush()
			current = "final_answer"
			content = []string{after}

		default:
			if current != "" {
				content = append(content, line)
			}
		}
	}
	flush()

	// action_input must register as present even when its body is empty,
	// but only if the section was actually opened.
	if _, ok := parsed["action_input"]; !ok && current == "action_input" {
		parsed["action_input"] = ""
	}

	// Recovery: Action Input without Action — backtrack through the raw text.
	if parsed.has("action_input") && parsed["action"] == "" {
		if recovered := recoverMissingAction(text); recovered != "" {
			parsed["action"] = recovered
		}
	}

	return parsed
}

// splitMidline splits body at the first mid-line occurrence of header,
// returning the text before the sentence boundary and the section content
// after the header.
func splitMidline(body string, pattern *regexp.Regexp, header string) (before, after string, ok bool) {
	if body == "" || !strings.Contains(body, header) {
		return "", "", false
	}
	loc := pattern.FindStringIndex(body)
	if loc == nil {
		return "", "", false
	}
	before = strings.TrimSpace(body[:loc[0]+1])
	rest := body[loc[0]+1:]
	if idx := strings.Index(rest, header); idx != -1 {
		after = strings.TrimSpace(rest[idx+len(header):])
	}
	return before, after, true
}

// recoverMissingAction searches backwards from "Action Input:" for an
// "Action:" or bare "Action" header whose first line is a valid tool name.
func recoverMissingAction(response string) string {
	loc := recoverActionInputPattern.FindStringIndex(response)
	if loc == nil {
		return ""
	}
	textBefore := response[:loc[0]]

	for _, pattern := range []*regexp.Regexp{recoverActionColonPattern, recoverActionWordPattern} {
		matches := pattern.FindAllStringIndex(textBefore, -1)
		if len(matches) == 0 {
			continue
		}
		last := matches[len(matches)-1]
		candidate := strings.TrimSpace(textBefore[last[1]:])
		firstLine := strings.TrimSpace(strings.SplitN(candidate, "\n", 2)[0])
		if toolNamePattern.MatchString(firstLine) {
			return firstLine
		}
	}
	return ""
}

// FormatErrorFeedback returns a specific error message describing what is
// wrong with the response format, appended as an observation so the LLM can
// self-correct.
func FormatErrorFeedback(parsed *ParsedResponse) string {
	found := parsed.FoundSections

	var specific string
	switch {
	case found["action"] && !found["action_input"]:
		specific = "FORMAT ERROR: Your response has \"Action:\" but is missing \"Action Input:\".\n" +
			"Every \"Action:\" MUST be followed by \"Action Input:\" (even if empty for no-parameter tools)."
	case found["action_input"] && !found["action"]:
		specific = "FORMAT ERROR: Your response has \"Action Input:\" but is missing \"Action:\".\n" +
			"\"Action Input:\" must be preceded by \"Action:\" specifying which tool to call."
	case found["thought"] && !found["action"] && !found["final_answer"]:
		specific = "FORMAT ERROR: Your response only contains \"Thought:\".\n" +
			"After reasoning, you MUST either:\n" +
			"- Call a tool with \"Action:\" + \"Action Input:\", OR\n" +
			"- Conclude with \"Final Answer:\""
	default:
		specific = "FORMAT ERROR: Could not detect any ReAct sections in your response.\n" +
			"Your response must use the exact format: \"Thought:\", \"Action:\", \"Action Input:\", or \"Final Answer:\""
	}

	return specific + "\n" + formatCorrectionReminder
}

const formatCorrectionReminder = `IMPORTANT: Please follow the exact ReAct format:

1. Use colons: "Thought:", "Action:", "Action Input:", "Final Answer:"
2. Start each section on a NEW LINE
3. Stop after Action Input - the system provides Observations
4. Your response MUST include EITHER tool calling (Action + Action Input) OR Final Answer

Required structure for tool calls:
Thought: [your reasoning]
Action: [tool name]
Action Input: [JSON arguments]

Required structure for conclusion:
Thought: [final reasoning]
Final Answer: [the complete question list as JSON]`

// FormatObservation formats a tool execution result as a ReAct observation.
func FormatObservation(result *agent.ToolResult) string {
	if result == nil {
		return "Observation: Error - no tool result available"
	}
	if result.IsError {
		return fmt.Sprintf("Observation: Error executing %s: %s", result.Name, result.Content)
	}
	return fmt.Sprintf("Observation: %s", result.Content)
}

// FormatToolErrorObservation formats a tool infrastructure error as an observation.
func FormatToolErrorObservation(err error) string {
	if err == nil {
		return "Observation: Error - Tool execution failed: unknown error"
	}
	return fmt.Sprintf("Observation: Error - Tool execution failed: %s", err.Error())
}

// FormatUnknownToolError formats an error when the LLM requests an unknown
// tool, including the available tools so the LLM can self-correct.
func FormatUnknownToolError(errorMsg string, availableTools []agent.ToolDefinition) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Observation: Error - %s", errorMsg))
	if len(availableTools) > 0 {
		sb.WriteString("\n\nAvailable tools:\n")
		for _, tool := range availableTools {
			sb.WriteString(fmt.Sprintf("  - %s: %s\n", tool.Name, tool.Description))
		}
	}
	return sb.String()
}

// FormatLLMErrorObservation formats an LLM call error as an observation.
func FormatLLMErrorObservation(err error) string {
	return fmt.Sprintf("Observation: Error from previous attempt: %s. Please try again.", err.Error())
}
