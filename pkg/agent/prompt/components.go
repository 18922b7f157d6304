package prompt

import (
	"fmt"
	"strings"

	"github.com/skillforge/skillforge/pkg/agent"
	"github.com/skillforge/skillforge/pkg/models"
)

// FormatProfileSection builds the candidate profile section.
func FormatProfileSection(profile agent.Profile) string {
	var sb strings.Builder
	sb.WriteString("## Candidate Profile\n\n")
	sb.WriteString(fmt.Sprintf("**Self-reported level:** %s\n", profile.SelfLevel))
	sb.WriteString(fmt.Sprintf("**Years of experience:** %d\n", profile.Years))
	if profile.JobRole != "" {
		sb.WriteString(fmt.Sprintf("**Role:** %s\n", profile.JobRole))
	}
	if profile.Duty != "" {
		sb.WriteString(fmt.Sprintf("**Main duty:** %s\n", profile.Duty))
	}
	if len(profile.Interests) > 0 {
		sb.WriteString(fmt.Sprintf("**Interests:** %s\n", strings.Join(profile.Interests, ", ")))
	}
	return sb.String()
}

// FormatRoundSection builds the round parameters section.
func FormatRoundSection(execCtx *agent.ExecutionContext) string {
	var sb strings.Builder
	sb.WriteString("## Round Parameters\n\n")
	sb.WriteString(fmt.Sprintf("**Round:** %d\n", execCtx.RoundIndex))
	sb.WriteString(fmt.Sprintf("**Items to generate:** %d\n", execCtx.Count))
	if execCtx.Domain != "" {
		sb.WriteString(fmt.Sprintf("**Domain:** %s\n", execCtx.Domain))
	}
	return sb.String()
}

// FormatAdaptiveSection builds the adaptive hints section.
// adaptive is nil for round 1 and non-adaptive retakes.
func FormatAdaptiveSection(adaptive *models.AdaptiveParams, baseline int) string {
	var sb strings.Builder
	sb.WriteString("## Difficulty Targeting\n\n")

	if adaptive == nil {
		sb.WriteString(fmt.Sprintf("**Target difficulty:** %d (baseline for this profile)\n", baseline))
		sb.WriteString("No prior round data; spread categories evenly across the candidate's interests.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("**Target difficulty:** %d\n", adaptive.TargetDifficulty))
	if len(adaptive.CategoryWeights) > 0 {
		sb.WriteString("**Category weights** (higher weight = more items):\n")
		for _, cat := range sortedWeightKeys(adaptive.CategoryWeights) {
			sb.WriteString(fmt.Sprintf("- %s: %.2f\n", cat, adaptive.CategoryWeights[cat]))
		}
	}
	if adaptive.RequireShortAnswer {
		sb.WriteString("**Constraint:** include at least one short_answer item this round.\n")
	}
	return sb.String()
}
