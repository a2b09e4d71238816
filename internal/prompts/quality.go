// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package prompts

import "strings"

// QualityScore is the heuristic quality assessment of a single prompt.
type QualityScore struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

var specificityKeywords = []string{"specific", "exactly", "precisely"}

// ScoreQuality rates a prompt on a 0-100 scale. The score is additive:
// a base band from character length, plus bonuses for word count, code
// blocks, questions, and specificity wording, clamped at 100. Empty
// input short-circuits to zero.
func ScoreQuality(prompt string) QualityScore {
	if prompt == "" {
		return QualityScore{Score: 0, Reasons: []string{"Empty prompt"}}
	}

	var score int
	var reasons []string

	length := len(prompt)
	switch {
	case length < 10:
		score = 20
		reasons = append(reasons, "Very short prompt")
	case length < 50:
		score = 40
		reasons = append(reasons, "Short prompt")
	case length < 200:
		score = 70
		reasons = append(reasons, "Moderate length prompt")
	case length < 500:
		score = 90
		reasons = append(reasons, "Detailed prompt")
	default:
		score = 100
		reasons = append(reasons, "Very detailed prompt")
	}

	if len(strings.Fields(prompt)) > 15 {
		score += 10
		reasons = append(reasons, "Good word count")
	}

	if hasCodeBlock(prompt) {
		score += 15
		reasons = append(reasons, "Contains code block")
	}

	if strings.Contains(prompt, "?") {
		score += 5
		reasons = append(reasons, "Contains question")
	}

	lower := strings.ToLower(prompt)
	for _, kw := range specificityKeywords {
		if strings.Contains(lower, kw) {
			score += 10
			reasons = append(reasons, "Uses specific language")
			break
		}
	}

	if score > 100 {
		score = 100
	}
	return QualityScore{Score: score, Reasons: reasons}
}

// hasCodeBlock detects a fenced block or a 4-space indented line.
func hasCodeBlock(prompt string) bool {
	if strings.Contains(prompt, "```") {
		return true
	}
	for _, line := range strings.Split(prompt, "\n") {
		if strings.HasPrefix(line, "    ") && strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}
