// Package extract implements heuristic parsers that turn free-form model
// output into structured fields. The functions are deliberate pattern
// matchers, not a grammar: model output has no contractual format, so every
// parser fails soft with an empty result instead of returning an error.
package extract

import (
	"strings"

	"github.com/jonathan/jobseeker-agent/internal/types"
)

const (
	// MaxQuestions caps how many questions are pulled out of one reply.
	MaxQuestions = 5
	// minQuestionLength filters out fragments like "Why?" after marker stripping.
	minQuestionLength = 11

	// FallbackSubject is used when no subject can be determined at all.
	FallbackSubject = "Regarding the position at the company"

	maxInterestChars = 200
	maxGoalChars     = 300
)

// questionMarkers are stripped from the front of candidate question lines.
var questionMarkers = []string{"Question:", "Q:", "-", "*", "1.", "2.", "3.", "4.", "5."}

// LabeledField scans lines top to bottom and returns the value of the first
// line that mentions the label and carries a colon. Returns "" when absent.
func LabeledField(text, label string) string {
	label = strings.ToLower(label)
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(strings.ToLower(line), label) && strings.Contains(line, ":") {
			_, value, _ := strings.Cut(line, ":")
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// Questions pulls up to MaxQuestions question lines out of free text, in
// document order. Leading list markers are stripped; candidates shorter than
// minQuestionLength afterwards are discarded.
func Questions(text string) []string {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "?") {
			continue
		}
		for _, marker := range questionMarkers {
			if strings.HasPrefix(line, marker) {
				line = strings.TrimSpace(strings.TrimPrefix(line, marker))
			}
		}
		if len(line) >= minQuestionLength {
			questions = append(questions, line)
			if len(questions) == MaxQuestions {
				break
			}
		}
	}
	return questions
}

// SplitSubjectBody separates a drafted email into subject and body.
// "Subject:" and "Body:" markers take precedence; without them the first
// colon-free line becomes the subject and everything else the body. The
// subject never comes back empty.
func SplitSubjectBody(text string) (subject, body string) {
	var bodyLines []string
	inBody := false

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		switch {
		case strings.HasPrefix(lower, "subject:"):
			_, value, _ := strings.Cut(trimmed, ":")
			subject = strings.TrimSpace(value)
		case strings.HasPrefix(lower, "body:"):
			inBody = true
			_, value, _ := strings.Cut(trimmed, ":")
			if value = strings.TrimSpace(value); value != "" {
				bodyLines = append(bodyLines, value)
			}
		case inBody:
			bodyLines = append(bodyLines, line)
		case subject == "" && !strings.Contains(line, ":"):
			subject = trimmed
		default:
			bodyLines = append(bodyLines, line)
		}
	}

	body = strings.TrimSpace(strings.Join(bodyLines, "\n"))
	if subject == "" {
		subject = FallbackSubject
	}
	return subject, body
}

// ProfileDelta extracts incremental profile updates from a free-text answer
// using keyword triggers. Multiple triggers may fire in one pass; no trigger
// yields the zero delta.
func ProfileDelta(text string) types.ProfileDelta {
	var delta types.ProfileDelta
	lower := strings.ToLower(text)

	if strings.Contains(lower, "interest") || strings.Contains(lower, "passionate") {
		delta.Interests = []string{truncate(text, maxInterestChars)}
	}
	if strings.Contains(lower, "goal") || strings.Contains(lower, "want to") {
		delta.CareerGoalNotes = truncate(text, maxGoalChars)
	}
	return delta
}

// KeyPeople parses a people listing line by line. A "name:" line opens a new
// record, flushing the previous one only when it has both name and title;
// "title:"/"role:" and "linkedin:" lines fill the open record. The dangling
// record at the end follows the same retention rule.
func KeyPeople(text string, max int) []types.KeyPerson {
	var people []types.KeyPerson
	var current types.KeyPerson

	flush := func() {
		if current.Complete() {
			people = append(people, current)
		}
		current = types.KeyPerson{}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		_, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		switch {
		case strings.Contains(lower, "name:"):
			flush()
			current.Name = value
		case strings.Contains(lower, "title:"), strings.Contains(lower, "role:"):
			current.Title = value
		case strings.Contains(lower, "linkedin:"):
			current.LinkedInURL = value
		}
	}
	flush()

	if len(people) > max {
		people = people[:max]
	}
	return people
}

// truncate bounds s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
