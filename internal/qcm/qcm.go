// Package qcm recovers a structured multiple-choice quiz from untrusted
// model output. Two input shapes are understood: JSON in a handful of
// common layouts, and a loosely structured text format with Qn:/lettered
// option lines. Malformed input never produces an error, only "no result".
package qcm

import (
	"strings"

	"cartable/internal/domain"
)

// Normalize attempts JSON extraction first and falls back to the text-block
// parser. It returns false when neither strategy recovers at least one
// valid question.
func Normalize(raw string) (*domain.Quiz, bool) {
	if quiz, ok := FromJSON(raw); ok {
		return quiz, true
	}
	return FromText(raw)
}

// filterQuestions drops questions that lack text or have fewer than two
// options. Both parsers run their output through it before deciding
// success.
func filterQuestions(questions []domain.QuizQuestion) []domain.QuizQuestion {
	var kept []domain.QuizQuestion
	for _, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			continue
		}
		if len(q.Options) < 2 {
			continue
		}
		kept = append(kept, q)
	}
	return kept
}
