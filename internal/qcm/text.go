package qcm

import (
	"fmt"
	"regexp"
	"strings"

	"cartable/internal/domain"
)

// placeholderQuestion substitutes for a block whose options were recovered
// but whose question text came out empty.
const placeholderQuestion = "(Question)"

var (
	// blockMarker starts a question block: Q1:, q2 -, Q3) at a line start.
	blockMarker = regexp.MustCompile(`(?mi)^Q\d+\s*[:\-\)]`)

	// blockHead re-matches the marker inside a block and captures the rest.
	blockHead = regexp.MustCompile(`(?si)^Q\d+\s*[:\-\)]\s*(.*)$`)

	// answerMarker captures the single-letter answer key. Both the English
	// and the French labels appear in model output, with or without accents.
	answerMarker = regexp.MustCompile(`(?i)(?:ANSWER|R[ÉE]PONSE)\s*[:\-]\s*([A-F])\b`)

	// explanationMarker captures everything after the label to end of block.
	explanationMarker = regexp.MustCompile(`(?i)(?:EXPLANATION|EXPLICATION)\s*[:\-]\s*([\s\S]*)`)

	answerSection      = regexp.MustCompile(`(?i)(?:ANSWER|R[ÉE]PONSE)\s*[:\-]`)
	explanationSection = regexp.MustCompile(`(?i)(?:EXPLANATION|EXPLICATION)\s*[:\-]`)

	// optionLine matches one option per line: "A) text", "b. text", ...
	optionLine = regexp.MustCompile(`(?im)^[ \t]*([A-F])[\)\.\:\-][ \t]*(.+)$`)

	// inlineOption marks option starts when several options share one line.
	// Each marker must sit at the start or after whitespace.
	inlineOption = regexp.MustCompile(`(?i)(?:^|\s)([A-F])[\)\.\:\-]\s*`)
)

// FromText parses the loosely structured fallback layout:
//
//	Q1: question
//	A) option
//	B) option
//	ANSWER: B
//	EXPLANATION: why
//
// It returns false when no block yields a valid question.
func FromText(raw string) (*domain.Quiz, bool) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return nil, false
	}
	t = strings.ReplaceAll(t, "\r\n", "\n")

	var questions []domain.QuizQuestion
	for _, block := range splitBlocks(t) {
		if q, ok := parseBlock(block); ok {
			questions = append(questions, q)
		}
	}

	questions = filterQuestions(questions)
	if len(questions) == 0 {
		return nil, false
	}
	return &domain.Quiz{Questions: questions}, true
}

// splitBlocks cuts the text at each question marker, keeping the marker
// with its following content. Text before the first marker is dropped.
func splitBlocks(t string) []string {
	starts := blockMarker.FindAllStringIndex(t, -1)
	var blocks []string
	for i, loc := range starts {
		end := len(t)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		block := strings.TrimSpace(t[loc[0]:end])
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// parseBlock extracts one question from a single Qn block.
func parseBlock(block string) (domain.QuizQuestion, bool) {
	head := blockHead.FindStringSubmatch(block)
	if head == nil {
		return domain.QuizQuestion{}, false
	}
	rest := strings.TrimSpace(head[1])

	answer := domain.NoAnswer()
	if m := answerMarker.FindStringSubmatch(rest); m != nil {
		answer = domain.TextAnswer(strings.ToUpper(m[1]))
	}

	explanation := ""
	if m := explanationMarker.FindStringSubmatch(rest); m != nil {
		explanation = strings.TrimSpace(m[1])
	}

	// Strip the answer and explanation sections so only the question text
	// and its options remain.
	clean := answerSection.Split(rest, 2)[0]
	clean = explanationSection.Split(clean, 2)[0]

	questionText, options := extractOptions(clean)
	if len(options) < 2 {
		return domain.QuizQuestion{}, false
	}
	if questionText == "" {
		questionText = placeholderQuestion
	}

	return domain.QuizQuestion{
		Question:    questionText,
		Options:     options,
		Answer:      answer,
		Explanation: explanation,
	}, true
}

// extractOptions finds the option list in the cleaned block remainder.
// One option per line is tried first; when fewer than two lines match,
// options packed onto a single line are tried instead. Options are
// normalized to "A) text" regardless of the source punctuation.
func extractOptions(clean string) (string, []string) {
	matches := optionLine.FindAllStringSubmatchIndex(clean, -1)
	if len(matches) >= 2 {
		questionText := strings.TrimSpace(clean[:matches[0][0]])
		var options []string
		for _, m := range matches {
			letter := strings.ToUpper(clean[m[2]:m[3]])
			text := strings.TrimSpace(clean[m[4]:m[5]])
			options = append(options, fmt.Sprintf("%s) %s", letter, text))
		}
		return questionText, options
	}
	return extractInlineOptions(clean)
}

// extractInlineOptions handles "A) foo B) bar C) baz" all on one line.
// Each option runs from its marker to the next marker or end of text.
func extractInlineOptions(clean string) (string, []string) {
	marks := inlineOption.FindAllStringSubmatchIndex(clean, -1)
	if len(marks) < 2 {
		return "", nil
	}

	questionText := strings.TrimSpace(clean[:marks[0][0]])
	var options []string
	for i, m := range marks {
		end := len(clean)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		letter := strings.ToUpper(clean[m[2]:m[3]])
		text := strings.TrimSpace(clean[m[1]:end])
		options = append(options, fmt.Sprintf("%s) %s", letter, text))
	}
	return questionText, options
}
