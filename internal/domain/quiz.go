package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// QuizQuestion represents a single multiple-choice question. Options keep
// their insertion order, which is also the display order.
type QuizQuestion struct {
	Question    string
	Options     []string
	Answer      AnswerKey
	Explanation string
}

// Quiz represents a normalized quiz. A Quiz always has at least one question;
// normalization fails instead of producing an empty one.
type Quiz struct {
	Questions []QuizQuestion
}

// AnswerKind discriminates the shapes a raw answer token can take.
type AnswerKind int

const (
	AnswerAbsent AnswerKind = iota
	AnswerIndex
	AnswerText
)

// AnswerKey is the raw, untyped answer token recovered during normalization.
// It is resolved against the option list only at scoring time.
type AnswerKey struct {
	Kind  AnswerKind
	Index int
	Text  string
}

// NoAnswer returns an absent answer token.
func NoAnswer() AnswerKey {
	return AnswerKey{Kind: AnswerAbsent}
}

// IndexAnswer returns an answer token holding a numeric index.
func IndexAnswer(i int) AnswerKey {
	return AnswerKey{Kind: AnswerIndex, Index: i}
}

// TextAnswer returns an answer token holding free text.
func TextAnswer(s string) AnswerKey {
	return AnswerKey{Kind: AnswerText, Text: s}
}

var answerLetterPattern = regexp.MustCompile(`\b([A-F])\b`)

// Resolve maps the raw answer token to a zero-based option index.
// The second return value is false when no definite index can be recovered;
// Resolve never fails in any other way.
//
// Textual digits are tried as a zero-based index first and as a one-based
// index only when the zero-based reading is out of range. For short option
// lists both readings can be valid ("1" with two options resolves to index 1);
// the zero-based precedence is kept as is.
func (k AnswerKey) Resolve(optionCount int) (int, bool) {
	switch k.Kind {
	case AnswerIndex:
		if k.Index >= 0 && k.Index < optionCount {
			return k.Index, true
		}
		return 0, false
	case AnswerText:
		s := strings.TrimSpace(k.Text)
		if s == "" {
			return 0, false
		}
		if m := answerLetterPattern.FindStringSubmatch(strings.ToUpper(s)); m != nil {
			idx := int(m[1][0] - 'A')
			if idx < optionCount {
				return idx, true
			}
			return 0, false
		}
		if isDigits(s) {
			val, err := strconv.Atoi(s)
			if err != nil {
				return 0, false
			}
			if val >= 0 && val < optionCount {
				return val, true
			}
			if val >= 1 && val <= optionCount {
				return val - 1, true
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
