package qcm

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"cartable/internal/domain"
)

// optionLetters is the fixed order used when options arrive as a
// letter-keyed mapping.
var optionLetters = []string{"A", "B", "C", "D", "E", "F"}

// FromJSON extracts and normalizes a quiz from raw model output that may
// contain JSON somewhere inside it. It returns false when no JSON value can
// be decoded or when no question survives normalization.
func FromJSON(raw string) (*domain.Quiz, bool) {
	data, ok := extractJSON(raw)
	if !ok {
		return nil, false
	}
	return reshape(data)
}

// extractJSON decodes the most plausible JSON value from the text: the
// whole trimmed input first, then the widest brace-delimited object
// substring, then the widest bracket-delimited array substring. The first
// successful decode wins.
func extractJSON(raw string) (any, bool) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return nil, false
	}

	var data any
	if err := json.Unmarshal([]byte(t), &data); err == nil {
		return data, true
	}

	if start, end := strings.Index(t, "{"), strings.LastIndex(t, "}"); start >= 0 && end > start {
		if err := json.Unmarshal([]byte(t[start:end+1]), &data); err == nil {
			return data, true
		}
	}

	if start, end := strings.Index(t, "["), strings.LastIndex(t, "]"); start >= 0 && end > start {
		if err := json.Unmarshal([]byte(t[start:end+1]), &data); err == nil {
			return data, true
		}
	}

	return nil, false
}

// reshape projects a decoded JSON value into the canonical quiz shape.
// Every field access treats the value as possibly absent or wrong-shaped.
func reshape(data any) (*domain.Quiz, bool) {
	if list, ok := data.([]any); ok {
		data = map[string]any{"questions": list}
	}

	obj, ok := data.(map[string]any)
	if !ok {
		return nil, false
	}

	questionsVal, present := obj["questions"]
	if !present {
		questionsVal, present = obj["quiz"]
	}
	if !present {
		return nil, false
	}

	rawQuestions, ok := questionsVal.([]any)
	if !ok || len(rawQuestions) == 0 {
		return nil, false
	}

	var questions []domain.QuizQuestion
	for _, rq := range rawQuestions {
		m, ok := rq.(map[string]any)
		if !ok {
			continue
		}
		questions = append(questions, domain.QuizQuestion{
			Question:    strings.TrimSpace(stringField(m, "question", "q")),
			Options:     normalizeOptions(firstField(m, "options", "choices", "answers")),
			Answer:      answerKey(firstField(m, "answer", "correct", "correct_answer")),
			Explanation: strings.TrimSpace(stringField(m, "explanation", "exp")),
		})
	}

	questions = filterQuestions(questions)
	if len(questions) == 0 {
		return nil, false
	}
	return &domain.Quiz{Questions: questions}, true
}

// normalizeOptions resolves the two option shapes the models produce: a
// plain list, or a mapping keyed by letters A-F. Mapping entries are
// flattened to "A) value" in letter order, skipping absent letters. List
// entries are trimmed and empties dropped.
func normalizeOptions(value any) []string {
	switch opts := value.(type) {
	case map[string]any:
		var ordered []string
		for _, letter := range optionLetters {
			if v, ok := opts[letter]; ok {
				ordered = append(ordered, fmt.Sprintf("%s) %s", letter, strings.TrimSpace(asString(v))))
			}
		}
		return ordered
	case []any:
		var cleaned []string
		for _, v := range opts {
			s := strings.TrimSpace(asString(v))
			if s != "" {
				cleaned = append(cleaned, s)
			}
		}
		return cleaned
	default:
		return nil
	}
}

// answerKey wraps a raw JSON answer value as a tagged token. Integral
// numbers become index answers; everything else is kept as text and
// resolved later.
func answerKey(value any) domain.AnswerKey {
	switch v := value.(type) {
	case nil:
		return domain.NoAnswer()
	case float64:
		if v == math.Trunc(v) {
			return domain.IndexAnswer(int(v))
		}
		return domain.TextAnswer(asString(v))
	case string:
		return domain.TextAnswer(v)
	default:
		return domain.TextAnswer(asString(v))
	}
}

// firstField returns the first usable value among the candidate keys.
// Nil and blank-string values fall through to the next key, so an empty
// "answer" does not shadow a filled "correct". A numeric 0 is kept.
func firstField(m map[string]any, keys ...string) any {
	for _, key := range keys {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

// stringField returns the first present key's value rendered as a string.
func stringField(m map[string]any, keys ...string) string {
	return asString(firstField(m, keys...))
}

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprint(s)
	}
}
