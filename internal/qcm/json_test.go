package qcm

import (
	"testing"

	"cartable/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON_WellFormedObject(t *testing.T) {
	raw := `{
		"questions": [
			{"question": "What is 2+2?", "options": ["3", "4", "5"], "answer": "B", "explanation": "arithmetic"},
			{"question": "Pick one", "options": ["yes", "no"], "answer": 0}
		]
	}`

	quiz, ok := FromJSON(raw)
	require.True(t, ok)
	require.Len(t, quiz.Questions, 2)

	assert.Equal(t, "What is 2+2?", quiz.Questions[0].Question)
	assert.Equal(t, []string{"3", "4", "5"}, quiz.Questions[0].Options)
	assert.Equal(t, "arithmetic", quiz.Questions[0].Explanation)

	idx, resolved := quiz.Questions[0].Answer.Resolve(3)
	require.True(t, resolved)
	assert.Equal(t, 1, idx)

	idx, resolved = quiz.Questions[1].Answer.Resolve(2)
	require.True(t, resolved)
	assert.Equal(t, 0, idx)
}

func TestFromJSON_TopLevelArray(t *testing.T) {
	raw := `[{"question": "Pick", "options": ["a", "b"], "answer": "A"}]`
	quiz, ok := FromJSON(raw)
	require.True(t, ok)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "Pick", quiz.Questions[0].Question)
}

func TestFromJSON_QuizKeyRenamed(t *testing.T) {
	raw := `{"quiz": [{"q": "Alias keys?", "choices": ["yes", "no"], "correct": "A"}]}`
	quiz, ok := FromJSON(raw)
	require.True(t, ok)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "Alias keys?", quiz.Questions[0].Question)
	assert.Equal(t, []string{"yes", "no"}, quiz.Questions[0].Options)
}

func TestFromJSON_EmbeddedInProse(t *testing.T) {
	raw := "Here is your quiz:\n{\"questions\":[{\"question\":\"Q\",\"options\":[\"x\",\"y\"],\"answer\":1}]}\nEnjoy!"
	quiz, ok := FromJSON(raw)
	require.True(t, ok)
	require.Len(t, quiz.Questions, 1)
}

func TestFromJSON_LetteredOptionMap(t *testing.T) {
	raw := `{"questions": [{"question": "Map options", "options": {"B": "y", "A": "x", "D": "w"}, "answer": "A"}]}`
	quiz, ok := FromJSON(raw)
	require.True(t, ok)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, []string{"A) x", "B) y", "D) w"}, quiz.Questions[0].Options,
		"letter order A-F with absent letters skipped")
}

func TestFromJSON_DropsDefectiveQuestions(t *testing.T) {
	raw := `{"questions": [
		{"question": "", "options": ["a", "b"], "answer": "A"},
		{"question": "only one option", "options": ["a"], "answer": "A"},
		{"question": "empty options trimmed away", "options": ["  ", "", "a"], "answer": "A"},
		"not a mapping",
		{"question": "survivor", "options": ["a", "b"], "answer": "B"}
	]}`

	quiz, ok := FromJSON(raw)
	require.True(t, ok)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "survivor", quiz.Questions[0].Question)
}

func TestFromJSON_OrderPreserved(t *testing.T) {
	raw := `{"questions": [
		{"question": "one", "options": ["a", "b"]},
		{"question": "two", "options": ["a", "b"]},
		{"question": "three", "options": ["a", "b"]}
	]}`
	quiz, ok := FromJSON(raw)
	require.True(t, ok)
	var order []string
	for _, q := range quiz.Questions {
		order = append(order, q.Question)
	}
	assert.Equal(t, []string{"one", "two", "three"}, order)
}

func TestFromJSON_NoResult(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty input", ""},
		{"no json at all", "I could not generate a quiz, sorry."},
		{"json but not a quiz", `{"hello": "world"}`},
		{"empty questions", `{"questions": []}`},
		{"questions not a list", `{"questions": "nope"}`},
		{"scalar json", `42`},
		{"all questions defective", `{"questions": [{"question": "x", "options": ["only"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz, ok := FromJSON(tt.raw)
			assert.False(t, ok)
			assert.Nil(t, quiz)
		})
	}
}

func TestNormalize_JSONWinsOverText(t *testing.T) {
	raw := `{"questions":[{"question":"From JSON","options":["a","b"],"answer":"A"}]}`
	quiz, ok := Normalize(raw)
	require.True(t, ok)
	assert.Equal(t, "From JSON", quiz.Questions[0].Question)
}

func TestNormalize_FallsBackToText(t *testing.T) {
	raw := "Q1: Fallback?\nA) yes\nB) no\nANSWER: A"
	quiz, ok := Normalize(raw)
	require.True(t, ok)
	assert.Equal(t, "Fallback?", quiz.Questions[0].Question)
}

func TestNormalize_NoResult(t *testing.T) {
	quiz, ok := Normalize("nothing that looks like a quiz")
	assert.False(t, ok)
	assert.Nil(t, quiz)
}

func TestFromJSON_AnswerKeptRaw(t *testing.T) {
	raw := `{"questions": [{"question": "Raw answer", "options": ["a", "b", "c"], "correct_answer": "2"}]}`
	quiz, ok := FromJSON(raw)
	require.True(t, ok)
	assert.Equal(t, domain.TextAnswer("2"), quiz.Questions[0].Answer)
}

func TestFromJSON_BlankAnswerFallsThrough(t *testing.T) {
	raw := `{"questions": [
		{"question": "Blank alias", "options": ["a", "b"], "answer": "", "correct": "B"},
		{"question": "Zero kept", "options": ["a", "b"], "answer": 0, "correct": "B"}
	]}`

	quiz, ok := FromJSON(raw)
	require.True(t, ok)
	require.Len(t, quiz.Questions, 2)

	assert.Equal(t, domain.TextAnswer("B"), quiz.Questions[0].Answer,
		"an empty answer value must not shadow a filled alias key")
	assert.Equal(t, domain.IndexAnswer(0), quiz.Questions[1].Answer,
		"an explicit zero answer is honored")
}
