package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeQuestionQuiz() *Quiz {
	return &Quiz{Questions: []QuizQuestion{
		{Question: "first", Options: []string{"A) x", "B) y"}, Answer: TextAnswer("A")},
		{Question: "second", Options: []string{"A) x", "B) y", "C) z"}, Answer: TextAnswer("C"), Explanation: "because"},
		{Question: "third", Options: []string{"A) x", "B) y"}, Answer: NoAnswer()},
	}}
}

func TestSession_Navigation(t *testing.T) {
	s := NewSession(threeQuestionQuiz())
	assert.Equal(t, 0, s.Index())

	s.Prev()
	assert.Equal(t, 0, s.Index(), "prev at the first question is a no-op")

	s.Next()
	s.Next()
	assert.Equal(t, 2, s.Index())

	s.Next()
	assert.Equal(t, 2, s.Index(), "next at the last question is a no-op")

	s.Prev()
	assert.Equal(t, 1, s.Index())
}

func TestSession_SelectRecordsPerQuestion(t *testing.T) {
	s := NewSession(threeQuestionQuiz())

	s.Select(0)
	s.Next()
	s.Select(2)

	choice, ok := s.Answer(0)
	require.True(t, ok)
	assert.Equal(t, 0, choice)

	choice, ok = s.Answer(1)
	require.True(t, ok)
	assert.Equal(t, 2, choice)

	_, ok = s.Answer(2)
	assert.False(t, ok)
}

func TestSession_SelectOutOfRangeIgnored(t *testing.T) {
	s := NewSession(threeQuestionQuiz())
	s.Select(5)
	_, ok := s.Answer(0)
	assert.False(t, ok)
}

func TestSession_AnswersSurviveNavigation(t *testing.T) {
	s := NewSession(threeQuestionQuiz())
	s.Select(0)
	s.Next()
	s.Select(2)
	s.Next()
	s.Select(1)

	for i := 0; i < 10; i++ {
		s.Prev()
		s.Next()
	}

	want := map[int]int{0: 0, 1: 2, 2: 1}
	for idx, expected := range want {
		choice, ok := s.Answer(idx)
		require.True(t, ok, "answer for question %d lost", idx)
		assert.Equal(t, expected, choice)
	}
}

func TestSession_FinishAllCorrect(t *testing.T) {
	s := NewSession(threeQuestionQuiz())
	s.Select(0) // A
	s.Next()
	s.Select(2) // C

	results := s.Finish()
	assert.True(t, s.Finished())
	assert.Equal(t, 3, results.Total)
	assert.Equal(t, 2, results.Score, "the third question has no resolvable answer and never counts")

	third := results.Items[2]
	assert.Equal(t, -1, third.CorrectIndex)
	assert.Equal(t, -1, third.ChosenIndex)
	assert.False(t, third.Correct)
}

func TestSession_FinishNothingAnswered(t *testing.T) {
	s := NewSession(threeQuestionQuiz())
	results := s.Finish()

	assert.Equal(t, 0, results.Score)
	assert.Len(t, results.Items, 3)
	for _, item := range results.Items {
		assert.Equal(t, -1, item.ChosenIndex)
		assert.False(t, item.Correct)
	}
	// Correct indexes still resolve even without user answers.
	assert.Equal(t, 0, results.Items[0].CorrectIndex)
	assert.Equal(t, 2, results.Items[1].CorrectIndex)
}

func TestSession_FinishKeepsQuestionOrder(t *testing.T) {
	s := NewSession(threeQuestionQuiz())
	results := s.Finish()
	require.Len(t, results.Items, 3)
	assert.Equal(t, "first", results.Items[0].Question)
	assert.Equal(t, "second", results.Items[1].Question)
	assert.Equal(t, "third", results.Items[2].Question)
	assert.Equal(t, "because", results.Items[1].Explanation)
}

func TestSession_NilIsNoOp(t *testing.T) {
	var s *Session
	s.Select(0)
	s.Next()
	s.Prev()
	assert.Equal(t, Results{}, s.Finish())
	assert.False(t, s.Finished())
}
