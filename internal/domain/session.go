package domain

// Session holds the in-memory progress of a user working through one quiz.
// It is owned by a single goroutine; there is no locking.
type Session struct {
	quiz     *Quiz
	index    int
	answers  map[int]int
	finished bool
}

// NewSession starts a fresh session over the given quiz at the first
// question with no recorded answers.
func NewSession(quiz *Quiz) *Session {
	return &Session{
		quiz:    quiz,
		answers: make(map[int]int),
	}
}

// Quiz returns the quiz this session runs over.
func (s *Session) Quiz() *Quiz {
	if s == nil {
		return nil
	}
	return s.quiz
}

// Index returns the current question index.
func (s *Session) Index() int {
	if s == nil {
		return 0
	}
	return s.index
}

// Current returns the question at the current index.
func (s *Session) Current() QuizQuestion {
	if s == nil || s.quiz == nil {
		return QuizQuestion{}
	}
	return s.quiz.Questions[s.index]
}

// Finished reports whether Finish has been called.
func (s *Session) Finished() bool {
	return s != nil && s.finished
}

// Select records the chosen option for the current question. An option index
// outside the current question's option list is ignored.
func (s *Session) Select(option int) {
	if s == nil || s.quiz == nil {
		return
	}
	if option < 0 || option >= len(s.quiz.Questions[s.index].Options) {
		return
	}
	s.answers[s.index] = option
}

// Answer returns the recorded choice for a question index, if any.
func (s *Session) Answer(questionIndex int) (int, bool) {
	if s == nil {
		return 0, false
	}
	choice, ok := s.answers[questionIndex]
	return choice, ok
}

// Next advances to the following question. At the last question it is a no-op.
func (s *Session) Next() {
	if s == nil || s.quiz == nil {
		return
	}
	if s.index < len(s.quiz.Questions)-1 {
		s.index++
	}
}

// Prev steps back to the previous question. At the first question it is a no-op.
func (s *Session) Prev() {
	if s == nil || s.quiz == nil {
		return
	}
	if s.index > 0 {
		s.index--
	}
}

// ResultItem is the per-question outcome computed by Finish.
// ChosenIndex and CorrectIndex are -1 when no choice was recorded or the
// correct answer could not be resolved.
type ResultItem struct {
	Question     string
	Options      []string
	ChosenIndex  int
	CorrectIndex int
	Correct      bool
	Explanation  string
}

// Results aggregates the outcome of a finished session.
type Results struct {
	Items []ResultItem
	Score int
	Total int
}

// Finish computes the correction for every question in original order and
// marks the session completed. A question counts as correct only when both
// the resolved correct index and the recorded choice exist and are equal.
// Finish may be called repeatedly; later answer changes are re-scored.
func (s *Session) Finish() Results {
	if s == nil || s.quiz == nil {
		return Results{}
	}
	s.finished = true

	results := Results{Total: len(s.quiz.Questions)}
	for i, q := range s.quiz.Questions {
		item := ResultItem{
			Question:     q.Question,
			Options:      q.Options,
			ChosenIndex:  -1,
			CorrectIndex: -1,
			Explanation:  q.Explanation,
		}
		if correct, ok := q.Answer.Resolve(len(q.Options)); ok {
			item.CorrectIndex = correct
		}
		if chosen, ok := s.answers[i]; ok {
			item.ChosenIndex = chosen
		}
		if item.CorrectIndex >= 0 && item.ChosenIndex == item.CorrectIndex {
			item.Correct = true
			results.Score++
		}
		results.Items = append(results.Items, item)
	}
	return results
}
