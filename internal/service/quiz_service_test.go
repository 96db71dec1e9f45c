package service

import (
	"context"
	"testing"

	"cartable/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubGenerator returns a canned reply or error for every prompt.
type stubGenerator struct {
	reply string
	err   error
}

func (g *stubGenerator) GenerateQuiz(ctx context.Context, sourceText string, numQuestions int, difficulty string) (string, error) {
	return g.reply, g.err
}

func (g *stubGenerator) GenerateCV(ctx context.Context, input domain.CVInput) (string, error) {
	return g.reply, g.err
}

func (g *stubGenerator) InterviewQuestion(ctx context.Context, job string) (string, error) {
	return g.reply, g.err
}

func (g *stubGenerator) InterviewFeedback(ctx context.Context, job string, answer string) (string, error) {
	return g.reply, g.err
}

func TestQuizService_GenerateFromJSON(t *testing.T) {
	gen := &stubGenerator{reply: `{"questions":[{"question":"Q1","options":["a","b"],"answer":"A"}]}`}
	svc := NewQuizService(gen, nil, zap.NewNop())

	quiz, err := svc.Generate(context.Background(), "source", 1, "easy")
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "Q1", quiz.Questions[0].Question)
}

func TestQuizService_GenerateFromTextFallback(t *testing.T) {
	gen := &stubGenerator{reply: "Q1: Text format?\nA) yes\nB) no\nANSWER: A"}
	svc := NewQuizService(gen, nil, zap.NewNop())

	quiz, err := svc.Generate(context.Background(), "source", 1, "easy")
	require.NoError(t, err)
	assert.Equal(t, "Text format?", quiz.Questions[0].Question)
}

func TestQuizService_Unparseable(t *testing.T) {
	var stages []string
	diag := func(stage, raw string) { stages = append(stages, stage) }

	gen := &stubGenerator{reply: "I am sorry, I cannot help with that."}
	svc := NewQuizService(gen, diag, zap.NewNop())

	quiz, err := svc.Generate(context.Background(), "source", 3, "medium")
	assert.Nil(t, quiz)
	assert.True(t, domain.IsCode(err, domain.ErrQuizUnparseable))
	assert.Equal(t, []string{"quiz_raw", "quiz_unparseable"}, stages)
}

func TestQuizService_ModelErrorPassedThrough(t *testing.T) {
	gen := &stubGenerator{err: domain.NewModelUnavailableError(nil)}
	svc := NewQuizService(gen, nil, zap.NewNop())

	quiz, err := svc.Generate(context.Background(), "source", 3, "medium")
	assert.Nil(t, quiz)
	assert.True(t, domain.IsCode(err, domain.ErrModelUnavailable))
}

func TestInterviewService_Validation(t *testing.T) {
	svc := NewInterviewService(&stubGenerator{reply: "Tell me about a challenge."}, zap.NewNop())

	_, err := svc.NextQuestion(context.Background(), "")
	assert.True(t, domain.IsCode(err, domain.ErrInvalidInput))

	q, err := svc.NextQuestion(context.Background(), "backend engineer")
	require.NoError(t, err)
	assert.Equal(t, "Tell me about a challenge.", q)

	_, err = svc.Feedback(context.Background(), "backend engineer", "")
	assert.True(t, domain.IsCode(err, domain.ErrInvalidInput))
}
