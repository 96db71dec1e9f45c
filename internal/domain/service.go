package domain

import "context"

// QuizGenerator defines the interface for producing raw quiz text from a
// source document. The returned text is untrusted model output and goes
// through normalization before use.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, sourceText string, numQuestions int, difficulty string) (string, error)
}

// CVGenerator defines the interface for producing raw structured-CV output.
type CVGenerator interface {
	GenerateCV(ctx context.Context, input CVInput) (string, error)
}

// InterviewCoach defines the interface for interview practice generation.
type InterviewCoach interface {
	InterviewQuestion(ctx context.Context, job string) (string, error)
	InterviewFeedback(ctx context.Context, job string, answer string) (string, error)
}
