package service

import (
	"context"

	"cartable/internal/domain"
	"cartable/internal/qcm"

	"go.uber.org/zap"
)

// DiagnosticSink receives raw model output at interesting stages, replacing
// ad-hoc debug file writes. Stage names: "quiz_raw", "quiz_unparseable",
// "cv_raw", "cv_bad_json". A nil sink disables diagnostics.
type DiagnosticSink func(stage string, raw string)

// ZapDiagnosticSink writes diagnostics to the logger at debug level.
func ZapDiagnosticSink(logger *zap.Logger) DiagnosticSink {
	return func(stage string, raw string) {
		logger.Debug("Model output diagnostic",
			zap.String("stage", stage),
			zap.Int("bytes", len(raw)),
			zap.String("raw", raw))
	}
}

// QuizService defines quiz generation over a source document.
type QuizService interface {
	// Generate produces a normalized quiz from the source text. No quiz
	// session is touched on failure; the caller decides when to replace
	// its current session with the result.
	Generate(ctx context.Context, sourceText string, numQuestions int, difficulty string) (*domain.Quiz, error)
}

type quizService struct {
	generator domain.QuizGenerator
	diag      DiagnosticSink
	logger    *zap.Logger
}

// NewQuizService creates a new instance of quizService.
func NewQuizService(generator domain.QuizGenerator, diag DiagnosticSink, logger *zap.Logger) QuizService {
	return &quizService{
		generator: generator,
		diag:      diag,
		logger:    logger,
	}
}

// Generate implements QuizService
func (s *quizService) Generate(ctx context.Context, sourceText string, numQuestions int, difficulty string) (*domain.Quiz, error) {
	s.logger.Info("Generating quiz",
		zap.Int("questions", numQuestions),
		zap.String("difficulty", difficulty),
		zap.Int("source_bytes", len(sourceText)))

	raw, err := s.generator.GenerateQuiz(ctx, sourceText, numQuestions, difficulty)
	if err != nil {
		return nil, err
	}
	s.emit("quiz_raw", raw)

	quiz, ok := qcm.Normalize(raw)
	if !ok {
		s.emit("quiz_unparseable", raw)
		s.logger.Warn("Model output did not contain a parseable quiz")
		return nil, domain.NewQuizUnparseableError()
	}

	s.logger.Info("Quiz generated", zap.Int("questions", len(quiz.Questions)))
	return quiz, nil
}

func (s *quizService) emit(stage string, raw string) {
	if s.diag != nil {
		s.diag(stage, raw)
	}
}
