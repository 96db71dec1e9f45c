package service

import (
	"context"

	"cartable/internal/domain"

	"go.uber.org/zap"
)

// InterviewService defines the interview coaching operations. The coach's
// replies are free text and passed through unmodified.
type InterviewService interface {
	NextQuestion(ctx context.Context, job string) (string, error)
	Feedback(ctx context.Context, job string, answer string) (string, error)
}

type interviewService struct {
	coach  domain.InterviewCoach
	logger *zap.Logger
}

// NewInterviewService creates a new instance of interviewService.
func NewInterviewService(coach domain.InterviewCoach, logger *zap.Logger) InterviewService {
	return &interviewService{
		coach:  coach,
		logger: logger,
	}
}

// NextQuestion implements InterviewService
func (s *interviewService) NextQuestion(ctx context.Context, job string) (string, error) {
	if job == "" {
		return "", domain.NewInvalidInputError("Job description must not be empty")
	}
	s.logger.Info("Requesting interview question", zap.String("job", job))
	return s.coach.InterviewQuestion(ctx, job)
}

// Feedback implements InterviewService
func (s *interviewService) Feedback(ctx context.Context, job string, answer string) (string, error) {
	if job == "" {
		return "", domain.NewInvalidInputError("Job description must not be empty")
	}
	if answer == "" {
		return "", domain.NewInvalidInputError("Answer must not be empty")
	}
	s.logger.Info("Requesting interview feedback", zap.String("job", job))
	return s.coach.InterviewFeedback(ctx, job, answer)
}
