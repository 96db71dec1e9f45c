// Package ollama implements the model invocation service against a local
// Ollama server. All returned text is untrusted and goes through the qcm
// or CV normalization layers before use.
package ollama

import (
	"context"
	"net/http"
	"strings"
	"time"

	"cartable/internal/domain"
	"cartable/internal/prompt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// Client calls a local Ollama server through langchaingo.
type Client struct {
	server  string
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

var (
	_ domain.QuizGenerator  = (*Client)(nil)
	_ domain.CVGenerator    = (*Client)(nil)
	_ domain.InterviewCoach = (*Client)(nil)
)

// NewClient creates a client for the given server URL and model name.
func NewClient(server string, model string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		server:  server,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// Generate runs a prompt against the model and returns its raw text output.
// An unreachable server maps to MODEL_UNAVAILABLE, empty output to
// MODEL_ERROR; the session state of the caller is never touched on failure.
func (c *Client) Generate(ctx context.Context, promptText string) (string, error) {
	httpClient := &http.Client{
		Timeout: c.timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	llm, err := ollama.New(
		ollama.WithServerURL(c.server),
		ollama.WithModel(c.model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		c.logger.Error("Failed to create Ollama client", zap.Error(err))
		return "", domain.NewModelUnavailableError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	response, err := llm.Call(ctx, promptText, llms.WithTemperature(0.2))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			c.logger.Error("Model request timed out",
				zap.Duration("timeout", c.timeout),
				zap.Error(err))
		} else {
			c.logger.Error("Model call failed", zap.Error(err))
		}
		return "", domain.NewModelError("Model call failed", err)
	}

	out := strings.TrimSpace(response)
	if out == "" {
		c.logger.Error("Model returned empty output",
			zap.String("model", c.model))
		return "", domain.NewModelError("Model returned no output", nil)
	}

	c.logger.Debug("Model call completed",
		zap.String("model", c.model),
		zap.Duration("duration", time.Since(start)),
		zap.Int("output_bytes", len(out)))
	return out, nil
}

// GenerateQuiz implements domain.QuizGenerator.
func (c *Client) GenerateQuiz(ctx context.Context, sourceText string, numQuestions int, difficulty string) (string, error) {
	return c.Generate(ctx, prompt.Quiz(sourceText, numQuestions, difficulty))
}

// GenerateCV implements domain.CVGenerator.
func (c *Client) GenerateCV(ctx context.Context, input domain.CVInput) (string, error) {
	return c.Generate(ctx, prompt.CVStructured(input))
}

// InterviewQuestion implements domain.InterviewCoach.
func (c *Client) InterviewQuestion(ctx context.Context, job string) (string, error) {
	return c.Generate(ctx, prompt.InterviewQuestion(job))
}

// InterviewFeedback implements domain.InterviewCoach.
func (c *Client) InterviewFeedback(ctx context.Context, job string, answer string) (string, error) {
	return c.Generate(ctx, prompt.InterviewFeedback(job, answer))
}
