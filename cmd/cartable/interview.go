package main

import (
	"fmt"
	"io"
	"strings"

	"cartable/internal/adapter/ollama"
	"cartable/internal/logger"
	"cartable/internal/service"

	"github.com/spf13/cobra"
)

func newInterviewCommand() *cobra.Command {
	command := cobra.Command{
		Use:   "interview",
		Short: "Practice job interviews with the local model",
	}
	command.AddCommand(
		&cobra.Command{
			Use:   "question <job>",
			Short: "Ask for one interview question for the given job",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc := newInterviewService()
				question, err := svc.NextQuestion(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Println(question)
				return nil
			},
		},
		&cobra.Command{
			Use:   "feedback <job>",
			Short: "Get feedback on an answer, read from stdin",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				answer, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read answer: %w", err)
				}
				svc := newInterviewService()
				feedback, err := svc.Feedback(cmd.Context(),
					strings.Join(args, " "), strings.TrimSpace(string(answer)))
				if err != nil {
					return err
				}
				fmt.Println(feedback)
				return nil
			},
		},
	)
	return &command
}

func newInterviewService() service.InterviewService {
	log := logger.Get()
	client := ollama.NewClient(cfg.Ollama.Server, cfg.Ollama.Model, cfg.Ollama.Timeout, log)
	return service.NewInterviewService(client, log)
}
