package main

import (
	"encoding/json"
	"fmt"
	"os"

	"cartable/internal/adapter/ollama"
	"cartable/internal/domain"
	"cartable/internal/logger"
	"cartable/internal/service"
	"cartable/internal/storage"
	"cartable/internal/ui"

	"github.com/spf13/cobra"
)

func newQuizCommand() *cobra.Command {
	command := cobra.Command{
		Use:   "quiz",
		Short: "Generate quizzes from your documents and notes",
	}

	var (
		questions  int
		difficulty string
		jsonOut    bool
	)
	generateCommand := cobra.Command{
		Use:   "generate <file>",
		Short: "Generate a quiz from a text file and run it interactively",
		Long: `Generate a multiple-choice quiz from the given text file using the
configured local model. By default the quiz runs interactively in the
terminal; with --json-out the normalized quiz is printed as JSON instead.

The argument is a path on disk, or the name of an imported document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourceText, err := readSource(args[0])
			if err != nil {
				return err
			}

			log := logger.Get()
			client := ollama.NewClient(cfg.Ollama.Server, cfg.Ollama.Model, cfg.Ollama.Timeout, log)
			quizService := service.NewQuizService(client, service.ZapDiagnosticSink(log), log)

			if questions <= 0 {
				questions = cfg.Quiz.Questions
			}
			if difficulty == "" {
				difficulty = cfg.Quiz.Difficulty
			}

			if jsonOut {
				quiz, err := quizService.Generate(cmd.Context(), sourceText, questions, difficulty)
				if err != nil {
					return err
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(quizJSON(quiz))
			}

			return ui.Run(ui.NewModel(quizService, sourceText, questions, difficulty))
		},
	}
	generateCommand.Flags().IntVar(&questions, "questions", 0, "number of questions (default from config)")
	generateCommand.Flags().StringVar(&difficulty, "difficulty", "", "easy, medium or hard (default from config)")
	generateCommand.Flags().BoolVar(&jsonOut, "json-out", false, "print the quiz as JSON instead of running it")

	command.AddCommand(&generateCommand)
	return &command
}

// readSource loads the quiz source text from a path on disk, falling back
// to an imported document with that name.
func readSource(arg string) (string, error) {
	if data, err := os.ReadFile(arg); err == nil {
		return string(data), nil
	}
	store := storage.NewStore(cfg.DataDir, logger.Get())
	if path, ok := store.FindDocumentPath(arg); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read document %s: %w", arg, err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("no such file or document: %s", arg)
}

type quizQuestionJSON struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      any      `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// quizJSON projects the quiz into the same shape the JSON pipeline accepts,
// so the output can be inspected or fed back in.
func quizJSON(quiz *domain.Quiz) map[string]any {
	out := make([]quizQuestionJSON, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		item := quizQuestionJSON{
			Question:    q.Question,
			Options:     q.Options,
			Explanation: q.Explanation,
		}
		switch q.Answer.Kind {
		case domain.AnswerIndex:
			item.Answer = q.Answer.Index
		case domain.AnswerText:
			item.Answer = q.Answer.Text
		}
		out = append(out, item)
	}
	return map[string]any{"questions": out}
}
