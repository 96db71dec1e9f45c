// Package ui renders the interactive quiz session in the terminal. The
// model is a thin Elm-style layer over domain.Session; all quiz rules
// (navigation clamping, answer bookkeeping, scoring) stay in the domain.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"cartable/internal/domain"
	"cartable/internal/service"
)

// phase tracks what the view currently shows.
type phase int

const (
	phaseGenerating phase = iota
	phaseQuestion
	phaseResults
	phaseFailed
)

// Model drives one quiz session from generation to correction.
type Model struct {
	phase   phase
	session *domain.Session
	cursor  int
	results domain.Results
	err     error

	generate tea.Cmd
}

// quizReadyMsg carries the outcome of the generation command.
type quizReadyMsg struct {
	quiz *domain.Quiz
	err  error
}

// NewModel creates a model that generates a quiz on start and then runs
// the session interactively.
func NewModel(svc service.QuizService, sourceText string, numQuestions int, difficulty string) Model {
	return Model{
		phase: phaseGenerating,
		generate: func() tea.Msg {
			quiz, err := svc.Generate(context.Background(), sourceText, numQuestions, difficulty)
			return quizReadyMsg{quiz: quiz, err: err}
		},
	}
}

// NewSessionModel creates a model over an already generated quiz.
func NewSessionModel(quiz *domain.Quiz) Model {
	return Model{
		phase:   phaseQuestion,
		session: domain.NewSession(quiz),
	}
}

// Init starts the generation command when there is one.
func (m Model) Init() tea.Cmd {
	return m.generate
}

// Update consumes key presses and the generation result.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case quizReadyMsg:
		if typed.err != nil {
			m.phase = phaseFailed
			m.err = typed.err
			return m, nil
		}
		m.phase = phaseQuestion
		m.session = domain.NewSession(typed.quiz)
		m.cursor = 0
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}
	if m.phase != phaseQuestion {
		// Results and failure screens only react to quit keys.
		return m, nil
	}

	options := m.session.Current().Options

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(options)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.session.Select(m.cursor)
	case "a", "b", "c", "d", "e", "f":
		idx := int(key.String()[0] - 'a')
		if idx < len(options) {
			m.cursor = idx
			m.session.Select(idx)
		}
	case "right", "n":
		m.session.Next()
		m.cursor = m.restoredCursor()
	case "left", "p":
		m.session.Prev()
		m.cursor = m.restoredCursor()
	case "x":
		m.results = m.session.Finish()
		m.phase = phaseResults
	}
	return m, nil
}

// restoredCursor puts the highlight back on the recorded answer of the
// question now displayed, or on the first option.
func (m Model) restoredCursor() int {
	if choice, ok := m.session.Answer(m.session.Index()); ok {
		return choice
	}
	return 0
}

// Run executes the interactive program on the current terminal.
func Run(model Model) error {
	_, err := tea.NewProgram(model).Run()
	return err
}
