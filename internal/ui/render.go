package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	faintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
)

// View renders the screen for the current phase.
func (m Model) View() string {
	switch m.phase {
	case phaseGenerating:
		return titleStyle.Render("Generating quiz...") + "\n" +
			faintStyle.Render("The local model is working, this can take a while. Press q to abort.") + "\n"
	case phaseFailed:
		return wrongStyle.Render("No quiz generated: "+m.err.Error()) + "\n" +
			faintStyle.Render("Press q to quit.") + "\n"
	case phaseResults:
		return m.viewResults()
	default:
		return m.viewQuestion()
	}
}

func (m Model) viewQuestion() string {
	quiz := m.session.Quiz()
	if quiz == nil {
		return ""
	}
	q := m.session.Current()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Question %d/%d", m.session.Index()+1, len(quiz.Questions))))
	b.WriteString("\n\n")
	b.WriteString(q.Question)
	b.WriteString("\n\n")

	chosen, hasChoice := m.session.Answer(m.session.Index())
	for i, opt := range q.Options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		mark := "( ) "
		if hasChoice && i == chosen {
			mark = "(x) "
		}
		line := cursor + mark + opt
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("up/down move | enter select | a-f pick | p/n navigate | x finish | q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Score: %d/%d", m.results.Score, m.results.Total)))
	b.WriteString("\n\n")

	for i, item := range m.results.Items {
		b.WriteString(fmt.Sprintf("Q%d: %s\n", i+1, item.Question))

		yourAnswer := "(none)"
		if item.ChosenIndex >= 0 {
			yourAnswer = item.Options[item.ChosenIndex]
		}
		correctAnswer := "(unknown)"
		if item.CorrectIndex >= 0 {
			correctAnswer = item.Options[item.CorrectIndex]
		}

		answerLine := "Your answer: " + yourAnswer
		if item.Correct {
			b.WriteString(correctStyle.Render(answerLine))
		} else {
			b.WriteString(wrongStyle.Render(answerLine))
		}
		b.WriteString("\n")
		b.WriteString("Correct answer: " + correctAnswer)
		b.WriteString("\n")
		if item.Explanation != "" {
			b.WriteString(faintStyle.Render("Explanation: " + item.Explanation))
			b.WriteString("\n")
		}
		b.WriteString(faintStyle.Render(strings.Repeat("-", 60)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("Press q to quit."))
	b.WriteString("\n")
	return b.String()
}
