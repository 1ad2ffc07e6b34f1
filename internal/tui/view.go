package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuimath/internal/model"
	"github.com/verte-zerg/tuimath/internal/quiz"
)

const inputWidth = 12

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	textStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0")).MarginBottom(1)
	inputStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8C8C8C")).
			Padding(0, 1)
	infoStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(0, 1).
			Width(44)
	toastStyles = map[model.FeedbackKind]lipgloss.Style{
		model.FeedbackCorrect: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#52C41A")),
		model.FeedbackWrong:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4D4F")),
		model.FeedbackTimeUp:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAAD14")),
	}
)

const quickModeInfo = "Quick mode checks your answer on every keystroke and " +
	"moves on as soon as it matches, so Enter is not needed. " +
	"Turn it off to type the whole answer and submit with Enter."

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	bindings := m.keys.gameBindings()
	if m.ctrl.State() == quiz.StateMenu {
		content = m.renderMenu()
		bindings = m.keys.menuBindings()
	} else {
		content = m.renderGame()
	}
	if m.showInfo {
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", infoStyle.Render(quickModeInfo))
	}
	m.keys.Submit.SetEnabled(!m.ctrl.QuickMode())
	footer := footerStyle.Render(m.help.ShortHelpView(bindings))

	if m.width == 0 || m.height < 3 {
		return content + "\n\n" + footer
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderMenu() string {
	lines := []string{titleStyle.Render("Mental Math"), dimStyle.Render("Choose a difficulty"), ""}
	for _, p := range model.Presets() {
		lines = append(lines, textStyle.Render(fmt.Sprintf("%d  %s", p.Level, p)))
	}
	lines = append(lines, "", dimStyle.Render(m.quickLabel()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderGame() string {
	header := dimStyle.Render(fmt.Sprintf("Level %d · Question %d · %s",
		m.ctrl.Level(), m.frame.QuestionIndex, m.quickLabel()))
	score := m.renderScoreboard()
	question := questionStyle.Render(m.frame.QuestionText)
	input := inputStyle.Render(renderInput(m.ctrl.Input()))
	bar := m.renderBar()

	parts := []string{header, score, "", question, input, bar}
	if t := m.renderToast(); t != "" {
		parts = append(parts, "", t)
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) renderScoreboard() string {
	s := m.frame.Scoreboard
	segments := []string{
		fmt.Sprintf("Completed %d", s.Completed()),
		fmt.Sprintf("Correct %d", s.Correct),
		fmt.Sprintf("Wrong %d", s.Wrong),
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) renderBar() string {
	f := m.frame.TimerFraction
	if quiz.LowTime(f) {
		return m.lowBar.ViewAs(f)
	}
	return m.bar.ViewAs(f)
}

func (m *Model) renderToast() string {
	if m.toast == nil {
		return ""
	}
	fb := m.toast.feedback
	style, ok := toastStyles[fb.Kind]
	if !ok {
		style = textStyle
	}
	return lipgloss.JoinVertical(lipgloss.Center, style.Render(fb.Title), textStyle.Render(fb.Message))
}

func (m *Model) quickLabel() string {
	if m.ctrl.QuickMode() {
		return "Quick mode on"
	}
	return "Quick mode off"
}

// renderInput keeps the tail of long answers and pads to a fixed width.
func renderInput(value string) string {
	if r := []rune(value); len(r) > inputWidth {
		value = string(r[len(r)-inputWidth:])
	}
	return runewidth.FillRight(value, inputWidth)
}
