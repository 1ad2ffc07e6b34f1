// Package tui provides the Bubble Tea arithmetic quiz interface.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuimath/internal/model"
	"github.com/verte-zerg/tuimath/internal/quiz"
)

const (
	barColor    = "#52C41A"
	lowBarColor = "#FF4D4F"
	maxBarWidth = 48
)

// toastExpiredMsg dismisses the toast with the matching id.
type toastExpiredMsg struct {
	id int
}

type toast struct {
	id       int
	feedback quiz.Feedback
}

// Model implements the Bubble Tea quiz UI and presents controller state.
type Model struct {
	ctrl  *quiz.Controller
	clock *teaClock

	keys   keyMap
	help   help.Model
	bar    progress.Model
	lowBar progress.Model

	frame    quiz.Frame
	toast    *toast
	toastSeq int
	showInfo bool
	pending  []tea.Cmd

	width  int
	height int
}

// NewModel constructs the quiz TUI. A positive cfg.Level skips the menu.
func NewModel(cfg model.Config, gen quiz.Generator, logger *zerolog.Logger) *Model {
	return newModel(cfg, gen, logger, time.Now)
}

func newModel(cfg model.Config, gen quiz.Generator, logger *zerolog.Logger, now func() time.Time) *Model {
	m := &Model{
		clock:  newTeaClock(now),
		keys:   newKeyMap(),
		help:   help.New(),
		bar:    progress.New(progress.WithSolidFill(barColor), progress.WithoutPercentage()),
		lowBar: progress.New(progress.WithSolidFill(lowBarColor), progress.WithoutPercentage()),
	}
	m.ctrl = quiz.NewController(m.clock, gen, m, quiz.Options{
		TimeLimit: cfg.TimeLimit,
		QuickMode: cfg.QuickMode,
		Logger:    logger,
	})
	m.frame = m.ctrl.Frame()
	if cfg.Level > 0 {
		m.ctrl.SelectDifficulty(model.Level(cfg.Level))
	}
	return m
}

// Stats returns the counters of the current or last game.
func (m *Model) Stats() model.SessionStats {
	return m.ctrl.Stats()
}

// Render implements quiz.Presenter.
func (m *Model) Render(frame quiz.Frame) {
	m.frame = frame
	if m.ctrl != nil && m.ctrl.State() == quiz.StateMenu {
		m.toast = nil
	}
}

// Notify implements quiz.Presenter.
func (m *Model) Notify(fb quiz.Feedback) {
	m.toastSeq++
	id := m.toastSeq
	m.toast = &toast{id: id, feedback: fb}
	m.pending = append(m.pending, tea.Tick(fb.Dismiss, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	}))
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.flush(nil)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeBars()
	case firedMsg:
		m.clock.fire(msg.id)
	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}
	return m, m.flush(cmd)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.keys.Submit.SetEnabled(!m.ctrl.QuickMode())
	state := m.ctrl.State()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Info):
		m.showInfo = !m.showInfo
		return nil
	case key.Matches(msg, m.keys.Quick):
		m.ctrl.ToggleQuickMode()
		return nil
	}
	if m.showInfo && key.Matches(msg, m.keys.Back) {
		m.showInfo = false
		return nil
	}

	if state == quiz.StateMenu {
		switch {
		case key.Matches(msg, m.keys.Exit):
			return tea.Quit
		case key.Matches(msg, m.keys.Level):
			m.showInfo = false
			m.ctrl.SelectDifficulty(model.Level(msg.Runes[0] - '0'))
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.ctrl.Reset()
	case key.Matches(msg, m.keys.Submit):
		m.ctrl.Submit()
	case key.Matches(msg, m.keys.Delete):
		m.ctrl.Backspace()
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			if isAnswerRune(r) {
				m.ctrl.InputChar(r)
			}
		}
	}
	return nil
}

// flush batches cmd with everything scheduled during this update.
func (m *Model) flush(cmd tea.Cmd) tea.Cmd {
	cmds := m.clock.drain()
	cmds = append(cmds, m.pending...)
	m.pending = nil
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) resizeBars() {
	w := m.width - 8
	if w > maxBarWidth {
		w = maxBarWidth
	}
	if w < 10 {
		w = 10
	}
	m.bar.Width = w
	m.lowBar.Width = w
}
