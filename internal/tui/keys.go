package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Level  key.Binding
	Submit key.Binding
	Delete key.Binding
	Quick  key.Binding
	Back   key.Binding
	Info   key.Binding
	Quit   key.Binding
	Exit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Level: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "level"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "delete"),
		),
		Quick: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "quick mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Info: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "info"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Exit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) menuBindings() []key.Binding {
	return []key.Binding{k.Level, k.Quick, k.Info, k.Exit}
}

func (k keyMap) gameBindings() []key.Binding {
	return []key.Binding{k.Submit, k.Delete, k.Quick, k.Info, k.Back, k.Quit}
}

// isAnswerRune reports whether r can be part of a typed answer.
func isAnswerRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '.'
}
