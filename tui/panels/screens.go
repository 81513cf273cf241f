package panels

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen identifies a top-level view of the application.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenSimulation
	ScreenResult
	ScreenQuiz
	ScreenStory
	ScreenIndicator
	ScreenHistory
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenSimulation:
		return "Simulation"
	case ScreenResult:
		return "Result"
	case ScreenQuiz:
		return "Quiz"
	case ScreenStory:
		return "Story"
	case ScreenIndicator:
		return "Indicators"
	case ScreenHistory:
		return "History"
	default:
		return "Unknown"
	}
}

// NavigateMsg asks the root model to switch screens. Screens that own a
// session get a fresh one.
type NavigateMsg struct {
	Screen Screen
}

// Navigate returns a command emitting a NavigateMsg.
func Navigate(s Screen) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Screen: s} }
}

// FinishSimulationMsg asks the root model to settle the running simulation.
type FinishSimulationMsg struct{}

// ClearHistoryMsg asks the root model to wipe the saved results.
type ClearHistoryMsg struct{}

// ToggleMuteMsg asks the root model to toggle sound.
type ToggleMuteMsg struct{}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Shared key bindings.
var (
	keyUp    = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	keyDown  = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	keyEnter = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
	keyBack  = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	keyQuit  = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
)
