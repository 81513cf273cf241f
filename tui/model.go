package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/zappabad/klinecamp/internal/audio"
	"github.com/zappabad/klinecamp/internal/game"
	"github.com/zappabad/klinecamp/internal/history"
	"github.com/zappabad/klinecamp/tui/panels"
	"github.com/zappabad/klinecamp/tui/styles"
)

var keyForceQuit = key.NewBinding(key.WithKeys("ctrl+c"))

// Model is the main TUI application model.
type Model struct {
	game   *game.Game
	logger *zap.Logger

	screen panels.Screen

	// Panels
	homePanel      *panels.HomePanel
	simPanel       *panels.SimulationPanel
	resultPanel    *panels.ResultPanel
	quizPanel      *panels.QuizPanel
	storyPanel     *panels.StoryPanel
	indicatorPanel *panels.IndicatorPanel
	historyPanel   *panels.HistoryPanel

	help help.Model

	// Window dimensions
	width  int
	height int

	// Status
	statusMsg string
	ready     bool
}

// NewModel creates a new TUI model.
func NewModel(g *game.Game, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		game:           g,
		logger:         logger,
		screen:         panels.ScreenHome,
		homePanel:      panels.NewHomePanel(g.Tips.Current),
		indicatorPanel: panels.NewIndicatorPanel(),
		help:           help.New(),
	}
	m.help.Styles.ShortKey = styles.StatusBarKeyStyle
	m.help.Styles.ShortDesc = styles.StatusBarDescStyle
	m.help.Styles.FullKey = styles.StatusBarKeyStyle
	m.help.Styles.FullDesc = styles.StatusBarDescStyle
	m.homePanel.SetMuted(g.Sound.Muted())
	m.refreshHome()
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.homePanel.Init()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keyForceQuit) {
			return m, tea.Quit
		}
		if m.screen == panels.ScreenHome && msg.String() == "q" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case panels.NavigateMsg:
		m.game.Sound.Play(audio.CueClick)
		return m, m.navigate(msg.Screen)

	case panels.FinishSimulationMsg:
		m.finishSimulation()
		return m, nil

	case panels.ClearHistoryMsg:
		if err := m.game.ClearHistory(context.Background()); err != nil {
			m.statusMsg = "Could not clear history: " + err.Error()
		}
		m.historyPanel.SetRecords(m.loadHistory())
		m.refreshHome()
		return m, nil

	case panels.ToggleMuteMsg:
		muted := m.game.Sound.ToggleMute()
		m.homePanel.SetMuted(muted)
		return m, nil
	}

	return m, m.updateActivePanel(msg)
}

func (m *Model) updateActivePanel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch m.screen {
	case panels.ScreenHome:
		m.homePanel, cmd = m.homePanel.Update(msg)
	case panels.ScreenSimulation:
		m.simPanel, cmd = m.simPanel.Update(msg)
	case panels.ScreenResult:
		m.resultPanel, cmd = m.resultPanel.Update(msg)
	case panels.ScreenQuiz:
		m.quizPanel, cmd = m.quizPanel.Update(msg)
	case panels.ScreenStory:
		m.storyPanel, cmd = m.storyPanel.Update(msg)
	case panels.ScreenIndicator:
		m.indicatorPanel, cmd = m.indicatorPanel.Update(msg)
	case panels.ScreenHistory:
		m.historyPanel, cmd = m.historyPanel.Update(msg)
	}
	return cmd
}

// navigate switches screens, starting a fresh session where the screen
// owns one.
func (m *Model) navigate(screen panels.Screen) tea.Cmd {
	m.statusMsg = ""

	switch screen {
	case panels.ScreenHome:
		m.refreshHome()

	case panels.ScreenSimulation:
		s, err := m.game.NewSimulation()
		if err != nil {
			m.logger.Error("failed to start simulation", zap.Error(err))
			m.statusMsg = "Could not start a simulation: " + err.Error()
			return nil
		}
		m.simPanel = panels.NewSimulationPanel(s, m.game.Config().Simulation, m.game.Sound)

	case panels.ScreenResult:
		if m.resultPanel == nil {
			return nil
		}

	case panels.ScreenQuiz:
		m.quizPanel = panels.NewQuizPanel(m.game.NewQuiz())

	case panels.ScreenStory:
		m.storyPanel = panels.NewStoryPanel(m.game.NewStory())

	case panels.ScreenIndicator:

	case panels.ScreenHistory:
		m.historyPanel = panels.NewHistoryPanel(m.loadHistory())
	}

	m.screen = screen
	m.logger.Debug("screen changed", zap.Stringer("screen", screen))
	return nil
}

func (m *Model) finishSimulation() {
	if m.simPanel == nil || m.simPanel.Session().Finished() {
		return
	}
	res := m.game.FinishSimulation(context.Background(), m.simPanel.Session())
	m.resultPanel = panels.NewResultPanel(res)
	m.screen = panels.ScreenResult
}

func (m *Model) loadHistory() []history.Record {
	records, err := m.game.History(context.Background())
	if err != nil {
		m.logger.Warn("failed to load history", zap.Error(err))
		m.statusMsg = "History unavailable"
		return nil
	}
	return records
}

func (m *Model) refreshHome() {
	records := m.loadHistory()
	m.homePanel.SetStats(history.Summarize(records), history.MonthlyWinRate(records, m.game.Now()))
}

// activeKeys returns the key map of the current screen.
func (m *Model) activeKeys() help.KeyMap {
	switch m.screen {
	case panels.ScreenSimulation:
		return m.simPanel
	case panels.ScreenResult:
		return m.resultPanel
	case panels.ScreenQuiz:
		return m.quizPanel
	case panels.ScreenStory:
		return m.storyPanel
	case panels.ScreenIndicator:
		return m.indicatorPanel
	case panels.ScreenHistory:
		return m.historyPanel
	default:
		return m.homePanel
	}
}

// Screen returns the current screen.
func (m *Model) Screen() panels.Screen {
	return m.screen
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	// Leave one row for the status bar
	bodyHeight := m.height - 1

	var body string
	switch m.screen {
	case panels.ScreenSimulation:
		m.simPanel.SetSize(m.width, bodyHeight)
		body = m.simPanel.View()
	case panels.ScreenResult:
		m.resultPanel.SetSize(m.width, bodyHeight)
		body = m.resultPanel.View()
	case panels.ScreenQuiz:
		m.quizPanel.SetSize(m.width, bodyHeight)
		body = m.quizPanel.View()
	case panels.ScreenStory:
		m.storyPanel.SetSize(m.width, bodyHeight)
		body = m.storyPanel.View()
	case panels.ScreenIndicator:
		m.indicatorPanel.SetSize(m.width, bodyHeight)
		body = m.indicatorPanel.View()
	case panels.ScreenHistory:
		m.historyPanel.SetSize(m.width, bodyHeight)
		body = m.historyPanel.View()
	default:
		m.homePanel.SetSize(m.width, bodyHeight)
		body = m.homePanel.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m *Model) renderStatusBar() string {
	status := m.help.View(m.activeKeys())
	if m.statusMsg != "" {
		status += " │ " + m.statusMsg
	}
	return styles.StatusBarStyle.Width(m.width).Render(status)
}
