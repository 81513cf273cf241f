package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/klinecamp/internal/history"
	"github.com/zappabad/klinecamp/tui/styles"
)

type menuItem struct {
	screen Screen
	title  string
	desc   string
}

var homeMenu = []menuItem{
	{ScreenSimulation, "Simulation Mode", "Trade the last 30 days of a hidden chart with ¥100,000"},
	{ScreenQuiz, "Knowledge Quiz", "Candles, indicators, Chan theory and discipline"},
	{ScreenStory, "Trader's Journey", "Three years of choices, from rookie to retirement"},
	{ScreenIndicator, "Indicator Wiki", "MA, MACD, KDJ, BOLL and RSI explained"},
	{ScreenHistory, "Growth Record", "Your past simulations by month"},
}

var keyMute = key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute"))

// HomePanel is the main menu.
type HomePanel struct {
	tip      func() string
	summary  history.Summary
	monthly  float64
	muted    bool
	selected int
	width    int
	height   int
}

// NewHomePanel creates the main menu. tip is polled on every render.
func NewHomePanel(tip func() string) *HomePanel {
	return &HomePanel{tip: tip}
}

// Init initializes the panel.
func (p *HomePanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *HomePanel) Update(msg tea.Msg) (*HomePanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyUp):
			if p.selected > 0 {
				p.selected--
			}
		case key.Matches(msg, keyDown):
			if p.selected < len(homeMenu)-1 {
				p.selected++
			}
		case key.Matches(msg, keyEnter):
			return p, Navigate(homeMenu[p.selected].screen)
		case key.Matches(msg, keyMute):
			return p, emit(ToggleMuteMsg{})
		default:
			// 1-5 jump straight to a menu entry
			if s := msg.String(); len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(homeMenu) {
				p.selected = int(s[0] - '1')
				return p, Navigate(homeMenu[p.selected].screen)
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *HomePanel) View() string {
	var content strings.Builder

	content.WriteString(styles.BannerStyle.Render("K-LINE BOOTCAMP"))
	content.WriteString(styles.MutedStyle.Render("  alpha trader simulation"))
	content.WriteString("\n\n")

	tip := ""
	if p.tip != nil {
		tip = p.tip()
	}
	content.WriteString(styles.LabelStyle.Render("Daily tip: "))
	content.WriteString(styles.PriceStyle.Render(tip))
	content.WriteString("\n\n")

	for i, item := range homeMenu {
		line := fmt.Sprintf("%d. %-18s %s", i+1, item.title, styles.MutedStyle.Render(item.desc))
		style := styles.RowStyle
		if i == p.selected {
			style = styles.SelectedRowStyle
			line = "▶ " + line
		} else {
			line = "  " + line
		}
		content.WriteString(style.Render(line))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	winRate := styles.MutedStyle.Render("--")
	if p.summary.Games > 0 {
		winRate = styles.PriceStyle.Render(fmt.Sprintf("%.0f%%", p.monthly))
	}
	profit := styles.Signed(p.summary.TotalProfit).Render(styles.FormatMoney(p.summary.TotalProfit))
	sound := "on"
	if p.muted {
		sound = "off"
	}
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		styles.LabelStyle.Render("Win rate this month: "), winRate,
		styles.LabelStyle.Render("   Total profit: "), profit,
		styles.LabelStyle.Render("   Sound: "), styles.PriceStyle.Render(sound),
	))

	return styles.Panel("🏠 Home", content.String(), p.width, p.height, true)
}

// SetSize sets the panel dimensions.
func (p *HomePanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetStats sets the lifetime summary and this month's win rate.
func (p *HomePanel) SetStats(summary history.Summary, monthlyWinRate float64) {
	p.summary = summary
	p.monthly = monthlyWinRate
}

// SetMuted sets the sound indicator.
func (p *HomePanel) SetMuted(muted bool) {
	p.muted = muted
}

// ShortHelp implements help.KeyMap.
func (p *HomePanel) ShortHelp() []key.Binding {
	return []key.Binding{keyUp, keyDown, keyEnter, keyMute, keyQuit}
}

// FullHelp implements help.KeyMap.
func (p *HomePanel) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}
