package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/klinecamp/internal/market"
	"github.com/zappabad/klinecamp/internal/simulation"
	"github.com/zappabad/klinecamp/tui/styles"
)

var keyReplay = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "play again"))

// ResultPanel shows the outcome of a settled simulation.
type ResultPanel struct {
	result simulation.Result
	rank   simulation.Rank
	chart  *CandlestickPanel
	width  int
	height int
}

// NewResultPanel creates the panel for res.
func NewResultPanel(res simulation.Result) *ResultPanel {
	chart := NewCandlestickPanel()
	chart.SetTitle(fmt.Sprintf("%s (%s) revealed", res.Stock.Name, res.Stock.Code))
	chart.SetSeries(res.Series)
	chart.SetTrades(res.Trades)
	return &ResultPanel{result: res, rank: simulation.RankFor(res.YieldRate), chart: chart}
}

// Init initializes the panel.
func (p *ResultPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *ResultPanel) Update(msg tea.Msg) (*ResultPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyReplay):
			return p, Navigate(ScreenSimulation)
		case key.Matches(msg, keyEnter), key.Matches(msg, keyBack):
			return p, Navigate(ScreenHome)
		}
	}
	return p, nil
}

// View renders the panel.
func (p *ResultPanel) View() string {
	r := p.result

	var summary strings.Builder
	summary.WriteString(styles.AccentStyle.Render(p.rank.Title))
	summary.WriteString("\n")
	summary.WriteString(styles.MutedStyle.Render(p.rank.Desc))
	summary.WriteString("\n\n")
	fmt.Fprintf(&summary, "%s %s\n", styles.LabelStyle.Render("Yield     "), styles.Signed(r.YieldRate).Render(styles.FormatPercent(r.YieldRate)))
	fmt.Fprintf(&summary, "%s %s\n", styles.LabelStyle.Render("Profit    "), styles.Signed(r.Profit).Render(styles.FormatMoney(r.Profit)))
	fmt.Fprintf(&summary, "%s %s\n", styles.LabelStyle.Render("Final     "), styles.PriceStyle.Render(styles.FormatMoney(r.FinalCapital)))
	fmt.Fprintf(&summary, "%s %d\n\n", styles.LabelStyle.Render("Trades    "), len(r.Trades))

	summary.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("%-5s %-10s %8s %7s", "Side", "Date", "Price", "Shares")))
	summary.WriteString("\n")
	for _, t := range r.Trades {
		style := styles.UpStyle
		if t.Side == market.SideSell {
			style = styles.DownStyle
		}
		summary.WriteString(style.Render(fmt.Sprintf("%-5s %-10s %8.2f %7d", t.Side, t.Date, t.Price, t.Amount)))
		summary.WriteString("\n")
	}

	leftWidth := p.width / 3
	left := styles.Panel("🏆 Result", summary.String(), leftWidth, p.height, true)

	p.chart.SetSize(p.width-leftWidth, p.height)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, p.chart.View())
}

// SetSize sets the panel dimensions.
func (p *ResultPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Result returns the displayed result.
func (p *ResultPanel) Result() simulation.Result {
	return p.result
}

// ShortHelp implements help.KeyMap.
func (p *ResultPanel) ShortHelp() []key.Binding {
	return []key.Binding{keyReplay, keyEnter, keyBack}
}

// FullHelp implements help.KeyMap.
func (p *ResultPanel) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}
