package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/klinecamp/internal/history"
	"github.com/zappabad/klinecamp/tui/styles"
)

var (
	keyClear   = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear history"))
	keyConfirm = key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm"))
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// HistoryPanel shows saved simulation results grouped by month.
type HistoryPanel struct {
	records    []history.Record
	summary    history.Summary
	list       viewport.Model
	confirming bool
	width      int
	height     int
}

// NewHistoryPanel creates the panel over records, newest first.
func NewHistoryPanel(records []history.Record) *HistoryPanel {
	p := &HistoryPanel{list: viewport.New(0, 0)}
	p.SetRecords(records)
	return p
}

// Init initializes the panel.
func (p *HistoryPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *HistoryPanel) Update(msg tea.Msg) (*HistoryPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.confirming {
			p.confirming = false
			if key.Matches(msg, keyConfirm) {
				return p, emit(ClearHistoryMsg{})
			}
			return p, nil
		}
		switch {
		case key.Matches(msg, keyBack):
			return p, Navigate(ScreenHome)
		case key.Matches(msg, keyClear):
			if len(p.records) > 0 {
				p.confirming = true
			}
		default:
			var cmd tea.Cmd
			p.list, cmd = p.list.Update(msg)
			return p, cmd
		}
	}
	return p, nil
}

// View renders the panel.
func (p *HistoryPanel) View() string {
	if len(p.records) == 0 {
		body := styles.MutedStyle.Render("No trades yet.\nGo run a simulation!")
		return styles.Panel("📈 Growth Record", body, p.width, p.height, true)
	}

	s := p.summary
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.LabelStyle.Render("Games "), styles.PriceStyle.Render(fmt.Sprintf("%d", s.Games)),
		styles.LabelStyle.Render("  Win rate "), styles.PriceStyle.Render(fmt.Sprintf("%.0f%%", s.WinRate)),
		styles.LabelStyle.Render("  Total P&L "), styles.Signed(s.TotalProfit).Render(fmt.Sprintf("%.1fw", s.TotalProfit/10000)),
	)
	spark := styles.AccentStyle.Render(Sparkline(cumulativeProfit(p.records), p.width-6))

	header := lipgloss.JoinVertical(lipgloss.Left, stats, spark, "")
	if p.confirming {
		header = lipgloss.JoinVertical(lipgloss.Left, header,
			styles.DangerStyle.Render("Clear all history? Press y to confirm."))
	}

	listHeight := p.height - 4 - lipgloss.Height(header)
	if listHeight < 3 {
		listHeight = 3
	}
	if p.list.Width != p.width-4 || p.list.Height != listHeight {
		p.list.Width = p.width - 4
		p.list.Height = listHeight
	}

	return styles.Panel("📈 Growth Record", lipgloss.JoinVertical(lipgloss.Left, header, p.list.View()), p.width, p.height, true)
}

func (p *HistoryPanel) renderList() string {
	groups := history.GroupByMonth(p.records)

	var b strings.Builder
	for _, month := range history.Months(groups) {
		recs := groups[month]
		b.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("%s  (%d games)", month, len(recs))))
		b.WriteString("\n")
		for _, r := range recs {
			left := fmt.Sprintf("  %s  %-16s %2d trades", r.Timestamp.Local().Format("01-02 15:04"), r.StockName, r.TradeCount)
			b.WriteString(styles.RowStyle.Render(left))
			b.WriteString("  ")
			b.WriteString(styles.Signed(r.YieldRate).Render(fmt.Sprintf("%8s", styles.FormatPercent(r.YieldRate))))
			b.WriteString("  ")
			b.WriteString(styles.Signed(r.Profit).Render(fmt.Sprintf("%+.0f", r.Profit)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// cumulativeProfit returns the running profit in play order; records are
// newest first.
func cumulativeProfit(records []history.Record) []float64 {
	out := make([]float64, len(records))
	var sum float64
	for i := len(records) - 1; i >= 0; i-- {
		sum += records[i].Profit
		out[len(records)-1-i] = sum
	}
	return out
}

// Sparkline renders values as a one-line block chart of at most width cells,
// keeping the most recent values.
func Sparkline(values []float64, width int) string {
	if width <= 0 || len(values) == 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

// SetSize sets the panel dimensions.
func (p *HistoryPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetRecords replaces the displayed records.
func (p *HistoryPanel) SetRecords(records []history.Record) {
	p.records = records
	p.summary = history.Summarize(records)
	p.list.SetContent(p.renderList())
	p.list.GotoTop()
}

// ShortHelp implements help.KeyMap.
func (p *HistoryPanel) ShortHelp() []key.Binding {
	if p.confirming {
		return []key.Binding{keyConfirm}
	}
	return []key.Binding{keyClear, keyBack}
}

// FullHelp implements help.KeyMap.
func (p *HistoryPanel) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}
