package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/klinecamp/internal/encyclopedia"
	"github.com/zappabad/klinecamp/tui/styles"
)

// IndicatorPanel browses the indicator encyclopedia.
type IndicatorPanel struct {
	entries  []encyclopedia.Entry
	selected int
	width    int
	height   int
}

// NewIndicatorPanel creates the encyclopedia browser.
func NewIndicatorPanel() *IndicatorPanel {
	return &IndicatorPanel{entries: encyclopedia.All()}
}

// Init initializes the panel.
func (p *IndicatorPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *IndicatorPanel) Update(msg tea.Msg) (*IndicatorPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyUp):
			if p.selected > 0 {
				p.selected--
			}
		case key.Matches(msg, keyDown):
			if p.selected < len(p.entries)-1 {
				p.selected++
			}
		case key.Matches(msg, keyBack):
			return p, Navigate(ScreenHome)
		}
	}
	return p, nil
}

// View renders the panel.
func (p *IndicatorPanel) View() string {
	listWidth := 24

	var list strings.Builder
	for i, e := range p.entries {
		line := fmt.Sprintf("%-5s %s", e.Name, styles.MutedStyle.Render(string(e.Category)))
		if i == p.selected {
			list.WriteString(styles.SelectedRowStyle.Render("▶ " + line))
		} else {
			list.WriteString(styles.RowStyle.Render("  " + line))
		}
		list.WriteString("\n")
	}
	left := styles.Panel("📚 Indicators", list.String(), listWidth, p.height, true)

	right := styles.Panel("Details", p.renderEntry(p.width-listWidth-4), p.width-listWidth, p.height, false)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (p *IndicatorPanel) renderEntry(width int) string {
	if len(p.entries) == 0 {
		return ""
	}
	e := p.entries[p.selected]
	wrap := styles.RowStyle.Width(max(width, 10))

	var b strings.Builder
	b.WriteString(styles.AccentStyle.Render(e.Name))
	b.WriteString(styles.LabelStyle.Render("  " + e.FullName))
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render("Difficulty " + strings.Repeat("★", e.Difficulty) + strings.Repeat("☆", 3-e.Difficulty)))
	b.WriteString("\n\n")
	b.WriteString(wrap.Render(e.Description))
	b.WriteString("\n\n")
	b.WriteString(styles.HeaderStyle.Render("Formula"))
	b.WriteString("\n")
	b.WriteString(wrap.Render(e.Formula))
	b.WriteString("\n\n")
	b.WriteString(styles.UpStyle.Render("Buy"))
	b.WriteString("\n")
	b.WriteString(wrap.Render(e.BuySignal))
	b.WriteString("\n")
	b.WriteString(styles.DownStyle.Render("Sell"))
	b.WriteString("\n")
	b.WriteString(wrap.Render(e.SellSignal))
	b.WriteString("\n\n")
	b.WriteString(styles.LabelStyle.Render("+ " + e.Pros))
	b.WriteString("\n")
	b.WriteString(styles.LabelStyle.Render("- " + e.Cons))
	return b.String()
}

// SetSize sets the panel dimensions.
func (p *IndicatorPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Selected returns the highlighted entry.
func (p *IndicatorPanel) Selected() encyclopedia.Entry {
	return p.entries[p.selected]
}

// ShortHelp implements help.KeyMap.
func (p *IndicatorPanel) ShortHelp() []key.Binding {
	return []key.Binding{keyUp, keyDown, keyBack}
}

// FullHelp implements help.KeyMap.
func (p *IndicatorPanel) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}
