package panels

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/klinecamp/internal/story"
	"github.com/zappabad/klinecamp/tui/styles"
)

var (
	keyRestart = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new career"))
	keyScroll  = key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll log"))
)

// StoryPanel plays a story-mode career.
type StoryPanel struct {
	session  *story.Session
	log      viewport.Model
	selected int
	status   string

	width  int
	height int
}

// NewStoryPanel creates a panel over session.
func NewStoryPanel(session *story.Session) *StoryPanel {
	p := &StoryPanel{session: session, log: viewport.New(0, 0)}
	p.refreshLog()
	return p
}

// Init initializes the panel.
func (p *StoryPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *StoryPanel) Update(msg tea.Msg) (*StoryPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		opts := p.session.Options()
		switch {
		case key.Matches(msg, keyBack):
			return p, Navigate(ScreenHome)
		case p.session.Over() && key.Matches(msg, keyRestart):
			return p, Navigate(ScreenStory)
		case key.Matches(msg, keyUp):
			if p.selected > 0 {
				p.selected--
			}
		case key.Matches(msg, keyDown):
			if p.selected < len(opts)-1 {
				p.selected++
			}
		case key.Matches(msg, keyEnter):
			if p.selected < len(opts) {
				p.choose(opts[p.selected])
			}
		case key.Matches(msg, keyScroll):
			var cmd tea.Cmd
			p.log, cmd = p.log.Update(msg)
			return p, cmd
		}
	}
	return p, nil
}

func (p *StoryPanel) choose(opt story.Option) {
	err := p.session.Choose(opt.Index)
	switch {
	case errors.Is(err, story.ErrChoiceUnavailable):
		p.status = "Locked: " + opt.LockReason
		return
	case err != nil:
		p.status = err.Error()
		return
	}
	p.status = ""
	p.selected = 0
	p.refreshLog()
}

func (p *StoryPanel) refreshLog() {
	var b strings.Builder
	for i, e := range p.session.Log() {
		if i > 0 {
			b.WriteString("\n")
		}
		switch e.Kind {
		case story.EntryChoice:
			b.WriteString(styles.ChoiceLogStyle.Render(e.Text))
		case story.EntryEffect:
			b.WriteString(styles.EffectLogStyle.Render(e.Text))
		default:
			b.WriteString(styles.RowStyle.Render(e.Text))
		}
	}
	p.log.SetContent(lipgloss.NewStyle().Width(max(p.log.Width, 1)).Render(b.String()))
	p.log.GotoBottom()
}

// View renders the panel.
func (p *StoryPanel) View() string {
	st := p.session.Stats()

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.LabelStyle.Render("Cash "), styles.PriceStyle.Render(styles.FormatMoney(st.Cash)),
		styles.LabelStyle.Render("  Health "), healthStyle(st.Health).Render(fmt.Sprintf("%d", st.Health)),
		styles.LabelStyle.Render("  Insight "), styles.PriceStyle.Render(fmt.Sprintf("%d", st.Insight)),
		styles.LabelStyle.Render("  Reputation "), styles.PriceStyle.Render(fmt.Sprintf("%d", st.Reputation)),
		styles.LabelStyle.Render(fmt.Sprintf("  Month %d/%d", st.Turn, st.MaxTurn)),
	)

	var choices strings.Builder
	if p.session.Over() {
		ending := p.session.Scene().Event
		verdict := styles.DangerStyle.Render("Career over.")
		if p.session.Won() {
			verdict = styles.AccentStyle.Render("You retired richer than you started!")
		}
		choices.WriteString(verdict)
		choices.WriteString("\n")
		if len(ending.Choices) > 0 {
			choices.WriteString(styles.MutedStyle.Render("[r] " + ending.Choices[0].Text))
		}
	} else {
		for i, opt := range p.session.Options() {
			line := fmt.Sprintf("%d. %s", i+1, opt.Choice.Text)
			style := styles.RowStyle
			if opt.Locked {
				line += "  🔒 " + opt.LockReason
				style = styles.LockedRowStyle
			}
			if i == p.selected {
				line = "▶ " + line
				if !opt.Locked {
					style = styles.SelectedRowStyle
				}
			} else {
				line = "  " + line
			}
			choices.WriteString(style.Render(line))
			choices.WriteString("\n")
		}
	}
	if p.status != "" {
		choices.WriteString(styles.MutedStyle.Render(p.status))
	}

	choiceBox := choices.String()
	logHeight := p.height - 4 - lipgloss.Height(stats) - lipgloss.Height(choiceBox) - 1
	if logHeight < 3 {
		logHeight = 3
	}
	if p.log.Width != p.width-4 || p.log.Height != logHeight {
		p.log.Width = p.width - 4
		p.log.Height = logHeight
		p.refreshLog()
	}

	body := lipgloss.JoinVertical(lipgloss.Left, stats, p.log.View(), "", choiceBox)
	return styles.Panel("📖 Trader's Journey", body, p.width, p.height, true)
}

func healthStyle(h int) lipgloss.Style {
	switch {
	case h <= 20:
		return styles.DangerStyle
	case h <= 50:
		return styles.AccentStyle
	default:
		return styles.PriceStyle
	}
}

// SetSize sets the panel dimensions.
func (p *StoryPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Session returns the running career.
func (p *StoryPanel) Session() *story.Session {
	return p.session
}

// ShortHelp implements help.KeyMap.
func (p *StoryPanel) ShortHelp() []key.Binding {
	if p.session.Over() {
		return []key.Binding{keyRestart, keyScroll, keyBack}
	}
	return []key.Binding{keyUp, keyDown, keyEnter, keyScroll, keyBack}
}

// FullHelp implements help.KeyMap.
func (p *StoryPanel) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}
