package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zappabad/klinecamp/internal/quiz"
	"github.com/zappabad/klinecamp/tui/styles"
)

var keyAnswer = key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "answer"))

// QuizPanel runs a knowledge quiz.
type QuizPanel struct {
	session  *quiz.Session
	selected int
	width    int
	height   int
}

// NewQuizPanel creates a panel over session.
func NewQuizPanel(session *quiz.Session) *QuizPanel {
	return &QuizPanel{session: session}
}

// Init initializes the panel.
func (p *QuizPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *QuizPanel) Update(msg tea.Msg) (*QuizPanel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if key.Matches(km, keyBack) {
		return p, Navigate(ScreenHome)
	}
	if p.session.Finished() {
		if key.Matches(km, keyEnter) {
			return p, Navigate(ScreenHome)
		}
		return p, nil
	}

	q, _ := p.session.Current()
	switch {
	case key.Matches(km, keyUp):
		if p.selected > 0 {
			p.selected--
		}
	case key.Matches(km, keyDown):
		if p.selected < len(q.Options)-1 {
			p.selected++
		}
	case key.Matches(km, keyAnswer):
		if !p.session.Answered() {
			p.selected = int(km.String()[0] - '1')
			p.session.Answer(p.selected)
		}
	case key.Matches(km, keyEnter):
		if p.session.Answered() {
			p.session.Next()
			p.selected = 0
		} else {
			p.session.Answer(p.selected)
		}
	}
	return p, nil
}

// View renders the panel.
func (p *QuizPanel) View() string {
	var content strings.Builder

	if p.session.Finished() {
		res := p.session.Result()
		content.WriteString(styles.AccentStyle.Render("Quiz complete!"))
		content.WriteString("\n\n")
		fmt.Fprintf(&content, "%s %d / %d\n\n",
			styles.LabelStyle.Render("Correct answers:"), res.Correct, res.Total)
		content.WriteString(styles.MutedStyle.Render("Press enter to return home."))
		return styles.Panel("🎯 Knowledge Quiz", content.String(), p.width, p.height, true)
	}

	q, _ := p.session.Current()

	// Progress bar
	for i := 1; i <= p.session.Total(); i++ {
		if i <= p.session.Level() {
			content.WriteString(styles.AccentStyle.Render("━━"))
		} else {
			content.WriteString(styles.MutedStyle.Render("━━"))
		}
	}
	content.WriteString("\n\n")
	content.WriteString(styles.AccentStyle.Render(fmt.Sprintf("LEVEL %d", p.session.Level())))
	content.WriteString("\n")
	content.WriteString(styles.RowStyle.Bold(true).Width(max(p.width-6, 10)).Render(q.Prompt))
	content.WriteString("\n\n")

	answered := p.session.Answered()
	for i, opt := range q.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		style := styles.RowStyle
		switch {
		case answered && q.IsCorrect(i):
			style = styles.UpStyle
			line += "  ✓"
		case answered && i == p.session.Selected():
			style = styles.DangerStyle
			line += "  ✗"
		case answered:
			style = styles.MutedStyle
		case i == p.selected:
			style = styles.SelectedRowStyle
		}
		if i == p.selected && !answered {
			line = "▶ " + line
		} else {
			line = "  " + line
		}
		content.WriteString(style.Render(line))
		content.WriteString("\n")
	}

	if answered {
		content.WriteString("\n")
		if q.IsCorrect(p.session.Selected()) {
			content.WriteString(styles.UpStyle.Render("Correct!"))
		} else {
			content.WriteString(styles.DangerStyle.Render("Wrong."))
		}
		content.WriteString("\n")
		content.WriteString(styles.LabelStyle.Width(max(p.width-6, 10)).Render(q.Explanation))
		content.WriteString("\n\n")
		next := "Press enter for the next level."
		if p.session.Level() == p.session.Total() {
			next = "Press enter to finish."
		}
		content.WriteString(styles.MutedStyle.Render(next))
	}

	return styles.Panel("🎯 Knowledge Quiz", content.String(), p.width, p.height, true)
}

// SetSize sets the panel dimensions.
func (p *QuizPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Session returns the running quiz.
func (p *QuizPanel) Session() *quiz.Session {
	return p.session
}

// ShortHelp implements help.KeyMap.
func (p *QuizPanel) ShortHelp() []key.Binding {
	return []key.Binding{keyUp, keyDown, keyAnswer, keyEnter, keyBack}
}

// FullHelp implements help.KeyMap.
func (p *QuizPanel) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}
