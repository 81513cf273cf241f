package panels

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/klinecamp/internal/audio"
	"github.com/zappabad/klinecamp/internal/market"
	"github.com/zappabad/klinecamp/internal/simulation"
	"github.com/zappabad/klinecamp/tui/styles"
)

var (
	keyPlay   = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause"))
	keySpeed  = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "speed"))
	keyBuy    = key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "buy"))
	keySell   = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sell"))
	keyNext   = key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "next day"))
	keyFinish = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "settle"))
)

// playbackTickMsg reveals the next bar. Ticks from an older playback run are
// dropped.
type playbackTickMsg struct {
	run int
}

// SimulationPanel runs a trading session with timed playback.
type SimulationPanel struct {
	session *simulation.Session
	chart   *CandlestickPanel
	player  audio.Player

	normal  time.Duration
	fast    time.Duration
	isFast  bool
	playing bool
	run     int
	status  string

	width  int
	height int
}

// NewSimulationPanel creates a panel over session.
func NewSimulationPanel(session *simulation.Session, cfg simulation.Config, player audio.Player) *SimulationPanel {
	if player == nil {
		player = audio.NoopPlayer{}
	}
	p := &SimulationPanel{
		session: session,
		chart:   NewCandlestickPanel(),
		player:  player,
		normal:  cfg.TickInterval,
		fast:    cfg.FastTickInterval,
	}
	stock := session.Stock()
	p.chart.SetTitle(fmt.Sprintf("%s (%s)", stock.Name, stock.Code))
	p.refreshChart()
	return p
}

// Init initializes the panel.
func (p *SimulationPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *SimulationPanel) Update(msg tea.Msg) (*SimulationPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case playbackTickMsg:
		if !p.playing || msg.run != p.run {
			return p, nil
		}
		return p, p.advance(true)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyPlay):
			p.player.Play(audio.CueClick)
			p.playing = !p.playing
			p.run++
			if p.playing {
				return p, p.tick()
			}
		case key.Matches(msg, keySpeed):
			p.player.Play(audio.CueClick)
			p.isFast = !p.isFast
		case key.Matches(msg, keyBuy):
			p.trade(p.session.Buy)
		case key.Matches(msg, keySell):
			p.trade(p.session.Sell)
		case key.Matches(msg, keyNext):
			if !p.playing {
				p.player.Play(audio.CueClick)
				return p, p.advance(false)
			}
		case key.Matches(msg, keyFinish):
			p.playing = false
			return p, emit(FinishSimulationMsg{})
		case key.Matches(msg, keyBack):
			p.player.Play(audio.CueClick)
			p.playing = false
			return p, Navigate(ScreenHome)
		}
	}
	return p, nil
}

func (p *SimulationPanel) interval() time.Duration {
	if p.isFast {
		return p.fast
	}
	return p.normal
}

func (p *SimulationPanel) tick() tea.Cmd {
	run := p.run
	return tea.Tick(p.interval(), func(time.Time) tea.Msg {
		return playbackTickMsg{run: run}
	})
}

// advance reveals one bar; reaching the last bar settles the session.
func (p *SimulationPanel) advance(continuePlaying bool) tea.Cmd {
	p.session.Advance()
	p.refreshChart()
	if p.session.AtEnd() {
		p.playing = false
		return emit(FinishSimulationMsg{})
	}
	if continuePlaying {
		return p.tick()
	}
	return nil
}

func (p *SimulationPanel) trade(do func() (market.Trade, error)) {
	t, err := do()
	switch {
	case errors.Is(err, simulation.ErrInsufficientFunds):
		p.status = "Not enough cash for one lot"
	case errors.Is(err, simulation.ErrNoPosition):
		p.status = "Nothing to sell"
	case err != nil:
		p.status = err.Error()
	default:
		p.status = fmt.Sprintf("%s %d @ %.2f", t.Side, t.Amount, t.Price)
	}
	p.refreshChart()
}

func (p *SimulationPanel) refreshChart() {
	p.chart.SetSeries(p.session.Visible())
	p.chart.SetTrades(p.session.Trades())
}

// View renders the panel.
func (p *SimulationPanel) View() string {
	s := p.session
	bar := s.Current()

	yield := s.YieldRate()
	change := s.DailyChange()

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.LabelStyle.Render("Assets "),
		styles.PriceStyle.Render(styles.FormatMoney(s.TotalAssets())),
		styles.LabelStyle.Render("  Yield "),
		styles.Signed(yield).Render(styles.FormatPercent(yield)),
		styles.LabelStyle.Render("  Price "),
		styles.Signed(change).Render(fmt.Sprintf("%.2f (%s)", bar.Close, styles.FormatPercent(change))),
		styles.LabelStyle.Render("  Date "),
		styles.PriceStyle.Render(bar.DateString()),
		styles.LabelStyle.Render(fmt.Sprintf("  %d days left", s.DaysLeft())),
	)

	state := "⏸ paused"
	if p.playing {
		state = "▶ playing"
	}
	speed := "1x"
	if p.isFast {
		speed = "5x"
	}
	buy := styles.UpStyle.Render("[b] BUY")
	if !s.CanBuy() {
		buy = styles.MutedStyle.Render("[b] BUY")
	}
	sell := styles.DownStyle.Render("[s] SELL")
	if s.Holdings() == 0 {
		sell = styles.MutedStyle.Render("[s] SELL")
	}
	controls := strings.Join([]string{
		buy, sell,
		styles.LabelStyle.Render(fmt.Sprintf("Holding %d shares", s.Holdings())),
		styles.LabelStyle.Render("Cash " + styles.FormatMoney(s.Cash())),
		styles.MutedStyle.Render(state + " " + speed),
	}, "   ")

	status := styles.MutedStyle.Render(p.status)

	p.chart.SetSize(p.width, p.height-3)
	return lipgloss.JoinVertical(lipgloss.Left, header, p.chart.View(), controls, status)
}

// SetSize sets the panel dimensions.
func (p *SimulationPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Session returns the running session.
func (p *SimulationPanel) Session() *simulation.Session {
	return p.session
}

// Playing reports whether playback is running.
func (p *SimulationPanel) Playing() bool {
	return p.playing
}

// ShortHelp implements help.KeyMap.
func (p *SimulationPanel) ShortHelp() []key.Binding {
	return []key.Binding{keyPlay, keySpeed, keyBuy, keySell, keyNext, keyFinish, keyBack}
}

// FullHelp implements help.KeyMap.
func (p *SimulationPanel) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}
