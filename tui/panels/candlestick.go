package panels

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/klinecamp/internal/market"
	"github.com/zappabad/klinecamp/tui/styles"
)

const macdRows = 4

// CandlestickPanel displays a candlestick chart with moving averages, trade
// markers and a MACD histogram.
type CandlestickPanel struct {
	title  string
	series market.Series
	trades map[string]market.Side

	focused bool
	width   int
	height  int
}

// NewCandlestickPanel creates a new candlestick chart panel.
func NewCandlestickPanel() *CandlestickPanel {
	return &CandlestickPanel{trades: make(map[string]market.Side)}
}

// Init initializes the panel.
func (p *CandlestickPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *CandlestickPanel) Update(msg tea.Msg) (*CandlestickPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *CandlestickPanel) View() string {
	var content string
	if len(p.series) == 0 {
		content = styles.MutedStyle.Render("No data yet...")
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left,
			p.renderLegend(),
			p.renderChart(p.width-4, p.height-4),
		)
	}
	return styles.Panel("📉 "+p.title, content, p.width, p.height, p.focused)
}

func (p *CandlestickPanel) renderLegend() string {
	last, _ := p.series.Last()
	part := func(style lipgloss.Style, name string, v float64, ok bool) string {
		if !ok {
			return style.Render(name + " --")
		}
		return style.Render(fmt.Sprintf("%s %.2f", name, v))
	}
	return strings.Join([]string{
		part(styles.MA5Style, "MA5", last.MA5, last.MA5OK),
		part(styles.MA10Style, "MA10", last.MA10, last.MA10OK),
		part(styles.MA20Style, "MA20", last.MA20, last.MA20OK),
	}, "  ")
}

func (p *CandlestickPanel) renderChart(width, height int) string {
	// 9 chars for the price axis plus separator
	chartWidth := width - 10
	if chartWidth < 10 {
		chartWidth = 10
	}

	// Each candle needs 2 chars: candle, space
	candlesToShow := chartWidth / 2
	if candlesToShow < 1 {
		candlesToShow = 1
	}
	display := p.series
	if len(display) > candlesToShow {
		display = display[len(display)-candlesToShow:]
	}

	// Legend, marker row, MACD strip, axis and labels
	priceHeight := height - 1 - 1 - macdRows - 2
	if priceHeight < 5 {
		priceHeight = 5
	}

	minPrice, maxPrice := priceBounds(display)

	var result strings.Builder

	// Render chart rows (top to bottom = high to low price)
	for row := 0; row < priceHeight; row++ {
		price := yToPrice(row, minPrice, maxPrice, priceHeight)
		result.WriteString(styles.ChartAxisStyle.Render(fmt.Sprintf("%8.2f │", price)))

		tolerance := (maxPrice - minPrice) / float64(priceHeight*2)
		for _, bar := range display {
			ch := candleChar(bar, price, tolerance)
			style := styles.CandleDownStyle
			if bar.Bullish() {
				style = styles.CandleUpStyle
			}
			if ch == ' ' {
				ch, style = maChar(bar, row, minPrice, maxPrice, priceHeight)
			}
			result.WriteString(style.Render(string(ch)))
			result.WriteString(" ")
		}
		result.WriteString("\n")
	}

	// Trade markers
	result.WriteString(styles.ChartAxisStyle.Render("         │"))
	for _, bar := range display {
		switch p.trades[bar.DateString()] {
		case market.SideBuy:
			result.WriteString(styles.UpStyle.Render("B"))
		case market.SideSell:
			result.WriteString(styles.DownStyle.Render("S"))
		default:
			result.WriteString(" ")
		}
		result.WriteString(" ")
	}
	result.WriteString("\n")

	result.WriteString(renderMACD(display))

	// Bottom border
	result.WriteString(styles.ChartAxisStyle.Render("─────────┴"))
	for range display {
		result.WriteString(styles.ChartAxisStyle.Render("──"))
	}
	result.WriteString("\n")

	// Date axis: first and last bar
	first := display[0].Date.Format("01-02")
	last := display[len(display)-1].Date.Format("01-02")
	gap := len(display)*2 - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	result.WriteString(styles.ChartAxisStyle.Render("          "))
	result.WriteString(styles.ChartLabelStyle.Render(first + strings.Repeat(" ", gap) + last))

	return result.String()
}

func renderMACD(display market.Series) string {
	var maxAbs float64
	for _, bar := range display {
		if bar.MACDOK {
			maxAbs = math.Max(maxAbs, math.Abs(bar.MACD))
		}
	}

	var b strings.Builder
	half := macdRows / 2
	for row := 0; row < macdRows; row++ {
		label := "         │"
		if row == 0 {
			label = "     MACD│"
		}
		b.WriteString(styles.ChartAxisStyle.Render(label))
		for _, bar := range display {
			b.WriteString(macdCell(bar, row, half, maxAbs))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// macdCell draws positive bars upward from the middle of the strip and
// negative bars downward.
func macdCell(bar market.Bar, row, half int, maxAbs float64) string {
	if !bar.MACDOK || maxAbs == 0 || bar.MACD == 0 {
		return " "
	}
	size := int(math.Ceil(math.Abs(bar.MACD) / maxAbs * float64(half)))
	if bar.MACD > 0 && row < half && half-row <= size {
		return styles.CandleUpStyle.Render("█")
	}
	if bar.MACD < 0 && row >= half && row-half < size {
		return styles.CandleDownStyle.Render("█")
	}
	return " "
}

// priceBounds returns the low/high of the bars padded by 10%.
func priceBounds(bars market.Series) (float64, float64) {
	if len(bars) == 0 {
		return 0, 1
	}
	minPrice, maxPrice := bars[0].Low, bars[0].High
	for _, b := range bars {
		minPrice = math.Min(minPrice, b.Low)
		maxPrice = math.Max(maxPrice, b.High)
	}
	padding := (maxPrice - minPrice) * 0.1
	if padding == 0 {
		padding = 0.5
	}
	return minPrice - padding, maxPrice + padding
}

// candleChar returns the character to draw for a bar at a given price row.
func candleChar(bar market.Bar, rowPrice, tolerance float64) rune {
	bodyTop := math.Max(bar.Open, bar.Close)
	bodyBottom := math.Min(bar.Open, bar.Close)

	// Check body first (body overwrites wick)
	if rowPrice <= bodyTop+tolerance && rowPrice >= bodyBottom-tolerance {
		return '┃'
	}
	if rowPrice <= bar.High+tolerance && rowPrice > bodyTop {
		return '│'
	}
	if rowPrice >= bar.Low-tolerance && rowPrice < bodyBottom {
		return '│'
	}
	return ' '
}

// maChar marks the row a moving average passes through.
func maChar(bar market.Bar, row int, minPrice, maxPrice float64, height int) (rune, lipgloss.Style) {
	switch {
	case bar.MA5OK && priceToY(bar.MA5, minPrice, maxPrice, height) == row:
		return '·', styles.MA5Style
	case bar.MA20OK && priceToY(bar.MA20, minPrice, maxPrice, height) == row:
		return '·', styles.MA20Style
	}
	return ' ', styles.ChartAxisStyle
}

func priceToY(price, minPrice, maxPrice float64, height int) int {
	if maxPrice == minPrice {
		return height / 2
	}
	ratio := (maxPrice - price) / (maxPrice - minPrice)
	y := int(math.Round(ratio * float64(height-1)))
	if y < 0 {
		y = 0
	}
	if y >= height {
		y = height - 1
	}
	return y
}

func yToPrice(y int, minPrice, maxPrice float64, height int) float64 {
	if height <= 1 {
		return minPrice
	}
	ratio := float64(y) / float64(height-1)
	return maxPrice - ratio*(maxPrice-minPrice)
}

// SetFocus sets the focus state of the panel.
func (p *CandlestickPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *CandlestickPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetTitle sets the chart title.
func (p *CandlestickPanel) SetTitle(title string) {
	p.title = title
}

// SetSeries sets the bars to chart.
func (p *CandlestickPanel) SetSeries(series market.Series) {
	p.series = series
}

// SetTrades marks the bars on which trades happened. A later trade on the
// same day replaces an earlier marker.
func (p *CandlestickPanel) SetTrades(trades []market.Trade) {
	p.trades = make(map[string]market.Side, len(trades))
	for _, t := range trades {
		p.trades[t.Date] = t.Side
	}
}
