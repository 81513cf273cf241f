package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7C3AED") // Purple
	SecondaryColor = lipgloss.Color("#3B82F6") // Blue
	AccentColor    = lipgloss.Color("#F59E0B") // Amber

	// Market colors. Rising prices are red, falling prices green.
	UpColor   = lipgloss.Color("#EF4444")
	DownColor = lipgloss.Color("#10B981")

	// Moving average colors
	MA5Color  = lipgloss.Color("#FBBF24")
	MA10Color = lipgloss.Color("#A78BFA")
	MA20Color = lipgloss.Color("#38BDF8")

	// Background colors
	BackgroundColor  = lipgloss.Color("#1F2937")
	BorderColor      = lipgloss.Color("#374151")
	FocusBorderColor = lipgloss.Color("#7C3AED")

	// Text colors
	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
)

// Panel styles
var (
	// Base panel style
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// Focused panel style
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	// Panel title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	// Big banner on the home screen
	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)

	// Header row style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextSecondaryColor)

	// Row styles
	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(lipgloss.Color("#374151"))

	LockedRowStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)
)

// Text styles
var (
	UpStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(UpColor)

	DownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(DownColor)

	PriceStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	AccentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)

	DangerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#DC2626"))

	// Narrative log styles
	ChoiceLogStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	EffectLogStyle = lipgloss.NewStyle().
			Foreground(AccentColor)
)

// Chart styles (for candlestick)
var (
	CandleUpStyle = lipgloss.NewStyle().
			Foreground(UpColor)

	CandleDownStyle = lipgloss.NewStyle().
			Foreground(DownColor)

	ChartAxisStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	ChartLabelStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	MA5Style  = lipgloss.NewStyle().Foreground(MA5Color)
	MA10Style = lipgloss.NewStyle().Foreground(MA10Color)
	MA20Style = lipgloss.NewStyle().Foreground(MA20Color)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	StatusBarDescStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)
)

// RenderTitle renders a panel title bar.
func RenderTitle(title string, focused bool) string {
	style := TitleStyle
	if focused {
		style = style.Foreground(FocusBorderColor)
	}
	return style.Render(title)
}

// Panel frames content in the panel border at the given outer size.
func Panel(title, content string, width, height int, focused bool) string {
	style := PanelStyle
	if focused {
		style = FocusedPanelStyle
	}
	body := lipgloss.JoinVertical(lipgloss.Left, RenderTitle(title, focused), content)
	return style.Width(max(width-2, 0)).Height(max(height-2, 0)).Render(body)
}

// Signed picks the up or down style by the sign of v.
func Signed(v float64) lipgloss.Style {
	switch {
	case v > 0:
		return UpStyle
	case v < 0:
		return DownStyle
	default:
		return PriceStyle
	}
}

// FormatPercent formats a percentage with an explicit sign.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatMoney formats an amount as whole currency units with separators.
func FormatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-¥" + string(out)
	}
	return "¥" + string(out)
}
