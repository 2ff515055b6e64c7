package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#00ff88")
	colorMuted  = lipgloss.Color("#8888a0")
	colorBorder = lipgloss.Color("#2a2a3a")
	colorWarn   = lipgloss.Color("#ffa502")
	colorBar    = lipgloss.Color("#7b61ff")
)

type styles struct {
	Header   lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Warn     lipgloss.Style
	Bar      lipgloss.Style
	Active   lipgloss.Style
	Sidebar  lipgloss.Style
	Content  lipgloss.Style
	Card     lipgloss.Style
	CardOpen lipgloss.Style
	Big      lipgloss.Style
}

func newStyles() styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(22)

	return styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Accent: lipgloss.NewStyle().Foreground(colorAccent),
		Muted:  lipgloss.NewStyle().Foreground(colorMuted),
		Warn:   lipgloss.NewStyle().Foreground(colorWarn),
		Bar:    lipgloss.NewStyle().Foreground(colorBar),
		Active: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Width(20),
		Content:  lipgloss.NewStyle().Padding(0, 1),
		Card:     card,
		CardOpen: card.BorderForeground(colorAccent),
		Big:      lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	}
}
