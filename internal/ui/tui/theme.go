package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Help      lipgloss.Style
	Card      lipgloss.Style
	Toast     lipgloss.Style
	Warning   lipgloss.Style
	TabActive lipgloss.Style
	Tab       lipgloss.Style
	Sequence  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Toast:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Underline(true),
		Tab:      lipgloss.NewStyle().Faint(true).Padding(0, 1),
		Sequence: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	}
}
