package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("245")
	faintColor   = lipgloss.Color("240")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	labelStyle        = lipgloss.NewStyle().Foreground(mutedColor)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)

	fieldStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	focusedFieldStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)

	optionStyle      = lipgloss.NewStyle().PaddingLeft(2)
	highlightedStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(accentColor).Reverse(true)
	disabledStyle    = lipgloss.NewStyle().PaddingLeft(2).Foreground(faintColor).Strikethrough(true)

	footerStyle = lipgloss.NewStyle().Foreground(mutedColor).MarginTop(1)
)
