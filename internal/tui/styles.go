package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	matchStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("190"))

	accentColor        = lipgloss.Color("#ff8c00")
	secondaryTextColor = lipgloss.Color("#ffb347")

	taglineStyle     = lipgloss.NewStyle().Foreground(secondaryTextColor).Italic(true)
	statusBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	legendBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
	helpBoxStyle     = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#7f5af0")).Padding(1, 2)
	paletteBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentColor).Padding(0, 1)
	currentLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6"))

	fieldLabelStyle  = lipgloss.NewStyle().Bold(true).Width(10)
	fieldOpenStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Width(10)
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3be8c"))
	weightStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fff4d0"))
	stableStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#a3be8c")).Padding(0, 1)
	unstableStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ff6b6b")).Padding(0, 1)
	onlineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3be8c"))
	offlineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b")).Bold(true)
	queuedRowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd166")).Italic(true)
	readyStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a3be8c"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)
