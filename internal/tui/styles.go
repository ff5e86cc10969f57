package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/youtube-converter/internal/download"
)

const (
	colorRed   = lipgloss.Color("#FF3D3D")
	colorWhite = lipgloss.Color("#F1F1F1")
	colorGrey  = lipgloss.Color("#909090")
	colorGreen = lipgloss.Color("#4CD964")
	colorAmber = lipgloss.Color("#FFB020")
	colorBlue  = lipgloss.Color("#3EA6FF")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorRed).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorGrey)
	nowStyle    = lipgloss.NewStyle().Foreground(colorAmber)
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	summaryBox  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorRed).Padding(0, 2)
)

// levelStyle is how a progress level is rendered in the log pane.
type levelStyle struct {
	marker string
	style  lipgloss.Style
}

var levelStyles = map[download.ProgressLevel]levelStyle{
	download.LevelInfo:    {"›", lipgloss.NewStyle().Foreground(colorBlue)},
	download.LevelVerbose: {"·", mutedStyle},
	download.LevelWarning: {"!", lipgloss.NewStyle().Foreground(colorAmber)},
	download.LevelError:   {"✗", lipgloss.NewStyle().Foreground(colorRed)},
	download.LevelSuccess: {"✓", lipgloss.NewStyle().Foreground(colorGreen)},
}
