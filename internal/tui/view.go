package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("▶ YouTube Converter"))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render("mp4 · mp3 · wav"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		m.viewInput(&b)
	case StateConverting:
		m.viewConverting(&b)
	case StateComplete:
		m.viewSummary(&b)
	case StateError:
		m.viewFailure(&b)
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.keyHelp()))
	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewInput(b *strings.Builder) {
	b.WriteString(labelStyle.Render("Video or playlist URL"))
	b.WriteString("\n")
	b.WriteString(m.url.View())
	b.WriteString("\n\n")

	fmt.Fprintf(b, "%s playlist  (p)\n", checkbox(m.playlist))
	fmt.Fprintf(b, "[%s] format   (f)\n", m.Format())
	fmt.Fprintf(b, "%s verbose   (v)\n", checkbox(m.verbose))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Saving to " + m.settings.OutputDir))
	b.WriteString("\n")
}

func (m Model) viewConverting(b *strings.Builder) {
	fmt.Fprintf(b, "%s Converting to %s\n\n", m.spinner.View(), m.Format())

	if m.total > 0 {
		b.WriteString(nowStyle.Render(m.current))
		b.WriteString("\n")
		fmt.Fprintf(b, "%s %d/%d\n\n", m.bar.View(), m.index, m.total)
	}
	m.viewLogs(b)
}

func (m Model) viewSummary(b *strings.Builder) {
	if m.result.Succeeded {
		b.WriteString(summaryBox.Render(fmt.Sprintf("%s\n%s files in %s",
			m.result.Message, m.Format(), m.settings.OutputDir)))
	} else {
		b.WriteString(summaryBox.Render(m.result.Error))
	}
	b.WriteString("\n\n")
	m.viewLogs(b)
}

func (m Model) viewFailure(b *strings.Builder) {
	b.WriteString(failStyle.Render("Conversion failed"))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.err.Error())
		b.WriteString("\n")
	}
	if n := m.result.ConvertedCount; n > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d item(s) were downloaded before the failure.", n)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	m.viewLogs(b)
}

func (m Model) viewLogs(b *strings.Builder) {
	for _, entry := range m.logs {
		ls, ok := levelStyles[entry.Level]
		if !ok {
			ls = levelStyles[0]
		}
		b.WriteString(ls.style.Render(ls.marker + " " + entry.Message))
		b.WriteString("\n")
	}
}

func (m Model) keyHelp() string {
	switch m.state {
	case StateInput:
		if m.url.Focused() {
			return "enter convert · tab options · esc quit"
		}
		return "enter convert · p playlist · f format · v verbose · tab edit URL · esc quit"
	case StateConverting:
		return "esc cancel"
	default:
		return "r new conversion · q quit"
	}
}
