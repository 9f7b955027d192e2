package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"gosyncquotes/internal/cli"
	syncpkg "gosyncquotes/internal/sync"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	quoteStyle    = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2)
)

func severityStyle(s syncpkg.Severity) lipgloss.Style {
	switch s {
	case syncpkg.SeverityWarn:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	case syncpkg.SeverityError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	}
}

// View renders the UI
func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n\n")

	switch m.screen {
	case screenBrowse:
		s.WriteString(m.renderBrowse())
	case screenAdd:
		s.WriteString(m.renderAdd())
	case screenConflicts:
		s.WriteString(m.renderConflicts())
	}

	s.WriteString("\n\n")
	s.WriteString(m.renderStatusLine())
	s.WriteString("\n")
	s.WriteString(m.renderHelp())

	return s.String()
}

// renderHeader renders the title and the active filter
func (m browseModel) renderHeader() string {
	title := titleStyle.Render("Quote Browser")
	filter := dimStyle.Render(fmt.Sprintf("filter: %s", m.app.State().Filter()))
	return fmt.Sprintf("%s  %s", title, filter)
}

// renderBrowse renders the current quote card
func (m browseModel) renderBrowse() string {
	if m.viewErr != nil {
		return errorStyle.Render(m.viewErr.Error())
	}
	if !m.hasQuote {
		return dimStyle.Render("No quote selected. Press n to draw one.")
	}

	cardWidth := m.width - 8
	if cardWidth > 70 {
		cardWidth = 70
	}
	if cardWidth < 20 {
		cardWidth = 20
	}

	body := quoteStyle.Width(cardWidth).Render(m.current.Text) + "\n\n" +
		categoryStyle.Render(m.current.Category) +
		dimStyle.Render("  "+cli.SourceLabel(m.current.Source))

	card := cardStyle.Render(body)

	if m.notice != "" {
		return card + "\n\n" + noticeStyle.Render(m.notice)
	}
	return card
}

// renderAdd renders the add-quote form
func (m browseModel) renderAdd() string {
	var s strings.Builder

	s.WriteString("Add Quote\n\n")
	s.WriteString("Text:\n")
	s.WriteString(m.textInput.View())
	s.WriteString("\n\nCategory:\n")
	s.WriteString(m.categoryInput.View())
	s.WriteString("\n")

	if m.formErr != nil {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render(m.formErr.Error()))
		s.WriteString("\n")
	}

	return s.String()
}

// renderConflicts renders the resolved-conflict audit panel
func (m browseModel) renderConflicts() string {
	records := m.app.Coordinator().ConflictLog().Recent(10)

	var s strings.Builder
	s.WriteString("Resolved Conflicts")
	s.WriteString(dimStyle.Render(fmt.Sprintf("  (%d total)", m.app.Coordinator().ConflictLog().Total())))
	s.WriteString("\n\n")

	if len(records) == 0 {
		s.WriteString(dimStyle.Render("No conflicts resolved yet."))
		return s.String()
	}

	for _, r := range records {
		s.WriteString(fmt.Sprintf("%s  %s\n",
			dimStyle.Render(r.ResolvedAt.Local().Format("2006-01-02 15:04:05")),
			quoteStyle.Render(truncate(r.Conflict.Local.Text, 48))))
		s.WriteString(dimStyle.Render(fmt.Sprintf("   kept server version (remote id %s)", r.Conflict.Remote.ID)))
		s.WriteString("\n")
	}

	return s.String()
}

// renderStatusLine renders the polled sync status
func (m browseModel) renderStatusLine() string {
	status := m.status
	line := severityStyle(status.Severity).Render(status.Message)
	if !status.At.IsZero() {
		line += dimStyle.Render("  " + cli.FormatAgo(time.Since(status.At)) + " ago")
	}
	if m.app.Coordinator().Syncing() {
		line += dimStyle.Render("  [syncing]")
	}
	return line
}

// renderHelp renders the help text at the bottom
func (m browseModel) renderHelp() string {
	var help string
	switch m.screen {
	case screenBrowse:
		help = "n: next • f: filter • a: add • s: sync • c: conflicts • q: quit"
	case screenAdd:
		help = "tab: switch field • enter: save • esc: cancel"
	case screenConflicts:
		help = "x: clear log • esc: back"
	}
	return dimStyle.Render(help)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
