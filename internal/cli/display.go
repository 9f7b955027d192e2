package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"gosyncquotes/internal/app"
	"gosyncquotes/internal/sync"
	"gosyncquotes/quote"
)

// GetTerminalWidth returns the current terminal width, defaulting to 80 if unable to detect
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		// Default to 80 if we can't detect terminal size
		return 80
	}
	return width
}

// borderWidth clamps the terminal width to something readable
func borderWidth() int {
	width := GetTerminalWidth() - 2
	if width < 40 {
		width = 40 // Minimum width
	}
	if width > 100 {
		width = 100 // Maximum width for readability
	}
	return width
}

// SourceLabel returns a short human-readable provenance tag for a quote
func SourceLabel(s quote.Source) string {
	switch s {
	case quote.SourceLocal:
		return "added here"
	case quote.SourceServer:
		return "from server"
	case quote.SourceServerSynced:
		return "pulled from server"
	case quote.SourceServerResolved:
		return "server version kept"
	default:
		return string(s)
	}
}

// ShowQuoteCard displays a single quote with borders and colors
func ShowQuoteCard(q quote.Quote) {
	width := borderWidth()

	header := "─ Quote "
	headerPadding := width - len(header)
	if headerPadding < 0 {
		headerPadding = 0
	}

	textColor := "\033[1;37m"  // Bold white
	metaColor := "\033[90m"    // Gray
	catColor := "\033[36m"     // Cyan
	reset := "\033[0m"

	fmt.Printf("\n\033[1;36m┌%s%s┐\033[0m\n", header, strings.Repeat("─", headerPadding))
	for _, line := range wrapText(q.Text, width-6) {
		fmt.Printf("  %s%s%s\n", textColor, line, reset)
	}
	fmt.Printf("  %s— %s%s %s(%s)%s\n", catColor, q.Category, reset, metaColor, SourceLabel(q.Source), reset)
	fmt.Printf("\033[1;36m└%s┘\033[0m\n", strings.Repeat("─", width))
}

// ShowQuoteList displays quotes as a numbered list with category tags
func ShowQuoteList(quotes []quote.Quote) {
	if len(quotes) == 0 {
		fmt.Println("No quotes to show.")
		return
	}

	numColor := "\033[36m"   // Cyan
	catColor := "\033[90m"   // Gray
	reset := "\033[0m"

	fmt.Println()
	for i, q := range quotes {
		fmt.Printf("  %s%3d.%s %s\n", numColor, i+1, reset, q.Text)
		fmt.Printf("       %s%s · %s%s\n", catColor, q.Category, SourceLabel(q.Source), reset)
	}
	fmt.Println()
}

// ShowCategories displays the category inventory with quote counts
func ShowCategories(categories []app.CategoryCount) {
	if len(categories) == 0 {
		fmt.Println("No categories yet.")
		return
	}

	countColor := "\033[90m"
	reset := "\033[0m"

	fmt.Println("\nCategories:")
	for _, c := range categories {
		noun := "quotes"
		if c.Count == 1 {
			noun = "quote"
		}
		fmt.Printf("  • %-24s %s(%d %s)%s\n", c.Name, countColor, c.Count, noun, reset)
	}
	fmt.Println()
}

// ShowConflictRecords displays resolved conflicts from the audit log,
// newest first
func ShowConflictRecords(records []sync.Record) {
	if len(records) == 0 {
		fmt.Println("No conflicts recorded.")
		return
	}

	metaColor := "\033[90m"
	warnColor := "\033[33m"
	reset := "\033[0m"

	fmt.Printf("\n%d recorded conflict(s), newest first:\n\n", len(records))
	for i, rec := range records {
		fmt.Printf("  %s%d.%s %s[%s]%s %s\n",
			warnColor, i+1, reset,
			metaColor, rec.ResolvedAt.Local().Format("2006-01-02 15:04:05"), reset,
			rec.Conflict.Kind)
		fmt.Printf("     local:  %q %s(%s)%s\n", rec.Conflict.Local.Text, metaColor, rec.Conflict.Local.Category, reset)
		fmt.Printf("     remote: %q %s(%s, id=%s)%s\n", rec.Conflict.Remote.Text, metaColor, rec.Conflict.Remote.Category, rec.Conflict.Remote.ID, reset)
		fmt.Printf("     %sresolution: %s%s\n", metaColor, rec.Policy, reset)
	}
	fmt.Println()
}

// ShowSyncStatus displays connection state, the last published status and the
// aggregate statistics
func ShowSyncStatus(status sync.Status, stats sync.Stats, online bool, interval time.Duration) {
	fmt.Println("\n=== Sync Status ===")
	if online {
		fmt.Println("Connection: Online")
	} else {
		fmt.Println("Connection: Offline")
	}
	fmt.Printf("Status: %s%s\033[0m\n", severityColor(status.Severity), status.Message)

	fmt.Printf("Total quotes: %d\n", stats.TotalQuotes)
	fmt.Printf("  added here: %d\n", stats.LocalCount)
	fmt.Printf("  from server: %d\n", stats.RemoteDerivedCount)
	fmt.Printf("Conflicts resolved: %d\n", stats.ConflictsResolved)

	if stats.AutoSyncActive {
		fmt.Printf("Auto-sync: active (every %s)\n", interval)
	} else {
		fmt.Println("Auto-sync: stopped")
	}

	if !stats.LastSyncAt.IsZero() {
		fmt.Printf("Last sync: %s ago\n", FormatAgo(time.Since(stats.LastSyncAt)))
	} else {
		fmt.Println("Last sync: Never")
	}
	fmt.Println()
}

// severityColor maps a status severity to an ANSI color prefix
func severityColor(s sync.Severity) string {
	switch s {
	case sync.SeverityWarn:
		return "\033[33m" // Yellow
	case sync.SeverityError:
		return "\033[31m" // Red
	default:
		return "\033[32m" // Green
	}
}

// FormatAgo formats a duration in a human-readable way
func FormatAgo(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
	if d < time.Hour {
		minutes := int(d.Minutes())
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}
	if d < 24*time.Hour {
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	days := int(d.Hours() / 24)
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// wrapText breaks text into lines no wider than width, splitting on spaces.
// A single word longer than the width gets its own line rather than being cut.
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 10
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
