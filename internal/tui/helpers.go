package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/naveenspark/courtside/pkg/domain"
)

// formatTime renders a relative timestamp for article lists.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if maxLen <= 1 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// orDash renders empty values as the sentinel.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return domain.Sentinel
	}
	return s
}

// displayName prefers the full name and falls back to first + last.
func displayName(p domain.Player) string {
	if p.Fullname != "" && p.Fullname != domain.Sentinel {
		return p.Fullname
	}
	return strings.TrimSpace(p.NameFirst + " " + p.NameLast)
}

// moveCursor clamps cursor+delta into [0, n).
func moveCursor(cursor, delta, n int) int {
	cursor += delta
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// row renders one list line with the selection marker and background.
func row(selected bool, text string) string {
	if selected {
		return selectedRowBg.Render(" " + accentStyle.Render(">") + " " + selectedStyle.Render(text))
	}
	return "   " + normalStyle.Render(text)
}
