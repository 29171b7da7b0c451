package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Shimmer animation for the COURTSIDE logo.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerLogo renders "COURTSIDE" as a wave of light moving from clay
// (#7a3418) to ball yellow (#e8f048).
func renderShimmerLogo(frame int) string {
	const text = "COURTSIDE"
	n := len(text)

	var out strings.Builder
	t := float64(frame)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)
		b = b*0.75 + math.Sin(t*0.035)*0.12 + 0.18
		b = math.Max(0.05, math.Min(1.0, b))

		r := clampByte(122 + b*(232-122))
		g := clampByte(52 + b*(240-52))
		bl := clampByte(24 + b*(72-24))

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, bl)))
		out.WriteString(s.Render(string(text[i])))

		if i < n-1 {
			out.WriteString("  ")
		}
	}
	return out.String()
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4e157"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b45555"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ade80"))

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#606878")).
				Bold(true)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d4e157")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	selectedRowBg = lipgloss.NewStyle().Background(lipgloss.Color("#1e1e2a"))

	// Tournament level colors, keyed by the backend's level code.
	levelColors = map[string]lipgloss.Color{
		"G": lipgloss.Color("#4ade80"), // grand slam
		"M": lipgloss.Color("#60a5fa"), // masters 1000
		"F": lipgloss.Color("#d4a844"), // finals
		"A": lipgloss.Color("#c0c4d0"), // 500 / 250
	}

	surfaceColors = map[string]lipgloss.Color{
		"Clay":   lipgloss.Color("#e07a4a"),
		"Grass":  lipgloss.Color("#4ade80"),
		"Hard":   lipgloss.Color("#60a5fa"),
		"Carpet": lipgloss.Color("#b080d0"),
	}
)

// rankStyle colors the top three ranks.
func rankStyle(rank int) lipgloss.Style {
	switch rank {
	case 1:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#facc15")).Bold(true)
	case 2:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#d1d5db"))
	case 3:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#d97706"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#8891a5"))
	}
}

// LevelStyle returns a bold style colored for a tournament level code.
func LevelStyle(level string) lipgloss.Style {
	if c, ok := levelColors[level]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#606878")).Bold(true)
}

// SurfaceStyle returns a style colored for a court surface.
func SurfaceStyle(surface string) lipgloss.Style {
	if c, ok := surfaceColors[surface]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return metaStyle
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpBar joins key/label pairs into a help line.
func helpBar(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, helpEntry(pairs[i], pairs[i+1]))
	}
	return " " + strings.Join(parts, "  ")
}

// helpView renders the help overlay.
func helpView() string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#d4e157")).
		Bold(true).
		Render("C O U R T S I D E")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	sections := []struct {
		name  string
		items []struct{ cmd, desc string }
	}{
		{"Navigation", []struct{ cmd, desc string }{
			{"1", "Home (headlines)"},
			{"2", "Players"},
			{"3", "Rankings"},
			{"4", "Tournaments"},
			{"5", "News sources"},
			{"a", "Add player (login required)"},
			{"L", "Log in / log out"},
			{"esc", "Back"},
		}},
		{"Commands", []struct{ cmd, desc string }{
			{"courtside", "Open this interface"},
			{"courtside login", "Authenticate as administrator"},
			{"courtside photo <id|name>", "Resolve a player photo"},
			{"courtside logo <tournament>", "Resolve a tournament logo"},
			{"newsproxy", "Serve the news API server-side"},
		}},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n", title)
	for _, s := range sections {
		fmt.Fprintf(&b, "\n  %s\n", sectionHeaderStyle.Render(s.name))
		for _, it := range s.items {
			fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-28s", it.cmd)), descStyle.Render(it.desc))
		}
	}
	return b.String()
}
