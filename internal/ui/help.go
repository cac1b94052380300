package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Tabs",
		items: []helpItem{
			{"1-4", "Home/Trending/Favorites/Profile"},
			{"tab", "Next tab"},
			{"h/l", "Previous/next category"},
			{"j/k", "Move down/up"},
			{"g/G", "Go to top/bottom"},
		},
	},
	{
		title: "Player",
		items: []helpItem{
			{"enter", "Play selected movie"},
			{"f", "Toggle favorite"},
			{"F", "Toggle fullscreen"},
			{"o", "Open in external player"},
		},
	},
	{
		title: "Profile",
		items: []helpItem{
			{"tab", "Next field"},
			{"left/right", "Change option"},
			{"ctrl+s", "Save settings"},
			{"esc", "Back to home"},
		},
	},
	{
		title: "General",
		items: []helpItem{
			{"esc", "Dismiss message"},
			{"?", "Toggle help"},
			{"q/ctrl+c", "Quit"},
		},
	},
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)
	for i, section := range helpSections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(helpSections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(48).
		Render(b.String())

	if m.width == 0 || m.height == 0 {
		return modal
	}
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
