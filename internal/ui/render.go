package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/view"
)

const (
	minContentWidth = 40
	playerWidth     = 36
	// header, nav, categories, list title, notice, footer
	chromeHeight = 8
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderNav())
	b.WriteString("\n")

	if m.onProfile() {
		b.WriteString(m.renderSettings())
	} else {
		if len(m.vm.Categories) > 0 {
			b.WriteString(m.renderCategories())
			b.WriteString("\n")
		}
		body := m.renderList()
		if m.vm.Player.Visible {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.renderPlayer())
		}
		b.WriteString(body)
	}
	b.WriteString("\n")

	if notice := m.renderNotice(); notice != "" {
		b.WriteString(notice)
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	line := m.spinner.View() + " " + styles.MutedText.Render(m.vm.LoadingText)
	if m.width == 0 || m.height == 0 {
		return line
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, line)
}

// renderHeader renders the title bar with the greeting on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	title := styles.Logo.Render("marquee") + "  " + styles.Text.Bold(true).Render(m.vm.Title)
	if m.vm.Greeting == "" {
		return styles.Header.Width(m.width).Render(title)
	}
	greeting := styles.AccentText.Render(m.vm.Greeting)
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(greeting) - 2
	if gap < 2 {
		gap = 2
	}
	return styles.Header.Width(m.width).Render(title + strings.Repeat(" ", gap) + greeting)
}

func (m Model) renderNav() string {
	styles := m.theme.Styles()
	parts := make([]string, 0, len(m.vm.Nav))
	for i, item := range m.vm.Nav {
		label := string(rune('1'+i)) + " " + item.Label
		if item.Active {
			parts = append(parts, styles.ActiveTab.Render(label))
		} else {
			parts = append(parts, styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderCategories() string {
	styles := m.theme.Styles()
	parts := []string{styles.MutedText.Render(m.vm.CategoriesLabel + ":")}
	for _, tab := range m.vm.Categories {
		if tab.Active {
			parts = append(parts, styles.ActiveTab.Render(tab.Name))
		} else {
			parts = append(parts, styles.Tab.Render(tab.Name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderList draws the card region. It is rebuilt from the view model on
// every frame.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	width := m.listWidth()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(m.vm.ListTitle))
	b.WriteString("\n")
	if len(m.vm.Cards) == 0 {
		b.WriteString(styles.FaintText.Render(m.vm.EmptyText))
		return styles.Panel.Width(width).Render(b.String())
	}
	b.WriteString(m.list.View())
	return styles.Panel.Width(width).Render(b.String())
}

// cardLines renders one line per card for the list viewport.
func (m Model) cardLines(width int) []string {
	styles := m.theme.Styles()
	lines := make([]string, 0, len(m.vm.Cards))
	for i, card := range m.vm.Cards {
		lines = append(lines, renderCard(card, i == m.selected, width, styles))
	}
	return lines
}

func renderCard(card view.Card, selected bool, width int, styles Styles) string {
	marker := "  "
	if card.Playing {
		marker = "> "
	}
	star := "  "
	if card.Favorited {
		star = "* "
	}
	title := card.Movie.Title
	if card.Movie.Type != "" {
		title += " [" + card.Movie.Type + "]"
	}
	line := marker + star + truncate(title, width-len(marker)-len(star))
	if selected {
		return styles.Selected.Width(width).Render(line)
	}
	if card.Playing {
		return styles.AccentText.Render(line)
	}
	return styles.Text.Render(line)
}

func (m Model) renderPlayer() string {
	styles := m.theme.Styles()
	p := m.vm.Player

	var b strings.Builder
	b.WriteString(styles.MutedText.Render(p.Label))
	b.WriteString("\n")
	if p.Movie == nil {
		b.WriteString(styles.FaintText.Render(p.Placeholder))
		return styles.Panel.Width(playerWidth).Render(b.String())
	}
	b.WriteString(styles.Text.Bold(true).Render(truncate(p.Movie.Title, playerWidth-2)))
	b.WriteString("\n")
	if p.Movie.Src != "" {
		b.WriteString(styles.FaintText.Render(truncate(p.Movie.Src, playerWidth-2)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	fav := "[f] " + p.FavoriteLabel
	if p.Favorited {
		b.WriteString(styles.WarningText.Render(fav))
	} else {
		b.WriteString(styles.Text.Render(fav))
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("[F] fullscreen  [o] open"))
	return styles.FocusPanel.Width(playerWidth).Render(b.String())
}

// renderFullscreen gives the whole screen to the player.
func (m Model) renderFullscreen() string {
	styles := m.theme.Styles()
	p := m.vm.Player

	var b strings.Builder
	b.WriteString(styles.Logo.Render(p.Label))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Bold(true).Render(p.Movie.Title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(p.Movie.Src))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("[F] exit fullscreen  [f] " + p.FavoriteLabel))
	if notice := m.renderNotice(); notice != "" {
		b.WriteString("\n\n")
		b.WriteString(notice)
	}
	if m.width == 0 || m.height == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m Model) renderNotice() string {
	n := m.vm.Notice
	if n.Empty() {
		return ""
	}
	styles := m.theme.Styles()
	if n.Kind == view.NoticeError {
		return styles.DangerText.Render("! " + n.Text)
	}
	return styles.SuccessText.Render(n.Text)
}

func (m Model) renderFooter() string {
	var keys help.KeyMap = m.keys
	if m.onProfile() {
		keys = formKeyMap(m.keys)
	}
	return m.theme.Styles().Footer.Render(m.help.View(keys))
}

// syncList refreshes the list viewport and keeps the selection visible.
func (m *Model) syncList() {
	width := m.listWidth() - 4
	height := m.height - chromeHeight
	if height < 3 {
		height = 3
	}
	m.list.Width = width
	m.list.Height = height
	m.list.SetContent(strings.Join(m.cardLines(width), "\n"))

	switch {
	case m.selected < m.list.YOffset:
		m.list.SetYOffset(m.selected)
	case m.selected >= m.list.YOffset+height:
		m.list.SetYOffset(m.selected - height + 1)
	}
}

func (m Model) contentWidth() int {
	if m.width-2 < minContentWidth {
		return minContentWidth
	}
	return m.width - 2
}

func (m Model) listWidth() int {
	width := m.contentWidth()
	if m.vm.Player.Visible {
		width -= playerWidth + 3
	}
	if width < minContentWidth/2 {
		width = minContentWidth / 2
	}
	return width
}
