package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/view"
)

// Form fields in focus order.
const (
	fieldLanguage = iota
	fieldTheme
	fieldName
	fieldEmail
	fieldCount
)

// formState is the editable copy of the settings shown on the profile tab.
// Nothing is applied until the form is saved.
type formState struct {
	focus    int
	language string
	theme    string
	inputs   [2]textinput.Model // name, email
}

func newFormState() formState {
	var f formState
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 120
		f.inputs[i] = in
	}
	f.inputs[0].Placeholder = "Name"
	f.inputs[1].Placeholder = "name@example.com"
	return f
}

// load resets the form to the saved settings.
func (f *formState) load(s view.Settings) {
	f.language = s.Language
	f.theme = s.Theme
	f.inputs[0].SetValue(s.Name)
	f.inputs[1].SetValue(s.Email)
	f.setFocus(fieldLanguage)
}

func (f *formState) value() view.Form {
	return view.Form{
		Language: f.language,
		Theme:    f.theme,
		Name:     strings.TrimSpace(f.inputs[0].Value()),
		Email:    strings.TrimSpace(f.inputs[1].Value()),
	}
}

func (f *formState) setFocus(field int) tea.Cmd {
	f.focus = cycle(field, 0, fieldCount)
	var cmd tea.Cmd
	for i := range f.inputs {
		if fieldName+i == f.focus {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

// stepValue cycles the focused enum field.
func (f *formState) stepValue(delta int) {
	switch f.focus {
	case fieldLanguage:
		f.language = stepOption(prefs.Languages(), f.language, delta)
	case fieldTheme:
		f.theme = stepOption(prefs.Themes(), f.theme, delta)
	}
}

func (f formState) editingText() bool {
	return f.focus == fieldName || f.focus == fieldEmail
}

func stepOption(values []string, current string, delta int) string {
	i := indexOf(values, current)
	if i < 0 {
		return values[0]
	}
	return values[cycle(i, delta, len(values))]
}

// handleFormKey processes keys while the profile tab is active.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.apply(m.cmds.Navigate(state.NavHome))
		return m, nil
	case key.Matches(msg, m.keys.Save):
		m.apply(m.cmds.SaveSettings(m.form.value()))
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m, m.form.setFocus(m.form.focus + 1)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.form.setFocus(m.form.focus - 1 + fieldCount)
	}

	if !m.form.editingText() {
		switch {
		case key.Matches(msg, m.keys.PrevValue, m.keys.PrevCategory):
			m.form.stepValue(-1)
		case key.Matches(msg, m.keys.NextValue, m.keys.NextCategory):
			m.form.stepValue(1)
		case key.Matches(msg, m.keys.Home):
			m.apply(m.cmds.Navigate(state.NavHome))
		case key.Matches(msg, m.keys.Trending):
			m.apply(m.cmds.Navigate(state.NavTrending))
		case key.Matches(msg, m.keys.Favorites):
			m.apply(m.cmds.Navigate(state.NavFavorites))
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}
	return m.updateFormInput(msg)
}

// updateFormInput forwards msg to the focused text input.
func (m Model) updateFormInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.form.editingText() {
		return m, nil
	}
	i := m.form.focus - fieldName
	var cmd tea.Cmd
	m.form.inputs[i], cmd = m.form.inputs[i].Update(msg)
	return m, cmd
}

// renderSettings draws the profile form.
func (m Model) renderSettings() string {
	styles := m.theme.Styles()
	s := m.vm.Settings
	labelStyle := styles.MutedText.Width(12)

	row := func(field int, label, value string) string {
		marker := "  "
		if m.form.focus == field {
			marker = styles.AccentText.Render("> ")
		}
		return marker + labelStyle.Render(label) + value
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(s.Heading))
	b.WriteString("\n\n")
	b.WriteString(row(fieldLanguage, s.LanguageLabel, m.renderOptions(s.LanguageOptions, m.form.language)))
	b.WriteString("\n")
	b.WriteString(row(fieldTheme, s.ThemeLabel, m.renderOptions(s.ThemeOptions, m.form.theme)))
	b.WriteString("\n")
	b.WriteString(row(fieldName, s.NameLabel, m.form.inputs[0].View()))
	b.WriteString("\n")
	b.WriteString(row(fieldEmail, s.EmailLabel, m.form.inputs[1].View()))
	b.WriteString("\n\n")
	b.WriteString("  " + labelStyle.Render(m.vm.Profile.UserIDLabel) + styles.FaintText.Render(m.vm.Profile.UserID))
	b.WriteString("\n\n")
	b.WriteString("  " + styles.ActiveTab.Render(s.SaveLabel) + " " + styles.FaintText.Render("ctrl+s"))

	return m.theme.Styles().FocusPanel.Width(m.contentWidth()).Render(b.String())
}

func (m Model) renderOptions(options []view.Option, current string) string {
	styles := m.theme.Styles()
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		if opt.Value == current {
			parts = append(parts, styles.ActiveTab.Render(opt.Label))
		} else {
			parts = append(parts, styles.Tab.Render(opt.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
