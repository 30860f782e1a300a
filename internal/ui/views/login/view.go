package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cfdash/internal/ui/theme"
)

// ─── messages ────────────────────────────────────────────────────────────────

// SubmitMsg is emitted when the user confirms the form. The parent model owns
// the actual login call so it can route on the resulting account status.
type SubmitMsg struct {
	Email    string
	Password string
	Remember bool
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	fieldEmail = iota
	fieldPassword
	fieldRemember
	fieldCount
)

type Model struct {
	email    textinput.Model
	password textinput.Model
	remember bool
	focus    int
	errText  string
	width    int
	height   int
}

func New() Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return Model{email: email, password: password}
}

// SetError shows a failure line under the form. Invalid credentials and
// transport errors both land here; the wording comes from the session module.
func (m *Model) SetError(text string) {
	m.errText = text
}

func (m *Model) Reset() {
	m.password.SetValue("")
	m.errText = ""
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case " ":
			if m.focus == fieldRemember {
				m.remember = !m.remember
				return m, nil
			}
		case "enter":
			email := strings.TrimSpace(m.email.Value())
			return m, func() tea.Msg {
				return SubmitMsg{Email: email, Password: m.password.Value(), Remember: m.remember}
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	case fieldPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	m.email.Blur()
	m.password.Blur()
	switch focus {
	case fieldEmail:
		m.email.Focus()
	case fieldPassword:
		m.password.Focus()
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	check := "[ ]"
	if m.remember {
		check = "[x]"
	}
	rememberLine := check + " remember me"
	if m.focus == fieldRemember {
		rememberLine = theme.Hot.Render(rememberLine)
	} else {
		rememberLine = theme.Muted.Render(rememberLine)
	}

	lines := []string{
		theme.Title.Render("Controle Fácil"),
		"",
		m.email.View(),
		m.password.View(),
		"",
		rememberLine,
		"",
		theme.Muted.Render("enter: sign in   tab: next field   space: toggle"),
	}
	if m.errText != "" {
		lines = append(lines, "", theme.Bad.Render(m.errText))
	}

	form := theme.PaneActive.Width(48).Render(strings.Join(lines, "\n"))
	if m.width == 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}
