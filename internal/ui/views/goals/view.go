package goals

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goalsdto "cfdash/internal/modules/goals/dto"
	"cfdash/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type GoalsPort interface {
	List(ctx context.Context) ([]goalsdto.GoalOutput, error)
	Create(ctx context.Context, title string, target float64, deadline string) (goalsdto.GoalOutput, error)
	Adjust(ctx context.Context, id string, delta float64) (goalsdto.GoalOutput, error)
	Remove(ctx context.Context, id string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Goals []goalsdto.GoalOutput
	Err   error
}

type MutatedMsg struct {
	Status string
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type goalItem struct {
	goal goalsdto.GoalOutput
}

func (i goalItem) Title() string {
	dot := lipgloss.NewStyle().Foreground(theme.Accent(i.goal.Color)).Render("●")
	return dot + " " + i.goal.Title
}

func (i goalItem) Description() string {
	return fmt.Sprintf("R$ %.2f / R$ %.2f  %s  until %s",
		i.goal.Current, i.goal.Target, progressBar(i.goal.Percent, 20), i.goal.Deadline)
}

func (i goalItem) FilterValue() string { return i.goal.Title }

func progressBar(percent, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", bar, percent)
}

// ─── model ───────────────────────────────────────────────────────────────────

type mode int

const (
	modeList mode = iota
	modeAdjust
	modeCreate
	modeConfirmDelete
)

type Model struct {
	port GoalsPort
	list list.Model
	mode mode

	amount   textinput.Model
	title    textinput.Model
	target   textinput.Model
	deadline textinput.Model
	formIdx  int

	status string
	width  int
	height int
}

func New(port GoalsPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Goals"
	l.Styles.Title = theme.Title
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	amount := textinput.New()
	amount.Placeholder = "amount (negative to withdraw)"
	title := textinput.New()
	title.Placeholder = "title"
	target := textinput.New()
	target.Placeholder = "target amount"
	deadline := textinput.New()
	deadline.Placeholder = "deadline YYYY-MM-DD"

	return Model{port: port, list: l, amount: amount, title: title, target: target, deadline: deadline}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Editing reports whether a text form is open, so the parent keeps global
// bindings out of the way.
func (m Model) Editing() bool {
	return m.mode == modeAdjust || m.mode == modeCreate
}

func (m Model) selected() (goalsdto.GoalOutput, bool) {
	item, ok := m.list.SelectedItem().(goalItem)
	if !ok {
		return goalsdto.GoalOutput{}, false
	}
	return item.goal, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)

	case LoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Goals))
		for i, g := range msg.Goals {
			items[i] = goalItem{goal: g}
		}
		m.status = fmt.Sprintf("%d goals", len(msg.Goals))
		return m, m.list.SetItems(items)

	case MutatedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = msg.Status
		return m, m.loadCmd()

	case tea.KeyMsg:
		switch m.mode {
		case modeAdjust:
			return m.updateAdjust(msg)
		case modeCreate:
			return m.updateCreate(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		}

		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "r":
			m.status = "refreshing"
			return m, m.loadCmd()
		case "a":
			if _, ok := m.selected(); ok {
				m.mode = modeAdjust
				m.amount.SetValue("")
				m.amount.Focus()
				return m, textinput.Blink
			}
		case "n":
			m.mode = modeCreate
			m.formIdx = 0
			m.title.SetValue("")
			m.target.SetValue("")
			m.deadline.SetValue("")
			m.title.Focus()
			m.target.Blur()
			m.deadline.Blur()
			return m, textinput.Blink
		case "x":
			if _, ok := m.selected(); ok {
				m.mode = modeConfirmDelete
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateAdjust(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil
	case "enter":
		goal, ok := m.selected()
		if !ok {
			m.mode = modeList
			return m, nil
		}
		delta, err := strconv.ParseFloat(strings.TrimSpace(m.amount.Value()), 64)
		if err != nil {
			m.status = "invalid amount"
			return m, nil
		}
		m.mode = modeList
		return m, m.adjustCmd(goal.ID, delta)
	}
	var cmd tea.Cmd
	m.amount, cmd = m.amount.Update(msg)
	return m, cmd
}

func (m Model) updateCreate(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil
	case "tab", "down":
		m.formIdx = (m.formIdx + 1) % 3
		m.focusForm()
		return m, nil
	case "shift+tab", "up":
		m.formIdx = (m.formIdx + 2) % 3
		m.focusForm()
		return m, nil
	case "enter":
		target, err := strconv.ParseFloat(strings.TrimSpace(m.target.Value()), 64)
		if err != nil {
			m.status = "invalid target amount"
			return m, nil
		}
		title := strings.TrimSpace(m.title.Value())
		deadline := strings.TrimSpace(m.deadline.Value())
		m.mode = modeList
		return m, m.createCmd(title, target, deadline)
	}
	var cmd tea.Cmd
	switch m.formIdx {
	case 0:
		m.title, cmd = m.title.Update(msg)
	case 1:
		m.target, cmd = m.target.Update(msg)
	case 2:
		m.deadline, cmd = m.deadline.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusForm() {
	m.title.Blur()
	m.target.Blur()
	m.deadline.Blur()
	switch m.formIdx {
	case 0:
		m.title.Focus()
	case 1:
		m.target.Focus()
	case 2:
		m.deadline.Focus()
	}
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		goal, ok := m.selected()
		m.mode = modeList
		if !ok {
			return m, nil
		}
		return m, m.removeCmd(goal.ID)
	case "n", "esc":
		m.mode = modeList
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	switch m.mode {
	case modeAdjust:
		goal, _ := m.selected()
		return m.overlay(strings.Join([]string{
			theme.Title.Render("Adjust " + goal.Title),
			"",
			m.amount.View(),
			"",
			theme.Muted.Render("enter: confirm   esc: cancel"),
		}, "\n"))
	case modeCreate:
		return m.overlay(strings.Join([]string{
			theme.Title.Render("New goal"),
			"",
			m.title.View(),
			m.target.View(),
			m.deadline.View(),
			"",
			theme.Muted.Render("enter: create   tab: next field   esc: cancel"),
		}, "\n"))
	case modeConfirmDelete:
		goal, _ := m.selected()
		return m.overlay(strings.Join([]string{
			theme.Title.Render("Delete " + goal.Title + "?"),
			"",
			theme.Muted.Render("y: delete   n: keep"),
		}, "\n"))
	}
	footer := theme.Muted.Render("a:adjust  n:new  x:delete  r:refresh") + "  " + m.status
	return m.list.View() + "\n" + footer
}

func (m Model) overlay(content string) string {
	pane := theme.PaneActive.Width(48).Render(content)
	if m.width == 0 {
		return pane
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		goals, err := m.port.List(context.Background())
		return LoadedMsg{Goals: goals, Err: err}
	}
}

func (m Model) adjustCmd(id string, delta float64) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Adjust(context.Background(), id, delta)
		if err != nil {
			return MutatedMsg{Err: err}
		}
		return MutatedMsg{Status: fmt.Sprintf("%s at %d%%", out.Title, out.Percent)}
	}
}

func (m Model) createCmd(title string, target float64, deadline string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Create(context.Background(), title, target, deadline)
		if err != nil {
			return MutatedMsg{Err: err}
		}
		return MutatedMsg{Status: "created " + out.Title}
	}
}

func (m Model) removeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.port.Remove(context.Background(), id); err != nil {
			return MutatedMsg{Err: err}
		}
		return MutatedMsg{Status: "goal deleted"}
	}
}
