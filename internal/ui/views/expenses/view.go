package expenses

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	expensesdto "cfdash/internal/modules/expenses/dto"
	"cfdash/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ExpensesPort interface {
	List(ctx context.Context) ([]expensesdto.ExpenseOutput, error)
	Remove(ctx context.Context, id string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Expenses []expensesdto.ExpenseOutput
	Err      error
}

type RemovedMsg struct{ Err error }

// ─── list item ───────────────────────────────────────────────────────────────

type expenseItem struct {
	expense expensesdto.ExpenseOutput
}

func (i expenseItem) Title() string {
	badge := theme.Hot.Render("[" + i.expense.Initials + "]")
	return badge + " " + i.expense.Description
}

func (i expenseItem) Description() string {
	return fmt.Sprintf("R$ %.2f", i.expense.Amount)
}

func (i expenseItem) FilterValue() string { return i.expense.Description }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    ExpensesPort
	list    list.Model
	confirm bool
	status  string
}

func New(port ExpensesPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Future expenses"
	l.Styles.Title = theme.Title
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)

	case LoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Expenses))
		for i, e := range msg.Expenses {
			items[i] = expenseItem{expense: e}
		}
		m.status = fmt.Sprintf("%d planned", len(msg.Expenses))
		return m, m.list.SetItems(items)

	case RemovedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = "expense deleted"
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.confirm {
			switch msg.String() {
			case "y":
				m.confirm = false
				if item, ok := m.list.SelectedItem().(expenseItem); ok {
					return m, m.removeCmd(item.expense.ID)
				}
			case "n", "esc":
				m.confirm = false
			}
			return m, nil
		}
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "r":
			return m, m.loadCmd()
		case "x":
			if _, ok := m.list.SelectedItem().(expenseItem); ok {
				m.confirm = true
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.confirm {
		return m.list.View() + "\n" + theme.Hot.Render("delete selected expense? y/n")
	}
	footer := theme.Muted.Render("x:delete  r:refresh") + "  " + m.status
	return m.list.View() + "\n" + footer
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		expenses, err := m.port.List(context.Background())
		return LoadedMsg{Expenses: expenses, Err: err}
	}
}

func (m Model) removeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return RemovedMsg{Err: m.port.Remove(context.Background(), id)}
	}
}
