package ledger

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	ledgerdto "cfdash/internal/modules/ledger/dto"
	"cfdash/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type LedgerPort interface {
	List(ctx context.Context, limit int) ([]ledgerdto.TransactionOutput, error)
	Remove(ctx context.Context, id string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Transactions []ledgerdto.TransactionOutput
	Err          error
}

type RemovedMsg struct{ Err error }

// ─── list item ───────────────────────────────────────────────────────────────

type txItem struct {
	tx ledgerdto.TransactionOutput
}

func (i txItem) Title() string {
	amount := fmt.Sprintf("%+.2f", i.tx.Signed)
	if i.tx.Signed >= 0 {
		amount = theme.Good.Render(amount)
	} else {
		amount = theme.Bad.Render(amount)
	}
	return i.tx.Description + "  " + amount
}

func (i txItem) Description() string {
	if i.tx.Category == "" {
		return i.tx.Time
	}
	return i.tx.Time + "  " + i.tx.Category
}

func (i txItem) FilterValue() string { return i.tx.Description }

// ─── model ───────────────────────────────────────────────────────────────────

const expandedLimit = 100

type Model struct {
	port     LedgerPort
	list     list.Model
	expanded bool
	confirm  bool
	status   string
	width    int
	height   int
}

func New(port LedgerPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Transactions"
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
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)

	case LoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Transactions))
		for i, tx := range msg.Transactions {
			items[i] = txItem{tx: tx}
		}
		m.status = fmt.Sprintf("%d transactions", len(msg.Transactions))
		return m, m.list.SetItems(items)

	case RemovedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = "transaction deleted"
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.confirm {
			switch msg.String() {
			case "y":
				m.confirm = false
				if item, ok := m.list.SelectedItem().(txItem); ok {
					return m, m.removeCmd(item.tx.ID)
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
		case "e":
			m.expanded = !m.expanded
			return m, m.loadCmd()
		case "x":
			if _, ok := m.list.SelectedItem().(txItem); ok {
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
		return m.list.View() + "\n" + theme.Hot.Render("delete selected transaction? y/n")
	}
	scope := "recent"
	if m.expanded {
		scope = "all"
	}
	footer := theme.Muted.Render("e:recent/all  x:delete  r:refresh  ("+scope+")") + "  " + m.status
	return m.list.View() + "\n" + footer
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	limit := 0
	if m.expanded {
		limit = expandedLimit
	}
	return func() tea.Msg {
		txs, err := m.port.List(context.Background(), limit)
		return LoadedMsg{Transactions: txs, Err: err}
	}
}

func (m Model) removeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return RemovedMsg{Err: m.port.Remove(context.Background(), id)}
	}
}
