package app

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "cfdash/internal/modules/session/dto"
	apperrors "cfdash/internal/platform/errors"
	"cfdash/internal/ui/theme"
	expensesview "cfdash/internal/ui/views/expenses"
	goalsview "cfdash/internal/ui/views/goals"
	ledgerview "cfdash/internal/ui/views/ledger"
	loginview "cfdash/internal/ui/views/login"
	summaryview "cfdash/internal/ui/views/summary"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// The root model only needs the session operations; everything else is owned
// by the sub-views behind their own ports.

type sessionPort interface {
	Login(ctx context.Context, email, password string, remember bool) (sessiondto.LoginOutput, error)
	Logout(ctx context.Context) error
	Resume(ctx context.Context) (sessiondto.SessionOutput, error)
}

// ─── gate state ──────────────────────────────────────────────────────────────
// The gate decides which surface is visible. Protected views render only in
// gateDashboard; any auth failure drops straight back to gateLogin.

type gateState int

const (
	gateResolving gateState = iota
	gateLogin
	gateSetup
	gateDashboard
)

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabSummary tabID = iota
	tabGoals
	tabLedger
	tabExpenses
	tabCount
)

var tabLabels = [tabCount]string{"Summary", "Goals", "Transactions", "Expenses"}

// ─── async messages ───────────────────────────────────────────────────────────

type resumedMsg struct {
	out sessiondto.SessionOutput
	err error
}

type loggedInMsg struct {
	out sessiondto.LoginOutput
	err error
}

type loggedOutMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	session sessionPort

	gate     gateState
	nextStep string
	email    string

	loginView    loginview.Model
	goalsView    goalsview.Model
	ledgerView   ledgerview.Model
	expensesView expensesview.Model
	summaryView  summaryview.Model

	activeTab tabID
	spinner   spinner.Model
	status    string
	width     int
	height    int
}

func NewModel(
	session sessionPort,
	goals goalsview.GoalsPort,
	ledger ledgerview.LedgerPort,
	expenses expensesview.ExpensesPort,
	summary summaryview.SummaryPort,
) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		session:      session,
		gate:         gateResolving,
		loginView:    loginview.New(),
		goalsView:    goalsview.New(goals),
		ledgerView:   ledgerview.New(ledger),
		expensesView: expensesview.New(expenses),
		summaryView:  summaryview.New(summary),
		spinner:      sp,
		status:       "resolving session",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.resumeCmd())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.propagateSize()

	case spinner.TickMsg:
		if m.gate == gateResolving {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case resumedMsg:
		return m.applySession(msg.out, msg.err)

	case loginview.SubmitMsg:
		m.status = "signing in"
		return m, m.loginCmd(msg.Email, msg.Password, msg.Remember)

	case loggedInMsg:
		if msg.err != nil {
			m.gate = gateLogin
			m.loginView.SetError(loginErrorText(msg.err))
			m.status = "login failed"
			return m, nil
		}
		m.email = msg.out.Email
		return m.applyGate(msg.out.Status, msg.out.NextStep)

	case loggedOutMsg:
		m.gate = gateLogin
		m.email = ""
		m.loginView.Reset()
		m.status = "logged out"
		return m, nil

	case tea.KeyMsg:
		if key := msg.String(); key == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.gate {
		case gateLogin:
			var cmd tea.Cmd
			m.loginView, cmd = m.loginView.Update(msg)
			return m, cmd
		case gateSetup:
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "L":
				return m, m.logoutCmd()
			}
			return m, nil
		case gateResolving:
			return m, nil
		}

		// Dashboard keys. Text inputs and list filters get first claim.
		if !m.editing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "tab":
				m.activeTab = (m.activeTab + 1) % tabCount
				return m, nil
			case "shift+tab":
				m.activeTab = (m.activeTab + tabCount - 1) % tabCount
				return m, nil
			case "L":
				return m, m.logoutCmd()
			}
		}
	}

	if m.gate == gateLogin {
		var cmd tea.Cmd
		m.loginView, cmd = m.loginView.Update(msg)
		return m, cmd
	}
	if m.gate != gateDashboard {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case tabSummary:
		m.summaryView, cmd = m.summaryView.Update(msg)
	case tabGoals:
		m.goalsView, cmd = m.goalsView.Update(msg)
	case tabLedger:
		m.ledgerView, cmd = m.ledgerView.Update(msg)
	case tabExpenses:
		m.expensesView, cmd = m.expensesView.Update(msg)
	}
	return m, cmd
}

func (m Model) applySession(out sessiondto.SessionOutput, err error) (tea.Model, tea.Cmd) {
	if err != nil || !out.Authenticated {
		m.gate = gateLogin
		m.status = "please sign in"
		return m, nil
	}
	m.email = out.Email
	return m.applyGate(out.Status, out.NextStep)
}

func (m Model) applyGate(status, nextStep string) (tea.Model, tea.Cmd) {
	m.nextStep = nextStep
	if nextStep == "dashboard" {
		m.gate = gateDashboard
		m.activeTab = tabSummary
		m.status = "signed in as " + m.email
		m.propagateSize()
		return m, tea.Batch(
			m.summaryView.Init(),
			m.goalsView.Init(),
			m.ledgerView.Init(),
			m.expensesView.Init(),
		)
	}
	m.gate = gateSetup
	m.status = "account status: " + status
	return m, nil
}

func (m Model) editing() bool {
	switch m.activeTab {
	case tabGoals:
		return m.goalsView.Filtering() || m.goalsView.Editing()
	case tabLedger:
		return m.ledgerView.Filtering()
	case tabExpenses:
		return m.expensesView.Filtering()
	}
	return false
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	switch m.gate {
	case gateResolving:
		pane := theme.Pane.Render(m.spinner.View() + " " + m.status)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
	case gateLogin:
		return m.loginView.View()
	case gateSetup:
		return m.renderSetup()
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}
	content := lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.activeView())
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabSummary:
		return m.summaryView.View()
	case tabGoals:
		return m.goalsView.View()
	case tabLedger:
		return m.ledgerView.View()
	case tabExpenses:
		return m.expensesView.View()
	}
	return ""
}

func (m Model) renderSetup() string {
	var body string
	switch m.nextStep {
	case "account-setup":
		body = "No account yet.\nRun `cfdash plan list` and `cfdash plan select <id>` to pick a plan."
	case "plan-selection":
		body = "Your account is awaiting activation.\nFinish the payment step, then reopen the dashboard."
	default:
		body = "Account not ready: " + m.nextStep
	}
	pane := theme.PaneActive.Width(56).Render(
		theme.Title.Render("Almost there") + "\n\n" + body + "\n\n" +
			theme.Muted.Render("L: sign out   q: quit"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "cfdash  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("tab:switch  L:sign out  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.loginView, _ = m.loginView.Update(sz)
	m.summaryView, _ = m.summaryView.Update(sz)
	m.goalsView, _ = m.goalsView.Update(sz)
	m.ledgerView, _ = m.ledgerView.Update(sz)
	m.expensesView, _ = m.expensesView.Update(sz)
}

func loginErrorText(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "invalid email or password"
	case errors.Is(err, apperrors.ErrTransient):
		return "server unavailable, try again"
	}
	if vErr, ok := apperrors.AsValidation(err); ok {
		return vErr.Error()
	}
	return err.Error()
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) resumeCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Resume(context.Background())
		return resumedMsg{out: out, err: err}
	}
}

func (m Model) loginCmd(email, password string, remember bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Login(context.Background(), email, password, remember)
		return loggedInMsg{out: out, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		_ = m.session.Logout(context.Background())
		return loggedOutMsg{}
	}
}
