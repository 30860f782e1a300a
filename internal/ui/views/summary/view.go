package summary

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	summarydto "cfdash/internal/modules/summary/dto"
	"cfdash/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SummaryPort interface {
	Health(ctx context.Context) (summarydto.HealthOutput, error)
	Card(ctx context.Context) (summarydto.CardOutput, error)
	Monthly(ctx context.Context) ([]summarydto.MonthOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Health  summarydto.HealthOutput
	Card    summarydto.CardOutput
	CardErr error
	Months  []summarydto.MonthOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    SummaryPort
	health  summarydto.HealthOutput
	card    summarydto.CardOutput
	hasCard bool
	months  []summarydto.MonthOutput
	status  string
	width   int
	height  int
}

func New(port SummaryPort) Model {
	return Model{port: port, status: "loading"}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.health = msg.Health
		m.card = msg.Card
		m.hasCard = msg.CardErr == nil
		m.months = msg.Months
		m.status = ""

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.status = "refreshing"
			return m, m.loadCmd()
		}
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	healthPane := theme.Pane.Width(34).Render(m.renderHealth())
	cardPane := theme.Pane.Width(34).Render(m.renderCard())
	monthPane := theme.Pane.Width(70).Render(m.renderMonthly())

	top := lipgloss.JoinHorizontal(lipgloss.Top, healthPane, cardPane)
	body := lipgloss.JoinVertical(lipgloss.Left, top, monthPane)
	if m.status != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, theme.Muted.Render(m.status))
	}
	return body
}

func (m Model) renderHealth() string {
	level := m.health.Level
	style := theme.Muted
	switch level {
	case "good":
		style = theme.Good
	case "attention":
		style = theme.Hot
	case "critical":
		style = theme.Bad
	}
	gauge := progressBar(int(m.health.Percent), 24)
	return strings.Join([]string{
		theme.Title.Render("Financial health"),
		"",
		gauge,
		style.Render(fmt.Sprintf("%.0f%% — %s", m.health.Percent, level)),
	}, "\n")
}

func (m Model) renderCard() string {
	if !m.hasCard {
		return theme.Title.Render("Card") + "\n\n" + theme.Muted.Render("no card on file")
	}
	return strings.Join([]string{
		theme.Title.Render("Card"),
		"",
		m.card.Masked,
		theme.Muted.Render(fmt.Sprintf("exp %s  %s", m.card.Expiry, m.card.Brand)),
		theme.Muted.Render(m.card.Holder),
	}, "\n")
}

func (m Model) renderMonthly() string {
	lines := []string{theme.Title.Render("Monthly overview"), ""}
	max := 0.0
	for _, mo := range m.months {
		if mo.Amount > max {
			max = mo.Amount
		}
	}
	for _, mo := range m.months {
		width := 0
		if max > 0 {
			width = int(mo.Amount / max * 40)
		}
		bar := lipgloss.NewStyle().Foreground(theme.Sapphire).Render(strings.Repeat("█", width))
		lines = append(lines, fmt.Sprintf("%-10s %s R$ %.2f", mo.Month, bar, mo.Amount))
	}
	if len(m.months) == 0 {
		lines = append(lines, theme.Muted.Render("no data yet"))
	}
	return strings.Join(lines, "\n")
}

func progressBar(percent, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		health, err := m.port.Health(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		card, cardErr := m.port.Card(ctx)
		months, err := m.port.Monthly(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Health: health, Card: card, CardErr: cardErr, Months: months}
	}
}
