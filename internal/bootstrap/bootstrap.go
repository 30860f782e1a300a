package bootstrap

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	accountinadapter "cfdash/internal/modules/account/adapter/in"
	accountoutadapter "cfdash/internal/modules/account/adapter/out"
	accountusecase "cfdash/internal/modules/account/usecase"
	expensesinadapter "cfdash/internal/modules/expenses/adapter/in"
	expensesoutadapter "cfdash/internal/modules/expenses/adapter/out"
	expensesusecase "cfdash/internal/modules/expenses/usecase"
	goalsinadapter "cfdash/internal/modules/goals/adapter/in"
	goalsoutadapter "cfdash/internal/modules/goals/adapter/out"
	goalsservice "cfdash/internal/modules/goals/service"
	goalsusecase "cfdash/internal/modules/goals/usecase"
	ledgerinadapter "cfdash/internal/modules/ledger/adapter/in"
	ledgeroutadapter "cfdash/internal/modules/ledger/adapter/out"
	ledgerusecase "cfdash/internal/modules/ledger/usecase"
	sessioninadapter "cfdash/internal/modules/session/adapter/in"
	sessionoutadapter "cfdash/internal/modules/session/adapter/out"
	sessionservice "cfdash/internal/modules/session/service"
	sessionusecase "cfdash/internal/modules/session/usecase"
	summaryinadapter "cfdash/internal/modules/summary/adapter/in"
	summaryoutadapter "cfdash/internal/modules/summary/adapter/out"
	summaryusecase "cfdash/internal/modules/summary/usecase"
	"cfdash/internal/platform/clock"
	"cfdash/internal/platform/config"
	"cfdash/internal/platform/httpx"
	uiapp "cfdash/internal/ui/app"
)

type App struct {
	SessionCLI  sessioninadapter.CLIHandler
	GoalsCLI    goalsinadapter.CLIHandler
	LedgerCLI   ledgerinadapter.CLIHandler
	ExpensesCLI expensesinadapter.CLIHandler
	AccountCLI  accountinadapter.CLIHandler
	SummaryCLI  summaryinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}

	tokenStore := sessionoutadapter.NewFileTokenStore(cfg.DurableSessionPath, cfg.EphemeralSessionPath)
	// An auth failure on any endpoint wipes both storage scopes; the gate
	// then routes back to login on the next resolve.
	client := httpx.New(cfg.APIBaseURL, cfg.Timeout(), tokenStore, func() {
		_ = tokenStore.Clear(context.Background())
	})

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewGateService(),
		sessionoutadapter.NewHTTPAuthClient(client),
		tokenStore,
	)
	goalsUC := goalsusecase.NewInteractor(
		goalsservice.NewGoalService(clk),
		goalsoutadapter.NewHTTPGoalClient(client),
	)
	ledgerUC := ledgerusecase.NewInteractor(ledgeroutadapter.NewHTTPTransactionClient(client))
	expensesUC := expensesusecase.NewInteractor(expensesoutadapter.NewHTTPExpenseClient(client))
	accountUC := accountusecase.NewInteractor(accountoutadapter.NewHTTPAccountClient(client), cfg.WebBaseURL)
	summaryUC := summaryusecase.NewInteractor(summaryoutadapter.NewHTTPSummaryClient(client))

	return &App{
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		GoalsCLI:    goalsinadapter.NewCLIHandler(goalsUC),
		LedgerCLI:   ledgerinadapter.NewCLIHandler(ledgerUC),
		ExpensesCLI: expensesinadapter.NewCLIHandler(expensesUC),
		AccountCLI:  accountinadapter.NewCLIHandler(accountUC),
		SummaryCLI:  summaryinadapter.NewCLIHandler(summaryUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.SessionCLI, app.GoalsCLI, app.LedgerCLI, app.ExpensesCLI, app.SummaryCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
