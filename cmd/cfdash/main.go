package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"cfdash/internal/bootstrap"
	"cfdash/internal/platform/config"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "cfdash",
		Short:         "Controle Fácil terminal dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default: user config dir)")

	root.AddCommand(newTUICmd(&configDir))
	root.AddCommand(newLoginCmd(&configDir))
	root.AddCommand(newLogoutCmd(&configDir))
	root.AddCommand(newStatusCmd(&configDir))
	root.AddCommand(newRegisterCmd(&configDir))
	root.AddCommand(newPlanCmd(&configDir))
	root.AddCommand(newAccountCmd(&configDir))
	root.AddCommand(newGoalCmd(&configDir))
	root.AddCommand(newTxCmd(&configDir))
	root.AddCommand(newExpenseCmd(&configDir))
	root.AddCommand(newCardCmd(&configDir))
	root.AddCommand(newSummaryCmd(&configDir))
	return root
}

func loadApp(configDir string) (*bootstrap.App, error) {
	cfg, err := config.New(configDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the cfdash terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newLoginCmd(configDir *string) *cobra.Command {
	var email, password string
	var remember bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Login(context.Background(), email, password, remember)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (status=%s, next=%s)\n", out.Email, out.Status, out.NextStep)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().BoolVar(&remember, "remember", false, "keep the session across restarts")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear any stored session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			if err := app.SessionCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newStatusCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Resume(context.Background())
			if err != nil {
				return err
			}
			if !out.Authenticated {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (scope=%s, status=%s, next=%s)\n",
				out.Email, out.Scope, out.Status, out.NextStep)
			return nil
		},
	}
}

func newRegisterCmd(configDir *string) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.AccountCLI.Register(context.Background(), name, email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "registered %s <%s> (%s)\n", out.Name, out.Email, out.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&password, "password", "", "password (min 8 chars, letters and digits)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newPlanCmd(configDir *string) *cobra.Command {
	plan := &cobra.Command{Use: "plan", Short: "Subscription plan commands"}

	plan.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available plans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			plans, err := app.AccountCLI.Plans(context.Background())
			if err != nil {
				return err
			}
			for _, p := range plans {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tR$ %.2f\t%s\n", p.ID, p.Name, p.Price, p.Description)
			}
			return nil
		},
	})

	plan.AddCommand(&cobra.Command{
		Use:   "select <plan-id>",
		Short: "Create an account on the given plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.AccountCLI.CreateAccount(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "account created on plan %s\ncomplete payment at %s\n", out.PlanID, out.PaymentURL)
			return nil
		},
	})

	return plan
}

func newAccountCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show account status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Resume(context.Background())
			if err != nil {
				return err
			}
			if !out.Authenticated {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "account status: %s\n", out.Status)
			return nil
		},
	}
}

func newGoalCmd(configDir *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Savings goal commands"}

	goal.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			goals, err := app.GoalsCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goals")
				return nil
			}
			for _, g := range goals {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tR$ %.2f / R$ %.2f\t%d%%\t%s\t%s\n",
					g.ID, g.Title, g.Current, g.Target, g.Percent, g.Deadline, g.Color)
			}
			return nil
		},
	})

	var title, deadline string
	var target, current float64

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a savings goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.GoalsCLI.Create(context.Background(), title, target, deadline)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created goal %s (%s)\n", out.Title, out.ID)
			return nil
		},
	}
	createCmd.Flags().StringVar(&title, "title", "", "goal title")
	createCmd.Flags().Float64Var(&target, "target", 0, "target amount")
	createCmd.Flags().StringVar(&deadline, "deadline", "", "deadline (YYYY-MM-DD)")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("target")
	_ = createCmd.MarkFlagRequired("deadline")

	editCmd := &cobra.Command{
		Use:   "edit <goal-id>",
		Short: "Edit a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.GoalsCLI.Edit(context.Background(), args[0], title, target, current, deadline)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated goal %s: R$ %.2f / R$ %.2f (%d%%)\n",
				out.Title, out.Current, out.Target, out.Percent)
			return nil
		},
	}
	editCmd.Flags().StringVar(&title, "title", "", "goal title")
	editCmd.Flags().Float64Var(&target, "target", 0, "target amount")
	editCmd.Flags().Float64Var(&current, "current", 0, "amount saved so far")
	editCmd.Flags().StringVar(&deadline, "deadline", "", "deadline (YYYY-MM-DD)")

	adjustCmd := &cobra.Command{
		Use:   "adjust <goal-id> <delta>",
		Short: "Add to or subtract from a goal's saved amount",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			var delta float64
			if _, err := fmt.Sscanf(args[1], "%f", &delta); err != nil {
				return fmt.Errorf("invalid delta %q", args[1])
			}
			out, err := app.GoalsCLI.Adjust(context.Background(), args[0], delta)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s now at R$ %.2f / R$ %.2f (%d%%)\n",
				out.Title, out.Current, out.Target, out.Percent)
			return nil
		},
	}

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <goal-id>",
		Short: "Delete a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete without --yes")
			}
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			if err := app.GoalsCLI.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "goal deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")

	goal.AddCommand(createCmd, editCmd, adjustCmd, deleteCmd)
	return goal
}

func newTxCmd(configDir *string) *cobra.Command {
	tx := &cobra.Command{Use: "tx", Short: "Transaction commands"}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			txs, err := app.LedgerCLI.List(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(txs) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no transactions")
				return nil
			}
			for _, t := range txs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%+.2f\t%s\t%s\n", t.ID, t.Description, t.Signed, t.Time, t.Category)
			}
			return nil
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 0, "max entries (0 = server default)")

	tx.AddCommand(&cobra.Command{
		Use:   "categories",
		Short: "List transaction categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			cats, err := app.LedgerCLI.Categories(context.Background())
			if err != nil {
				return err
			}
			for _, c := range cats {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.ID, c.Name)
			}
			return nil
		},
	})

	var description, kind, categoryID string
	var amount float64

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.LedgerCLI.Create(context.Background(), description, amount, kind, categoryID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %s (%+.2f)\n", out.Description, out.Signed)
			return nil
		},
	}
	addCmd.Flags().StringVar(&description, "description", "", "what the money was for")
	addCmd.Flags().Float64Var(&amount, "amount", 0, "amount (always positive)")
	addCmd.Flags().StringVar(&kind, "kind", "SAIDA", "ENTRADA or SAIDA")
	addCmd.Flags().StringVar(&categoryID, "category", "", "category id (optional)")
	_ = addCmd.MarkFlagRequired("description")
	_ = addCmd.MarkFlagRequired("amount")

	updateCmd := &cobra.Command{
		Use:   "update <tx-id>",
		Short: "Rewrite a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.LedgerCLI.Update(context.Background(), args[0], description, amount, kind, categoryID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s (%+.2f)\n", out.Description, out.Signed)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&description, "description", "", "what the money was for")
	updateCmd.Flags().Float64Var(&amount, "amount", 0, "amount (always positive)")
	updateCmd.Flags().StringVar(&kind, "kind", "SAIDA", "ENTRADA or SAIDA")
	updateCmd.Flags().StringVar(&categoryID, "category", "", "category id (optional)")

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <tx-id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete without --yes")
			}
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			if err := app.LedgerCLI.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "transaction deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")

	tx.AddCommand(listCmd, addCmd, updateCmd, deleteCmd)
	return tx
}

func newExpenseCmd(configDir *string) *cobra.Command {
	expense := &cobra.Command{Use: "expense", Short: "Future expense commands"}

	expense.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List planned future expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			expenses, err := app.ExpensesCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(expenses) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no future expenses")
				return nil
			}
			for _, e := range expenses {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t[%s] %s\tR$ %.2f\n", e.ID, e.Initials, e.Description, e.Amount)
			}
			return nil
		},
	})

	var description string
	var amount float64

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Plan a future expense",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.ExpensesCLI.Create(context.Background(), description, amount)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "planned %s (R$ %.2f)\n", out.Description, out.Amount)
			return nil
		},
	}
	addCmd.Flags().StringVar(&description, "description", "", "expense description")
	addCmd.Flags().Float64Var(&amount, "amount", 0, "expected amount")
	_ = addCmd.MarkFlagRequired("description")
	_ = addCmd.MarkFlagRequired("amount")

	updateCmd := &cobra.Command{
		Use:   "update <expense-id>",
		Short: "Rewrite a planned expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.ExpensesCLI.Update(context.Background(), args[0], description, amount)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s (R$ %.2f)\n", out.Description, out.Amount)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&description, "description", "", "expense description")
	updateCmd.Flags().Float64Var(&amount, "amount", 0, "expected amount")

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <expense-id>",
		Short: "Delete a planned expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete without --yes")
			}
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			if err := app.ExpensesCLI.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "expense deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")

	expense.AddCommand(addCmd, updateCmd, deleteCmd)
	return expense
}

func newCardCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "card",
		Short: "Show the registered card",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			card, err := app.SummaryCLI.Card(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\nexp %s  %s\n%s\n", card.Masked, card.Expiry, card.Brand, card.Holder)
			return nil
		},
	}
}

func newSummaryCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show financial health, card and monthly overview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			ctx := context.Background()
			out := cmd.OutOrStdout()

			health, err := app.SummaryCLI.Health(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "health: %.0f%% (%s)\n", health.Percent, health.Level)

			card, err := app.SummaryCLI.Card(ctx)
			if err == nil {
				_, _ = fmt.Fprintf(out, "card: %s exp %s (%s, %s)\n", card.Masked, card.Expiry, card.Holder, card.Brand)
			}

			months, err := app.SummaryCLI.Monthly(ctx)
			if err != nil {
				return err
			}
			for _, m := range months {
				_, _ = fmt.Fprintf(out, "%s\tR$ %.2f\n", m.Month, m.Amount)
			}
			return nil
		},
	}
}
