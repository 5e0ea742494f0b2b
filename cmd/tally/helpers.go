package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nfarrell/tally/internal/config"
	"github.com/nfarrell/tally/internal/ledger"
	"github.com/nfarrell/tally/internal/model"
	"github.com/nfarrell/tally/internal/storage"
	"github.com/spf13/viper"
)

// initLedger opens the store, runs migrations (creating the schema and
// seeding default categories on first use), and builds the service. The
// caller owns closing the returned store.
func initLedger(ctx context.Context) (*ledger.Service, *storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/tally/tally.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return ledger.New(store), store, nil
}

// renderExpenses prints expenses as a table with a trailing total line.
func renderExpenses(w io.Writer, expenses []model.Expense) {
	if len(expenses) == 0 {
		fmt.Fprintln(w, subtleStyle.Render("No expenses found."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("ID"),
		headerStyle.Render("Date"),
		headerStyle.Render("Category"),
		headerStyle.Render("Amount"),
		headerStyle.Render("Description"))

	var total float64
	for _, exp := range expenses {
		fmt.Fprintf(tw, "%d\t%s\t%s\t$%.2f\t%s\n",
			exp.ID, exp.Date, exp.Category, exp.Amount, exp.Description)
		total += exp.Amount
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "TOTAL: $%.2f (%d transactions)\n", total, len(expenses))
}

// renderBudgetStatus prints the advisory warning after an insert, if any.
func renderBudgetStatus(w io.Writer, status *model.BudgetStatus) {
	if status == nil {
		return
	}
	switch status.Level() {
	case model.BudgetOver:
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf(
			"Warning: budget exceeded for %s (budget $%.2f, spent $%.2f)",
			status.Category, status.Limit, status.Spent)))
	case model.BudgetNear:
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf(
			"Warning: close to the budget for %s (budget $%.2f, spent $%.2f)",
			status.Category, status.Limit, status.Spent)))
	case model.BudgetOK:
	}
}
