// Package report renders a plain-text spending report from ledger data.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nfarrell/tally/internal/model"
)

// recentLimit is how many of the latest expenses the report includes.
const recentLimit = 20

// Source is the slice of the ledger the report reads from.
type Source interface {
	TotalSpending(ctx context.Context) (float64, error)
	SpendingSummary(ctx context.Context) ([]model.CategorySummary, error)
	ListExpenses(ctx context.Context, limit int) ([]model.Expense, error)
}

// Write renders the full report: grand total, the per-category budget
// summary, and the most recent expenses.
func Write(ctx context.Context, src Source, w io.Writer) error {
	rule := strings.Repeat("=", 50)
	thin := strings.Repeat("-", 50)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "EXPENSE TRACKER REPORT")
	fmt.Fprintf(w, "Generated: %s\n", time.Now().Format(time.RFC1123))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	total, err := src.TotalSpending(ctx)
	if err != nil {
		return fmt.Errorf("failed to get total spending: %w", err)
	}
	fmt.Fprintf(w, "TOTAL SPENDING: $%.2f\n\n", total)

	fmt.Fprintln(w, "SPENDING SUMMARY BY CATEGORY:")
	fmt.Fprintln(w, thin)
	summary, err := src.SpendingSummary(ctx)
	if err != nil {
		return fmt.Errorf("failed to get spending summary: %w", err)
	}
	for _, row := range summary {
		fmt.Fprintf(w, "%s:\n", row.Category)
		fmt.Fprintf(w, "  Transactions: %d\n", row.TransactionCount)
		fmt.Fprintf(w, "  Total Spent: $%.2f\n", row.TotalSpent)
		if row.BudgetLimit > 0 {
			fmt.Fprintf(w, "  Budget Limit: $%.2f\n", row.BudgetLimit)
			fmt.Fprintf(w, "  Remaining: $%.2f\n", row.RemainingBudget)
			fmt.Fprintf(w, "  Percent Used: %.2f%%\n", row.PercentUsed)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nRECENT EXPENSES (last %d):\n", recentLimit)
	fmt.Fprintln(w, thin)
	expenses, err := src.ListExpenses(ctx, recentLimit)
	if err != nil {
		return fmt.Errorf("failed to get recent expenses: %w", err)
	}
	for _, exp := range expenses {
		fmt.Fprintf(w, "[%d] %s - %s\n", exp.ID, exp.Date, exp.Category)
		fmt.Fprintf(w, "  Amount: $%.2f\n", exp.Amount)
		if exp.Description != "" {
			fmt.Fprintf(w, "  Description: %s\n", exp.Description)
		}
		fmt.Fprintln(w)
	}

	return nil
}
