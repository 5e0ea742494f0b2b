package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nfarrell/tally/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	summaryErr error
	summary    []model.CategorySummary
	expenses   []model.Expense
	total      float64
}

func (f *fakeSource) TotalSpending(_ context.Context) (float64, error) {
	return f.total, nil
}

func (f *fakeSource) SpendingSummary(_ context.Context) ([]model.CategorySummary, error) {
	return f.summary, f.summaryErr
}

func (f *fakeSource) ListExpenses(_ context.Context, _ int) ([]model.Expense, error) {
	return f.expenses, nil
}

func TestWrite(t *testing.T) {
	src := &fakeSource{
		total: 275.50,
		summary: []model.CategorySummary{
			{Category: "Food", TransactionCount: 3, TotalSpent: 250, BudgetLimit: 500, RemainingBudget: 250, PercentUsed: 50},
			{Category: "Unbudgeted", TransactionCount: 1, TotalSpent: 25.50},
		},
		expenses: []model.Expense{
			{ID: 7, Date: "2025-06-02", Category: "Food", Amount: 100, Description: "dinner", CreatedAt: time.Now()},
			{ID: 3, Date: "2025-06-01", Category: "Food", Amount: 150, CreatedAt: time.Now()},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(context.Background(), src, &buf))

	out := buf.String()
	assert.Contains(t, out, "EXPENSE TRACKER REPORT")
	assert.Contains(t, out, "TOTAL SPENDING: $275.50")
	assert.Contains(t, out, "Food:")
	assert.Contains(t, out, "Budget Limit: $500.00")
	assert.Contains(t, out, "Percent Used: 50.00%")
	assert.Contains(t, out, "[7] 2025-06-02 - Food")
	assert.Contains(t, out, "Description: dinner")

	// Categories without a budget limit get no budget lines.
	assert.NotContains(t, out, "Budget Limit: $0.00")
}

func TestWrite_PropagatesSourceErrors(t *testing.T) {
	src := &fakeSource{summaryErr: errors.New("disk gone")}

	var buf bytes.Buffer
	err := Write(context.Background(), src, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spending summary")
}
