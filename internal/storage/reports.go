package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nfarrell/tally/internal/common"
	"github.com/nfarrell/tally/internal/model"
)

// SpendingSummary returns one row per category, including categories with
// no expenses, ordered by total spent descending. Percent used is 0 when a
// category has no budget limit; the CASE guard keeps the division away
// from a zero limit entirely.
func (s *SQLiteStorage) SpendingSummary(ctx context.Context) ([]model.CategorySummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT
			c.name AS category,
			COUNT(e.id) AS transaction_count,
			COALESCE(SUM(e.amount), 0) AS total_spent,
			c.budget_limit,
			c.budget_limit - COALESCE(SUM(e.amount), 0) AS remaining_budget,
			CASE
				WHEN c.budget_limit > 0 THEN
					ROUND(COALESCE(SUM(e.amount), 0) * 100.0 / c.budget_limit, 2)
				ELSE 0
			END AS percent_used
		FROM categories c
		LEFT JOIN expenses e ON c.id = e.category_id
		GROUP BY c.id, c.name, c.budget_limit
		ORDER BY total_spent DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query spending summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summary []model.CategorySummary
	for rows.Next() {
		var row model.CategorySummary
		if err := rows.Scan(
			&row.Category,
			&row.TransactionCount,
			&row.TotalSpent,
			&row.BudgetLimit,
			&row.RemainingBudget,
			&row.PercentUsed,
		); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		summary = append(summary, row)
	}

	return summary, rows.Err()
}

// MonthlySpending groups expenses of one calendar month by category,
// ordered by total descending. The month is matched on the string form of
// the date column: 4-digit year and zero-padded 2-digit month.
func (s *SQLiteStorage) MonthlySpending(ctx context.Context, year, month int) ([]model.MonthlySpending, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT
			c.name AS category,
			SUM(e.amount) AS monthly_total,
			COUNT(e.id) AS transaction_count
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		WHERE strftime('%Y', e.date) = ?
		  AND strftime('%m', e.date) = ?
		GROUP BY c.id, c.name
		ORDER BY monthly_total DESC`

	rows, err := s.db.QueryContext(ctx, query, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month))
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly spending: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var report []model.MonthlySpending
	for rows.Next() {
		var row model.MonthlySpending
		if err := rows.Scan(&row.Category, &row.Total, &row.TransactionCount); err != nil {
			return nil, fmt.Errorf("failed to scan monthly row: %w", err)
		}
		report = append(report, row)
	}

	return report, rows.Err()
}

// TotalSpending returns the sum of all expense amounts; exactly 0 when no
// expenses exist.
func (s *SQLiteStorage) TotalSpending(ctx context.Context) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var total float64
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to query total spending: %w", err)
	}

	return total, nil
}

// BudgetUsage returns the budget limit and running spend for one category.
// Returns common.ErrNotFound for an unknown category id.
func (s *SQLiteStorage) BudgetUsage(ctx context.Context, categoryID int) (*model.BudgetStatus, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT c.name, c.budget_limit, COALESCE(SUM(e.amount), 0) AS spent
		FROM categories c
		LEFT JOIN expenses e ON c.id = e.category_id
		WHERE c.id = ?
		GROUP BY c.id`

	var status model.BudgetStatus
	err := s.db.QueryRowContext(ctx, query, categoryID).Scan(&status.Category, &status.Limit, &status.Spent)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: category %d", common.ErrNotFound, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query budget usage: %w", err)
	}

	return &status, nil
}
