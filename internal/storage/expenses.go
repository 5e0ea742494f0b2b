package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nfarrell/tally/internal/common"
	"github.com/nfarrell/tally/internal/model"
)

// DefaultListLimit caps expense listings when the caller does not ask for
// a specific limit.
const DefaultListLimit = 50

// expenseColumns is the fixed projection every expense query returns, so
// each row scans into exactly one shape.
const expenseColumns = `
	e.id, e.amount, c.name AS category, e.category_id,
	e.description, e.date, e.created_at`

// InsertExpense persists a new expense inside its own transaction and
// fills in the system-assigned ID and CreatedAt on success. Referential
// and value validation belongs to the ledger service; the schema CHECK and
// foreign key act only as a last line of defense.
func (s *SQLiteStorage) InsertExpense(ctx context.Context, exp *model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if exp == nil {
		return fmt.Errorf("%w: expense", ErrNilParameter)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO expenses (amount, category_id, description, date, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, exp.Amount, exp.CategoryID, exp.Description, exp.Date, now)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get expense ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit expense: %w", err)
	}

	exp.ID = id
	exp.CreatedAt = now

	slog.Debug("inserted expense", "id", id, "amount", exp.Amount, "category_id", exp.CategoryID)
	return nil
}

// UpdateExpense overwrites only the fields present in upd, leaving every
// other column untouched. Returns common.ErrNotFound when no row has the
// given id and common.ErrEmptyUpdate when upd carries nothing.
func (s *SQLiteStorage) UpdateExpense(ctx context.Context, id int64, upd model.ExpenseUpdate) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}
	if upd.IsZero() {
		return common.ErrEmptyUpdate
	}

	var sets []string
	var args []any
	if upd.Amount != nil {
		sets = append(sets, "amount = ?")
		args = append(args, *upd.Amount)
	}
	if upd.CategoryID != nil {
		sets = append(sets, "category_id = ?")
		args = append(args, *upd.CategoryID)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *upd.Date)
	}
	args = append(args, id)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf("UPDATE expenses SET %s WHERE id = ?", strings.Join(sets, ", "))
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: expense %d", common.ErrNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit update: %w", err)
	}

	slog.Debug("updated expense", "id", id)
	return nil
}

// DeleteExpense hard-deletes the expense with the given id. Returns
// common.ErrNotFound when no such row exists.
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: expense %d", common.ErrNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	slog.Debug("deleted expense", "id", id)
	return nil
}

// ListExpenses returns the most recent expenses joined with their category
// name, newest date first; rows on the same date come back most recently
// inserted first. A non-positive limit falls back to DefaultListLimit.
func (s *SQLiteStorage) ListExpenses(ctx context.Context, limit int) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		ORDER BY e.date DESC, e.created_at DESC, e.id DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// ExpensesByCategory returns all expenses in one category, newest date
// first.
func (s *SQLiteStorage) ExpensesByCategory(ctx context.Context, categoryID int) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		WHERE e.category_id = ?
		ORDER BY e.date DESC, e.created_at DESC, e.id DESC`

	rows, err := s.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses by category: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// ExpensesByDateRange returns expenses dated within [start, end]
// inclusive. Dates compare lexically on their 'YYYY-MM-DD' form, so a
// malformed bound silently matches nothing rather than erroring.
func (s *SQLiteStorage) ExpensesByDateRange(ctx context.Context, start, end string) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		WHERE e.date BETWEEN ? AND ?
		ORDER BY e.date DESC, e.created_at DESC, e.id DESC`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses by date range: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// ExpensesByDescription returns expenses whose description contains the
// keyword, matched case-insensitively, newest date first.
func (s *SQLiteStorage) ExpensesByDescription(ctx context.Context, keyword string) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(keyword, "keyword"); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		WHERE e.description LIKE ?
		ORDER BY e.date DESC, e.created_at DESC, e.id DESC`

	rows, err := s.db.QueryContext(ctx, query, "%"+keyword+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses by description: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// scanExpenses reads joined expense rows into their fixed struct shape.
func scanExpenses(rows *sql.Rows) ([]model.Expense, error) {
	var expenses []model.Expense
	for rows.Next() {
		var exp model.Expense
		var description sql.NullString
		if err := rows.Scan(
			&exp.ID,
			&exp.Amount,
			&exp.Category,
			&exp.CategoryID,
			&description,
			&exp.Date,
			&exp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if description.Valid {
			exp.Description = description.String
		}
		expenses = append(expenses, exp)
	}

	return expenses, rows.Err()
}
