package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nfarrell/tally/internal/model"
)

// ListCategories returns every category with its running total spent
// (0 when it has no expenses), ordered by id ascending.
func (s *SQLiteStorage) ListCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT c.id, c.name, c.budget_limit, COALESCE(SUM(e.amount), 0) AS total_spent
		FROM categories c
		LEFT JOIN expenses e ON c.id = e.category_id
		GROUP BY c.id
		ORDER BY c.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.BudgetLimit, &cat.TotalSpent); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// GetCategory returns the category with the given id, or nil when no such
// category exists.
func (s *SQLiteStorage) GetCategory(ctx context.Context, id int) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, budget_limit
		FROM categories
		WHERE id = ?`

	var cat model.Category
	err := s.db.QueryRowContext(ctx, query, id).Scan(&cat.ID, &cat.Name, &cat.BudgetLimit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // category not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &cat, nil
}

// ResolveCategory finds a category by case-insensitive substring match on
// its name. When several categories match, the one with the lowest id wins;
// the tie-break is deliberate so name resolution stays deterministic.
// Returns nil when nothing matches.
func (s *SQLiteStorage) ResolveCategory(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, budget_limit
		FROM categories
		WHERE name LIKE ?
		ORDER BY id
		LIMIT 1`

	var cat model.Category
	err := s.db.QueryRowContext(ctx, query, "%"+name+"%").Scan(&cat.ID, &cat.Name, &cat.BudgetLimit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // no category matches
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	return &cat, nil
}
