// Package ledger implements the expense ledger service: the
// invariant-preserving operations over categories and expenses that the
// schema alone cannot guarantee, plus the aggregate reports derived from
// them.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfarrell/tally/internal/common"
	"github.com/nfarrell/tally/internal/model"
)

// Store is the persistence surface the service depends on. SQLiteStorage
// satisfies it.
type Store interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id int) (*model.Category, error)
	ResolveCategory(ctx context.Context, name string) (*model.Category, error)
	InsertExpense(ctx context.Context, exp *model.Expense) error
	UpdateExpense(ctx context.Context, id int64, upd model.ExpenseUpdate) error
	DeleteExpense(ctx context.Context, id int64) error
	ListExpenses(ctx context.Context, limit int) ([]model.Expense, error)
	ExpensesByCategory(ctx context.Context, categoryID int) ([]model.Expense, error)
	ExpensesByDateRange(ctx context.Context, start, end string) ([]model.Expense, error)
	ExpensesByDescription(ctx context.Context, keyword string) ([]model.Expense, error)
	SpendingSummary(ctx context.Context) ([]model.CategorySummary, error)
	MonthlySpending(ctx context.Context, year, month int) ([]model.MonthlySpending, error)
	TotalSpending(ctx context.Context) (float64, error)
	BudgetUsage(ctx context.Context, categoryID int) (*model.BudgetStatus, error)
}

// Service exposes the ledger operations. It holds no cached state; every
// operation re-reads from the store.
type Service struct {
	store Store
	now   func() time.Time
}

// New creates a ledger service on top of a store.
func New(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// AddExpense validates and records a new expense. An empty date defaults
// to the current calendar date. On success it returns the advisory budget
// status for the expense's category; the budget check is read-only and a
// failure there is logged, not surfaced, and never reverses the insert.
func (s *Service) AddExpense(ctx context.Context, amount float64, categoryID int, description, date string) (*model.BudgetStatus, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	if date == "" {
		date = s.now().Format(DateLayout)
	} else if err := ValidateDate(date); err != nil {
		return nil, err
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if !CategoryExists(categories, categoryID) {
		return nil, fmt.Errorf("%w: id %d", common.ErrCategoryNotFound, categoryID)
	}

	exp := &model.Expense{
		Amount:      amount,
		CategoryID:  categoryID,
		Description: description,
		Date:        date,
	}
	if err := s.store.InsertExpense(ctx, exp); err != nil {
		return nil, err
	}

	status, err := s.store.BudgetUsage(ctx, categoryID)
	if err != nil {
		slog.Warn("budget check failed after insert", "category_id", categoryID, "error", err)
		return nil, nil
	}

	return status, nil
}

// UpdateExpense applies the present fields of upd to the expense with the
// given id. Every present field is validated with the same rules as
// creation before any write; an all-absent update fails with
// common.ErrEmptyUpdate, and an unknown id with common.ErrNotFound.
func (s *Service) UpdateExpense(ctx context.Context, id int64, upd model.ExpenseUpdate) error {
	if upd.IsZero() {
		return common.ErrEmptyUpdate
	}

	if upd.Amount != nil {
		if err := ValidateAmount(*upd.Amount); err != nil {
			return err
		}
	}
	if upd.Date != nil {
		if err := ValidateDate(*upd.Date); err != nil {
			return err
		}
	}
	if upd.CategoryID != nil {
		categories, err := s.store.ListCategories(ctx)
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		if !CategoryExists(categories, *upd.CategoryID) {
			return fmt.Errorf("%w: id %d", common.ErrCategoryNotFound, *upd.CategoryID)
		}
	}

	return s.store.UpdateExpense(ctx, id, upd)
}

// DeleteExpense removes the expense with the given id; common.ErrNotFound
// when it does not exist.
func (s *Service) DeleteExpense(ctx context.Context, id int64) error {
	return s.store.DeleteExpense(ctx, id)
}

// ListExpenses returns the most recent expenses with resolved category
// names. A non-positive limit means the default of 50.
func (s *Service) ListExpenses(ctx context.Context, limit int) ([]model.Expense, error) {
	return s.store.ListExpenses(ctx, limit)
}

// SearchByCategoryID returns all expenses recorded against a category id.
// An id that matches nothing simply yields an empty result.
func (s *Service) SearchByCategoryID(ctx context.Context, categoryID int) ([]model.Expense, error) {
	return s.store.ExpensesByCategory(ctx, categoryID)
}

// SearchByCategoryName resolves name to a category by case-insensitive
// substring match (lowest id wins on ambiguity) and returns that
// category's expenses. common.ErrCategoryNotFound when nothing matches.
func (s *Service) SearchByCategoryName(ctx context.Context, name string) ([]model.Expense, error) {
	cat, err := s.store.ResolveCategory(ctx, name)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: %q", common.ErrCategoryNotFound, name)
	}
	return s.store.ExpensesByCategory(ctx, cat.ID)
}

// FilterByDateRange returns expenses dated within [start, end] inclusive.
func (s *Service) FilterByDateRange(ctx context.Context, start, end string) ([]model.Expense, error) {
	return s.store.ExpensesByDateRange(ctx, start, end)
}

// SearchByDescription returns expenses whose description contains keyword.
func (s *Service) SearchByDescription(ctx context.Context, keyword string) ([]model.Expense, error) {
	return s.store.ExpensesByDescription(ctx, keyword)
}

// SpendingSummary returns the per-category budget report, biggest spender
// first.
func (s *Service) SpendingSummary(ctx context.Context) ([]model.CategorySummary, error) {
	return s.store.SpendingSummary(ctx)
}

// MonthlySpending returns per-category totals for one calendar month.
// Zero year or month values default to the current ones.
func (s *Service) MonthlySpending(ctx context.Context, year, month int) ([]model.MonthlySpending, error) {
	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return s.store.MonthlySpending(ctx, year, month)
}

// TotalSpending returns the sum over all expenses, 0 when there are none.
func (s *Service) TotalSpending(ctx context.Context) (float64, error) {
	return s.store.TotalSpending(ctx)
}

// CheckBudget reports the advisory budget status for a category.
func (s *Service) CheckBudget(ctx context.Context, categoryID int) (*model.BudgetStatus, error) {
	return s.store.BudgetUsage(ctx, categoryID)
}

// ListCategories returns every category with its running total spent.
func (s *Service) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.store.ListCategories(ctx)
}
