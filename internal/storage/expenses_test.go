package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/nfarrell/tally/internal/common"
	"github.com/nfarrell/tally/internal/model"
)

func TestInsertExpense_AssignsIDAndCreatedAt(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	exp := insertTestExpense(t, store, 42.50, 1, "groceries", "2025-06-01")

	if exp.ID == 0 {
		t.Error("Expected a system-assigned id")
	}
	if exp.CreatedAt.IsZero() {
		t.Error("Expected a system-assigned creation time")
	}

	second := insertTestExpense(t, store, 10, 1, "", "2025-06-01")
	if second.ID <= exp.ID {
		t.Errorf("Expected monotonically increasing ids, got %d then %d", exp.ID, second.ID)
	}
}

func TestListExpenses_OrderingAndTieBreak(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	old := insertTestExpense(t, store, 5, 1, "older day", "2025-05-30")
	first := insertTestExpense(t, store, 10, 1, "first of the day", "2025-06-01")
	second := insertTestExpense(t, store, 20, 2, "second of the day", "2025-06-01")

	expenses, err := store.ListExpenses(ctx, 0)
	if err != nil {
		t.Fatalf("Failed to list expenses: %v", err)
	}
	if len(expenses) != 3 {
		t.Fatalf("Expected 3 expenses, got %d", len(expenses))
	}

	// Newest date first; same-date rows most recently inserted first.
	wantOrder := []int64{second.ID, first.ID, old.ID}
	for i, want := range wantOrder {
		if expenses[i].ID != want {
			t.Errorf("Position %d: expected expense %d, got %d", i, want, expenses[i].ID)
		}
	}
}

func TestListExpenses_LimitAndDefault(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		insertTestExpense(t, store, 1, 1, "", "2025-06-01")
	}

	expenses, err := store.ListExpenses(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to list expenses: %v", err)
	}
	if len(expenses) != 2 {
		t.Errorf("Expected limit of 2 to apply, got %d rows", len(expenses))
	}

	expenses, err = store.ListExpenses(ctx, 0)
	if err != nil {
		t.Fatalf("Failed to list expenses: %v", err)
	}
	if len(expenses) != 5 {
		t.Errorf("Expected default limit to return all 5 rows, got %d", len(expenses))
	}
}

func TestListExpenses_ResolvesCategoryName(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	insertTestExpense(t, store, 12.30, 1, "lunch", "2025-06-01")

	expenses, err := store.ListExpenses(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to list expenses: %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("Expected 1 expense, got %d", len(expenses))
	}

	got := expenses[0]
	if got.Category != "Food" {
		t.Errorf("Expected category name %q, got %q", "Food", got.Category)
	}
	if got.Amount != 12.30 {
		t.Errorf("Expected amount 12.30, got %v", got.Amount)
	}
	if got.Description != "lunch" {
		t.Errorf("Expected description %q, got %q", "lunch", got.Description)
	}
	if got.Date != "2025-06-01" {
		t.Errorf("Expected date %q, got %q", "2025-06-01", got.Date)
	}
}

func TestUpdateExpense(t *testing.T) {
	ptrF := func(f float64) *float64 { return &f }
	ptrI := func(i int) *int { return &i }
	ptrS := func(s string) *string { return &s }

	tests := []struct {
		upd      model.ExpenseUpdate
		validate func(*testing.T, model.Expense)
		wantErr  error
		name     string
	}{
		{
			name: "update amount only",
			upd:  model.ExpenseUpdate{Amount: ptrF(99.99)},
			validate: func(t *testing.T, exp model.Expense) {
				t.Helper()
				if exp.Amount != 99.99 {
					t.Errorf("Expected amount 99.99, got %v", exp.Amount)
				}
				if exp.Description != "original" {
					t.Errorf("Description changed unexpectedly: %q", exp.Description)
				}
				if exp.Date != "2025-06-01" {
					t.Errorf("Date changed unexpectedly: %q", exp.Date)
				}
			},
		},
		{
			name: "update category and date",
			upd:  model.ExpenseUpdate{CategoryID: ptrI(3), Date: ptrS("2025-06-15")},
			validate: func(t *testing.T, exp model.Expense) {
				t.Helper()
				if exp.CategoryID != 3 {
					t.Errorf("Expected category 3, got %d", exp.CategoryID)
				}
				if exp.Date != "2025-06-15" {
					t.Errorf("Expected date 2025-06-15, got %q", exp.Date)
				}
				if exp.Amount != 50 {
					t.Errorf("Amount changed unexpectedly: %v", exp.Amount)
				}
			},
		},
		{
			name: "clear description with present empty field",
			upd:  model.ExpenseUpdate{Description: ptrS("")},
			validate: func(t *testing.T, exp model.Expense) {
				t.Helper()
				if exp.Description != "" {
					t.Errorf("Expected cleared description, got %q", exp.Description)
				}
			},
		},
		{
			name:    "empty update",
			upd:     model.ExpenseUpdate{},
			wantErr: common.ErrEmptyUpdate,
			validate: func(t *testing.T, exp model.Expense) {
				t.Helper()
				if exp.Amount != 50 || exp.Description != "original" {
					t.Error("Row changed despite empty update")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cleanup := createTestStorage(t)
			defer cleanup()
			ctx := context.Background()

			exp := insertTestExpense(t, store, 50, 1, "original", "2025-06-01")

			err := store.UpdateExpense(ctx, exp.ID, tt.upd)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("Update failed: %v", err)
			}

			expenses, err := store.ListExpenses(ctx, 1)
			if err != nil {
				t.Fatalf("Failed to read back: %v", err)
			}
			if len(expenses) != 1 {
				t.Fatalf("Expected 1 expense, got %d", len(expenses))
			}
			tt.validate(t, expenses[0])
		})
	}
}

func TestUpdateExpense_NotFound(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	amount := 10.0
	err := store.UpdateExpense(ctx, 12345, model.ExpenseUpdate{Amount: &amount})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteExpense(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	exp := insertTestExpense(t, store, 25, 2, "bus pass", "2025-06-01")

	if err := store.DeleteExpense(ctx, exp.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	expenses, err := store.ListExpenses(ctx, 0)
	if err != nil {
		t.Fatalf("Failed to list expenses: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("Expected no expenses after delete, got %d", len(expenses))
	}

	if err := store.DeleteExpense(ctx, exp.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestExpensesByCategory(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	insertTestExpense(t, store, 10, 1, "", "2025-06-01")
	insertTestExpense(t, store, 20, 2, "", "2025-06-02")
	insertTestExpense(t, store, 30, 1, "", "2025-06-03")

	expenses, err := store.ExpensesByCategory(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to query by category: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("Expected 2 expenses in category 1, got %d", len(expenses))
	}
	if expenses[0].Date != "2025-06-03" {
		t.Errorf("Expected newest first, got %q", expenses[0].Date)
	}

	empty, err := store.ExpensesByCategory(ctx, 9999)
	if err != nil {
		t.Fatalf("Failed to query unknown category: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty result for unknown category, got %d rows", len(empty))
	}
}

func TestExpensesByDateRange(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	insertTestExpense(t, store, 10, 1, "", "2025-05-31")
	insertTestExpense(t, store, 20, 1, "", "2025-06-01")
	insertTestExpense(t, store, 30, 1, "", "2025-06-02")

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "inclusive range", start: "2025-05-31", end: "2025-06-02", want: 3},
		{name: "start equals end", start: "2025-06-01", end: "2025-06-01", want: 1},
		{name: "no overlap", start: "2025-07-01", end: "2025-07-31", want: 0},
		{name: "malformed bound matches nothing", start: "junk", end: "more junk", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expenses, err := store.ExpensesByDateRange(ctx, tt.start, tt.end)
			if err != nil {
				t.Fatalf("Failed to filter by range: %v", err)
			}
			if len(expenses) != tt.want {
				t.Errorf("Expected %d expenses, got %d", tt.want, len(expenses))
			}
		})
	}
}

func TestExpensesByDescription(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	insertTestExpense(t, store, 10, 1, "Weekly Groceries", "2025-06-01")
	insertTestExpense(t, store, 20, 1, "dinner out", "2025-06-02")

	expenses, err := store.ExpensesByDescription(ctx, "groceries")
	if err != nil {
		t.Fatalf("Failed to search descriptions: %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("Expected case-insensitive substring match to find 1 row, got %d", len(expenses))
	}
	if expenses[0].Description != "Weekly Groceries" {
		t.Errorf("Matched wrong row: %q", expenses[0].Description)
	}
}
