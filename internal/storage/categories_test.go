package storage

import (
	"context"
	"testing"
)

func TestGetCategory(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	cat, err := store.GetCategory(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to get category: %v", err)
	}
	if cat == nil {
		t.Fatal("Expected seeded category 1")
	}
	if cat.Name != "Food" {
		t.Errorf("Expected category 1 to be Food, got %q", cat.Name)
	}

	missing, err := store.GetCategory(ctx, 9999)
	if err != nil {
		t.Fatalf("Unexpected error for unknown category: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown category, got %+v", missing)
	}
}

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string // expected category name; empty means no match
	}{
		{name: "exact name", fragment: "Food", want: "Food"},
		{name: "case insensitive", fragment: "food", want: "Food"},
		{name: "substring", fragment: "tertain", want: "Entertainment"},
		// "ation" matches Transportation (2) and Education (7); the
		// lowest id wins.
		{name: "ambiguous fragment takes lowest id", fragment: "ation", want: "Transportation"},
		{name: "no match", fragment: "rocketry", want: ""},
	}

	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := store.ResolveCategory(ctx, tt.fragment)
			if err != nil {
				t.Fatalf("Failed to resolve category: %v", err)
			}
			if tt.want == "" {
				if cat != nil {
					t.Errorf("Expected no match, got %q", cat.Name)
				}
				return
			}
			if cat == nil {
				t.Fatalf("Expected match %q, got none", tt.want)
			}
			if cat.Name != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, cat.Name)
			}
		})
	}
}

func TestListCategories_RunningTotals(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	insertTestExpense(t, store, 30, 1, "", "2025-06-01")
	insertTestExpense(t, store, 20, 1, "", "2025-06-02")
	insertTestExpense(t, store, 15, 4, "", "2025-06-02")

	categories, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("Failed to list categories: %v", err)
	}

	totals := make(map[string]float64, len(categories))
	for i, cat := range categories {
		totals[cat.Name] = cat.TotalSpent
		if i > 0 && categories[i-1].ID > cat.ID {
			t.Error("Expected categories ordered by id ascending")
		}
	}

	if totals["Food"] != 50 {
		t.Errorf("Expected Food total 50, got %v", totals["Food"])
	}
	if totals["Utilities"] != 15 {
		t.Errorf("Expected Utilities total 15, got %v", totals["Utilities"])
	}
	if totals["Shopping"] != 0 {
		t.Errorf("Expected zero total for untouched category, got %v", totals["Shopping"])
	}
}

func TestListCategories_Idempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	insertTestExpense(t, store, 10, 1, "", "2025-06-01")

	first, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("First listing failed: %v", err)
	}
	second, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("Second listing failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Listings differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Row %d differs between listings: %+v vs %+v", i, first[i], second[i])
		}
	}
}
