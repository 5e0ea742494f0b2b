package model

import "testing"

func TestBudgetStatus_Level(t *testing.T) {
	tests := []struct {
		name  string
		want  BudgetLevel
		limit float64
		spent float64
	}{
		{name: "well under limit", limit: 100, spent: 50, want: BudgetOK},
		{name: "exactly at 90 percent", limit: 100, spent: 90, want: BudgetOK},
		{name: "just past 90 percent", limit: 100, spent: 90.01, want: BudgetNear},
		{name: "exactly at limit", limit: 100, spent: 100, want: BudgetNear},
		{name: "past limit", limit: 100, spent: 100.01, want: BudgetOver},
		{name: "unset limit with heavy spending", limit: 0, spent: 100000, want: BudgetOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := BudgetStatus{Limit: tt.limit, Spent: tt.spent}
			if got := status.Level(); got != tt.want {
				t.Errorf("Level() with limit %v spent %v = %v, want %v", tt.limit, tt.spent, got, tt.want)
			}
		})
	}
}
