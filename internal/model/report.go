// Package model defines the core data types shared across the application.
package model

// CategorySummary is one row of the per-category spending summary.
// Categories without expenses appear with zero totals and a remaining
// budget equal to their limit.
type CategorySummary struct {
	Category         string
	TotalSpent       float64
	BudgetLimit      float64
	RemainingBudget  float64
	PercentUsed      float64
	TransactionCount int
}

// MonthlySpending is one row of the monthly report: what a category
// accumulated within a single calendar month.
type MonthlySpending struct {
	Category         string
	Total            float64
	TransactionCount int
}
