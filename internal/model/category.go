package model

// Category is a fixed budget bucket that expenses are classified into.
// The category set is seeded when the database is first created; there is
// no runtime operation that adds or removes categories.
type Category struct {
	Name        string
	BudgetLimit float64
	TotalSpent  float64
	ID          int
}
