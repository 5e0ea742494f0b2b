package model

import "time"

// Expense is a single monetary transaction tied to exactly one category.
// Date is the canonical 'YYYY-MM-DD' string form; it is compared lexically
// everywhere, so no time zone or calendar arithmetic applies to it.
type Expense struct {
	CreatedAt   time.Time
	Date        string
	Description string
	Category    string // category name, resolved on query results
	Amount      float64
	ID          int64
	CategoryID  int
}

// ExpenseUpdate describes a partial update to an expense. A nil field is
// left unchanged; a non-nil field overwrites the stored value, so a present
// empty Description clears the description.
type ExpenseUpdate struct {
	Amount      *float64
	CategoryID  *int
	Description *string
	Date        *string
}

// IsZero reports whether the update carries no fields at all.
func (u ExpenseUpdate) IsZero() bool {
	return u.Amount == nil && u.CategoryID == nil && u.Description == nil && u.Date == nil
}
