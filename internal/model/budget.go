package model

// BudgetLevel classifies how far a category's spending has progressed
// against its budget limit.
type BudgetLevel string

const (
	// BudgetOK means spending is comfortably within the limit, or no
	// limit is set for the category.
	BudgetOK BudgetLevel = "ok"
	// BudgetNear means spending passed 90% of the limit but not the
	// limit itself.
	BudgetNear BudgetLevel = "near"
	// BudgetOver means spending exceeded the limit.
	BudgetOver BudgetLevel = "over"
)

// BudgetStatus is the advisory result of a budget check for one category.
// It never blocks or reverses the write that triggered it.
type BudgetStatus struct {
	Category string
	Limit    float64
	Spent    float64
}

// Level derives the advisory level. A zero limit means no budget is set,
// which always reads as BudgetOK regardless of spending.
func (b BudgetStatus) Level() BudgetLevel {
	switch {
	case b.Limit <= 0:
		return BudgetOK
	case b.Spent > b.Limit:
		return BudgetOver
	case b.Spent > b.Limit*0.9:
		return BudgetNear
	default:
		return BudgetOK
	}
}
