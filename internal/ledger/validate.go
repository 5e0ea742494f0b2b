package ledger

import (
	"fmt"
	"time"

	"github.com/nfarrell/tally/internal/common"
	"github.com/nfarrell/tally/internal/model"
)

// DateLayout is the canonical calendar date form used throughout the
// ledger.
const DateLayout = "2006-01-02"

// ValidateAmount rejects non-positive amounts before any write happens.
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: got %.2f", common.ErrInvalidAmount, amount)
	}
	return nil
}

// ValidateDate checks the 'YYYY-MM-DD' shape of a supplied date. Nothing
// beyond the format is verified.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", common.ErrInvalidDate, date)
	}
	return nil
}

// CategoryExists reports whether id refers to a category in the given set.
// Both the insert and update paths run their referential check through
// this one function.
func CategoryExists(categories []model.Category, id int) bool {
	for _, cat := range categories {
		if cat.ID == id {
			return true
		}
	}
	return false
}
