package ledger

import (
	"testing"

	"github.com/nfarrell/tally/internal/common"
	"github.com/nfarrell/tally/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(0.01))
	assert.NoError(t, ValidateAmount(1000))
	assert.ErrorIs(t, ValidateAmount(0), common.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateAmount(-3.50), common.ErrInvalidAmount)
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2025-06-01"))
	assert.ErrorIs(t, ValidateDate("01-06-2025"), common.ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("2025-6-1"), common.ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("yesterday"), common.ErrInvalidDate)
}

func TestCategoryExists(t *testing.T) {
	categories := []model.Category{
		{ID: 1, Name: "Food"},
		{ID: 2, Name: "Transportation"},
	}

	assert.True(t, CategoryExists(categories, 1))
	assert.True(t, CategoryExists(categories, 2))
	assert.False(t, CategoryExists(categories, 3))
	assert.False(t, CategoryExists(nil, 1))
}
