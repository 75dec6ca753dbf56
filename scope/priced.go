package scope

import (
	"errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PricedAtMost keeps rows whose price column is set and does not exceed a
// captured maximum. Free rows (NULL price) are excluded.
type PricedAtMost struct {
	column string
	max    decimal.Decimal
}

func NewPricedAtMost(column string, max decimal.Decimal) (*PricedAtMost, error) {
	if column == "" {
		return nil, errors.New("column is required")
	}
	if max.IsNegative() {
		return nil, errors.New("max price cannot be negative")
	}
	return &PricedAtMost{column: column, max: max}, nil
}

func (s *PricedAtMost) Apply(tx *gorm.DB) *gorm.DB {
	return tx.Where(s.column+" IS NOT NULL AND "+s.column+" <= ?", s.max)
}
