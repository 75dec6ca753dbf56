package scope

import (
	"errors"
	"gorm.io/gorm"
	"time"
)

// PublishedBefore keeps rows whose timestamp column is at or before a
// reference instant.
type PublishedBefore struct {
	column string
	at     time.Time
}

// NewPublishedBefore builds the scope for the given column. A nil instant
// captures time.Now() once here, so repeated applications of the same scope
// value always produce the same predicate.
func NewPublishedBefore(column string, at *time.Time) (*PublishedBefore, error) {
	if column == "" {
		return nil, errors.New("column is required")
	}
	ref := time.Now()
	if at != nil {
		ref = *at
	}
	return &PublishedBefore{column: column, at: ref}, nil
}

func (s *PublishedBefore) Apply(tx *gorm.DB) *gorm.DB {
	return tx.Where(s.column+" <= ?", s.at)
}
