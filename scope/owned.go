package scope

import (
	"errors"
	"gorm.io/gorm"
)

// OwnedBy keeps rows whose owner column matches a captured identifier. The
// same scope value works against any table exposing the column, e.g. both
// posts and comments carry author_id.
type OwnedBy struct {
	column  string
	ownerID uint
}

func NewOwnedBy(column string, ownerID uint) (*OwnedBy, error) {
	if column == "" {
		return nil, errors.New("column is required")
	}
	if ownerID == 0 {
		return nil, errors.New("owner id is required")
	}
	return &OwnedBy{column: column, ownerID: ownerID}, nil
}

func (s *OwnedBy) Apply(tx *gorm.DB) *gorm.DB {
	return tx.Where(s.column+" = ?", s.ownerID)
}
