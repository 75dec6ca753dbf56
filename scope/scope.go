package scope

import (
	"gorm.io/gorm"
)

// Scope encodes one reusable piece of query logic: a filter, a join, an
// aggregate projection or a limit. Apply mutates the given builder and
// returns it for further chaining. Apply must not execute the query, perform
// I/O, or retain the builder beyond the call.
type Scope interface {
	Apply(tx *gorm.DB) *gorm.DB
}

// ScopeFunc adapts a plain function to the Scope interface.
type ScopeFunc func(tx *gorm.DB) *gorm.DB

func (f ScopeFunc) Apply(tx *gorm.DB) *gorm.DB {
	return f(tx)
}

// Tap applies each scope to the builder in the order given and returns the
// builder for further chaining. If a scope leaves an error on the builder the
// remaining scopes are skipped and the builder is returned as-is; mutations
// applied before the failure are kept, since builders are cheap to discard
// and recreate.
func Tap(tx *gorm.DB, scopes ...Scope) *gorm.DB {
	for _, s := range scopes {
		tx = s.Apply(tx)
		if tx.Error != nil {
			return tx
		}
	}
	return tx
}
