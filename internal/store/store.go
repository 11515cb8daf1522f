// Package store is a collection-oriented persistence layer. Records are
// loosely typed documents grouped under named collections; the same
// filtering and ordering rules apply to every backend so the file store
// and the database store are interchangeable.
package store

import (
	"context"
	"errors"
)

// Collection names.
const (
	Projects     = "projects"
	Messages     = "messages"
	Applications = "applications"
	Admins       = "admins"
	SiteSettings = "site_settings"
)

// SettingsRowID is the id of the single site_settings row. It carries
// both the content and automations documents side by side.
const SettingsRowID = 1

// ErrNotFound is returned by SelectOne when no record matches.
var ErrNotFound = errors.New("store: record not found")

// Record is a loosely typed document.
type Record map[string]any

// Clone returns a copy one level deep. Nested values are shared, which
// is fine for the read-then-encode access pattern the domain layer uses.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

type query struct {
	orderBy   string
	ascending bool
	ordered   bool
}

// Option tunes a SelectAll query.
type Option func(*query)

// OrderBy sorts the result by a field. The sort is stable; records that
// compare equal keep their insertion order.
func OrderBy(field string, ascending bool) Option {
	return func(q *query) {
		q.orderBy = field
		q.ascending = ascending
		q.ordered = true
	}
}

func buildQuery(opts []Option) query {
	var q query
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// Store is the persistence contract. Lookups use loose equality, so a
// numeric 5 matches a stored "5" and vice versa.
type Store interface {
	// SelectAll returns every record in the collection, optionally
	// ordered. A missing collection yields an empty slice, not an error.
	SelectAll(ctx context.Context, collection string, opts ...Option) ([]Record, error)
	// SelectOne returns the first record whose field loosely equals
	// value, or ErrNotFound.
	SelectOne(ctx context.Context, collection, field string, value any) (Record, error)
	// Insert appends a record, assigning an id when none is present, and
	// returns the persisted copy.
	Insert(ctx context.Context, collection string, rec Record) (Record, error)
	// Update shallow-merges patch into every record whose field loosely
	// equals value and returns how many records matched.
	Update(ctx context.Context, collection, field string, value any, patch Record) (int, error)
	// Upsert inserts rec or, when a record with the same id exists,
	// shallow-merges rec into it. Fields absent from rec survive.
	Upsert(ctx context.Context, collection string, rec Record) (Record, error)
	// Delete removes every record whose field loosely equals value.
	Delete(ctx context.Context, collection, field string, value any) error
}
