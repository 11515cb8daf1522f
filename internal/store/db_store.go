package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordRow is the generic table every collection shares: one row per
// record, with the document held as JSON. Loose filtering happens in Go
// over the decoded documents so both backends behave identically.
type RecordRow struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Collection string `gorm:"size:64;not null;index:idx_records_lookup,priority:1"`
	DocID      string `gorm:"size:191;not null;index:idx_records_lookup,priority:2"`
	Doc        string `gorm:"type:longtext"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName maps RecordRow to the records table.
func (RecordRow) TableName() string { return "records" }

// DBStore is the database-backed Store, used when a DSN is configured.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore wraps an open gorm handle. Schema migration is the
// caller's concern (database.Connect runs it).
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

// loadCollection reads every row of a collection in insertion order and
// decodes the documents. Row order is the tiebreak for stable sorts.
func (s *DBStore) loadCollection(ctx context.Context, collection string) ([]RecordRow, []Record, error) {
	var rows []RecordRow
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, nil, fmt.Errorf("load collection %q: %w", collection, err)
	}

	recs := make([]Record, len(rows))
	for i, row := range rows {
		var rec Record
		if err := json.Unmarshal([]byte(row.Doc), &rec); err != nil {
			return nil, nil, fmt.Errorf("decode record %s/%s: %w", collection, row.DocID, err)
		}
		recs[i] = rec
	}
	return rows, recs, nil
}

func (s *DBStore) saveRow(ctx context.Context, row *RecordRow, rec Record) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	row.Doc = string(doc)
	row.DocID = recordID(rec)
	return s.db.WithContext(ctx).Save(row).Error
}

func (s *DBStore) SelectAll(ctx context.Context, collection string, opts ...Option) ([]Record, error) {
	_, recs, err := s.loadCollection(ctx, collection)
	if err != nil {
		return nil, err
	}
	if q := buildQuery(opts); q.ordered {
		sortRecords(recs, q.orderBy, q.ascending)
	}
	return recs, nil
}

func (s *DBStore) SelectOne(ctx context.Context, collection, field string, value any) (Record, error) {
	_, recs, err := s.loadCollection(ctx, collection)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if looseEqual(rec[field], value) {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

func (s *DBStore) Insert(ctx context.Context, collection string, rec Record) (Record, error) {
	stored := rec.Clone()
	if recordID(stored) == "" {
		stored["id"] = uuid.NewString()
	}
	doc, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	row := RecordRow{
		Collection: collection,
		DocID:      recordID(stored),
		Doc:        string(doc),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert into %q: %w", collection, err)
	}
	return stored, nil
}

func (s *DBStore) Update(ctx context.Context, collection, field string, value any, patch Record) (int, error) {
	rows, recs, err := s.loadCollection(ctx, collection)
	if err != nil {
		return 0, err
	}
	count := 0
	for i, rec := range recs {
		if !looseEqual(rec[field], value) {
			continue
		}
		mergeInto(rec, patch)
		if err := s.saveRow(ctx, &rows[i], rec); err != nil {
			return count, fmt.Errorf("update %q: %w", collection, err)
		}
		count++
	}
	return count, nil
}

func (s *DBStore) Upsert(ctx context.Context, collection string, rec Record) (Record, error) {
	stored := rec.Clone()
	id := recordID(stored)
	if id == "" {
		return s.Insert(ctx, collection, stored)
	}

	rows, recs, err := s.loadCollection(ctx, collection)
	if err != nil {
		return nil, err
	}
	for i, existing := range recs {
		if !looseEqual(existing["id"], id) {
			continue
		}
		mergeInto(existing, stored)
		if err := s.saveRow(ctx, &rows[i], existing); err != nil {
			return nil, fmt.Errorf("upsert %q: %w", collection, err)
		}
		return existing, nil
	}
	return s.Insert(ctx, collection, stored)
}

func (s *DBStore) Delete(ctx context.Context, collection, field string, value any) error {
	rows, recs, err := s.loadCollection(ctx, collection)
	if err != nil {
		return err
	}
	var ids []uint
	for i, rec := range recs {
		if looseEqual(rec[field], value) {
			ids = append(ids, rows[i].ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Delete(&RecordRow{}, ids).Error; err != nil {
		return fmt.Errorf("delete from %q: %w", collection, err)
	}
	return nil
}
