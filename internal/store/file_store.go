package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// StoreFileName is the file the FileStore keeps its state in, under the
// configured data directory.
const StoreFileName = "gigspace_store.json"

// seedAdmin is written the first time the admins collection is read
// while empty, so a fresh file store always has a working login.
var seedAdmin = Record{
	"id":          "mock-admin-1",
	"email":       "admin@gigspace.com",
	"access_code": "admin123",
	"name":        "Demo Admin",
	"role":        "owner",
}

// FileStore keeps every collection in memory and writes the whole state
// through to a single JSON file on each mutation. It is the zero-setup
// backend used when no database DSN is configured.
type FileStore struct {
	path string
	log  *zap.Logger

	mu   sync.Mutex
	data map[string][]Record
}

// NewFileStore loads (or starts) the store file under dir. State that
// cannot be read or parsed is dropped and replaced with an empty store
// rather than surfaced as an error.
func NewFileStore(dir string, log *zap.Logger) (*FileStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if dir == "" {
		dir = "."
	}
	fs := &FileStore{
		path: filepath.Join(dir, StoreFileName),
		log:  log,
		data: map[string][]Record{},
	}
	fs.load()
	return fs, nil
}

// Path returns the backing file path.
func (fs *FileStore) Path() string { return fs.path }

func (fs *FileStore) load() {
	content, err := os.ReadFile(fs.path)
	if err != nil {
		if !os.IsNotExist(err) {
			fs.log.Warn("store file unreadable, starting empty",
				zap.String("path", fs.path), zap.Error(err))
		}
		return
	}
	var data map[string][]Record
	if err := json.Unmarshal(content, &data); err != nil {
		fs.log.Warn("store file corrupt, starting empty",
			zap.String("path", fs.path), zap.Error(err))
		return
	}
	if data != nil {
		fs.data = data
	}
}

// flush writes the whole store to disk. Caller holds the lock.
func (fs *FileStore) flush() error {
	content, err := json.MarshalIndent(fs.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// seedIfNeeded plants the default owner on the first empty read of the
// admins collection. Caller holds the lock.
func (fs *FileStore) seedIfNeeded(collection string) {
	if collection != Admins || len(fs.data[Admins]) > 0 {
		return
	}
	fs.data[Admins] = []Record{seedAdmin.Clone()}
	if err := fs.flush(); err != nil {
		fs.log.Warn("persisting seeded admin failed", zap.Error(err))
	}
	fs.log.Info("seeded default admin account", zap.String("email", toText(seedAdmin["email"])))
}

func (fs *FileStore) SelectAll(ctx context.Context, collection string, opts ...Option) ([]Record, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.seedIfNeeded(collection)

	recs := fs.data[collection]
	out := make([]Record, len(recs))
	for i, rec := range recs {
		out[i] = rec.Clone()
	}
	if q := buildQuery(opts); q.ordered {
		sortRecords(out, q.orderBy, q.ascending)
	}
	return out, nil
}

func (fs *FileStore) SelectOne(ctx context.Context, collection, field string, value any) (Record, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.seedIfNeeded(collection)

	for _, rec := range fs.data[collection] {
		if looseEqual(rec[field], value) {
			return rec.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (fs *FileStore) Insert(ctx context.Context, collection string, rec Record) (Record, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	stored := rec.Clone()
	if recordID(stored) == "" {
		stored["id"] = fs.nextID(collection)
	}
	fs.data[collection] = append(fs.data[collection], stored)
	if err := fs.flush(); err != nil {
		return nil, err
	}
	return stored.Clone(), nil
}

// nextID mints a millisecond-timestamp id, bumping past collisions.
// Caller holds the lock.
func (fs *FileStore) nextID(collection string) string {
	candidate := time.Now().UnixMilli()
	for fs.idExists(collection, strconv.FormatInt(candidate, 10)) {
		candidate++
	}
	return strconv.FormatInt(candidate, 10)
}

func (fs *FileStore) idExists(collection, id string) bool {
	for _, rec := range fs.data[collection] {
		if looseEqual(rec["id"], id) {
			return true
		}
	}
	return false
}

func (fs *FileStore) Update(ctx context.Context, collection, field string, value any, patch Record) (int, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	count := 0
	for _, rec := range fs.data[collection] {
		if looseEqual(rec[field], value) {
			mergeInto(rec, patch)
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	if err := fs.flush(); err != nil {
		return 0, err
	}
	return count, nil
}

func (fs *FileStore) Upsert(ctx context.Context, collection string, rec Record) (Record, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	stored := rec.Clone()
	id := recordID(stored)
	if id == "" {
		stored["id"] = fs.nextID(collection)
		id = toText(stored["id"])
	}

	var target Record
	for _, existing := range fs.data[collection] {
		if looseEqual(existing["id"], id) {
			target = existing
			break
		}
	}
	if target != nil {
		mergeInto(target, stored)
	} else {
		target = stored
		fs.data[collection] = append(fs.data[collection], target)
	}
	if err := fs.flush(); err != nil {
		return nil, err
	}
	return target.Clone(), nil
}

func (fs *FileStore) Delete(ctx context.Context, collection, field string, value any) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	recs := fs.data[collection]
	kept := recs[:0]
	removed := 0
	for _, rec := range recs {
		if looseEqual(rec[field], value) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	if removed == 0 {
		return nil
	}
	fs.data[collection] = kept
	return fs.flush()
}
