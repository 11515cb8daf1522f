package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return fs
}

func TestFileStoreSelectOneNotFound(t *testing.T) {
	fs := newTestFileStore(t)
	_, err := fs.SelectOne(context.Background(), Projects, "id", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreInsertAssignsUniqueIDs(t *testing.T) {
	fs := newTestFileStore(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		rec, err := fs.Insert(ctx, Messages, Record{"name": "x"})
		require.NoError(t, err)
		id := toText(rec["id"])
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestFileStoreInsertKeepsCallerID(t *testing.T) {
	fs := newTestFileStore(t)
	rec, err := fs.Insert(context.Background(), Projects, Record{"id": "custom", "title": "t"})
	require.NoError(t, err)
	assert.Equal(t, "custom", rec["id"])
}

func TestFileStoreLooseEqualityLookup(t *testing.T) {
	fs := newTestFileStore(t)
	ctx := context.Background()

	_, err := fs.Insert(ctx, Projects, Record{"id": "5", "title": "five"})
	require.NoError(t, err)

	rec, err := fs.SelectOne(ctx, Projects, "id", 5)
	require.NoError(t, err)
	assert.Equal(t, "five", rec["title"])
}

func TestFileStoreSeedsAdminOnFirstRead(t *testing.T) {
	fs := newTestFileStore(t)
	ctx := context.Background()

	admins, err := fs.SelectAll(ctx, Admins)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin@gigspace.com", admins[0]["email"])
	assert.Equal(t, "owner", admins[0]["role"])

	// Seeding happens once; the collection does not grow on re-read.
	admins, err = fs.SelectAll(ctx, Admins)
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}

func TestFileStoreNoSeedAfterDelete(t *testing.T) {
	fs := newTestFileStore(t)
	ctx := context.Background()

	_, err := fs.SelectAll(ctx, Admins)
	require.NoError(t, err)
	_, err = fs.Insert(ctx, Admins, Record{"id": "a2", "email": "b@x.com"})
	require.NoError(t, err)
	require.NoError(t, fs.Delete(ctx, Admins, "id", "mock-admin-1"))

	admins, err := fs.SelectAll(ctx, Admins)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "b@x.com", admins[0]["email"])
}

func TestFileStoreUpdateMergesPatch(t *testing.T) {
	fs := newTestFileStore(t)
	ctx := context.Background()

	_, err := fs.Insert(ctx, Messages, Record{"id": "m1", "read": false, "subject": "hello"})
	require.NoError(t, err)

	count, err := fs.Update(ctx, Messages, "id", "m1", Record{"read": true})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	rec, err := fs.SelectOne(ctx, Messages, "id", "m1")
	require.NoError(t, err)
	assert.Equal(t, true, rec["read"])
	assert.Equal(t, "hello", rec["subject"])

	count, err = fs.Update(ctx, Messages, "id", "nope", Record{"read": true})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFileStoreUpsertPreservesSiblingFields(t *testing.T) {
	fs := newTestFileStore(t)
	ctx := context.Background()

	_, err := fs.Upsert(ctx, SiteSettings, Record{
		"id":      SettingsRowID,
		"content": map[string]any{"title": "hello"},
	})
	require.NoError(t, err)

	_, err = fs.Upsert(ctx, SiteSettings, Record{
		"id":          SettingsRowID,
		"automations": map[string]any{"maintenance_mode": true},
	})
	require.NoError(t, err)

	rec, err := fs.SelectOne(ctx, SiteSettings, "id", SettingsRowID)
	require.NoError(t, err)
	content, ok := rec["content"].(map[string]any)
	require.True(t, ok, "content sibling dropped by upsert")
	assert.Equal(t, "hello", content["title"])
	automations, ok := rec["automations"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, automations["maintenance_mode"])

	rows, err := fs.SelectAll(ctx, SiteSettings)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFileStoreDelete(t *testing.T) {
	fs := newTestFileStore(t)
	ctx := context.Background()

	_, err := fs.Insert(ctx, Projects, Record{"id": "p1"})
	require.NoError(t, err)
	_, err = fs.Insert(ctx, Projects, Record{"id": "p2"})
	require.NoError(t, err)

	require.NoError(t, fs.Delete(ctx, Projects, "id", "p1"))

	recs, err := fs.SelectAll(ctx, Projects)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "p2", recs[0]["id"])

	// Deleting something absent is not an error.
	assert.NoError(t, fs.Delete(ctx, Projects, "id", "ghost"))
}

func TestFileStoreOrderBy(t *testing.T) {
	fs := newTestFileStore(t)
	ctx := context.Background()

	for _, rec := range []Record{
		{"id": "a", "date": "2024-03-01"},
		{"id": "b", "date": "2024-01-01"},
		{"id": "c", "date": "2024-02-01"},
	} {
		_, err := fs.Insert(ctx, Projects, rec)
		require.NoError(t, err)
	}

	recs, err := fs.SelectAll(ctx, Projects, OrderBy("date", false))
	require.NoError(t, err)
	assert.Equal(t, "a", recs[0]["id"])
	assert.Equal(t, "c", recs[1]["id"])
	assert.Equal(t, "b", recs[2]["id"])

	recs, err = fs.SelectAll(ctx, Projects, OrderBy("date", true))
	require.NoError(t, err)
	assert.Equal(t, "b", recs[0]["id"])
}

func TestFileStoreUnorderedKeepsInsertionOrder(t *testing.T) {
	fs := newTestFileStore(t)
	ctx := context.Background()

	for _, id := range []string{"z", "a", "m"} {
		_, err := fs.Insert(ctx, Messages, Record{"id": id})
		require.NoError(t, err)
	}
	recs, err := fs.SelectAll(ctx, Messages)
	require.NoError(t, err)
	assert.Equal(t, "z", recs[0]["id"])
	assert.Equal(t, "a", recs[1]["id"])
	assert.Equal(t, "m", recs[2]["id"])
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	_, err = fs.Insert(ctx, Projects, Record{
		"id":   "p1",
		"tags": []any{"go", "web"},
	})
	require.NoError(t, err)

	reopened, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)
	rec, err := reopened.SelectOne(ctx, Projects, "id", "p1")
	require.NoError(t, err)

	tags, ok := rec["tags"].([]any)
	require.True(t, ok)
	require.Len(t, tags, 2)
	assert.Equal(t, "go", tags[0])
	assert.Equal(t, "web", tags[1])
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, StoreFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	fs, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)

	recs, err := fs.SelectAll(context.Background(), Projects)
	require.NoError(t, err)
	assert.Empty(t, recs)

	// A write replaces the corrupt file with valid state.
	_, err = fs.Insert(context.Background(), Projects, Record{"id": "p1"})
	require.NoError(t, err)
	reopened, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)
	_, err = reopened.SelectOne(context.Background(), Projects, "id", "p1")
	assert.NoError(t, err)
}

func TestFileStoreSelectAllReturnsCopies(t *testing.T) {
	fs := newTestFileStore(t)
	ctx := context.Background()

	_, err := fs.Insert(ctx, Projects, Record{"id": "p1", "title": "orig"})
	require.NoError(t, err)

	recs, err := fs.SelectAll(ctx, Projects)
	require.NoError(t, err)
	recs[0]["title"] = "mutated"

	rec, err := fs.SelectOne(ctx, Projects, "id", "p1")
	require.NoError(t, err)
	assert.Equal(t, "orig", rec["title"])
}
