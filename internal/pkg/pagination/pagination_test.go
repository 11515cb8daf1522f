package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestRequested(t *testing.T) {
	assert.False(t, Requested(ctxWithQuery(t, "")))
	assert.True(t, Requested(ctxWithQuery(t, "page=2")))
	assert.True(t, Requested(ctxWithQuery(t, "size=5")))
}

func TestFromContext(t *testing.T) {
	q := FromContext(ctxWithQuery(t, "page=3&size=7"))
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 7, q.Size)

	q = FromContext(ctxWithQuery(t, ""))
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultSize, q.Size)

	q = FromContext(ctxWithQuery(t, "page=-1&size=0"))
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultSize, q.Size)

	q = FromContext(ctxWithQuery(t, "size=9999"))
	assert.Equal(t, MaxSize, q.Size)

	q = FromContext(ctxWithQuery(t, "page=abc"))
	assert.Equal(t, DefaultPage, q.Page)
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := Slice(items, Query{Page: 1, Size: 2})
	assert.Equal(t, []int{1, 2}, page)
	assert.Equal(t, 5, meta.Total)
	assert.Equal(t, 3, meta.TotalPage)
	assert.True(t, meta.HasNextPage)

	page, meta = Slice(items, Query{Page: 3, Size: 2})
	assert.Equal(t, []int{5}, page)
	assert.False(t, meta.HasNextPage)

	page, _ = Slice(items, Query{Page: 9, Size: 2})
	require.NotNil(t, page)
	assert.Empty(t, page)

	page, meta = Slice([]int{}, Query{Page: 1, Size: 10})
	assert.Empty(t, page)
	assert.Zero(t, meta.Total)
	assert.Zero(t, meta.TotalPage)
}
