package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationParamsValidate(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 0}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)

	p = &PaginationParams{Page: 3, PerPage: 500}
	p.Validate()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.PerPage)
}

func TestPaginationParamsOffset(t *testing.T) {
	p := &PaginationParams{Page: 1, PerPage: 15}
	assert.Equal(t, 0, p.Offset())

	p = &PaginationParams{Page: 4, PerPage: 20}
	assert.Equal(t, 60, p.Offset())
}

func TestNewPagination(t *testing.T) {
	pg := NewPagination(2, 15, 31)
	assert.Equal(t, 2, pg.CurrentPage)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	pg = NewPagination(1, 15, 10)
	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	encoded := EncodeCursor("abc-123", createdAt)

	params := &CursorParams{Cursor: encoded}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, "abc-123", cursor.ID)
	assert.True(t, cursor.CreatedAt.Equal(createdAt))
}

func TestDecodeCursorEmpty(t *testing.T) {
	params := &CursorParams{}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestDecodeCursorInvalid(t *testing.T) {
	params := &CursorParams{Cursor: "not base64!!"}
	_, err := params.DecodeCursor()
	assert.Error(t, err)
}

func TestCursorParamsValidate(t *testing.T) {
	c := &CursorParams{}
	c.Validate()
	assert.Equal(t, 15, c.Limit)
	assert.Equal(t, CursorDirectionNext, c.Direction)

	c = &CursorParams{Limit: 1000, Direction: CursorDirectionPrev}
	c.Validate()
	assert.Equal(t, 100, c.Limit)
	assert.Equal(t, CursorDirectionPrev, c.Direction)
}

type cursorRow struct {
	ID        string
	CreatedAt time.Time
}

func TestNewCursorPagination(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []cursorRow{
		{ID: "a", CreatedAt: base},
		{ID: "b", CreatedAt: base.Add(time.Minute)},
		{ID: "c", CreatedAt: base.Add(2 * time.Minute)},
	}

	// Fetched limit+1 rows, so one page remains after this one.
	pg, page := NewCursorPagination(rows, 2,
		func(r cursorRow) string { return r.ID },
		func(r cursorRow) time.Time { return r.CreatedAt },
	)

	require.Len(t, page, 2)
	assert.True(t, pg.HasNext)
	require.NotNil(t, pg.NextCursor)

	next, err := (&CursorParams{Cursor: *pg.NextCursor}).DecodeCursor()
	require.NoError(t, err)
	assert.Equal(t, "b", next.ID)
}

func TestNewCursorPaginationLastPage(t *testing.T) {
	rows := []cursorRow{{ID: "a", CreatedAt: time.Now()}}

	pg, page := NewCursorPagination(rows, 2,
		func(r cursorRow) string { return r.ID },
		func(r cursorRow) time.Time { return r.CreatedAt },
	)

	assert.Len(t, page, 1)
	assert.False(t, pg.HasNext)
}
