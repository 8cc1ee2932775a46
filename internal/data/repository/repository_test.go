package repository

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/ncobase/habits/internal/data/schema"
	"github.com/ncobase/habits/internal/structs"
	"github.com/ncobase/habits/logging/logger"
	"github.com/ncobase/habits/paging"
	"github.com/ncobase/habits/sorting"
	"github.com/ncobase/habits/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logger.Logger {
	l := logger.NewLogger()
	l.SetOutput(io.Discard)
	return l
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := types.ParseDate(s)
	require.NoError(t, err)
	return d
}

func all[T any](t *testing.T, src paging.Source[T]) []T {
	t.Helper()
	ctx := context.Background()
	n, err := src.Count(ctx)
	require.NoError(t, err)
	items, err := src.Slice(ctx, 0, n)
	require.NoError(t, err)
	return items
}

func TestEntryListDateRange(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(testLogger())
	for _, d := range []string{"2024-12-06", "2025-01-12", "2025-01-25"} {
		_, err := repo.Create(ctx, &schema.Entry{HabitID: "h_1", Value: 1, Date: date(t, d)})
		require.NoError(t, err)
	}

	from, to := date(t, "2025-01-01"), date(t, "2025-02-01")
	src, err := repo.List(ctx, EntryFilter{From: &from, To: &to})
	require.NoError(t, err)

	items := all(t, src)
	require.Len(t, items, 2)
	for _, e := range items {
		assert.Equal(t, 2025, e.Date.Year())
	}
}

func TestEntryListToIsInclusive(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(testLogger())
	_, err := repo.Create(ctx, &schema.Entry{HabitID: "h_1", Date: date(t, "2025-02-01")})
	require.NoError(t, err)

	to := date(t, "2025-02-01")
	src, err := repo.List(ctx, EntryFilter{To: &to})
	require.NoError(t, err)
	assert.Len(t, all(t, src), 1)
}

func TestEntryListSortByValue(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(testLogger())
	for _, v := range []int{25, 15, 5} {
		_, err := repo.Create(ctx, &schema.Entry{HabitID: "h_1", Value: v, Date: date(t, "2025-01-01")})
		require.NoError(t, err)
	}

	order := sorting.Translate("value", structs.EntrySortMapping, structs.DefaultEntrySort)
	src, err := repo.List(ctx, EntryFilter{Order: order})
	require.NoError(t, err)

	var values []int
	for _, e := range all(t, src) {
		values = append(values, e.Value)
	}
	assert.Equal(t, []int{5, 15, 25}, values)
}

func TestEntryListFiltersHabit(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(testLogger())
	_, err := repo.Create(ctx, &schema.Entry{HabitID: "h_1", Date: date(t, "2025-01-01")})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &schema.Entry{HabitID: "h_2", Date: date(t, "2025-01-01")})
	require.NoError(t, err)

	src, err := repo.List(ctx, EntryFilter{HabitID: "h_2"})
	require.NoError(t, err)
	items := all(t, src)
	require.Len(t, items, 1)
	assert.Equal(t, "h_2", items[0].HabitID)
}

func TestEntryListCursor(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(testLogger())
	var created []*schema.Entry
	for _, d := range []string{"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04"} {
		e, err := repo.Create(ctx, &schema.Entry{HabitID: "h_1", Date: date(t, d)})
		require.NoError(t, err)
		created = append(created, e)
	}

	first, err := repo.ListCursor(ctx, EntryCursorFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 3, "limit plus one lookahead")
	assert.Equal(t, created[3].ID, first[0].ID)
	assert.Equal(t, created[2].ID, first[1].ID)

	page, err := paging.PaginateCursor(first, 2)
	require.NoError(t, err)
	require.True(t, page.HasNextPage)
	cursor, ok := paging.DecodeCursor(page.NextCursor)
	require.True(t, ok)

	second, err := repo.ListCursor(ctx, EntryCursorFilter{Limit: 2, Cursor: cursor})
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, created[1].ID, second[0].ID)
	assert.Equal(t, created[0].ID, second[1].ID)
}

func TestEntryDeleteByHabit(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(testLogger())
	for range 2 {
		_, err := repo.Create(ctx, &schema.Entry{HabitID: "h_1", Date: date(t, "2025-01-01")})
		require.NoError(t, err)
	}
	n, err := repo.DeleteByHabit(ctx, "h_1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestHabitCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewHabitRepository(testLogger())

	h, err := repo.Create(ctx, &schema.Habit{Name: "Read", Type: schema.HabitTypeMeasurable})
	require.NoError(t, err)
	assert.Regexp(t, `^h_[0-9a-f-]{36}$`, h.ID)
	assert.False(t, h.CreatedAtUtc.IsZero())

	h.Name = "Read books"
	updated, err := repo.Update(ctx, h)
	require.NoError(t, err)
	assert.Equal(t, "Read books", updated.Name)
	assert.NotNil(t, updated.UpdatedAtUtc)

	tagged, err := repo.SetTags(ctx, h.ID, []string{"t_2", "t_1", "t_2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"t_1", "t_2"}, tagged.TagIDs)

	require.NoError(t, repo.Delete(ctx, h.ID))
	_, err = repo.GetByID(ctx, h.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, h.ID), ErrNotFound)
}

func TestHabitListFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewHabitRepository(testLogger())
	for _, h := range []*schema.Habit{
		{Name: "Walk", Type: schema.HabitTypeBinary, Status: schema.HabitStatusOngoing},
		{Name: "read", Type: schema.HabitTypeMeasurable, Status: schema.HabitStatusOngoing},
		{Name: "Run", Type: schema.HabitTypeMeasurable, Status: schema.HabitStatusCompleted},
	} {
		_, err := repo.Create(ctx, h)
		require.NoError(t, err)
	}

	measurable := schema.HabitTypeMeasurable
	order := sorting.Translate("-name", structs.HabitSortMapping, structs.DefaultHabitSort)
	src, err := repo.List(ctx, HabitFilter{Type: &measurable, Order: order})
	require.NoError(t, err)

	var names []string
	for _, h := range all(t, src) {
		names = append(names, h.Name)
	}
	assert.Equal(t, []string{"Run", "read"}, names)

	src, err = repo.List(ctx, HabitFilter{Search: "WAL"})
	require.NoError(t, err)
	assert.Len(t, all(t, src), 1)
}

func TestTagNamesAreUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewTagRepository(testLogger())

	first, err := repo.Create(ctx, &schema.Tag{Name: "Health"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &schema.Tag{Name: "health"})
	assert.ErrorIs(t, err, ErrConflict)
	_, err = repo.Create(ctx, &schema.Tag{Name: " Health! "})
	assert.ErrorIs(t, err, ErrConflict)

	second, err := repo.Create(ctx, &schema.Tag{Name: "Focus"})
	require.NoError(t, err)
	second.Name = "HEALTH"
	_, err = repo.Update(ctx, second)
	assert.ErrorIs(t, err, ErrConflict)

	tags, err := repo.GetByIDs(ctx, []string{second.ID, first.ID})
	require.NoError(t, err)
	assert.Equal(t, "Focus", tags[0].Name)
	_, err = repo.GetByIDs(ctx, []string{"t_missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}
