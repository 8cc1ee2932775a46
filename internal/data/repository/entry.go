package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ncobase/habits/internal/data/schema"
	"github.com/ncobase/habits/internal/structs"
	"github.com/ncobase/habits/logging/logger"
	"github.com/ncobase/habits/paging"
	"github.com/ncobase/habits/types"
)

// EntryFilter narrows and orders an offset entry listing. From and To are
// inclusive bounds on the entry date.
type EntryFilter struct {
	HabitID string
	From    *time.Time
	To      *time.Time
	Order   types.MultiCriteria
}

// EntryCursorFilter selects one keyset page of entries.
type EntryCursorFilter struct {
	HabitID string
	Cursor  *paging.Cursor
	Limit   int
}

// EntryRepository defines the interface for entry data operations.
type EntryRepository interface {
	Create(ctx context.Context, e *schema.Entry) (*schema.Entry, error)
	GetByID(ctx context.Context, id string) (*schema.Entry, error)
	List(ctx context.Context, filter EntryFilter) (paging.Source[*schema.Entry], error)
	ListCursor(ctx context.Context, filter EntryCursorFilter) ([]*schema.Entry, error)
	Update(ctx context.Context, e *schema.Entry) (*schema.Entry, error)
	Delete(ctx context.Context, id string) error
	DeleteByHabit(ctx context.Context, habitID string) (int, error)
}

type entryRepository struct {
	mu      sync.RWMutex
	entries map[string]*schema.Entry
	logger  *logger.Logger
}

// NewEntryRepository creates a new entry repository instance.
func NewEntryRepository(logger *logger.Logger) EntryRepository {
	return &entryRepository{entries: map[string]*schema.Entry{}, logger: logger}
}

func cloneEntry(e *schema.Entry) *schema.Entry {
	c := *e
	return &c
}

// Create stores a new entry. The date is truncated to its UTC day.
func (r *entryRepository) Create(ctx context.Context, e *schema.Entry) (*schema.Entry, error) {
	stored := cloneEntry(e)
	stored.ID = newID(entryPrefix)
	stored.Date = types.StartOfDay(e.Date)
	stored.CreatedAtUtc = now()
	stored.UpdatedAtUtc = nil

	r.mu.Lock()
	r.entries[stored.ID] = stored
	r.mu.Unlock()

	r.logger.Debugf(ctx, "entry created: %s", stored.ID)
	return cloneEntry(stored), nil
}

// GetByID retrieves an entry by id.
func (r *entryRepository) GetByID(_ context.Context, id string) (*schema.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, notFound("entry", id)
	}
	return cloneEntry(e), nil
}

// List returns a filtered, ordered snapshot.
func (r *entryRepository) List(_ context.Context, filter EntryFilter) (paging.Source[*schema.Entry], error) {
	r.mu.RLock()
	out := make([]*schema.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if filter.matches(e) {
			out = append(out, cloneEntry(e))
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *schema.Entry) int { return types.CompareString(a.ID, b.ID) })
	types.Sort(out, filter.Order, entryValue)
	return paging.SliceSource[*schema.Entry](out), nil
}

func (f EntryFilter) matches(e *schema.Entry) bool {
	if f.HabitID != "" && e.HabitID != f.HabitID {
		return false
	}
	if f.From != nil && e.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && e.Date.After(*f.To) {
		return false
	}
	return true
}

// ListCursor returns up to Limit+1 entries at or after the cursor, ordered
// by date descending, then id descending. The ordering must match
// paging.Cursor.After.
func (r *entryRepository) ListCursor(_ context.Context, filter EntryCursorFilter) ([]*schema.Entry, error) {
	r.mu.RLock()
	out := make([]*schema.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if filter.HabitID == "" || e.HabitID == filter.HabitID {
			out = append(out, cloneEntry(e))
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *schema.Entry) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	out = paging.ApplyCursor(out, filter.Cursor)

	limit := filter.Limit
	if limit <= 0 {
		limit = paging.DefaultLimit
	}
	if len(out) > limit+1 {
		out = out[:limit+1]
	}
	return out, nil
}

// entryValue resolves an ordering target on an entry.
func entryValue(e *schema.Entry, target string) (any, bool) {
	switch target {
	case structs.OrderValue:
		return e.Value, true
	case structs.OrderDate:
		return e.Date, true
	case structs.OrderNotes:
		return e.Notes, true
	case structs.OrderSource:
		return int(e.Source), true
	case structs.OrderCreatedAt:
		return e.CreatedAtUtc, true
	case structs.OrderUpdatedAt:
		return e.UpdatedAtUtc, true
	}
	return nil, false
}

// Update replaces a stored entry, keeping its id, habit and creation time.
func (r *entryRepository) Update(ctx context.Context, e *schema.Entry) (*schema.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.entries[e.ID]
	if !ok {
		return nil, notFound("entry", e.ID)
	}
	stored := cloneEntry(e)
	stored.HabitID = existing.HabitID
	stored.Date = types.StartOfDay(e.Date)
	stored.CreatedAtUtc = existing.CreatedAtUtc
	stored.UpdatedAtUtc = types.ToPointer(now())
	r.entries[e.ID] = stored

	r.logger.Debugf(ctx, "entry updated: %s", e.ID)
	return cloneEntry(stored), nil
}

// Delete removes an entry.
func (r *entryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return notFound("entry", id)
	}
	delete(r.entries, id)
	r.logger.Debugf(ctx, "entry deleted: %s", id)
	return nil
}

// DeleteByHabit removes every entry of a habit and reports how many.
func (r *entryRepository) DeleteByHabit(_ context.Context, habitID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, e := range r.entries {
		if e.HabitID == habitID {
			delete(r.entries, id)
			n++
		}
	}
	return n, nil
}
