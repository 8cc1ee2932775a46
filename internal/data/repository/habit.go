package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/ncobase/habits/internal/data/schema"
	"github.com/ncobase/habits/internal/structs"
	"github.com/ncobase/habits/logging/logger"
	"github.com/ncobase/habits/paging"
	"github.com/ncobase/habits/types"
)

// HabitFilter narrows and orders a habit listing.
type HabitFilter struct {
	Search string
	Type   *schema.HabitType
	Status *schema.HabitStatus
	Order  types.MultiCriteria
}

// HabitRepository defines the interface for habit data operations.
type HabitRepository interface {
	Create(ctx context.Context, h *schema.Habit) (*schema.Habit, error)
	GetByID(ctx context.Context, id string) (*schema.Habit, error)
	List(ctx context.Context, filter HabitFilter) (paging.Source[*schema.Habit], error)
	Update(ctx context.Context, h *schema.Habit) (*schema.Habit, error)
	Delete(ctx context.Context, id string) error
	SetTags(ctx context.Context, id string, tagIDs []string) (*schema.Habit, error)
}

type habitRepository struct {
	mu     sync.RWMutex
	habits map[string]*schema.Habit
	logger *logger.Logger
}

// NewHabitRepository creates a new habit repository instance.
func NewHabitRepository(logger *logger.Logger) HabitRepository {
	return &habitRepository{habits: map[string]*schema.Habit{}, logger: logger}
}

func cloneHabit(h *schema.Habit) *schema.Habit {
	c := *h
	c.TagIDs = slices.Clone(h.TagIDs)
	if h.Milestone != nil {
		m := *h.Milestone
		c.Milestone = &m
	}
	return &c
}

// Create stores a new habit and assigns its id and creation time.
func (r *habitRepository) Create(ctx context.Context, h *schema.Habit) (*schema.Habit, error) {
	stored := cloneHabit(h)
	stored.ID = newID(habitPrefix)
	stored.CreatedAtUtc = now()
	stored.UpdatedAtUtc = nil

	r.mu.Lock()
	r.habits[stored.ID] = stored
	r.mu.Unlock()

	r.logger.Debugf(ctx, "habit created: %s", stored.ID)
	return cloneHabit(stored), nil
}

// GetByID retrieves a habit by id.
func (r *habitRepository) GetByID(_ context.Context, id string) (*schema.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.habits[id]
	if !ok {
		return nil, notFound("habit", id)
	}
	return cloneHabit(h), nil
}

// List returns a filtered, ordered snapshot. Count and Slice of the result
// observe the same snapshot.
func (r *habitRepository) List(_ context.Context, filter HabitFilter) (paging.Source[*schema.Habit], error) {
	r.mu.RLock()
	out := make([]*schema.Habit, 0, len(r.habits))
	for _, h := range r.habits {
		if filter.matches(h) {
			out = append(out, cloneHabit(h))
		}
	}
	r.mu.RUnlock()

	// Map iteration is random; id order makes ties deterministic.
	slices.SortFunc(out, func(a, b *schema.Habit) int { return types.CompareString(a.ID, b.ID) })
	types.Sort(out, filter.Order, habitValue)
	return paging.SliceSource[*schema.Habit](out), nil
}

func (f HabitFilter) matches(h *schema.Habit) bool {
	if f.Search != "" && !containsFold(h.Name, f.Search) && !containsFold(types.ToValue(h.Description), f.Search) {
		return false
	}
	if f.Type != nil && h.Type != *f.Type {
		return false
	}
	if f.Status != nil && h.Status != *f.Status {
		return false
	}
	return true
}

// habitValue resolves an ordering target on a habit.
func habitValue(h *schema.Habit, target string) (any, bool) {
	switch target {
	case structs.OrderName:
		return h.Name, true
	case structs.OrderDescription:
		return h.Description, true
	case structs.OrderType:
		return int(h.Type), true
	case structs.OrderStatus:
		return int(h.Status), true
	case structs.OrderFrequency:
		return int(h.Frequency.Type), true
	case structs.OrderTargetValue:
		return h.Target.Value, true
	case structs.OrderTargetUnit:
		return h.Target.Unit, true
	case structs.OrderEndDate:
		return h.EndDate, true
	case structs.OrderCreatedAt:
		return h.CreatedAtUtc, true
	case structs.OrderUpdatedAt:
		return h.UpdatedAtUtc, true
	case structs.OrderLastComplete:
		return h.LastCompletedAtUtc, true
	}
	return nil, false
}

// Update replaces a stored habit, keeping its id, creation time and tags.
func (r *habitRepository) Update(ctx context.Context, h *schema.Habit) (*schema.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.habits[h.ID]
	if !ok {
		return nil, notFound("habit", h.ID)
	}
	stored := cloneHabit(h)
	stored.CreatedAtUtc = existing.CreatedAtUtc
	stored.TagIDs = existing.TagIDs
	stored.UpdatedAtUtc = types.ToPointer(now())
	r.habits[h.ID] = stored

	r.logger.Debugf(ctx, "habit updated: %s", h.ID)
	return cloneHabit(stored), nil
}

// Delete removes a habit.
func (r *habitRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.habits[id]; !ok {
		return notFound("habit", id)
	}
	delete(r.habits, id)
	r.logger.Debugf(ctx, "habit deleted: %s", id)
	return nil
}

// SetTags replaces the tag ids of a habit. Duplicates are collapsed.
func (r *habitRepository) SetTags(_ context.Context, id string, tagIDs []string) (*schema.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.habits[id]
	if !ok {
		return nil, notFound("habit", id)
	}
	ids := slices.Clone(tagIDs)
	slices.Sort(ids)
	h.TagIDs = slices.Compact(ids)
	h.UpdatedAtUtc = types.ToPointer(now())
	return cloneHabit(h), nil
}
