package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/gosimple/slug"
	"github.com/ncobase/habits/internal/data/schema"
	"github.com/ncobase/habits/internal/structs"
	"github.com/ncobase/habits/logging/logger"
	"github.com/ncobase/habits/paging"
	"github.com/ncobase/habits/types"
)

// TagFilter narrows and orders a tag listing.
type TagFilter struct {
	Search string
	Order  types.MultiCriteria
}

// TagRepository defines the interface for tag data operations.
type TagRepository interface {
	Create(ctx context.Context, t *schema.Tag) (*schema.Tag, error)
	GetByID(ctx context.Context, id string) (*schema.Tag, error)
	GetByIDs(ctx context.Context, ids []string) ([]*schema.Tag, error)
	List(ctx context.Context, filter TagFilter) (paging.Source[*schema.Tag], error)
	Update(ctx context.Context, t *schema.Tag) (*schema.Tag, error)
	Delete(ctx context.Context, id string) error
}

type tagRepository struct {
	mu     sync.RWMutex
	tags   map[string]*schema.Tag
	logger *logger.Logger
}

// NewTagRepository creates a new tag repository instance.
func NewTagRepository(logger *logger.Logger) TagRepository {
	return &tagRepository{tags: map[string]*schema.Tag{}, logger: logger}
}

func cloneTag(t *schema.Tag) *schema.Tag {
	c := *t
	return &c
}

// tagKey is the uniqueness key of a tag name: "Deep Work" and "deep-work"
// collide.
func tagKey(name string) string {
	if s := slug.Make(name); s != "" {
		return s
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// nameTaken must be called with the lock held.
func (r *tagRepository) nameTaken(name, exceptID string) bool {
	key := tagKey(name)
	for id, t := range r.tags {
		if id != exceptID && tagKey(t.Name) == key {
			return true
		}
	}
	return false
}

// Create stores a new tag. Names are unique by slug.
func (r *tagRepository) Create(ctx context.Context, t *schema.Tag) (*schema.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTaken(t.Name, "") {
		return nil, fmt.Errorf("tag %q: %w", t.Name, ErrConflict)
	}
	stored := cloneTag(t)
	stored.ID = newID(tagPrefix)
	stored.CreatedAtUtc = now()
	stored.UpdatedAtUtc = nil
	r.tags[stored.ID] = stored

	r.logger.Debugf(ctx, "tag created: %s", stored.ID)
	return cloneTag(stored), nil
}

// GetByID retrieves a tag by id.
func (r *tagRepository) GetByID(_ context.Context, id string) (*schema.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tags[id]
	if !ok {
		return nil, notFound("tag", id)
	}
	return cloneTag(t), nil
}

// GetByIDs retrieves tags in the order of ids. Any unknown id fails the call.
func (r *tagRepository) GetByIDs(_ context.Context, ids []string) ([]*schema.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*schema.Tag, 0, len(ids))
	for _, id := range ids {
		t, ok := r.tags[id]
		if !ok {
			return nil, notFound("tag", id)
		}
		out = append(out, cloneTag(t))
	}
	return out, nil
}

// List returns a filtered, ordered snapshot.
func (r *tagRepository) List(_ context.Context, filter TagFilter) (paging.Source[*schema.Tag], error) {
	r.mu.RLock()
	out := make([]*schema.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		if filter.Search == "" || containsFold(t.Name, filter.Search) || containsFold(types.ToValue(t.Description), filter.Search) {
			out = append(out, cloneTag(t))
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *schema.Tag) int { return types.CompareString(a.ID, b.ID) })
	types.Sort(out, filter.Order, tagValue)
	return paging.SliceSource[*schema.Tag](out), nil
}

func tagValue(t *schema.Tag, target string) (any, bool) {
	switch target {
	case structs.OrderName:
		return t.Name, true
	case structs.OrderDescription:
		return t.Description, true
	case structs.OrderCreatedAt:
		return t.CreatedAtUtc, true
	case structs.OrderUpdatedAt:
		return t.UpdatedAtUtc, true
	}
	return nil, false
}

// Update replaces a stored tag's name and description.
func (r *tagRepository) Update(ctx context.Context, t *schema.Tag) (*schema.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tags[t.ID]
	if !ok {
		return nil, notFound("tag", t.ID)
	}
	if r.nameTaken(t.Name, t.ID) {
		return nil, fmt.Errorf("tag %q: %w", t.Name, ErrConflict)
	}
	stored := cloneTag(t)
	stored.CreatedAtUtc = existing.CreatedAtUtc
	stored.UpdatedAtUtc = types.ToPointer(now())
	r.tags[t.ID] = stored

	r.logger.Debugf(ctx, "tag updated: %s", t.ID)
	return cloneTag(stored), nil
}

// Delete removes a tag.
func (r *tagRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tags[id]; !ok {
		return notFound("tag", id)
	}
	delete(r.tags, id)
	r.logger.Debugf(ctx, "tag deleted: %s", id)
	return nil
}
