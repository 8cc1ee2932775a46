package service

import (
	"context"

	"github.com/ncobase/habits/internal/data"
	"github.com/ncobase/habits/internal/data/repository"
	"github.com/ncobase/habits/internal/data/schema"
	"github.com/ncobase/habits/internal/structs"
	"github.com/ncobase/habits/logging/logger"
	"github.com/ncobase/habits/paging"
	"github.com/ncobase/habits/shaping"
	"github.com/ncobase/habits/sorting"
)

// TagService handles tag business logic.
type TagService struct {
	d      *data.Data
	sorts  *sorting.Registry
	logger *logger.Logger
}

// NewTagService creates a new tag service.
func NewTagService(d *data.Data, sorts *sorting.Registry, logger *logger.Logger) *TagService {
	return &TagService{d: d, sorts: sorts, logger: logger}
}

// List returns one page of tags.
func (s *TagService) List(ctx context.Context, q structs.QueryParams) (*paging.OffsetResult[structs.TagDTO], error) {
	if err := shaping.Validate[structs.TagDTO](q.Fields); err != nil {
		return nil, err
	}
	def, err := sorting.Get[structs.TagDTO, schema.Tag](s.sorts)
	if err != nil {
		return nil, err
	}
	src, err := s.d.TagRepo.List(ctx, repository.TagFilter{
		Search: q.Search,
		Order:  orderBy(ctx, s.logger, q.Sort, def, structs.DefaultTagSort),
	})
	if err != nil {
		return nil, err
	}
	page, err := paging.PaginateOffset(ctx, src, q.Page, q.PageSize)
	if err != nil {
		return nil, err
	}
	return &paging.OffsetResult[structs.TagDTO]{Items: structs.ToTagDTOs(page.Items), Meta: page.Meta}, nil
}

// Get returns a tag.
func (s *TagService) Get(ctx context.Context, id, fields string) (*structs.TagDTO, error) {
	if err := shaping.Validate[structs.TagDTO](fields); err != nil {
		return nil, err
	}
	t, err := s.d.TagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := structs.ToTagDTO(t)
	return &dto, nil
}

// Create creates a tag with a unique name.
func (s *TagService) Create(ctx context.Context, body *structs.CreateTagBody) (*structs.TagDTO, error) {
	created, err := s.d.TagRepo.Create(ctx, &schema.Tag{Name: body.Name, Description: body.Description})
	if err != nil {
		return nil, err
	}
	dto := structs.ToTagDTO(created)
	return &dto, nil
}

// Update renames or redescribes a tag.
func (s *TagService) Update(ctx context.Context, id string, body *structs.UpdateTagBody) (*structs.TagDTO, error) {
	updated, err := s.d.TagRepo.Update(ctx, &schema.Tag{ID: id, Name: body.Name, Description: body.Description})
	if err != nil {
		return nil, err
	}
	dto := structs.ToTagDTO(updated)
	return &dto, nil
}

// Delete removes a tag.
func (s *TagService) Delete(ctx context.Context, id string) error {
	return s.d.TagRepo.Delete(ctx, id)
}
