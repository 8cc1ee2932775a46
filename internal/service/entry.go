package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ncobase/habits/ecode"
	"github.com/ncobase/habits/internal/data"
	"github.com/ncobase/habits/internal/data/repository"
	"github.com/ncobase/habits/internal/data/schema"
	"github.com/ncobase/habits/internal/structs"
	"github.com/ncobase/habits/logging/logger"
	"github.com/ncobase/habits/paging"
	"github.com/ncobase/habits/shaping"
	"github.com/ncobase/habits/sorting"
	"github.com/ncobase/habits/types"
)

// EntryService handles entry business logic.
type EntryService struct {
	d      *data.Data
	sorts  *sorting.Registry
	limits paging.Limits
	logger *logger.Logger
}

// NewEntryService creates a new entry service. limits bound cursor pages.
func NewEntryService(d *data.Data, sorts *sorting.Registry, limits paging.Limits, logger *logger.Logger) *EntryService {
	return &EntryService{d: d, sorts: sorts, limits: limits, logger: logger}
}

func parseDay(name, value string, end bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := types.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ecode.FieldIsInvalid(name), value, ErrInvalidArgument)
	}
	if end {
		t = types.EndOfDay(t)
	}
	return &t, nil
}

// List returns one page of entries, optionally bounded to a habit and a
// date range.
func (s *EntryService) List(ctx context.Context, q structs.EntryQueryParams) (*paging.OffsetResult[structs.EntryDTO], error) {
	if err := shaping.Validate[structs.EntryDTO](q.Fields); err != nil {
		return nil, err
	}
	def, err := sorting.Get[structs.EntryDTO, schema.Entry](s.sorts)
	if err != nil {
		return nil, err
	}
	from, err := parseDay("from", q.From, false)
	if err != nil {
		return nil, err
	}
	to, err := parseDay("to", q.To, true)
	if err != nil {
		return nil, err
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("from is after to: %w", ErrInvalidArgument)
	}

	src, err := s.d.EntryRepo.List(ctx, repository.EntryFilter{
		HabitID: q.HabitID,
		From:    from,
		To:      to,
		Order:   orderBy(ctx, s.logger, q.Sort, def, structs.DefaultEntrySort),
	})
	if err != nil {
		return nil, err
	}
	page, err := paging.PaginateOffset(ctx, src, q.Page, q.PageSize)
	if err != nil {
		return nil, err
	}
	return &paging.OffsetResult[structs.EntryDTO]{Items: structs.ToEntryDTOs(page.Items), Meta: page.Meta}, nil
}

// ListCursor returns one keyset page of entries, newest first. A cursor
// that fails to decode starts from the beginning.
func (s *EntryService) ListCursor(ctx context.Context, q structs.CursorQueryParams) (*paging.CursorResult[structs.EntryDTO], error) {
	if err := shaping.Validate[structs.EntryDTO](q.Fields); err != nil {
		return nil, err
	}
	params := s.limits.Normalize(paging.Params{Cursor: q.Cursor, Limit: q.Limit})
	cursor, ok := paging.DecodeCursor(params.Cursor)
	if !ok && params.Cursor != "" {
		s.logger.Debugf(ctx, "ignoring malformed cursor %q", params.Cursor)
	}

	entries, err := s.d.EntryRepo.ListCursor(ctx, repository.EntryCursorFilter{
		HabitID: q.HabitID,
		Cursor:  cursor,
		Limit:   params.Limit,
	})
	if err != nil {
		return nil, err
	}
	page, err := paging.PaginateCursor(entries, params.Limit)
	if err != nil {
		return nil, err
	}
	return &paging.CursorResult[structs.EntryDTO]{
		Items:       structs.ToEntryDTOs(page.Items),
		NextCursor:  page.NextCursor,
		HasNextPage: page.HasNextPage,
	}, nil
}

// Get returns an entry.
func (s *EntryService) Get(ctx context.Context, id, fields string) (*structs.EntryDTO, error) {
	if err := shaping.Validate[structs.EntryDTO](fields); err != nil {
		return nil, err
	}
	e, err := s.d.EntryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := structs.ToEntryDTO(e)
	return &dto, nil
}

// Create records a manual entry for an existing habit.
func (s *EntryService) Create(ctx context.Context, body *structs.CreateEntryBody) (*structs.EntryDTO, error) {
	if _, err := s.d.HabitRepo.GetByID(ctx, body.HabitID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return nil, err
	}
	day, err := parseDay("date", body.Date, false)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, fmt.Errorf("%s: %w", ecode.FieldIsRequired("date"), ErrInvalidArgument)
	}

	created, err := s.d.EntryRepo.Create(ctx, &schema.Entry{
		HabitID: body.HabitID,
		Value:   body.Value,
		Notes:   body.Notes,
		Source:  schema.EntrySourceManual,
		Date:    *day,
	})
	if err != nil {
		s.logger.Errorf(ctx, "failed to create entry: %v", err)
		return nil, err
	}
	dto := structs.ToEntryDTO(created)
	return &dto, nil
}

// Update changes an entry's value and notes.
func (s *EntryService) Update(ctx context.Context, id string, body *structs.UpdateEntryBody) (*structs.EntryDTO, error) {
	e, err := s.d.EntryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Value = body.Value
	e.Notes = body.Notes
	return s.save(ctx, e)
}

// Archive excludes an entry from statistics without deleting it.
func (s *EntryService) Archive(ctx context.Context, id string) (*structs.EntryDTO, error) {
	return s.setArchived(ctx, id, true)
}

// Unarchive restores an archived entry.
func (s *EntryService) Unarchive(ctx context.Context, id string) (*structs.EntryDTO, error) {
	return s.setArchived(ctx, id, false)
}

func (s *EntryService) setArchived(ctx context.Context, id string, archived bool) (*structs.EntryDTO, error) {
	e, err := s.d.EntryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.IsArchived = archived
	return s.save(ctx, e)
}

func (s *EntryService) save(ctx context.Context, e *schema.Entry) (*structs.EntryDTO, error) {
	updated, err := s.d.EntryRepo.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	dto := structs.ToEntryDTO(updated)
	return &dto, nil
}

// Delete removes an entry.
func (s *EntryService) Delete(ctx context.Context, id string) error {
	return s.d.EntryRepo.Delete(ctx, id)
}
