package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncobase/habits/internal/data"
	"github.com/ncobase/habits/internal/data/repository"
	"github.com/ncobase/habits/internal/data/schema"
	"github.com/ncobase/habits/internal/structs"
	"github.com/ncobase/habits/logging/logger"
	"github.com/ncobase/habits/paging"
	"github.com/ncobase/habits/shaping"
	"github.com/ncobase/habits/sorting"
)

// HabitService handles habit business logic.
type HabitService struct {
	d      *data.Data
	sorts  *sorting.Registry
	logger *logger.Logger
}

// NewHabitService creates a new habit service.
func NewHabitService(d *data.Data, sorts *sorting.Registry, logger *logger.Logger) *HabitService {
	return &HabitService{d: d, sorts: sorts, logger: logger}
}

// List returns one page of habits. Fields are validated before any fetch.
func (s *HabitService) List(ctx context.Context, q structs.HabitQueryParams) (*paging.OffsetResult[structs.HabitDTO], error) {
	if err := shaping.Validate[structs.HabitDTO](q.Fields); err != nil {
		return nil, err
	}
	def, err := sorting.Get[structs.HabitDTO, schema.Habit](s.sorts)
	if err != nil {
		return nil, err
	}

	filter := repository.HabitFilter{
		Search: q.Search,
		Order:  orderBy(ctx, s.logger, q.Sort, def, structs.DefaultHabitSort),
	}
	if q.Type != "" {
		t, ok := structs.ParseHabitType(q.Type)
		if !ok {
			return nil, fmt.Errorf("habit type %q: %w", q.Type, ErrInvalidArgument)
		}
		filter.Type = &t
	}
	if q.Status != "" {
		st, ok := structs.ParseHabitStatus(q.Status)
		if !ok {
			return nil, fmt.Errorf("habit status %q: %w", q.Status, ErrInvalidArgument)
		}
		filter.Status = &st
	}

	src, err := s.d.HabitRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	page, err := paging.PaginateOffset(ctx, src, q.Page, q.PageSize)
	if err != nil {
		return nil, err
	}
	return &paging.OffsetResult[structs.HabitDTO]{Items: structs.ToHabitDTOs(page.Items), Meta: page.Meta}, nil
}

// Get returns a habit with its tag names.
func (s *HabitService) Get(ctx context.Context, id, fields string) (*structs.HabitWithTagsDTO, error) {
	if err := shaping.Validate[structs.HabitWithTagsDTO](fields); err != nil {
		return nil, err
	}
	h, err := s.d.HabitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(h.TagIDs))
	for _, tagID := range h.TagIDs {
		t, err := s.d.TagRepo.GetByID(ctx, tagID)
		if errors.Is(err, repository.ErrNotFound) {
			continue // deleted since it was attached
		}
		if err != nil {
			return nil, err
		}
		names = append(names, t.Name)
	}
	return &structs.HabitWithTagsDTO{HabitDTO: structs.ToHabitDTO(h), Tags: names}, nil
}

func habitFromBody(body *structs.CreateHabitBody) (*schema.Habit, error) {
	typ, ok := structs.ParseHabitType(body.Type)
	if !ok {
		return nil, fmt.Errorf("habit type %q: %w", body.Type, ErrInvalidArgument)
	}
	freq, ok := structs.ParseFrequencyType(body.Frequency.Type)
	if !ok {
		return nil, fmt.Errorf("frequency type %q: %w", body.Frequency.Type, ErrInvalidArgument)
	}
	h := &schema.Habit{
		Name:        body.Name,
		Description: body.Description,
		Type:        typ,
		Frequency:   schema.Frequency{Type: freq, TimesPerPeriod: body.Frequency.TimesPerPeriod},
		Target:      schema.Target{Value: body.Target.Value, Unit: body.Target.Unit},
		Status:      schema.HabitStatusOngoing,
		EndDate:     body.EndDate,
	}
	if body.Milestone != nil {
		h.Milestone = &schema.Milestone{Target: body.Milestone.Target}
	}
	return h, nil
}

// Create creates a habit in the ongoing status.
func (s *HabitService) Create(ctx context.Context, body *structs.CreateHabitBody) (*structs.HabitDTO, error) {
	h, err := habitFromBody(body)
	if err != nil {
		return nil, err
	}
	created, err := s.d.HabitRepo.Create(ctx, h)
	if err != nil {
		s.logger.Errorf(ctx, "failed to create habit: %v", err)
		return nil, err
	}
	dto := structs.ToHabitDTO(created)
	return &dto, nil
}

// Update replaces a habit's editable fields. Status, archive flag and
// milestone progress are kept.
func (s *HabitService) Update(ctx context.Context, id string, body *structs.UpdateHabitBody) (*structs.HabitDTO, error) {
	existing, err := s.d.HabitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	h, err := habitFromBody(body)
	if err != nil {
		return nil, err
	}
	h.ID = existing.ID
	h.Status = existing.Status
	h.IsArchived = existing.IsArchived
	h.LastCompletedAtUtc = existing.LastCompletedAtUtc
	if h.Milestone != nil && existing.Milestone != nil {
		h.Milestone.Current = existing.Milestone.Current
	}
	return s.save(ctx, h)
}

// Patch changes the fields present in body.
func (s *HabitService) Patch(ctx context.Context, id string, body *structs.PatchHabitBody) (*structs.HabitDTO, error) {
	h, err := s.d.HabitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if body.Name != nil {
		h.Name = *body.Name
	}
	if body.Description != nil {
		h.Description = body.Description
	}
	if body.Status != nil {
		st, ok := structs.ParseHabitStatus(*body.Status)
		if !ok {
			return nil, fmt.Errorf("habit status %q: %w", *body.Status, ErrInvalidArgument)
		}
		h.Status = st
	}
	if body.Target != nil {
		h.Target = schema.Target{Value: body.Target.Value, Unit: body.Target.Unit}
	}
	if body.EndDate != nil {
		h.EndDate = body.EndDate
	}
	return s.save(ctx, h)
}

// Archive hides a habit from daily tracking without deleting it.
func (s *HabitService) Archive(ctx context.Context, id string) (*structs.HabitDTO, error) {
	return s.setArchived(ctx, id, true)
}

// Unarchive restores an archived habit.
func (s *HabitService) Unarchive(ctx context.Context, id string) (*structs.HabitDTO, error) {
	return s.setArchived(ctx, id, false)
}

func (s *HabitService) setArchived(ctx context.Context, id string, archived bool) (*structs.HabitDTO, error) {
	h, err := s.d.HabitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	h.IsArchived = archived
	return s.save(ctx, h)
}

func (s *HabitService) save(ctx context.Context, h *schema.Habit) (*structs.HabitDTO, error) {
	updated, err := s.d.HabitRepo.Update(ctx, h)
	if err != nil {
		return nil, err
	}
	dto := structs.ToHabitDTO(updated)
	return &dto, nil
}

// Delete removes a habit and its entries.
func (s *HabitService) Delete(ctx context.Context, id string) error {
	if err := s.d.HabitRepo.Delete(ctx, id); err != nil {
		return err
	}
	n, err := s.d.EntryRepo.DeleteByHabit(ctx, id)
	if err != nil {
		return err
	}
	s.logger.Infof(ctx, "habit %s deleted with %d entries", id, n)
	return nil
}

// UpsertTags replaces the tags of a habit. Every tag must exist.
func (s *HabitService) UpsertTags(ctx context.Context, id string, body *structs.UpsertTagsBody) error {
	if _, err := s.d.TagRepo.GetByIDs(ctx, body.TagIDs); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return err
	}
	_, err := s.d.HabitRepo.SetTags(ctx, id, body.TagIDs)
	return err
}
