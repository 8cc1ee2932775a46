// Package service orchestrates field validation, sort translation, storage
// and pagination for the habits API.
package service

import (
	"context"
	"errors"

	"github.com/ncobase/habits/config"
	"github.com/ncobase/habits/internal/data"
	"github.com/ncobase/habits/logging/logger"
	"github.com/ncobase/habits/paging"
	"github.com/ncobase/habits/sorting"
	"github.com/ncobase/habits/types"
)

// ErrInvalidArgument is returned for requests that are well formed but
// reference values the service cannot accept.
var ErrInvalidArgument = errors.New("invalid argument")

// Service aggregates all business logic services.
type Service struct {
	Habit *HabitService
	Entry *EntryService
	Tag   *TagService
}

// NewService creates a new service instance with all sub-services
// initialized. A nil cfg uses the default paging bounds.
func NewService(d *data.Data, sorts *sorting.Registry, cfg *config.Config, logger *logger.Logger) *Service {
	limits := paging.DefaultLimits
	if cfg != nil && cfg.Paging != nil {
		limits = paging.Limits{Default: cfg.Paging.DefaultLimit, Max: cfg.Paging.MaxLimit}
	}
	return &Service{
		Habit: NewHabitService(d, sorts, logger),
		Entry: NewEntryService(d, sorts, limits, logger),
		Tag:   NewTagService(d, sorts, logger),
	}
}

// orderBy translates sort against def. Unknown tokens are dropped.
func orderBy(ctx context.Context, log *logger.Logger, sort string, def *sorting.Definition, fallback string) types.MultiCriteria {
	if !sorting.Validate(sort, def) {
		log.Debugf(ctx, "ignoring unknown sort fields in %q", sort)
	}
	return sorting.Translate(sort, def, fallback)
}
