// Package data wires the habit, entry and tag stores.
package data

import (
	"github.com/ncobase/habits/internal/data/repository"
	"github.com/ncobase/habits/logging/logger"
)

// Data encapsulates all data layer dependencies.
type Data struct {
	HabitRepo repository.HabitRepository
	EntryRepo repository.EntryRepository
	TagRepo   repository.TagRepository
}

// NewData creates a new Data instance with initialized repositories.
func NewData(logger *logger.Logger) *Data {
	return &Data{
		HabitRepo: repository.NewHabitRepository(logger),
		EntryRepo: repository.NewEntryRepository(logger),
		TagRepo:   repository.NewTagRepository(logger),
	}
}
