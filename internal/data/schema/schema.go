// Package schema defines the stored habit, entry and tag entities.
package schema

import "time"

// HabitType distinguishes yes/no habits from counted ones.
type HabitType int

const (
	HabitTypeNone HabitType = iota
	HabitTypeBinary
	HabitTypeMeasurable
)

// HabitStatus is the lifecycle state of a habit.
type HabitStatus int

const (
	HabitStatusNone HabitStatus = iota
	HabitStatusOngoing
	HabitStatusCompleted
)

// FrequencyType is the period a habit target applies to.
type FrequencyType int

const (
	FrequencyNone FrequencyType = iota
	FrequencyDaily
	FrequencyWeekly
	FrequencyMonthly
)

// EntrySource records how an entry was created.
type EntrySource int

const (
	EntrySourceManual EntrySource = iota
	EntrySourceAutomation
	EntrySourceFileImport
)

type Frequency struct {
	Type           FrequencyType
	TimesPerPeriod int
}

type Target struct {
	Value int
	Unit  string
}

type Milestone struct {
	Target  int
	Current int
}

type Habit struct {
	ID                 string
	Name               string
	Description        *string
	Type               HabitType
	Frequency          Frequency
	Target             Target
	Status             HabitStatus
	IsArchived         bool
	EndDate            *time.Time
	Milestone          *Milestone
	CreatedAtUtc       time.Time
	UpdatedAtUtc       *time.Time
	LastCompletedAtUtc *time.Time
	TagIDs             []string
}

type Entry struct {
	ID           string
	HabitID      string
	Value        int
	Notes        *string
	Source       EntrySource
	ExternalID   *string
	IsArchived   bool
	Date         time.Time
	CreatedAtUtc time.Time
	UpdatedAtUtc *time.Time
}

// CursorKey returns the keyset of the entry for cursor pagination.
func (e *Entry) CursorKey() (string, time.Time) {
	return e.ID, e.Date
}

type Tag struct {
	ID           string
	Name         string
	Description  *string
	CreatedAtUtc time.Time
	UpdatedAtUtc *time.Time
}
