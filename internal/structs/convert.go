package structs

import (
	"github.com/ncobase/habits/internal/data/schema"
)

var (
	habitTypeNames = map[schema.HabitType]string{
		schema.HabitTypeBinary:     "binary",
		schema.HabitTypeMeasurable: "measurable",
	}
	habitStatusNames = map[schema.HabitStatus]string{
		schema.HabitStatusOngoing:   "ongoing",
		schema.HabitStatusCompleted: "completed",
	}
	frequencyNames = map[schema.FrequencyType]string{
		schema.FrequencyDaily:   "daily",
		schema.FrequencyWeekly:  "weekly",
		schema.FrequencyMonthly: "monthly",
	}
	entrySourceNames = map[schema.EntrySource]string{
		schema.EntrySourceManual:     "manual",
		schema.EntrySourceAutomation: "automation",
		schema.EntrySourceFileImport: "fileImport",
	}
)

func lookup[K comparable](names map[K]string, name string) (K, bool) {
	for k, v := range names {
		if v == name {
			return k, true
		}
	}
	var zero K
	return zero, false
}

// ParseHabitType maps a public type name to its stored value.
func ParseHabitType(name string) (schema.HabitType, bool) { return lookup(habitTypeNames, name) }

// ParseHabitStatus maps a public status name to its stored value.
func ParseHabitStatus(name string) (schema.HabitStatus, bool) { return lookup(habitStatusNames, name) }

// ParseFrequencyType maps a public frequency name to its stored value.
func ParseFrequencyType(name string) (schema.FrequencyType, bool) { return lookup(frequencyNames, name) }

func ToHabitDTO(h *schema.Habit) HabitDTO {
	dto := HabitDTO{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		Type:        habitTypeNames[h.Type],
		Frequency: FrequencyDTO{
			Type:           frequencyNames[h.Frequency.Type],
			TimesPerPeriod: h.Frequency.TimesPerPeriod,
		},
		Target:             TargetDTO{Value: h.Target.Value, Unit: h.Target.Unit},
		Status:             habitStatusNames[h.Status],
		IsArchived:         h.IsArchived,
		EndDate:            h.EndDate,
		CreatedAtUtc:       h.CreatedAtUtc,
		UpdatedAtUtc:       h.UpdatedAtUtc,
		LastCompletedAtUtc: h.LastCompletedAtUtc,
	}
	if h.Milestone != nil {
		dto.Milestone = &MilestoneDTO{Target: h.Milestone.Target, Current: h.Milestone.Current}
	}
	return dto
}

func ToHabitDTOs(habits []*schema.Habit) []HabitDTO {
	out := make([]HabitDTO, len(habits))
	for i, h := range habits {
		out[i] = ToHabitDTO(h)
	}
	return out
}

func ToEntryDTO(e *schema.Entry) EntryDTO {
	return EntryDTO{
		ID:           e.ID,
		HabitID:      e.HabitID,
		Value:        e.Value,
		Notes:        e.Notes,
		Source:       entrySourceNames[e.Source],
		ExternalID:   e.ExternalID,
		IsArchived:   e.IsArchived,
		Date:         e.Date,
		CreatedAtUtc: e.CreatedAtUtc,
		UpdatedAtUtc: e.UpdatedAtUtc,
	}
}

func ToEntryDTOs(entries []*schema.Entry) []EntryDTO {
	out := make([]EntryDTO, len(entries))
	for i, e := range entries {
		out[i] = ToEntryDTO(e)
	}
	return out
}

func ToTagDTO(t *schema.Tag) TagDTO {
	return TagDTO{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		CreatedAtUtc: t.CreatedAtUtc,
		UpdatedAtUtc: t.UpdatedAtUtc,
	}
}

func ToTagDTOs(tags []*schema.Tag) []TagDTO {
	out := make([]TagDTO, len(tags))
	for i, t := range tags {
		out[i] = ToTagDTO(t)
	}
	return out
}
