package structs

import (
	"github.com/ncobase/habits/internal/data/schema"
	"github.com/ncobase/habits/sorting"
)

// Ordering targets understood by the repository.
const (
	OrderName         = "Name"
	OrderDescription  = "Description"
	OrderType         = "Type"
	OrderStatus       = "Status"
	OrderFrequency    = "Frequency.Type"
	OrderTargetValue  = "Target.Value"
	OrderTargetUnit   = "Target.Unit"
	OrderEndDate      = "EndDate"
	OrderCreatedAt    = "CreatedAtUtc"
	OrderUpdatedAt    = "UpdatedAtUtc"
	OrderLastComplete = "LastCompletedAtUtc"
	OrderValue        = "Value"
	OrderDate         = "Date"
	OrderNotes        = "Notes"
	OrderSource       = "Source"
)

// Default sort fields when a request names none that are known.
const (
	DefaultHabitSort = "name"
	DefaultEntrySort = "date"
	DefaultTagSort   = "name"
)

var HabitSortMapping = sorting.MustDefinition("habits",
	sorting.Mapping{SortField: "name", TargetPath: OrderName},
	sorting.Mapping{SortField: "description", TargetPath: OrderDescription},
	sorting.Mapping{SortField: "type", TargetPath: OrderType},
	sorting.Mapping{SortField: "status", TargetPath: OrderStatus},
	sorting.Mapping{SortField: "frequency.type", TargetPath: OrderFrequency},
	sorting.Mapping{SortField: "target.value", TargetPath: OrderTargetValue},
	sorting.Mapping{SortField: "target.unit", TargetPath: OrderTargetUnit},
	sorting.Mapping{SortField: "endDate", TargetPath: OrderEndDate},
	sorting.Mapping{SortField: "createdAtUtc", TargetPath: OrderCreatedAt},
	sorting.Mapping{SortField: "updatedAtUtc", TargetPath: OrderUpdatedAt},
	sorting.Mapping{SortField: "lastCompletedAtUtc", TargetPath: OrderLastComplete},
	// age grows as the creation time falls.
	sorting.Mapping{SortField: "age", TargetPath: OrderCreatedAt, Reverse: true},
)

var EntrySortMapping = sorting.MustDefinition("entries",
	sorting.Mapping{SortField: "value", TargetPath: OrderValue},
	sorting.Mapping{SortField: "date", TargetPath: OrderDate},
	sorting.Mapping{SortField: "notes", TargetPath: OrderNotes},
	sorting.Mapping{SortField: "source", TargetPath: OrderSource},
	sorting.Mapping{SortField: "createdAtUtc", TargetPath: OrderCreatedAt},
	sorting.Mapping{SortField: "updatedAtUtc", TargetPath: OrderUpdatedAt},
)

var TagSortMapping = sorting.MustDefinition("tags",
	sorting.Mapping{SortField: "name", TargetPath: OrderName},
	sorting.Mapping{SortField: "description", TargetPath: OrderDescription},
	sorting.Mapping{SortField: "createdAtUtc", TargetPath: OrderCreatedAt},
	sorting.Mapping{SortField: "updatedAtUtc", TargetPath: OrderUpdatedAt},
)

// NewSortRegistry registers the mapping of every public DTO onto its entity.
func NewSortRegistry() *sorting.Registry {
	r := sorting.NewRegistry()
	sorting.Register[HabitDTO, schema.Habit](r, HabitSortMapping)
	sorting.Register[HabitWithTagsDTO, schema.Habit](r, HabitSortMapping)
	sorting.Register[EntryDTO, schema.Entry](r, EntrySortMapping)
	sorting.Register[TagDTO, schema.Tag](r, TagSortMapping)
	return r
}
