package structs

import "time"

type FrequencyDTO struct {
	Type           string `json:"type"`
	TimesPerPeriod int    `json:"timesPerPeriod"`
}

type TargetDTO struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

type MilestoneDTO struct {
	Target  int `json:"target"`
	Current int `json:"current"`
}

// HabitDTO is the public representation of a habit.
type HabitDTO struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Description        *string       `json:"description"`
	Type               string        `json:"type"`
	Frequency          FrequencyDTO  `json:"frequency"`
	Target             TargetDTO     `json:"target"`
	Status             string        `json:"status"`
	IsArchived         bool          `json:"isArchived"`
	EndDate            *time.Time    `json:"endDate"`
	Milestone          *MilestoneDTO `json:"milestone"`
	CreatedAtUtc       time.Time     `json:"createdAtUtc"`
	UpdatedAtUtc       *time.Time    `json:"updatedAtUtc"`
	LastCompletedAtUtc *time.Time    `json:"lastCompletedAtUtc"`
}

// HabitWithTagsDTO is a habit together with the names of its tags.
type HabitWithTagsDTO struct {
	HabitDTO
	Tags []string `json:"tags"`
}

type FrequencyBody struct {
	Type           string `json:"type" validate:"required,oneof=daily weekly monthly"`
	TimesPerPeriod int    `json:"timesPerPeriod" validate:"gte=1"`
}

type TargetBody struct {
	Value int    `json:"value" validate:"gte=1"`
	Unit  string `json:"unit" validate:"required,max=50"`
}

type MilestoneBody struct {
	Target int `json:"target" validate:"gte=1"`
}

// CreateHabitBody is the body of POST /habits. PUT /habits/:id uses the same shape.
type CreateHabitBody struct {
	Name        string         `json:"name" validate:"required,min=3,max=100"`
	Description *string        `json:"description" validate:"omitempty,max=500"`
	Type        string         `json:"type" validate:"required,oneof=binary measurable"`
	Frequency   FrequencyBody  `json:"frequency"`
	Target      TargetBody     `json:"target"`
	EndDate     *time.Time     `json:"endDate"`
	Milestone   *MilestoneBody `json:"milestone" validate:"omitempty"`
}

// UpdateHabitBody replaces a habit's editable fields.
type UpdateHabitBody = CreateHabitBody

// PatchHabitBody changes only the fields present.
type PatchHabitBody struct {
	Name        *string     `json:"name" validate:"omitempty,min=3,max=100"`
	Description *string     `json:"description" validate:"omitempty,max=500"`
	Status      *string     `json:"status" validate:"omitempty,oneof=ongoing completed"`
	Target      *TargetBody `json:"target" validate:"omitempty"`
	EndDate     *time.Time  `json:"endDate"`
}

// UpsertTagsBody replaces the tag set of a habit.
type UpsertTagsBody struct {
	TagIDs []string `json:"tagIds" validate:"dive,required"`
}
