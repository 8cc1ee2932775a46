package structs

import "time"

// EntryDTO is the public representation of a habit entry.
type EntryDTO struct {
	ID           string     `json:"id"`
	HabitID      string     `json:"habitId"`
	Value        int        `json:"value"`
	Notes        *string    `json:"notes"`
	Source       string     `json:"source"`
	ExternalID   *string    `json:"externalId"`
	IsArchived   bool       `json:"isArchived"`
	Date         time.Time  `json:"date"`
	CreatedAtUtc time.Time  `json:"createdAtUtc"`
	UpdatedAtUtc *time.Time `json:"updatedAtUtc"`
}

// CreateEntryBody is the body of POST /entries.
type CreateEntryBody struct {
	HabitID string  `json:"habitId" validate:"required"`
	Value   int     `json:"value" validate:"gte=0"`
	Notes   *string `json:"notes" validate:"omitempty,max=1000"`
	Date    string  `json:"date" validate:"required,isodate"`
}

// UpdateEntryBody is the body of PUT /entries/:id.
type UpdateEntryBody struct {
	Value int     `json:"value" validate:"gte=0"`
	Notes *string `json:"notes" validate:"omitempty,max=1000"`
}
