package structs

import "time"

// TagDTO is the public representation of a tag.
type TagDTO struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	CreatedAtUtc time.Time  `json:"createdAtUtc"`
	UpdatedAtUtc *time.Time `json:"updatedAtUtc"`
}

// CreateTagBody is the body of POST /tags and PUT /tags/:id.
type CreateTagBody struct {
	Name        string  `json:"name" validate:"required,min=1,max=50"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type UpdateTagBody = CreateTagBody
