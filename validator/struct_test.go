package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type query struct {
	Page     int    `form:"page" validate:"gte=1"`
	PageSize int    `form:"page_size" validate:"gte=1,lte=50"`
	Status   string `form:"status" validate:"omitempty,oneof=ongoing completed"`
	From     string `form:"from" validate:"isodate"`
}

type body struct {
	Name string `json:"name" validate:"required,max=10"`
}

func TestValidateStructValid(t *testing.T) {
	errs := ValidateStruct(&query{Page: 1, PageSize: 10, From: "2025-01-01"})
	assert.Empty(t, errs)
}

func TestValidateStructUsesClientNames(t *testing.T) {
	errs := ValidateStruct(&query{Page: 0, PageSize: 51, Status: "paused", From: "yesterday"})
	assert.Equal(t, "The field 'page' must be greater than or equal to 1.", errs["page"])
	assert.Equal(t, "The field 'page_size' must be less than or equal to 50.", errs["page_size"])
	assert.Equal(t, "The field 'status' must be one of [ongoing completed].", errs["status"])
	assert.Equal(t, "The field 'from' must be an ISO 8601 date.", errs["from"])
}

func TestValidateStructJSONTags(t *testing.T) {
	errs := ValidateStruct(&body{})
	assert.Equal(t, map[string]string{"name": "The field 'name' is required."}, errs)
}
