package structs

// QueryParams are the listing parameters shared by offset paginated
// resources. The url tags encode them back into paging links.
type QueryParams struct {
	Fields   string `form:"fields" json:"fields" url:"fields,omitempty"`
	Sort     string `form:"sort" json:"sort" url:"sort,omitempty"`
	Page     int    `form:"page,default=1" json:"page" validate:"gte=1" url:"page,omitempty"`
	PageSize int    `form:"page_size" json:"page_size" validate:"gte=1" url:"page_size,omitempty"`
	Search   string `form:"q" json:"q" validate:"max=100" url:"q,omitempty"`
}

// HabitQueryParams filters GET /habits.
type HabitQueryParams struct {
	QueryParams
	Type   string `form:"type" json:"type" validate:"omitempty,oneof=binary measurable" url:"type,omitempty"`
	Status string `form:"status" json:"status" validate:"omitempty,oneof=ongoing completed" url:"status,omitempty"`
}

// EntryQueryParams filters GET /entries. From and To are inclusive days.
type EntryQueryParams struct {
	QueryParams
	HabitID string `form:"habit_id" json:"habit_id" url:"habit_id,omitempty"`
	From    string `form:"from" json:"from" validate:"isodate" url:"from,omitempty"`
	To      string `form:"to" json:"to" validate:"isodate" url:"to,omitempty"`
}

// CursorQueryParams are the parameters of GET /entries/cursor. Upper bounds
// on page_size and limit come from the paging configuration.
type CursorQueryParams struct {
	Cursor  string `form:"cursor" json:"cursor" url:"cursor,omitempty"`
	Limit   int    `form:"limit" json:"limit" validate:"gte=1" url:"limit,omitempty"`
	Fields  string `form:"fields" json:"fields" url:"fields,omitempty"`
	HabitID string `form:"habit_id" json:"habit_id" url:"habit_id,omitempty"`
}

// FieldsParams carries the sparse fieldset of single resource reads.
type FieldsParams struct {
	Fields string `form:"fields" json:"fields" url:"fields,omitempty"`
}
