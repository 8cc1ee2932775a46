package paging

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ncobase/habits/types"
)

// Cursor is the tie-break key of the last item of a page.
type Cursor struct {
	ID   string    `json:"Id"`
	Date time.Time `json:"Date"`
}

// Keyed is implemented by items that can be paged by cursor.
type Keyed interface {
	CursorKey() (id string, date time.Time)
}

// Params holds the cursor pagination parameters
type Params struct {
	Cursor string `json:"cursor" form:"cursor"`
	Limit  int    `json:"limit" form:"limit"`
}

// Limit bounds applied by NormalizeParams.
const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// Limits bounds the size of a cursor page.
type Limits struct {
	Default int
	Max     int
}

// DefaultLimits are the bounds applied by NormalizeParams.
var DefaultLimits = Limits{Default: DefaultLimit, Max: MaxLimit}

// Normalize applies the default to a missing limit and clamps it to Max.
// Unset bounds fall back to DefaultLimits.
func (l Limits) Normalize(params Params) Params {
	if l.Default <= 0 {
		l.Default = DefaultLimit
	}
	if l.Max <= 0 {
		l.Max = max(MaxLimit, l.Default)
	}
	if params.Limit <= 0 {
		params.Limit = l.Default
	}
	if params.Limit > l.Max {
		params.Limit = l.Max
	}
	return params
}

// NormalizeParams ensures that Limit is within an acceptable range
func NormalizeParams(params Params) Params {
	return DefaultLimits.Normalize(params)
}

// ErrCursorEncoding is returned when a key cannot be encoded, e.g. a date
// outside the years 0-9999.
var ErrCursorEncoding = errors.New("paging: cursor key cannot be encoded")

// EncodeCursor encodes an (id, date) key as an opaque URL safe token.
func EncodeCursor(id string, date time.Time) (string, error) {
	b, err := json.Marshal(Cursor{ID: id, Date: date.UTC()})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCursorEncoding, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// DecodeCursor decodes a token produced by EncodeCursor. Malformed tokens
// of any kind yield nil and false, which callers treat as no cursor.
func DecodeCursor(token string) (*Cursor, bool) {
	token = strings.TrimRight(strings.TrimSpace(token), "=")
	if token == "" {
		return nil, false
	}
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, false
	}

	var raw struct {
		ID   *string `json:"Id"`
		Date *string `json:"Date"`
	}
	if err := json.Unmarshal(b, &raw); err != nil || raw.ID == nil || raw.Date == nil {
		return nil, false
	}
	date, err := types.ParseDate(*raw.Date)
	if err != nil {
		return nil, false
	}
	return &Cursor{ID: *raw.ID, Date: date}, true
}

// After reports whether an item with the given key is at or after the
// cursor position in date-desc, id-desc order.
func (c *Cursor) After(id string, date time.Time) bool {
	return date.Before(c.Date) || (date.Equal(c.Date) && id <= c.ID)
}

// ApplyCursor keeps the items at or after the cursor. The sequence must be
// ordered by date descending, then id descending. A nil cursor keeps all.
func ApplyCursor[T Keyed](items []T, cursor *Cursor) []T {
	if cursor == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if cursor.After(item.CursorKey()) {
			out = append(out, item)
		}
	}
	return out
}

// CursorResult holds one cursor page.
type CursorResult[T any] struct {
	Items       []T
	NextCursor  string
	HasNextPage bool
}

// PaginateCursor trims a sequence fetched with limit+1 items. When the
// lookahead item exists it is dropped and its key becomes NextCursor. The
// limit is used as given; a non-positive one means DefaultLimit.
func PaginateCursor[T Keyed](items []T, limit int) (*CursorResult[T], error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	result := &CursorResult[T]{Items: items}
	if len(items) > limit {
		token, err := EncodeCursor(items[limit].CursorKey())
		if err != nil {
			return nil, err
		}
		result.Items = items[:limit]
		result.NextCursor = token
		result.HasNextPage = true
	}
	if result.Items == nil {
		result.Items = make([]T, 0)
	}
	return result, nil
}
