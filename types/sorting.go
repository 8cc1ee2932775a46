package types

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Order represents sorting direction.
type Order string

const (
	Ascending  Order = "asc"  // Ascending order
	Descending Order = "desc" // Descending order
)

// Criterion represents a single sorting criterion.
type Criterion struct {
	Field string `json:"field"` // Field to sort by
	Order Order  `json:"order"` // Sort direction
}

// Descending reports whether the criterion sorts in descending order.
func (c Criterion) Descending() bool {
	return c.Order == Descending
}

// MultiCriteria supports multi-field sorting.
type MultiCriteria struct {
	Criteria []Criterion `json:"criteria"` // List of sorting criteria, applied left to right
}

// Getter resolves the value of a field on an item; ok is false for unknown fields.
type Getter[T any] func(item T, field string) (value any, ok bool)

// Sort stably sorts items by the criteria. Criteria the getter does not
// know are skipped. Items equal on every criterion keep their input order.
func Sort[T any](items []T, criteria MultiCriteria, getter Getter[T]) {
	if getter == nil || len(criteria.Criteria) == 0 {
		return
	}
	slices.SortStableFunc(items, func(a, b T) int {
		for _, c := range criteria.Criteria {
			va, okA := getter(a, c.Field)
			vb, okB := getter(b, c.Field)
			if !okA || !okB {
				continue
			}
			comparison := CompareValues(va, vb)
			if c.Descending() {
				comparison = -comparison
			}
			if comparison != 0 {
				return comparison
			}
		}
		return 0
	})
}

// CompareValues compares two values and returns -1, 0, or 1.
// Nil sorts before any value. Strings compare case-insensitively.
// Values of mismatched or unsupported types are considered equal.
func CompareValues(a, b any) int {
	a, b = deref(a), deref(b)
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch aVal := a.(type) {
	case int:
		if bVal, ok := b.(int); ok {
			return cmp.Compare(aVal, bVal)
		}
	case int64:
		if bVal, ok := b.(int64); ok {
			return cmp.Compare(aVal, bVal)
		}
	case float64:
		if bVal, ok := b.(float64); ok {
			return cmp.Compare(aVal, bVal)
		}
	case string:
		if bVal, ok := b.(string); ok {
			return CompareString(aVal, bVal)
		}
	case bool:
		if bVal, ok := b.(bool); ok {
			return CompareBool(aVal, bVal)
		}
	case time.Time:
		if bVal, ok := b.(time.Time); ok {
			return aVal.Compare(bVal)
		}
	}
	return 0
}

// CompareString compares two strings case-insensitively, falling back to
// byte order so the result is total.
func CompareString(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// CompareBool orders false before true.
func CompareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func deref(v any) any {
	switch p := v.(type) {
	case *time.Time:
		if p == nil {
			return nil
		}
		return *p
	case *string:
		if p == nil {
			return nil
		}
		return *p
	case *int:
		if p == nil {
			return nil
		}
		return *p
	case *float64:
		if p == nil {
			return nil
		}
		return *p
	}
	return v
}
