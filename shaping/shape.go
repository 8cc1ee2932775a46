package shaping

import (
	"reflect"
)

// LinkFactory produces the value stored under LinksKey for a record.
type LinkFactory[T any] func(record T) any

// Shape projects record onto the fields named in the comma separated list.
func Shape[T any](record T, fields string) (*ShapedItem, error) {
	sel := ParseFields(fields)
	v, info, err := resolve(record)
	if err != nil {
		return nil, err
	}
	if err := info.validate(fields, sel); err != nil {
		return nil, err
	}
	return info.shape(v, sel), nil
}

// ShapeMany shapes every record, preserving order and count. When links is
// non-nil its output is appended under LinksKey as the last key of each item.
// Validation happens once, before any record is shaped.
func ShapeMany[T any](records []T, fields string, links LinkFactory[T]) ([]*ShapedItem, error) {
	sel := ParseFields(fields)

	// Concrete element types are validated once; interface element types
	// are validated per dynamic type.
	static := reflect.TypeFor[T]()
	perRecord := static.Kind() == reflect.Interface
	if !perRecord {
		info, err := infoFor(static)
		if err != nil {
			return nil, err
		}
		if err := info.validate(fields, sel); err != nil {
			return nil, err
		}
	}

	values := make([]reflect.Value, len(records))
	tables := make([]*typeInfo, len(records))
	for i, r := range records {
		v, info, err := resolve(r)
		if err != nil {
			return nil, err
		}
		if perRecord {
			if err := info.validate(fields, sel); err != nil {
				return nil, err
			}
		}
		values[i], tables[i] = v, info
	}

	items := make([]*ShapedItem, len(records))
	for i := range records {
		items[i] = tables[i].shape(values[i], sel)
		if links != nil {
			items[i].SetLast(LinksKey, links(records[i]))
		}
	}
	return items, nil
}

func resolve(record any) (reflect.Value, *typeInfo, error) {
	v := reflect.ValueOf(record)
	if !v.IsValid() {
		return v, nil, ErrNilRecord
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, nil, ErrNilRecord
		}
		v = v.Elem()
	}
	info, err := infoFor(v.Type())
	if err != nil {
		return v, nil, err
	}
	return v, info, nil
}

func (ti *typeInfo) shape(v reflect.Value, sel FieldSelection) *ShapedItem {
	n := len(ti.fields)
	if !sel.All() {
		n = sel.Len() + 1
	}
	item := NewShapedItem(n)
	for _, f := range ti.fields {
		if sel.Has(f.name) {
			item.fields = append(item.fields, Field{Name: f.name, Value: f.get(v)})
		}
	}
	return item
}
