package shaping

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrUnsupportedType is returned for records that are not structs or pointers to structs.
var ErrUnsupportedType = errors.New("shaping: record type is not a struct")

// ErrNilRecord is returned when a nil pointer record is shaped.
var ErrNilRecord = errors.New("shaping: nil record")

// FieldValidationError reports a field list naming unknown fields.
type FieldValidationError struct {
	Fields  string   // list as supplied by the client
	Invalid []string // names with no matching property
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("the provided data shaping fields aren't valid: '%s'", e.Fields)
}

// IsFieldValidationError reports whether err carries a *FieldValidationError.
func IsFieldValidationError(err error) bool {
	var fe *FieldValidationError
	return errors.As(err, &fe)
}

// FieldSelection is a case-insensitive set of requested field names.
type FieldSelection struct {
	names []string // as supplied, first-seen order
	set   map[string]struct{}
}

// ParseFields splits a comma separated list, trimming whitespace and
// ignoring empty entries.
func ParseFields(fields string) FieldSelection {
	sel := FieldSelection{set: map[string]struct{}{}}
	for _, f := range strings.Split(fields, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		key := strings.ToLower(f)
		if _, ok := sel.set[key]; ok {
			continue
		}
		sel.set[key] = struct{}{}
		sel.names = append(sel.names, f)
	}
	return sel
}

// All reports whether the selection is empty and therefore selects every field.
func (s FieldSelection) All() bool { return len(s.set) == 0 }

// Has reports whether name is selected.
func (s FieldSelection) Has(name string) bool {
	if s.All() {
		return true
	}
	_, ok := s.set[strings.ToLower(name)]
	return ok
}

// Len returns the number of distinct names requested.
func (s FieldSelection) Len() int { return len(s.set) }

// Validate checks fields against the properties of T.
func Validate[T any](fields string) error {
	return ValidateType(reflect.TypeFor[T](), fields)
}

// ValidateType checks fields against the properties of t.
func ValidateType(t reflect.Type, fields string) error {
	info, err := infoFor(t)
	if err != nil {
		return err
	}
	return info.validate(fields, ParseFields(fields))
}

// Properties returns the declared property names of T.
func Properties[T any]() ([]string, error) {
	info, err := infoFor(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	names := make([]string, len(info.fields))
	for i, f := range info.fields {
		names[i] = f.name
	}
	return names, nil
}

func (ti *typeInfo) validate(raw string, sel FieldSelection) error {
	var invalid []string
	for _, name := range sel.names {
		if _, ok := ti.byName[strings.ToLower(name)]; !ok {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		return &FieldValidationError{Fields: raw, Invalid: invalid}
	}
	return nil
}
