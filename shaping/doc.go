// Package shaping projects records into sparse, ordered field maps.
//
// A client names the fields it wants as a comma separated list; the list is
// matched case-insensitively against the JSON names of the record's struct
// fields. An empty list selects every field. Output keys keep their declared
// casing and their declaration order, whatever order the client used.
//
//	item, err := shaping.Shape(habit, "id,name,type")
//	// {"id": "...", "name": "...", "type": "binary"}
//
// Validation is strict: one unknown name fails the whole list with a
// *FieldValidationError before any record is shaped.
//
// Field metadata is discovered once per type and cached for the lifetime of
// the process.
package shaping
