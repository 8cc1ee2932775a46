// Package repository provides the in-memory habit, entry and tag stores.
package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ncobase/habits/ecode"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write violates a uniqueness rule.
	ErrConflict = errors.New("record conflicts with an existing one")
)

// Id prefixes per resource.
const (
	habitPrefix = "h_"
	entryPrefix = "e_"
	tagPrefix   = "t_"
)

// newID returns a prefixed, time ordered id.
func newID(prefix string) string {
	return prefix + uuid.Must(uuid.NewV7()).String()
}

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s: %w", ecode.NotExist(kind+" "+id), ErrNotFound)
}
