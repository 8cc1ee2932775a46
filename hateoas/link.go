package hateoas

import (
	"strings"
)

// Link is a hypermedia link.
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// Link relations
const (
	RelSelf          = "self"
	RelCreate        = "create"
	RelUpdate        = "update"
	RelPartialUpdate = "partial-update"
	RelDelete        = "delete"
	RelNextPage      = "next-page"
	RelPreviousPage  = "previous-page"
	RelUpsertTags    = "upsert-tags"
	RelArchive       = "archive"
	RelUnArchive     = "un-archive"
	RelHabit         = "habit"
	RelEntries       = "entries"
)

// Hypermedia media types
const (
	MediaType   = "application/vnd.dev-habit.hateoas+json"
	MediaTypeV1 = "application/vnd.dev-habit.hateoas.1+json"
	MediaTypeV2 = "application/vnd.dev-habit.hateoas.2+json"
)

// MediaTypes lists every media type that enables links.
var MediaTypes = []string{MediaType, MediaTypeV1, MediaTypeV2}

// IsHypermediaType reports whether mediaType, ignoring parameters and case,
// is one of MediaTypes.
func IsHypermediaType(mediaType string) bool {
	base, _, _ := strings.Cut(mediaType, ";")
	base = strings.ToLower(strings.TrimSpace(base))
	for _, mt := range MediaTypes {
		if base == mt {
			return true
		}
	}
	return false
}
