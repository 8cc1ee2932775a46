package hateoas

import (
	"errors"
	"fmt"

	"github.com/ncobase/habits/paging"
	"github.com/ncobase/habits/shaping"
)

// ErrLengthMismatch signals that shaped items and their source records are
// out of step. It is raised as a panic: it indicates a bug in shaping.
var ErrLengthMismatch = errors.New("hateoas: shaped items and records differ in length")

// ItemLinks builds the links of one record.
type ItemLinks[T any] func(record T) []Link

// Envelope is a shaped collection that can carry collection level links.
type Envelope interface {
	Items() []*shaping.ShapedItem
	SetLinks(links []Link)
}

// Collection is the offset paginated envelope.
type Collection struct {
	Data []*shaping.ShapedItem `json:"data"`
	paging.PageMeta
	Links []Link `json:"links,omitempty"`
}

// NewCollection wraps a shaped page and its metadata.
func NewCollection(items []*shaping.ShapedItem, meta paging.PageMeta) *Collection {
	if items == nil {
		items = []*shaping.ShapedItem{}
	}
	return &Collection{Data: items, PageMeta: meta}
}

// Items implements Envelope.
func (c *Collection) Items() []*shaping.ShapedItem { return c.Data }

// SetLinks implements Envelope.
func (c *Collection) SetLinks(links []Link) { c.Links = links }

// CursorCollection is the cursor paginated envelope. NextCursor is not
// serialized; link factories embed it in the next-page link.
type CursorCollection struct {
	Data        []*shaping.ShapedItem `json:"data"`
	Links       []Link                `json:"links,omitempty"`
	NextCursor  string                `json:"-"`
	HasNextPage bool                  `json:"-"`
}

// NewCursorCollection wraps a shaped cursor page.
func NewCursorCollection(items []*shaping.ShapedItem, nextCursor string, hasNext bool) *CursorCollection {
	if items == nil {
		items = []*shaping.ShapedItem{}
	}
	return &CursorCollection{Data: items, NextCursor: nextCursor, HasNextPage: hasNext}
}

// Items implements Envelope.
func (c *CursorCollection) Items() []*shaping.ShapedItem { return c.Data }

// SetLinks implements Envelope.
func (c *CursorCollection) SetLinks(links []Link) { c.Links = links }

// ComposeItem appends the record's links to item when negotiated.
func ComposeItem[T any](item *shaping.ShapedItem, record T, links ItemLinks[T], negotiated bool) *shaping.ShapedItem {
	if !negotiated || links == nil || item == nil {
		return item
	}
	item.SetLast(shaping.LinksKey, links(record))
	return item
}

// ComposeCollection adds per-item links, zipped positionally with records,
// and collection links when negotiated. Either factory may be nil.
// It panics with ErrLengthMismatch when records and items differ in length.
func ComposeCollection[E Envelope, T any](env E, records []T, itemLinks ItemLinks[T], collectionLinks func(E) []Link, negotiated bool) E {
	if !negotiated {
		return env
	}
	if itemLinks != nil {
		items := env.Items()
		if len(items) != len(records) {
			panic(fmt.Errorf("%w: %d items, %d records", ErrLengthMismatch, len(items), len(records)))
		}
		for i, item := range items {
			item.SetLast(shaping.LinksKey, itemLinks(records[i]))
		}
	}
	if collectionLinks != nil {
		env.SetLinks(collectionLinks(env))
	}
	return env
}
