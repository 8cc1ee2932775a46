// Package paging implements the two pagination strategies used by list
// endpoints.
//
// # Offset Pagination
//
// A Source answers a count of the full filtered sequence and a slice of it.
// PaginateOffset combines both into a page and its metadata:
//
//	result, err := paging.PaginateOffset(ctx, src, 2, 10)
//	// result.Meta.TotalPages == ceil(TotalCount / 10)
//
// Both calls must observe the same snapshot of the data; the package does
// not correct for writes landing between them.
//
// # Cursor Pagination
//
// Cursors are opaque tokens carrying the (id, date) key of the last item
// a client saw, for sequences ordered by date descending then id
// descending:
//
//	token, err := paging.EncodeCursor(entry.ID, entry.Date)
//	cursor, ok := paging.DecodeCursor(token) // ok is false for any malformed token
//	items = paging.ApplyCursor(items, cursor)
//
// Fetch limit+1 items and let PaginateCursor trim the lookahead:
//
//	result, err := paging.PaginateCursor(items, limit)
//	// result.NextCursor encodes the trimmed item when HasNextPage
//
// Cursors are not signed. A client can forge any (id, date) pair; treat the
// token as a position hint, never as an access boundary.
package paging
