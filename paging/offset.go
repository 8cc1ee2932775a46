package paging

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidPage is returned for page numbers below 1.
	ErrInvalidPage = errors.New("paging: page must be at least 1")
	// ErrInvalidPageSize is returned for page sizes below 1.
	ErrInvalidPageSize = errors.New("paging: page size must be positive")
)

// Source is an ordered, filtered sequence that can be counted and sliced.
type Source[T any] interface {
	Count(ctx context.Context) (int, error)
	Slice(ctx context.Context, offset, limit int) ([]T, error)
}

// PageMeta holds the derived metadata of an offset page.
type PageMeta struct {
	Page            int  `json:"page"`
	PageSize        int  `json:"pageSize"`
	TotalCount      int  `json:"totalCount"`
	TotalPages      int  `json:"totalPages"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

// NewPageMeta derives page metadata. pageSize must be positive.
func NewPageMeta(page, pageSize, totalCount int) (PageMeta, error) {
	if page < 1 {
		return PageMeta{}, ErrInvalidPage
	}
	if pageSize <= 0 {
		return PageMeta{}, ErrInvalidPageSize
	}
	totalPages := totalCount / pageSize
	if totalCount%pageSize != 0 {
		totalPages++
	}
	return PageMeta{
		Page:            page,
		PageSize:        pageSize,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasPreviousPage: page > 1,
		HasNextPage:     page < totalPages,
	}, nil
}

// OffsetResult is one page of items with its metadata.
type OffsetResult[T any] struct {
	Items []T
	Meta  PageMeta
}

// PaginateOffset counts src, then slices the requested page out of it.
func PaginateOffset[T any](ctx context.Context, src Source[T], page, pageSize int) (*OffsetResult[T], error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}

	total, err := src.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("pagination count error: %w", err)
	}
	meta, err := NewPageMeta(page, pageSize, total)
	if err != nil {
		return nil, err
	}

	// pages past the end, including offsets that would overflow, are empty
	if page-1 > (math.MaxInt-pageSize)/pageSize || (page-1)*pageSize >= total {
		return &OffsetResult[T]{Items: make([]T, 0), Meta: meta}, nil
	}

	items, err := src.Slice(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("pagination slice error: %w", err)
	}
	if items == nil {
		items = make([]T, 0)
	}

	return &OffsetResult[T]{Items: items, Meta: meta}, nil
}

// SliceSource serves a materialized, already ordered slice.
type SliceSource[T any] []T

// Count implements Source.
func (s SliceSource[T]) Count(context.Context) (int, error) { return len(s), nil }

// Slice implements Source.
func (s SliceSource[T]) Slice(_ context.Context, offset, limit int) ([]T, error) {
	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("paging: negative offset %d or limit %d", offset, limit)
	}
	if offset >= len(s) {
		return []T{}, nil
	}
	end := min(offset+limit, len(s))
	return append([]T(nil), s[offset:end]...), nil
}
