package paging

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name               string
		page, size, total  int
		wantPages          int
		wantPrev, wantNext bool
	}{
		{"empty", 1, 10, 0, 0, false, false},
		{"single partial page", 1, 10, 3, 1, false, false},
		{"exact multiple", 2, 5, 10, 2, true, false},
		{"first of many", 1, 5, 11, 3, false, true},
		{"middle", 2, 5, 11, 3, true, true},
		{"past the end", 5, 5, 11, 3, true, false},
		{"size one", 3, 1, 3, 3, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := NewPageMeta(tt.page, tt.size, tt.total)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if meta.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.wantPages)
			}
			if meta.HasPreviousPage != tt.wantPrev {
				t.Errorf("HasPreviousPage = %v, want %v", meta.HasPreviousPage, tt.wantPrev)
			}
			if meta.HasNextPage != tt.wantNext {
				t.Errorf("HasNextPage = %v, want %v", meta.HasNextPage, tt.wantNext)
			}
		})
	}
}

func TestNewPageMetaRejectsBadInput(t *testing.T) {
	if _, err := NewPageMeta(1, 0, 10); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("expected ErrInvalidPageSize, got %v", err)
	}
	if _, err := NewPageMeta(1, -3, 10); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("expected ErrInvalidPageSize, got %v", err)
	}
	if _, err := NewPageMeta(0, 10, 10); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("expected ErrInvalidPage, got %v", err)
	}
}

func TestPaginateOffset(t *testing.T) {
	src := SliceSource[int]{1, 2, 3, 4, 5, 6, 7}

	result, err := PaginateOffset[int](context.Background(), src, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.Items; len(got) != 3 || got[0] != 4 || got[2] != 6 {
		t.Errorf("unexpected items %v", got)
	}
	if result.Meta.TotalCount != 7 || result.Meta.TotalPages != 3 {
		t.Errorf("unexpected meta %+v", result.Meta)
	}

	last, _ := PaginateOffset[int](context.Background(), src, 3, 3)
	if len(last.Items) != 1 || last.Items[0] != 7 || last.Meta.HasNextPage {
		t.Errorf("unexpected last page %+v", last)
	}

	beyond, _ := PaginateOffset[int](context.Background(), src, 9, 3)
	if beyond.Items == nil || len(beyond.Items) != 0 {
		t.Errorf("expected empty non-nil items, got %#v", beyond.Items)
	}
}

type countingSource struct {
	SliceSource[int]
	slices int
}

func (s *countingSource) Slice(ctx context.Context, offset, limit int) ([]int, error) {
	s.slices++
	return s.SliceSource.Slice(ctx, offset, limit)
}

func TestPaginateOffsetHugePage(t *testing.T) {
	for _, page := range []int{math.MaxInt, math.MaxInt/2 + 1, 4} {
		src := &countingSource{SliceSource: SliceSource[int]{1, 2, 3, 4, 5}}
		result, err := PaginateOffset[int](context.Background(), src, page, 2)
		if err != nil {
			t.Fatalf("page %d: unexpected error: %v", page, err)
		}
		if result.Items == nil || len(result.Items) != 0 {
			t.Errorf("page %d: expected empty items, got %v", page, result.Items)
		}
		if src.slices != 0 {
			t.Errorf("page %d: source sliced past the end", page)
		}
		meta := result.Meta
		if meta.Page != page || meta.TotalCount != 5 || meta.TotalPages != 3 || !meta.HasPreviousPage || meta.HasNextPage {
			t.Errorf("page %d: unexpected meta %+v", page, meta)
		}
	}

	meta, err := NewPageMeta(1, math.MaxInt, math.MaxInt)
	if err != nil || meta.TotalPages != 1 {
		t.Errorf("unexpected meta %+v, err %v", meta, err)
	}
}

func TestPaginateOffsetGuardsPageSize(t *testing.T) {
	_, err := PaginateOffset[int](context.Background(), SliceSource[int]{1}, 1, 0)
	if !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("expected ErrInvalidPageSize, got %v", err)
	}
}

type failingSource struct{ err error }

func (f failingSource) Count(context.Context) (int, error) { return 0, f.err }

func (f failingSource) Slice(context.Context, int, int) ([]string, error) { return nil, f.err }

func TestPaginateOffsetPropagatesSourceErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := PaginateOffset[string](context.Background(), failingSource{boom}, 1, 10)
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped source error, got %v", err)
	}
}
