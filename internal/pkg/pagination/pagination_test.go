package pagination

import (
	"testing"

	"github.com/firstpost/journal/internal/repository"
)

func TestMeta(t *testing.T) {
	cases := []struct {
		name      string
		total     int64
		page      int
		size      int
		totalPage int
		hasNext   bool
	}{
		{"13 rows at size 6 page 1", 13, 1, 6, 3, true},
		{"13 rows at size 6 page 3", 13, 3, 6, 3, false},
		{"13 rows at size 6 page 4", 13, 4, 6, 3, false},
		{"exact multiple", 12, 2, 6, 2, false},
		{"empty result still one page", 0, 1, 6, 1, false},
		{"single row", 1, 1, 6, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := Meta(tc.total, repository.Page{Page: tc.page, Size: tc.size})
			if meta.TotalPage != tc.totalPage {
				t.Errorf("TotalPage = %d, want %d", meta.TotalPage, tc.totalPage)
			}
			if meta.HasNextPage != tc.hasNext {
				t.Errorf("HasNextPage = %v, want %v", meta.HasNextPage, tc.hasNext)
			}
			if meta.Total != tc.total {
				t.Errorf("Total = %d, want %d", meta.Total, tc.total)
			}
		})
	}
}

func TestPageOffset(t *testing.T) {
	if off := (repository.Page{Page: 3, Size: 6}).Offset(); off != 12 {
		t.Errorf("Offset = %d, want 12", off)
	}
	if off := (repository.Page{Page: 0, Size: 6}).Offset(); off != 0 {
		t.Errorf("Offset for page 0 = %d, want 0", off)
	}
}
