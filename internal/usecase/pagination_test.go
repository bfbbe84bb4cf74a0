package usecase

import (
	"errors"
	"testing"
)

func TestPageRequest_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       PageRequest
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{name: "defaults", page: PageRequest{}, wantLimit: 50, wantOffset: 0},
		{name: "explicit first page", page: PageRequest{Page: 1, Limit: 10}, wantLimit: 10, wantOffset: 0},
		{name: "third page", page: PageRequest{Page: 3, Limit: 20}, wantLimit: 20, wantOffset: 40},
		{name: "max limit", page: PageRequest{Page: 1, Limit: 100}, wantLimit: 100, wantOffset: 0},
		{name: "page below one", page: PageRequest{Page: -1}, wantErr: true},
		{name: "limit above max", page: PageRequest{Page: 1, Limit: 101}, wantErr: true},
		{name: "negative limit", page: PageRequest{Page: 1, Limit: -5}, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			limit, offset, err := tc.page.normalize()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got=%v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalize error: %v", err)
			}
			if limit != tc.wantLimit || offset != tc.wantOffset {
				t.Fatalf("normalize=(%d,%d), want=(%d,%d)", limit, offset, tc.wantLimit, tc.wantOffset)
			}
		})
	}
}
