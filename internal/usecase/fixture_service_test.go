package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/prasetyowira/footdata/internal/domain/fixture"
)

type stubFixtureRepo struct {
	rows  []fixture.Record
	total int64
	err   error
	stats fixture.Stats
}

func (s stubFixtureRepo) UpsertMany(_ context.Context, _ []fixture.Record) error { return s.err }

func (s stubFixtureRepo) List(_ context.Context, _, _ int) ([]fixture.Record, error) {
	return s.rows, s.err
}

func (s stubFixtureRepo) ListByLeague(_ context.Context, _ int64, _, _ int) ([]fixture.Record, error) {
	return s.rows, s.err
}

func (s stubFixtureRepo) ListByTeam(_ context.Context, _ int64, _, _ int) ([]fixture.Record, error) {
	return s.rows, s.err
}

func (s stubFixtureRepo) ListByDateRange(_ context.Context, _, _ string, _, _ int) ([]fixture.Record, error) {
	return s.rows, s.err
}

func (s stubFixtureRepo) Count(_ context.Context) (int64, error) { return s.total, s.err }

func (s stubFixtureRepo) CountByLeague(_ context.Context, _ int64) (int64, error) {
	return s.total, s.err
}

func (s stubFixtureRepo) CountByTeam(_ context.Context, _ int64) (int64, error) {
	return s.total, s.err
}

func (s stubFixtureRepo) CountByDateRange(_ context.Context, _, _ string) (int64, error) {
	return s.total, s.err
}

func (s stubFixtureRepo) Stats(_ context.Context) (fixture.Stats, error) { return s.stats, s.err }

func TestFixtureService_ListFixtures_EmptyStoreIsNotAnError(t *testing.T) {
	t.Parallel()

	svc := NewFixtureService(stubFixtureRepo{})

	items, total, err := svc.ListFixtures(context.Background(), PageRequest{})
	if err != nil {
		t.Fatalf("ListFixtures error: %v", err)
	}
	if total != 0 || len(items) != 0 {
		t.Fatalf("expected empty page, got total=%d len=%d", total, len(items))
	}
}

func TestFixtureService_ListFixturesByLeague_NotFoundOnZeroMatches(t *testing.T) {
	t.Parallel()

	svc := NewFixtureService(stubFixtureRepo{total: 0})

	_, _, err := svc.ListFixturesByLeague(context.Background(), 39, PageRequest{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
}

func TestFixtureService_ListFixturesByLeague_RejectsNonPositiveID(t *testing.T) {
	t.Parallel()

	svc := NewFixtureService(stubFixtureRepo{total: 1})

	_, _, err := svc.ListFixturesByLeague(context.Background(), 0, PageRequest{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got=%v", err)
	}
}

func TestFixtureService_ListFixturesByTeam_Success(t *testing.T) {
	t.Parallel()

	rows := []fixture.Record{
		{MatchID: 868549, HomeTeam: "Burnley", AwayTeam: "Manchester City"},
	}
	svc := NewFixtureService(stubFixtureRepo{rows: rows, total: 1})

	items, total, err := svc.ListFixturesByTeam(context.Background(), 50, PageRequest{})
	if err != nil {
		t.Fatalf("ListFixturesByTeam error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("unexpected result: total=%d len=%d", total, len(items))
	}
}

func TestFixtureService_ListFixturesByDateRange_RejectsBadDates(t *testing.T) {
	t.Parallel()

	svc := NewFixtureService(stubFixtureRepo{total: 1})

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "malformed start", start: "11-08-2023", end: "2023-08-20"},
		{name: "malformed end", start: "2023-08-11", end: "20/08/2023"},
		{name: "empty start", start: "", end: "2023-08-20"},
		{name: "inverted range", start: "2023-08-20", end: "2023-08-11"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := svc.ListFixturesByDateRange(context.Background(), tc.start, tc.end, PageRequest{})
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got=%v", err)
			}
		})
	}
}

func TestFixtureService_ListFixturesByDateRange_NotFoundOnZeroMatches(t *testing.T) {
	t.Parallel()

	svc := NewFixtureService(stubFixtureRepo{total: 0})

	_, _, err := svc.ListFixturesByDateRange(context.Background(), "2023-08-11", "2023-08-20", PageRequest{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
}

func TestFixtureService_Stats_StoreDown(t *testing.T) {
	t.Parallel()

	svc := NewFixtureService(stubFixtureRepo{err: errors.New("connection refused")})

	_, err := svc.Stats(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got=%v", err)
	}
}
