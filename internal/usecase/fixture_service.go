package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/prasetyowira/footdata/internal/domain/fixture"
)

type FixtureService struct {
	fixtureRepo fixture.Repository
}

func NewFixtureService(fixtureRepo fixture.Repository) *FixtureService {
	return &FixtureService{fixtureRepo: fixtureRepo}
}

func (s *FixtureService) ListFixtures(ctx context.Context, page PageRequest) ([]fixture.Record, int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListFixtures")
	defer span.End()

	limit, offset, err := page.normalize()
	if err != nil {
		return nil, 0, err
	}

	total, err := s.fixtureRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: count fixtures: %v", ErrDependencyUnavailable, err)
	}

	items, err := s.fixtureRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list fixtures: %v", ErrDependencyUnavailable, err)
	}

	return items, total, nil
}

func (s *FixtureService) ListFixturesByLeague(ctx context.Context, leagueID int64, page PageRequest) ([]fixture.Record, int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListFixturesByLeague")
	defer span.End()

	if leagueID <= 0 {
		return nil, 0, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
	}

	limit, offset, err := page.normalize()
	if err != nil {
		return nil, 0, err
	}

	total, err := s.fixtureRepo.CountByLeague(ctx, leagueID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: count fixtures by league: %v", ErrDependencyUnavailable, err)
	}
	if total == 0 {
		return nil, 0, fmt.Errorf("%w: no fixtures for league=%d", ErrNotFound, leagueID)
	}

	items, err := s.fixtureRepo.ListByLeague(ctx, leagueID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list fixtures by league: %v", ErrDependencyUnavailable, err)
	}

	return items, total, nil
}

// ListFixturesByTeam matches a team on either side of a fixture.
func (s *FixtureService) ListFixturesByTeam(ctx context.Context, teamID int64, page PageRequest) ([]fixture.Record, int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListFixturesByTeam")
	defer span.End()

	if teamID <= 0 {
		return nil, 0, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	limit, offset, err := page.normalize()
	if err != nil {
		return nil, 0, err
	}

	total, err := s.fixtureRepo.CountByTeam(ctx, teamID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: count fixtures by team: %v", ErrDependencyUnavailable, err)
	}
	if total == 0 {
		return nil, 0, fmt.Errorf("%w: no fixtures for team=%d", ErrNotFound, teamID)
	}

	items, err := s.fixtureRepo.ListByTeam(ctx, teamID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list fixtures by team: %v", ErrDependencyUnavailable, err)
	}

	return items, total, nil
}

func (s *FixtureService) ListFixturesByDateRange(ctx context.Context, startDate, endDate string, page PageRequest) ([]fixture.Record, int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListFixturesByDateRange")
	defer span.End()

	start, err := parseDateParam(startDate)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: invalid start_date %q, expected YYYY-MM-DD", ErrInvalidInput, startDate)
	}
	end, err := parseDateParam(endDate)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: invalid end_date %q, expected YYYY-MM-DD", ErrInvalidInput, endDate)
	}
	if end.Before(start) {
		return nil, 0, fmt.Errorf("%w: end_date must not precede start_date", ErrInvalidInput)
	}

	limit, offset, err := page.normalize()
	if err != nil {
		return nil, 0, err
	}

	total, err := s.fixtureRepo.CountByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: count fixtures by date range: %v", ErrDependencyUnavailable, err)
	}
	if total == 0 {
		return nil, 0, fmt.Errorf("%w: no fixtures between %s and %s", ErrNotFound, startDate, endDate)
	}

	items, err := s.fixtureRepo.ListByDateRange(ctx, startDate, endDate, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list fixtures by date range: %v", ErrDependencyUnavailable, err)
	}

	return items, total, nil
}

func (s *FixtureService) Stats(ctx context.Context) (fixture.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Stats")
	defer span.End()

	stats, err := s.fixtureRepo.Stats(ctx)
	if err != nil {
		return fixture.Stats{}, fmt.Errorf("%w: fixture stats: %v", ErrDependencyUnavailable, err)
	}

	return stats, nil
}

func parseDateParam(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
