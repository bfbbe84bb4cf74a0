package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/prasetyowira/footdata/internal/domain/league"
)

type LeagueService struct {
	leagueRepo league.Repository
}

func NewLeagueService(leagueRepo league.Repository) *LeagueService {
	return &LeagueService{leagueRepo: leagueRepo}
}

// ListLeagues returns one page of stored league rows plus the
// independent total count. An empty store yields an empty page, not an
// error: only filtered queries translate zero matches into not-found.
func (s *LeagueService) ListLeagues(ctx context.Context, page PageRequest) ([]league.Record, int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	limit, offset, err := page.normalize()
	if err != nil {
		return nil, 0, err
	}

	total, err := s.leagueRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: count leagues: %v", ErrDependencyUnavailable, err)
	}

	items, err := s.leagueRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list leagues: %v", ErrDependencyUnavailable, err)
	}

	return items, total, nil
}

func (s *LeagueService) ListLeaguesByCountry(ctx context.Context, country string, page PageRequest) ([]league.Record, int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeaguesByCountry")
	defer span.End()

	country = strings.TrimSpace(country)
	if country == "" {
		return nil, 0, fmt.Errorf("%w: country is required", ErrInvalidInput)
	}

	limit, offset, err := page.normalize()
	if err != nil {
		return nil, 0, err
	}

	total, err := s.leagueRepo.CountByCountry(ctx, country)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: count leagues by country: %v", ErrDependencyUnavailable, err)
	}
	if total == 0 {
		return nil, 0, fmt.Errorf("%w: no leagues for country=%s", ErrNotFound, country)
	}

	items, err := s.leagueRepo.ListByCountry(ctx, country, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list leagues by country: %v", ErrDependencyUnavailable, err)
	}

	return items, total, nil
}

func (s *LeagueService) ListLeaguesBySeason(ctx context.Context, season int, page PageRequest) ([]league.Record, int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeaguesBySeason")
	defer span.End()

	if season <= 0 {
		return nil, 0, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}

	limit, offset, err := page.normalize()
	if err != nil {
		return nil, 0, err
	}

	total, err := s.leagueRepo.CountBySeason(ctx, season)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: count leagues by season: %v", ErrDependencyUnavailable, err)
	}
	if total == 0 {
		return nil, 0, fmt.Errorf("%w: no leagues for season=%d", ErrNotFound, season)
	}

	items, err := s.leagueRepo.ListBySeason(ctx, season, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list leagues by season: %v", ErrDependencyUnavailable, err)
	}

	return items, total, nil
}

func (s *LeagueService) Stats(ctx context.Context) (league.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Stats")
	defer span.End()

	stats, err := s.leagueRepo.Stats(ctx)
	if err != nil {
		return league.Stats{}, fmt.Errorf("%w: league stats: %v", ErrDependencyUnavailable, err)
	}

	return stats, nil
}
