package fixture

import "context"

// Repository exposes fixture persistence and read operations.
type Repository interface {
	UpsertMany(ctx context.Context, items []Record) error
	List(ctx context.Context, limit, offset int) ([]Record, error)
	ListByLeague(ctx context.Context, leagueID int64, limit, offset int) ([]Record, error)
	ListByTeam(ctx context.Context, teamID int64, limit, offset int) ([]Record, error)
	ListByDateRange(ctx context.Context, startDate, endDate string, limit, offset int) ([]Record, error)
	Count(ctx context.Context) (int64, error)
	CountByLeague(ctx context.Context, leagueID int64) (int64, error)
	CountByTeam(ctx context.Context, teamID int64) (int64, error)
	CountByDateRange(ctx context.Context, startDate, endDate string) (int64, error)
	Stats(ctx context.Context) (Stats, error)
}
