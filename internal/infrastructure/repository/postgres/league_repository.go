package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/prasetyowira/footdata/internal/domain/league"
	qb "github.com/prasetyowira/footdata/internal/platform/querybuilder"
)

const leagueTable = "clean_leagues"

type LeagueRepository struct {
	db        *sqlx.DB
	batchSize int
	workers   int
}

func NewLeagueRepository(db *sqlx.DB, batchSize, workers int) *LeagueRepository {
	return &LeagueRepository{db: db, batchSize: batchSize, workers: workers}
}

// InsertMany appends validated league rows in unordered batches. The
// table is append-only: every pipeline run contributes a fresh set of
// rows and reads always see the full history.
func (r *LeagueRepository) InsertMany(ctx context.Context, items []league.Record) error {
	return runBatches(ctx, len(items), r.batchSize, r.workers, func(ctx context.Context, start, end int) error {
		builder := qb.InsertInto(leagueTable).
			Columns("league_id", "league_name", "type", "country", "season", "start_date", "end_date", "current")
		for _, item := range items[start:end] {
			m := newLeagueInsertModel(item)
			builder.Values(m.LeagueID, m.LeagueName, m.Type, m.Country, m.Season, m.StartDate, m.EndDate, m.Current)
		}

		query, args, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert leagues query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert leagues batch [%d:%d]: %w", start, end, err)
		}
		return nil
	})
}

func (r *LeagueRepository) List(ctx context.Context, limit, offset int) ([]league.Record, error) {
	query, args, err := qb.Select("*").From(leagueTable).
		OrderBy("league_id", "season").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}
	return r.selectRecords(ctx, query, args)
}

func (r *LeagueRepository) ListByCountry(ctx context.Context, country string, limit, offset int) ([]league.Record, error) {
	query, args, err := qb.Select("*").From(leagueTable).
		Where(qb.Expr("LOWER(country) = LOWER(?)", country)).
		OrderBy("league_id", "season").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues by country query: %w", err)
	}
	return r.selectRecords(ctx, query, args)
}

func (r *LeagueRepository) ListBySeason(ctx context.Context, season int, limit, offset int) ([]league.Record, error) {
	query, args, err := qb.Select("*").From(leagueTable).
		Where(qb.Eq("season", season)).
		OrderBy("league_id").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues by season query: %w", err)
	}
	return r.selectRecords(ctx, query, args)
}

func (r *LeagueRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From(leagueTable).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count leagues query: %w", err)
	}
	return r.count(ctx, query, args)
}

func (r *LeagueRepository) CountByCountry(ctx context.Context, country string) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From(leagueTable).
		Where(qb.Expr("LOWER(country) = LOWER(?)", country)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count leagues by country query: %w", err)
	}
	return r.count(ctx, query, args)
}

func (r *LeagueRepository) CountBySeason(ctx context.Context, season int) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From(leagueTable).
		Where(qb.Eq("season", season)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count leagues by season query: %w", err)
	}
	return r.count(ctx, query, args)
}

func (r *LeagueRepository) Stats(ctx context.Context) (league.Stats, error) {
	var stats league.Stats

	totalsQuery, totalsArgs, err := qb.Select("COUNT(*) AS total_leagues", "COUNT(DISTINCT country) AS total_countries").
		From(leagueTable).
		ToSQL()
	if err != nil {
		return league.Stats{}, fmt.Errorf("build league totals query: %w", err)
	}
	var totals struct {
		TotalLeagues   int64 `db:"total_leagues"`
		TotalCountries int64 `db:"total_countries"`
	}
	if err := r.db.GetContext(ctx, &totals, totalsQuery, totalsArgs...); err != nil {
		return league.Stats{}, fmt.Errorf("select league totals: %w", err)
	}
	stats.TotalLeagues = totals.TotalLeagues
	stats.TotalCountries = totals.TotalCountries

	seasonsQuery, seasonsArgs, err := qb.Select("DISTINCT season").From(leagueTable).
		OrderBy("season").
		ToSQL()
	if err != nil {
		return league.Stats{}, fmt.Errorf("build league seasons query: %w", err)
	}
	stats.Seasons = make([]int, 0)
	if err := r.db.SelectContext(ctx, &stats.Seasons, seasonsQuery, seasonsArgs...); err != nil {
		return league.Stats{}, fmt.Errorf("select league seasons: %w", err)
	}

	countriesQuery, countriesArgs, err := qb.Select("DISTINCT country").From(leagueTable).
		OrderBy("country").
		ToSQL()
	if err != nil {
		return league.Stats{}, fmt.Errorf("build league countries query: %w", err)
	}
	stats.Countries = make([]string, 0)
	if err := r.db.SelectContext(ctx, &stats.Countries, countriesQuery, countriesArgs...); err != nil {
		return league.Stats{}, fmt.Errorf("select league countries: %w", err)
	}

	return stats, nil
}

func (r *LeagueRepository) selectRecords(ctx context.Context, query string, args []any) ([]league.Record, error) {
	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *LeagueRepository) count(ctx context.Context, query string, args []any) (int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count leagues: %w", err)
	}
	return total, nil
}
