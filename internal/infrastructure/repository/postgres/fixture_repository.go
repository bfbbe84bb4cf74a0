package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/prasetyowira/footdata/internal/domain/fixture"
	qb "github.com/prasetyowira/footdata/internal/platform/querybuilder"
)

const fixtureTable = "fixtures"

const fixtureUpsertSuffix = `ON CONFLICT (id_partido)
DO UPDATE SET
    equipo_local = EXCLUDED.equipo_local,
    equipo_visitante = EXCLUDED.equipo_visitante,
    estado_del_partido = EXCLUDED.estado_del_partido,
    fecha = EXCLUDED.fecha,
    hora = EXCLUDED.hora,
    goles_local_1mt = EXCLUDED.goles_local_1mt,
    goles_visitante_1mt = EXCLUDED.goles_visitante_1mt,
    goles_local_tr = EXCLUDED.goles_local_tr,
    goles_visitante_tr = EXCLUDED.goles_visitante_tr,
    id_equipo_local = EXCLUDED.id_equipo_local,
    id_equipo_visitante = EXCLUDED.id_equipo_visitante,
    liga_id = EXCLUDED.liga_id,
    liga_nombre = EXCLUDED.liga_nombre,
    ronda = EXCLUDED.ronda,
    ingested_at = NOW()`

type FixtureRepository struct {
	db        *sqlx.DB
	batchSize int
	workers   int
}

func NewFixtureRepository(db *sqlx.DB, batchSize, workers int) *FixtureRepository {
	return &FixtureRepository{db: db, batchSize: batchSize, workers: workers}
}

// UpsertMany writes deduplicated fixture rows in unordered batches,
// keyed on id_partido. Re-running a pipeline over the same matches
// refreshes their rows instead of duplicating them.
func (r *FixtureRepository) UpsertMany(ctx context.Context, items []fixture.Record) error {
	return runBatches(ctx, len(items), r.batchSize, r.workers, func(ctx context.Context, start, end int) error {
		builder := qb.InsertInto(fixtureTable).
			Columns(
				"id_partido", "equipo_local", "equipo_visitante", "estado_del_partido",
				"fecha", "hora", "goles_local_1mt", "goles_visitante_1mt",
				"goles_local_tr", "goles_visitante_tr", "id_equipo_local",
				"id_equipo_visitante", "liga_id", "liga_nombre", "ronda",
			).
			Suffix(fixtureUpsertSuffix)
		for _, item := range items[start:end] {
			builder.Values(
				item.MatchID, item.HomeTeam, item.AwayTeam, item.Status,
				item.Date, item.Time, item.HomeGoalsHT, item.AwayGoalsHT,
				item.HomeGoalsFT, item.AwayGoalsFT, item.HomeTeamID,
				item.AwayTeamID, item.LeagueID, item.LeagueName, item.Round,
			)
		}

		query, args, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build upsert fixtures query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert fixtures batch [%d:%d]: %w", start, end, err)
		}
		return nil
	})
}

func (r *FixtureRepository) List(ctx context.Context, limit, offset int) ([]fixture.Record, error) {
	query, args, err := qb.Select("*").From(fixtureTable).
		OrderBy("id_partido").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures query: %w", err)
	}
	return r.selectRecords(ctx, query, args)
}

func (r *FixtureRepository) ListByLeague(ctx context.Context, leagueID int64, limit, offset int) ([]fixture.Record, error) {
	query, args, err := qb.Select("*").From(fixtureTable).
		Where(qb.Eq("liga_id", leagueID)).
		OrderBy("id_partido").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures by league query: %w", err)
	}
	return r.selectRecords(ctx, query, args)
}

func (r *FixtureRepository) ListByTeam(ctx context.Context, teamID int64, limit, offset int) ([]fixture.Record, error) {
	query, args, err := qb.Select("*").From(fixtureTable).
		Where(qb.Expr("(id_equipo_local = ? OR id_equipo_visitante = ?)", teamID, teamID)).
		OrderBy("id_partido").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures by team query: %w", err)
	}
	return r.selectRecords(ctx, query, args)
}

func (r *FixtureRepository) ListByDateRange(ctx context.Context, startDate, endDate string, limit, offset int) ([]fixture.Record, error) {
	query, args, err := qb.Select("*").From(fixtureTable).
		Where(qb.Expr("fecha BETWEEN ? AND ?", startDate, endDate)).
		OrderBy("fecha", "hora", "id_partido").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures by date range query: %w", err)
	}
	return r.selectRecords(ctx, query, args)
}

func (r *FixtureRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From(fixtureTable).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count fixtures query: %w", err)
	}
	return r.count(ctx, query, args)
}

func (r *FixtureRepository) CountByLeague(ctx context.Context, leagueID int64) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From(fixtureTable).
		Where(qb.Eq("liga_id", leagueID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count fixtures by league query: %w", err)
	}
	return r.count(ctx, query, args)
}

func (r *FixtureRepository) CountByTeam(ctx context.Context, teamID int64) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From(fixtureTable).
		Where(qb.Expr("(id_equipo_local = ? OR id_equipo_visitante = ?)", teamID, teamID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count fixtures by team query: %w", err)
	}
	return r.count(ctx, query, args)
}

func (r *FixtureRepository) CountByDateRange(ctx context.Context, startDate, endDate string) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From(fixtureTable).
		Where(qb.Expr("fecha BETWEEN ? AND ?", startDate, endDate)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count fixtures by date range query: %w", err)
	}
	return r.count(ctx, query, args)
}

func (r *FixtureRepository) Stats(ctx context.Context) (fixture.Stats, error) {
	var stats fixture.Stats

	totalsQuery, totalsArgs, err := qb.Select(
		"COUNT(*) AS total_fixtures",
		"COUNT(DISTINCT liga_id) AS total_leagues",
	).From(fixtureTable).ToSQL()
	if err != nil {
		return fixture.Stats{}, fmt.Errorf("build fixture totals query: %w", err)
	}
	var totals struct {
		TotalFixtures int64 `db:"total_fixtures"`
		TotalLeagues  int64 `db:"total_leagues"`
	}
	if err := r.db.GetContext(ctx, &totals, totalsQuery, totalsArgs...); err != nil {
		return fixture.Stats{}, fmt.Errorf("select fixture totals: %w", err)
	}
	stats.TotalFixtures = totals.TotalFixtures
	stats.TotalLeagues = totals.TotalLeagues

	// A team appears on either side of a fixture, so distinct ids come
	// from the union of both columns.
	teamsQuery := `SELECT COUNT(*) FROM (
    SELECT id_equipo_local AS team_id FROM fixtures
    UNION
    SELECT id_equipo_visitante FROM fixtures
) teams WHERE team_id <> 0`
	if err := r.db.GetContext(ctx, &stats.TotalTeams, teamsQuery); err != nil {
		return fixture.Stats{}, fmt.Errorf("select fixture team count: %w", err)
	}

	finished, err := r.countByStatus(ctx, fixture.StatusFinished)
	if err != nil {
		return fixture.Stats{}, err
	}
	stats.Finished = finished

	notStarted, err := r.countByStatus(ctx, fixture.StatusNotStarted)
	if err != nil {
		return fixture.Stats{}, err
	}
	stats.NotStarted = notStarted

	return stats, nil
}

func (r *FixtureRepository) countByStatus(ctx context.Context, status string) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From(fixtureTable).
		Where(qb.Eq("estado_del_partido", status)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count fixtures by status query: %w", err)
	}
	return r.count(ctx, query, args)
}

func (r *FixtureRepository) selectRecords(ctx context.Context, query string, args []any) ([]fixture.Record, error) {
	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures: %w", err)
	}

	out := make([]fixture.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixtureRepository) count(ctx context.Context, query string, args []any) (int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count fixtures: %w", err)
	}
	return total, nil
}
