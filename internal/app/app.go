package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/prasetyowira/footdata/external/apisports"
	"github.com/prasetyowira/footdata/internal/config"
	"github.com/prasetyowira/footdata/internal/infrastructure/filestore"
	"github.com/prasetyowira/footdata/internal/infrastructure/repository/postgres"
	"github.com/prasetyowira/footdata/internal/interfaces/httpapi"
	"github.com/prasetyowira/footdata/internal/platform/logging"
	"github.com/prasetyowira/footdata/internal/platform/retry"
	"github.com/prasetyowira/footdata/internal/usecase"
)

// NewHTTPServer wires the full service: store, snapshot file store,
// provider client, services, and the HTTP router. The returned *sqlx.DB
// is owned by the caller and must be closed on shutdown.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, *sqlx.DB, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	leagueRepo := postgres.NewLeagueRepository(db, cfg.StoreBatchSize, cfg.StoreBatchWorkers)
	fixtureRepo := postgres.NewFixtureRepository(db, cfg.StoreBatchSize, cfg.StoreBatchWorkers)
	rawRepo := postgres.NewRawDataRepository(db)

	files := filestore.New(cfg.RawDataDir, cfg.CleanDataDir)

	provider := apisports.NewClient(apisports.ClientConfig{
		BaseURL: cfg.APISportsBaseURL,
		APIKey:  cfg.APISportsKey,
		Timeout: cfg.APISportsTimeout,
		Retry: retry.Config{
			MaxAttempts:  cfg.RetryMaxAttempts,
			InitialDelay: cfg.RetryInitialDelay,
			Multiplier:   cfg.RetryMultiplier,
		},
		Logger: logger,
	})

	leagueSvc := usecase.NewLeagueService(leagueRepo)
	fixtureSvc := usecase.NewFixtureService(fixtureRepo)
	pipelineSvc := usecase.NewPipelineService(
		provider,
		leagueRepo,
		fixtureRepo,
		rawRepo,
		files,
		usecase.PipelineDefaults{
			Country:  cfg.DefaultCountry,
			Season:   cfg.DefaultSeason,
			LeagueID: cfg.DefaultLeagueID,
		},
		logger,
	)

	handler := httpapi.NewHandler(leagueSvc, fixtureSvc, pipelineSvc, db, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, db, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
