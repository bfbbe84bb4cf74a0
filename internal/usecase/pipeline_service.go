package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sourcegraph/conc/panics"

	"github.com/prasetyowira/footdata/internal/domain/fixture"
	"github.com/prasetyowira/footdata/internal/domain/league"
	"github.com/prasetyowira/footdata/internal/domain/rawdata"
	"github.com/prasetyowira/footdata/internal/platform/logging"
)

const (
	datasetLeagues  = "leagues"
	datasetFixtures = "fixtures"

	runStatusSuccess = "success"
)

// FileStore writes timestamped raw and clean snapshots to disk. Raw
// JSON and clean CSV writes are mandatory pipeline stages: a failed
// write aborts the run.
type FileStore interface {
	WriteRawJSON(capture rawdata.Capture) (string, error)
	WriteLeaguesCSV(dataset string, capturedAt time.Time, items []league.Record) (string, error)
	WriteFixturesCSV(dataset string, capturedAt time.Time, items []fixture.Record) (string, error)
}

// PipelineDefaults selects what a triggered run fetches.
type PipelineDefaults struct {
	Country  string
	Season   int
	LeagueID int
}

// PipelineStatus is a snapshot of the single in-memory run record.
type PipelineStatus struct {
	Running       bool    `json:"running"`
	LastExecution string  `json:"last_execution,omitempty"`
	LastStatus    string  `json:"last_status,omitempty"`
	LastDuration  float64 `json:"last_duration,omitempty"`
}

// PipelineService orchestrates the fetch -> raw capture -> normalize ->
// validate -> persist run. At most one run executes at a time;
// concurrent triggers are rejected, not queued.
type PipelineService struct {
	provider    SportsProvider
	leagueRepo  league.Repository
	fixtureRepo fixture.Repository
	rawRepo     rawdata.Repository
	files       FileStore
	defaults    PipelineDefaults
	logger      *logging.Logger
	now         func() time.Time

	mu            sync.Mutex
	running       bool
	lastExecution time.Time
	lastStatus    string
	lastDuration  time.Duration
}

func NewPipelineService(
	provider SportsProvider,
	leagueRepo league.Repository,
	fixtureRepo fixture.Repository,
	rawRepo rawdata.Repository,
	files FileStore,
	defaults PipelineDefaults,
	logger *logging.Logger,
) *PipelineService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PipelineService{
		provider:    provider,
		leagueRepo:  leagueRepo,
		fixtureRepo: fixtureRepo,
		rawRepo:     rawRepo,
		files:       files,
		defaults:    defaults,
		logger:      logger,
		now:         time.Now,
	}
}

// Trigger starts a background run and returns immediately. A run
// already in flight yields ErrConflict and leaves the previous
// last_status untouched.
func (s *PipelineService) Trigger(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.Trigger")
	defer span.End()

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("%w: pipeline run already in progress", ErrConflict)
	}
	s.running = true
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "pipeline run triggered",
		"country", s.defaults.Country,
		"season", s.defaults.Season,
		"league_id", s.defaults.LeagueID,
	)

	runCtx := context.WithoutCancel(ctx)
	go s.runDetached(runCtx)

	return nil
}

// Status returns a copy of the run record.
func (s *PipelineService) Status() PipelineStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := PipelineStatus{
		Running:    s.running,
		LastStatus: s.lastStatus,
	}
	if !s.lastExecution.IsZero() {
		status.LastExecution = s.lastExecution.UTC().Format(time.RFC3339)
	}
	if s.lastDuration > 0 {
		status.LastDuration = s.lastDuration.Seconds()
	}
	return status
}

// runDetached executes one full run and records the outcome. A panic
// in any stage is caught and recorded as a failed run instead of
// killing the process.
func (s *PipelineService) runDetached(ctx context.Context) {
	started := s.now()

	var runErr error
	var catcher panics.Catcher
	catcher.Try(func() {
		runErr = s.run(ctx)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		runErr = fmt.Errorf("pipeline panicked: %v", recovered.Value)
	}

	finished := s.now()
	duration := finished.Sub(started)

	// last_execution marks when the run finished, success or not.
	s.mu.Lock()
	s.running = false
	s.lastExecution = finished
	s.lastDuration = duration
	if runErr != nil {
		s.lastStatus = runErr.Error()
	} else {
		s.lastStatus = runStatusSuccess
	}
	s.mu.Unlock()

	if runErr != nil {
		s.logger.ErrorContext(ctx, "pipeline run failed", "error", runErr, "duration", duration)
		return
	}
	s.logger.InfoContext(ctx, "pipeline run finished", "duration", duration)
}

func (s *PipelineService) run(ctx context.Context) error {
	if err := s.runLeagues(ctx); err != nil {
		return fmt.Errorf("leagues pipeline: %w", err)
	}
	if err := s.runFixtures(ctx); err != nil {
		return fmt.Errorf("fixtures pipeline: %w", err)
	}
	return nil
}

func (s *PipelineService) runLeagues(ctx context.Context) error {
	entries, capture, err := s.provider.FetchLeagues(ctx, s.defaults.Country, s.defaults.Season)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	rawPath, err := s.files.WriteRawJSON(capture)
	if err != nil {
		return fmt.Errorf("write raw snapshot: %w", err)
	}
	s.logger.InfoContext(ctx, "raw league snapshot written", "path", rawPath, "records", capture.RecordCount)

	s.storeCapture(ctx, capture)

	rows := NormalizeLeagues(entries)
	rows, report, err := ValidateLeagues(ctx, rows, s.logger)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	s.logger.InfoContext(ctx, "league table validated",
		"input", report.Input,
		"dropped_null_keys", report.DroppedNullKeys,
		"dropped_duplicates", report.DroppedDuplicates,
		"output", report.Output,
	)

	cleanPath, err := s.files.WriteLeaguesCSV(datasetLeagues, capture.CapturedAt, rows)
	if err != nil {
		return fmt.Errorf("write clean snapshot: %w", err)
	}
	s.logger.InfoContext(ctx, "clean league snapshot written", "path", cleanPath, "records", len(rows))

	if err := s.leagueRepo.InsertMany(ctx, rows); err != nil {
		s.logger.WarnContext(ctx, "league store insert failed, snapshot files remain authoritative", "error", err)
	}

	return nil
}

func (s *PipelineService) runFixtures(ctx context.Context) error {
	entries, capture, err := s.provider.FetchFixtures(ctx, s.defaults.LeagueID, s.defaults.Season)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	rawPath, err := s.files.WriteRawJSON(capture)
	if err != nil {
		return fmt.Errorf("write raw snapshot: %w", err)
	}
	s.logger.InfoContext(ctx, "raw fixture snapshot written", "path", rawPath, "records", capture.RecordCount)

	s.storeCapture(ctx, capture)

	rows := NormalizeFixtures(ctx, entries, s.logger)
	rows, dropped := DedupeFixtures(rows)
	if dropped > 0 {
		s.logger.WarnContext(ctx, "dropped duplicate fixture rows", "count", dropped)
	}

	cleanPath, err := s.files.WriteFixturesCSV(datasetFixtures, capture.CapturedAt, rows)
	if err != nil {
		return fmt.Errorf("write clean snapshot: %w", err)
	}
	s.logger.InfoContext(ctx, "clean fixture snapshot written", "path", cleanPath, "records", len(rows))

	if err := s.fixtureRepo.UpsertMany(ctx, rows); err != nil {
		s.logger.WarnContext(ctx, "fixture store upsert failed, snapshot files remain authoritative", "error", err)
	}

	return nil
}

// storeCapture archives the raw payload in the store. The snapshot
// file written beforehand is the durable copy, so a store failure only
// warns.
func (s *PipelineService) storeCapture(ctx context.Context, capture rawdata.Capture) {
	if s.rawRepo == nil {
		return
	}
	if err := s.rawRepo.InsertMany(ctx, []rawdata.Capture{capture}); err != nil {
		s.logger.WarnContext(ctx, "raw capture store insert failed", "dataset", capture.Dataset, "error", err)
	}
}
