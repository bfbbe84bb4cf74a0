// Package filestore writes timestamped raw JSON and clean CSV
// snapshots to the local data directories. Snapshot files are the
// durable output of a pipeline run; the queryable store is populated
// best-effort afterwards.
package filestore

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/prasetyowira/footdata/internal/domain/fixture"
	"github.com/prasetyowira/footdata/internal/domain/league"
	"github.com/prasetyowira/footdata/internal/domain/rawdata"
)

const snapshotTimeLayout = "20060102_150405"

type Store struct {
	rawDir   string
	cleanDir string
}

func New(rawDir, cleanDir string) *Store {
	return &Store{rawDir: rawDir, cleanDir: cleanDir}
}

// WriteRawJSON persists the captured provider payload verbatim as
// <dataset>_<timestamp>.json and returns the written path.
func (s *Store) WriteRawJSON(capture rawdata.Capture) (string, error) {
	if capture.Dataset == "" {
		return "", crerr.New("raw capture has no dataset tag")
	}

	if err := os.MkdirAll(s.rawDir, 0o755); err != nil {
		return "", crerr.Wrapf(err, "create raw data dir %q", s.rawDir)
	}

	path := filepath.Join(s.rawDir, snapshotName(capture.Dataset, capture.CapturedAt, "json"))
	if err := os.WriteFile(path, capture.Payload, 0o644); err != nil {
		return "", crerr.Wrapf(err, "write raw snapshot %q", path)
	}
	return path, nil
}

// WriteLeaguesCSV persists a validated league table as
// <dataset>_<timestamp>.csv and returns the written path.
func (s *Store) WriteLeaguesCSV(dataset string, capturedAt time.Time, items []league.Record) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := csv.NewWriter(buf)
	if err := w.Write(league.Columns()); err != nil {
		return "", crerr.Wrap(err, "write league csv header")
	}
	for _, item := range items {
		row := []string{
			strconv.FormatInt(item.LeagueID, 10),
			item.LeagueName,
			item.Type,
			item.Country,
			strconv.Itoa(item.Season),
			item.Start,
			item.End,
			strconv.FormatBool(item.Current),
		}
		if err := w.Write(row); err != nil {
			return "", crerr.Wrapf(err, "write league csv row id=%d", item.LeagueID)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", crerr.Wrap(err, "flush league csv")
	}

	return s.writeClean(dataset, capturedAt, buf.Bytes())
}

// WriteFixturesCSV persists a deduplicated fixture table as
// <dataset>_<timestamp>.csv and returns the written path.
func (s *Store) WriteFixturesCSV(dataset string, capturedAt time.Time, items []fixture.Record) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := csv.NewWriter(buf)
	if err := w.Write(fixture.Columns()); err != nil {
		return "", crerr.Wrap(err, "write fixture csv header")
	}
	for _, item := range items {
		row := []string{
			item.HomeTeam,
			item.AwayTeam,
			item.Status,
			item.Date,
			item.Time,
			item.HomeGoalsHT,
			item.AwayGoalsHT,
			item.HomeGoalsFT,
			item.AwayGoalsFT,
			strconv.FormatInt(item.HomeTeamID, 10),
			strconv.FormatInt(item.AwayTeamID, 10),
			strconv.FormatInt(item.MatchID, 10),
			strconv.FormatInt(item.LeagueID, 10),
			item.LeagueName,
			item.Round,
		}
		if err := w.Write(row); err != nil {
			return "", crerr.Wrapf(err, "write fixture csv row id_partido=%d", item.MatchID)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", crerr.Wrap(err, "flush fixture csv")
	}

	return s.writeClean(dataset, capturedAt, buf.Bytes())
}

func (s *Store) writeClean(dataset string, capturedAt time.Time, data []byte) (string, error) {
	if dataset == "" {
		return "", crerr.New("clean snapshot has no dataset tag")
	}

	if err := os.MkdirAll(s.cleanDir, 0o755); err != nil {
		return "", crerr.Wrapf(err, "create clean data dir %q", s.cleanDir)
	}

	path := filepath.Join(s.cleanDir, snapshotName(dataset, capturedAt, "csv"))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", crerr.Wrapf(err, "write clean snapshot %q", path)
	}
	return path, nil
}

func snapshotName(dataset string, capturedAt time.Time, ext string) string {
	if capturedAt.IsZero() {
		capturedAt = time.Now()
	}
	return dataset + "_" + capturedAt.UTC().Format(snapshotTimeLayout) + "." + ext
}
