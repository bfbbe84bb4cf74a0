package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/prasetyowira/footdata/internal/domain/fixture"
	"github.com/prasetyowira/footdata/internal/domain/league"
	"github.com/prasetyowira/footdata/internal/platform/logging"
)

const (
	unknownTeamName = "Unknown"
	unknownRound    = "N/A"

	dateLayout = "2006-01-02"
	timeLayout = "15:04:05.000000"
)

// NormalizeLeagues flattens provider league entries into one row per
// (league x season). An entry with zero seasons contributes zero rows:
// season is part of the natural key.
func NormalizeLeagues(entries []ExternalLeague) []league.Record {
	out := make([]league.Record, 0, len(entries))
	for _, entry := range entries {
		for _, season := range entry.Seasons {
			out = append(out, league.Record{
				LeagueID:   entry.LeagueID,
				LeagueName: entry.Name,
				Type:       entry.Type,
				Country:    entry.Country,
				Season:     season.Year,
				Start:      season.Start,
				End:        season.End,
				Current:    season.Current,
			})
		}
	}
	return out
}

// NormalizeFixtures flattens provider fixture entries into match rows.
// Missing numeric ids stay zero. A malformed entry is skipped with a
// warning, never aborting the batch.
func NormalizeFixtures(ctx context.Context, entries []ExternalFixture, logger *logging.Logger) []fixture.Record {
	if logger == nil {
		logger = logging.Default()
	}

	out := make([]fixture.Record, 0, len(entries))
	for _, entry := range entries {
		date, clock, ok := splitTimestamp(entry.Date)
		if !ok {
			logger.WarnContext(ctx, "skipping fixture with unparseable timestamp", "id_partido", entry.MatchID, "date", entry.Date)
			continue
		}

		out = append(out, fixture.Record{
			MatchID:     entry.MatchID,
			HomeTeam:    defaultString(entry.HomeTeam, unknownTeamName),
			AwayTeam:    defaultString(entry.AwayTeam, unknownTeamName),
			Status:      fixture.TranslateStatus(entry.StatusLong),
			Date:        date,
			Time:        clock,
			HomeGoalsHT: coalesceGoals(entry.HomeGoalsHT),
			AwayGoalsHT: coalesceGoals(entry.AwayGoalsHT),
			HomeGoalsFT: coalesceGoals(entry.HomeGoalsFT),
			AwayGoalsFT: coalesceGoals(entry.AwayGoalsFT),
			HomeTeamID:  entry.HomeTeamID,
			AwayTeamID:  entry.AwayTeamID,
			LeagueID:    entry.LeagueID,
			LeagueName:  entry.LeagueName,
			Round:       defaultString(entry.Round, unknownRound),
		})
	}
	return out
}

// DedupeFixtures drops earlier occurrences of a repeated match id,
// keeping the last-seen row per key. Applying it twice is a no-op.
func DedupeFixtures(items []fixture.Record) ([]fixture.Record, int) {
	lastIndex := make(map[int64]int, len(items))
	for i, item := range items {
		lastIndex[item.MatchID] = i
	}

	out := make([]fixture.Record, 0, len(lastIndex))
	for i, item := range items {
		if lastIndex[item.MatchID] == i {
			out = append(out, item)
		}
	}
	return out, len(items) - len(out)
}

// splitTimestamp splits an ISO-8601 timestamp into a date and a
// microsecond-precision clock. A trailing literal Z means UTC. An
// absent timestamp yields empty fields; a present but unparseable one
// reports failure.
func splitTimestamp(raw string) (string, string, bool) {
	if raw == "" {
		return "", "", true
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return "", "", false
	}
	return parsed.Format(dateLayout), parsed.Format(timeLayout), true
}

// coalesceGoals keeps goal counts as strings, null coalesced to "0".
func coalesceGoals(value *int) string {
	if value == nil {
		return "0"
	}
	return strconv.Itoa(*value)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
