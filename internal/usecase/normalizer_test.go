package usecase

import (
	"context"
	"testing"

	"github.com/prasetyowira/footdata/internal/domain/fixture"
	"github.com/prasetyowira/footdata/internal/platform/logging"
)

func TestNormalizeLeagues_FlattensSeasons(t *testing.T) {
	t.Parallel()

	entries := []ExternalLeague{
		{
			LeagueID: 39,
			Name:     "Premier League",
			Type:     "League",
			Country:  "England",
			Seasons: []ExternalSeason{
				{Year: 2022, Start: "2022-08-05", End: "2023-05-28"},
				{Year: 2023, Start: "2023-08-11", End: "2024-05-19", Current: true},
			},
		},
		{
			LeagueID: 40,
			Name:     "Championship",
			Type:     "League",
			Country:  "England",
			Seasons:  []ExternalSeason{{Year: 2023}},
		},
	}

	rows := NormalizeLeagues(entries)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got=%d", len(rows))
	}
	if rows[0].LeagueID != 39 || rows[0].Season != 2022 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if !rows[1].Current {
		t.Fatalf("expected 2023 Premier League season marked current")
	}
	if rows[2].LeagueID != 40 || rows[2].Season != 2023 {
		t.Fatalf("unexpected last row: %+v", rows[2])
	}
}

func TestNormalizeLeagues_ZeroSeasonsYieldsZeroRows(t *testing.T) {
	t.Parallel()

	entries := []ExternalLeague{
		{LeagueID: 39, Name: "Premier League", Country: "England"},
	}

	if rows := NormalizeLeagues(entries); len(rows) != 0 {
		t.Fatalf("expected no rows for an entry without seasons, got=%d", len(rows))
	}
}

func TestNormalizeFixtures_MapsAndCoalesces(t *testing.T) {
	t.Parallel()

	two := 2
	entries := []ExternalFixture{
		{
			MatchID:     868549,
			Date:        "2023-08-11T19:00:00+00:00",
			StatusLong:  "Match Finished",
			HomeTeam:    "Burnley",
			AwayTeam:    "Manchester City",
			HomeTeamID:  44,
			AwayTeamID:  50,
			AwayGoalsHT: &two,
			AwayGoalsFT: &two,
			LeagueID:    39,
			LeagueName:  "Premier League",
			Round:       "Regular Season - 1",
		},
	}

	rows := NormalizeFixtures(context.Background(), entries, logging.NewNop())
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got=%d", len(rows))
	}

	row := rows[0]
	if row.Date != "2023-08-11" || row.Time != "19:00:00.000000" {
		t.Fatalf("unexpected timestamp split: date=%q time=%q", row.Date, row.Time)
	}
	if row.Status != "Partido Finalizado" {
		t.Fatalf("unexpected status: %q", row.Status)
	}
	if row.HomeGoalsFT != "0" || row.AwayGoalsFT != "2" {
		t.Fatalf("unexpected goal coalescing: home=%q away=%q", row.HomeGoalsFT, row.AwayGoalsFT)
	}
	if row.HomeGoalsHT != "0" || row.AwayGoalsHT != "2" {
		t.Fatalf("unexpected halftime goals: home=%q away=%q", row.HomeGoalsHT, row.AwayGoalsHT)
	}
}

func TestNormalizeFixtures_DefaultsMissingNames(t *testing.T) {
	t.Parallel()

	entries := []ExternalFixture{
		{MatchID: 1, Date: "2023-08-11T19:00:00Z"},
	}

	rows := NormalizeFixtures(context.Background(), entries, logging.NewNop())
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got=%d", len(rows))
	}
	if rows[0].HomeTeam != "Unknown" || rows[0].AwayTeam != "Unknown" {
		t.Fatalf("expected unknown team defaults, got home=%q away=%q", rows[0].HomeTeam, rows[0].AwayTeam)
	}
	if rows[0].Round != "N/A" {
		t.Fatalf("expected N/A round default, got=%q", rows[0].Round)
	}
	if rows[0].Status != fixture.StatusUnknown {
		t.Fatalf("expected %q status for empty input, got=%q", fixture.StatusUnknown, rows[0].Status)
	}
}

func TestNormalizeFixtures_SkipsMalformedEntries(t *testing.T) {
	t.Parallel()

	entries := []ExternalFixture{
		{MatchID: 2, Date: "not-a-timestamp"},
		{MatchID: 3, Date: "2023-08-12T14:00:00Z"},
	}

	rows := NormalizeFixtures(context.Background(), entries, logging.NewNop())
	if len(rows) != 1 {
		t.Fatalf("expected only the well-formed entry to survive, got=%d", len(rows))
	}
	if rows[0].MatchID != 3 {
		t.Fatalf("unexpected surviving row: %+v", rows[0])
	}
}

func TestNormalizeFixtures_KeepsZeroIDRows(t *testing.T) {
	t.Parallel()

	entries := []ExternalFixture{
		{MatchID: 0, Date: "2023-08-11T19:00:00Z", HomeTeam: "Burnley", LeagueID: 39},
	}

	rows := NormalizeFixtures(context.Background(), entries, logging.NewNop())
	if len(rows) != 1 {
		t.Fatalf("a missing id defaults to zero, the row stays; got=%d rows", len(rows))
	}
	if rows[0].MatchID != 0 || rows[0].LeagueID != 39 {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}

func TestNormalizeFixtures_EmptyTimestampKept(t *testing.T) {
	t.Parallel()

	entries := []ExternalFixture{{MatchID: 5}}

	rows := NormalizeFixtures(context.Background(), entries, logging.NewNop())
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got=%d", len(rows))
	}
	if rows[0].Date != "" || rows[0].Time != "" {
		t.Fatalf("expected empty date fields for absent timestamp, got date=%q time=%q", rows[0].Date, rows[0].Time)
	}
}

func TestDedupeFixtures_KeepsLastOccurrence(t *testing.T) {
	t.Parallel()

	items := []fixture.Record{
		{MatchID: 1, Status: "stale"},
		{MatchID: 2, Status: "only"},
		{MatchID: 1, Status: "fresh"},
	}

	kept, dropped := DedupeFixtures(items)
	if dropped != 1 {
		t.Fatalf("expected 1 dropped row, got=%d", dropped)
	}
	if len(kept) != 2 {
		t.Fatalf("expected 2 kept rows, got=%d", len(kept))
	}
	if kept[0].MatchID != 2 || kept[1].MatchID != 1 {
		t.Fatalf("unexpected kept ordering: %+v", kept)
	}
	if kept[1].Status != "fresh" {
		t.Fatalf("expected last occurrence kept, got=%q", kept[1].Status)
	}

	again, droppedAgain := DedupeFixtures(kept)
	if droppedAgain != 0 || len(again) != len(kept) {
		t.Fatalf("dedupe is not idempotent: dropped=%d len=%d", droppedAgain, len(again))
	}
}
