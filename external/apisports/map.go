package apisports

import (
	"strings"

	"github.com/prasetyowira/footdata/internal/usecase"
)

func mapLeagueEntries(entries []LeagueEntry) []usecase.ExternalLeague {
	out := make([]usecase.ExternalLeague, 0, len(entries))
	for _, entry := range entries {
		seasons := make([]usecase.ExternalSeason, 0, len(entry.Seasons))
		for _, season := range entry.Seasons {
			seasons = append(seasons, usecase.ExternalSeason{
				Year:    season.Year,
				Start:   strings.TrimSpace(season.Start),
				End:     strings.TrimSpace(season.End),
				Current: season.Current,
			})
		}

		out = append(out, usecase.ExternalLeague{
			LeagueID: entry.League.ID.Int64(),
			Name:     strings.TrimSpace(entry.League.Name),
			Type:     strings.TrimSpace(entry.League.Type),
			Country:  strings.TrimSpace(entry.Country.Name),
			Seasons:  seasons,
		})
	}
	return out
}

func mapFixtureEntries(entries []FixtureEntry) []usecase.ExternalFixture {
	out := make([]usecase.ExternalFixture, 0, len(entries))
	for _, entry := range entries {
		out = append(out, usecase.ExternalFixture{
			MatchID:     entry.Fixture.ID.Int64(),
			Date:        strings.TrimSpace(entry.Fixture.Date),
			StatusLong:  strings.TrimSpace(entry.Fixture.Status.Long),
			HomeTeam:    strings.TrimSpace(entry.Teams.Home.Name),
			AwayTeam:    strings.TrimSpace(entry.Teams.Away.Name),
			HomeTeamID:  entry.Teams.Home.ID.Int64(),
			AwayTeamID:  entry.Teams.Away.ID.Int64(),
			HomeGoalsHT: entry.Score.Halftime.Home,
			AwayGoalsHT: entry.Score.Halftime.Away,
			HomeGoalsFT: entry.Goals.Home,
			AwayGoalsFT: entry.Goals.Away,
			LeagueID:    entry.League.ID.Int64(),
			LeagueName:  strings.TrimSpace(entry.League.Name),
			Round:       strings.TrimSpace(entry.League.Round),
		})
	}
	return out
}
