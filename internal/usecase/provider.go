package usecase

import (
	"context"

	"github.com/prasetyowira/footdata/internal/domain/rawdata"
)

// ExternalSeason is one season sub-entry of a provider league entry.
type ExternalSeason struct {
	Year    int
	Start   string
	End     string
	Current bool
}

// ExternalLeague is a decoded provider league entry before
// normalization.
type ExternalLeague struct {
	LeagueID int64
	Name     string
	Type     string
	Country  string
	Seasons  []ExternalSeason
}

// ExternalFixture is a decoded provider fixture entry before
// normalization. Goal counts stay nullable until the normalizer
// coalesces them.
type ExternalFixture struct {
	MatchID     int64
	Date        string
	StatusLong  string
	HomeTeam    string
	AwayTeam    string
	HomeTeamID  int64
	AwayTeamID  int64
	HomeGoalsHT *int
	AwayGoalsHT *int
	HomeGoalsFT *int
	AwayGoalsFT *int
	LeagueID    int64
	LeagueName  string
	Round       string
}

// SportsProvider abstracts the external football data API.
type SportsProvider interface {
	FetchLeagues(ctx context.Context, country string, season int) ([]ExternalLeague, rawdata.Capture, error)
	FetchFixtures(ctx context.Context, leagueID, season int) ([]ExternalFixture, rawdata.Capture, error)
	FetchFixtureByID(ctx context.Context, fixtureID int64) ([]ExternalFixture, rawdata.Capture, error)
}
