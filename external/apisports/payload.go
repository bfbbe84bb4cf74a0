package apisports

import (
	"strconv"
	"strings"
)

// FlexInt decodes a JSON number or a numeric string. The provider is
// not consistent about id typing across endpoints.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "" || text == "null" {
		*f = 0
		return nil
	}
	text = strings.Trim(text, `"`)
	if text == "" {
		*f = 0
		return nil
	}

	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return err
	}
	*f = FlexInt(parsed)
	return nil
}

func (f FlexInt) Int64() int64 { return int64(f) }

type leaguesEnvelope struct {
	Results  int           `json:"results"`
	Response []LeagueEntry `json:"response"`
}

type LeagueEntry struct {
	League  LeagueInfo   `json:"league"`
	Country CountryInfo  `json:"country"`
	Seasons []SeasonInfo `json:"seasons"`
}

type LeagueInfo struct {
	ID   FlexInt `json:"id"`
	Name string  `json:"name"`
	Type string  `json:"type"`
}

type CountryInfo struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type SeasonInfo struct {
	Year    int    `json:"year"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Current bool   `json:"current"`
}

type fixturesEnvelope struct {
	Results  int            `json:"results"`
	Response []FixtureEntry `json:"response"`
}

type FixtureEntry struct {
	Fixture FixtureInfo       `json:"fixture"`
	League  FixtureLeagueInfo `json:"league"`
	Teams   FixtureTeams      `json:"teams"`
	Goals   FixtureGoals      `json:"goals"`
	Score   FixtureScore      `json:"score"`
}

type FixtureInfo struct {
	ID     FlexInt       `json:"id"`
	Date   string        `json:"date"`
	Status FixtureStatus `json:"status"`
}

type FixtureStatus struct {
	Long  string `json:"long"`
	Short string `json:"short"`
}

type FixtureLeagueInfo struct {
	ID    FlexInt `json:"id"`
	Name  string  `json:"name"`
	Round string  `json:"round"`
}

type FixtureTeams struct {
	Home FixtureTeam `json:"home"`
	Away FixtureTeam `json:"away"`
}

type FixtureTeam struct {
	ID   FlexInt `json:"id"`
	Name string  `json:"name"`
}

// FixtureScore carries the per-period breakdown. Regulation-time
// totals live in the top-level goals field; score.fulltime differs for
// matches decided after extra time.
type FixtureScore struct {
	Halftime FixtureGoals `json:"halftime"`
}

type FixtureGoals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}
