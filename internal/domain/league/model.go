package league

// Record is one flattened (league x season) row produced by the
// normalizer. Rows are append-only once persisted.
type Record struct {
	LeagueID   int64  `json:"league_id" db:"league_id"`
	LeagueName string `json:"league_name" db:"league_name"`
	Type       string `json:"type" db:"type"`
	Country    string `json:"country" db:"country"`
	Season     int    `json:"season" db:"season"`
	Start      string `json:"start" db:"start_date"`
	End        string `json:"end" db:"end_date"`
	Current    bool   `json:"current" db:"current"`
}

// Columns lists the clean CSV header in persisted order.
func Columns() []string {
	return []string{"league_id", "league_name", "type", "country", "season", "start", "end", "current"}
}

// Stats aggregates stored league rows for the /stats endpoint.
type Stats struct {
	TotalLeagues   int64    `json:"total_leagues"`
	TotalCountries int64    `json:"total_countries"`
	Seasons        []int    `json:"seasons"`
	Countries      []string `json:"country_list"`
}
