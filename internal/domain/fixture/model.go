package fixture

import "strings"

// Stored status labels referenced outside the lookup table.
const (
	// StatusUnknown is emitted when the source carries no status label.
	StatusUnknown = "Desconocido"

	StatusFinished   = "Partido Finalizado"
	StatusNotStarted = "No Iniciado"
)

// Record represents one normalized match row. The persisted column
// names come from the upstream dataset and are kept verbatim, goal
// counts included: those are strings, null coalesced to "0".
type Record struct {
	MatchID     int64  `json:"id_partido" db:"id_partido"`
	HomeTeam    string `json:"equipo_local" db:"equipo_local"`
	AwayTeam    string `json:"equipo_visitante" db:"equipo_visitante"`
	Status      string `json:"estado_del_partido" db:"estado_del_partido"`
	Date        string `json:"fecha" db:"fecha"`
	Time        string `json:"hora" db:"hora"`
	HomeGoalsHT string `json:"goles_local_1MT" db:"goles_local_1mt"`
	AwayGoalsHT string `json:"goles_visitante_1MT" db:"goles_visitante_1mt"`
	HomeGoalsFT string `json:"goles_local_TR" db:"goles_local_tr"`
	AwayGoalsFT string `json:"goles_visitante_TR" db:"goles_visitante_tr"`
	HomeTeamID  int64  `json:"id_equipo_local" db:"id_equipo_local"`
	AwayTeamID  int64  `json:"id_equipo_visitante" db:"id_equipo_visitante"`
	LeagueID    int64  `json:"liga_id" db:"liga_id"`
	LeagueName  string `json:"liga_nombre" db:"liga_nombre"`
	Round       string `json:"ronda" db:"ronda"`
}

// Columns lists the clean CSV header in persisted order.
func Columns() []string {
	return []string{
		"equipo_local", "equipo_visitante", "estado_del_partido", "fecha", "hora",
		"goles_local_1MT", "goles_visitante_1MT", "goles_local_TR", "goles_visitante_TR",
		"id_equipo_local", "id_equipo_visitante", "id_partido", "liga_id", "liga_nombre", "ronda",
	}
}

var statusLabels = map[string]string{
	"Match Finished":      StatusFinished,
	"Not Started":         StatusNotStarted,
	"First Half":          "Primer Tiempo",
	"Halftime":            "Medio Tiempo",
	"Second Half":         "Segundo Tiempo",
	"Extra Time":          "Tiempo Extra",
	"Penalty In Progress": "Penales",
	"Match Postponed":     "Pospuesto",
	"Match Cancelled":     "Cancelado",
	"Match Suspended":     "Suspendido",
	"Match Abandoned":     "Abandonado",
}

// TranslateStatus maps the upstream long-form status label to its
// stored label. Unknown labels pass through verbatim.
func TranslateStatus(source string) string {
	if strings.TrimSpace(source) == "" {
		return StatusUnknown
	}
	if label, ok := statusLabels[source]; ok {
		return label
	}
	return source
}

// Stats aggregates stored fixture rows for the /fixtures/stats endpoint.
type Stats struct {
	TotalFixtures int64 `json:"total_fixtures"`
	TotalLeagues  int64 `json:"total_leagues"`
	TotalTeams    int64 `json:"total_teams"`
	Finished      int64 `json:"finished"`
	NotStarted    int64 `json:"not_started"`
}
