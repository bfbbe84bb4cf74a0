package postgres

import (
	"time"

	"github.com/prasetyowira/footdata/internal/domain/fixture"
)

type fixtureTableModel struct {
	MatchID     int64     `db:"id_partido"`
	HomeTeam    string    `db:"equipo_local"`
	AwayTeam    string    `db:"equipo_visitante"`
	Status      string    `db:"estado_del_partido"`
	Date        string    `db:"fecha"`
	Time        string    `db:"hora"`
	HomeGoalsHT string    `db:"goles_local_1mt"`
	AwayGoalsHT string    `db:"goles_visitante_1mt"`
	HomeGoalsFT string    `db:"goles_local_tr"`
	AwayGoalsFT string    `db:"goles_visitante_tr"`
	HomeTeamID  int64     `db:"id_equipo_local"`
	AwayTeamID  int64     `db:"id_equipo_visitante"`
	LeagueID    int64     `db:"liga_id"`
	LeagueName  string    `db:"liga_nombre"`
	Round       string    `db:"ronda"`
	IngestedAt  time.Time `db:"ingested_at"`
}

func (m fixtureTableModel) toDomain() fixture.Record {
	return fixture.Record{
		MatchID:     m.MatchID,
		HomeTeam:    m.HomeTeam,
		AwayTeam:    m.AwayTeam,
		Status:      m.Status,
		Date:        m.Date,
		Time:        m.Time,
		HomeGoalsHT: m.HomeGoalsHT,
		AwayGoalsHT: m.AwayGoalsHT,
		HomeGoalsFT: m.HomeGoalsFT,
		AwayGoalsFT: m.AwayGoalsFT,
		HomeTeamID:  m.HomeTeamID,
		AwayTeamID:  m.AwayTeamID,
		LeagueID:    m.LeagueID,
		LeagueName:  m.LeagueName,
		Round:       m.Round,
	}
}
