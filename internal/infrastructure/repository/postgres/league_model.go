package postgres

import (
	"time"

	"github.com/prasetyowira/footdata/internal/domain/league"
)

type leagueTableModel struct {
	LeagueID   int64     `db:"league_id"`
	LeagueName string    `db:"league_name"`
	Type       string    `db:"type"`
	Country    string    `db:"country"`
	Season     int       `db:"season"`
	StartDate  string    `db:"start_date"`
	EndDate    string    `db:"end_date"`
	Current    bool      `db:"current"`
	IngestedAt time.Time `db:"ingested_at"`
}

func (m leagueTableModel) toDomain() league.Record {
	return league.Record{
		LeagueID:   m.LeagueID,
		LeagueName: m.LeagueName,
		Type:       m.Type,
		Country:    m.Country,
		Season:     m.Season,
		Start:      m.StartDate,
		End:        m.EndDate,
		Current:    m.Current,
	}
}

type leagueInsertModel struct {
	LeagueID   int64  `db:"league_id"`
	LeagueName string `db:"league_name"`
	Type       string `db:"type"`
	Country    string `db:"country"`
	Season     int    `db:"season"`
	StartDate  string `db:"start_date"`
	EndDate    string `db:"end_date"`
	Current    bool   `db:"current"`
}

func newLeagueInsertModel(item league.Record) leagueInsertModel {
	return leagueInsertModel{
		LeagueID:   item.LeagueID,
		LeagueName: item.LeagueName,
		Type:       item.Type,
		Country:    item.Country,
		Season:     item.Season,
		StartDate:  item.Start,
		EndDate:    item.End,
		Current:    item.Current,
	}
}
