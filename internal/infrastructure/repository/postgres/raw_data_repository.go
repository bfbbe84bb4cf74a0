package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/prasetyowira/footdata/internal/domain/rawdata"
	qb "github.com/prasetyowira/footdata/internal/platform/querybuilder"
)

const rawCaptureTable = "raw_captures"

type RawDataRepository struct {
	db *sqlx.DB
}

func NewRawDataRepository(db *sqlx.DB) *RawDataRepository {
	return &RawDataRepository{db: db}
}

// InsertMany archives captured provider payloads. Captures are
// write-once: the snapshot file on disk stays the durable copy and
// this table exists for ad-hoc inspection.
func (r *RawDataRepository) InsertMany(ctx context.Context, items []rawdata.Capture) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx insert raw captures: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		params, err := sonic.Marshal(item.Params)
		if err != nil {
			return fmt.Errorf("marshal raw capture params dataset=%s: %w", item.Dataset, err)
		}

		insertModel := rawCaptureInsertModel{
			Dataset:     item.Dataset,
			CapturedAt:  item.CapturedAt,
			Params:      string(params),
			RecordCount: item.RecordCount,
			Payload:     string(item.Payload),
		}

		query, args, err := qb.InsertModel(rawCaptureTable, insertModel, "")
		if err != nil {
			return fmt.Errorf("build insert raw capture query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert raw capture dataset=%s: %w", item.Dataset, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert raw captures tx: %w", err)
	}

	return nil
}

type rawCaptureInsertModel struct {
	Dataset     string    `db:"dataset"`
	CapturedAt  time.Time `db:"captured_at"`
	Params      string    `db:"params"`
	RecordCount int       `db:"record_count"`
	Payload     string    `db:"payload"`
}
