package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"floodloss/internal/db/models/postgres/public/model"
	"floodloss/internal/db/models/postgres/public/table"
	"floodloss/internal/domain"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/lib/pq"
)

const lossRunSchema = `create table if not exists loss_run (
	loss_run_id uuid primary key,
	started_at timestamptz not null,
	asset_map text not null,
	num_assets integer not null,
	intensities text[] not null,
	stats jsonb not null
);`

type LossRunRepository interface {
	EnsureSchema(db qrm.Executable) error
	Add(db qrm.Executable, run domain.LossRun) error
	List(db qrm.Queryable, limit int) ([]domain.LossRun, error)
}

func NewLossRunRepository() LossRunRepository {
	return LossRunRepositoryHandler{}
}

type LossRunRepositoryHandler struct{}

// EnsureSchema creates the loss_run table the generated models are built
// from, if it is missing.
func (h LossRunRepositoryHandler) EnsureSchema(db qrm.Executable) error {
	_, err := db.ExecContext(context.Background(), lossRunSchema)
	if err != nil {
		return fmt.Errorf("failed to create loss_run table: %w", err)
	}
	return nil
}

func (h LossRunRepositoryHandler) Add(db qrm.Executable, run domain.LossRun) error {
	m, err := lossRunToModel(run)
	if err != nil {
		return err
	}

	query := table.LossRun.
		INSERT(table.LossRun.AllColumns).
		MODEL(m)

	_, err = query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert loss run %s: %w", run.RunID, err)
	}

	return nil
}

func (h LossRunRepositoryHandler) List(db qrm.Queryable, limit int) ([]domain.LossRun, error) {
	query := table.LossRun.
		SELECT(table.LossRun.AllColumns).
		ORDER_BY(table.LossRun.StartedAt.DESC()).
		LIMIT(int64(limit))

	result := []model.LossRun{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list loss runs: %w", err)
	}

	out := make([]domain.LossRun, 0, len(result))
	for _, m := range result {
		run, err := lossRunFromModel(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *run)
	}

	return out, nil
}

func lossRunToModel(run domain.LossRun) (*model.LossRun, error) {
	stats, err := json.Marshal(run.Stats)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal loss run stats: %w", err)
	}
	encoded, err := pq.StringArray(run.Intensities).Value()
	if err != nil {
		return nil, fmt.Errorf("failed to encode loss run intensities: %w", err)
	}
	intensities, ok := encoded.(string)
	if !ok {
		intensities = "{}"
	}

	return &model.LossRun{
		LossRunID:   run.RunID,
		StartedAt:   run.StartedAt,
		AssetMap:    run.AssetMap,
		NumAssets:   int32(run.NumAssets),
		Intensities: intensities,
		Stats:       string(stats),
	}, nil
}

func lossRunFromModel(m model.LossRun) (*domain.LossRun, error) {
	intensities := pq.StringArray{}
	if err := intensities.Scan(m.Intensities); err != nil {
		return nil, fmt.Errorf("failed to decode intensities of loss run %s: %w", m.LossRunID, err)
	}

	run := &domain.LossRun{
		RunID:       m.LossRunID,
		StartedAt:   m.StartedAt,
		AssetMap:    m.AssetMap,
		NumAssets:   int(m.NumAssets),
		Intensities: intensities,
	}
	if err := json.Unmarshal([]byte(m.Stats), &run.Stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats of loss run %s: %w", m.LossRunID, err)
	}

	return run, nil
}
