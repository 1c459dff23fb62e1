package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/transport-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/transport-admin-api/internal/domain"
)

const dailySnapshotsTable = "daily_sales_snapshots"

type DailySnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshots []*domain.DailySalesSnapshot) error
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.DailySalesSnapshot, error)
}

type dailySnapshotRepository struct {
	conn *postgres.Connection
}

func NewDailySnapshotRepository(conn *postgres.Connection) DailySnapshotRepository {
	return &dailySnapshotRepository{conn: conn}
}

func (r *dailySnapshotRepository) SaveOrUpdate(ctx context.Context, snapshots []*domain.DailySalesSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	builder := psql.Insert(dailySnapshotsTable).Columns("date", "stats")
	for _, snapshot := range snapshots {
		stats, err := json.Marshal(snapshot.Stats)
		if err != nil {
			return fmt.Errorf("erro ao serializar estatísticas de %s: %w", snapshot.Date.Format(time.DateOnly), err)
		}
		builder = builder.Values(snapshot.Date.Format(time.DateOnly), stats)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (date) DO UPDATE SET stats = EXCLUDED.stats, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar snapshots diários: %w", err)
	}
	return nil
}

func (r *dailySnapshotRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.DailySalesSnapshot, error) {
	query, args, err := psql.
		Select("id", "date", "stats", "created_at", "updated_at").
		From(dailySnapshotsTable).
		Where(squirrel.GtOrEq{"date": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": end.Format(time.DateOnly)}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshots diários: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.DailySalesSnapshot, 0)
	for rows.Next() {
		var (
			snapshot domain.DailySalesSnapshot
			stats    []byte
		)
		if err := rows.Scan(&snapshot.ID, &snapshot.Date, &stats, &snapshot.CreatedAt, &snapshot.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		if err := json.Unmarshal(stats, &snapshot.Stats); err != nil {
			return nil, fmt.Errorf("erro ao decodificar estatísticas: %w", err)
		}
		snapshots = append(snapshots, &snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}
