package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/transport-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/transport-admin-api/internal/domain"
)

const busRankingTable = "bus_ranking"

var busRankingColumns = []string{
	"id", "bus_number", "month", "revenue", "sales", "position", "position_change", "previous_position",
	"created_at", "updated_at",
}

type BusRankingRepository interface {
	// GetRanking devolve o ranking de um mês (mm-yyyy) ordenado pela posição
	GetRanking(ctx context.Context, month string) (*domain.BusRankingResponse, error)
	SaveOrUpdateBusRanking(ctx context.Context, rankings []*domain.BusRankingItem) error
}

type busRankingRepository struct {
	conn *postgres.Connection
}

func NewBusRankingRepository(conn *postgres.Connection) BusRankingRepository {
	return &busRankingRepository{conn: conn}
}

func (r *busRankingRepository) GetRanking(ctx context.Context, month string) (*domain.BusRankingResponse, error) {
	query, args, err := psql.
		Select(busRankingColumns...).
		From(busRankingTable).
		Where(squirrel.Eq{"month": month}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	response := &domain.BusRankingResponse{
		Month:   month,
		Ranking: make([]domain.BusRankingItem, 0),
	}

	for rows.Next() {
		var item domain.BusRankingItem
		err := rows.Scan(
			&item.ID,
			&item.BusNumber,
			&item.Month,
			&item.Revenue,
			&item.Sales,
			&item.Position,
			&item.PositionChange,
			&item.PreviousPosition,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		response.Ranking = append(response.Ranking, item)

		if item.UpdatedAt.After(response.LastUpdate) {
			response.LastUpdate = item.UpdatedAt
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if response.LastUpdate.IsZero() {
		response.LastUpdate = time.Now()
	}

	return response, nil
}

func (r *busRankingRepository) SaveOrUpdateBusRanking(ctx context.Context, rankings []*domain.BusRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	builder := psql.
		Insert(busRankingTable).
		Columns("bus_number", "month", "revenue", "sales", "position", "position_change", "previous_position")

	for _, ranking := range rankings {
		builder = builder.Values(
			ranking.BusNumber,
			ranking.Month,
			ranking.Revenue,
			ranking.Sales,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	query, args, err := builder.Suffix(`
		ON CONFLICT (bus_number, month) DO UPDATE SET
			revenue = EXCLUDED.revenue,
			sales = EXCLUDED.sales,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}
