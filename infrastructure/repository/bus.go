package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/transport-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/transport-admin-api/internal/domain"
)

const busesTable = "buses"

var busColumns = []string{"id", "number", "route", "capacity", "driver", "active", "origin", "created_at", "updated_at"}

type BusRepository interface {
	ListBuses(ctx context.Context, origin *domain.BusOrigin) ([]*domain.Bus, error)
	GetBusByID(ctx context.Context, id string) (*domain.Bus, error)
	GetBusByNumber(ctx context.Context, number string) (*domain.Bus, error)
	CreateBus(ctx context.Context, bus *domain.Bus) error
	UpdateBus(ctx context.Context, req domain.UpdateBusRequest) error
}

type busRepository struct {
	conn *postgres.Connection
}

func NewBusRepository(conn *postgres.Connection) BusRepository {
	return &busRepository{conn: conn}
}

func (r *busRepository) ListBuses(ctx context.Context, origin *domain.BusOrigin) ([]*domain.Bus, error) {
	builder := psql.Select(busColumns...).From(busesTable).OrderBy("origin ASC", "number ASC")
	if origin != nil {
		builder = builder.Where(squirrel.Eq{"origin": *origin})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ônibus: %w", err)
	}
	defer rows.Close()

	buses := make([]*domain.Bus, 0)
	for rows.Next() {
		bus, err := scanBus(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ônibus: %w", err)
		}
		buses = append(buses, bus)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return buses, nil
}

func (r *busRepository) GetBusByID(ctx context.Context, id string) (*domain.Bus, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *busRepository) GetBusByNumber(ctx context.Context, number string) (*domain.Bus, error) {
	return r.getBy(ctx, squirrel.Eq{"number": number})
}

func (r *busRepository) getBy(ctx context.Context, where squirrel.Eq) (*domain.Bus, error) {
	query, args, err := psql.Select(busColumns...).From(busesTable).Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	bus, err := scanBus(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar ônibus: %w", err)
	}
	return bus, nil
}

func (r *busRepository) CreateBus(ctx context.Context, bus *domain.Bus) error {
	query, args, err := psql.
		Insert(busesTable).
		Columns("id", "number", "route", "capacity", "driver", "active", "origin").
		Values(bus.ID, bus.Number, bus.Route, bus.Capacity, bus.Driver, bus.Active, bus.Origin).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&bus.CreatedAt, &bus.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir ônibus: %w", err)
	}
	return nil
}

func (r *busRepository) UpdateBus(ctx context.Context, req domain.UpdateBusRequest) error {
	builder := psql.
		Update(busesTable).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": req.ID})

	if req.Route != nil {
		builder = builder.Set("route", *req.Route)
	}
	if req.Capacity != nil {
		builder = builder.Set("capacity", *req.Capacity)
	}
	if req.Driver != nil {
		builder = builder.Set("driver", *req.Driver)
	}
	if req.Active != nil {
		builder = builder.Set("active", *req.Active)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar ônibus: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBus(row scanner) (*domain.Bus, error) {
	var bus domain.Bus
	err := row.Scan(
		&bus.ID,
		&bus.Number,
		&bus.Route,
		&bus.Capacity,
		&bus.Driver,
		&bus.Active,
		&bus.Origin,
		&bus.CreatedAt,
		&bus.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bus, nil
}
