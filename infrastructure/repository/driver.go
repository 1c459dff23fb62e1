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

const driversTable = "drivers"

var driverColumns = []string{"id", "name", "plate", "capacity", "license", "active", "created_at", "updated_at"}

type DriverRepository interface {
	ListDrivers(ctx context.Context) ([]*domain.Driver, error)
	GetDriverByID(ctx context.Context, id string) (*domain.Driver, error)
	CreateDriver(ctx context.Context, driver *domain.Driver) error
	UpdateDriver(ctx context.Context, req domain.UpdateDriverRequest) error
}

type driverRepository struct {
	conn *postgres.Connection
}

func NewDriverRepository(conn *postgres.Connection) DriverRepository {
	return &driverRepository{conn: conn}
}

func (r *driverRepository) ListDrivers(ctx context.Context) ([]*domain.Driver, error) {
	query, args, err := psql.Select(driverColumns...).From(driversTable).OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar motoristas: %w", err)
	}
	defer rows.Close()

	drivers := make([]*domain.Driver, 0)
	for rows.Next() {
		driver, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear motorista: %w", err)
		}
		drivers = append(drivers, driver)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return drivers, nil
}

func (r *driverRepository) GetDriverByID(ctx context.Context, id string) (*domain.Driver, error) {
	query, args, err := psql.Select(driverColumns...).From(driversTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	driver, err := scanDriver(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar motorista: %w", err)
	}
	return driver, nil
}

func (r *driverRepository) CreateDriver(ctx context.Context, driver *domain.Driver) error {
	query, args, err := psql.
		Insert(driversTable).
		Columns("id", "name", "plate", "capacity", "license", "active").
		Values(driver.ID, driver.Name, driver.Plate, driver.Capacity, driver.License, driver.Active).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&driver.CreatedAt, &driver.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir motorista: %w", err)
	}
	return nil
}

func (r *driverRepository) UpdateDriver(ctx context.Context, req domain.UpdateDriverRequest) error {
	builder := psql.
		Update(driversTable).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": req.ID})

	if req.Name != nil {
		builder = builder.Set("name", *req.Name)
	}
	if req.Plate != nil {
		builder = builder.Set("plate", *req.Plate)
	}
	if req.Capacity != nil {
		builder = builder.Set("capacity", *req.Capacity)
	}
	if req.License != nil {
		builder = builder.Set("license", *req.License)
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
		return fmt.Errorf("erro ao atualizar motorista: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanDriver(row scanner) (*domain.Driver, error) {
	var (
		driver domain.Driver
		active sql.NullBool
	)
	err := row.Scan(
		&driver.ID,
		&driver.Name,
		&driver.Plate,
		&driver.Capacity,
		&driver.License,
		&active,
		&driver.CreatedAt,
		&driver.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	// motoristas antigos não têm o campo; ausência significa ativo
	driver.Active = !active.Valid || active.Bool
	return &driver, nil
}
