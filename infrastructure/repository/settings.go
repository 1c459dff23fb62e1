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

const (
	settingsTable        = "app_settings"
	departurePlacesTable = "departure_places"

	appVersionKey = "app_version"
)

type SettingsRepository interface {
	GetAppVersion(ctx context.Context) (*domain.AppVersionConfig, error)
	SaveAppVersion(ctx context.Context, cfg domain.AppVersionConfig) error
	ListDeparturePlaces(ctx context.Context, activeOnly bool) ([]*domain.DeparturePlace, error)
}

type settingsRepository struct {
	conn *postgres.Connection
}

func NewSettingsRepository(conn *postgres.Connection) SettingsRepository {
	return &settingsRepository{conn: conn}
}

func (r *settingsRepository) GetAppVersion(ctx context.Context) (*domain.AppVersionConfig, error) {
	query, args, err := psql.
		Select("value", "updated_at").
		From(settingsTable).
		Where(squirrel.Eq{"key": appVersionKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		value []byte
		cfg   domain.AppVersionConfig
	)
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&value, &cfg.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar configuração: %w", err)
	}

	updatedAt := cfg.UpdatedAt
	if err := json.Unmarshal(value, &cfg); err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração: %w", err)
	}
	cfg.UpdatedAt = updatedAt

	return &cfg, nil
}

func (r *settingsRepository) SaveAppVersion(ctx context.Context, cfg domain.AppVersionConfig) error {
	cfg.UpdatedAt = nil
	value, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("erro ao serializar configuração: %w", err)
	}

	query, args, err := psql.
		Insert(settingsTable).
		Columns("key", "value").
		Values(appVersionKey, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar configuração: %w", err)
	}
	return nil
}

func (r *settingsRepository) ListDeparturePlaces(ctx context.Context, activeOnly bool) ([]*domain.DeparturePlace, error) {
	builder := psql.Select("id", "name", "active").From(departurePlacesTable).OrderBy("name ASC")
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lugares de saída: %w", err)
	}
	defer rows.Close()

	places := make([]*domain.DeparturePlace, 0)
	for rows.Next() {
		var place domain.DeparturePlace
		if err := rows.Scan(&place.ID, &place.Name, &place.Active); err != nil {
			return nil, fmt.Errorf("erro ao escanear lugar de saída: %w", err)
		}
		places = append(places, &place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return places, nil
}
