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

const parcelsTable = "parcels"

var parcelColumns = []string{
	"id", "tracking_code", "status", "number", "sender", "recipient", "notes", "price", "created_at", "updated_at",
}

// ParcelRepository devolve o status como gravado; a normalização fica no caso de uso
type ParcelRepository interface {
	ListParcels(ctx context.Context) ([]*domain.Parcel, error)
	GetParcelByID(ctx context.Context, id string) (*domain.Parcel, error)
	CreateParcel(ctx context.Context, parcel *domain.Parcel) error
	UpdateParcelStatus(ctx context.Context, id string, status domain.ParcelStatus) error
}

type parcelRepository struct {
	conn *postgres.Connection
}

func NewParcelRepository(conn *postgres.Connection) ParcelRepository {
	return &parcelRepository{conn: conn}
}

func (r *parcelRepository) ListParcels(ctx context.Context) ([]*domain.Parcel, error) {
	query, args, err := psql.Select(parcelColumns...).From(parcelsTable).OrderBy("created_at DESC NULLS LAST").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar encomendas: %w", err)
	}
	defer rows.Close()

	parcels := make([]*domain.Parcel, 0)
	for rows.Next() {
		parcel, err := scanParcel(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear encomenda: %w", err)
		}
		parcels = append(parcels, parcel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return parcels, nil
}

func (r *parcelRepository) GetParcelByID(ctx context.Context, id string) (*domain.Parcel, error) {
	query, args, err := psql.Select(parcelColumns...).From(parcelsTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	parcel, err := scanParcel(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar encomenda: %w", err)
	}
	return parcel, nil
}

func (r *parcelRepository) CreateParcel(ctx context.Context, parcel *domain.Parcel) error {
	query, args, err := psql.
		Insert(parcelsTable).
		Columns("id", "tracking_code", "status", "number", "sender", "recipient", "notes", "price").
		Values(parcel.ID, parcel.TrackingCode, parcel.Status, parcel.Number, parcel.Sender, parcel.Recipient, parcel.Notes, parcel.Price).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&parcel.CreatedAt, &parcel.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir encomenda: %w", err)
	}
	return nil
}

func (r *parcelRepository) UpdateParcelStatus(ctx context.Context, id string, status domain.ParcelStatus) error {
	query, args, err := psql.
		Update(parcelsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar encomenda: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanParcel(row scanner) (*domain.Parcel, error) {
	var parcel domain.Parcel
	err := row.Scan(
		&parcel.ID,
		&parcel.TrackingCode,
		&parcel.Status,
		&parcel.Number,
		&parcel.Sender,
		&parcel.Recipient,
		&parcel.Notes,
		&parcel.Price,
		&parcel.CreatedAt,
		&parcel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &parcel, nil
}
