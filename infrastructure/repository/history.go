package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/transport-admin-api/internal/domain"
)

const historyTable = "sales_history"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HistoryRepository lê o histórico de vendas. Cada linha guarda o documento original em JSONB,
// sem esquema fixo; a decodificação tolera campos ausentes ou com tipo inesperado.
type HistoryRepository interface {
	ListSales(ctx context.Context) ([]domain.SaleRecord, error)
	ListSalesBetween(ctx context.Context, start, end time.Time) ([]domain.SaleRecord, error)
	InsertSales(ctx context.Context, records []domain.SaleRecord) error
}

type historyRepository struct {
	conn *postgres.Connection
}

func NewHistoryRepository(conn *postgres.Connection) HistoryRepository {
	return &historyRepository{conn: conn}
}

func (r *historyRepository) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	return r.list(ctx, psql.Select("id", "document").From(historyTable).OrderBy("created_at ASC", "id ASC"))
}

// ListSalesBetween filtra pela data de saída gravada no documento (YYYY-MM-DD), com limites inclusivos
func (r *historyRepository) ListSalesBetween(ctx context.Context, start, end time.Time) ([]domain.SaleRecord, error) {
	return r.list(ctx, psql.
		Select("id", "document").
		From(historyTable).
		Where(squirrel.GtOrEq{"document->>'fechaSalida'": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"document->>'fechaSalida'": end.Format(time.DateOnly)}).
		OrderBy("created_at ASC", "id ASC"))
}

func (r *historyRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.SaleRecord, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar histórico: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SaleRecord, 0)
	for rows.Next() {
		var (
			id       string
			document []byte
		)
		if err := rows.Scan(&id, &document); err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
		}

		var record domain.SaleRecord
		if err := json.Unmarshal(document, &record); err != nil {
			// um documento corrompido não derruba a leitura do histórico
			logrus.WithError(err).WithField("id", id).Warn("Documento do histórico ignorado")
			continue
		}
		record.ID = id
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *historyRepository) InsertSales(ctx context.Context, records []domain.SaleRecord) error {
	if len(records) == 0 {
		return nil
	}

	builder := psql.Insert(historyTable).Columns("id", "document")
	for _, record := range records {
		document, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("erro ao serializar venda %s: %w", record.ID, err)
		}
		builder = builder.Values(record.ID, document)
	}

	query, args, err := builder.Suffix("ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document").ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir histórico: %w", err)
	}
	return nil
}
