package insighting

import (
	"context"
	"time"

	"github.com/vfg2006/transport-admin-api/internal/domain"
)

// HistoryLoader expõe o histórico completo, já memorizado, para outros casos de uso
type HistoryLoader interface {
	LoadHistory(ctx context.Context) ([]domain.SaleRecord, error)
}

// Insighter reúne as consultas de estatísticas do painel
type Insighter interface {
	HistoryLoader

	GetHistory(ctx context.Context, filters domain.HistoryFilters, page domain.Pagination) (*domain.HistoryPage, error)
	GetHistoryStats(ctx context.Context, filters domain.HistoryFilters) (domain.AggregateStats, error)
	GetHistoryCharts(ctx context.Context, filters domain.HistoryFilters, opts domain.ChartOptions) (*domain.HistoryCharts, error)
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	GetDailySnapshots(ctx context.Context, start, end time.Time) ([]*domain.DailySalesSnapshot, error)

	// Invalidate descarta o histórico memorizado
	Invalidate()
	// Refresh monta o conteúdo enviado aos assinantes quando uma coleção muda
	Refresh(ctx context.Context, collection string) (any, error)
}
