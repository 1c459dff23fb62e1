package insighting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/infrastructure/repository"
	"github.com/vfg2006/transport-admin-api/internal/config"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/internal/usecases/aggregating"
	"github.com/vfg2006/transport-admin-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

type Service struct {
	historyRepository  repository.HistoryRepository
	userRepository     repository.UserRepository
	busRepository      repository.BusRepository
	driverRepository   repository.DriverRepository
	parcelRepository   repository.ParcelRepository
	snapshotRepository repository.DailySnapshotRepository
	cache              *historyCache
}

func NewService(
	cfg *config.Config,
	historyRepo repository.HistoryRepository,
	userRepo repository.UserRepository,
	busRepo repository.BusRepository,
	driverRepo repository.DriverRepository,
	parcelRepo repository.ParcelRepository,
	snapshotRepo repository.DailySnapshotRepository,
) *Service {
	return &Service{
		historyRepository:  historyRepo,
		userRepository:     userRepo,
		busRepository:      busRepo,
		driverRepository:   driverRepo,
		parcelRepository:   parcelRepo,
		snapshotRepository: snapshotRepo,
		cache:              newHistoryCache(cfg.History.CacheTTL),
	}
}

func (s *Service) LoadHistory(ctx context.Context) ([]domain.SaleRecord, error) {
	records, err := s.cache.get(ctx, s.historyRepository.ListSales)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar histórico: %w", err)
	}
	return records, nil
}

func (s *Service) Invalidate() {
	s.cache.invalidate()
}

func (s *Service) filtered(ctx context.Context, filters domain.HistoryFilters) ([]domain.SaleRecord, error) {
	records, err := s.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	return aggregating.Apply(records, aggregating.FromHistoryFilters(filters)...), nil
}

// GetHistory devolve os registros filtrados, os mais recentes primeiro
func (s *Service) GetHistory(ctx context.Context, filters domain.HistoryFilters, page domain.Pagination) (*domain.HistoryPage, error) {
	records, err := s.filtered(ctx, filters)
	if err != nil {
		return nil, err
	}

	sorted := aggregating.NewestFirst(records)

	limit := page.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset := max(page.Offset, 0)

	start := min(offset, len(sorted))
	end := min(start+limit, len(sorted))

	return &domain.HistoryPage{
		Records: sorted[start:end],
		Total:   len(sorted),
		Limit:   limit,
		Offset:  offset,
	}, nil
}

func (s *Service) GetHistoryStats(ctx context.Context, filters domain.HistoryFilters) (domain.AggregateStats, error) {
	records, err := s.filtered(ctx, filters)
	if err != nil {
		return domain.EmptyAggregateStats(), err
	}
	return aggregating.ComputeStats(records), nil
}

func (s *Service) GetHistoryCharts(ctx context.Context, filters domain.HistoryFilters, opts domain.ChartOptions) (*domain.HistoryCharts, error) {
	records, err := s.filtered(ctx, filters)
	if err != nil {
		return nil, err
	}
	charts := aggregating.BuildCharts(records, opts)
	return &charts, nil
}

// GetDashboardStats carrega as coleções em paralelo e monta o resumo do painel
func (s *Service) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var (
		users   []*domain.User
		buses   []*domain.Bus
		drivers []*domain.Driver
		parcels []*domain.Parcel
		history []domain.SaleRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = s.userRepository.ListUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		buses, err = s.busRepository.ListBuses(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		drivers, err = s.driverRepository.ListDrivers(gctx)
		return err
	})
	g.Go(func() (err error) {
		parcels, err = s.parcelRepository.ListParcels(gctx)
		return err
	})
	g.Go(func() (err error) {
		history, err = s.LoadHistory(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("Erro ao montar estatísticas do painel")
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalUsers: len(users),
		Parcels:    domain.CountParcelsByStatus(parcels),
	}

	for _, user := range users {
		if user.Status == domain.StatusConnected {
			stats.ConnectedUsers++
		}
	}
	stats.DisconnectedUsers = stats.TotalUsers - stats.ConnectedUsers

	for _, bus := range buses {
		if bus.Active {
			stats.ActiveBuses++
		} else {
			stats.InactiveBuses++
		}
	}

	for _, driver := range drivers {
		if driver.Active {
			stats.ActiveDrivers++
		}
	}

	aggregate := aggregating.ComputeStats(history)
	stats.TotalIncome = utils.RoundWithTwoDecimalPlace(aggregate.TotalRevenue)
	stats.TotalSales = aggregate.TotalSales

	return stats, nil
}

func (s *Service) GetDailySnapshots(ctx context.Context, start, end time.Time) ([]*domain.DailySalesSnapshot, error) {
	if start.After(end) {
		return nil, ErrInvalidPeriod
	}
	return s.snapshotRepository.GetByDateRange(ctx, start, end)
}

func (s *Service) Refresh(ctx context.Context, collection string) (any, error) {
	switch collection {
	case domain.CollectionHistory:
		return s.GetHistoryStats(ctx, domain.HistoryFilters{})
	case domain.CollectionUsers, domain.CollectionBuses, domain.CollectionDrivers, domain.CollectionParcels:
		return s.GetDashboardStats(ctx)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
}
