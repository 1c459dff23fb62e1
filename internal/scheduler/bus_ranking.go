package scheduler

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/infrastructure/repository"
	"github.com/vfg2006/transport-admin-api/internal/config"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type BusRankingConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// BusRankingService recalcula diariamente o ranking de faturamento dos ônibus no mês corrente
type BusRankingService struct {
	scheduler   *gocron.Scheduler
	historyRepo repository.HistoryRepository
	rankingRepo repository.BusRankingRepository
	config      BusRankingConfig
	state       jobState
	baseCtx     context.Context
	now         func() time.Time
}

func NewBusRankingService(
	historyRepo repository.HistoryRepository,
	rankingRepo repository.BusRankingRepository,
	cfg *config.Config,
) *BusRankingService {
	rankingConfig := BusRankingConfig{
		CronSchedule: cfg.BusRanking.CronSchedule,
		SyncEnabled:  cfg.BusRanking.SyncEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rankingConfig.CronSchedule,
		"sync_enabled":  rankingConfig.SyncEnabled,
	}).Info("Configuração do agendador do ranking de ônibus carregada")

	return &BusRankingService{
		scheduler:   gocron.NewScheduler(time.Local),
		historyRepo: historyRepo,
		rankingRepo: rankingRepo,
		config:      rankingConfig,
		baseCtx:     context.Background(),
		now:         time.Now,
	}
}

func (s *BusRankingService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do ranking de ônibus desabilitada por configuração")
		return nil
	}

	s.baseCtx = ctx
	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do ranking de ônibus")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateBusRanking(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de ônibus")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do ranking de ônibus: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de ônibus")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateBusRanking executa uma atualização completa; execuções concorrentes são ignoradas
func (s *BusRankingService) UpdateBusRanking(ctx context.Context) error {
	if !s.state.begin(s.now()) {
		logrus.Warn("Atualização do ranking de ônibus já está em execução")
		return nil
	}

	_, err := s.processBusRanking(ctx, s.now())
	s.state.finish(s.now(), err)

	return err
}

// processBusRanking soma o faturamento de cada ônibus entre o primeiro dia do mês de ontem e ontem
func (s *BusRankingService) processBusRanking(ctx context.Context, processingDate time.Time) ([]*domain.BusRankingItem, error) {
	yesterday := utils.TruncateDay(processingDate.AddDate(0, 0, -1))
	firstDayOfMonth := utils.FirstDayOfMonth(yesterday)
	month := utils.RankingMonth(yesterday)

	logger := logrus.WithFields(logrus.Fields{
		"month":      month,
		"start_date": firstDayOfMonth.Format(time.DateOnly),
		"end_date":   yesterday.Format(time.DateOnly),
	})
	logger.Info("Iniciando atualização do ranking de ônibus")

	var (
		previous *domain.BusRankingResponse
		sales    []domain.SaleRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		previous, err = s.rankingRepo.GetRanking(gctx, month)
		if err != nil {
			return fmt.Errorf("erro ao buscar ranking anterior: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sales, err = s.historyRepo.ListSalesBetween(gctx, firstDayOfMonth, yesterday)
		if err != nil {
			return fmt.Errorf("erro ao buscar vendas do mês: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("Erro ao carregar dados do ranking de ônibus")
		return nil, err
	}

	rankingsBeforeUpdate := make(map[string]*domain.BusRankingItem)
	if previous != nil {
		for i := range previous.Ranking {
			item := &previous.Ranking[i]
			rankingsBeforeUpdate[item.BusNumber] = item
		}
	}

	updatedRankings := buildBusRanking(sales, month)
	updatePositions(updatedRankings, rankingsBeforeUpdate)

	if len(updatedRankings) == 0 {
		logger.Info("Nenhuma venda encontrada para o ranking de ônibus")
		return updatedRankings, nil
	}

	if err := s.rankingRepo.SaveOrUpdateBusRanking(ctx, updatedRankings); err != nil {
		logger.WithError(err).Error("Erro ao salvar ranking de ônibus atualizado")
		return updatedRankings, err
	}

	logger.WithField("buses", len(updatedRankings)).Info("Ranking de ônibus atualizado")

	return updatedRankings, nil
}

// buildBusRanking agrupa as vendas por ônibus na ordem em que aparecem. Vendas sem ônibus são ignoradas.
func buildBusRanking(sales []domain.SaleRecord, month string) []*domain.BusRankingItem {
	index := make(map[string]*domain.BusRankingItem)
	rankings := make([]*domain.BusRankingItem, 0)

	for _, sale := range sales {
		bus := strings.TrimSpace(sale.VehicleID)
		if bus == "" {
			continue
		}

		item, exists := index[bus]
		if !exists {
			item = &domain.BusRankingItem{BusNumber: bus, Month: month}
			index[bus] = item
			rankings = append(rankings, item)
		}

		item.Sales++
		item.Revenue += sale.Price.Amount()
	}

	for _, item := range rankings {
		item.Revenue = utils.RoundWithTwoDecimalPlace(item.Revenue)
	}

	return rankings
}

// updatePositions ordena por faturamento e compara com a posição anterior. PositionChange positivo
// significa que o ônibus subiu no ranking.
func updatePositions(
	updatedRankings []*domain.BusRankingItem,
	rankingsBeforeUpdate map[string]*domain.BusRankingItem,
) {
	sort.SliceStable(updatedRankings, func(i, j int) bool {
		return updatedRankings[i].Revenue > updatedRankings[j].Revenue
	})

	for i, ranking := range updatedRankings {
		ranking.Position = i + 1
		ranking.PositionChange = 0
		ranking.PreviousPosition = 0

		if rankingBefore, exists := rankingsBeforeUpdate[ranking.BusNumber]; exists {
			ranking.PositionChange = rankingBefore.Position - ranking.Position
			ranking.PreviousPosition = rankingBefore.Position
		}
	}
}

// TriggerManualSync dispara uma atualização em segundo plano
func (s *BusRankingService) TriggerManualSync() error {
	if !s.state.begin(s.now()) {
		logrus.Info("Atualização do ranking de ônibus já em andamento, ignorando solicitação manual")
		return ErrJobAlreadyRunning
	}

	logrus.Info("Iniciando atualização manual do ranking de ônibus")
	go func() {
		_, err := s.processBusRanking(s.baseCtx, s.now())
		if err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do ranking de ônibus")
		}
		s.state.finish(s.now(), err)
	}()

	return nil
}

func (s *BusRankingService) GetStatus() map[string]any {
	status := s.state.status()
	status["sync_enabled"] = s.config.SyncEnabled
	status["sync_cron"] = s.config.CronSchedule
	return status
}
