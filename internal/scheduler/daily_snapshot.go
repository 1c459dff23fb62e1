package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/infrastructure/repository"
	"github.com/vfg2006/transport-admin-api/internal/config"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/internal/usecases/aggregating"
	"github.com/vfg2006/transport-admin-api/pkg/utils"
)

type DailySnapshotConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// DailySnapshotService grava as estatísticas consolidadas de cada dia recente
type DailySnapshotService struct {
	scheduler    *gocron.Scheduler
	historyRepo  repository.HistoryRepository
	snapshotRepo repository.DailySnapshotRepository
	config       DailySnapshotConfig
	state        jobState
	baseCtx      context.Context
	now          func() time.Time
}

func NewDailySnapshotService(
	historyRepo repository.HistoryRepository,
	snapshotRepo repository.DailySnapshotRepository,
	cfg *config.Config,
) *DailySnapshotService {
	snapshotConfig := DailySnapshotConfig{
		CronSchedule: cfg.DailySnapshot.CronSchedule,
		LookbackDays: max(cfg.DailySnapshot.LookbackDays, 1),
		SyncEnabled:  cfg.DailySnapshot.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"lookback_days": snapshotConfig.LookbackDays,
		"sync_enabled":  snapshotConfig.SyncEnabled,
	}).Info("Configuração do agendador de fechamento diário carregada")

	return &DailySnapshotService{
		scheduler:    gocron.NewScheduler(time.Local),
		historyRepo:  historyRepo,
		snapshotRepo: snapshotRepo,
		config:       snapshotConfig,
		baseCtx:      context.Background(),
		now:          time.Now,
	}
}

func (s *DailySnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Fechamento diário desabilitado por configuração")
		return nil
	}

	s.baseCtx = ctx
	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de fechamento diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncSnapshots(ctx); err != nil {
			logrus.WithError(err).Error("Erro no fechamento diário")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de fechamento diário")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DailySnapshotService) SyncSnapshots(ctx context.Context) error {
	if !s.state.begin(s.now()) {
		logrus.Warn("Fechamento diário já está em execução")
		return nil
	}

	_, err := s.processSnapshots(ctx, s.now())
	s.state.finish(s.now(), err)

	return err
}

// processSnapshots recalcula os últimos LookbackDays dias, terminando ontem. Dias sem vendas
// também são gravados para que a série não tenha buracos.
func (s *DailySnapshotService) processSnapshots(ctx context.Context, processingDate time.Time) ([]*domain.DailySalesSnapshot, error) {
	end := utils.TruncateDay(processingDate.AddDate(0, 0, -1))
	start := end.AddDate(0, 0, -(s.config.LookbackDays - 1))

	logger := logrus.WithFields(logrus.Fields{
		"start_date": start.Format(time.DateOnly),
		"end_date":   end.Format(time.DateOnly),
	})

	records, err := s.historyRepo.ListSalesBetween(ctx, start, end)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar vendas para o fechamento diário")
		return nil, err
	}

	snapshots := make([]*domain.DailySalesSnapshot, 0, s.config.LookbackDays)
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		dayRecords := aggregating.Apply(records, aggregating.ByDate(date.Format(time.DateOnly)))
		snapshots = append(snapshots, &domain.DailySalesSnapshot{
			Date:  date,
			Stats: aggregating.ComputeStats(dayRecords),
		})
	}

	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshots); err != nil {
		logger.WithError(err).Error("Erro ao salvar fechamento diário")
		return snapshots, err
	}

	logger.WithFields(logrus.Fields{
		"days":    len(snapshots),
		"records": len(records),
	}).Info("Fechamento diário concluído")

	return snapshots, nil
}

func (s *DailySnapshotService) TriggerManualSync() error {
	if !s.state.begin(s.now()) {
		logrus.Info("Fechamento diário já em andamento, ignorando solicitação manual")
		return ErrJobAlreadyRunning
	}

	logrus.Info("Iniciando fechamento diário manual")
	go func() {
		_, err := s.processSnapshots(s.baseCtx, s.now())
		if err != nil {
			logrus.WithError(err).Error("Erro no fechamento diário manual")
		}
		s.state.finish(s.now(), err)
	}()

	return nil
}

func (s *DailySnapshotService) GetStatus() map[string]any {
	status := s.state.status()
	status["sync_enabled"] = s.config.SyncEnabled
	status["sync_cron"] = s.config.CronSchedule
	status["lookback_days"] = s.config.LookbackDays
	return status
}
