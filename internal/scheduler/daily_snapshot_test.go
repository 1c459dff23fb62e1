package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transport-admin-api/infrastructure/repository/mocks"
	"github.com/vfg2006/transport-admin-api/internal/config"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newDailySnapshotService(t *testing.T, lookback int) (*DailySnapshotService, *mocks.MockHistoryRepository, *mocks.MockDailySnapshotRepository) {
	ctrl := gomock.NewController(t)
	historyRepo := mocks.NewMockHistoryRepository(ctrl)
	snapshotRepo := mocks.NewMockDailySnapshotRepository(ctrl)

	service := NewDailySnapshotService(historyRepo, snapshotRepo, &config.Config{
		DailySnapshot: config.DailySnapshot{CronSchedule: "0 2 * * *", LookbackDays: lookback},
	})
	return service, historyRepo, snapshotRepo
}

func TestDailySnapshotService_processSnapshots(t *testing.T) {
	processingDate := time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lookback int
		setup    func(historyRepo *mocks.MockHistoryRepository, snapshotRepo *mocks.MockDailySnapshotRepository)
		validate func(t *testing.T, snapshots []*domain.DailySalesSnapshot, err error)
	}{
		{
			name:     "Um fechamento por dia, inclusive dias sem vendas",
			lookback: 3,
			setup: func(historyRepo *mocks.MockHistoryRepository, snapshotRepo *mocks.MockDailySnapshotRepository) {
				historyRepo.EXPECT().
					ListSalesBetween(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, start, end time.Time) ([]domain.SaleRecord, error) {
						assert.Equal(t, "2024-03-07", start.Format(time.DateOnly))
						assert.Equal(t, "2024-03-09", end.Format(time.DateOnly))
						return []domain.SaleRecord{
							sale("12", "2024-03-07", 2),
							sale("7", "2024-03-07", 3),
							sale("12", "2024-03-09", 4),
						}, nil
					})
				snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Len(3)).Return(nil)
			},
			validate: func(t *testing.T, snapshots []*domain.DailySalesSnapshot, err error) {
				require.NoError(t, err)
				require.Len(t, snapshots, 3)

				assert.Equal(t, "2024-03-07", snapshots[0].Date.Format(time.DateOnly))
				assert.Equal(t, 2, snapshots[0].Stats.TotalSales)
				assert.Equal(t, 5.0, snapshots[0].Stats.TotalRevenue)

				assert.Equal(t, "2024-03-08", snapshots[1].Date.Format(time.DateOnly))
				assert.Equal(t, 0, snapshots[1].Stats.TotalSales)

				assert.Equal(t, 1, snapshots[2].Stats.TotalSales)
				assert.Equal(t, 4.0, snapshots[2].Stats.TotalRevenue)
			},
		},
		{
			name:     "Lookback inválido vira um dia",
			lookback: 0,
			setup: func(historyRepo *mocks.MockHistoryRepository, snapshotRepo *mocks.MockDailySnapshotRepository) {
				historyRepo.EXPECT().ListSalesBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Len(1)).Return(nil)
			},
			validate: func(t *testing.T, snapshots []*domain.DailySalesSnapshot, err error) {
				require.NoError(t, err)
				assert.Equal(t, "2024-03-09", snapshots[0].Date.Format(time.DateOnly))
			},
		},
		{
			name:     "Erro ao buscar histórico",
			lookback: 7,
			setup: func(historyRepo *mocks.MockHistoryRepository, snapshotRepo *mocks.MockDailySnapshotRepository) {
				historyRepo.EXPECT().ListSalesBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, snapshots []*domain.DailySalesSnapshot, err error) {
				assert.ErrorIs(t, err, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, historyRepo, snapshotRepo := newDailySnapshotService(t, tt.lookback)
			tt.setup(historyRepo, snapshotRepo)

			snapshots, err := service.processSnapshots(context.Background(), processingDate)
			tt.validate(t, snapshots, err)
		})
	}
}

func TestDailySnapshotService_SyncSnapshots(t *testing.T) {
	service, historyRepo, snapshotRepo := newDailySnapshotService(t, 1)
	historyRepo.EXPECT().ListSalesBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(assert.AnError)

	err := service.SyncSnapshots(context.Background())
	assert.ErrorIs(t, err, assert.AnError)

	status := service.GetStatus()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, assert.AnError.Error(), status["last_error"])
	assert.Equal(t, 1, status["lookback_days"])
}

func TestDailySnapshotService_SkipsWhenRunning(t *testing.T) {
	service, _, _ := newDailySnapshotService(t, 1)
	require.True(t, service.state.begin(time.Now()))

	assert.NoError(t, service.SyncSnapshots(context.Background()))
	assert.ErrorIs(t, service.TriggerManualSync(), ErrJobAlreadyRunning)
}
