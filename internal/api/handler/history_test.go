package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetHistory(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		setup    func(insighter *mocks.MockInsighter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Filtros e paginação",
			target: "/v1/history?bus=12&month=2024-03&payment=Transferencia&search=tulcan&limit=1000&offset=20",
			setup: func(insighter *mocks.MockInsighter) {
				insighter.EXPECT().
					GetHistory(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filters domain.HistoryFilters, page domain.Pagination) (*domain.HistoryPage, error) {
						assert.Equal(t, "12", filters.VehicleID)
						assert.Equal(t, "2024-03", filters.Month)
						assert.Equal(t, domain.PaymentMethodTransfer, filters.PaymentMethod)
						assert.Equal(t, "tulcan", filters.Search)
						assert.Equal(t, 1000, page.Limit)
						assert.Equal(t, 20, page.Offset)
						return &domain.HistoryPage{Total: 1, Limit: page.Limit, Offset: page.Offset}, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, 1, decodeBody[domain.HistoryPage](t, rec).Total)
			},
		},
		{
			name:   "Paginação padrão",
			target: "/v1/history",
			setup: func(insighter *mocks.MockInsighter) {
				insighter.EXPECT().
					GetHistory(gomock.Any(), domain.HistoryFilters{}, domain.Pagination{}).
					Return(&domain.HistoryPage{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "Mês inválido",
			target: "/v1/history?month=03-2024",
			setup:  func(insighter *mocks.MockInsighter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
			},
		},
		{
			name:   "Período invertido",
			target: "/v1/history?start_date=2024-03-10&end_date=2024-03-01",
			setup:  func(insighter *mocks.MockInsighter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name:   "Pagamento desconhecido",
			target: "/v1/history?payment=cheque",
			setup:  func(insighter *mocks.MockInsighter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name:   "Limite negativo",
			target: "/v1/history?limit=-5",
			setup:  func(insighter *mocks.MockInsighter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name:   "Offset negativo",
			target: "/v1/history?offset=-1",
			setup:  func(insighter *mocks.MockInsighter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name:   "Erro ao carregar histórico",
			target: "/v1/history",
			setup: func(insighter *mocks.MockInsighter) {
				insighter.EXPECT().GetHistory(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, errorCode(t, rec))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insighter := mocks.NewMockInsighter(gomock.NewController(t))
			tt.setup(insighter)

			rec := serve(History(insighter), managerClaims, http.MethodGet, tt.target, "")
			tt.validate(t, rec)
		})
	}
}

func TestGetHistory_DriverHasNoAccess(t *testing.T) {
	insighter := mocks.NewMockInsighter(gomock.NewController(t))

	rec := serve(History(insighter), driverClaims, http.MethodGet, "/v1/history", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetHistoryCharts(t *testing.T) {
	t.Run("Limites informados", func(t *testing.T) {
		insighter := mocks.NewMockInsighter(gomock.NewController(t))
		insighter.EXPECT().
			GetHistoryCharts(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.HistoryFilters, opts domain.ChartOptions) (*domain.HistoryCharts, error) {
				assert.Equal(t, 5, opts.RouteLimit)
				assert.Equal(t, 14, opts.DayWindow)
				assert.Equal(t, domain.DefaultChartOptions().VehicleLimit, opts.VehicleLimit)
				return &domain.HistoryCharts{}, nil
			})

		rec := serve(History(insighter), adminClaims, http.MethodGet, "/v1/history/charts?routes=5&days=14", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Limite negativo", func(t *testing.T) {
		insighter := mocks.NewMockInsighter(gomock.NewController(t))

		rec := serve(History(insighter), adminClaims, http.MethodGet, "/v1/history/charts?vehicles=-2", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetHistoryStats(t *testing.T) {
	insighter := mocks.NewMockInsighter(gomock.NewController(t))
	insighter.EXPECT().
		GetHistoryStats(gomock.Any(), domain.HistoryFilters{Date: "2024-03-07"}).
		Return(domain.AggregateStats{TotalSales: 4, TotalRevenue: 10.5}, nil)

	rec := serve(History(insighter), adminClaims, http.MethodGet, "/v1/history/stats?date=2024-03-07", "")
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decodeBody[domain.AggregateStats](t, rec)
	assert.Equal(t, 4, stats.TotalSales)
	assert.Equal(t, 10.5, stats.TotalRevenue)
}

func TestGetDashboard(t *testing.T) {
	insighter := mocks.NewMockInsighter(gomock.NewController(t))
	insighter.EXPECT().GetDashboardStats(gomock.Any()).Return(&domain.DashboardStats{TotalUsers: 7, ActiveBuses: 3}, nil)

	rec := serve(History(insighter), managerClaims, http.MethodGet, "/v1/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, decodeBody[domain.DashboardStats](t, rec).TotalUsers)
}

func TestGetDailySnapshots(t *testing.T) {
	t.Run("Período informado", func(t *testing.T) {
		insighter := mocks.NewMockInsighter(gomock.NewController(t))
		insighter.EXPECT().
			GetDailySnapshots(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, start, end time.Time) ([]*domain.DailySalesSnapshot, error) {
				assert.Equal(t, "2024-03-01", start.Format(time.DateOnly))
				assert.Equal(t, "2024-03-07", end.Format(time.DateOnly))
				return nil, nil
			})

		rec := serve(History(insighter), adminClaims, http.MethodGet, "/v1/snapshots?start_date=2024-03-01&end_date=2024-03-07", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Últimos 30 dias por padrão", func(t *testing.T) {
		insighter := mocks.NewMockInsighter(gomock.NewController(t))
		insighter.EXPECT().
			GetDailySnapshots(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, start, end time.Time) ([]*domain.DailySalesSnapshot, error) {
				assert.Equal(t, defaultSnapshots-1, int(end.Sub(start).Hours()/24))
				return nil, nil
			})

		rec := serve(History(insighter), adminClaims, http.MethodGet, "/v1/snapshots", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
