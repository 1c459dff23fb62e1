package reporting

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transport-admin-api/infrastructure/repository"
	"github.com/vfg2006/transport-admin-api/infrastructure/repository/mocks"
	"github.com/vfg2006/transport-admin-api/internal/config"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type historyFunc func(ctx context.Context) ([]domain.SaleRecord, error)

func (f historyFunc) LoadHistory(ctx context.Context) ([]domain.SaleRecord, error) {
	return f(ctx)
}

var generatedAt = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func sale(route, date, hour, method, bus string, price any) domain.SaleRecord {
	return domain.SaleRecord{
		RouteName:     route,
		DepartureDate: date,
		DepartureTime: hour,
		PaymentMethod: method,
		VehicleID:     bus,
		Price:         domain.NewPrice(price),
	}
}

func fixture() []domain.SaleRecord {
	return []domain.SaleRecord{
		sale("Ibarra", "2024-05-01", "08:00", "efectivo", "12", 2.5),
		sale("Ibarra", "2024-05-02", "08:00", "transferencia", "12", "3.00"),
		sale("Tulcán", "2024-05-02", "10:00", "efectivo", "7", 4),
		sale("Quito", "2024-04-20", "06:00", "efectivo", "7", 10),
	}
}

func newTestService(t *testing.T, records []domain.SaleRecord) (*Service, *mocks.MockBusRepository, *mocks.MockDriverRepository) {
	ctrl := gomock.NewController(t)
	busRepo := mocks.NewMockBusRepository(ctrl)
	driverRepo := mocks.NewMockDriverRepository(ctrl)

	history := historyFunc(func(context.Context) ([]domain.SaleRecord, error) {
		return records, nil
	})

	service := NewService(&config.Config{Company: config.Company{Name: "Trans Doramald"}}, history, busRepo, driverRepo)
	service.now = func() time.Time { return generatedAt }

	return service, busRepo, driverRepo
}

func stringPtr(s string) *string { return &s }

func TestService_BuildGeneralReport(t *testing.T) {
	tests := []struct {
		name     string
		filters  domain.HistoryFilters
		validate func(t *testing.T, report *domain.GeneralReport)
	}{
		{
			name:    "Sem filtros usa todo o histórico",
			filters: domain.HistoryFilters{},
			validate: func(t *testing.T, report *domain.GeneralReport) {
				assert.Equal(t, "Todos los registros", report.FilterDescription)
				assert.Equal(t, 4, report.Stats.TotalSales)
				assert.Equal(t, 19.5, report.RevenueTotal)
				assert.Equal(t, []domain.MonthlySales{
					{Month: "2024-04", Sales: 1, Revenue: 10},
					{Month: "2024-05", Sales: 3, Revenue: 9.5},
				}, report.SalesPerMonth)
				assert.Equal(t, domain.RouteCount{Name: "Ibarra", Count: 2}, report.TopRoutes[0])
				assert.Equal(t, "7", report.RevenuePerVehicle[0].VehicleID)
			},
		},
		{
			name:    "Filtro por mês",
			filters: domain.HistoryFilters{Month: "2024-05"},
			validate: func(t *testing.T, report *domain.GeneralReport) {
				assert.Equal(t, "Mes 2024-05", report.FilterDescription)
				assert.Equal(t, 3, report.Stats.TotalSales)
				assert.Equal(t, 9.5, report.RevenueTotal)
				assert.Len(t, report.SalesPerMonth, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestService(t, fixture())
			report, err := service.BuildGeneralReport(context.Background(), tt.filters)
			require.NoError(t, err)
			assert.Equal(t, "Trans Doramald", report.CompanyName)
			assert.Equal(t, generatedAt, report.GeneratedAt)
			tt.validate(t, report)
		})
	}
}

func TestService_BuildGeneralReport_LoadError(t *testing.T) {
	history := historyFunc(func(context.Context) ([]domain.SaleRecord, error) {
		return nil, errors.New("falha")
	})
	service := NewService(&config.Config{}, history, nil, nil)

	_, err := service.BuildGeneralReport(context.Background(), domain.HistoryFilters{})
	assert.Error(t, err)
}

func TestService_BuildBusReport(t *testing.T) {
	tests := []struct {
		name      string
		busNumber string
		records   []domain.SaleRecord
		setup     func(busRepo *mocks.MockBusRepository, driverRepo *mocks.MockDriverRepository)
		validate  func(t *testing.T, report *domain.BusReport, err error)
	}{
		{
			name:      "Placa vem do motorista atribuído",
			busNumber: " 12 ",
			records:   fixture(),
			setup: func(busRepo *mocks.MockBusRepository, driverRepo *mocks.MockDriverRepository) {
				busRepo.EXPECT().GetBusByNumber(gomock.Any(), "12").Return(&domain.Bus{Number: "12", Driver: stringPtr("Luis Pérez")}, nil)
				driverRepo.EXPECT().ListDrivers(gomock.Any()).Return([]*domain.Driver{
					{Name: "Ana", Plate: "AAA-111"},
					{Name: "luis pérez", Plate: "PBC-123"},
				}, nil)
			},
			validate: func(t *testing.T, report *domain.BusReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, "PBC-123", report.Plate)
				assert.Equal(t, "Luis Pérez", report.Driver)
				assert.Equal(t, 2, report.TotalSales)
				assert.Equal(t, 5.5, report.TotalRevenue)
				require.Len(t, report.Rows, 2)
				assert.Equal(t, "2024-05-02", report.Rows[0].DepartureDate)
				assert.Empty(t, report.Note)
			},
		},
		{
			name:      "Ônibus sem motorista",
			busNumber: "7",
			records:   fixture(),
			setup: func(busRepo *mocks.MockBusRepository, driverRepo *mocks.MockDriverRepository) {
				busRepo.EXPECT().GetBusByNumber(gomock.Any(), "7").Return(&domain.Bus{Number: "7"}, nil)
				driverRepo.EXPECT().ListDrivers(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.BusReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.NotAvailable, report.Plate)
				assert.Equal(t, domain.NotAvailable, report.Driver)
			},
		},
		{
			name:      "Trunca o histórico em 50 linhas",
			busNumber: "12",
			records: func() []domain.SaleRecord {
				records := make([]domain.SaleRecord, 0, 60)
				for i := range 60 {
					records = append(records, sale("Ibarra", fmt.Sprintf("2024-05-%02d", i%28+1), "08:00", "efectivo", "12", 1))
				}
				return records
			}(),
			setup: func(busRepo *mocks.MockBusRepository, driverRepo *mocks.MockDriverRepository) {
				busRepo.EXPECT().GetBusByNumber(gomock.Any(), "12").Return(&domain.Bus{Number: "12"}, nil)
				driverRepo.EXPECT().ListDrivers(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.BusReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, 60, report.TotalSales)
				assert.Len(t, report.Rows, domain.BusReportRowLimit)
				assert.Equal(t, "Mostrando 50 de 60 registros totales", report.Note)
			},
		},
		{
			name:      "Ônibus inexistente",
			busNumber: "99",
			records:   fixture(),
			setup: func(busRepo *mocks.MockBusRepository, driverRepo *mocks.MockDriverRepository) {
				busRepo.EXPECT().GetBusByNumber(gomock.Any(), "99").Return(nil, repository.ErrNotFound)
			},
			validate: func(t *testing.T, report *domain.BusReport, err error) {
				assert.ErrorIs(t, err, ErrBusNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, busRepo, driverRepo := newTestService(t, tt.records)
			tt.setup(busRepo, driverRepo)

			report, err := service.BuildBusReport(context.Background(), tt.busNumber)
			tt.validate(t, report, err)
		})
	}
}

func TestService_BuildMonthlyReport(t *testing.T) {
	service, _, _ := newTestService(t, fixture())

	report, err := service.BuildMonthlyReport(context.Background(), "2024-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-05", report.Month)
	assert.Equal(t, 3, report.Stats.TotalSales)
	assert.Equal(t, []domain.DailySales{
		{Date: "2024-05-01", Sales: 1, Revenue: 2.5},
		{Date: "2024-05-02", Sales: 2, Revenue: 7},
	}, report.SalesPerDay)

	_, err = service.BuildMonthlyReport(context.Background(), "05-2024x")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestDescribeFilters(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Bus 12 | Periodo 2024-05-01 a ... | Pago efectivo", DescribeFilters(domain.HistoryFilters{
		VehicleID:     "12",
		StartDate:     &start,
		PaymentMethod: domain.PaymentMethodCash,
	}))
}

func TestWriteXLSX(t *testing.T) {
	service, busRepo, driverRepo := newTestService(t, fixture())
	ctx := context.Background()

	general, err := service.BuildGeneralReport(ctx, domain.HistoryFilters{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteGeneralXLSX(&buf, general))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{"Resumen", "Ventas por Mes", "Rutas", "Ventas por Hora", "Ganancia por Bus"}, file.GetSheetList())

	rows, err := file.GetRows("Ganancia por Bus")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bus", "Ganancia Total"}, rows[0])
	assert.Equal(t, []string{"Total", "19.5"}, rows[len(rows)-1])

	busRepo.EXPECT().GetBusByNumber(gomock.Any(), "12").Return(&domain.Bus{Number: "12"}, nil)
	driverRepo.EXPECT().ListDrivers(gomock.Any()).Return(nil, nil)
	busReport, err := service.BuildBusReport(ctx, "12")
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, WriteBusXLSX(&buf, busReport))
	busFile, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer busFile.Close()

	history, err := busFile.GetRows("Historial")
	require.NoError(t, err)
	assert.Len(t, history, 3)
	assert.Equal(t, []string{"2024-05-02", "08:00", "Ibarra", "transferencia", "3"}, history[1])

	monthly, err := service.BuildMonthlyReport(ctx, "2024-05")
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, WriteMonthlyXLSX(&buf, monthly))
	monthlyFile, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer monthlyFile.Close()
	assert.Contains(t, monthlyFile.GetSheetList(), "Ventas por Día")
}
