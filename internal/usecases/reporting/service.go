// Package reporting monta os relatórios gerais, por ônibus e mensais a partir do histórico de vendas
package reporting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/infrastructure/repository"
	"github.com/vfg2006/transport-admin-api/internal/config"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/internal/usecases/aggregating"
	"github.com/vfg2006/transport-admin-api/internal/usecases/insighting"
	"github.com/vfg2006/transport-admin-api/pkg/utils"
)

const generalTopRoutes = 8

type Reporter interface {
	BuildGeneralReport(ctx context.Context, filters domain.HistoryFilters) (*domain.GeneralReport, error)
	BuildBusReport(ctx context.Context, busNumber string) (*domain.BusReport, error)
	BuildMonthlyReport(ctx context.Context, month string) (*domain.MonthlyReport, error)
}

type Service struct {
	history          insighting.HistoryLoader
	busRepository    repository.BusRepository
	driverRepository repository.DriverRepository
	companyName      string
	now              func() time.Time
}

func NewService(
	cfg *config.Config,
	history insighting.HistoryLoader,
	busRepository repository.BusRepository,
	driverRepository repository.DriverRepository,
) *Service {
	return &Service{
		history:          history,
		busRepository:    busRepository,
		driverRepository: driverRepository,
		companyName:      cfg.Company.Name,
		now:              time.Now,
	}
}

func (s *Service) BuildGeneralReport(ctx context.Context, filters domain.HistoryFilters) (*domain.GeneralReport, error) {
	records, err := s.history.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	records = aggregating.Apply(records, aggregating.FromHistoryFilters(filters)...)

	stats := aggregating.ComputeStats(records)

	var total float64
	for _, vehicle := range stats.RevenuePerVehicle {
		total += vehicle.Revenue
	}

	return &domain.GeneralReport{
		CompanyName:       s.companyName,
		GeneratedAt:       s.now(),
		FilterDescription: DescribeFilters(filters),
		Stats:             stats,
		SalesPerMonth:     aggregating.SalesPerMonth(records),
		TopRoutes:         aggregating.TopRoutes(records, generalTopRoutes),
		SalesPerHour:      aggregating.SalesPerHour(records),
		RevenuePerVehicle: stats.RevenuePerVehicle,
		RevenueTotal:      utils.RoundWithTwoDecimalPlace(total),
	}, nil
}

func (s *Service) BuildBusReport(ctx context.Context, busNumber string) (*domain.BusReport, error) {
	busNumber = strings.TrimSpace(busNumber)

	bus, err := s.busRepository.GetBusByNumber(ctx, busNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBusNotFound, busNumber)
		}
		logrus.WithError(err).WithField("bus_number", busNumber).Error("Erro ao buscar ônibus para relatório")
		return nil, ErrDatabaseOperation
	}

	drivers, err := s.driverRepository.ListDrivers(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar motoristas para relatório")
		return nil, ErrDatabaseOperation
	}

	records, err := s.history.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	records = aggregating.NewestFirst(aggregating.Apply(records, aggregating.ByVehicle(bus.Number)))

	report := &domain.BusReport{
		CompanyName: s.companyName,
		GeneratedAt: s.now(),
		BusNumber:   bus.Number,
		Plate:       domain.NotAvailable,
		Driver:      domain.NotAvailable,
		TotalSales:  len(records),
	}

	if bus.Driver != nil && strings.TrimSpace(*bus.Driver) != "" {
		report.Driver = strings.TrimSpace(*bus.Driver)
		if driver := domain.FindDriverByName(drivers, report.Driver); driver != nil && driver.Plate != "" {
			report.Plate = driver.Plate
		}
	}

	var revenue float64
	for _, record := range records {
		revenue += record.Price.Amount()
	}
	report.TotalRevenue = utils.RoundWithTwoDecimalPlace(revenue)

	report.Rows = records
	if len(records) > domain.BusReportRowLimit {
		report.Rows = records[:domain.BusReportRowLimit]
		report.Note = fmt.Sprintf("Mostrando %d de %d registros totales", domain.BusReportRowLimit, len(records))
	}

	return report, nil
}

// BuildMonthlyReport recebe o mês no formato YYYY-MM
func (s *Service) BuildMonthlyReport(ctx context.Context, month string) (*domain.MonthlyReport, error) {
	month = strings.TrimSpace(month)
	if _, err := utils.ParseMonth(month); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMonth, month)
	}

	records, err := s.history.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	records = aggregating.Apply(records, aggregating.ByMonth(month))

	stats := aggregating.ComputeStats(records)

	return &domain.MonthlyReport{
		CompanyName:       s.companyName,
		GeneratedAt:       s.now(),
		Month:             month,
		Stats:             stats,
		SalesPerDay:       aggregating.SalesPerDay(records, 0),
		TopRoutes:         aggregating.TopRoutes(records, generalTopRoutes),
		RevenuePerVehicle: stats.RevenuePerVehicle,
	}, nil
}

// DescribeFilters gera o texto do filtro impresso no cabeçalho do relatório
func DescribeFilters(filters domain.HistoryFilters) string {
	if filters.IsEmpty() {
		return "Todos los registros"
	}

	parts := make([]string, 0, 6)
	if filters.VehicleID != "" {
		parts = append(parts, "Bus "+filters.VehicleID)
	}
	if filters.Month != "" {
		parts = append(parts, "Mes "+filters.Month)
	}
	if filters.Date != "" {
		parts = append(parts, "Fecha "+filters.Date)
	}
	if filters.StartDate != nil || filters.EndDate != nil {
		parts = append(parts, "Periodo "+formatDate(filters.StartDate)+" a "+formatDate(filters.EndDate))
	}
	if filters.PaymentMethod != "" {
		parts = append(parts, "Pago "+string(filters.PaymentMethod))
	}
	if filters.Search != "" {
		parts = append(parts, fmt.Sprintf("Búsqueda %q", filters.Search))
	}

	return strings.Join(parts, " | ")
}

func formatDate(date *time.Time) string {
	if date == nil {
		return "..."
	}
	return date.Format(time.DateOnly)
}
