package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/transport-admin-api/internal/domain"
)

func seriesFixture() []domain.SaleRecord {
	return []domain.SaleRecord{
		sale("Ibarra", "2024-01-03", "14:00", "efectivo", "1", 4),
		sale("Tulcán", "2024-01-01", "08:00", "transferencia", "2", 6),
		sale("Ibarra", "2024-02-10", "08:00", "efectivo", "1", "2.5"),
		sale("Quito", "2024-01-01", "06:30", "efectivo", "3", 10),
		sale("Tulcán", "fecha inválida", "", "efectivo", "2", 1),
		sale("Ibarra", "2024-01-03", "14:00", "efectivo", "3", 1),
	}
}

func TestTopRoutes(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected []domain.RouteCount
	}{
		{
			name:  "Sem limite retorna todas as rotas ordenadas",
			limit: 0,
			expected: []domain.RouteCount{
				{Name: "Ibarra", Count: 3},
				{Name: "Tulcán", Count: 2},
				{Name: "Quito", Count: 1},
			},
		},
		{
			name:  "Com limite corta a lista",
			limit: 2,
			expected: []domain.RouteCount{
				{Name: "Ibarra", Count: 3},
				{Name: "Tulcán", Count: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TopRoutes(seriesFixture(), tt.limit))
		})
	}
}

func TestSalesPerDay(t *testing.T) {
	result := SalesPerDay(seriesFixture(), 0)

	assert.Equal(t, []domain.DailySales{
		{Date: "2024-01-01", Sales: 2, Revenue: 16},
		{Date: "2024-01-03", Sales: 2, Revenue: 5},
		{Date: "2024-02-10", Sales: 1, Revenue: 2.5},
		{Date: "fecha inválida", Sales: 1, Revenue: 1},
	}, result)

	lastTwo := SalesPerDay(seriesFixture(), 2)
	assert.Len(t, lastTwo, 2)
	assert.Equal(t, "2024-02-10", lastTwo[0].Date)
}

func TestSalesPerHour(t *testing.T) {
	assert.Equal(t, []domain.HourlySales{
		{Hour: "06:30", Sales: 1},
		{Hour: "08:00", Sales: 2},
		{Hour: "14:00", Sales: 2},
	}, SalesPerHour(seriesFixture()))
}

func TestSalesPerMonth(t *testing.T) {
	assert.Equal(t, []domain.MonthlySales{
		{Month: "2024-01", Sales: 4, Revenue: 21},
		{Month: "2024-02", Sales: 1, Revenue: 2.5},
	}, SalesPerMonth(seriesFixture()))
}

func TestBuildCharts(t *testing.T) {
	charts := BuildCharts(seriesFixture(), domain.ChartOptions{RouteLimit: 1, DayWindow: 1, VehicleLimit: 2})

	assert.Equal(t, []domain.RouteCount{{Name: "Ibarra", Count: 3}}, charts.TopRoutes)
	assert.Len(t, charts.SalesPerDay, 1)
	assert.Len(t, charts.SalesPerHour, 3)
	assert.Len(t, charts.SalesPerMonth, 2)
	assert.Equal(t, domain.PaymentSplit{Cash: 5, Transfer: 1}, charts.PaymentSplit)
	assert.Equal(t, []domain.VehicleRevenue{
		{VehicleID: "3", Revenue: 11},
		{VehicleID: "2", Revenue: 7},
	}, charts.TopVehicles)
}

func TestBuildCharts_EmptyInput(t *testing.T) {
	charts := BuildCharts(nil, domain.DefaultChartOptions())

	assert.Empty(t, charts.TopRoutes)
	assert.Empty(t, charts.SalesPerDay)
	assert.Empty(t, charts.SalesPerHour)
	assert.Empty(t, charts.SalesPerMonth)
	assert.Empty(t, charts.TopVehicles)
}
