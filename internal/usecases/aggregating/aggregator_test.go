package aggregating

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transport-admin-api/internal/domain"
)

func sale(route, date, hour, method, vehicle string, price any) domain.SaleRecord {
	return domain.SaleRecord{
		RouteName:     route,
		DepartureDate: date,
		DepartureTime: hour,
		PaymentMethod: method,
		VehicleID:     vehicle,
		Price:         domain.NewPrice(price),
	}
}

// occurrences conta quantos registros têm o rótulo escolhido como mais frequente
func occurrences(records []domain.SaleRecord, label string, field func(domain.SaleRecord) string) int {
	count := 0
	for _, record := range records {
		if field(record) == label {
			count++
		}
	}
	return count
}

func baseScenario() []domain.SaleRecord {
	return []domain.SaleRecord{
		sale("A", "2024-01-01", "08:00", "efectivo", "1", 10),
		sale("A", "2024-01-01", "09:00", "transferencia", "2", 20),
		sale("B", "2024-01-02", "08:00", "efectivo", "1", 5),
	}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.SaleRecord
		validate func(t *testing.T, stats domain.AggregateStats)
	}{
		{
			name:    "Cenário base com duas rotas e dois ônibus",
			records: baseScenario(),
			validate: func(t *testing.T, stats domain.AggregateStats) {
				assert.Equal(t, domain.RouteCount{Name: "A", Count: 2}, stats.TopRoute)
				assert.Equal(t, "2024-01-01", stats.BusiestDay)
				assert.Equal(t, "08:00", stats.BusiestHour)
				assert.Equal(t, domain.PaymentSplit{Cash: 2, Transfer: 1}, stats.PaymentSplit)
				assert.Equal(t, []domain.VehicleRevenue{
					{VehicleID: "2", Revenue: 20},
					{VehicleID: "1", Revenue: 15},
				}, stats.RevenuePerVehicle)
				assert.Equal(t, 35.0, stats.TotalRevenue)
				assert.Equal(t, 3, stats.TotalSales)
				assert.Equal(t, 1.5, stats.AverageDailySales)
			},
		},
		{
			name: "Número do ônibus com espaços é o mesmo ônibus",
			records: []domain.SaleRecord{
				sale("A", "2024-01-01", "08:00", "efectivo", " 12", 4),
				sale("A", "2024-01-01", "08:00", "efectivo", "12 ", 6),
				sale("A", "2024-01-01", "08:00", "efectivo", "7", 5),
			},
			validate: func(t *testing.T, stats domain.AggregateStats) {
				assert.Equal(t, []domain.VehicleRevenue{
					{VehicleID: "12", Revenue: 10},
					{VehicleID: "7", Revenue: 5},
				}, stats.RevenuePerVehicle)
			},
		},
		{
			name: "Preço em texto é convertido e texto inválido vale zero",
			records: []domain.SaleRecord{
				sale("A", "2024-01-01", "08:00", "efectivo", "1", "12.50"),
				sale("A", "2024-01-01", "08:00", "efectivo", "1", "abc"),
			},
			validate: func(t *testing.T, stats domain.AggregateStats) {
				assert.Equal(t, 2, stats.TotalSales)
				assert.Equal(t, 12.5, stats.TotalRevenue)
				assert.Equal(t, []domain.VehicleRevenue{{VehicleID: "1", Revenue: 12.5}}, stats.RevenuePerVehicle)
			},
		},
		{
			name:    "Entrada vazia retorna valor zero",
			records: []domain.SaleRecord{},
			validate: func(t *testing.T, stats domain.AggregateStats) {
				assert.Equal(t, domain.EmptyAggregateStats(), stats)
			},
		},
		{
			name:    "Entrada nil é tratada como vazia",
			records: nil,
			validate: func(t *testing.T, stats domain.AggregateStats) {
				assert.Equal(t, domain.NotAvailable, stats.TopRoute.Name)
				assert.Equal(t, 0, stats.TopRoute.Count)
				assert.Equal(t, domain.NotAvailable, stats.BusiestDay)
				assert.Equal(t, domain.NotAvailable, stats.BusiestHour)
				assert.Equal(t, 0, stats.TotalSales)
				assert.Equal(t, 0.0, stats.AverageDailySales)
				assert.NotNil(t, stats.RevenuePerVehicle)
				assert.Empty(t, stats.RevenuePerVehicle)
			},
		},
		{
			name: "Empate é decidido pela primeira chave encontrada",
			records: []domain.SaleRecord{
				sale("Tulcán", "2024-02-02", "10:00", "efectivo", "7", 1),
				sale("Ibarra", "2024-02-01", "07:00", "efectivo", "8", 1),
				sale("Ibarra", "2024-02-01", "07:00", "efectivo", "8", 1),
				sale("Tulcán", "2024-02-02", "10:00", "efectivo", "7", 1),
			},
			validate: func(t *testing.T, stats domain.AggregateStats) {
				assert.Equal(t, "Tulcán", stats.TopRoute.Name)
				assert.Equal(t, 2, stats.TopRoute.Count)
				assert.Equal(t, "2024-02-02", stats.BusiestDay)
				assert.Equal(t, "10:00", stats.BusiestHour)
				assert.Equal(t, "7", stats.RevenuePerVehicle[0].VehicleID)
				assert.Equal(t, "8", stats.RevenuePerVehicle[1].VehicleID)
			},
		},
		{
			name: "Campos ausentes saem apenas do agrupamento correspondente",
			records: []domain.SaleRecord{
				sale("", "", "", "", "", 10),
				sale("  ", "2024-03-01", "", "efectivo", "", 5),
				sale("C", "", "11:00", "transferencia", "3", 2),
			},
			validate: func(t *testing.T, stats domain.AggregateStats) {
				assert.Equal(t, 3, stats.TotalSales)
				assert.Equal(t, 17.0, stats.TotalRevenue)
				assert.Equal(t, domain.RouteCount{Name: "C", Count: 1}, stats.TopRoute)
				assert.Equal(t, "2024-03-01", stats.BusiestDay)
				assert.Equal(t, "11:00", stats.BusiestHour)
				assert.Equal(t, domain.PaymentSplit{Cash: 1, Transfer: 1}, stats.PaymentSplit)
				assert.Equal(t, []domain.VehicleRevenue{{VehicleID: "3", Revenue: 2}}, stats.RevenuePerVehicle)
				assert.Equal(t, 3.0, stats.AverageDailySales)
			},
		},
		{
			name: "Sem datas a média divide por um",
			records: []domain.SaleRecord{
				sale("A", "", "08:00", "efectivo", "1", 1),
				sale("A", "", "08:00", "efectivo", "1", 1),
			},
			validate: func(t *testing.T, stats domain.AggregateStats) {
				assert.Equal(t, domain.NotAvailable, stats.BusiestDay)
				assert.Equal(t, 2.0, stats.AverageDailySales)
			},
		},
		{
			name: "Método de pago aceita maiúsculas e sinônimos e ignora desconhecidos",
			records: []domain.SaleRecord{
				sale("A", "2024-01-01", "08:00", "EFECTIVO", "1", 1),
				sale("A", "2024-01-01", "08:00", "Transfer", "1", 1),
				sale("A", "2024-01-01", "08:00", "cash", "1", 1),
				sale("A", "2024-01-01", "08:00", "tarjeta", "1", 1),
			},
			validate: func(t *testing.T, stats domain.AggregateStats) {
				assert.Equal(t, domain.PaymentSplit{Cash: 2, Transfer: 1}, stats.PaymentSplit)
				assert.Equal(t, 4, stats.TotalSales)
			},
		},
		{
			name: "Receitas iguais mantêm a ordem de aparição",
			records: []domain.SaleRecord{
				sale("A", "2024-01-01", "08:00", "efectivo", "9", 10),
				sale("A", "2024-01-01", "08:00", "efectivo", "3", 10),
				sale("A", "2024-01-01", "08:00", "efectivo", "5", 30),
				sale("A", "2024-01-01", "08:00", "efectivo", "4", 10),
			},
			validate: func(t *testing.T, stats domain.AggregateStats) {
				ids := make([]string, 0, len(stats.RevenuePerVehicle))
				for _, item := range stats.RevenuePerVehicle {
					ids = append(ids, item.VehicleID)
				}
				assert.Equal(t, []string{"5", "9", "3", "4"}, ids)
			},
		},
		{
			name: "Valores não numéricos do documento valem zero",
			records: []domain.SaleRecord{
				sale("A", "2024-01-01", "08:00", "efectivo", "1", math.NaN()),
				sale("A", "2024-01-01", "08:00", "efectivo", "1", "NaN"),
				sale("A", "2024-01-01", "08:00", "efectivo", "1", true),
				sale("A", "2024-01-01", "08:00", "efectivo", "1", nil),
				sale("A", "2024-01-01", "08:00", "efectivo", "1", map[string]any{"valor": 3}),
				sale("A", "2024-01-01", "08:00", "efectivo", "1", " 7 "),
			},
			validate: func(t *testing.T, stats domain.AggregateStats) {
				assert.Equal(t, 6, stats.TotalSales)
				assert.Equal(t, 7.0, stats.TotalRevenue)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ComputeStats(tt.records))
		})
	}
}

func TestComputeStats_Properties(t *testing.T) {
	records := []domain.SaleRecord{
		sale("Ibarra", "2024-05-01", "06:00", "efectivo", "12", 3.5),
		sale("Tulcán", "2024-05-01", "07:30", "transferencia", "", "4"),
		sale("Ibarra", "2024-05-02", "06:00", "efectivo", "14", 2.25),
		sale("El Ángel", "2024-05-03", "13:15", "transferencia", "12", "x"),
		sale("Tulcán", "2024-05-03", "07:30", "efectivo", "15", 8),
		sale("Ibarra", "", "06:00", "efectivo", "14", 1),
	}

	t.Run("totalSales é o tamanho da entrada", func(t *testing.T) {
		assert.Equal(t, len(records), ComputeStats(records).TotalSales)
	})

	t.Run("totalRevenue é a soma dos preços convertidos", func(t *testing.T) {
		expected := 0.0
		for _, r := range records {
			expected += r.Price.Amount()
		}
		assert.Equal(t, expected, ComputeStats(records).TotalRevenue)
	})

	t.Run("Receita por ônibus soma apenas registros com ônibus", func(t *testing.T) {
		stats := ComputeStats(records)
		withVehicle := 0.0
		for _, r := range records {
			if r.VehicleID != "" {
				withVehicle += r.Price.Amount()
			}
		}
		sum := 0.0
		for _, v := range stats.RevenuePerVehicle {
			sum += v.Revenue
		}
		assert.InDelta(t, withVehicle, sum, 1e-9)
	})

	t.Run("Receita por ônibus é decrescente", func(t *testing.T) {
		stats := ComputeStats(records)
		for i := 1; i < len(stats.RevenuePerVehicle); i++ {
			assert.GreaterOrEqual(t, stats.RevenuePerVehicle[i-1].Revenue, stats.RevenuePerVehicle[i].Revenue)
		}
	})

	t.Run("Chamadas repetidas produzem o mesmo resultado", func(t *testing.T) {
		assert.Equal(t, ComputeStats(records), ComputeStats(records))
	})

	t.Run("Não altera a entrada", func(t *testing.T) {
		snapshot := make([]domain.SaleRecord, len(records))
		copy(snapshot, records)
		ComputeStats(records)
		assert.Equal(t, snapshot, records)
	})

	t.Run("Permutação preserva contagens", func(t *testing.T) {
		reversed := make([]domain.SaleRecord, 0, len(records))
		for i := len(records) - 1; i >= 0; i-- {
			reversed = append(reversed, records[i])
		}

		original := ComputeStats(records)
		permuted := ComputeStats(reversed)

		require.Equal(t, original.TotalSales, permuted.TotalSales)
		assert.InDelta(t, original.TotalRevenue, permuted.TotalRevenue, 1e-9)
		assert.Equal(t, original.PaymentSplit, permuted.PaymentSplit)
		assert.Equal(t, original.TopRoute.Count, permuted.TopRoute.Count)

		day := func(r domain.SaleRecord) string { return r.DepartureDate }
		hour := func(r domain.SaleRecord) string { return r.DepartureTime }
		assert.Equal(t, occurrences(records, original.BusiestDay, day), occurrences(reversed, permuted.BusiestDay, day))
		assert.Equal(t, occurrences(records, original.BusiestHour, hour), occurrences(reversed, permuted.BusiestHour, hour))
		assert.Equal(t, 2, occurrences(reversed, permuted.BusiestDay, day))
		assert.Equal(t, 3, occurrences(reversed, permuted.BusiestHour, hour))
		assert.Equal(t, original.AverageDailySales, permuted.AverageDailySales)
	})
}
