package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/transport-admin-api/internal/domain"
)

func TestApply(t *testing.T) {
	start := time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filters  []Filter
		expected int
	}{
		{
			name:     "Sem filtros retorna tudo",
			filters:  nil,
			expected: 6,
		},
		{
			name:     "Por ônibus",
			filters:  []Filter{ByVehicle("1")},
			expected: 2,
		},
		{
			name:     "Por mês ignora datas inválidas",
			filters:  []Filter{ByMonth("2024-01")},
			expected: 4,
		},
		{
			name:     "Por dia",
			filters:  []Filter{ByDate("2024-01-03")},
			expected: 2,
		},
		{
			name:     "Por intervalo de datas inclusivo",
			filters:  []Filter{ByDateRange(&start, &end)},
			expected: 2,
		},
		{
			name:     "Por intervalo aberto no início",
			filters:  []Filter{ByDateRange(nil, &end)},
			expected: 4,
		},
		{
			name:     "Por método de pagamento",
			filters:  []Filter{ByPaymentMethod(domain.PaymentMethodTransfer)},
			expected: 1,
		},
		{
			name:     "Busca por rota sem diferenciar maiúsculas",
			filters:  []Filter{BySearchTerm("ibar")},
			expected: 3,
		},
		{
			name:     "Busca por data",
			filters:  []Filter{BySearchTerm("2024-02")},
			expected: 1,
		},
		{
			name:     "Filtros combinados",
			filters:  []Filter{ByMonth("2024-01"), ByVehicle("3")},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Apply(seriesFixture(), tt.filters...), tt.expected)
		})
	}
}

func TestFromHistoryFilters(t *testing.T) {
	records := seriesFixture()

	filters := FromHistoryFilters(domain.HistoryFilters{
		Month:         "2024-01",
		PaymentMethod: domain.PaymentMethodCash,
		Search:        "ibarra",
	})

	assert.Len(t, filters, 3)

	result := Apply(records, filters...)
	assert.Len(t, result, 2)

	stats := ComputeStats(result)
	assert.Equal(t, domain.RouteCount{Name: "Ibarra", Count: 2}, stats.TopRoute)
	assert.Equal(t, 5.0, stats.TotalRevenue)
}

func TestFromHistoryFilters_Empty(t *testing.T) {
	assert.Empty(t, FromHistoryFilters(domain.HistoryFilters{}))
}

func TestNewestFirst(t *testing.T) {
	records := []domain.SaleRecord{
		{ID: "a", DepartureDate: "2024-05-01", DepartureTime: "08:00"},
		{ID: "b", DepartureDate: "2024-05-03", DepartureTime: "07:00"},
		{ID: "c", DepartureDate: "2024-05-03", DepartureTime: "18:00"},
		{ID: "d"},
	}

	sorted := NewestFirst(records)

	ids := make([]string, 0, len(sorted))
	for _, record := range sorted {
		ids = append(ids, record.ID)
	}
	assert.Equal(t, []string{"c", "b", "a", "d"}, ids)
	assert.Equal(t, "a", records[0].ID, "a entrada não deve ser alterada")
}
