// Package aggregating calcula as estatísticas do histórico de vendas. Todas as funções são
// puras: não fazem I/O, não guardam estado e podem ser chamadas concorrentemente.
package aggregating

import (
	"sort"
	"strings"

	"github.com/vfg2006/transport-admin-api/internal/domain"
)

// tally conta ocorrências preservando a ordem em que cada chave apareceu pela primeira vez
type tally struct {
	order  []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(key string) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// top retorna a chave mais frequente; em caso de empate vence a que apareceu primeiro
func (t *tally) top() (string, int) {
	bestKey, bestCount := domain.NotAvailable, 0
	for _, key := range t.order {
		if count := t.counts[key]; count > bestCount {
			bestKey, bestCount = key, count
		}
	}
	return bestKey, bestCount
}

func (t *tally) len() int {
	return len(t.order)
}

// revenueTally soma valores por chave preservando a ordem de aparição
type revenueTally struct {
	order []string
	sums  map[string]float64
}

func newRevenueTally() *revenueTally {
	return &revenueTally{sums: make(map[string]float64)}
}

// add agrupa pelo número do ônibus sem espaços, como os filtros e o ranking
func (t *revenueTally) add(key string, amount float64) {
	key = strings.TrimSpace(key)
	if _, seen := t.sums[key]; !seen {
		t.order = append(t.order, key)
	}
	t.sums[key] += amount
}

// sortedDesc ordena por receita decrescente; empates mantêm a ordem de aparição
func (t *revenueTally) sortedDesc() []domain.VehicleRevenue {
	result := make([]domain.VehicleRevenue, 0, len(t.order))
	for _, key := range t.order {
		result = append(result, domain.VehicleRevenue{VehicleID: key, Revenue: t.sums[key]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue > result[j].Revenue
	})

	return result
}

func present(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ComputeStats calcula as estatísticas agregadas de qualquer sequência de registros, inclusive
// vazia ou nil. Registros sem rota, data ou hora ficam fora apenas do agrupamento correspondente
// e continuam contando nos totais.
func ComputeStats(records []domain.SaleRecord) domain.AggregateStats {
	stats := domain.EmptyAggregateStats()
	if len(records) == 0 {
		return stats
	}

	routes := newTally()
	days := newTally()
	hours := newTally()
	vehicles := newRevenueTally()

	for _, record := range records {
		amount := record.Price.Amount()

		stats.TotalSales++
		stats.TotalRevenue += amount

		if present(record.RouteName) {
			routes.add(record.RouteName)
		}
		if present(record.DepartureDate) {
			days.add(record.DepartureDate)
		}
		if present(record.DepartureTime) {
			hours.add(record.DepartureTime)
		}

		switch domain.NormalizePaymentMethod(record.PaymentMethod) {
		case domain.PaymentMethodCash:
			stats.PaymentSplit.Cash++
		case domain.PaymentMethodTransfer:
			stats.PaymentSplit.Transfer++
		}

		if present(record.VehicleID) {
			vehicles.add(record.VehicleID, amount)
		}
	}

	stats.TopRoute.Name, stats.TopRoute.Count = routes.top()
	stats.BusiestDay, _ = days.top()
	stats.BusiestHour, _ = hours.top()
	stats.RevenuePerVehicle = vehicles.sortedDesc()

	distinctDays := days.len()
	if distinctDays < 1 {
		distinctDays = 1
	}
	stats.AverageDailySales = float64(stats.TotalSales) / float64(distinctDays)

	return stats
}
