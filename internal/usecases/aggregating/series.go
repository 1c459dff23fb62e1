package aggregating

import (
	"sort"

	"github.com/vfg2006/transport-admin-api/internal/domain"
)

// TopRoutes retorna as rotas mais vendidas. limit <= 0 devolve todas.
func TopRoutes(records []domain.SaleRecord, limit int) []domain.RouteCount {
	routes := newTally()
	for _, record := range records {
		if present(record.RouteName) {
			routes.add(record.RouteName)
		}
	}

	result := make([]domain.RouteCount, 0, routes.len())
	for _, name := range routes.order {
		result = append(result, domain.RouteCount{Name: name, Count: routes.counts[name]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	return truncate(result, limit)
}

// SalesPerDay agrupa vendas e receita por data, em ordem crescente, mantendo apenas os
// últimos lastN dias com vendas (lastN <= 0 mantém todos)
func SalesPerDay(records []domain.SaleRecord, lastN int) []domain.DailySales {
	index := make(map[string]int)
	result := make([]domain.DailySales, 0)

	for _, record := range records {
		if !present(record.DepartureDate) {
			continue
		}

		i, ok := index[record.DepartureDate]
		if !ok {
			i = len(result)
			index[record.DepartureDate] = i
			result = append(result, domain.DailySales{Date: record.DepartureDate})
		}

		result[i].Sales++
		result[i].Revenue += record.Price.Amount()
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})

	if lastN > 0 && len(result) > lastN {
		result = result[len(result)-lastN:]
	}

	return result
}

// SalesPerHour conta vendas por rótulo de horário, em ordem crescente do rótulo
func SalesPerHour(records []domain.SaleRecord) []domain.HourlySales {
	hours := newTally()
	for _, record := range records {
		if present(record.DepartureTime) {
			hours.add(record.DepartureTime)
		}
	}

	result := make([]domain.HourlySales, 0, hours.len())
	for _, hour := range hours.order {
		result = append(result, domain.HourlySales{Hour: hour, Sales: hours.counts[hour]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Hour < result[j].Hour
	})

	return result
}

// SalesPerMonth agrupa por mês (YYYY-MM). Registros com data fora do formato são ignorados.
func SalesPerMonth(records []domain.SaleRecord) []domain.MonthlySales {
	index := make(map[string]int)
	result := make([]domain.MonthlySales, 0)

	for _, record := range records {
		date, ok := record.Date()
		if !ok {
			continue
		}

		month := date.Format(monthLayout)
		i, seen := index[month]
		if !seen {
			i = len(result)
			index[month] = i
			result = append(result, domain.MonthlySales{Month: month})
		}

		result[i].Sales++
		result[i].Revenue += record.Price.Amount()
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})

	return result
}

// BuildCharts monta todas as séries da tela de estatísticas a partir de uma única coleção
func BuildCharts(records []domain.SaleRecord, opts domain.ChartOptions) domain.HistoryCharts {
	stats := ComputeStats(records)

	return domain.HistoryCharts{
		TopRoutes:     TopRoutes(records, opts.RouteLimit),
		SalesPerDay:   SalesPerDay(records, opts.DayWindow),
		SalesPerHour:  SalesPerHour(records),
		SalesPerMonth: SalesPerMonth(records),
		PaymentSplit:  stats.PaymentSplit,
		TopVehicles:   truncate(stats.RevenuePerVehicle, opts.VehicleLimit),
	}
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
