package aggregating

import (
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/transport-admin-api/internal/domain"
)

const monthLayout = "2006-01"

// Filter decide se um registro entra na subsequência que será agregada
type Filter func(record domain.SaleRecord) bool

// Apply devolve uma nova fatia com os registros aceitos por todos os filtros, na ordem original
func Apply(records []domain.SaleRecord, filters ...Filter) []domain.SaleRecord {
	if len(filters) == 0 {
		return records
	}

	result := make([]domain.SaleRecord, 0, len(records))
	for _, record := range records {
		if accepts(record, filters) {
			result = append(result, record)
		}
	}
	return result
}

func accepts(record domain.SaleRecord, filters []Filter) bool {
	for _, filter := range filters {
		if !filter(record) {
			return false
		}
	}
	return true
}

func ByVehicle(vehicleID string) Filter {
	vehicleID = strings.TrimSpace(vehicleID)
	return func(record domain.SaleRecord) bool {
		return strings.TrimSpace(record.VehicleID) == vehicleID
	}
}

// ByMonth aceita registros cuja data pertence ao mês informado (YYYY-MM)
func ByMonth(month string) Filter {
	return func(record domain.SaleRecord) bool {
		date, ok := record.Date()
		return ok && date.Format(monthLayout) == month
	}
}

func ByDate(date string) Filter {
	date = strings.TrimSpace(date)
	return func(record domain.SaleRecord) bool {
		return strings.TrimSpace(record.DepartureDate) == date
	}
}

// ByDateRange aceita registros entre start e end, inclusive. Limites nil ficam abertos.
func ByDateRange(start, end *time.Time) Filter {
	return func(record domain.SaleRecord) bool {
		date, ok := record.Date()
		if !ok {
			return false
		}
		if start != nil && date.Before(truncateDay(*start)) {
			return false
		}
		if end != nil && date.After(truncateDay(*end)) {
			return false
		}
		return true
	}
}

func ByPaymentMethod(method domain.PaymentMethod) Filter {
	return func(record domain.SaleRecord) bool {
		return domain.NormalizePaymentMethod(record.PaymentMethod) == method
	}
}

// BySearchTerm busca o termo na rota e no número do ônibus (sem diferenciar maiúsculas) e na data
func BySearchTerm(term string) Filter {
	needle := strings.ToLower(strings.TrimSpace(term))
	return func(record domain.SaleRecord) bool {
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(record.RouteName), needle) ||
			strings.Contains(strings.ToLower(record.VehicleID), needle) ||
			strings.Contains(record.DepartureDate, needle)
	}
}

// FromHistoryFilters converte os filtros da consulta em filtros de registro
func FromHistoryFilters(f domain.HistoryFilters) []Filter {
	filters := make([]Filter, 0)

	if f.VehicleID != "" {
		filters = append(filters, ByVehicle(f.VehicleID))
	}
	if f.Month != "" {
		filters = append(filters, ByMonth(f.Month))
	}
	if f.Date != "" {
		filters = append(filters, ByDate(f.Date))
	}
	if f.StartDate != nil || f.EndDate != nil {
		filters = append(filters, ByDateRange(f.StartDate, f.EndDate))
	}
	if f.PaymentMethod != "" {
		filters = append(filters, ByPaymentMethod(f.PaymentMethod))
	}
	if f.Search != "" {
		filters = append(filters, BySearchTerm(f.Search))
	}

	return filters
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewestFirst devolve uma cópia ordenada pela data e hora de saída, mais recentes primeiro
func NewestFirst(records []domain.SaleRecord) []domain.SaleRecord {
	sorted := make([]domain.SaleRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DepartureDate != sorted[j].DepartureDate {
			return sorted[i].DepartureDate > sorted[j].DepartureDate
		}
		return sorted[i].DepartureTime > sorted[j].DepartureTime
	})
	return sorted
}
