package domain

// NotAvailable é o rótulo usado quando não há dados para um agrupamento
const NotAvailable = "N/A"

type RouteCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type PaymentSplit struct {
	Cash     int `json:"cash"`
	Transfer int `json:"transfer"`
}

type VehicleRevenue struct {
	VehicleID string  `json:"vehicle_id"`
	Revenue   float64 `json:"revenue"`
}

// AggregateStats é recalculado do zero a cada chamada e não tem identidade própria
type AggregateStats struct {
	TopRoute          RouteCount       `json:"top_route"`
	BusiestDay        string           `json:"busiest_day"`
	BusiestHour       string           `json:"busiest_hour"`
	PaymentSplit      PaymentSplit     `json:"payment_split"`
	RevenuePerVehicle []VehicleRevenue `json:"revenue_per_vehicle"`
	TotalSales        int              `json:"total_sales"`
	TotalRevenue      float64          `json:"total_revenue"`
	AverageDailySales float64          `json:"average_daily_sales"`
}

// EmptyAggregateStats retorna o valor zero com os rótulos sentinela
func EmptyAggregateStats() AggregateStats {
	return AggregateStats{
		TopRoute:          RouteCount{Name: NotAvailable},
		BusiestDay:        NotAvailable,
		BusiestHour:       NotAvailable,
		RevenuePerVehicle: []VehicleRevenue{},
	}
}

type DailySales struct {
	Date    string  `json:"date"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

type HourlySales struct {
	Hour  string `json:"hour"`
	Sales int    `json:"sales"`
}

type MonthlySales struct {
	Month   string  `json:"month"` // YYYY-MM
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// HistoryCharts agrupa as séries usadas pela tela de estatísticas
type HistoryCharts struct {
	TopRoutes     []RouteCount     `json:"top_routes"`
	SalesPerDay   []DailySales     `json:"sales_per_day"`
	SalesPerHour  []HourlySales    `json:"sales_per_hour"`
	SalesPerMonth []MonthlySales   `json:"sales_per_month"`
	PaymentSplit  PaymentSplit     `json:"payment_split"`
	TopVehicles   []VehicleRevenue `json:"top_vehicles"`
}

type ChartOptions struct {
	RouteLimit   int
	DayWindow    int
	VehicleLimit int
}

func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		RouteLimit:   8,
		DayWindow:    14,
		VehicleLimit: 10,
	}
}
